package token

import (
	"fmt"
	"strconv"
)

// DefaultTabWidth is the column width of a tab in reported locations.
const DefaultTabWidth = 4

// maxLineContext bounds the line text returned by LineAt.
const maxLineContext = 80

// LineCol returns the 1-based line and column of offset off in src.
//
// It scans src from the start on every call, so it costs O(off). Tabs count
// as tabWidth columns and carriage returns as none.
func LineCol(src []byte, off, tabWidth int) (int, int) {
	line, col := 1, 1
	off = min(off, len(src))
	for i := 0; i < off; i++ {
		switch src[i] {
		case '\n':
			line++
			col = 1
		case '\r':
		case '\t':
			col += tabWidth
		default:
			col++
		}
	}
	return line, col
}

// LineAt returns the 1-based line number containing off and the text of
// that line, truncated.
func LineAt(src []byte, off int) (int, []byte) {
	off = max(0, min(off, len(src)))
	n, start := 1, 0
	for i := 0; i < off; i++ {
		if src[i] == '\n' {
			n++
			start = i + 1
		}
	}
	end := start
	for end < len(src) && src[end] != '\n' && src[end] != 0 {
		end++
	}
	if end > start && src[end-1] == '\r' {
		end--
	}
	if end-start > maxLineContext {
		end = start + maxLineContext
	}
	return n, src[start:end]
}

// Pos is an offset into a source buffer.
type Pos struct {
	I        int
	Src      []byte
	TabWidth int
}

func (p Pos) LineCol() (int, int) {
	tw := p.TabWidth
	if tw == 0 {
		tw = DefaultTabWidth
	}
	return LineCol(p.Src, p.I, tw)
}

func (p Pos) String() string {
	sample := "?"
	if len(p.Src) > 0 {
		i := max(0, min(p.I, len(p.Src)))
		sample = string(p.Src[max(0, i-5):min(i+5, len(p.Src))])
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	l, c := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, l, c)
}
