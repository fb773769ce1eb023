package libdiff

import (
	"strings"

	"github.com/signadot/go-sjson/config"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Edit is one step of a string edit script. Equal steps carry the text
// they keep.
type Edit struct {
	Op   EditOp
	Text string
}

type EditOp int

const (
	Keep EditOp = iota
	Insert
	Delete
)

// DiffString compares two strings. When the edit touches at most half of
// the shorter string the change carries the edit script.
func DiffString(dst []Change, path string, from, to *config.Value) []Change {
	fs, ts := from.MustString(), to.MustString()
	if fs == ts {
		return dst
	}
	c := Change{Path: path, Op: Changed, From: from, To: to}
	doMultiLine := strings.Contains(fs, "\n") && strings.Contains(ts, "\n")
	diffs := diffpatch.New().DiffMain(fs, ts, doMultiLine)
	diffSize := 0
	edits := make([]Edit, 0, len(diffs))
	for _, d := range diffs {
		var op EditOp
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
			diffSize += len(d.Text)
		case diffpatch.DiffDelete:
			op = Delete
			diffSize += len(d.Text)
		default:
			op = Keep
		}
		edits = append(edits, Edit{Op: op, Text: d.Text})
	}
	if diffSize <= min(len(fs), len(ts))/2 {
		c.Edits = edits
	}
	return append(dst, c)
}

// ApplyEdits replays edits on s. It reports false if s does not have the
// text the edits keep or delete.
func ApplyEdits(s string, edits []Edit) (string, bool) {
	buf := &strings.Builder{}
	for _, e := range edits {
		switch e.Op {
		case Insert:
			buf.WriteString(e.Text)
			continue
		case Keep:
			buf.WriteString(e.Text)
		}
		if !strings.HasPrefix(s, e.Text) {
			return "", false
		}
		s = s[len(e.Text):]
	}
	if s != "" {
		return "", false
	}
	return buf.String(), true
}

func reverseEdits(edits []Edit) []Edit {
	if edits == nil {
		return nil
	}
	res := make([]Edit, len(edits))
	for i, e := range edits {
		switch e.Op {
		case Insert:
			e.Op = Delete
		case Delete:
			e.Op = Insert
		}
		res[i] = e
	}
	return res
}
