package libdiff

import (
	"bytes"
	"strings"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/encode"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText renders from and to with opts and returns a line diff: kept
// lines are prefixed with two spaces, removed ones with "- " and added
// ones with "+ ". It returns "" when the renderings are identical.
func DiffText(from, to *config.Value, opts ...encode.EncodeOption) (string, error) {
	fb, tb := &bytes.Buffer{}, &bytes.Buffer{}
	if err := encode.Encode(from, fb, opts...); err != nil {
		return "", err
	}
	if err := encode.Encode(to, tb, opts...); err != nil {
		return "", err
	}
	if bytes.Equal(fb.Bytes(), tb.Bytes()) {
		return "", nil
	}
	dmp := diffpatch.New()
	fc, tc, lines := dmp.DiffLinesToChars(fb.String(), tb.String())
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fc, tc, false), lines)
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String(), nil
}
