package libdiff

import (
	"fmt"

	"github.com/signadot/go-sjson/config"
)

type Op int

const (
	Added Op = iota
	Removed
	Changed
)

func (op Op) String() string {
	switch op {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	}
	return fmt.Sprintf("<op %d>", int(op))
}

// Change is one difference. From is nil for Added and To is nil for
// Removed.
type Change struct {
	Path string
	Op   Op
	From *config.Value
	To   *config.Value
	// Edits is set for a Changed string when a short edit script
	// describes it.
	Edits []Edit
}

func (c Change) String() string {
	switch c.Op {
	case Added:
		return fmt.Sprintf("+ %s: %s", c.Path, c.To)
	case Removed:
		return fmt.Sprintf("- %s: %s", c.Path, c.From)
	}
	return fmt.Sprintf("~ %s: %s -> %s", c.Path, c.From, c.To)
}

// DiffFunc diffs two values found at path, appending to dst.
type DiffFunc func(dst []Change, path string, from, to *config.Value) []Change

// Diff returns the changes turning from into to, in pre-order. Equal
// values give none. Tags are not compared.
func Diff(from, to *config.Value) []Change {
	return diff(nil, "$", from, to)
}

func diff(dst []Change, path string, from, to *config.Value) []Change {
	if from.Kind() != to.Kind() {
		return append(dst, Change{Path: path, Op: Changed, From: from, To: to})
	}
	switch from.Kind() {
	case config.ObjectKind:
		return diffObject(dst, path, from, to)
	case config.ArrayKind:
		return DiffArrayByIndex(dst, path, from, to, diff)
	case config.StringKind:
		return DiffString(dst, path, from, to)
	}
	if config.Compare(from, to) != 0 {
		return append(dst, Change{Path: path, Op: Changed, From: from, To: to})
	}
	return dst
}

// diffObject reports removed keys in the order of from, then changes to
// the remaining keys and additions in the order of to.
func diffObject(dst []Change, path string, from, to *config.Value) []Change {
	for k, fv := range from.Fields() {
		if !to.Has(k) {
			dst = append(dst, Change{Path: config.Child(path, k), Op: Removed, From: fv})
		}
	}
	for k, tv := range to.Fields() {
		p := config.Child(path, k)
		if !from.Has(k) {
			dst = append(dst, Change{Path: p, Op: Added, To: tv})
			continue
		}
		dst = diff(dst, p, from.Key(k), tv)
	}
	return dst
}

// Reverse returns the changes turning to back into from.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Added:
			r.Op = Removed
		case Removed:
			r.Op = Added
		default:
			r.Op = Changed
			r.Edits = reverseEdits(c.Edits)
		}
		res[i] = r
	}
	return res
}
