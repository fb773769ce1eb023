package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/go-sjson/config"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArrayByIndex aligns the elements of two arrays.
//
//  1. every element is summarised: scalars by kind and value, containers
//     and multi-line strings by kind alone
//  2. the sequences of summaries are diffed, one rune per summary
//  3. elements with matching summaries are compared with df
//  4. a deletion directly followed by an insertion is a change
//
// Removed elements are located by their index in from, all others by
// their index in to.
func DiffArrayByIndex(dst []Change, path string, from, to *config.Value, df DiffFunc) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	pending := []int{}
	flush := func() {
		for _, i := range pending {
			dst = append(dst, Change{Path: config.Elem(path, i), Op: Removed, From: from.Index(i)})
		}
		pending = pending[:0]
	}
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				pending = append(pending, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(pending) != 0 {
					dst = append(dst, Change{Path: config.Elem(path, ti), Op: Changed, From: from.Index(pending[0]), To: to.Index(ti)})
					pending = pending[1:]
				} else {
					dst = append(dst, Change{Path: config.Elem(path, ti), Op: Added, To: to.Index(ti)})
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				dst = df(dst, config.Elem(path, ti), from.Index(fi), to.Index(ti))
				fi++
				ti++
			}
		}
	}
	flush()
	return dst
}

func mapValues(m map[string]rune, v *config.Value) []rune {
	rs := make([]rune, 0, v.Size())
	for _, e := range v.Elements() {
		sum := summaryStr(e)
		r, ok := m[sum]
		if !ok {
			// stay clear of the surrogate range, which cannot round trip
			// through the string based diff
			r = rune(len(m))
			if r >= 0xD800 {
				r += 0x800
			}
			m[sum] = r
		}
		rs = append(rs, r)
	}
	return rs
}

func summaryStr(v *config.Value) string {
	k := v.Kind().String()
	switch v.Kind() {
	case config.BoolKind:
		return k + "-" + strconv.FormatBool(v.MustBool())
	case config.IntegerKind:
		return k + "-" + strconv.FormatInt(v.MustInteger(), 10)
	case config.FloatKind:
		return k + "-" + strconv.FormatFloat(v.MustFloat(), 'g', -1, 64)
	case config.StringKind:
		if strings.Contains(v.MustString(), "\n") {
			return k + "/m"
		}
		return k + "-" + v.MustString()
	case config.DataKind:
		return k + "-" + string(v.MustData())
	}
	return k
}
