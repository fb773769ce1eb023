package config

import (
	"bytes"
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Kinds order as Nil < Bool < Integer < Float < String < Data < Array <
// Object. Objects compare by their entries in key order, so entry order
// does not matter. Tags are ignored. The nil sentinel equals any Nil
// value.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return cmp.Compare(ka, kb)
	}
	switch ka {
	case BoolKind:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case IntegerKind:
		return cmp.Compare(a.i, b.i)
	case FloatKind:
		return cmp.Compare(a.f, b.f)
	case StringKind:
		return strings.Compare(a.s, b.s)
	case DataKind:
		return bytes.Compare(a.data, b.data)
	case ArrayKind:
		return compareArrays(a, b)
	case ObjectKind:
		return compareObjects(a, b)
	}
	return 0
}

func compareArrays(a, b *Value) int {
	minLen := min(len(a.elems), len(b.elems))
	for i := 0; i < minLen; i++ {
		if c := Compare(a.elems[i], b.elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.elems), len(b.elems))
}

func compareObjects(a, b *Value) int {
	ka := slices.Sorted(slices.Values(a.keys))
	kb := slices.Sorted(slices.Values(b.keys))
	minLen := min(len(ka), len(kb))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
		if c := Compare(a.Key(ka[i]), b.Key(kb[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}

// Equal reports whether a and b hold the same tree.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return false
	}
	switch ka {
	case ObjectKind:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i, k := range a.keys {
			j, ok := b.index[k]
			if !ok || !Equal(a.elems[i], b.elems[j]) {
				return false
			}
		}
		return true
	case ArrayKind:
		return slices.EqualFunc(a.elems, b.elems, Equal)
	case FloatKind:
		return a.f == b.f
	}
	return Compare(a, b) == 0
}

// Equal reports whether v and o hold the same tree. It makes *Value
// usable with go-cmp.
func (v *Value) Equal(o *Value) bool {
	return Equal(v, o)
}
