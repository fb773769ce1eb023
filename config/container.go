package config

import (
	"iter"
	"slices"
)

// Size returns the number of elements of an Array, entries of an Object,
// or bytes of a String or Data value; 0 otherwise.
func (v *Value) Size() int {
	switch v.Kind() {
	case ArrayKind, ObjectKind:
		return len(v.elems)
	case StringKind:
		return len(v.s)
	case DataKind:
		return len(v.data)
	default:
		return 0
	}
}

// NumKeys returns the number of entries of an Object, 0 otherwise.
func (v *Value) NumKeys() int {
	if v.Kind() != ObjectKind {
		return 0
	}
	return len(v.keys)
}

// Has reports whether v is an Object with an entry for key.
func (v *Value) Has(key string) bool {
	if v.Kind() != ObjectKind {
		return false
	}
	_, ok := v.index[key]
	return ok
}

// Keys returns the keys of an Object in insertion order.
func (v *Value) Keys() []string {
	if v.Kind() != ObjectKind {
		return nil
	}
	return slices.Clone(v.keys)
}

// Index returns element i of an Array. It returns the nil sentinel if v is
// not an Array or i is out of range.
func (v *Value) Index(i int) *Value {
	if v.Kind() != ArrayKind || i < 0 || i >= len(v.elems) {
		return nil
	}
	return v.elems[i]
}

// Key returns the value under key in an Object. It returns the nil
// sentinel if v is not an Object or key is absent.
func (v *Value) Key(key string) *Value {
	if v.Kind() != ObjectKind {
		return nil
	}
	i, ok := v.index[key]
	if !ok {
		return nil
	}
	return v.elems[i]
}

// Fields iterates the entries of an Object in insertion order.
func (v *Value) Fields() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if v.Kind() != ObjectKind {
			return
		}
		for i, k := range v.keys {
			if !yield(k, v.elems[i]) {
				return
			}
		}
	}
}

// Elements iterates the elements of an Array.
func (v *Value) Elements() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		if v.Kind() != ArrayKind {
			return
		}
		for i, e := range v.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Entry returns the value under key, adding a Nil entry if key is absent.
// A Nil v becomes an empty Object first. Entry panics with a
// *ContractViolation on any other kind.
func (v *Value) Entry(key string) *Value {
	v.ensure("Entry", ObjectKind)
	if i, ok := v.index[key]; ok {
		return v.elems[i]
	}
	e := Null()
	v.add(key, e)
	return e
}

// Set stores val under key, replacing any previous value in place. Set
// takes ownership of val. A Nil v becomes an empty Object first.
func (v *Value) Set(key string, val *Value) {
	v.ensure("Set", ObjectKind)
	if val == nil {
		val = Null()
	}
	if i, ok := v.index[key]; ok {
		v.elems[i] = val
		return
	}
	v.add(key, val)
}

// Add stores val under key and fails with ErrDuplicateKey if key is
// already present.
func (v *Value) Add(key string, val *Value) error {
	v.ensure("Add", ObjectKind)
	if _, ok := v.index[key]; ok {
		return ErrDuplicateKey
	}
	if val == nil {
		val = Null()
	}
	v.add(key, val)
	return nil
}

func (v *Value) add(key string, val *Value) {
	v.index[key] = len(v.keys)
	v.keys = append(v.keys, key)
	v.elems = append(v.elems, val)
}

// RemoveKey removes key from an Object and reports whether it was
// present. Remaining entries keep their order.
func (v *Value) RemoveKey(key string) bool {
	if v.Kind() != ObjectKind {
		return false
	}
	i, ok := v.index[key]
	if !ok {
		return false
	}
	v.keys = slices.Delete(v.keys, i, i+1)
	v.elems = slices.Delete(v.elems, i, i+1)
	delete(v.index, key)
	for j := i; j < len(v.keys); j++ {
		v.index[v.keys[j]] = j
	}
	return true
}

// Push appends a new Nil element to an Array and returns it. A Nil v
// becomes an empty Array first. The returned pointer stays valid as the
// array grows.
func (v *Value) Push() *Value {
	e := Null()
	v.Append(e)
	return e
}

// Append appends elements to an Array, taking ownership of them.
func (v *Value) Append(vs ...*Value) {
	v.ensure("Append", ArrayKind)
	for _, e := range vs {
		if e == nil {
			e = Null()
		}
		v.elems = append(v.elems, e)
	}
}

// RemoveIndex removes element i of an Array and reports whether it existed.
func (v *Value) RemoveIndex(i int) bool {
	if v.Kind() != ArrayKind || i < 0 || i >= len(v.elems) {
		return false
	}
	v.elems = slices.Delete(v.elems, i, i+1)
	return true
}

func (v *Value) ensure(op string, k Kind) {
	switch v.Kind() {
	case k:
	case NilKind:
		if v == nil {
			violate(op, k, v)
		}
		if k == ObjectKind {
			v.SetObject()
		} else {
			v.SetArray(0)
		}
	default:
		violate(op, k, v)
	}
}
