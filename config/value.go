package config

import (
	"maps"
	"slices"
)

// Tag is parser assigned metadata attached to a value, normally the byte
// offset of the value in its source buffer. Tags never take part in
// comparison.
type Tag uint32

// Value is a configuration value: exactly one of Nil, Bool, Integer, Float,
// String, Data, Array or Object.
//
// The nil *Value is the nil sentinel. Every read method accepts a nil
// receiver and reports NilKind, and indexing it yields nil again, so
// lookups chain without checks:
//
//	v.Key("render").Key("passes").Index(3).Key("name").StringOr("default")
//
// A tree is owned by its root: containers hold their children and nothing
// holds a parent. Values are not safe for concurrent mutation; a finished
// tree may be read from many goroutines.
type Value struct {
	kind Kind
	tag  Tag

	b     bool
	i     int64
	f     float64
	s     string
	data  []byte
	elems []*Value

	keys  []string
	index map[string]int
}

// Null returns a new, mutable value of NilKind.
func Null() *Value {
	return &Value{}
}

func FromBool(b bool) *Value {
	return &Value{kind: BoolKind, b: b}
}

func FromInt(i int64) *Value {
	return &Value{kind: IntegerKind, i: i}
}

func FromFloat(f float64) *Value {
	return &Value{kind: FloatKind, f: f}
}

func FromString(s string) *Value {
	return &Value{kind: StringKind, s: s}
}

// FromData returns a Data value. The value takes ownership of d.
func FromData(d []byte) *Value {
	return &Value{kind: DataKind, data: d}
}

// FromSlice returns an Array value holding vs. The array takes
// ownership of the elements; a nil element is stored as a Nil value.
func FromSlice(vs []*Value) *Value {
	res := &Value{kind: ArrayKind, elems: make([]*Value, len(vs))}
	for i, v := range vs {
		if v == nil {
			v = Null()
		}
		res.elems[i] = v
	}
	return res
}

// KeyVal is one entry of an object, in order.
type KeyVal struct {
	Key string
	Val *Value
}

// NewObject returns an empty Object value.
func NewObject() *Value {
	return &Value{kind: ObjectKind, index: map[string]int{}}
}

// FromKeyVals returns an Object holding kvs in order. A repeated key
// replaces the earlier value in its original position.
func FromKeyVals(kvs []KeyVal) *Value {
	res := NewObject()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap returns an Object holding m with keys in sorted order.
func FromMap(m map[string]*Value) *Value {
	res := NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Set(k, m[k])
	}
	return res
}

// Kind returns the active variant; NilKind for the nil sentinel.
func (v *Value) Kind() Kind {
	if v == nil {
		return NilKind
	}
	return v.kind
}

// Tag returns the tag set by the parser, 0 if none.
func (v *Value) Tag() Tag {
	if v == nil {
		return 0
	}
	return v.tag
}

func (v *Value) SetTag(t Tag) {
	if v == nil {
		violate("SetTag", NilKind, v)
	}
	v.tag = t
}

// reset drops the active variant and its owned storage, leaving the tag.
func (v *Value) reset(k Kind) {
	if v == nil {
		violate("set "+k.String(), k, v)
	}
	tag := v.tag
	*v = Value{kind: k, tag: tag}
}

func (v *Value) SetNil() {
	v.reset(NilKind)
}

func (v *Value) SetBool(b bool) {
	v.reset(BoolKind)
	v.b = b
}

func (v *Value) SetInteger(i int64) {
	v.reset(IntegerKind)
	v.i = i
}

func (v *Value) SetFloat(f float64) {
	v.reset(FloatKind)
	v.f = f
}

func (v *Value) SetString(s string) {
	v.reset(StringKind)
	v.s = s
}

// SetData makes v a Data value owning d.
func (v *Value) SetData(d []byte) {
	v.reset(DataKind)
	v.data = d
}

// SetArray makes v an empty Array with room for n elements.
func (v *Value) SetArray(n int) {
	v.reset(ArrayKind)
	v.elems = make([]*Value, 0, n)
}

// SetObject makes v an empty Object.
func (v *Value) SetObject() {
	v.reset(ObjectKind)
	v.index = map[string]int{}
}

// Clone returns a deep copy of v. Tags are copied. Clone of the nil
// sentinel is a new Nil value.
func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}
	res := &Value{kind: v.kind, tag: v.tag, b: v.b, i: v.i, f: v.f, s: v.s}
	switch v.kind {
	case DataKind:
		res.data = slices.Clone(v.data)
	case ArrayKind:
		res.elems = make([]*Value, len(v.elems))
		for i, e := range v.elems {
			res.elems[i] = e.Clone()
		}
	case ObjectKind:
		res.keys = slices.Clone(v.keys)
		res.elems = make([]*Value, len(v.elems))
		for i, e := range v.elems {
			res.elems[i] = e.Clone()
		}
		res.index = maps.Clone(v.index)
	}
	return res
}

// Assign replaces the contents of v with a deep copy of src.
func (v *Value) Assign(src *Value) {
	if v == nil {
		violate("Assign", src.Kind(), v)
	}
	if v == src {
		return
	}
	*v = *src.Clone()
}

// Take moves the contents of src into v and leaves src Nil.
func (v *Value) Take(src *Value) {
	if v == nil {
		violate("Take", src.Kind(), v)
	}
	if v == src {
		return
	}
	if src == nil {
		*v = Value{}
		return
	}
	*v = *src
	*src = Value{}
}
