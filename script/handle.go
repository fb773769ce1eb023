package script

import (
	"fmt"
	"sync/atomic"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/debug"
	"github.com/signadot/go-sjson/parse"
)

type Handle struct {
	refs atomic.Int32
	v    *config.Value
	err  error
}

// New returns a handle to Nil holding one reference.
func New() *Handle {
	h := &Handle{}
	h.refs.Store(1)
	return h
}

// FromValue returns a handle holding one reference to a copy of v.
func FromValue(v *config.Value) *Handle {
	h := New()
	h.v = v.Clone()
	return h
}

func (h *Handle) AddRef() {
	h.refs.Add(1)
}

// Release drops a reference and returns the number left. The value is
// dropped with the last reference.
func (h *Handle) Release() int {
	n := h.refs.Add(-1)
	switch {
	case n < 0:
		panic(fmt.Sprintf("script: handle released %d times too often", -n))
	case n == 0:
		h.v = nil
		h.err = nil
	}
	return int(n)
}

// Refs returns the current reference count.
func (h *Handle) Refs() int {
	return int(h.refs.Load())
}

// Value returns the value held by h, without copying.
func (h *Handle) Value() *config.Value {
	return h.v
}

// Err returns the error of the last failed parse.
func (h *Handle) Err() error {
	return h.err
}

func (h *Handle) ParseString(s string) bool {
	return h.setParsed(parse.ParseString(s))
}

func (h *Handle) ParseFile(path string) bool {
	return h.setParsed(parse.ParseFile(path))
}

func (h *Handle) setParsed(v *config.Value, err error) bool {
	if err != nil {
		if debug.Trace() {
			debug.Logf("script parse: %v", err)
		}
		h.err = err
		return false
	}
	h.v, h.err = v, nil
	return true
}

func (h *Handle) IsNil() bool     { return h.v.IsNil() }
func (h *Handle) IsSome() bool    { return h.v.IsSome() }
func (h *Handle) IsBool() bool    { return h.v.IsBool() }
func (h *Handle) IsInteger() bool { return h.v.IsInteger() }
func (h *Handle) IsFloat() bool   { return h.v.IsFloat() }
func (h *Handle) IsNumber() bool  { return h.v.IsNumber() }
func (h *Handle) IsString() bool  { return h.v.IsString() }
func (h *Handle) IsData() bool    { return h.v.IsData() }
func (h *Handle) IsArray() bool   { return h.v.IsArray() }
func (h *Handle) IsObject() bool  { return h.v.IsObject() }

func (h *Handle) ToBool() bool        { return h.v.BoolOr(false) }
func (h *Handle) ToInteger() int64    { return h.v.IntegerOr(0) }
func (h *Handle) ToFloat() float64    { return h.v.FloatOr(0) }
func (h *Handle) ToString() string    { return h.v.StringOr("") }
func (h *Handle) Size() int           { return h.v.Size() }
func (h *Handle) Has(key string) bool { return h.v.Has(key) }

// Index returns a new handle to a copy of element i, Nil if out of range.
func (h *Handle) Index(i int) *Handle {
	return FromValue(h.v.Index(i))
}

// Key returns a new handle to a copy of the entry key, Nil if absent.
func (h *Handle) Key(key string) *Handle {
	return FromValue(h.v.Key(key))
}

// Assign replaces the value of h with a copy of the value of o.
func (h *Handle) Assign(o *Handle) *Handle {
	if h != o {
		h.v = o.v.Clone()
	}
	return h
}
