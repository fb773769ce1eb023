package config

import (
	"fmt"

	"github.com/signadot/go-sjson/debug"
	"github.com/signadot/go-sjson/token"
)

// ErrorState collects the first diagnostic raised while reading a tree
// parsed from Source. Tags on the tree are taken to be byte offsets into
// Source, as set by a traced parse.
//
// A nil *ErrorState discards diagnostics.
type ErrorState struct {
	File     string
	Source   []byte
	TabWidth int

	err error
}

func NewErrorState(file string, src []byte) *ErrorState {
	return &ErrorState{File: file, Source: src, TabWidth: token.DefaultTabWidth}
}

// Diagnostic is an error located in a source file.
type Diagnostic struct {
	File   string
	Line   int
	Column int
	Msg    string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("failure while parsing `%s`: %s(%d:%d): %s", d.File, d.File, d.Line, d.Column, d.Msg)
}

// Failed reports whether an error has been recorded.
func (es *ErrorState) Failed() bool {
	return es != nil && es.err != nil
}

// Err returns the recorded error, if any.
func (es *ErrorState) Err() error {
	if es == nil {
		return nil
	}
	return es.err
}

// Message returns the recorded error message or "".
func (es *ErrorState) Message() string {
	if !es.Failed() {
		return ""
	}
	return es.err.Error()
}

// SetErr records err unless an error is already recorded.
func (es *ErrorState) SetErr(err error) {
	if es == nil || es.err != nil || err == nil {
		return
	}
	es.err = err
}

// Location returns the 1-based line and column of v in Source.
func (es *ErrorState) Location(v *Value) (int, int) {
	if es == nil {
		return 1, 1
	}
	tw := es.TabWidth
	if tw == 0 {
		tw = token.DefaultTabWidth
	}
	return Location(v, es.Source, tw)
}

// Location returns the 1-based line and column of the offset tagged on v.
// It scans src from the start and costs O(offset); avoid it on hot
// paths. A tag outside src yields 1:1.
func Location(v *Value, src []byte, tabWidth int) (int, int) {
	off := int(v.Tag())
	if off >= len(src) {
		if debug.Tag() {
			debug.Logf("couldn't determine line for tag %d (source length %d)", off, len(src))
		}
		return 1, 1
	}
	return token.LineCol(src, off, tabWidth)
}

// Diagnose returns a diagnostic at the location of v.
func (es *ErrorState) Diagnose(v *Value, format string, args ...any) *Diagnostic {
	line, col := es.Location(v)
	d := &Diagnostic{Line: line, Column: col, Msg: fmt.Sprintf(format, args...)}
	if es != nil {
		d.File = es.File
	}
	return d
}

// Format returns the message of the recorded error if there is one, and
// otherwise a new message located at v. It records nothing.
func (es *ErrorState) Format(v *Value, format string, args ...any) string {
	if es.Failed() {
		return es.err.Error()
	}
	return es.Diagnose(v, format, args...).Error()
}

// Add records a diagnostic at v unless an error is already recorded.
func (es *ErrorState) Add(v *Value, format string, args ...any) {
	if es == nil || es.err != nil {
		return
	}
	es.err = es.Diagnose(v, format, args...)
}

func (v *Value) ToBool(es *ErrorState) bool {
	if v.Kind() != BoolKind {
		es.Add(v, "expected a bool")
		return false
	}
	return v.b
}

func (v *Value) ToInteger(es *ErrorState) int64 {
	if v.Kind() != IntegerKind {
		es.Add(v, "expected an integer")
		return 0
	}
	return v.i
}

func (v *Value) ToFloat(es *ErrorState) float64 {
	f, err := v.AsFloat()
	if err != nil {
		es.Add(v, "expected a float")
	}
	return f
}

func (v *Value) ToString(es *ErrorState) string {
	if v.Kind() != StringKind {
		es.Add(v, "expected a string")
		return ""
	}
	return v.s
}

func (v *Value) ToData(es *ErrorState) []byte {
	if v.Kind() != DataKind {
		es.Add(v, "expected data")
		return nil
	}
	return v.data
}

func (v *Value) ToResource(typ string, rf ReferenceFormat, es *ErrorState) string {
	name, err := v.AsResource(typ, rf)
	if err != nil {
		es.Add(v, "%s", trimSentinel(err))
	}
	return name
}

func (v *Value) ToResourceRef(rf ReferenceFormat, es *ErrorState) Resource {
	r, err := v.AsResourceRef(rf)
	if err != nil {
		es.Add(v, "%s", trimSentinel(err))
	}
	return r
}

// The Get accessors read the entry key of an Object and record a
// diagnostic located at v when it is missing or has the wrong kind.

func (v *Value) GetBool(key string, es *ErrorState) bool {
	c := v.Key(key)
	if c.Kind() != BoolKind {
		es.Add(v, "expected a bool for key `%s`", key)
		return false
	}
	return c.b
}

func (v *Value) GetInteger(key string, es *ErrorState) int64 {
	c := v.Key(key)
	if c.Kind() != IntegerKind {
		es.Add(v, "expected an integer for key `%s`", key)
		return 0
	}
	return c.i
}

func (v *Value) GetFloat(key string, es *ErrorState) float64 {
	f, err := v.Key(key).AsFloat()
	if err != nil {
		es.Add(v, "expected a float for key `%s`", key)
	}
	return f
}

// GetFloatAt reads element i of an Array as a float.
func (v *Value) GetFloatAt(i int, es *ErrorState) float64 {
	f, err := v.Index(i).AsFloat()
	if err != nil {
		es.Add(v, "expected a float for key `%d`", i)
	}
	return f
}

func (v *Value) GetString(key string, es *ErrorState) string {
	c := v.Key(key)
	if c.Kind() != StringKind {
		es.Add(v, "expected a string for key `%s`", key)
		return ""
	}
	return c.s
}

func (v *Value) GetResource(key, typ string, rf ReferenceFormat, es *ErrorState) string {
	name, err := v.Key(key).AsResource(typ, rf)
	if err != nil {
		es.Add(v, "%s for key `%s`", trimSentinel(err), key)
	}
	return name
}

func (v *Value) GetResourceRef(key string, rf ReferenceFormat, es *ErrorState) Resource {
	r, err := v.Key(key).AsResourceRef(rf)
	if err != nil {
		es.Add(v, "%s for key `%s`", trimSentinel(err), key)
	}
	return r
}

// GetArray returns the entry key, recording a diagnostic if it is not an
// Array. The entry is returned either way.
func (v *Value) GetArray(key string, es *ErrorState) *Value {
	c := v.Key(key)
	if c.Kind() != ArrayKind {
		es.Add(v, "expected an array for key `%s`", key)
	}
	return c
}

func (v *Value) GetObject(key string, es *ErrorState) *Value {
	c := v.Key(key)
	if c.Kind() != ObjectKind {
		es.Add(v, "expected an object for key `%s`", key)
	}
	return c
}

// trimSentinel drops the "not a resource: " prefix of resource errors.
func trimSentinel(err error) string {
	msg := err.Error()
	prefix := ErrNotResource.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
