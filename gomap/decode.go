// Package gomap maps configuration values to and from Go values.
//
// Go values are mapped through their JSON form, so the usual `json`
// struct tags apply. Data values map to strings.
package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/parse"
)

type fromOpts struct {
	strict bool
	parse  []parse.ParseOption
}

type FromOption func(*fromOpts)

// Strict rejects object keys that match no struct field.
func Strict(v bool) FromOption { return func(o *fromOpts) { o.strict = v } }

// LoadParseOptions passes opts to the parser used by Load.
func LoadParseOptions(opts ...parse.ParseOption) FromOption {
	return func(o *fromOpts) { o.parse = append(o.parse, opts...) }
}

// ValueFromer is implemented by types that decode themselves from a
// configuration value.
type ValueFromer interface {
	FromValue(*config.Value, ...FromOption) error
}

// Load parses the SJSON document d into p.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	v, err := parse.Parse(d, do.parse...)
	if err != nil {
		return err
	}
	return FromValue(v, p, opts...)
}

// FromValue stores v in the value pointed to by p.
func FromValue(v *config.Value, p any, opts ...FromOption) error {
	if x, ok := p.(ValueFromer); ok {
		return x.FromValue(v, opts...)
	}
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	d, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	if do.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("could not map %s to %T: %w", v.Kind(), p, err)
	}
	return nil
}

// ToValue returns the configuration value of x. Struct fields keep their
// declaration order.
func ToValue(x any) (*config.Value, error) {
	d, err := json.Marshal(x)
	if err != nil {
		return nil, err
	}
	res := &config.Value{}
	if err := res.UnmarshalJSON(d); err != nil {
		return nil, err
	}
	return res, nil
}
