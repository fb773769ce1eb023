// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to config values.
//
// Patches may be given as JSON or as config values, so that they can be
// written in SJSON. Values pass through JSON on the way: Data becomes a
// String and object entries may come back in a different order.
package patch

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/debug"
)

var ErrPatch = errors.New("patch error")

// Apply applies the RFC 6902 patch p, a JSON array of operations, to doc.
// doc is not modified.
func Apply(doc *config.Value, p []byte) (*config.Value, error) {
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Trace() {
		debug.Logf("json patch %d ops on %s", len(ops), d)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return decode(out)
}

// ApplyValue is Apply with the operations given as a config Array.
func ApplyValue(doc, p *config.Value) (*config.Value, error) {
	if !p.IsArray() {
		return nil, fmt.Errorf("%w: a json patch is an array, not %s", ErrPatch, p.Kind())
	}
	d, err := p.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return Apply(doc, d)
}

// Merge applies the RFC 7386 merge patch p to doc: entries of p replace
// those of doc, objects merge recursively and null removes an entry.
func Merge(doc *config.Value, p []byte) (*config.Value, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Trace() {
		debug.Logf("merge patch %s on %s", p, d)
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return decode(out)
}

func MergeValue(doc, p *config.Value) (*config.Value, error) {
	d, err := p.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return Merge(doc, d)
}

// CreateMerge returns the merge patch turning from into to. Both must be
// Objects.
func CreateMerge(from, to *config.Value) (*config.Value, error) {
	if !from.IsObject() || !to.IsObject() {
		return nil, fmt.Errorf("%w: merge patches relate objects", ErrPatch)
	}
	fd, err := from.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	td, err := to.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return decode(out)
}

func decode(d []byte) (*config.Value, error) {
	v := config.Null()
	if err := v.UnmarshalJSON(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return v, nil
}
