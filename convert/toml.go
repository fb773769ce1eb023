package convert

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/signadot/go-sjson/config"
)

// FromTOML decodes a TOML document. Date and time values become strings.
func FromTOML(d []byte) (*config.Value, error) {
	m := map[string]any{}
	md, err := toml.Decode(string(d), &m)
	if err != nil {
		return nil, fmt.Errorf("%w: toml: %w", ErrConvert, err)
	}
	order := map[string]int{}
	for i, k := range md.Keys() {
		p := strings.Join(k, "\x00")
		if _, ok := order[p]; !ok {
			order[p] = i
		}
	}
	v, err := fromTOML(m, nil, order)
	if err != nil {
		return nil, fmt.Errorf("%w: toml: %w", ErrConvert, err)
	}
	return v, nil
}

// fromTOML builds objects with their entries in document order. Tables in
// an array of tables share the path of the array.
func fromTOML(x any, path []string, order map[string]int) (*config.Value, error) {
	switch t := x.(type) {
	case map[string]any:
		ks := slices.Collect(maps.Keys(t))
		pos := func(k string) int {
			if i, ok := order[strings.Join(append(path, k), "\x00")]; ok {
				return i
			}
			return len(order)
		}
		slices.SortFunc(ks, func(a, b string) int {
			if d := pos(a) - pos(b); d != 0 {
				return d
			}
			return strings.Compare(a, b)
		})
		res := config.NewObject()
		for _, k := range ks {
			e, err := fromTOML(t[k], append(slices.Clip(path), k), order)
			if err != nil {
				return nil, err
			}
			res.Set(k, e)
		}
		return res, nil
	case []map[string]any:
		res := config.FromSlice(nil)
		for _, e := range t {
			ev, err := fromTOML(e, path, order)
			if err != nil {
				return nil, err
			}
			res.Append(ev)
		}
		return res, nil
	case []any:
		res := config.FromSlice(nil)
		for _, e := range t {
			ev, err := fromTOML(e, path, order)
			if err != nil {
				return nil, err
			}
			res.Append(ev)
		}
		return res, nil
	}
	return config.FromAny(scalar(x))
}

// ToTOML renders v, which must be an Object free of Nil values, as TOML.
// Entries are written in key order.
func ToTOML(v *config.Value) ([]byte, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("%w: toml: document must be an object, not %s", ErrConvert, v.Kind())
	}
	x, err := toTOML(v, "$")
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := toml.NewEncoder(buf).Encode(x); err != nil {
		return nil, fmt.Errorf("%w: toml: %w", ErrConvert, err)
	}
	return buf.Bytes(), nil
}

func toTOML(v *config.Value, p string) (any, error) {
	switch v.Kind() {
	case config.NilKind:
		return nil, fmt.Errorf("%w: toml: null at %s", ErrConvert, p)
	case config.ObjectKind:
		res := make(map[string]any, v.NumKeys())
		for k, e := range v.Fields() {
			ev, err := toTOML(e, config.Child(p, k))
			if err != nil {
				return nil, err
			}
			res[k] = ev
		}
		return res, nil
	case config.ArrayKind:
		res := make([]any, 0, v.Size())
		for i, e := range v.Elements() {
			ev, err := toTOML(e, config.Elem(p, i))
			if err != nil {
				return nil, err
			}
			res = append(res, ev)
		}
		return res, nil
	case config.DataKind:
		return string(v.MustData()), nil
	}
	return v.ToAny(), nil
}

// scalar maps decoder specific leaf types onto ones config.FromAny knows.
func scalar(x any) any {
	switch t := x.(type) {
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return t.String()
	}
	return x
}
