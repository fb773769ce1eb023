package convert

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/go-sjson/config"
)

// FromYAML decodes the first document of d. An empty document is an
// empty Object.
func FromYAML(d []byte) (*config.Value, error) {
	var x any
	if err := yaml.UnmarshalWithOptions(d, &x, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrConvert, err)
	}
	if x == nil {
		return config.NewObject(), nil
	}
	v, err := fromYAML(x)
	if err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrConvert, err)
	}
	return v, nil
}

func fromYAML(x any) (*config.Value, error) {
	switch t := x.(type) {
	case yaml.MapSlice:
		res := config.NewObject()
		for _, item := range t {
			k, ok := item.Key.(string)
			if !ok {
				k = fmt.Sprint(item.Key)
			}
			e, err := fromYAML(item.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			if err := res.Add(k, e); err != nil {
				return nil, fmt.Errorf("%w %q", err, k)
			}
		}
		return res, nil
	case []any:
		res := config.FromSlice(nil)
		for _, e := range t {
			ev, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			res.Append(ev)
		}
		return res, nil
	}
	return config.FromAny(scalar(x))
}

// ToYAML renders v as YAML keeping object entry order. Data is written
// as a string.
func ToYAML(v *config.Value) ([]byte, error) {
	x, err := toYAML(v)
	if err != nil {
		return nil, err
	}
	d, err := yaml.Marshal(x)
	if err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrConvert, err)
	}
	return d, nil
}

func toYAML(v *config.Value) (any, error) {
	switch v.Kind() {
	case config.ObjectKind:
		res := make(yaml.MapSlice, 0, v.NumKeys())
		for k, e := range v.Fields() {
			ev, err := toYAML(e)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: k, Value: ev})
		}
		return res, nil
	case config.ArrayKind:
		res := make([]any, 0, v.Size())
		for _, e := range v.Elements() {
			ev, err := toYAML(e)
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
