package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// ToAny returns v as plain Go values: nil, bool, int64, float64, string,
// []byte, []any and map[string]any.
func (v *Value) ToAny() any {
	switch v.Kind() {
	case BoolKind:
		return v.b
	case IntegerKind:
		return v.i
	case FloatKind:
		return v.f
	case StringKind:
		return v.s
	case DataKind:
		return slices.Clone(v.data)
	case ArrayKind:
		res := make([]any, len(v.elems))
		for i, e := range v.elems {
			res[i] = e.ToAny()
		}
		return res
	case ObjectKind:
		res := make(map[string]any, len(v.keys))
		for i, k := range v.keys {
			res[k] = v.elems[i].ToAny()
		}
		return res
	}
	return nil
}

// FromAny builds a Value from plain Go values as produced by ToAny or by
// decoding JSON, YAML or TOML into an interface. Maps become Objects
// with sorted keys.
func FromAny(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return t.Clone(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case []byte:
		return FromData(slices.Clone(t)), nil
	case int:
		return FromInt(int64(t)), nil
	case int8:
		return FromInt(int64(t)), nil
	case int16:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint8:
		return FromInt(int64(t)), nil
	case uint16:
		return FromInt(int64(t)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case uint:
		return fromUint(uint64(t))
	case uint64:
		return fromUint(t)
	case float32:
		return FromFloat(float64(t)), nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		return fromNumber(string(t))
	case []any:
		res := FromSlice(nil)
		for _, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(ev)
		}
		return res, nil
	case map[string]any:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			ev, err := FromAny(t[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			res.Set(k, ev)
		}
		return res, nil
	}
	return fromReflect(reflect.ValueOf(x))
}

// fromReflect handles typed slices and string keyed maps, such as
// []map[string]any from a TOML decoder.
func fromReflect(rv reflect.Value) (*Value, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		res := FromSlice(nil)
		for i := 0; i < rv.Len(); i++ {
			ev, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.Append(ev)
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromAny(m)
	}
	return nil, fmt.Errorf("%w: cannot convert %T", ErrWrongKind, rv.Interface())
}

func fromUint(u uint64) (*Value, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows an integer", ErrWrongKind, u)
	}
	return FromInt(int64(u)), nil
}

func fromNumber(s string) (*Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return FromInt(i), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return FromFloat(f), nil
}

// MarshalJSON renders v as JSON keeping object entry order. Data is
// rendered as a string.
func (v *Value) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := v.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) writeJSON(buf *bytes.Buffer) error {
	switch v.Kind() {
	case NilKind:
		buf.WriteString("null")
	case BoolKind:
		buf.WriteString(strconv.FormatBool(v.b))
	case IntegerKind:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case FloatKind:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return fmt.Errorf("%w: %v is not representable in JSON", ErrWrongKind, v.f)
		}
		buf.WriteString(FormatFloat(v.f))
	case StringKind:
		writeJSONString(buf, v.s)
	case DataKind:
		writeJSONString(buf, string(v.data))
	case ArrayKind:
		buf.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectKind:
		buf.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, k)
			buf.WriteByte(':')
			if err := v.elems[i].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	d, _ := json.Marshal(s)
	buf.Write(d)
}

// FormatFloat formats f so that it reads back as a float: the result
// always carries a '.' or an exponent.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// UnmarshalJSON replaces v with the JSON document d, keeping object entry
// order. Numbers without fraction or exponent become Integers.
func (v *Value) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := decodeJSON(dec)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("trailing data after JSON value")
	}
	v.Take(res)
	return nil
}

func decodeJSON(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			res := FromSlice(nil)
			for dec.More() {
				e, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Append(e)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '{':
			res := NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				k, _ := kt.(string)
				e, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				if err := res.Add(k, e); err != nil {
					return nil, fmt.Errorf("%w %q", err, k)
				}
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		}
		return nil, fmt.Errorf("unexpected %v", t)
	case json.Number:
		return fromNumber(string(t))
	default:
		return FromAny(t)
	}
}

// String renders v as compact JSON, for logging.
func (v *Value) String() string {
	d, err := v.MarshalJSON()
	if err != nil {
		return "<" + v.Kind().String() + ">"
	}
	return string(d)
}
