package script

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var ErrCall = errors.New("bad script call")

// Method is a Handle operation in a host calling convention.
type Method struct {
	Decl string
	Call func(h *Handle, args []any) (any, error)
}

func noArgs[T any](f func(*Handle) T) func(*Handle, []any) (any, error) {
	return func(h *Handle, args []any) (any, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: want no arguments, got %d", ErrCall, len(args))
		}
		return f(h), nil
	}
}

func oneArg[A, T any](f func(*Handle, A) T) func(*Handle, []any) (any, error) {
	return func(h *Handle, args []any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: want 1 argument, got %d", ErrCall, len(args))
		}
		a, ok := args[0].(A)
		if !ok {
			var zero A
			return nil, fmt.Errorf("%w: want a %T argument, got %T", ErrCall, zero, args[0])
		}
		return f(h, a), nil
	}
}

func opIndex(h *Handle, args []any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: want 1 argument, got %d", ErrCall, len(args))
	}
	switch a := args[0].(type) {
	case int:
		return h.Index(a), nil
	case uint32:
		return h.Index(int(a)), nil
	case string:
		return h.Key(a), nil
	}
	return nil, fmt.Errorf("%w: cannot index with %T", ErrCall, args[0])
}

var methods = map[string]Method{
	"parse_file":   {"bool parse_file(string f)", oneArg((*Handle).ParseFile)},
	"parse_string": {"bool parse_string(string str)", oneArg((*Handle).ParseString)},
	"is_array":     {"bool is_array()", noArgs((*Handle).IsArray)},
	"is_bool":      {"bool is_bool()", noArgs((*Handle).IsBool)},
	"is_data":      {"bool is_data()", noArgs((*Handle).IsData)},
	"is_float":     {"bool is_float()", noArgs((*Handle).IsFloat)},
	"is_integer":   {"bool is_integer()", noArgs((*Handle).IsInteger)},
	"is_nil":       {"bool is_nil()", noArgs((*Handle).IsNil)},
	"is_number":    {"bool is_number()", noArgs((*Handle).IsNumber)},
	"is_object":    {"bool is_object()", noArgs((*Handle).IsObject)},
	"is_string":    {"bool is_string()", noArgs((*Handle).IsString)},
	"is_some":      {"bool is_some()", noArgs((*Handle).IsSome)},
	"to_float":     {"double to_float()", noArgs((*Handle).ToFloat)},
	"to_bool":      {"bool to_bool()", noArgs((*Handle).ToBool)},
	"to_integer":   {"int64 to_integer()", noArgs((*Handle).ToInteger)},
	"to_string":    {"string to_string()", noArgs((*Handle).ToString)},
	"size":         {"int size()", noArgs((*Handle).Size)},
	"has":          {"bool has(string name)", oneArg((*Handle).Has)},
	"opIndex":      {"Config@ opIndex(uint i | string str)", opIndex},
	"opAssign":     {"Config@ opAssign(const Config &in other)", oneArg((*Handle).Assign)},
}

// Methods returns the operations of Handle keyed by host method name.
func Methods() map[string]Method {
	return maps.Clone(methods)
}

// MethodNames returns the method names in sorted order.
func MethodNames() []string {
	return slices.Sorted(maps.Keys(methods))
}

// Call invokes the named method on h.
func (h *Handle) Call(name string, args ...any) (any, error) {
	m, ok := methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: no method %q", ErrCall, name)
	}
	return m.Call(h, args)
}
