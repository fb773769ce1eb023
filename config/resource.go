package config

import (
	"fmt"
	"strings"
)

const (
	ResourceNameKey = "$resource_name"
	ResourceTypeKey = "$resource_type"
)

// ReferenceFormat selects which value shapes count as resource references.
type ReferenceFormat uint8

const (
	// Both accepts the legacy "name.type" string and the object form.
	Both ReferenceFormat = iota
	// Table accepts only objects with a $resource_name string.
	Table
)

func (rf ReferenceFormat) String() string {
	switch rf {
	case Both:
		return "both"
	case Table:
		return "table"
	default:
		return fmt.Sprintf("ReferenceFormat(%d)", uint8(rf))
	}
}

// Resource is a reference to an external asset. Type is empty when the
// reference does not carry one.
type Resource struct {
	Type string
	Name string
}

func (r Resource) String() string {
	if r.Type == "" {
		return r.Name
	}
	return r.Name + "." + r.Type
}

// IsResource reports whether v is a resource reference under rf. If typ
// is not empty, the object form must carry a matching $resource_type;
// legacy strings carry no type and match any typ.
func (v *Value) IsResource(typ string, rf ReferenceFormat) bool {
	if rf == Both && v.Kind() == StringKind {
		return true
	}
	if !v.Key(ResourceNameKey).IsString() {
		return false
	}
	if typ == "" {
		return true
	}
	return v.Key(ResourceTypeKey).EqualsString(typ)
}

// MustResource returns the name of the resource v refers to, panicking
// with a *ContractViolation if IsResource(typ, rf) does not hold.
func (v *Value) MustResource(typ string, rf ReferenceFormat) string {
	if !v.IsResource(typ, rf) {
		violate("MustResource", ObjectKind, v)
	}
	return v.resourceName(rf)
}

func (v *Value) resourceName(rf ReferenceFormat) string {
	if rf == Both && v.kind == StringKind {
		name, _, _ := strings.Cut(v.s, ".")
		return name
	}
	return v.Key(ResourceNameKey).s
}

// AsResource returns the name of the resource v refers to.
func (v *Value) AsResource(typ string, rf ReferenceFormat) (string, error) {
	if !v.IsResource(typ, rf) {
		return "", resourceErr(typ)
	}
	return v.resourceName(rf), nil
}

// ResourceOr returns the resource name or def.
func (v *Value) ResourceOr(typ string, rf ReferenceFormat, def string) string {
	if !v.IsResource(typ, rf) {
		return def
	}
	return v.resourceName(rf)
}

// AsResourceRef returns the full reference, including the type when
// known. The type of a legacy string is the text after the first '.'.
func (v *Value) AsResourceRef(rf ReferenceFormat) (Resource, error) {
	if !v.IsResource("", rf) {
		return Resource{}, resourceErr("")
	}
	if rf == Both && v.kind == StringKind {
		name, typ, _ := strings.Cut(v.s, ".")
		return Resource{Type: typ, Name: name}, nil
	}
	return Resource{
		Type: v.Key(ResourceTypeKey).StringOr(""),
		Name: v.Key(ResourceNameKey).s,
	}, nil
}

// Resources collects, in pre-order, every resource reference under v
// with type typ. A matching object is not searched further.
func (v *Value) Resources(typ string, rf ReferenceFormat) []*Value {
	var res []*Value
	v.walk(func(_ string, x *Value) bool {
		if x.IsResource(typ, rf) {
			res = append(res, x)
			return false
		}
		return true
	})
	return res
}

func resourceErr(typ string) error {
	if typ == "" {
		return fmt.Errorf("%w: expected a resource", ErrNotResource)
	}
	return fmt.Errorf("%w: expected a resource of type `%s`", ErrNotResource, typ)
}
