package config

import (
	"errors"
	"testing"
)

func resourceObj(name, typ string) *Value {
	v := NewObject()
	v.Set(ResourceNameKey, FromString(name))
	if typ != "" {
		v.Set(ResourceTypeKey, FromString(typ))
	}
	return v
}

func TestIsResource(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		typ  string
		rf   ReferenceFormat
		want bool
		res  string
	}{
		{"legacy string", FromString("hero.unit"), "", Both, true, "hero"},
		{"legacy string any type", FromString("hero.unit"), "texture", Both, true, "hero"},
		{"legacy no dot", FromString("hero"), "", Both, true, "hero"},
		{"legacy strict", FromString("hero.unit"), "", Table, false, ""},
		{"object both", resourceObj("hero", "unit"), "unit", Both, true, "hero"},
		{"object strict", resourceObj("hero", "unit"), "unit", Table, true, "hero"},
		{"object untyped filter", resourceObj("hero", "unit"), "", Table, true, "hero"},
		{"object wrong type", resourceObj("hero", "unit"), "texture", Both, false, ""},
		{"object missing type", resourceObj("hero", ""), "unit", Both, false, ""},
		{"object without name", NewObject(), "", Both, false, ""},
		{"integer", FromInt(1), "", Both, false, ""},
		{"sentinel", nil, "", Both, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsResource(tt.typ, tt.rf); got != tt.want {
				t.Fatalf("IsResource = %t", got)
			}
			name, err := tt.v.AsResource(tt.typ, tt.rf)
			if tt.want {
				if err != nil || name != tt.res {
					t.Errorf("AsResource = %q, %v", name, err)
				}
				if got := tt.v.MustResource(tt.typ, tt.rf); got != tt.res {
					t.Errorf("MustResource = %q", got)
				}
				return
			}
			if !errors.Is(err, ErrNotResource) {
				t.Errorf("AsResource error %v", err)
			}
			if got := tt.v.ResourceOr(tt.typ, tt.rf, "def"); got != "def" {
				t.Errorf("ResourceOr = %q", got)
			}
			mustPanicContract(t, "MustResource", func() { tt.v.MustResource(tt.typ, tt.rf) })
		})
	}
}

func TestLegacyResourceNotModified(t *testing.T) {
	v := FromString("hero.unit")
	_ = v.MustResource("", Both)
	if !v.EqualsString("hero.unit") {
		t.Errorf("value changed to %v", v)
	}
}

func TestResourceRef(t *testing.T) {
	r, err := FromString("hero.unit.extra").AsResourceRef(Both)
	if err != nil || r != (Resource{Type: "unit.extra", Name: "hero"}) {
		t.Errorf("got %+v %v", r, err)
	}
	r, err = resourceObj("hero", "unit").AsResourceRef(Table)
	if err != nil || r.String() != "hero.unit" {
		t.Errorf("got %+v %v", r, err)
	}
	r, err = resourceObj("hero", "").AsResourceRef(Table)
	if err != nil || r.String() != "hero" {
		t.Errorf("got %+v %v", r, err)
	}
	if _, err := FromString("x").AsResourceRef(Table); !errors.Is(err, ErrNotResource) {
		t.Errorf("got %v", err)
	}
}

func TestResources(t *testing.T) {
	v := NewObject()
	v.Set("unit", resourceObj("hero", "unit"))
	v.Set("texture", resourceObj("grass", "texture"))
	list := v.Entry("more")
	list.Append(resourceObj("villain", "unit"), FromString("legacy.unit"))
	got := v.Resources("unit", Table)
	if len(got) != 2 || got[0].MustResource("unit", Table) != "hero" || got[1].MustResource("unit", Table) != "villain" {
		t.Errorf("got %v", got)
	}
	if n := len(v.Resources("", Table)); n != 3 {
		t.Errorf("untyped table refs: %d", n)
	}
}
