package gomap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-sjson/config"
)

type pass struct {
	Name    string   `json:"name"`
	Samples int      `json:"samples,omitempty"`
	Scale   float64  `json:"scale"`
	Inputs  []string `json:"inputs,omitempty"`
}

type render struct {
	Passes []pass `json:"passes"`
	Debug  bool   `json:"debug"`
}

func TestLoad(t *testing.T) {
	var got render
	err := Load([]byte(`
// two passes
passes = [
	{ name = "shadow", samples = 4, scale = 0.5 }
	{ name = "main", scale = 1, inputs = ["shadow"] }
]
debug = true
`), &got)
	if err != nil {
		t.Fatal(err)
	}
	want := render{
		Passes: []pass{
			{Name: "shadow", Samples: 4, Scale: 0.5},
			{Name: "main", Scale: 1, Inputs: []string{"shadow"}},
		},
		Debug: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	var r render
	if err := Load([]byte(`passes = [`), &r); err == nil {
		t.Error("expected a parse error")
	}
	if err := Load([]byte(`debug = "yes"`), &r); err == nil {
		t.Error("expected a mapping error")
	}
	if err := Load([]byte(`extra = 1`), &r); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := Load([]byte(`extra = 1`), &r, Strict(true)); err == nil {
		t.Error("expected an unknown field error")
	}
}

type custom struct {
	kind config.Kind
}

func (c *custom) FromValue(v *config.Value, _ ...FromOption) error {
	c.kind = v.Kind()
	return nil
}

func TestValueFromer(t *testing.T) {
	c := &custom{}
	if err := FromValue(config.FromSlice(nil), c); err != nil {
		t.Fatal(err)
	}
	if c.kind != config.ArrayKind {
		t.Errorf("got kind %s", c.kind)
	}
}

func TestToValue(t *testing.T) {
	v, err := ToValue(pass{Name: "main", Scale: 2, Inputs: []string{"a"}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"name", "scale", "inputs"}, v.Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
	if got := v.Key("scale"); !got.IsInteger() || got.IntegerOr(0) != 2 {
		t.Errorf("scale = %v", got)
	}
	var back pass
	if err := FromValue(v, &back); err != nil {
		t.Fatal(err)
	}
	if back.Name != "main" || back.Scale != 2 {
		t.Errorf("got %+v", back)
	}
}
