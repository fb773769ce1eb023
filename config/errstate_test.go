package config

import (
	"errors"
	"strings"
	"testing"
)

func TestLocation(t *testing.T) {
	src := []byte("a = 1\nb = 2\n")
	v := FromInt(2)
	v.SetTag(Tag(strings.Index(string(src), "2")))
	l, c := Location(v, src, 4)
	if l != 2 || c != 5 {
		t.Errorf("got %d:%d want 2:5", l, c)
	}
	v.SetTag(Tag(len(src) + 10))
	if l, c := Location(v, src, 4); l != 1 || c != 1 {
		t.Errorf("out of range tag: got %d:%d", l, c)
	}
	tabbed := []byte("\tx = 1")
	v.SetTag(5)
	if l, c := Location(v, tabbed, 8); l != 1 || c != 13 {
		t.Errorf("tab width: got %d:%d", l, c)
	}
}

func TestErrorStateFirstWins(t *testing.T) {
	src := []byte("a = 1\nb = true\n")
	es := NewErrorState("test.sjson", src)
	root := NewObject()
	root.SetTag(0)
	a := FromInt(1)
	a.SetTag(4)
	b := FromBool(true)
	b.SetTag(10)
	root.Set("a", a)
	root.Set("b", b)

	if got := root.Key("a").ToBool(es); got {
		t.Error("ToBool on integer returned true")
	}
	if !es.Failed() {
		t.Fatal("no error recorded")
	}
	want := "failure while parsing `test.sjson`: test.sjson(1:5): expected a bool"
	if es.Message() != want {
		t.Errorf("got %q want %q", es.Message(), want)
	}
	_ = root.Key("b").ToString(es)
	_ = root.GetInteger("b", es)
	if es.Message() != want {
		t.Errorf("later error replaced first: %q", es.Message())
	}
	if got := es.Format(b, "something else"); got != want {
		t.Errorf("Format after failure: %q", got)
	}
	var d *Diagnostic
	if !errors.As(es.Err(), &d) || d.Line != 1 || d.Column != 5 {
		t.Errorf("got %#v", es.Err())
	}
}

func TestErrorStateGet(t *testing.T) {
	src := []byte("x = {\n  f = 1\n  s = \"str\"\n}")
	root := NewObject()
	x := NewObject()
	x.SetTag(4)
	x.Set("f", FromInt(1))
	x.Set("s", FromString("str"))
	root.Set("x", x)

	tests := []struct {
		name string
		get  func(es *ErrorState)
		msg  string
	}{
		{"bool", func(es *ErrorState) { x.GetBool("f", es) }, "expected a bool for key `f`"},
		{"integer", func(es *ErrorState) { x.GetInteger("s", es) }, "expected an integer for key `s`"},
		{"float", func(es *ErrorState) { x.GetFloat("s", es) }, "expected a float for key `s`"},
		{"string", func(es *ErrorState) { x.GetString("f", es) }, "expected a string for key `f`"},
		{"array", func(es *ErrorState) { x.GetArray("f", es) }, "expected an array for key `f`"},
		{"object", func(es *ErrorState) { x.GetObject("missing", es) }, "expected an object for key `missing`"},
		{"resource", func(es *ErrorState) { x.GetResource("f", "unit", Both, es) }, "expected a resource of type `unit` for key `f`"},
		{"resource ref", func(es *ErrorState) { x.GetResourceRef("f", Table, es) }, "expected a resource for key `f`"},
		{"float at", func(es *ErrorState) { x.GetFloatAt(0, es) }, "expected a float for key `0`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			es := NewErrorState("f.sjson", src)
			tt.get(es)
			want := "failure while parsing `f.sjson`: f.sjson(1:5): " + tt.msg
			if es.Message() != want {
				t.Errorf("got %q want %q", es.Message(), want)
			}
		})
	}

	es := NewErrorState("f.sjson", src)
	if x.GetInteger("f", es) != 1 || x.GetFloat("f", es) != 1 || x.GetString("s", es) != "str" {
		t.Error("valid reads failed")
	}
	if es.Failed() {
		t.Errorf("unexpected error %v", es.Err())
	}
}

func TestNilErrorState(t *testing.T) {
	var es *ErrorState
	if FromInt(1).ToString(es) != "" || es.Failed() || es.Err() != nil {
		t.Error("nil state")
	}
	es.Add(nil, "ignored")
	es.SetErr(errors.New("ignored"))
}

func TestErrorStateSetErr(t *testing.T) {
	es := NewErrorState("f", nil)
	first := errors.New("first")
	es.SetErr(first)
	es.SetErr(errors.New("second"))
	es.Add(nil, "third")
	if es.Err() != first {
		t.Errorf("got %v", es.Err())
	}
}

func TestErrorStateTo(t *testing.T) {
	src := []byte("u = \"x\"\n")
	es := NewErrorState("unit.sjson", src)
	x := FromString("x")
	x.SetTag(4)
	if got := x.ToResource("unit", Table, es); got != "" {
		t.Errorf("ToResource = %q", got)
	}
	want := "failure while parsing `unit.sjson`: unit.sjson(1:5): expected a resource of type `unit`"
	if es.Message() != want {
		t.Errorf("got %q want %q", es.Message(), want)
	}
	if r := FromInt(1).ToResourceRef(Table, es); r != (Resource{}) {
		t.Errorf("ToResourceRef = %+v", r)
	}
	if es.Message() != want {
		t.Errorf("later error replaced first: %q", es.Message())
	}

	es = NewErrorState("ok.sjson", src)
	ref := NewObject()
	ref.Set(ResourceNameKey, FromString("meter"))
	ref.Set(ResourceTypeKey, FromString("unit"))
	if got := ref.ToResource("unit", Table, es); got != "meter" {
		t.Errorf("ToResource = %q", got)
	}
	if got := ref.ToResourceRef(Table, es); got != (Resource{Type: "unit", Name: "meter"}) {
		t.Errorf("ToResourceRef = %+v", got)
	}
	if got := FromString("meter.unit").ToResourceRef(Both, es); got != (Resource{Type: "unit", Name: "meter"}) {
		t.Errorf("legacy ToResourceRef = %+v", got)
	}
	if got := FromInt(2).ToFloat(es); got != 2 {
		t.Errorf("ToFloat = %v", got)
	}
	if got := string(FromData([]byte("\x00ab")).ToData(es)); got != "\x00ab" {
		t.Errorf("ToData = %q", got)
	}
	if es.Failed() {
		t.Fatalf("unexpected error %v", es.Err())
	}

	if got := FromString("ab").ToData(es); got != nil {
		t.Errorf("ToData on string = %q", got)
	}
	if !strings.HasSuffix(es.Message(), "expected data") {
		t.Errorf("got %q", es.Message())
	}
	es = NewErrorState("f.sjson", src)
	if got := FromString("1.5").ToFloat(es); got != 0 {
		t.Errorf("ToFloat on string = %v", got)
	}
	if !strings.HasSuffix(es.Message(), "expected a float") {
		t.Errorf("got %q", es.Message())
	}
}
