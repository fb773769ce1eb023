package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHandle(t *testing.T) {
	h := New()
	if !h.IsNil() || h.IsSome() {
		t.Fatal("new handle is not nil")
	}
	if !h.ParseString(`name = "x", n = 3, f = 1.5, on = true, list = [1 2], d = """raw"""`) {
		t.Fatal(h.Err())
	}
	if !h.IsObject() || h.Size() != 6 || !h.Has("n") || h.Has("missing") {
		t.Errorf("got %v", h.Value())
	}
	if got := h.Key("name").ToString(); got != "x" {
		t.Errorf("got %q", got)
	}
	if got := h.Key("n").ToInteger(); got != 3 {
		t.Errorf("got %d", got)
	}
	if got := h.Key("n").ToFloat(); got != 3 {
		t.Errorf("got %v", got)
	}
	if got := h.Key("f").ToFloat(); got != 1.5 {
		t.Errorf("got %v", got)
	}
	if !h.Key("on").ToBool() || !h.Key("d").IsData() {
		t.Error("wrong kinds")
	}
	list := h.Key("list")
	if !list.IsArray() || list.Index(1).ToInteger() != 2 || !list.Index(5).IsNil() {
		t.Errorf("got %v", list.Value())
	}
	// mismatched conversions give zero values
	if h.Key("name").ToInteger() != 0 || h.Key("n").ToString() != "" || h.ToBool() {
		t.Error("conversion of wrong kind")
	}
}

func TestHandleCopies(t *testing.T) {
	h := New()
	if !h.ParseString(`a = {b = 1}`) {
		t.Fatal(h.Err())
	}
	a := h.Key("a")
	a.Value().Set("b", nil)
	if h.Value().Key("a").Key("b").MustInteger() != 1 {
		t.Error("index shares the node")
	}
	o := New()
	o.Assign(h)
	o.Value().Set("z", nil)
	if h.Has("z") {
		t.Error("assign shares the node")
	}
	if o.Assign(o) != o {
		t.Error("self assign")
	}
}

func TestRefs(t *testing.T) {
	h := New()
	h.ParseString(`a = 1`)
	h.AddRef()
	if h.Refs() != 2 {
		t.Errorf("refs %d", h.Refs())
	}
	if n := h.Release(); n != 1 || h.Value() == nil {
		t.Errorf("got %d %v", n, h.Value())
	}
	if n := h.Release(); n != 0 || h.Value() != nil {
		t.Errorf("got %d %v", n, h.Value())
	}
	defer func() {
		if recover() == nil {
			t.Error("over release did not panic")
		}
	}()
	h.Release()
}

func TestParseFailure(t *testing.T) {
	h := New()
	h.ParseString(`a = 1`)
	if h.ParseString(`a = [`) {
		t.Fatal("parsed")
	}
	if h.Err() == nil || h.Value().Key("a").MustInteger() != 1 {
		t.Errorf("failed parse changed the handle: %v %v", h.Err(), h.Value())
	}
	path := filepath.Join(t.TempDir(), "c.sjson")
	if err := os.WriteFile(path, []byte("b = true"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !h.ParseFile(path) || h.Err() != nil || !h.Key("b").ToBool() {
		t.Errorf("got %v %v", h.Err(), h.Value())
	}
	if h.ParseFile(filepath.Join(t.TempDir(), "missing")) {
		t.Error("parsed a missing file")
	}
}

func TestMethods(t *testing.T) {
	names := MethodNames()
	for _, want := range []string{"parse_file", "parse_string", "is_nil", "to_integer", "size", "has", "opIndex", "opAssign"} {
		found := false
		for _, n := range names {
			found = found || n == want
		}
		if !found {
			t.Errorf("missing %s", want)
		}
	}
	h := New()
	calls := []struct {
		name string
		args []any
		want any
	}{
		{"parse_string", []any{`a = [10 20], s = "x"`}, true},
		{"is_object", nil, true},
		{"size", nil, 2},
		{"has", []any{"s"}, true},
	}
	for _, c := range calls {
		got, err := h.Call(c.name, c.args...)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", c.name, diff)
		}
	}
	a, err := h.Call("opIndex", "a")
	if err != nil {
		t.Fatal(err)
	}
	e, err := a.(*Handle).Call("opIndex", uint32(1))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := e.(*Handle).Call("to_integer"); got != int64(20) {
		t.Errorf("got %v", got)
	}
	o := New()
	if _, err := o.Call("opAssign", h); err != nil || !o.Has("s") {
		t.Errorf("assign: %v", err)
	}

	bad := []struct {
		name string
		args []any
	}{
		{"nope", nil},
		{"size", []any{1}},
		{"has", nil},
		{"has", []any{1}},
		{"opIndex", []any{1.5}},
	}
	for _, c := range bad {
		if _, err := h.Call(c.name, c.args...); !errors.Is(err, ErrCall) {
			t.Errorf("%s%v: got %v", c.name, c.args, err)
		}
	}
}
