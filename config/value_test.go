package config

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSentinelChains(t *testing.T) {
	v := FromInt(3)
	x := v.Index(0).Key("a").Index(7).Key("b")
	if x != nil || !x.IsNil() || x.IsSome() {
		t.Fatalf("expected nil sentinel, got %v", x)
	}
	for i := 0; i < 10; i++ {
		x = x.Index(i).Key("k")
		if !x.IsNil() {
			t.Fatalf("step %d: not nil", i)
		}
	}
	arr := FromSlice([]*Value{FromInt(1)})
	for _, i := range []int{-1, 1, 100} {
		if !arr.Index(i).IsNil() {
			t.Errorf("index %d: expected nil", i)
		}
	}
	if !arr.Key("a").IsNil() {
		t.Error("key on array: expected nil")
	}
	if x.Size() != 0 || x.NumKeys() != 0 || x.Has("a") || x.Keys() != nil {
		t.Error("sentinel reports content")
	}
	allocs := testing.AllocsPerRun(100, func() {
		_ = v.Index(3).Key("a").Index(1).IsNil()
	})
	if allocs != 0 {
		t.Errorf("sentinel chain allocated %v times", allocs)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		v    *Value
		kind Kind
		num  bool
	}{
		{nil, NilKind, false},
		{Null(), NilKind, false},
		{FromBool(true), BoolKind, false},
		{FromInt(1), IntegerKind, true},
		{FromFloat(1), FloatKind, true},
		{FromString("s"), StringKind, false},
		{FromData([]byte("d")), DataKind, false},
		{FromSlice(nil), ArrayKind, false},
		{NewObject(), ObjectKind, false},
	}
	for _, tt := range tests {
		if got := tt.v.Kind(); got != tt.kind {
			t.Errorf("kind: got %s want %s", got, tt.kind)
		}
		if got := tt.v.IsNumber(); got != tt.num {
			t.Errorf("%s: IsNumber = %t", tt.kind, got)
		}
	}
	if !FromBool(true).IsTrue() || FromBool(true).IsFalse() || !FromBool(false).IsFalse() {
		t.Error("IsTrue/IsFalse")
	}
	if FromInt(1).IsTrue() {
		t.Error("integer is true")
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("got %s want %s", back, k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Number")); err == nil {
		t.Error("expected error")
	}
}

func mustPanicContract(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrContractViolation) {
			t.Errorf("%s: expected contract violation, got %v", name, r)
		}
		var cv *ContractViolation
		if !errors.As(err, &cv) {
			t.Errorf("%s: not a *ContractViolation", name)
		}
	}()
	f()
}

func TestMustAccessors(t *testing.T) {
	if FromBool(true).MustBool() != true {
		t.Error("MustBool")
	}
	if FromInt(-4).MustInteger() != -4 {
		t.Error("MustInteger")
	}
	if FromInt(2).MustFloat() != 2.0 {
		t.Error("MustFloat does not widen")
	}
	if FromString("x").MustString() != "x" {
		t.Error("MustString")
	}
	if string(FromData([]byte("d")).MustData()) != "d" {
		t.Error("MustData")
	}
	mustPanicContract(t, "MustBool", func() { FromInt(1).MustBool() })
	mustPanicContract(t, "MustInteger", func() { FromFloat(1).MustInteger() })
	mustPanicContract(t, "MustFloat", func() { FromString("1").MustFloat() })
	mustPanicContract(t, "MustString", func() { (*Value)(nil).MustString() })
	mustPanicContract(t, "MustData", func() { FromString("d").MustData() })
	mustPanicContract(t, "Set on sentinel", func() { (*Value)(nil).Set("a", nil) })
	mustPanicContract(t, "Push on string", func() { FromString("s").Push() })
}

func TestAsAccessors(t *testing.T) {
	if _, err := FromString("x").AsBool(); !errors.Is(err, ErrWrongKind) {
		t.Errorf("AsBool: %v", err)
	}
	if f, err := FromInt(3).AsFloat(); err != nil || f != 3 {
		t.Errorf("AsFloat: %v %v", f, err)
	}
	if _, err := FromFloat(3).AsInteger(); !errors.Is(err, ErrWrongKind) {
		t.Errorf("AsInteger: %v", err)
	}
	if s, err := FromString("x").AsString(); err != nil || s != "x" {
		t.Errorf("AsString: %v %v", s, err)
	}
	if _, err := (*Value)(nil).AsData(); !errors.Is(err, ErrWrongKind) {
		t.Errorf("AsData: %v", err)
	}
	obj := FromKeyVals([]KeyVal{
		{Key: "b", Val: FromBool(true)},
		{Key: "i", Val: FromInt(2)},
		{Key: "s", Val: FromString("str")},
	})
	if !obj.Key("b").BoolOr(false) || obj.Key("x").BoolOr(false) {
		t.Error("BoolOr")
	}
	if obj.Key("i").IntegerOr(9) != 2 || obj.Key("s").IntegerOr(9) != 9 {
		t.Error("IntegerOr")
	}
	if obj.Key("i").FloatOr(9) != 2 || obj.Key("b").FloatOr(9) != 9 {
		t.Error("FloatOr")
	}
	if obj.Key("s").StringOr("d") != "str" || obj.Key("i").StringOr("d") != "d" {
		t.Error("StringOr")
	}
	if !obj.Key("s").EqualsString("str") || obj.Key("i").EqualsString("2") {
		t.Error("EqualsString")
	}
}

func TestMutators(t *testing.T) {
	v := Null()
	v.Set("a", FromInt(1))
	v.Set("b", FromString("x"))
	v.Entry("c").SetBool(true)
	v.Set("a", FromInt(2))
	if diff := cmp.Diff([]string{"a", "b", "c"}, v.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if v.Key("a").MustInteger() != 2 || v.NumKeys() != 3 {
		t.Errorf("got %v", v)
	}
	if err := v.Add("a", Null()); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("Add: %v", err)
	}
	if !v.RemoveKey("a") || v.RemoveKey("a") {
		t.Error("RemoveKey")
	}
	if diff := cmp.Diff([]string{"b", "c"}, v.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if !v.Key("c").IsTrue() || !v.Key("b").EqualsString("x") {
		t.Errorf("index broken after remove: %v", v)
	}

	arr := v.Entry("list")
	first := arr.Push()
	first.SetString("one")
	for i := 0; i < 100; i++ {
		arr.Push().SetInteger(int64(i))
	}
	if first != arr.Index(0) || !first.EqualsString("one") {
		t.Error("pushed slot moved")
	}
	if arr.Size() != 101 {
		t.Errorf("size %d", arr.Size())
	}
	if !arr.RemoveIndex(0) || arr.Index(0).MustInteger() != 0 {
		t.Error("RemoveIndex")
	}

	s := FromString("s")
	s.SetTag(7)
	s.SetObject()
	if !s.IsObject() || s.NumKeys() != 0 || s.Tag() != 7 {
		t.Errorf("SetObject: %v tag %d", s, s.Tag())
	}
	s.SetArray(2)
	if !s.IsArray() || s.Size() != 0 {
		t.Error("SetArray")
	}
	s.SetNil()
	if !s.IsNil() {
		t.Error("SetNil")
	}
}

func TestIterators(t *testing.T) {
	v := FromKeyVals([]KeyVal{{Key: "z", Val: FromInt(1)}, {Key: "a", Val: FromInt(2)}})
	var keys []string
	for k, x := range v.Fields() {
		keys = append(keys, k+"="+x.String())
	}
	if diff := cmp.Diff([]string{"z=1", "a=2"}, keys); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	arr := FromSlice([]*Value{FromInt(5), nil})
	var got []string
	for i, x := range arr.Elements() {
		got = append(got, strconv.Itoa(i)+":"+x.String())
	}
	if diff := cmp.Diff([]string{"0:5", "1:null"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	for range v.Elements() {
		t.Error("object yielded elements")
	}
}

func TestCloneAssignTake(t *testing.T) {
	src := FromKeyVals([]KeyVal{
		{Key: "d", Val: FromData([]byte("abc"))},
		{Key: "a", Val: FromSlice([]*Value{FromInt(1), FromKeyVals([]KeyVal{{Key: "x", Val: FromFloat(1.5)}})})},
	})
	c := src.Clone()
	if !Equal(src, c) {
		t.Fatalf("clone differs: %v %v", src, c)
	}
	c.Key("d").MustData()[0] = 'X'
	c.Key("a").Index(1).Set("x", FromInt(0))
	if string(src.Key("d").MustData()) != "abc" || src.Key("a").Index(1).Key("x").MustFloat() != 1.5 {
		t.Error("clone shares storage")
	}

	dst := FromInt(9)
	dst.Assign(src)
	if !Equal(dst, src) {
		t.Error("Assign")
	}
	dst.Key("a").Push()
	if src.Key("a").Size() != 2 {
		t.Error("Assign shares storage")
	}

	moved := Null()
	moved.Take(src)
	if !src.IsNil() || !moved.IsObject() || moved.Key("a").Size() != 2 {
		t.Errorf("Take: src %v moved %v", src, moved)
	}
}

func TestFind(t *testing.T) {
	v := mustJSON(t, `{
		"name": "root",
		"children": [
			{"name": "a", "extra": {"name": "deep"}},
			{"other": 1},
			[{"name": "in-array"}]
		]
	}`)
	var got []string
	for _, x := range v.Find("name") {
		got = append(got, x.MustString())
	}
	want := []string{"root", "a", "deep", "in-array"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if res := v.Find("missing"); len(res) != 0 {
		t.Errorf("got %v", res)
	}
	if res := (*Value)(nil).Find("name"); res != nil {
		t.Errorf("got %v", res)
	}
	nested := mustJSON(t, `{"k": {"k": 1}}`)
	if n := len(nested.Find("k")); n != 2 {
		t.Errorf("nested matches: %d", n)
	}
}

func TestVisit(t *testing.T) {
	v := mustJSON(t, `{"a": [1, 2], "b": {"c": 3}}`)
	var kinds []Kind
	err := v.Visit(func(x *Value) (bool, error) {
		kinds = append(kinds, x.Kind())
		return !x.IsArray(), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{ObjectKind, ArrayKind, ObjectKind, IntegerKind}
	if !slices.Equal(kinds, want) {
		t.Errorf("got %v want %v", kinds, want)
	}
	stop := errors.New("stop")
	n := 0
	err = v.Visit(func(x *Value) (bool, error) {
		n++
		if n == 2 {
			return false, stop
		}
		return true, nil
	})
	if !errors.Is(err, stop) || n != 2 {
		t.Errorf("got %v after %d", err, n)
	}
}

func TestKinds(t *testing.T) {
	for _, k := range Kinds() {
		leaf := k != ArrayKind && k != ObjectKind
		if k.IsLeaf() != leaf {
			t.Errorf("%s: IsLeaf %v", k, k.IsLeaf())
		}
		d, _ := k.MarshalText()
		var back Kind
		if err := back.UnmarshalText(d); err != nil || back != k {
			t.Errorf("%s: round trip %v %v", k, back, err)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Table")); err == nil {
		t.Error("no error for unknown kind")
	}
}
