package config

func (v *Value) IsNil() bool     { return v.Kind() == NilKind }
func (v *Value) IsSome() bool    { return v.Kind() != NilKind }
func (v *Value) IsBool() bool    { return v.Kind() == BoolKind }
func (v *Value) IsTrue() bool    { return v.Kind() == BoolKind && v.b }
func (v *Value) IsFalse() bool   { return v.Kind() == BoolKind && !v.b }
func (v *Value) IsInteger() bool { return v.Kind() == IntegerKind }
func (v *Value) IsFloat() bool   { return v.Kind() == FloatKind }
func (v *Value) IsString() bool  { return v.Kind() == StringKind }
func (v *Value) IsData() bool    { return v.Kind() == DataKind }
func (v *Value) IsArray() bool   { return v.Kind() == ArrayKind }
func (v *Value) IsObject() bool  { return v.Kind() == ObjectKind }

// IsNumber reports whether v is an Integer or a Float.
func (v *Value) IsNumber() bool {
	k := v.Kind()
	return k == IntegerKind || k == FloatKind
}

// The Must accessors require the matching kind and panic with a
// *ContractViolation otherwise. Use them only on shapes already checked.

func (v *Value) MustBool() bool {
	if v.Kind() != BoolKind {
		violate("MustBool", BoolKind, v)
	}
	return v.b
}

func (v *Value) MustInteger() int64 {
	if v.Kind() != IntegerKind {
		violate("MustInteger", IntegerKind, v)
	}
	return v.i
}

// MustFloat also accepts an Integer.
func (v *Value) MustFloat() float64 {
	switch v.Kind() {
	case FloatKind:
		return v.f
	case IntegerKind:
		return float64(v.i)
	}
	violate("MustFloat", FloatKind, v)
	return 0
}

func (v *Value) MustString() string {
	if v.Kind() != StringKind {
		violate("MustString", StringKind, v)
	}
	return v.s
}

// MustData returns the bytes of a Data value. The caller must not modify
// them.
func (v *Value) MustData() []byte {
	if v.Kind() != DataKind {
		violate("MustData", DataKind, v)
	}
	return v.data
}

func (v *Value) AsBool() (bool, error) {
	if v.Kind() != BoolKind {
		return false, wrongKind("a bool", v)
	}
	return v.b, nil
}

func (v *Value) AsInteger() (int64, error) {
	if v.Kind() != IntegerKind {
		return 0, wrongKind("an integer", v)
	}
	return v.i, nil
}

// AsFloat returns a Float, or an Integer widened to float64.
func (v *Value) AsFloat() (float64, error) {
	switch v.Kind() {
	case FloatKind:
		return v.f, nil
	case IntegerKind:
		return float64(v.i), nil
	}
	return 0, wrongKind("a float", v)
}

func (v *Value) AsString() (string, error) {
	if v.Kind() != StringKind {
		return "", wrongKind("a string", v)
	}
	return v.s, nil
}

func (v *Value) AsData() ([]byte, error) {
	if v.Kind() != DataKind {
		return nil, wrongKind("data", v)
	}
	return v.data, nil
}

func (v *Value) BoolOr(def bool) bool {
	if v.Kind() != BoolKind {
		return def
	}
	return v.b
}

func (v *Value) IntegerOr(def int64) int64 {
	if v.Kind() != IntegerKind {
		return def
	}
	return v.i
}

func (v *Value) FloatOr(def float64) float64 {
	f, err := v.AsFloat()
	if err != nil {
		return def
	}
	return f
}

func (v *Value) StringOr(def string) string {
	if v.Kind() != StringKind {
		return def
	}
	return v.s
}

// EqualsString reports whether v is a String equal to s.
func (v *Value) EqualsString(s string) bool {
	return v.Kind() == StringKind && v.s == s
}
