package config

import "fmt"

// Kind is the active variant of a Value.
type Kind uint8

const (
	NilKind Kind = iota
	BoolKind
	IntegerKind
	FloatKind
	StringKind
	DataKind
	ArrayKind
	ObjectKind
)

var kindNames = [...]string{
	NilKind:     "Nil",
	BoolKind:    "Bool",
	IntegerKind: "Integer",
	FloatKind:   "Float",
	StringKind:  "String",
	DataKind:    "Data",
	ArrayKind:   "Array",
	ObjectKind:  "Object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for i, n := range kindNames {
		if n == string(d) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{NilKind, BoolKind, IntegerKind, FloatKind, StringKind, DataKind, ArrayKind, ObjectKind}
}

func (k Kind) IsLeaf() bool {
	return k != ArrayKind && k != ObjectKind
}
