package config

import (
	"errors"
	"fmt"
)

var (
	ErrWrongKind         = errors.New("wrong kind")
	ErrNotResource       = errors.New("not a resource")
	ErrContractViolation = errors.New("contract violation")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrPath              = errors.New("bad path")
)

// ContractViolation is the panic value of the unsafe accessors and of
// mutations through the nil sentinel. It signals a caller bug.
type ContractViolation struct {
	Op   string
	Want Kind
	Got  Kind
}

func (c *ContractViolation) Error() string {
	return fmt.Sprintf("%s: %s requires %s, value is %s", ErrContractViolation, c.Op, c.Want, c.Got)
}

func (c *ContractViolation) Unwrap() error {
	return ErrContractViolation
}

func violate(op string, want Kind, v *Value) {
	panic(&ContractViolation{Op: op, Want: want, Got: v.Kind()})
}

func wrongKind(want string, v *Value) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrWrongKind, want, v.Kind())
}
