package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated      = errors.New("unterminated")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode escape")
	ErrBadComment        = errors.New("bad comment")
	ErrLiteral           = errors.New("bad literal")
	ErrNumber            = errors.New("bad number")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrNumberRange       = errors.New("number out of range")
	ErrUnexpected        = errors.New("unexpected character")
	ErrExpected          = errors.New("expected character")
	ErrUnexpectedEnd     = errors.New("unexpected end of input")
)

// Error is a failure at a byte offset of the scanned buffer.
type Error struct {
	Err    error
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(err error, off int, format string, args ...any) *Error {
	msg := format
	if len(args) != 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Err: err, Offset: off, Msg: msg}
}
