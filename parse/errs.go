package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/token"
)

// Error classes. Every *Error matches exactly one of them with errors.Is.
var (
	ErrLexical    = errors.New("lexical error")
	ErrStructural = errors.New("structural error")
	ErrCapacity   = errors.New("capacity error")
)

var (
	ErrDuplicateKey = config.ErrDuplicateKey
	ErrTrailing     = errors.New("trailing content")
	ErrTooDeep      = errors.New("nesting too deep")
	ErrTooLarge     = errors.New("input too large")
)

// Error is a failed parse.
type Error struct {
	Class  error
	Err    error
	File   string
	Offset int
	Line   int
	Column int
	// Context is the text of the offending line, truncated.
	Context string

	terse bool
}

func (e *Error) Error() string {
	buf := &strings.Builder{}
	if e.File != "" {
		fmt.Fprintf(buf, "%s(%d:%d): ", e.File, e.Line, e.Column)
	} else {
		fmt.Fprintf(buf, "%d:%d: ", e.Line, e.Column)
	}
	buf.WriteString(e.Class.Error())
	buf.WriteString(": ")
	buf.WriteString(e.Err.Error())
	if !e.terse && e.Context != "" {
		buf.WriteString("\n\n")
		buf.WriteString(e.Context)
	}
	return buf.String()
}

func (e *Error) Unwrap() []error {
	return []error{e.Class, e.Err}
}

// Pos returns the position of the error in its source.
func (e *Error) Pos(src []byte) token.Pos {
	return token.Pos{I: e.Offset, Src: src}
}

func classify(err error, src []byte) error {
	switch {
	case errors.Is(err, token.ErrExpected),
		errors.Is(err, token.ErrUnexpectedEnd),
		errors.Is(err, ErrDuplicateKey),
		errors.Is(err, ErrTrailing):
		return ErrStructural
	case errors.Is(err, ErrTooDeep), errors.Is(err, ErrTooLarge):
		return ErrCapacity
	case errors.Is(err, token.ErrUnexpected):
		var te *token.Error
		if errors.As(err, &te) && te.Offset < len(src) {
			switch src[te.Offset] {
			case '}', ']', '{', '[', ':', '=':
				return ErrStructural
			}
		}
	}
	return ErrLexical
}
