package token

import (
	"strconv"
)

// Scanner is a cursor over an SJSON buffer.
type Scanner struct {
	src []byte
	off int
}

func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src}
}

func (s *Scanner) Source() []byte { return s.src }
func (s *Scanner) Offset() int    { return s.off }
func (s *Scanner) AtEnd() bool    { return s.off >= len(s.src) }

// Peek returns the current byte or 0 at end of input.
func (s *Scanner) Peek() byte {
	return s.PeekAt(0)
}

func (s *Scanner) PeekAt(n int) byte {
	i := s.off + n
	if i < 0 || i >= len(s.src) {
		return 0
	}
	return s.src[i]
}

// SkipBOM skips a leading UTF-8 byte order mark.
func (s *Scanner) SkipBOM() {
	if len(s.src)-s.off < 3 {
		return
	}
	if s.src[s.off] == 0xEF && s.src[s.off+1] == 0xBB && s.src[s.off+2] == 0xBF {
		s.off += 3
	}
}

// SkipSpace skips whitespace, commas and comments.
func (s *Scanner) SkipSpace() error {
	for s.off < len(s.src) {
		switch s.src[s.off] {
		case ' ', '\t', '\n', '\r', ',':
			s.off++
		case '/':
			if err := s.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (s *Scanner) skipComment() error {
	start := s.off
	switch s.PeekAt(1) {
	case '/':
		s.off += 2
		for s.off < len(s.src) && s.src[s.off] != '\n' {
			s.off++
		}
		return nil
	case '*':
		s.off += 2
		for s.off+1 < len(s.src) {
			if s.src[s.off] == '*' && s.src[s.off+1] == '/' {
				s.off += 2
				return nil
			}
			s.off++
		}
		s.off = len(s.src)
		return NewError(ErrUnterminated, start, "block comment")
	default:
		return NewError(ErrBadComment, start, "")
	}
}

// Consume consumes c or fails.
func (s *Scanner) Consume(c byte) error {
	if s.off >= len(s.src) {
		return NewError(ErrUnexpectedEnd, s.off, "looking for %q", c)
	}
	if got := s.src[s.off]; got != c {
		return NewError(ErrExpected, s.off, "%s did not match expectation %q", quoteByte(got), c)
	}
	s.off++
	return nil
}

// ConsumeLiteral consumes the keyword lit, such as true, false or null.
func (s *Scanner) ConsumeLiteral(lit string) error {
	start := s.off
	for i := 0; i < len(lit); i++ {
		if s.off >= len(s.src) || s.src[s.off] != lit[i] {
			return NewError(ErrLiteral, start, "expected %s", lit)
		}
		s.off++
	}
	return nil
}

// IsDataStart reports whether a triple quoted data block starts here.
func (s *Scanner) IsDataStart() bool {
	return s.PeekAt(0) == '"' && s.PeekAt(1) == '"' && s.PeekAt(2) == '"'
}

func quoteByte(c byte) string {
	if c < 0x20 || c >= 0x7f {
		return "0x" + strconv.FormatUint(uint64(c), 16)
	}
	return "'" + string(c) + "'"
}
