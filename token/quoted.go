package token

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// ScanString scans a double quoted string and returns its decoded value.
//
// Escapes are those of JSON. \uXXXX is decoded and re-encoded as UTF-8;
// surrogate pairs are combined and a lone surrogate becomes U+FFFD. Raw
// bytes between the quotes, including newlines, are kept verbatim.
func (s *Scanner) ScanString() (string, error) {
	start := s.off
	if err := s.Consume('"'); err != nil {
		return "", err
	}
	var buf []byte
	for {
		if s.off >= len(s.src) {
			return "", NewError(ErrUnterminated, start, "string")
		}
		c := s.src[s.off]
		s.off++
		switch c {
		case '"':
			return string(buf), nil
		case '\\':
		default:
			buf = append(buf, c)
			continue
		}
		if s.off >= len(s.src) {
			return "", NewError(ErrUnterminated, start, "string")
		}
		esc := s.off - 1
		c = s.src[s.off]
		s.off++
		switch c {
		case '"', '\\', '/':
			buf = append(buf, c)
		case 'b':
			buf = append(buf, '\b')
		case 'f':
			buf = append(buf, '\f')
		case 'n':
			buf = append(buf, '\n')
		case 'r':
			buf = append(buf, '\r')
		case 't':
			buf = append(buf, '\t')
		case 'u':
			r, err := s.hex4(esc)
			if err != nil {
				return "", err
			}
			if utf16.IsSurrogate(r) && s.PeekAt(0) == '\\' && s.PeekAt(1) == 'u' {
				save := s.off
				s.off += 2
				r2, err := s.hex4(save)
				if err != nil {
					return "", err
				}
				if dr := utf16.DecodeRune(r, r2); dr != utf8.RuneError {
					r = dr
				} else {
					s.off = save
				}
			}
			buf = utf8.AppendRune(buf, r)
		default:
			return "", NewError(ErrBadEscape, esc, "unknown escape character %s", quoteByte(c))
		}
	}
}

func (s *Scanner) hex4(esc int) (rune, error) {
	if len(s.src)-s.off < 4 {
		return 0, NewError(ErrBadUnicode, esc, "need 4 hex digits")
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := s.src[s.off+i]
		var v byte
		switch {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v = c - 'A' + 10
		default:
			return 0, NewError(ErrBadUnicode, esc, "bad hex digit %s", quoteByte(c))
		}
		r = r<<4 | rune(v)
	}
	s.off += 4
	return r, nil
}

// Quote returns v as a double quoted SJSON string.
func Quote(v string) string {
	var sb strings.Builder
	sb.Grow(len(v) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigits[c>>4])
				sb.WriteByte(hexDigits[c&0xf])
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

const hexDigits = "0123456789abcdef"

// NeedsQuote reports whether key cannot be written as a bare identifier.
func NeedsQuote(key string) bool {
	if key == "" {
		return true
	}
	switch key {
	case "true", "false", "null":
		return true
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c <= ' ' || c == 0x7f {
			return true
		}
		switch c {
		case '"', '=', ':', ',', '/', '{', '}', '[', ']', '\\':
			return true
		}
	}
	return false
}
