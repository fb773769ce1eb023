package token

// ScanKey scans an object key: a quoted string or a bare identifier. A bare
// identifier runs up to whitespace, '=' or ':'.
func (s *Scanner) ScanKey() (string, error) {
	if s.Peek() == '"' {
		return s.ScanString()
	}
	start := s.off
	switch c := s.Peek(); c {
	case 0:
		if s.AtEnd() {
			return "", NewError(ErrUnexpectedEnd, s.off, "looking for a key")
		}
	case '{', '}', '[', ']', '=', ':':
		return "", NewError(ErrUnexpected, s.off, "%s where a key was expected", quoteByte(c))
	}
	for {
		if s.off >= len(s.src) {
			return "", NewError(ErrUnexpectedEnd, start, "reached end of input while reading key")
		}
		switch s.src[s.off] {
		case ' ', '\t', '\n', '\r', '=', ':':
			return string(s.src[start:s.off]), nil
		}
		s.off++
	}
}
