package token

// ScanData scans a triple quoted data block. The bytes between the
// delimiters are kept verbatim. The block ends at the first `"""` that is
// not followed by a fourth quote, so quotes may end the data itself.
func (s *Scanner) ScanData() ([]byte, error) {
	start := s.off
	for range 3 {
		if err := s.Consume('"'); err != nil {
			return nil, err
		}
	}
	buf := []byte{}
	for {
		if s.off+2 >= len(s.src) {
			s.off = len(s.src)
			return nil, NewError(ErrUnterminated, start, "data block")
		}
		if s.src[s.off] == '"' && s.src[s.off+1] == '"' && s.src[s.off+2] == '"' &&
			!(s.off+3 < len(s.src) && s.src[s.off+3] == '"') {
			s.off += 3
			return buf, nil
		}
		buf = append(buf, s.src[s.off])
		s.off++
	}
}

// CanData reports whether d can be written as a data block that scans back
// to exactly d.
func CanData(d []byte) bool {
	for i := 0; i+2 < len(d); i++ {
		if d[i] == '"' && d[i+1] == '"' && d[i+2] == '"' {
			j := i + 3
			for j < len(d) && d[j] == '"' {
				j++
			}
			if j < len(d) {
				return false
			}
			return true
		}
	}
	return true
}
