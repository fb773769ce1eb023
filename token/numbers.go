package token

import (
	"strconv"
)

// Number is a scanned numeric literal. A literal with neither fraction nor
// exponent is an integer.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

// ScanNumber scans
//
//	-? (0 | [1-9][0-9]*) (. [0-9]+)? ([eE] [+-]? [0-9]+)?
func (s *Scanner) ScanNumber() (Number, error) {
	start := s.off
	d := s.src
	i := s.off
	if i < len(d) && d[i] == '-' {
		i++
	}
	n := asciiDigits(d[i:])
	switch {
	case n == 0:
		return Number{}, NewError(ErrNumber, start, "expected a digit")
	case n > 1 && d[i] == '0':
		return Number{}, NewError(ErrNumberLeadingZero, start, "%s", d[start:i+n])
	}
	i += n
	isFloat := false
	if i < len(d) && d[i] == '.' {
		i++
		f := asciiDigits(d[i:])
		if f == 0 {
			return Number{}, NewError(ErrNumber, i, "expected a digit after '.'")
		}
		i += f
		isFloat = true
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < len(d) && (d[i] == '+' || d[i] == '-') {
			i++
		}
		e := asciiDigits(d[i:])
		if e == 0 {
			return Number{}, NewError(ErrNumber, i, "expected a digit in exponent")
		}
		i += e
		isFloat = true
	}
	lit := string(d[start:i])
	s.off = i
	if !isFloat {
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return Number{}, NewError(ErrNumberRange, start, "%s", lit)
		}
		return Number{Int: v}, nil
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Number{}, NewError(ErrNumberRange, start, "%s", lit)
	}
	return Number{IsFloat: true, Float: v}, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
