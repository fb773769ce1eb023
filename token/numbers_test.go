package token

import (
	"errors"
	"math"
	"testing"
)

func TestScanNumber(t *testing.T) {
	tests := []struct {
		in   string
		want Number
	}{
		{in: "0", want: Number{}},
		{in: "-0", want: Number{}},
		{in: "42", want: Number{Int: 42}},
		{in: "-17", want: Number{Int: -17}},
		{in: "3.14", want: Number{IsFloat: true, Float: 3.14}},
		{in: "1e2", want: Number{IsFloat: true, Float: 100}},
		{in: "1E+2", want: Number{IsFloat: true, Float: 100}},
		{in: "25e-1", want: Number{IsFloat: true, Float: 2.5}},
		{in: "-0.5", want: Number{IsFloat: true, Float: -0.5}},
		{in: "1.0", want: Number{IsFloat: true, Float: 1}},
	}
	for _, tt := range tests {
		s := NewScanner([]byte(tt.in))
		got, err := s.ScanNumber()
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if got.IsFloat != tt.want.IsFloat || got.Int != tt.want.Int ||
			math.Abs(got.Float-tt.want.Float) > 1e-12 {
			t.Errorf("%s: got %+v want %+v", tt.in, got, tt.want)
		}
		if !s.AtEnd() {
			t.Errorf("%s: not at end", tt.in)
		}
	}
}

func TestScanNumberErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{in: "007", err: ErrNumberLeadingZero},
		{in: "-01", err: ErrNumberLeadingZero},
		{in: "-", err: ErrNumber},
		{in: "1.", err: ErrNumber},
		{in: "1.e3", err: ErrNumber},
		{in: "1e", err: ErrNumber},
		{in: "1e+", err: ErrNumber},
		{in: "99999999999999999999", err: ErrNumberRange},
	}
	for _, tt := range tests {
		s := NewScanner([]byte(tt.in))
		_, err := s.ScanNumber()
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: got %v want %v", tt.in, err, tt.err)
		}
	}
}

func TestScanNumberStops(t *testing.T) {
	s := NewScanner([]byte("12, 13"))
	n, err := s.ScanNumber()
	if err != nil || n.Int != 12 || s.Offset() != 2 {
		t.Errorf("got %+v at %d (%v)", n, s.Offset(), err)
	}
}
