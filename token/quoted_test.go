package token

import (
	"errors"
	"testing"
)

func TestScanString(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{in: `"abc"`, out: "abc"},
		{in: `"a\nb"`, out: "a\nb"},
		{in: `"\"\\\/\b\f\n\r\t"`, out: "\"\\/\b\f\n\r\t"},
		{in: `"é"`, out: "\xC3\xA9"},
		{in: `"∞"`, out: "∞"},
		{in: `"😀"`, out: "😀"},
		{in: `"\ud83d"`, out: "�"},
		{in: "\"raw\nline\"", out: "raw\nline"},
		{in: `""`, out: ""},
	}
	for _, tt := range tests {
		s := NewScanner([]byte(tt.in))
		got, err := s.ScanString()
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if got != tt.out {
			t.Errorf("%s: got %q want %q", tt.in, got, tt.out)
		}
		if !s.AtEnd() {
			t.Errorf("%s: not at end", tt.in)
		}
	}
}

func TestScanStringErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{in: `"abc`, err: ErrUnterminated},
		{in: `"abc\`, err: ErrUnterminated},
		{in: `"\q"`, err: ErrBadEscape},
		{in: `"\u12"`, err: ErrBadUnicode},
		{in: `"\u12zz"`, err: ErrBadUnicode},
	}
	for _, tt := range tests {
		s := NewScanner([]byte(tt.in))
		_, err := s.ScanString()
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: got %v want %v", tt.in, err, tt.err)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, v := range []string{
		`"`,
		`\`,
		"\t\n\r\b\f",
		"∞∞",
		"\x01\x7f",
		`"""''`,
		`f[0]`,
		"",
	} {
		q := Quote(v)
		s := NewScanner([]byte(q))
		got, err := s.ScanString()
		if err != nil {
			t.Errorf("error scanning %s (from %q): %v", q, v, err)
			continue
		}
		if got != v {
			t.Errorf("scan(quote(%q)) = %q", v, got)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		key  string
		need bool
	}{
		{"abc", false},
		{"$resource_name", false},
		{"a.b-c", false},
		{"", true},
		{"a b", true},
		{"a=b", true},
		{"a:b", true},
		{"//x", true},
		{"true", true},
		{`"x`, true},
	}
	for _, tt := range tests {
		if got := NeedsQuote(tt.key); got != tt.need {
			t.Errorf("NeedsQuote(%q) = %v", tt.key, got)
		}
	}
}

func TestScanData(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{in: `"""abc"""`, out: "abc"},
		{in: `""""""`, out: ""},
		{in: "\"\"\"line 1\nline \"2\"\n\"\"\"", out: "line 1\nline \"2\"\n"},
		{in: `"""a""""`, out: `a"`},
		{in: `"""a"""""""`, out: `a""""`},
	}
	for _, tt := range tests {
		s := NewScanner([]byte(tt.in))
		got, err := s.ScanData()
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if string(got) != tt.out {
			t.Errorf("%s: got %q want %q", tt.in, got, tt.out)
		}
		if !s.AtEnd() {
			t.Errorf("%s: not at end", tt.in)
		}
	}
	s := NewScanner([]byte(`"""abc""`))
	if _, err := s.ScanData(); !errors.Is(err, ErrUnterminated) {
		t.Errorf("got %v", err)
	}
}

func TestCanData(t *testing.T) {
	tests := []struct {
		d  string
		ok bool
	}{
		{"abc", true},
		{`a"`, true},
		{`a"""`, true},
		{`""`, true},
		{`a"""b`, false},
	}
	for _, tt := range tests {
		if got := CanData([]byte(tt.d)); got != tt.ok {
			t.Errorf("CanData(%q) = %v", tt.d, got)
			continue
		}
		if !tt.ok {
			continue
		}
		s := NewScanner([]byte(`"""` + tt.d + `"""`))
		got, err := s.ScanData()
		if err != nil || string(got) != tt.d {
			t.Errorf("data %q scanned back as %q (%v)", tt.d, got, err)
		}
	}
}
