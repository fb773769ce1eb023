package encode_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/encode"
	"github.com/signadot/go-sjson/format"
	"github.com/signadot/go-sjson/parse"
)

func sample() *config.Value {
	return config.FromKeyVals([]config.KeyVal{
		{Key: "a", Val: config.FromInt(1)},
		{Key: "b", Val: config.FromSlice([]*config.Value{config.FromInt(1), config.FromFloat(2.5)})},
		{Key: "c", Val: config.FromKeyVals([]config.KeyVal{{Key: "d", Val: config.FromString("x y")}})},
		{Key: "k ey", Val: config.Null()},
		{Key: "e", Val: config.FromData([]byte("raw"))},
	})
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		opts []encode.EncodeOption
		want string
	}{
		{
			name: "sjson",
			want: `a = 1
b = [
  1
  2.5
]
c = {
  d = "x y"
}
"k ey" = null
e = """raw"""
`,
		},
		{
			name: "brackets",
			opts: []encode.EncodeOption{encode.EncodeBrackets(true), encode.Indent(4)},
			want: `{
    a = 1
    b = [
        1
        2.5
    ]
    c = {
        d = "x y"
    }
    "k ey" = null
    e = """raw"""
}
`,
		},
		{
			name: "sjson wire",
			opts: []encode.EncodeOption{encode.EncodeWire(true)},
			want: `a=1,b=[1,2.5],c={d="x y"},"k ey"=null,e="""raw"""`,
		},
		{
			name: "json wire",
			opts: []encode.EncodeOption{encode.EncodeJSON(), encode.EncodeWire(true)},
			want: `{"a":1,"b":[1,2.5],"c":{"d":"x y"},"k ey":null,"e":"raw"}`,
		},
		{
			name: "json",
			opts: []encode.EncodeOption{encode.EncodeFormat(format.JSONFormat)},
			want: `{
  "a": 1,
  "b": [
    1,
    2.5
  ],
  "c": {
    "d": "x y"
  },
  "k ey": null,
  "e": "raw"
}
`,
		},
		{
			name: "sorted",
			opts: []encode.EncodeOption{encode.SortKeys(true), encode.EncodeWire(true)},
			want: `a=1,b=[1,2.5],c={d="x y"},e="""raw""","k ey"=null`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := encode.Encode(sample(), buf, tt.opts...); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		v    *config.Value
		want string
	}{
		{config.FromFloat(1), "1.0"},
		{config.FromFloat(-0.0), "0.0"},
		{config.FromFloat(1e21), "1e+21"},
		{config.FromFloat(0.1), "0.1"},
		{config.FromInt(-7), "-7"},
		{config.FromBool(false), "false"},
		{nil, "null"},
		{config.FromString("a\"b\n"), `"a\"b\n"`},
		{config.FromSlice(nil), "[]"},
		{config.NewObject(), ""},
	}
	for _, tt := range tests {
		if got := encode.MustString(tt.v); got != tt.want {
			t.Errorf("got %q want %q", got, tt.want)
		}
	}
	if got := encode.MustString(config.NewObject(), encode.EncodeBrackets(true)); got != "{}" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		v    *config.Value
		opts []encode.EncodeOption
	}{
		{"nan", config.FromKeyVals([]config.KeyVal{{Key: "f", Val: config.FromFloat(math.NaN())}}), nil},
		{"inf", config.FromSlice([]*config.Value{config.FromFloat(math.Inf(-1))}), nil},
		{"data delimiter", config.FromKeyVals([]config.KeyVal{{Key: "d", Val: config.FromData([]byte(`a"""b`))}}), nil},
		{"yaml", config.NewObject(), []encode.EncodeOption{encode.EncodeFormat(format.YAMLFormat)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			err := encode.Encode(tt.v, buf, tt.opts...)
			if !errors.Is(err, encode.ErrEncoding) {
				t.Errorf("got %v", err)
			}
			if buf.Len() != 0 {
				t.Errorf("partial output %q", buf.String())
			}
		})
	}
}

func TestEncodeColors(t *testing.T) {
	colors := &encode.Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[encode.Colorable]func(string, ...any) string{
			{Kind: config.ObjectKind, Attr: encode.FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
		},
	}
	v := config.FromKeyVals([]config.KeyVal{{Key: "a", Val: config.FromInt(1)}})
	got := encode.MustString(v, encode.EncodeColors(colors))
	if got != "<a> = 1" {
		t.Errorf("got %q", got)
	}
	if encode.NewColors().Get(config.DataKind, encode.ValueColor) == nil {
		t.Error("missing default")
	}
}

var roundTrips = []string{
	``,
	`a = 1`,
	`{ a: 1, b: "two", c: [1 2 3] }`,
	`
// comment
name = "hero" /* inline */ size = 1.5
nested = { deeper = { list = [ {x = 1} {y = -2.5e-3} [] {} ] } }
flags = [true false null]
code = """
void main() { return "x"; }
"""
"quoted key" = "é\t\\"
`,
	`big = 9223372036854775807, small = -9223372036854775808, f = 1e2`,
	`edge = """ends with quote""""`,
}

func TestRoundTrip(t *testing.T) {
	for _, in := range roundTrips {
		v, err := parse.ParseString(in)
		if err != nil {
			t.Errorf("parse %q: %v", in, err)
			continue
		}
		for _, opts := range [][]encode.EncodeOption{
			nil,
			{encode.EncodeWire(true)},
			{encode.EncodeBrackets(true)},
			{encode.SortKeys(true)},
		} {
			out := encode.MustString(v, opts...)
			back, err := parse.ParseString(out)
			if err != nil {
				t.Errorf("reparse %q: %v", out, err)
				continue
			}
			if !config.Equal(v, back) {
				t.Errorf("round trip of %q gave\n%s", in, out)
			}
		}
	}
}

func TestRoundTripKeepsKinds(t *testing.T) {
	v, err := parse.ParseString(`i = 1, f = 1.0, d = """x"""`)
	if err != nil {
		t.Fatal(err)
	}
	back, err := parse.ParseString(encode.MustString(v))
	if err != nil {
		t.Fatal(err)
	}
	for k, want := range map[string]config.Kind{"i": config.IntegerKind, "f": config.FloatKind, "d": config.DataKind} {
		if got := back.Key(k).Kind(); got != want {
			t.Errorf("%s: got %s want %s", k, got, want)
		}
	}
	if !strings.Contains(encode.MustString(v), "f = 1.0") {
		t.Error(encode.MustString(v))
	}
}
