package encode

import "github.com/signadot/go-sjson/format"

type EncodeOption func(*EncState)

// EncodeFormat selects SJSON (the default) or JSON output. Other formats
// are written by package convert.
func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeJSON() EncodeOption {
	return EncodeFormat(format.JSONFormat)
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the number of spaces per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeWire writes everything on one line.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodeBrackets writes the braces of the root object.
func EncodeBrackets(v bool) EncodeOption {
	return func(es *EncState) { es.brackets = v }
}

// SortKeys writes object entries in key order rather than insertion order.
func SortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}
