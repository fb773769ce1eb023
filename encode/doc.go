// Package encode writes config values as SJSON or JSON text.
//
// # Usage
//
//	// Encode to a writer
//	err := encode.Encode(v, os.Stdout)
//
//	// Encode to a string
//	s := encode.MustString(v)
//
//	// Encode as one line of JSON
//	err := encode.Encode(v, w, encode.EncodeJSON(), encode.EncodeWire(true))
//
// SJSON output omits the braces of the root object unless EncodeBrackets
// is set. Output parses back to an equal value: floats always carry a
// '.' or an exponent, and Data is written between """ delimiters.
//
// # Related Packages
//
//   - github.com/signadot/go-sjson/config - the value model
//   - github.com/signadot/go-sjson/parse - parse text to values
package encode
