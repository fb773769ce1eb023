// Package parse parses SJSON text into config values.
//
// # Usage
//
//	// Parse SJSON text; the root braces are optional
//	v, err := parse.Parse([]byte(`name = "alice", size = [1, 2]`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	v, err := parse.ParseString(`{ a: 1 }`)
//
//	// Parse with options
//	v, err := parse.Parse(data, parse.WithFilename("settings.sjson"))
//
//	// Parse recording source offsets for later diagnostics
//	v, es := parse.ParseTraced("settings.sjson", data)
//	if es.Failed() {
//	    return es.Err()
//	}
//	n := v.GetInteger("count", es)
//
// # Syntax
//
// Keys may be bare identifiers. Key and value are separated by '=' or
// ':'. Commas are optional and count as whitespace, so trailing commas
// are allowed. Comments are // to end of line and /* */. Text between
// """ delimiters is kept verbatim as a Data value.
//
// Errors are *Error values matching one of ErrLexical, ErrStructural or
// ErrCapacity, plus the specific cause, with errors.Is. A failed parse
// never returns a partial value.
//
// # Related Packages
//
//   - github.com/signadot/go-sjson/config - the value model
//   - github.com/signadot/go-sjson/encode - encode values to text
//   - github.com/signadot/go-sjson/token - lexical primitives
package parse
