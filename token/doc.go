// Package token provides the lexical primitives of the SJSON dialect.
//
// A Scanner walks a byte buffer and exposes the small set of operations the
// recursive descent parser is built from: skipping whitespace, commas and
// C/C++ style comments, consuming expected characters and keywords, and
// scanning strings, triple quoted data blocks, bare identifiers and numbers.
//
// Scanner methods never allocate a tree and never recover from errors; any
// failure is returned as a *Error carrying the byte offset and one of the
// sentinel errors declared in errs.go.
//
// LineCol and LineAt map byte offsets back to 1-based lines and columns for
// diagnostics.
package token
