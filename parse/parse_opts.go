package parse

import "github.com/signadot/go-sjson/token"

// DefaultMaxDepth bounds the nesting of arrays and objects.
const DefaultMaxDepth = 10000

// TagFunc computes the tag of a parsed value from the byte range
// [start, end) it occupies in src. The result is truncated to the width
// of config.Tag.
type TagFunc func(src []byte, start, end int) uint64

// TagOffset tags each value with its start offset.
func TagOffset(_ []byte, start, _ int) uint64 {
	return uint64(start)
}

type parseOpts struct {
	filename string
	tag      TagFunc
	tabWidth int
	maxDepth int
	maxSize  int
	terse    bool
}

type ParseOption func(*parseOpts)

// WithFilename names the input in error messages.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// WithTagFunc calls f once for every parsed value, children before their
// container, and stores the result as the value's tag.
func WithTagFunc(f TagFunc) ParseOption {
	return func(o *parseOpts) { o.tag = f }
}

// WithTabWidth sets the column width of a tab in error locations.
func WithTabWidth(n int) ParseOption {
	return func(o *parseOpts) { o.tabWidth = n }
}

// WithMaxDepth limits nesting; deeper input fails with ErrCapacity.
// n <= 0 removes the limit.
func WithMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// WithMaxSize rejects inputs longer than n bytes with ErrCapacity.
func WithMaxSize(n int) ParseOption {
	return func(o *parseOpts) { o.maxSize = n }
}

// Terse leaves the offending source line out of error messages.
func Terse() ParseOption {
	return func(o *parseOpts) { o.terse = true }
}

func newOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{tabWidth: token.DefaultTabWidth, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	if o.tabWidth <= 0 {
		o.tabWidth = token.DefaultTabWidth
	}
	return o
}
