package parse

import (
	"errors"
	"os"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/debug"
	"github.com/signadot/go-sjson/token"
)

// Parse parses an SJSON document. The result is always an Object, the
// root whose braces are optional. On error no value is returned.
func Parse(d []byte, opts ...ParseOption) (*config.Value, error) {
	return parse(d, newOpts(opts))
}

func ParseString(s string, opts ...ParseOption) (*config.Value, error) {
	return Parse([]byte(s), opts...)
}

// ParseFile reads and parses path. Errors name path unless WithFilename
// is given.
func ParseFile(path string, opts ...ParseOption) (*config.Value, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d, append([]ParseOption{WithFilename(path)}, opts...)...)
}

// ParseTagged parses d calling f for every value, see WithTagFunc.
func ParseTagged(d []byte, f TagFunc, opts ...ParseOption) (*config.Value, error) {
	return Parse(d, append(opts[:len(opts):len(opts)], WithTagFunc(f))...)
}

// ParseTraced parses d tagging every value with its offset, and returns
// an ErrorState over d for reporting problems found later in the tree.
// A parse failure is recorded in the ErrorState and the value is nil.
func ParseTraced(file string, d []byte, opts ...ParseOption) (*config.Value, *config.ErrorState) {
	o := newOpts(append([]ParseOption{WithFilename(file)}, opts...))
	o.tag = TagOffset
	es := config.NewErrorState(file, d)
	es.TabWidth = o.tabWidth
	v, err := parse(d, o)
	if err != nil {
		es.SetErr(err)
		return nil, es
	}
	return v, es
}

type parser struct {
	s     *token.Scanner
	opts  *parseOpts
	depth int
}

func parse(d []byte, o *parseOpts) (*config.Value, error) {
	p := &parser{s: token.NewScanner(d), opts: o}
	if o.maxSize > 0 && len(d) > o.maxSize {
		return nil, p.wrap(token.NewError(ErrTooLarge, 0, "%d bytes, limit %d", len(d), o.maxSize))
	}
	p.s.SkipBOM()
	v, err := p.root()
	if err != nil {
		pe := p.wrap(err)
		if debug.Parse() {
			debug.Logf("parse failed %s: %v", pe.Pos(d), pe.Err)
		}
		return nil, pe
	}
	return v, nil
}

// wrap turns a scanner error into an *Error located in the source.
func (p *parser) wrap(err error) *Error {
	src := p.s.Source()
	off := p.s.Offset()
	var te *token.Error
	if errors.As(err, &te) {
		off = te.Offset
	}
	line, col := token.LineCol(src, off, p.opts.tabWidth)
	_, ctx := token.LineAt(src, off)
	return &Error{
		Class:   classify(err, src),
		Err:     err,
		File:    p.opts.filename,
		Offset:  off,
		Line:    line,
		Column:  col,
		Context: string(ctx),
		terse:   p.opts.terse,
	}
}

func (p *parser) tag(v *config.Value, start int) {
	if p.opts.tag == nil {
		return
	}
	v.SetTag(config.Tag(p.opts.tag(p.s.Source(), start, p.s.Offset())))
}

func (p *parser) root() (*config.Value, error) {
	if err := p.s.SkipSpace(); err != nil {
		return nil, err
	}
	start := p.s.Offset()
	if p.s.Peek() == '{' {
		v, err := p.object()
		if err != nil {
			return nil, err
		}
		if err := p.s.SkipSpace(); err != nil {
			return nil, err
		}
		if !p.s.AtEnd() {
			return nil, token.NewError(ErrTrailing, p.s.Offset(), "after root object")
		}
		return v, nil
	}
	obj := config.NewObject()
	for !p.s.AtEnd() {
		if err := p.member(obj); err != nil {
			return nil, err
		}
		if err := p.s.SkipSpace(); err != nil {
			return nil, err
		}
	}
	p.tag(obj, start)
	return obj, nil
}

// member parses one key, separator and value into obj.
func (p *parser) member(obj *config.Value) error {
	keyStart := p.s.Offset()
	key, err := p.s.ScanKey()
	if err != nil {
		return err
	}
	if err := p.s.SkipSpace(); err != nil {
		return err
	}
	if p.s.Peek() == ':' {
		err = p.s.Consume(':')
	} else {
		err = p.s.Consume('=')
	}
	if err != nil {
		return err
	}
	v, err := p.value()
	if err != nil {
		return err
	}
	if err := obj.Add(key, v); err != nil {
		return token.NewError(ErrDuplicateKey, keyStart, "%q", key)
	}
	return nil
}

func (p *parser) value() (*config.Value, error) {
	if err := p.s.SkipSpace(); err != nil {
		return nil, err
	}
	start := p.s.Offset()
	var (
		v   *config.Value
		err error
	)
	switch c := p.s.Peek(); {
	case c == '{':
		return p.object()
	case c == '[':
		return p.array()
	case p.s.IsDataStart():
		var d []byte
		d, err = p.s.ScanData()
		v = config.FromData(d)
	case c == '"':
		var s string
		s, err = p.s.ScanString()
		v = config.FromString(s)
	case c == '-' || (c >= '0' && c <= '9'):
		var n token.Number
		n, err = p.s.ScanNumber()
		if n.IsFloat {
			v = config.FromFloat(n.Float)
		} else {
			v = config.FromInt(n.Int)
		}
	case c == 't':
		err = p.s.ConsumeLiteral("true")
		v = config.FromBool(true)
	case c == 'f':
		err = p.s.ConsumeLiteral("false")
		v = config.FromBool(false)
	case c == 'n':
		err = p.s.ConsumeLiteral("null")
		v = config.Null()
	case p.s.AtEnd():
		return nil, token.NewError(token.ErrUnexpectedEnd, start, "looking for a value")
	default:
		return nil, token.NewError(token.ErrUnexpected, start, "%q where a value was expected", c)
	}
	if err != nil {
		return nil, err
	}
	p.tag(v, start)
	return v, nil
}

func (p *parser) push() error {
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return token.NewError(ErrTooDeep, p.s.Offset(), "limit %d", p.opts.maxDepth)
	}
	return nil
}

func (p *parser) object() (*config.Value, error) {
	start := p.s.Offset()
	if err := p.push(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	if err := p.s.Consume('{'); err != nil {
		return nil, err
	}
	obj := config.NewObject()
	for {
		if err := p.s.SkipSpace(); err != nil {
			return nil, err
		}
		if p.s.Peek() == '}' {
			break
		}
		if err := p.member(obj); err != nil {
			return nil, err
		}
	}
	if err := p.s.Consume('}'); err != nil {
		return nil, err
	}
	p.tag(obj, start)
	return obj, nil
}

func (p *parser) array() (*config.Value, error) {
	start := p.s.Offset()
	if err := p.push(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	if err := p.s.Consume('['); err != nil {
		return nil, err
	}
	arr := config.FromSlice(nil)
	for {
		if err := p.s.SkipSpace(); err != nil {
			return nil, err
		}
		if p.s.Peek() == ']' {
			break
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr.Append(v)
	}
	if err := p.s.Consume(']'); err != nil {
		return nil, err
	}
	p.tag(arr, start)
	return arr, nil
}
