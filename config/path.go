package config

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed path expression selecting values in a tree:
//
//	$            the root
//	.name        the field name
//	.'a.b'       the field a.b, quoted
//	[3]          element 3
//	[*]          every element
//	..           the root and every descendant
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Subtree {
			buf.WriteString("..")
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			x = x.Next
			continue
		}
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	err := parseFrag(p[1:], root)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest := frag[2:]
			if rest == "" {
				return nil
			}
			if rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			next := &Path{}
			err := parseFrag(rest, next)
			if err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		err = parseFrag(rest, next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		err = parseFrag(frag[i+2:], next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the single value at path. An absent field yields the
// nil sentinel; a shape mismatch, an index out of range or a wildcard is
// an error.
func (v *Value) GetPath(path string) (*Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := v
	for p != nil {
		if p.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrPath)
		}
		if p.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrPath)
		}
		if p.Index != nil {
			if res.Kind() != ArrayKind {
				return nil, fmt.Errorf("%w: expected array, got %s", ErrWrongKind, res.Kind())
			}
			index := *p.Index
			if index < 0 || index >= len(res.elems) {
				return nil, fmt.Errorf("%w: index out of bounds %d (len %d)", ErrPath, index, len(res.elems))
			}
			res = res.elems[index]
			p = p.Next
			continue
		}
		if p.Field != nil {
			if res.Kind() != ObjectKind {
				return nil, fmt.Errorf("%w: expected object, got %s", ErrWrongKind, res.Kind())
			}
			if !res.Has(*p.Field) {
				return nil, nil
			}
			res = res.Key(*p.Field)
			p = p.Next
			continue
		}
		if p.Next != nil {
			return nil, fmt.Errorf("%w: unexpected next w/out index or field", ErrPath)
		}
		break
	}
	return res, nil
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// ListPath appends every value selected by path to dst. Values are not
// copied.
func (v *Value) ListPath(dst []*Value, path string) ([]*Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return v.listPath(dst, p), nil
}

func (v *Value) listPath(dst []*Value, p *Path) []*Value {
	if p == nil {
		return append(dst, v)
	}
	if p.Subtree {
		v.walk(func(_ string, x *Value) bool {
			dst = x.listPath(dst, p.Next)
			return true
		})
		return dst
	}
	switch v.Kind() {
	case ObjectKind:
		if p.IndexAll || p.Index != nil {
			return dst
		}
		if p.Field == nil {
			if p.Next == nil {
				return append(dst, v)
			}
			return dst
		}
		if !v.Has(*p.Field) {
			return dst
		}
		return v.Key(*p.Field).listPath(dst, p.Next)

	case ArrayKind:
		if p.Field != nil {
			return dst
		}
		if p.Index != nil {
			if e := v.Index(*p.Index); e != nil {
				dst = e.listPath(dst, p.Next)
			}
			return dst
		}
		if !p.IndexAll {
			if p.Next == nil {
				return append(dst, v)
			}
			return dst
		}
		for _, e := range v.elems {
			dst = e.listPath(dst, p.Next)
		}
		return dst

	default:
		if p.Field != nil || p.Index != nil || p.IndexAll || p.Next != nil {
			return dst
		}
		return append(dst, v)
	}
}

// Child returns the path of field key under the path prefix.
func Child(prefix, key string) string {
	return prefix + "." + pathString(key)
}

// Elem returns the path of element i under the path prefix.
func Elem(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

// WalkPaths calls f with the path and value of v and each descendant in
// pre-order. Returning false skips the children.
func (v *Value) WalkPaths(f func(path string, x *Value) bool) {
	v.walkPaths("$", f)
}

func (v *Value) walkPaths(path string, f func(string, *Value) bool) {
	if !f(path, v) {
		return
	}
	switch v.Kind() {
	case ObjectKind:
		for i, k := range v.keys {
			v.elems[i].walkPaths(Child(path, k), f)
		}
	case ArrayKind:
		for i, e := range v.elems {
			e.walkPaths(Elem(path, i), f)
		}
	}
}
