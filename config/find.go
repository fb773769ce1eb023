package config

// Find collects, in pre-order, every value found directly under key in
// any Object at any depth of v, v itself excluded. Matches are not copied.
func (v *Value) Find(key string) []*Value {
	return v.FindAppend(nil, key)
}

// FindAppend is Find appending to dst.
func (v *Value) FindAppend(dst []*Value, key string) []*Value {
	switch v.Kind() {
	case ObjectKind:
		for i, k := range v.keys {
			if k == key {
				dst = append(dst, v.elems[i])
			}
			dst = v.elems[i].FindAppend(dst, key)
		}
	case ArrayKind:
		for _, e := range v.elems {
			dst = e.FindAppend(dst, key)
		}
	}
	return dst
}

// walk visits v and its descendants in pre-order with the key each is
// found under; array elements and the root are visited with "". Children
// are skipped when f returns false.
func (v *Value) walk(f func(key string, x *Value) bool) {
	v.walkKey("", f)
}

func (v *Value) walkKey(key string, f func(string, *Value) bool) {
	if !f(key, v) {
		return
	}
	switch v.Kind() {
	case ObjectKind:
		for i, k := range v.keys {
			v.elems[i].walkKey(k, f)
		}
	case ArrayKind:
		for _, e := range v.elems {
			e.walkKey("", f)
		}
	}
}

// Visit calls f for v and every descendant in pre-order, stopping at the
// first error. Returning false from f skips the children of x.
func (v *Value) Visit(f func(x *Value) (bool, error)) error {
	var err error
	v.walk(func(_ string, x *Value) bool {
		if err != nil {
			return false
		}
		var ok bool
		ok, err = f(x)
		return ok && err == nil
	})
	return err
}
