package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Format int

const (
	SJSONFormat Format = iota
	JSONFormat
	YAMLFormat
	TOMLFormat
)

var ErrBadFormat = errors.New("bad format")

var byName = map[string]Format{
	"s":     SJSONFormat,
	"sjson": SJSONFormat,
	"j":     JSONFormat,
	"json":  JSONFormat,
	"y":     YAMLFormat,
	"yaml":  YAMLFormat,
	"yml":   YAMLFormat,
	"t":     TOMLFormat,
	"toml":  TOMLFormat,
}

func ParseFormat(v string) (Format, error) {
	f, ok := byName[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath guesses the format of a file from its extension, defaulting to
// SJSON.
func FromPath(path string) Format {
	ext := filepath.Ext(path)
	if ext == "" {
		return SJSONFormat
	}
	f, err := ParseFormat(ext[1:])
	if err != nil {
		return SJSONFormat
	}
	return f
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case SJSONFormat:
		return []byte("sjson"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for f.
func (f Format) Suffix() string {
	return "." + f.String()
}

func (f Format) IsJSON() bool { return f == JSONFormat }
