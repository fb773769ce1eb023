package convert

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/encode"
	"github.com/signadot/go-sjson/format"
	"github.com/signadot/go-sjson/parse"
)

var ErrConvert = errors.New("conversion error")

// Decode reads d in format f.
func Decode(d []byte, f format.Format, opts ...parse.ParseOption) (*config.Value, error) {
	switch f {
	case format.SJSONFormat:
		return parse.Parse(d, opts...)
	case format.JSONFormat:
		return FromJSON(d)
	case format.YAMLFormat:
		return FromYAML(d)
	case format.TOMLFormat:
		return FromTOML(d)
	}
	return nil, fmt.Errorf("%w: %v", format.ErrBadFormat, f)
}

// Encode writes v to w in the format selected by opts. SJSON and JSON go
// through package encode and honour the remaining options; YAML and TOML
// ignore them.
func Encode(v *config.Value, w io.Writer, opts ...encode.EncodeOption) error {
	var (
		d   []byte
		err error
	)
	switch f := encode.FormatFromOpts(opts...); f {
	case format.SJSONFormat, format.JSONFormat:
		return encode.Encode(v, w, opts...)
	case format.YAMLFormat:
		d, err = ToYAML(v)
	case format.TOMLFormat:
		d, err = ToTOML(v)
	default:
		return fmt.Errorf("%w: %v", format.ErrBadFormat, f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
