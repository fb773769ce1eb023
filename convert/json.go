package convert

import (
	"bytes"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/encode"
)

// FromJSON decodes a JSON document, which may contain comments and
// trailing commas. Numbers without fraction or exponent are Integers.
func FromJSON(d []byte) (*config.Value, error) {
	v := config.Null()
	if err := v.UnmarshalJSON(jsonc.ToJSON(d)); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrConvert, err)
	}
	return v, nil
}

// ToJSON renders v as indented JSON.
func ToJSON(v *config.Value) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(v, buf, encode.EncodeJSON()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
