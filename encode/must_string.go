package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/go-sjson/config"
)

func MustString(v *config.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
