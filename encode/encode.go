package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/format"
	"github.com/signadot/go-sjson/token"
)

type EncState struct {
	depth, indent int
	brackets      bool
	wire          bool
	sortKeys      bool

	format format.Format
	buf    bytes.Buffer

	Color func(config.Kind, ColorAttr, string) string
}

// Encode writes v to w. Nothing is written if v cannot be encoded.
func Encode(v *config.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.SJSONFormat, format.JSONFormat:
	default:
		return fmt.Errorf("%w: %s output is provided by package convert", ErrEncoding, es.format)
	}
	if !es.brackets {
		es.brackets = es.format.IsJSON()
	}
	var err error
	if v.IsObject() && !esBracket(es) {
		err = encodeMembers(v, es)
	} else {
		err = encode(v, es)
	}
	if err != nil {
		return err
	}
	if !es.wire && es.buf.Len() != 0 {
		es.buf.WriteByte('\n')
	}
	_, err = w.Write(es.buf.Bytes())
	return err
}

func writeNL(es *EncState) {
	if es.wire {
		return
	}
	es.buf.WriteByte('\n')
	es.buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func writeString(es *EncState, s string) {
	es.buf.WriteString(s)
}

func applyColor(es *EncState, k config.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}

func applyValueColor(es *EncState, k config.Kind, v string) string {
	return applyColor(es, k, ValueColor, v)
}

// Main encode function

func encode(v *config.Value, es *EncState) error {
	switch v.Kind() {
	case config.ObjectKind:
		return encodeObject(v, es)
	case config.ArrayKind:
		return encodeArray(v, es)
	case config.StringKind:
		encodeString(v.MustString(), es)
		return nil
	case config.DataKind:
		return encodeData(v, es)
	case config.IntegerKind, config.FloatKind:
		return encodeNumber(v, es)
	case config.BoolKind:
		writeString(es, applyValueColor(es, config.BoolKind, strconv.FormatBool(v.MustBool())))
		return nil
	default:
		writeString(es, applyValueColor(es, config.NilKind, "null"))
		return nil
	}
}

func keys(v *config.Value, es *EncState) []string {
	ks := v.Keys()
	if es.sortKeys {
		slices.Sort(ks)
	}
	return ks
}

// encodeMembers writes the entries of a root object without braces.
func encodeMembers(v *config.Value, es *EncState) error {
	for i, k := range keys(v, es) {
		if i > 0 {
			writeCommaSeparator(es, config.ObjectKind)
			writeNL(es)
		}
		writeField(es, k)
		if err := encode(v.Key(k), es); err != nil {
			return err
		}
	}
	return nil
}

func encodeObject(v *config.Value, es *EncState) error {
	ks := keys(v, es)
	writeString(es, applyColor(es, config.ObjectKind, SepColor, "{"))
	if len(ks) == 0 {
		writeString(es, applyColor(es, config.ObjectKind, SepColor, "}"))
		return nil
	}
	es.depth++
	for i, k := range ks {
		if i > 0 {
			writeCommaSeparator(es, config.ObjectKind)
		}
		writeNL(es)
		writeField(es, k)
		if err := encode(v.Key(k), es); err != nil {
			return err
		}
	}
	es.depth--
	writeNL(es)
	writeString(es, applyColor(es, config.ObjectKind, SepColor, "}"))
	return nil
}

func encodeArray(v *config.Value, es *EncState) error {
	writeString(es, applyColor(es, config.ArrayKind, SepColor, "["))
	if v.Size() == 0 {
		writeString(es, applyColor(es, config.ArrayKind, SepColor, "]"))
		return nil
	}
	es.depth++
	for i, e := range v.Elements() {
		if i > 0 {
			writeCommaSeparator(es, config.ArrayKind)
		}
		writeNL(es)
		if err := encode(e, es); err != nil {
			return err
		}
	}
	es.depth--
	writeNL(es)
	writeString(es, applyColor(es, config.ArrayKind, SepColor, "]"))
	return nil
}

// writeCommaSeparator separates entries. SJSON needs none between lines.
func writeCommaSeparator(es *EncState, k config.Kind) {
	if !es.wire && !isJSON(es) {
		return
	}
	writeString(es, applyColor(es, k, SepColor, ","))
}

func writeField(es *EncState, f string) {
	sep := " = "
	switch {
	case isJSON(es) && es.wire:
		sep = ":"
	case isJSON(es):
		sep = ": "
	case es.wire:
		sep = "="
	}
	if isJSON(es) || token.NeedsQuote(f) {
		f = token.Quote(f)
	}
	writeString(es, applyColor(es, config.ObjectKind, FieldColor, f))
	writeString(es, applyColor(es, config.ObjectKind, SepColor, sep))
}

func encodeString(s string, es *EncState) {
	writeString(es, applyValueColor(es, config.StringKind, token.Quote(s)))
}

func encodeData(v *config.Value, es *EncState) error {
	d := v.MustData()
	if isJSON(es) {
		encodeString(string(d), es)
		return nil
	}
	if !token.CanData(d) {
		return fmt.Errorf("%w: data contains a closing \"\"\" delimiter", ErrEncoding)
	}
	writeString(es, applyColor(es, config.DataKind, LiteralMultiColor, `"""`+string(d)+`"""`))
	return nil
}

func encodeNumber(v *config.Value, es *EncState) error {
	var s string
	if v.IsInteger() {
		s = strconv.FormatInt(v.MustInteger(), 10)
	} else {
		f := v.MustFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v has no text form", ErrEncoding, f)
		}
		s = config.FormatFloat(f)
	}
	writeString(es, applyValueColor(es, v.Kind(), s))
	return nil
}

// Format check helpers

func isJSON(es *EncState) bool {
	return es.format == format.JSONFormat
}

func esBracket(es *EncState) bool {
	switch es.format {
	case format.JSONFormat:
		return true
	default:
		return es.brackets
	}
}
