package encode

import (
	"strings"

	"github.com/signadot/go-sjson/config"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind config.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
	LiteralMultiColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range config.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = config.IntegerKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = config.FloatKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = config.NilKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = config.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = config.ObjectKind
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Kind = config.StringKind
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = config.DataKind
	able.Attr = LiteralMultiColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k config.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k config.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
