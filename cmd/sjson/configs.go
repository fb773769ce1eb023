package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/encode"
	"github.com/signadot/go-sjson/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	B       bool `cli:"name=b desc='encode the root object with braces'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Sort    bool `cli:"name=sort desc='sort object keys'"`
	V       bool `cli:"name=v desc='log progress to stderr'"`

	S bool `cli:"name=s aliases=sjson desc='do i/o in sjson'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	T bool `cli:"name=t aliases=toml desc='do i/o in toml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	ctx context.Context
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat returns the format selected by -s, -j, -y or -t.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.S:
		return format.SJSONFormat, true
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.T:
		return format.TOMLFormat, true
	}
	return 0, false
}

// inFormat returns the format to read path in: -I, then the format flags,
// then the extension of path.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return format.SJSONFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
		encode.EncodeBrackets(cfg.B),
		encode.SortKeys(cfg.Sort),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) context() context.Context {
	if cfg.ctx == nil {
		return context.Background()
	}
	return cfg.ctx
}

type CheckConfig struct {
	*MainConfig
	Jobs  int  `cli:"name=jobs desc='number of files parsed at once'"`
	Terse bool `cli:"name=terse desc='omit the source line from messages'"`

	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type FindConfig struct {
	*MainConfig
	Paths bool `cli:"name=paths desc='print the paths of the values found'"`

	Find *cli.Command
}

type ResourcesConfig struct {
	*MainConfig
	Strict bool   `cli:"name=strict desc='only accept the $resource_name form'"`
	Type   string `cli:"name=type desc='only list resources of this type'"`

	Resources *cli.Command
}

func (cfg *ResourcesConfig) refFormat() config.ReferenceFormat {
	if cfg.Strict {
		return config.Table
	}
	return config.Both
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=text desc='line diff of the encoded documents'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='the patch is a json merge patch'"`

	Patch *cli.Command
}

type LocateConfig struct {
	*MainConfig
	Locate *cli.Command
}

type BuildConfig struct {
	*MainConfig
	List bool `cli:"name=l aliases=list desc='list the source files'"`

	Build *cli.Command
}
