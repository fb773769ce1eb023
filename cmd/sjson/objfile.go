package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/convert"
	"github.com/signadot/go-sjson/format"
	"github.com/signadot/go-sjson/parse"

	"github.com/scott-cotton/cli"
)

func readObjFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getObjFile reads and decodes path, "-" meaning standard input.
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*config.Value, error) {
	d, err := readObjFile(cc, path)
	if err != nil {
		return nil, err
	}
	f := cfg.inFormat(path)
	if f == format.SJSONFormat {
		return parse.Parse(d, parse.WithFilename(path))
	}
	return convert.Decode(d, f)
}

// eachObjFile calls f with each decoded file of args, or standard input
// if args is empty.
func eachObjFile(cfg *MainConfig, cc *cli.Context, args []string, f func(string, *config.Value) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		v, err := getObjFile(cfg, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := f(arg, v); err != nil {
			return err
		}
	}
	return nil
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}

// normPath lets paths omit the leading "$".
func normPath(p string) string {
	switch {
	case p == "", p[0] == '$':
		return p
	case p[0] == '[' || p[0] == '.':
		return "$" + p
	}
	return "$." + p
}
