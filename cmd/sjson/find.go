package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/encode"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires one argument, a key", cli.ErrUsage)
	}
	key := args[0]
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(file string, v *config.Value) error {
		if !cfg.Paths {
			for _, x := range v.Find(key) {
				fmt.Fprintln(cc.Out, wire(x))
			}
			return nil
		}
		v.WalkPaths(func(path string, x *config.Value) bool {
			if x.IsObject() && x.Has(key) {
				fmt.Fprintf(cc.Out, "%s: %s\n", config.Child(path, key), wire(x.Key(key)))
			}
			return true
		})
		return nil
	})
}

// wire renders v on one line, falling back to JSON for values SJSON
// cannot hold.
func wire(v *config.Value) string {
	buf := &bytes.Buffer{}
	if err := encode.Encode(v, buf, encode.EncodeWire(true), encode.EncodeBrackets(true)); err != nil {
		return v.String()
	}
	return buf.String()
}
