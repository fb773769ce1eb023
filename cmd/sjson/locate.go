package main

import (
	"fmt"

	"github.com/signadot/go-sjson/parse"

	"github.com/scott-cotton/cli"
)

func locate(cfg *LocateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Locate.Parse(cc, args)
	if err != nil {
		cfg.Locate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: locate requires 2 arguments, a path and an sjson file", cli.ErrUsage)
	}
	path, file := normPath(args[0]), args[1]
	d, err := readObjFile(cc, file)
	if err != nil {
		return err
	}
	v, es := parse.ParseTraced(file, d)
	if es.Failed() {
		return es.Err()
	}
	vs, err := v.ListPath(nil, path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(vs) == 0 {
		return fmt.Errorf("%s: nothing at %s", file, path)
	}
	for _, x := range vs {
		line, col := es.Location(x)
		fmt.Fprintf(cc.Out, "%s(%d:%d): %s\n", file, line, col, x.Kind())
	}
	return nil
}
