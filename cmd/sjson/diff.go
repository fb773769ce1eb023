package main

import (
	"fmt"

	"github.com/signadot/go-sjson/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	if cfg.Text {
		txt, err := libdiff.DiffText(a, b, cfg.encOpts(nil)...)
		if err != nil {
			return err
		}
		if txt == "" {
			return nil
		}
		fmt.Fprint(cc.Out, txt)
		return cli.ExitCodeErr(1)
	}
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return nil
	}
	for _, c := range changes {
		fmt.Fprintln(cc.Out, c)
	}
	return cli.ExitCodeErr(1)
}
