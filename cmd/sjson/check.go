package main

import (
	"fmt"

	"github.com/signadot/go-sjson/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	var opts []parse.ParseOption
	if cfg.Terse {
		opts = append(opts, parse.Terse())
	}
	res, err := parse.ParseFiles(cfg.context(), args, cfg.Jobs, opts...)
	if err != nil {
		return err
	}
	failed := 0
	for _, r := range res {
		if r.Err == nil {
			if cfg.V {
				theLog.Info("ok", "file", r.Path, "entries", r.Value.Size())
			}
			continue
		}
		failed++
		fmt.Fprintln(cc.Out, r.Err)
	}
	if cfg.V {
		theLog.Info("checked", "files", len(res), "failed", failed)
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
