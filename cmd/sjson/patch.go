package main

import (
	"fmt"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/convert"
	sjpatch "github.com/signadot/go-sjson/patch"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: error decoding patch %s: %w", cli.ErrUsage, args[0], err)
	}
	target, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var res *config.Value
	if cfg.Merge {
		res, err = sjpatch.MergeValue(target, p)
	} else {
		res, err = sjpatch.ApplyValue(target, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if err := convert.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
