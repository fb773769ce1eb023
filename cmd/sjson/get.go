package main

import (
	"fmt"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/convert"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	path = normPath(path)
	if _, err := config.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	n := 0
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(file string, v *config.Value) error {
		vs, err := v.ListPath(nil, path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		for _, x := range vs {
			if n > 0 {
				if err := writeSep(cc.Out); err != nil {
					return err
				}
			}
			n++
			if err := convert.Encode(x, cc.Out, opts...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
		return nil
	})
}
