package main

import (
	"fmt"

	"github.com/signadot/go-sjson/config"
	"github.com/signadot/go-sjson/convert"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	i := 0
	return eachObjFile(cfg.MainConfig, cc, args, func(path string, v *config.Value) error {
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		i++
		if err := convert.Encode(v, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
		return nil
	})
}
