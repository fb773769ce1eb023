package main

import (
	"fmt"

	"github.com/signadot/go-sjson/config"

	"github.com/scott-cotton/cli"
)

func resources(cfg *ResourcesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resources.Parse(cc, args)
	if err != nil {
		cfg.Resources.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	rf := cfg.refFormat()
	return eachObjFile(cfg.MainConfig, cc, args, func(file string, v *config.Value) error {
		n := 0
		v.WalkPaths(func(path string, x *config.Value) bool {
			if path == "$" || !x.IsResource(cfg.Type, rf) {
				return true
			}
			r, err := x.AsResourceRef(rf)
			if err != nil {
				return false
			}
			n++
			fmt.Fprintf(cc.Out, "%s\t%s\t%s\n", file, path, r)
			return false
		})
		if cfg.V {
			theLog.Info("resources", "file", file, "format", rf, "count", n)
		}
		return nil
	})
}
