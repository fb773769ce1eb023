package main

import (
	"fmt"

	"github.com/signadot/go-sjson/convert"
	"github.com/signadot/go-sjson/dirbuild"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	dirPath := "."
	switch len(args) {
	case 0:
	case 1:
		dirPath = args[0]
	default:
		return fmt.Errorf("%w: build takes at most one directory", cli.ErrUsage)
	}
	dir, err := dirbuild.OpenDir(dirPath)
	if err != nil {
		return err
	}
	if cfg.List {
		files, err := dir.SourceFiles()
		if err != nil {
			return fmt.Errorf("error listing sources: %w", err)
		}
		for _, file := range files {
			fmt.Fprintln(cc.Out, file)
		}
		return nil
	}
	outs, err := dir.Build()
	if err != nil {
		return err
	}
	if dir.DestDir != "" && cfg.Out == "" {
		if err := dir.Write(outs); err != nil {
			return err
		}
		if cfg.V {
			theLog.Info("built", "dir", dirPath, "outputs", len(outs))
		}
		return nil
	}
	opts := cfg.encOpts(cc.Out)
	for i, out := range outs {
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := convert.Encode(out.Value, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", out.Source, err)
		}
	}
	return nil
}
