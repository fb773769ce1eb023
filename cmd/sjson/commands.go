package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func MainCommand(ctx context.Context) *cli.Command {
	cfg := &MainConfig{ctx: ctx}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: sjson/s, json/j, yaml/y, toml/t",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: sjson/s, json/j, yaml/y, toml/t",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sjson").
		WithSynopsis("sjson [opts] command [opts]").
		WithDescription("sjson is a tool for working with simplified json configuration files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sjsonMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			ViewCommand(cfg),
			GetCommand(cfg),
			FindCommand(cfg),
			ResourcesCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			LocateCommand(cfg),
			BuildCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-jobs n] files").
		WithDescription("parse files and report syntax errors").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("re-encode documents, optionally in another format").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the values selected by a path, such as $.a.b[0] or $..name").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find [-paths] <key> [files]").
		WithDescription("find the values stored under a key anywhere in documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

func ResourcesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResourcesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Resources, "resources").
		WithAliases("r", "res").
		WithSynopsis("resources [-strict] [-type t] [files]").
		WithDescription("list the resource references in documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return resources(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-r] [-text] a b").
		WithDescription("diff documents; exits 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-merge] <patch> <file>").
		WithDescription("apply a json patch or json merge patch, written in any input format, to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func LocateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LocateConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Locate, "locate").
		WithAliases("loc").
		WithSynopsis("locate <path> <file>").
		WithDescription("print the source location of the values selected by a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return locate(cfg, cc, args)
		})
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [-l] [dir]").
		WithDescription("patch the sources listed in a build.sjson file and write the results").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}
