package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "nodetool").
		WithSynopsis("nodetool [opts] command [opts]").
		WithDescription("nodetool walks, compares and validates sample model trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nodetoolMain(cfg, cc, args)
		}).
		WithSubs(
			ListCommand(cfg),
			OutlineCommand(cfg),
			SelectCommand(cfg),
			DiffCommand(cfg),
			ValidateCommand(cfg),
			CopyCommand(cfg))
}

func nodetoolMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("list").
		WithAliases("l", "ls").
		WithSynopsis("list").
		WithDescription("list the sample trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
	cfg.List = cmd
	return cmd
}

func OutlineCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OutlineConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("outline").
		WithAliases("o").
		WithSynopsis("outline <sample>...").
		WithDescription("print an outline of sample trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return outlineSamples(cfg, cc, args)
		})
	cfg.Outline = cmd
	return cmd
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("select").
		WithAliases("s", "sel").
		WithOpts(opts...).
		WithSynopsis("select [-p] <expr> <sample>...").
		WithDescription("select nodes for which an expression over TypeName, Name, Path, Depth, Value, Annotations and Children holds").
		WithRun(func(cc *cli.Context, args []string) error {
			return selectNodes(cfg, cc, args)
		})
	cfg.Select = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-text] <from> <to>").
		WithDescription("show the structural differences between two sample trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("validate").
		WithAliases("v", "val").
		WithOpts(opts...).
		WithSynopsis("validate [-max n] <sample>...").
		WithDescription("run node validation on sample trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return validateSamples(cfg, cc, args)
		})
	cfg.Validate = cmd
	return cmd
}

func CopyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CopyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("copy").
		WithAliases("c", "cp").
		WithOpts(opts...).
		WithSynopsis("copy [-annotate v] <sample>").
		WithDescription("deep copy a sample tree, check the copy is exact and print it").
		WithRun(func(cc *cli.Context, args []string) error {
			return copySample(cfg, cc, args)
		})
	cfg.Copy = cmd
	return cmd
}
