package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nodebase/fhir"
	"github.com/signadot/nodebase/model"
	"github.com/signadot/nodebase/nodediff"
	"github.com/signadot/nodebase/outline"
	"github.com/signadot/nodebase/validate"
	"github.com/signadot/nodebase/walk"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: list takes no arguments", cli.ErrUsage)
	}
	for _, name := range fhir.SampleNames() {
		n, _ := fhir.Sample(name)
		fmt.Fprintf(cc.Out, "%s\t%s\t%d nodes\n", name, n.TypeName(), walk.Count(n))
	}
	return nil
}

func outlineSamples(cfg *OutlineConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Outline.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: outline requires at least one sample", cli.ErrUsage)
	}
	for _, arg := range args {
		n, err := sample(arg)
		if err != nil {
			return err
		}
		if err := outline.Encode(n, cc.Out, cfg.outlineOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error writing outline of %s: %w", arg, err)
		}
	}
	return nil
}

func selectNodes(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: select requires an expression and at least one sample", cli.ErrUsage)
	}
	q, err := walk.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, arg := range args[1:] {
		n, err := sample(arg)
		if err != nil {
			return err
		}
		matches, err := q.Select(n)
		if err != nil {
			return fmt.Errorf("error selecting from %s: %w", arg, err)
		}
		for _, m := range matches {
			if cfg.Paths {
				fmt.Fprintln(cc.Out, m.Path)
				continue
			}
			fmt.Fprintf(cc.Out, "%s: %s", m.Path, outline.String(m.Node, cfg.outlineOpts(cc.Out)...))
		}
	}
	return nil
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 samples", cli.ErrUsage)
	}
	from, err := sample(args[0])
	if err != nil {
		return err
	}
	to, err := sample(args[1])
	if err != nil {
		return err
	}
	if cfg.Text {
		fmt.Fprint(cc.Out, nodediff.Text(from, to, cfg.outlineOpts(cc.Out)...))
		return nil
	}
	for _, c := range nodediff.Diff(from, to) {
		fmt.Fprintln(cc.Out, c)
	}
	return nil
}

func validateSamples(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: validate requires at least one sample", cli.ErrUsage)
	}
	ttl := 0
	for _, arg := range args {
		n, err := sample(arg)
		if err != nil {
			return err
		}
		issues, err := validate.Tree(context.Background(), n, validate.MaxIssues(cfg.Max))
		if err != nil {
			return fmt.Errorf("error validating %s: %w", arg, err)
		}
		for _, issue := range issues {
			fmt.Fprintf(cc.Out, "%s: %s\n", arg, issue)
		}
		ttl += len(issues)
	}
	if ttl != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

type cliAnnotation string

func copySample(cfg *CopyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Copy.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: copy requires 1 sample", cli.ErrUsage)
	}
	n, err := sample(args[0])
	if err != nil {
		return err
	}
	if cfg.Annotate != "" {
		n.AddAnnotation(cliAnnotation(cfg.Annotate))
	}
	c, err := model.Copy(n)
	if err != nil {
		return fmt.Errorf("error copying %s: %w", args[0], err)
	}
	if !nodediff.Exactly(n, c) {
		return fmt.Errorf("copy of %s differs: %v", args[0], nodediff.Diff(n, c))
	}
	opts := append(cfg.outlineOpts(cc.Out), outline.Annotations(true))
	if err := outline.Encode(c, cc.Out, opts...); err != nil {
		return err
	}
	for a := range model.AnnotationsOf[cliAnnotation](c) {
		fmt.Fprintf(cc.Out, "annotation: %s\n", strconv.Quote(string(a)))
	}
	return nil
}
