package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/nodebase/fhir"
	"github.com/signadot/nodebase/model"
	"github.com/signadot/nodebase/outline"
)

type MainConfig struct {
	Color       bool `cli:"name=color desc='output with color'"`
	Annotations bool `cli:"name=a desc='show annotation counts'"`

	Main *cli.Command
}

func (cfg *MainConfig) outlineOpts(w io.Writer) []outline.Option {
	res := []outline.Option{outline.Annotations(cfg.Annotations)}
	if cfg.Color {
		return append(res, outline.WithColors(outline.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, outline.WithColors(outline.NewColors()))
	}
	return res
}

func sample(name string) (model.Node, error) {
	n, ok := fhir.Sample(name)
	if !ok {
		return nil, fmt.Errorf("%w: no sample %q, see 'nodetool list'", cli.ErrUsage, name)
	}
	return n, nil
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type OutlineConfig struct {
	*MainConfig

	Outline *cli.Command
}

type SelectConfig struct {
	*MainConfig
	Paths bool `cli:"name=p desc='print only paths'"`

	Select *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text bool `cli:"name=text desc='show an outline line diff'"`

	Diff *cli.Command
}

type ValidateConfig struct {
	*MainConfig
	Max int `cli:"name=max desc='stop after this many issues'"`

	Validate *cli.Command
}

type CopyConfig struct {
	*MainConfig
	Annotate string `cli:"name=annotate desc='annotation added to the root before copying'"`

	Copy *cli.Command
}
