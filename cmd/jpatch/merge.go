package main

import (
	"fmt"

	"github.com/signadot/jpatch/ir"
	"github.com/signadot/jpatch/mergepatch"
	"github.com/signadot/jpatch/parse"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires a merge patch argument", cli.ErrUsage)
	}
	files := inputs(args[1:])
	if err := checkStdin(cfg.String, args[0], files); err != nil {
		return err
	}
	patch, err := getMergePatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	for _, file := range files {
		doc, err := getObjFile(cc, file, cfg.parseOpts(file)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res := mergepatch.Merge(doc, patch)
		if err := output(cfg.MainConfig, cc, cfg.Diff, doc, res); err != nil {
			return err
		}
	}
	return nil
}

func getMergePatch(cfg *MergeConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	d, err := getArgBytes(cc, cfg.String, arg)
	if err != nil {
		return nil, err
	}
	res, err := parse.Parse(d, argParseOpts(cfg.MainConfig, cfg.String, arg)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding merge patch: %w", err)
	}
	return res, nil
}
