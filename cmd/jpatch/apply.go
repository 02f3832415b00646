package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/jpatch/encode"
	"github.com/signadot/jpatch/ir"
	"github.com/signadot/jpatch/jsonpatch"
	"github.com/signadot/jpatch/libdiff"
	"github.com/signadot/jpatch/parse"

	"github.com/scott-cotton/cli"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: apply requires a patch argument", cli.ErrUsage)
	}
	files := inputs(args[1:])
	if err := checkStdin(cfg.String, args[0], files); err != nil {
		return err
	}
	p, err := getPatch(cfg.MainConfig, cc, cfg.String, args[0])
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range files {
		if err := applyFile(cfg, cc, p, file); err != nil {
			if !cfg.Keep {
				return err
			}
			theLog.Warn("patch failed", "file", file, "error", err)
			failed++
		}
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d files failed to patch", failed, len(files))
	}
	return nil
}

func applyFile(cfg *ApplyConfig, cc *cli.Context, p jsonpatch.Patch, file string) error {
	doc, err := getObjFile(cc, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	res, err := p.ApplyToCopy(doc)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return output(cfg.MainConfig, cc, cfg.Diff, doc, res)
}

func getPatch(cfg *MainConfig, cc *cli.Context, s bool, arg string) (jsonpatch.Patch, error) {
	d, err := getArgBytes(cc, s, arg)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(d, argParseOpts(cfg, s, arg)...)
	if err != nil {
		var de *jsonpatch.DecodeError
		if errors.As(err, &de) && de.Index >= 0 {
			return nil, fmt.Errorf("error decoding patch operation %d: %w", de.Index, err)
		}
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return p, nil
}

func argParseOpts(cfg *MainConfig, s bool, arg string) []parse.ParseOption {
	if s {
		return []parse.ParseOption{parse.ParseFormat(cfg.inFormat())}
	}
	return cfg.parseOpts(arg)
}

// checkStdin rejects reading both the patch and a document from standard
// input.
func checkStdin(s bool, arg string, files []string) error {
	if !s && arg == "-" && slices.Contains(files, "-") {
		return fmt.Errorf("%w: patch and document cannot both be read from stdin", cli.ErrUsage)
	}
	return nil
}

// output writes res, or with diff set the line diff from doc to res.
func output(cfg *MainConfig, cc *cli.Context, diff bool, doc, res *ir.Node) error {
	if !diff {
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	}
	lines, err := libdiff.Diff(doc, res,
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeIndent(max(cfg.Indent, 1)))
	if err != nil {
		return fmt.Errorf("error encoding diff: %w", err)
	}
	if !libdiff.Changed(lines) {
		return nil
	}
	return libdiff.Write(cc.Out, lines, cfg.colorOn(cc.Out))
}
