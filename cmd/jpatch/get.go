package main

import (
	"fmt"

	"github.com/signadot/jpatch/encode"
	"github.com/signadot/jpatch/ir/pointer"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a JSON pointer", cli.ErrUsage)
	}
	p := pointer.Pointer(args[0])
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %q: %w", cli.ErrUsage, p, err)
	}
	for _, file := range inputs(args[1:]) {
		doc, err := getObjFile(cc, file, cfg.parseOpts(file)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := doc.GetPointer(p)
		if err != nil {
			return fmt.Errorf("error getting %q from %s: %w", p, file, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
