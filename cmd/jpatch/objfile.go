package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/jpatch/ir"
	"github.com/signadot/jpatch/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// getArgBytes reads a command argument which is either literal text (s) or
// a file name, "-" meaning standard input.
func getArgBytes(cc *cli.Context, s bool, arg string) ([]byte, error) {
	var r io.Reader
	switch {
	case s:
		r = strings.NewReader(arg)
	case arg == "-":
		r = cc.In
	default:
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, nil
}

// inputs returns the files to process, standard input when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
