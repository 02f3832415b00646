package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jpatch/encode"
	"github.com/signadot/jpatch/format"
	"github.com/signadot/jpatch/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='spaces per JSON nesting level, 0 for compact output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if cfg.Y {
		return format.YAMLFormat
	}
	return format.JSONFormat
}

// parseOpts gives the parse options for path. Without an explicit format
// the file name suffix decides.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	fmat := cfg.inFormat()
	if cfg.InFormat == nil && !cfg.J && !cfg.Y && path != "-" {
		fmat = format.FromPath(path)
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.inFormat()
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeIndent(cfg.Indent),
	}
	if cfg.colorOn(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorOn reports whether output to w should be coloured: always with
// -color, otherwise when w is a terminal and -color was not given as false.
func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ApplyConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg is the patch text'"`
	Diff   bool `cli:"name=d desc='show a diff of each file instead of the result'"`
	Keep   bool `cli:"name=k desc='keep going after a file fails to patch'"`

	Apply *cli.Command
}

type MergeConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='merge patch arg is the merge patch text'"`
	Diff   bool `cli:"name=d desc='show a diff of each file instead of the result'"`

	Merge *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type OpsConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg is the patch text'"`

	Ops *cli.Command
}
