package main

import (
	"fmt"
	"io"

	"github.com/signadot/jpatch/encode"
	"github.com/signadot/jpatch/ir"
	"github.com/signadot/jpatch/ir/pointer"
	"github.com/signadot/jpatch/jsonpatch"

	"github.com/scott-cotton/cli"
)

func ops(cfg *OpsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ops.Parse(cc, args)
	if err != nil {
		cfg.Ops.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: ops requires one argument, a patch", cli.ErrUsage)
	}
	p, err := getPatch(cfg.MainConfig, cc, cfg.String, args[0])
	if err != nil {
		return err
	}
	return p.ApplyToSink(&opLister{w: cc.Out})
}

// opLister is a jsonpatch.Sink writing one line per operation.
type opLister struct {
	w io.Writer
	n int
}

func (l *opLister) line(kind jsonpatch.Kind, format string, args ...any) error {
	_, err := fmt.Fprintf(l.w, "%3d %-7s "+format+"\n", append([]any{l.n, kind}, args...)...)
	l.n++
	return err
}

func (l *opLister) PatchAdd(op *jsonpatch.OpAdd) error {
	return l.line(op.Kind(), "%s %s", quote(op.Path), valueString(op.Value))
}

func (l *opLister) PatchRemove(op *jsonpatch.OpRemove) error {
	return l.line(op.Kind(), "%s", quote(op.Path))
}

func (l *opLister) PatchReplace(op *jsonpatch.OpReplace) error {
	return l.line(op.Kind(), "%s %s", quote(op.Path), valueString(op.Value))
}

func (l *opLister) PatchMove(op *jsonpatch.OpMove) error {
	return l.line(op.Kind(), "%s -> %s", quote(op.From), quote(op.Path))
}

func (l *opLister) PatchCopy(op *jsonpatch.OpCopy) error {
	return l.line(op.Kind(), "%s -> %s", quote(op.From), quote(op.Path))
}

func (l *opLister) PatchTest(op *jsonpatch.OpTest) error {
	return l.line(op.Kind(), "%s == %s", quote(op.Path), valueString(op.Value))
}

func quote(p pointer.Pointer) string {
	return fmt.Sprintf("%q", string(p))
}

func valueString(v *ir.Node) (s string) {
	if v == nil {
		return "null"
	}
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("<%v>", r)
		}
	}()
	return encode.MustString(v)
}
