package libdiff

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/jpatch/encode"
	"github.com/signadot/jpatch/ir"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Same Op = iota
	Del
	Ins
)

func (o Op) String() string {
	switch o {
	case Del:
		return "-"
	case Ins:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff, without its trailing newline.
type Line struct {
	Op   Op
	Text string
}

// Diff encodes from and to with opts and returns their line diff. Unless
// opts say otherwise the documents are encoded as indented JSON.
func Diff(from, to *ir.Node, opts ...encode.EncodeOption) ([]Line, error) {
	a, err := encodeString(from, opts)
	if err != nil {
		return nil, err
	}
	b, err := encodeString(to, opts)
	if err != nil {
		return nil, err
	}
	return Lines(a, b), nil
}

func encodeString(node *ir.Node, opts []encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Lines computes a line oriented diff from a to b.
func Lines(a, b string) []Line {
	dmp := diffpatch.New()
	ra, rb, lineArray := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffMainRunes(ra, rb, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	res := []Line{}
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Del
		case diffpatch.DiffInsert:
			op = Ins
		default:
			op = Same
		}
		for _, text := range splitLines(diff.Text) {
			res = append(res, Line{Op: op, Text: text})
		}
	}
	return res
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Changed reports whether lines contains any insertion or deletion.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Same {
			return true
		}
	}
	return false
}

// Write prints lines prefixed by their Op, colouring deletions red and
// insertions green when colored is set.
func Write(w io.Writer, lines []Line, colored bool) error {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colored {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	for i := range lines {
		line := &lines[i]
		text := line.Op.String() + " " + line.Text
		switch line.Op {
		case Del:
			text = del.Sprint(text)
		case Ins:
			text = ins.Sprint(text)
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return err
		}
	}
	return nil
}
