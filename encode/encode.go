package encode

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jpatch/format"
	"github.com/signadot/jpatch/ir"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.Config{EscapeHTML: false}.Froze()

type EncState struct {
	depth, indent int

	format format.Format
	stream *jsoniter.Stream

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.YAMLFormat:
		return encodeYAML(node, w)
	case format.JSONFormat:
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
	es.stream = jsoniter.NewStream(jsonAPI, nil, 64)
	bw := bufio.NewWriter(w)
	if err := encode(node, bw, es); err != nil {
		return err
	}
	if err := writeString(bw, "\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeColored(w, es, node.Type, ValueColor, "null")
	case ir.BoolType:
		return writeColored(w, es, node.Type, ValueColor, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		text, err := NumberText(node)
		if err != nil {
			return err
		}
		return writeColored(w, es, node.Type, ValueColor, text)
	case ir.StringType:
		return writeColored(w, es, node.Type, ValueColor, es.quote(node.String))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		return fmt.Errorf("cannot encode node of type %s", node.Type)
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeColored(w, es, node.Type, SepColor, "[]")
	}
	if err := writeColored(w, es, node.Type, SepColor, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeColored(w, es, node.Type, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, node.Type, SepColor, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeColored(w, es, node.Type, SepColor, "{}")
	}
	if err := writeColored(w, es, node.Type, SepColor, "{"); err != nil {
		return err
	}
	colon := ":"
	if es.indent > 0 {
		colon = ": "
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeColored(w, es, node.Type, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := es.quote(node.Fields[i].String)
		if err := writeColored(w, es, node.Type, FieldColor, key); err != nil {
			return err
		}
		if err := writeColored(w, es, node.Type, SepColor, colon); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, node.Type, SepColor, "}")
}

// NumberText returns the JSON literal for a number node.
func NumberText(node *ir.Node) (string, error) {
	switch {
	case node.Number != "":
		return node.Number, nil
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%v has no JSON representation", f)
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("number node at %q has no value", node.Pointer())
}

func (es *EncState) quote(s string) string {
	es.stream.Reset(nil)
	es.stream.WriteString(s)
	return string(es.stream.Buffer())
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func writeColored(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
