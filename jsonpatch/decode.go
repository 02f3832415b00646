package jsonpatch

import (
	"fmt"
	"strconv"

	"github.com/signadot/jpatch/ir"
	"github.com/signadot/jpatch/ir/pointer"
	"github.com/signadot/jpatch/parse"
)

// DecodePatch parses d as a JSON array of operations.
//
// Syntax errors in d are returned wrapping parse.ErrParse; a well formed
// document of the wrong shape gives a *DecodeError.
func DecodePatch(d []byte, opts ...parse.ParseOption) (Patch, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return PatchFromIR(node)
}

// DecodeOperation parses d as a single JSON operation object.
func DecodeOperation(d []byte, opts ...parse.ParseOption) (Operation, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return OperationFromIR(node)
}

func PatchFromIR(node *ir.Node) (Patch, error) {
	if node.Type != ir.ArrayType {
		return nil, decodeErrorf(-1, "invalid type: %s, expected a sequence", describe(node))
	}
	res := make(Patch, 0, len(node.Values))
	for i, v := range node.Values {
		op, err := operationFromIR(v, i)
		if err != nil {
			return nil, err
		}
		res = append(res, op)
	}
	return res, nil
}

func OperationFromIR(node *ir.Node) (Operation, error) {
	return operationFromIR(node, -1)
}

func operationFromIR(node *ir.Node, index int) (Operation, error) {
	if node.Type != ir.ObjectType {
		return nil, decodeErrorf(index, "invalid type: %s, expected an operation object", describe(node))
	}
	opNode := ir.Get(node, "op")
	if opNode == nil {
		return nil, decodeErrorf(index, "missing field `op`")
	}
	if opNode.Type != ir.StringType {
		return nil, decodeErrorf(index, "invalid type: %s, expected a string", describe(opNode))
	}
	kind, err := ParseKind(opNode.String)
	if err != nil {
		err.(*DecodeError).Index = index
		return nil, err
	}
	path, err := pointerField(node, "path", index)
	if err != nil {
		return nil, err
	}
	var from pointer.Pointer
	if kind.HasFrom() {
		from, err = pointerField(node, "from", index)
		if err != nil {
			return nil, err
		}
	}
	var value *ir.Node
	if kind.HasValue() {
		value = ir.Get(node, "value")
		if value == nil {
			return nil, decodeErrorf(index, "missing field `value`")
		}
		value = value.Copy()
	}
	switch kind {
	case KindAdd:
		return &OpAdd{Path: path, Value: value}, nil
	case KindRemove:
		return &OpRemove{Path: path}, nil
	case KindReplace:
		return &OpReplace{Path: path, Value: value}, nil
	case KindMove:
		return &OpMove{From: from, Path: path}, nil
	case KindCopy:
		return &OpCopy{From: from, Path: path}, nil
	default:
		return &OpTest{Path: path, Value: value}, nil
	}
}

// pointerField reads a string member. Pointer syntax is checked when the
// operation is applied, not here.
func pointerField(node *ir.Node, field string, index int) (pointer.Pointer, error) {
	v := ir.Get(node, field)
	if v == nil {
		return "", decodeErrorf(index, "missing field `%s`", field)
	}
	if v.Type != ir.StringType {
		return "", decodeErrorf(index, "invalid type: %s, expected a string", describe(v))
	}
	return pointer.Pointer(v.String), nil
}

func decodeErrorf(index int, format string, args ...any) *DecodeError {
	return &DecodeError{Index: index, Msg: fmt.Sprintf(format, args...)}
}

// describe names the type and, for scalars, the value of node the way
// decode errors report unexpected input.
func describe(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return fmt.Sprintf("boolean `%t`", node.Bool)
	case ir.NumberType:
		if node.Int64 != nil {
			return fmt.Sprintf("integer `%d`", *node.Int64)
		}
		if node.Number != "" {
			return fmt.Sprintf("floating point `%s`", node.Number)
		}
		if node.Float64 != nil {
			return fmt.Sprintf("floating point `%s`", strconv.FormatFloat(*node.Float64, 'g', -1, 64))
		}
		return "number"
	case ir.StringType:
		return "string " + strconv.Quote(node.String)
	case ir.ArrayType:
		return "sequence"
	default:
		return "map"
	}
}
