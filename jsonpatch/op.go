package jsonpatch

import (
	"bytes"

	"github.com/signadot/jpatch/encode"
	"github.com/signadot/jpatch/ir"
	"github.com/signadot/jpatch/ir/pointer"
)

// Operation is one of *OpAdd, *OpRemove, *OpReplace, *OpMove, *OpCopy or
// *OpTest.
type Operation interface {
	Kind() Kind

	// Apply performs the operation on doc in place. The returned node is
	// the value the operation displaced or removed, if any.
	Apply(doc *ir.Node) (*ir.Node, error)

	// ToIR returns the wire form of the operation.
	ToIR() *ir.Node

	MarshalJSON() ([]byte, error)

	dispatch(s Sink) error
}

type OpAdd struct {
	Path  pointer.Pointer
	Value *ir.Node
}

type OpRemove struct {
	Path pointer.Pointer
}

type OpReplace struct {
	Path  pointer.Pointer
	Value *ir.Node
}

type OpMove struct {
	From pointer.Pointer
	Path pointer.Pointer
}

type OpCopy struct {
	From pointer.Pointer
	Path pointer.Pointer
}

type OpTest struct {
	Path  pointer.Pointer
	Value *ir.Node
}

func (op *OpAdd) Kind() Kind     { return KindAdd }
func (op *OpRemove) Kind() Kind  { return KindRemove }
func (op *OpReplace) Kind() Kind { return KindReplace }
func (op *OpMove) Kind() Kind    { return KindMove }
func (op *OpCopy) Kind() Kind    { return KindCopy }
func (op *OpTest) Kind() Kind    { return KindTest }

func (op *OpAdd) dispatch(s Sink) error     { return s.PatchAdd(op) }
func (op *OpRemove) dispatch(s Sink) error  { return s.PatchRemove(op) }
func (op *OpReplace) dispatch(s Sink) error { return s.PatchReplace(op) }
func (op *OpMove) dispatch(s Sink) error    { return s.PatchMove(op) }
func (op *OpCopy) dispatch(s Sink) error    { return s.PatchCopy(op) }
func (op *OpTest) dispatch(s Sink) error    { return s.PatchTest(op) }

func (op *OpAdd) ToIR() *ir.Node     { return opIR(KindAdd, "", op.Path, op.Value) }
func (op *OpRemove) ToIR() *ir.Node  { return opIR(KindRemove, "", op.Path, nil) }
func (op *OpReplace) ToIR() *ir.Node { return opIR(KindReplace, "", op.Path, op.Value) }
func (op *OpMove) ToIR() *ir.Node    { return opIR(KindMove, op.From, op.Path, nil) }
func (op *OpCopy) ToIR() *ir.Node    { return opIR(KindCopy, op.From, op.Path, nil) }
func (op *OpTest) ToIR() *ir.Node    { return opIR(KindTest, "", op.Path, op.Value) }

func (op *OpAdd) MarshalJSON() ([]byte, error)     { return marshalIR(op.ToIR()) }
func (op *OpRemove) MarshalJSON() ([]byte, error)  { return marshalIR(op.ToIR()) }
func (op *OpReplace) MarshalJSON() ([]byte, error) { return marshalIR(op.ToIR()) }
func (op *OpMove) MarshalJSON() ([]byte, error)    { return marshalIR(op.ToIR()) }
func (op *OpCopy) MarshalJSON() ([]byte, error)    { return marshalIR(op.ToIR()) }
func (op *OpTest) MarshalJSON() ([]byte, error)    { return marshalIR(op.ToIR()) }

// opIR lays out members as op, from, path, value. from is written only for
// kinds that have it, and value only for kinds that have it, as null when
// unset.
func opIR(k Kind, from, path pointer.Pointer, value *ir.Node) *ir.Node {
	res := ir.FromKeyVals(nil)
	res.SetField("op", ir.FromString(k.String()))
	if k.HasFrom() {
		res.SetField("from", ir.FromString(string(from)))
	}
	res.SetField("path", ir.FromString(string(path)))
	if k.HasValue() {
		res.SetField("value", valueOf(value))
	}
	return res
}

// valueOf returns a detached copy of v, with nil standing for null.
func valueOf(v *ir.Node) *ir.Node {
	if v == nil {
		return ir.Null()
	}
	return v.Copy()
}

func marshalIR(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeIndent(0)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
