package jsonpatch

import "github.com/signadot/jpatch/ir"

// Sink receives the operations of a patch one at a time, in order. See
// Patch.ApplyToSink.
type Sink interface {
	PatchAdd(op *OpAdd) error
	PatchRemove(op *OpRemove) error
	PatchReplace(op *OpReplace) error
	PatchMove(op *OpMove) error
	PatchCopy(op *OpCopy) error
	PatchTest(op *OpTest) error
}

// SinkFunc is a Sink which passes every operation to a single function.
type SinkFunc func(Operation) error

func (f SinkFunc) PatchAdd(op *OpAdd) error         { return f(op) }
func (f SinkFunc) PatchRemove(op *OpRemove) error   { return f(op) }
func (f SinkFunc) PatchReplace(op *OpReplace) error { return f(op) }
func (f SinkFunc) PatchMove(op *OpMove) error       { return f(op) }
func (f SinkFunc) PatchCopy(op *OpCopy) error       { return f(op) }
func (f SinkFunc) PatchTest(op *OpTest) error       { return f(op) }

// NodeSink returns a Sink applying each operation to doc. Unlike
// Patch.ApplyInPlace it does not reset scalar documents.
func NodeSink(doc *ir.Node) Sink {
	return SinkFunc(func(op Operation) error {
		_, err := op.Apply(doc)
		return err
	})
}
