package jsonpatch

import (
	"github.com/signadot/jpatch/debug"
	"github.com/signadot/jpatch/ir"
)

// Patch is an ordered sequence of operations.
type Patch []Operation

func (p Patch) Len() int {
	return len(p)
}

func (p Patch) IsEmpty() bool {
	return len(p) == 0
}

// ApplyInPlace applies each operation of p to doc in order, stopping at the
// first error. Operations applied before a failing one are not undone.
//
// An empty patch leaves doc untouched. Otherwise a doc which is neither an
// object nor an array is first reset to an empty object.
func (p Patch) ApplyInPlace(doc *ir.Node) error {
	if p.IsEmpty() {
		return nil
	}
	if !doc.Type.IsContainer() {
		if debug.Patch() {
			debug.Logf("patch: resetting %s document to {}\n", doc.Type)
		}
		doc.SetObject()
	}
	for i, op := range p {
		if _, err := op.Apply(doc); err != nil {
			if debug.Patch() {
				debug.Logf("patch: op %d (%s) failed: %v\n", i, op.Kind(), err)
			}
			return err
		}
	}
	if debug.Patch() {
		debug.Logf("patch: applied %d ops, result %s\n", len(p), debug.JSON(doc))
	}
	return nil
}

// ApplyToCopy applies p to a copy of doc and returns the copy. doc is not
// modified, so a failure leaves nothing half patched.
func (p Patch) ApplyToCopy(doc *ir.Node) (*ir.Node, error) {
	res := doc.Copy()
	if err := p.ApplyInPlace(res); err != nil {
		return nil, err
	}
	return res, nil
}

// ApplyToSink hands each operation of p to s in order, stopping at the
// first error s returns.
func (p Patch) ApplyToSink(s Sink) error {
	for i, op := range p {
		if err := op.dispatch(s); err != nil {
			if debug.Patch() {
				debug.Logf("patch: sink rejected op %d (%s): %v\n", i, op.Kind(), err)
			}
			return err
		}
	}
	return nil
}

func (p Patch) ToIR() *ir.Node {
	vals := make([]*ir.Node, len(p))
	for i, op := range p {
		vals[i] = op.ToIR()
	}
	return ir.FromSlice(vals)
}

func (p Patch) MarshalJSON() ([]byte, error) {
	return marshalIR(p.ToIR())
}

func (p *Patch) UnmarshalJSON(d []byte) error {
	res, err := DecodePatch(d)
	if err != nil {
		return err
	}
	*p = res
	return nil
}
