package jsonpatch

import (
	"github.com/signadot/jpatch/debug"
	"github.com/signadot/jpatch/ir"
	"github.com/signadot/jpatch/ir/pointer"
)

func (op *OpAdd) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Op() {
		debug.Logf("add %q %s\n", op.Path, debug.JSON(op.Value))
	}
	return add(doc, op.Path, valueOf(op.Value))
}

func (op *OpRemove) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Op() {
		debug.Logf("remove %q\n", op.Path)
	}
	return remove(doc, op.Path)
}

func (op *OpReplace) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Op() {
		debug.Logf("replace %q %s\n", op.Path, debug.JSON(op.Value))
	}
	return replace(doc, op.Path, valueOf(op.Value))
}

func (op *OpMove) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Op() {
		debug.Logf("move %q -> %q\n", op.From, op.Path)
	}
	if op.From.IsProperPrefixOf(op.Path) {
		return nil, ErrInvalidPointer
	}
	v, err := remove(doc, op.From)
	if err != nil {
		return nil, err
	}
	return add(doc, op.Path, v)
}

func (op *OpCopy) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Op() {
		debug.Logf("copy %q -> %q\n", op.From, op.Path)
	}
	src, err := resolve(doc, op.From)
	if err != nil {
		return nil, err
	}
	return add(doc, op.Path, src.Copy())
}

// Apply fails with ErrInvalidTest both when the value at Path differs and
// when Path does not resolve.
func (op *OpTest) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Op() {
		debug.Logf("test %q %s\n", op.Path, debug.JSON(op.Value))
	}
	target, err := resolve(doc, op.Path)
	if err != nil {
		return nil, ErrInvalidTest
	}
	want := op.Value
	if want == nil {
		want = ir.Null()
	}
	if !ir.Equal(target, want) {
		return nil, ErrInvalidTest
	}
	return nil, nil
}

// add places v at path. For objects the displaced member value is
// returned.
func add(doc *ir.Node, path pointer.Pointer, v *ir.Node) (*ir.Node, error) {
	if path.IsRoot() {
		return doc.Swap(v), nil
	}
	parent, last, err := resolveParent(doc, path)
	if err != nil {
		return nil, err
	}
	switch parent.Type {
	case ir.ObjectType:
		return parent.SetField(last, v), nil
	case ir.ArrayType:
		if last == pointer.AppendToken {
			parent.AppendValue(v)
			return nil, nil
		}
		i, err := pointer.ParseIndex(last, len(parent.Values)+1)
		if err != nil {
			return nil, err
		}
		parent.InsertValue(i, v)
		return nil, nil
	default:
		return nil, ErrInvalidPointer
	}
}

// replace overwrites the existing value at path with v and returns the
// value it displaced.
func replace(doc *ir.Node, path pointer.Pointer, v *ir.Node) (*ir.Node, error) {
	if path.IsRoot() {
		return doc.Swap(v), nil
	}
	parent, last, err := resolveParent(doc, path)
	if err != nil {
		return nil, err
	}
	switch parent.Type {
	case ir.ObjectType:
		if parent.FieldIndex(last) == -1 {
			return nil, ErrInvalidPointer
		}
		return parent.SetField(last, v), nil
	case ir.ArrayType:
		i, err := pointer.ParseIndex(last, len(parent.Values))
		if err != nil {
			return nil, err
		}
		return parent.SetValue(i, v), nil
	default:
		return nil, ErrInvalidPointer
	}
}

func remove(doc *ir.Node, path pointer.Pointer) (*ir.Node, error) {
	parent, last, err := resolveParent(doc, path)
	if err != nil {
		return nil, err
	}
	switch parent.Type {
	case ir.ObjectType:
		res := parent.DeleteField(last)
		if res == nil {
			return nil, ErrInvalidPointer
		}
		return res, nil
	case ir.ArrayType:
		i, err := pointer.ParseIndex(last, len(parent.Values))
		if err != nil {
			return nil, err
		}
		return parent.RemoveValue(i), nil
	default:
		return nil, ErrInvalidPointer
	}
}

func resolveParent(doc *ir.Node, path pointer.Pointer) (*ir.Node, string, error) {
	parentPath, last, err := path.Split()
	if err != nil {
		if debug.Pointer() {
			debug.Logf("pointer %q has no parent\n", path)
		}
		return nil, "", err
	}
	parent, err := resolve(doc, parentPath)
	if err != nil {
		return nil, "", err
	}
	return parent, last, nil
}

func resolve(doc *ir.Node, p pointer.Pointer) (*ir.Node, error) {
	res, err := doc.ResolvePointer(p)
	if err != nil && debug.Pointer() {
		debug.Logf("pointer %q does not resolve in %s\n", p, debug.JSON(doc))
	}
	return res, err
}
