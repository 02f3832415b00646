package ir

import (
	"strconv"

	"github.com/signadot/jpatch/ir/pointer"
)

// Pointer returns the JSON Pointer addressing this node's position in the
// tree.
//
// Examples:
//   - Root node → ""
//   - Object field "a" → "/a"
//   - Array element at index 0 of "a" → "/a/0"
//   - Field "a/b" → "/a~1b"
func (node *Node) Pointer() pointer.Pointer {
	if node.Parent == nil {
		return pointer.Root
	}
	prefix := node.Parent.Pointer()
	switch node.Parent.Type {
	case ObjectType:
		return prefix.Append(node.ParentField)
	case ArrayType:
		return prefix.Append(strconv.Itoa(node.ParentIndex))
	default:
		panic("parent but not in container")
	}
}

// Child takes one step from node along the unescaped reference token tok.
// Objects look tok up as a member name; arrays parse it as an index.
func (node *Node) Child(tok string) (*Node, error) {
	switch node.Type {
	case ObjectType:
		i := node.FieldIndex(tok)
		if i == -1 {
			return nil, pointer.ErrInvalidPointer
		}
		return node.Values[i], nil
	case ArrayType:
		i, err := pointer.ParseIndex(tok, len(node.Values))
		if err != nil {
			return nil, err
		}
		return node.Values[i], nil
	default:
		return nil, pointer.ErrInvalidPointer
	}
}

// ResolvePointer navigates from node along p and returns the node found
// there, which callers may mutate in place.
func (node *Node) ResolvePointer(p pointer.Pointer) (*Node, error) {
	toks, err := p.Tokens()
	if err != nil {
		return nil, err
	}
	res := node
	for _, tok := range toks {
		res, err = res.Child(tok)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// GetPointer is like ResolvePointer but returns a detached copy of the
// node found.
func (node *Node) GetPointer(p pointer.Pointer) (*Node, error) {
	res, err := node.ResolvePointer(p)
	if err != nil {
		return nil, err
	}
	return res.Copy(), nil
}
