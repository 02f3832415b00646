package ir

import (
	"fmt"
	"slices"
)

// objects with at least this many members get a name index.
const fieldIndexMin = 16

// FieldIndex returns the position of the member named field in object y,
// or -1.
func (y *Node) FieldIndex(field string) int {
	if len(y.Fields) < fieldIndexMin {
		for i := range y.Fields {
			if y.Fields[i].String == field {
				return i
			}
		}
		return -1
	}
	if len(y.fieldIndex) != len(y.Fields) {
		y.buildFieldIndex()
	}
	i, ok := y.fieldIndex[field]
	if !ok {
		return -1
	}
	if i >= len(y.Fields) || y.Fields[i].String != field {
		// Fields was reordered directly.
		y.buildFieldIndex()
		if i, ok = y.fieldIndex[field]; !ok {
			return -1
		}
	}
	return i
}

func (y *Node) buildFieldIndex() {
	y.fieldIndex = make(map[string]int, len(y.Fields))
	for i, f := range y.Fields {
		y.fieldIndex[f.String] = i
	}
}

// SetField inserts or overwrites the member field of object y. An existing
// member keeps its position. The replaced value, if any, is returned
// detached from y.
func (y *Node) SetField(field string, v *Node) *Node {
	y.mustBe(ObjectType, "SetField")
	if i := y.FieldIndex(field); i != -1 {
		prior := y.Values[i]
		detach(prior)
		y.Values[i] = v
		attach(y, v, i, field)
		return prior
	}
	i := len(y.Fields)
	key := FromString(field)
	attach(y, key, i, field)
	attach(y, v, i, field)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
	if y.fieldIndex != nil {
		y.fieldIndex[field] = i
	}
	return nil
}

// DeleteField removes the member field from object y and returns its value,
// or nil if there is no such member.
func (y *Node) DeleteField(field string) *Node {
	y.mustBe(ObjectType, "DeleteField")
	i := y.FieldIndex(field)
	if i == -1 {
		return nil
	}
	res := y.Values[i]
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	y.fieldIndex = nil
	y.reindex(i)
	detach(res)
	return res
}

// InsertValue inserts v at index i of array y, shifting later elements
// right. 0 <= i <= len(y.Values).
func (y *Node) InsertValue(i int, v *Node) {
	y.mustBe(ArrayType, "InsertValue")
	y.Values = slices.Insert(y.Values, i, v)
	attach(y, v, i, "")
	y.reindex(i + 1)
}

func (y *Node) AppendValue(v *Node) {
	y.InsertValue(len(y.Values), v)
}

// RemoveValue removes and returns element i of array y, shifting later
// elements left.
func (y *Node) RemoveValue(i int) *Node {
	y.mustBe(ArrayType, "RemoveValue")
	res := y.Values[i]
	y.Values = slices.Delete(y.Values, i, i+1)
	y.reindex(i)
	detach(res)
	return res
}

// SetValue replaces element i of array y with v and returns the prior
// element, detached.
func (y *Node) SetValue(i int, v *Node) *Node {
	y.mustBe(ArrayType, "SetValue")
	prior := y.Values[i]
	detach(prior)
	y.Values[i] = v
	attach(y, v, i, "")
	return prior
}

// Swap exchanges the content of y with that of with, leaving y at its
// position in the tree. It returns a detached node holding y's previous
// content. with should not be used afterwards.
func (y *Node) Swap(with *Node) *Node {
	prior := &Node{}
	prior.takeContent(y)
	y.takeContent(with)
	return prior
}

// SetObject resets y to an empty object in place.
func (y *Node) SetObject() {
	y.takeContent(&Node{
		Type:   ObjectType,
		Fields: []*Node{},
		Values: []*Node{},
	})
}

func (y *Node) takeContent(src *Node) {
	y.Type = src.Type
	y.Fields = src.Fields
	y.Values = src.Values
	y.String = src.String
	y.Bool = src.Bool
	y.Number = src.Number
	y.Float64 = src.Float64
	y.Int64 = src.Int64
	y.fieldIndex = src.fieldIndex
	for i, f := range y.Fields {
		f.Parent = y
		f.ParentIndex = i
	}
	for i, v := range y.Values {
		v.Parent = y
		v.ParentIndex = i
	}
}

func (y *Node) reindex(from int) {
	for i := from; i < len(y.Values); i++ {
		y.Values[i].ParentIndex = i
		if i < len(y.Fields) {
			y.Fields[i].ParentIndex = i
		}
	}
}

func (y *Node) mustBe(t Type, op string) {
	if y.Type != t {
		panic(fmt.Errorf("%w: %s on %s", errInternal, op, y.Type))
	}
}

func attach(parent, child *Node, i int, field string) {
	child.Parent = parent
	child.ParentIndex = i
	child.ParentField = field
}

func detach(y *Node) {
	y.Parent = nil
	y.ParentIndex = 0
	y.ParentField = ""
}
