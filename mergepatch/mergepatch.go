package mergepatch

import (
	"github.com/signadot/jpatch/debug"
	"github.com/signadot/jpatch/ir"
)

// Merge returns the result of merging patch into a copy of target. Neither
// argument is modified.
func Merge(target, patch *ir.Node) *ir.Node {
	res := target.Copy()
	MergeInPlace(res, patch)
	return res
}

// MergeInPlace merges patch into target, modifying target. patch is not
// modified and no part of it is shared with target afterwards.
func MergeInPlace(target, patch *ir.Node) {
	if debug.Merge() {
		debug.Logf("merge %q: %s <- %s\n", target.Pointer(), debug.JSON(target), debug.JSON(patch))
	}
	if patch.Type != ir.ObjectType {
		target.Swap(patch.Copy())
		return
	}
	if target.Type != ir.ObjectType {
		target.SetObject()
	}
	for i, field := range patch.Fields {
		name := field.String
		pv := patch.Values[i]
		if pv.Type == ir.NullType {
			target.DeleteField(name)
			continue
		}
		tv := ir.Get(target, name)
		if tv == nil {
			tv = ir.Null()
			target.SetField(name, tv)
		}
		MergeInPlace(tv, pv)
	}
}
