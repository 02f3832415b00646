// Package jsonpatch applies RFC 6902 JSON Patch documents to *ir.Node
// trees.
//
// # Operations
//
// A Patch is an ordered list of Operations, each one of *OpAdd, *OpRemove,
// *OpReplace, *OpMove, *OpCopy or *OpTest. Paths are RFC 6901 JSON
// Pointers (see package ir/pointer). Array indices are decimal without
// leading zeros; "-" names the position after the last element and is
// accepted only by add (and so by the add half of move and copy).
//
// # Applying
//
//	patch, err := jsonpatch.DecodePatch(data)
//	err = patch.ApplyInPlace(doc)        // mutates doc
//	res, err := patch.ApplyToCopy(doc)   // doc untouched
//
// Application stops at the first failing operation. Operations already
// applied stay applied: ApplyInPlace has no rollback. Callers needing all
// or nothing use ApplyToCopy.
//
// Errors from application are exactly ErrInvalidPointer or ErrInvalidTest,
// unwrapped, so their text can be compared with conformance fixtures.
// Malformed patches fail earlier, in decoding, with a *DecodeError.
//
// # Sinks
//
// ApplyToSink replays a patch against a Sink instead of a tree, with the
// same ordering and stop at first error behavior. SinkFunc adapts a single
// function to a Sink.
//
// # Related Packages
//
//   - github.com/signadot/jpatch/ir - document trees
//   - github.com/signadot/jpatch/mergepatch - RFC 7396 merge patches
package jsonpatch
