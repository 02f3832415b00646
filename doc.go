// Package jpatch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7396) documents.
//
// The functions here work on encoded documents:
//
//	out, err := jpatch.ApplyJSON(doc, patch)
//	out, err := jpatch.MergeJSON(doc, mergePatch)
//
// Programs which keep documents in memory use the subpackages directly.
//
// # Related Packages
//
//   - github.com/signadot/jpatch/ir - the document tree and JSON Pointers
//   - github.com/signadot/jpatch/jsonpatch - RFC 6902 patches
//   - github.com/signadot/jpatch/mergepatch - RFC 7396 merge patches
//   - github.com/signadot/jpatch/parse, encode - reading and writing documents
//   - github.com/signadot/jpatch/cmd/jpatch - command line tool
package jpatch
