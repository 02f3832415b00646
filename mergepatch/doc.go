// Package mergepatch implements RFC 7396 JSON Merge Patch.
//
// A merge patch mirrors the structure of the document it changes. Objects
// in the patch are merged member by member into the target, a null member
// deletes the corresponding target member, and any other value replaces
// the target value outright. Merging never fails.
//
//	res := mergepatch.Merge(doc, patch)  // doc unchanged
//	mergepatch.MergeInPlace(doc, patch)
//
// Existing target members keep their order; new members are appended in
// patch order.
package mergepatch
