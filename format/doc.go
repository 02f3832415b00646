// Package format names the document syntaxes jpatch reads and writes.
//
// JSON is the native syntax of patches and documents. YAML is accepted as a
// convenience for command line input and output; it is converted to and from
// the same IR and plays no part in patch semantics.
//
// # Related Packages
//
//   - github.com/signadot/jpatch/parse - Parse text to IR
//   - github.com/signadot/jpatch/encode - Encode IR to text
package format
