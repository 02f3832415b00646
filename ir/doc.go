// Package ir provides the tree representation of JSON documents used by the
// patch engines.
//
// # Node Structure
//
// A Node represents a single JSON value:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (ordered key-value pairs), array (ordered list)
//
// The IR works as a recursive tagged union structure, where values are placed
// in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false) in Bool
//   - NumberType: numeric value
//   - StringType: string value in String
//   - ArrayType: ordered list of nodes in Values
//   - ObjectType: key-value pairs in Fields and Values
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("key"), Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the String typed key for the value at
// Values[i], so there will always be the same number of fields as values.
// Keys are unique and keep the order in which they were first inserted.
//
// Number values keep their literal text under Number when they were parsed
// from a document. Int64 is populated if the value is a 64-bit signed
// integer, otherwise Float64 if it parses as a 64-bit IEEE float. Numbers
// created with FromInt or FromFloat have no literal text.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in parent's array/object
//   - ParentField: field name if parent is object
//
// The mutation helpers (SetField, DeleteField, InsertValue, RemoveValue,
// Swap, SetObject) keep these links consistent. Code that edits Fields or
// Values directly must do so itself.
//
// Use Pointer() to get the JSON Pointer of a node and ResolvePointer or
// GetPointer to navigate to one:
//
//	child, err := node.ResolvePointer("/foo/bar/0")
//	if err != nil {
//	    // err is pointer.ErrInvalidPointer
//	}
//
// # Comparison
//
// Equal implements JSON value equality as used by the JSON Patch "test"
// operation.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
//
// # Related Packages
//
//   - github.com/signadot/jpatch/ir/pointer - JSON Pointer syntax
//   - github.com/signadot/jpatch/parse - Parses text into IR nodes
//   - github.com/signadot/jpatch/encode - Encodes IR nodes to text
//   - github.com/signadot/jpatch/jsonpatch - RFC 6902 patches on IR nodes
//   - github.com/signadot/jpatch/mergepatch - RFC 7396 merge patches on IR nodes
package ir
