// Package pointer implements the syntax of RFC 6901 JSON Pointers.
//
// A Pointer is either empty, denoting the whole document, or a sequence of
// reference tokens each introduced by '/'. Within a token "~1" stands for
// '/' and "~0" for '~':
//
//	pointer.Pointer("/a~1b/0")   // tokens "a/b", "0"
//	pointer.New("a/b", "0")      // same pointer
//
// Navigating a document with a Pointer is done by
// github.com/signadot/jpatch/ir, which uses ParseIndex for array steps.
// Every failure, syntactic or not, is reported as ErrInvalidPointer.
package pointer
