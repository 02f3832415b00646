package jsonpatch

import (
	"errors"

	"github.com/signadot/jpatch/ir/pointer"
)

var (
	// ErrInvalidPointer reports that a path or from location could not be
	// resolved, or that the container found there cannot take the
	// operation.
	ErrInvalidPointer = pointer.ErrInvalidPointer

	// ErrInvalidTest reports a failed test operation.
	ErrInvalidTest = errors.New("Test Operation Failed")
)

// DecodeError describes a patch or operation that does not have the
// expected shape. It never wraps ErrInvalidPointer or ErrInvalidTest.
type DecodeError struct {
	// Index is the position of the offending operation in its patch, or -1.
	Index int
	Msg   string
}

func (e *DecodeError) Error() string {
	return e.Msg
}
