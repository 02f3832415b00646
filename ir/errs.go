package ir

import (
	"errors"

	"github.com/signadot/jpatch/ir/pointer"
)

var (
	errInternal = errors.New("internal error")

	ErrInvalidPointer = pointer.ErrInvalidPointer
)
