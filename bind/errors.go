package bind

import (
	"errors"
	"fmt"
)

// Sentinel errors returned while binding or calling a function.
var (
	// ErrInvalidArgument is returned when the function is missing or is not a
	// function, or when the arguments do not fit its signature.
	ErrInvalidArgument = errors.New("bind: invalid argument")

	// ErrUnknownFunc is returned when a function is referenced by a name that
	// was never registered. It wraps ErrInvalidArgument.
	ErrUnknownFunc = fmt.Errorf("%w: unknown function name", ErrInvalidArgument)
)
