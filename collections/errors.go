package collections

import (
	"errors"

	"github.com/hasbyte1/go-chain-utils/bind"
)

// Sentinel errors carried by failed chains. Errors returned by user
// functions are carried unchanged and are not listed here.
var (
	// ErrInvalidArgument is returned when a chain step is given no function,
	// a function whose signature does not fit, or a result that cannot be
	// stored in the container. It is the same value as bind.ErrInvalidArgument.
	ErrInvalidArgument = bind.ErrInvalidArgument

	// ErrNoAttribute is returned by Attr when an element has no field, map
	// key or method with the requested name.
	ErrNoAttribute = errors.New("collections: no such attribute")

	// ErrNoItem is returned by Item when an index is out of range, a key is
	// missing, or an element cannot be indexed.
	ErrNoItem = errors.New("collections: no such item")

	// ErrNoMethod is returned by Invoke when an element has no method with
	// the requested name.
	ErrNoMethod = errors.New("collections: no such method")

	// ErrNoResult is reported by the nil *Dict that Map, Keep and Rem return
	// on a dict created with FromMapInPlace.
	ErrNoResult = errors.New("collections: in-place dict operation produced no result")
)
