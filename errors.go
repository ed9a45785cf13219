package shiftmap

import "errors"

var (
	// ErrEmpty is reported by positional accessors on an empty container.
	ErrEmpty = errors.New("shiftmap: container is empty")

	// ErrKeyNotInUniverse is reported by universe-bound containers when a
	// mutating operation is given a key outside the bound universe.
	ErrKeyNotInUniverse = errors.New("shiftmap: key is not in the universe")
)
