package core

import "errors"

var (
	// ErrNotFound reports a mutation of a coordinate that is absent from the grid.
	ErrNotFound = errors.New("cell not found")
	// ErrInvalidConfiguration reports an unrecognized option value.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
