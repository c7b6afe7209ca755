package golist

import "errors"

var (
	// ErrIndexOutOfBounds is returned when an index falls outside the valid
	// range [0, Size()). The spare capacity beyond Size() is never readable.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrEmptyList is returned by the first/last accessors and removals when
	// the list holds no elements.
	ErrEmptyList = errors.New("list is empty")
)
