package canvas

import "errors"

// Sentinel errors returned by group editing operations.
var (
	// ErrNilObject is returned when a nil shape is passed to a group.
	ErrNilObject = errors.New("canvas: nil object")

	// ErrObjectInGroup is returned when a shape is inserted twice into the
	// same group.
	ErrObjectInGroup = errors.New("canvas: object already in group")

	// ErrCyclicGroup is returned when a group would become its own
	// ancestor.
	ErrCyclicGroup = errors.New("canvas: group cannot contain itself")

	// ErrIndexOutOfRange is returned by Insert for an invalid position.
	ErrIndexOutOfRange = errors.New("canvas: index out of range")
)
