package drawlib

import "errors"

// Sentinel errors shared by drawlib and its sub-packages.
// Callers match them with errors.Is; sub-packages wrap them with context.
var (
	// ErrInvalidArgument is returned when a curve command is built with the
	// wrong number of arguments for its kind.
	ErrInvalidArgument = errors.New("drawlib: invalid argument")

	// ErrResourceUnavailable is returned when an image resource cannot be
	// located or decoded.
	ErrResourceUnavailable = errors.New("drawlib: resource unavailable")

	// ErrUnsupported is returned by bounding and dimension queries when no
	// renderer capable of answering them is attached.
	ErrUnsupported = errors.New("drawlib: operation not supported by backend")

	// ErrAllocation is returned when a backend cannot allocate a scratch
	// surface, for example because the drawable extents are empty.
	ErrAllocation = errors.New("drawlib: backend allocation failure")

	// ErrUnimplemented is returned when a command requires a capability the
	// renderer does not provide, such as drawing text along a path.
	ErrUnimplemented = errors.New("drawlib: feature not implemented by backend")
)
