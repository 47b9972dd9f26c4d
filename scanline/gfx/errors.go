package gfx

import "errors"

var (
	// ErrSize reports a dimension or entry count outside the supported range.
	ErrSize = errors.New("gfx: invalid size")
	// ErrIndex reports an entry, tile or picture index out of range.
	ErrIndex = errors.New("gfx: index out of range")
	// ErrNilResource reports a required resource that was not provided.
	ErrNilResource = errors.New("gfx: nil resource")
)
