package scrambler

import "errors"

// Errors reported by transforms. Out-of-bounds access during tile
// extraction and reassembly is recovered by clipping and is never
// surfaced as an error.
var (
	// ErrInvalidBuffer is returned when a pixmap is nil, has zero
	// dimensions, or its data length does not match width*height*4.
	ErrInvalidBuffer = errors.New("scrambler: invalid pixel buffer")

	// ErrInvalidParameter is returned when an operation parameter is out
	// of range: cell size below 1, ratio outside [0,1], negative radius,
	// or a control value outside the supported range.
	ErrInvalidParameter = errors.New("scrambler: invalid parameter")
)
