package canvas

import (
	"errors"

	intImage "github.com/gogpu/canvas/internal/image"
)

// Sentinel errors for canvas.
var (
	// ErrEmptyRect is returned when a view rectangle does not overlap its
	// source canvas.
	ErrEmptyRect = errors.New("canvas: empty rectangle")

	// ErrReleased is returned when a released canvas is encoded.
	ErrReleased = errors.New("canvas: canvas released")

	// ErrDecode wraps every image decoding failure.
	ErrDecode = intImage.ErrDecode

	// ErrInvalidDimensions is returned for non-positive width or height.
	ErrInvalidDimensions = intImage.ErrInvalidDimensions

	// ErrInvalidChannels is returned when the channel count is not 1..4.
	ErrInvalidChannels = intImage.ErrInvalidChannels

	// ErrInvalidStride is returned when a row pitch is shorter than a row.
	ErrInvalidStride = intImage.ErrInvalidStride

	// ErrDataTooSmall is returned when raw memory cannot hold the canvas.
	ErrDataTooSmall = intImage.ErrDataTooSmall
)
