package image

import (
	"errors"
	"image"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidChannels is returned when the channel count is not 1..4.
	ErrInvalidChannels = errors.New("image: invalid channel count")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// ImageBuf is a rectangular grid of byte samples.
//
// The sample group of pixel (x, y) starts at y*Stride() + x*Channels().
// Pixel accessors do not check bounds beyond Go's slice checks; callers
// are expected to keep coordinates inside [0,Width) x [0,Height).
//
// Thread safety: ImageBuf has no internal synchronization. Concurrent
// writers must be serialized by the caller.
type ImageBuf struct {
	data     []byte
	width    int
	height   int
	stride   int
	channels int
}

func validate(width, height, channels int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !ValidChannels(channels) {
		return ErrInvalidChannels
	}
	return nil
}

// NewImageBuf allocates a zeroed, tightly packed buffer.
func NewImageBuf(width, height, channels int) (*ImageBuf, error) {
	if err := validate(width, height, channels); err != nil {
		return nil, err
	}

	stride := RowBytes(width, channels)
	return &ImageBuf{
		data:     make([]byte, stride*height),
		width:    width,
		height:   height,
		stride:   stride,
		channels: channels,
	}, nil
}

// FromRaw wraps existing memory without copying.
// The caller must keep data alive for the lifetime of the ImageBuf.
// A stride of 0 selects width*channels.
func FromRaw(data []byte, width, height, channels, stride int) (*ImageBuf, error) {
	if err := validate(width, height, channels); err != nil {
		return nil, err
	}

	minStride := RowBytes(width, channels)
	if stride == 0 {
		stride = minStride
	}
	if stride < minStride {
		return nil, ErrInvalidStride
	}

	// The last row only needs its used bytes.
	requiredSize := (height-1)*stride + minStride
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &ImageBuf{
		data:     data,
		width:    width,
		height:   height,
		stride:   stride,
		channels: channels,
	}, nil
}

// Clone creates a deep, tightly packed copy of the buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	c, _ := NewImageBuf(b.width, b.height, b.channels)
	Copy(c, image.Point{}, b, b.Bounds())
	return c
}

// Width returns the buffer width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Channels returns the number of bytes per sample group.
func (b *ImageBuf) Channels() int {
	return b.channels
}

// Stride returns the number of bytes per row (including padding).
func (b *ImageBuf) Stride() int {
	return b.stride
}

// Bounds returns the buffer rectangle, anchored at the origin.
func (b *ImageBuf) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Contains reports whether (x, y) addresses a pixel inside the buffer.
func (b *ImageBuf) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Data returns the raw sample slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns the used bytes of row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+RowBytes(b.width, b.channels)]
}

// PixelOffset returns the byte offset of pixel (x, y). It is unchecked.
func (b *ImageBuf) PixelOffset(x, y int) int {
	return y*b.stride + x*b.channels
}

// PixelBytes returns the sample group of pixel (x, y).
func (b *ImageBuf) PixelBytes(x, y int) []byte {
	off := b.PixelOffset(x, y)
	return b.data[off : off+b.channels]
}

// SetPixel writes v into the first channel of pixel (x, y).
func (b *ImageBuf) SetPixel(x, y int, v byte) {
	b.data[b.PixelOffset(x, y)] = v
}

// Pixel reads the first channel of pixel (x, y).
func (b *ImageBuf) Pixel(x, y int) byte {
	return b.data[b.PixelOffset(x, y)]
}

// Clear sets every sample to zero.
func (b *ImageBuf) Clear() {
	b.Fill(0)
}

// Fill sets every channel of every pixel to v. Row padding is left alone.
func (b *ImageBuf) Fill(v byte) {
	for y := range b.height {
		row := b.RowBytes(y)
		for i := range row {
			row[i] = v
		}
	}
}
