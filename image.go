package canvas

import (
	"errors"
	"fmt"
	"io"

	intImage "github.com/gogpu/canvas/internal/image"
)

// Decoder turns encoded images into pixel memory and frees that memory
// again. The default decoder reads PNG, JPEG, GIF, BMP, TIFF and WebP.
type Decoder = intImage.Decoder

// Decoded is pixel memory produced by a Decoder.
type Decoded = intImage.Decoded

// ImageCanvas is a Canvas over decoded image memory.
// The memory is freed through the decoder that produced it, once, by
// Release or Close.
type ImageCanvas struct {
	*Canvas

	native int
}

var _ io.Closer = (*ImageCanvas)(nil)

// LoadImage decodes the image file at path.
//
// A channels value of 0 keeps the image's native channel count; any other
// value in 1..4 converts the pixels to that many channels. On failure no
// canvas is returned and the error wraps ErrDecode.
func LoadImage(path string, channels int, opts ...Option) (*ImageCanvas, error) {
	o := applyOptions(defaultOptions(), opts)
	d, err := o.decoder.DecodeFile(path, channels)
	if err != nil {
		slogger().Debug("canvas: decode failed", "path", path, "err", err)
		return nil, fmt.Errorf("canvas: load %s: %w", path, decodeError(err))
	}
	return newImageCanvas(o, d)
}

// LoadImageFromBytes decodes an in-memory encoded image.
// See LoadImage for the meaning of channels.
func LoadImageFromBytes(data []byte, channels int, opts ...Option) (*ImageCanvas, error) {
	o := applyOptions(defaultOptions(), opts)
	d, err := o.decoder.DecodeBytes(data, channels)
	if err != nil {
		slogger().Debug("canvas: decode failed", "bytes", len(data), "err", err)
		return nil, fmt.Errorf("canvas: load image data: %w", decodeError(err))
	}
	return newImageCanvas(o, d)
}

func newImageCanvas(o options, d *Decoded) (*ImageCanvas, error) {
	layout := d.Layout
	if layout == 0 {
		layout = d.Channels
	}

	buf, err := intImage.FromRaw(d.Pix, d.Width, d.Height, layout, 0)
	if err != nil {
		o.decoder.Free(d)
		return nil, fmt.Errorf("canvas: decoded pixels: %w", decodeError(err))
	}

	slogger().Debug("canvas: image loaded",
		"width", d.Width, "height", d.Height,
		"layout", intImage.Info(layout).Name, "native", intImage.Info(d.Channels).Name)

	c := newCanvas(buf, &imageOwner{decoder: o.decoder, pixels: d}, o)
	return &ImageCanvas{Canvas: c, native: d.Channels}, nil
}

// decodeError makes err wrap ErrDecode. Custom decoders need not.
func decodeError(err error) error {
	if errors.Is(err, ErrDecode) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrDecode, err)
}

// NativeChannels returns the channel count stored in the image file,
// which may differ from Channels when a count was forced at load time.
func (c *ImageCanvas) NativeChannels() int {
	return c.native
}

// Close releases the decoded memory. It always returns nil.
func (c *ImageCanvas) Close() error {
	c.Release()
	return nil
}
