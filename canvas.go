package canvas

import (
	"fmt"
	"image"
	"io"

	intImage "github.com/gogpu/canvas/internal/image"
	"github.com/gogpu/canvas/text"
)

// Canvas is a rectangular single-byte-per-sample pixel buffer with drawing
// primitives. Each pixel is a group of Channels() bytes; drawing touches the
// first byte of the group.
//
// A Canvas either borrows caller memory (New), owns decoded image memory
// (LoadImage) or owns a copy of another canvas's region (NewMemoryCanvas).
// Release gives owned memory back; the canvas must not be drawn on after.
//
// Canvas has no internal synchronization.
// Canvas must not be copied after creation (enforced by copyCheck).
type Canvas struct {
	// addr is used for copy protection. It must point to the Canvas itself.
	addr *Canvas

	buf   *intImage.ImageBuf
	owner owner
	opts  options
}

// Canvas is the target text.Draw writes into.
var _ text.Target = (*Canvas)(nil)

// New wraps caller-owned memory of width*height pixels with the given
// number of channels, tightly packed. The caller keeps ownership of data
// and must keep it alive while the canvas is used.
func New(data []byte, width, height, channels int, opts ...Option) (*Canvas, error) {
	return NewStrided(data, width, height, channels, 0, opts...)
}

// NewStrided is like New for memory whose rows are stride bytes apart.
// A stride of 0 means width*channels.
func NewStrided(data []byte, width, height, channels, stride int, opts ...Option) (*Canvas, error) {
	buf, err := intImage.FromRaw(data, width, height, channels, stride)
	if err != nil {
		return nil, fmt.Errorf("canvas: wrap memory: %w", err)
	}
	return newCanvas(buf, unowned{}, applyOptions(defaultOptions(), opts)), nil
}

// NewBlank allocates a zeroed canvas owned by the Go heap.
func NewBlank(width, height, channels int, opts ...Option) (*Canvas, error) {
	buf, err := intImage.NewImageBuf(width, height, channels)
	if err != nil {
		return nil, fmt.Errorf("canvas: allocate: %w", err)
	}
	return newCanvas(buf, &heapOwner{pixels: buf.Data()}, applyOptions(defaultOptions(), opts)), nil
}

func newCanvas(buf *intImage.ImageBuf, o owner, opts options) *Canvas {
	c := &Canvas{buf: buf, owner: o, opts: opts}
	c.addr = c
	return c
}

// Width returns the canvas width in pixels. It is 0 after Release.
func (c *Canvas) Width() int {
	if c.buf == nil {
		return 0
	}
	return c.buf.Width()
}

// Height returns the canvas height in pixels. It is 0 after Release.
func (c *Canvas) Height() int {
	if c.buf == nil {
		return 0
	}
	return c.buf.Height()
}

// Channels returns the number of bytes per pixel.
func (c *Canvas) Channels() int {
	if c.buf == nil {
		return 0
	}
	return c.buf.Channels()
}

// Stride returns the distance in bytes between rows.
func (c *Canvas) Stride() int {
	if c.buf == nil {
		return 0
	}
	return c.buf.Stride()
}

// Bounds returns (0, 0)-(Width, Height).
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width(), c.Height())
}

// Data returns the underlying memory. Writes are visible to the canvas.
func (c *Canvas) Data() []byte {
	if c.buf == nil {
		return nil
	}
	return c.buf.Data()
}

// SetPixel writes v to the first sample of pixel (x, y).
//
// Coordinates are trusted unless the canvas was created WithBoundsCheck, in
// which case writes outside the canvas are dropped.
func (c *Canvas) SetPixel(x, y int, v byte) {
	if c.opts.boundsCheck && !c.contains(x, y) {
		slogger().Debug("canvas: dropped out-of-range write", "x", x, "y", y)
		return
	}
	c.buf.SetPixel(x, y, v)
}

// Pixel returns the first sample of pixel (x, y).
// With bounds checking, coordinates outside the canvas read as 0.
func (c *Canvas) Pixel(x, y int) byte {
	if c.opts.boundsCheck && !c.contains(x, y) {
		return 0
	}
	return c.buf.Pixel(x, y)
}

func (c *Canvas) contains(x, y int) bool {
	return c.buf != nil && c.buf.Contains(x, y)
}

// Fill sets every sample of every pixel to v.
func (c *Canvas) Fill(v byte) {
	if c.buf != nil {
		c.buf.Fill(v)
	}
}

// Release gives the canvas memory back to its owner: decoded images are
// freed through their decoder, copies are left to the garbage collector and
// borrowed memory is untouched. Release is idempotent.
func (c *Canvas) Release() {
	c.copyCheck()
	if c.owner != nil {
		slogger().Debug("canvas: release", "owner", c.owner.kind())
		c.owner.release()
	}
	c.buf = nil
}

// Image returns a copy of the canvas as a standard library image: Gray for
// one channel, NRGBA otherwise.
func (c *Canvas) Image() image.Image {
	if c.buf == nil {
		return image.NewGray(image.Rectangle{})
	}
	return c.buf.ToStdImage()
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.buf == nil {
		return ErrReleased
	}
	return c.buf.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.buf == nil {
		return ErrReleased
	}
	return c.buf.SavePNG(path)
}

// copyCheck panics if Canvas was copied by value.
func (c *Canvas) copyCheck() {
	if c.addr != c {
		panic("canvas: Canvas must not be copied by value")
	}
}
