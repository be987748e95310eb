package canvas

import (
	"image"

	intImage "github.com/gogpu/canvas/internal/image"
)

// MemoryCanvas is a Canvas holding its own copy of a region of another
// canvas. Changes to either canvas afterwards are not shared.
type MemoryCanvas struct {
	*Canvas

	origin image.Point
}

// NewMemoryCanvas copies rect of src into a new canvas with the same
// channel count. The new canvas is rect.Dx() by rect.Dy() pixels and starts
// with the pixels of src at rect.
//
// rect is clipped to src's bounds; if nothing is left ErrEmptyRect is
// returned. The new canvas inherits src's options unless overridden.
func NewMemoryCanvas(src *Canvas, rect image.Rectangle, opts ...Option) (*MemoryCanvas, error) {
	src.copyCheck()

	r := rect.Intersect(src.Bounds())
	if r.Empty() {
		return nil, ErrEmptyRect
	}
	if r != rect {
		slogger().Debug("canvas: view clipped to source", "rect", rect, "clipped", r)
	}

	buf, err := intImage.NewImageBuf(r.Dx(), r.Dy(), src.Channels())
	if err != nil {
		return nil, err
	}
	intImage.Copy(buf, image.Point{}, src.buf, r)

	c := newCanvas(buf, &heapOwner{pixels: buf.Data()}, applyOptions(src.opts, opts))
	return &MemoryCanvas{Canvas: c, origin: r.Min}, nil
}

// Origin returns the top-left corner of the copied region in the source.
func (m *MemoryCanvas) Origin() image.Point {
	return m.origin
}
