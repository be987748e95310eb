package canvas

import (
	"image"

	"github.com/gogpu/canvas/text"
)

// Font returns the font the canvas draws text with: the one set WithFont,
// or text.Default.
func (c *Canvas) Font() text.Rasterizer {
	if c.opts.font != nil {
		return c.opts.font
	}
	return text.Default()
}

// DrawText renders s at size pixels with the top-left of the line at loc.
// Glyph coverage is written to the first sample of each pixel using the
// canvas's compositing policy (see WithCompositing).
func (c *Canvas) DrawText(s string, loc image.Point, size int) {
	c.copyCheck()
	text.Draw(c, c.Font(), s, loc, size, text.WithComposite(c.opts.composite))
}

// TextSize returns the width of s at size pixels and the lowest extent of
// any glyph below the line top. See text.Measure.
func (c *Canvas) TextSize(s string, size int) image.Point {
	c.copyCheck()
	return text.Measure(c.Font(), s, size)
}

// TextExtent returns the rectangle DrawText touches for s at size pixels,
// relative to the draw location, including ink above the line top.
func (c *Canvas) TextExtent(s string, size int) image.Rectangle {
	c.copyCheck()
	return text.Extent(c.Font(), s, size)
}
