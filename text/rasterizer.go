package text

// Rasterizer is the glyph rasterization capability the layout engine draws
// with. Metrics are in font units unless a scale is passed in.
//
// FontSource is the production implementation. Tests may supply their own.
type Rasterizer interface {
	// ScaleForPixelHeight returns the factor mapping font units to pixels so
	// that ascent-descent spans h pixels.
	ScaleForPixelHeight(h float64) float64

	// VMetrics returns ascent (positive), descent (negative) and line gap.
	VMetrics() (ascent, descent, lineGap int)

	// HMetrics returns the advance width and left side bearing of r.
	HMetrics(r rune) (advance, lsb int)

	// BitmapBox returns the pixel box of r's bitmap at the given scale,
	// relative to the glyph origin on the baseline. Y grows downwards.
	BitmapBox(r rune, scaleX, scaleY float64) (x0, y0, x1, y1 int)

	// KernAdvance returns the extra advance between a and b.
	KernAdvance(a, b rune) int

	// RenderBitmapSubpixel fills the w x h region of dst (row pitch stride)
	// with r's coverage mask, 0 empty to 255 fully covered, rendered at the
	// given scale and subpixel shift.
	RenderBitmapSubpixel(dst []byte, w, h, stride int, scaleX, scaleY, shiftX, shiftY float64, r rune)
}
