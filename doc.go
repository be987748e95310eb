// Package canvas provides a minimal raster canvas for low bit-depth displays
// such as e-paper framebuffers.
//
// # Overview
//
// A Canvas is a rectangular grid of pixels, each a group of 1 to 4 bytes.
// Drawing writes the first byte of a pixel's group. Lines are rasterized
// with integer Bresenham stepping and text is laid out on a single line with
// pair kerning and subpixel glyph positioning.
//
// # Quick Start
//
//	import "github.com/gogpu/canvas"
//
//	fb := make([]byte, 1404*1872*2)
//	c, err := canvas.New(fb, 1404, 1872, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c.DrawLine(image.Pt(10, 10), image.Pt(400, 120), 0)
//	c.DrawText("Hello", image.Pt(10, 200), 48)
//
// # Memory Ownership
//
// Three constructors select who owns the pixels:
//   - New and NewStrided borrow caller memory
//   - LoadImage and LoadImageFromBytes own decoded memory, freed through the
//     decoder by Release or Close
//   - NewMemoryCanvas and NewBlank own Go-allocated memory
//
// # Text
//
// Text uses the font set WithFont or, by default, text.Default, which loads
// text.DefaultFontPath once per process. If that font is missing, text
// measures as zero and draws nothing; the failure is logged at warn level
// (see SetLogger).
//
// Glyph boxes are written with text.CompositeOverwrite unless another
// policy is selected WithCompositing. Overwrite quantizes to 16 levels and
// does not blend, so overlapping glyph boxes stomp earlier ink.
package canvas
