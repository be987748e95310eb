// Package text lays out and rasterizes single lines of text for canvas.
//
// A Rasterizer supplies glyph metrics and coverage bitmaps. FontSource is the
// production implementation, parsing TrueType and OpenType fonts with
// golang.org/x/image/font/sfnt and rasterizing outlines with
// golang.org/x/image/vector. Default lazily loads a process-wide font.
//
// Measure and Draw share one layout loop: the pen starts at zero, advances
// by each glyph's scaled advance width and adds the scaled pair kerning
// between neighbours. Draw positions glyphs with subpixel precision and
// writes coverage through a Compositing policy.
//
// # Example usage
//
//	src, err := text.NewFontSourceFromFile("NotoMono-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	size := text.Measure(src, "Hello", 32)
//	text.Draw(target, src, "Hello", image.Pt(10, 10), 32,
//	    text.WithComposite(text.CompositeBlend))
package text
