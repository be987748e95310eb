package text

import (
	"image"
	"math"
)

// Target is a single-channel pixel surface Draw writes into.
// canvas.Canvas implements it.
type Target interface {
	SetPixel(x, y int, v byte)
	Pixel(x, y int) byte
}

// glyphBox is one placed glyph as seen by a sink.
type glyphBox struct {
	r              rune
	xpos           float64
	baseline       int
	scale          float64
	x0, y0, x1, y1 int
}

// sink consumes glyphs in layout order.
type sink interface {
	glyph(g glyphBox)
}

// layout runs the single-line layout loop over s and feeds every glyph to
// k. It returns the final pen position in pixels.
//
// The pen advances by the scaled advance width of each code point, plus the
// scaled kerning against the following code point when there is one.
func layout(r Rasterizer, s string, size int, k sink) float64 {
	cps := CodePoints(s)
	if len(cps) == 0 {
		return 0
	}

	scale := r.ScaleForPixelHeight(float64(size))
	ascent, _, _ := r.VMetrics()
	baseline := int(float64(ascent) * scale)

	xpos := 0.0
	for i, c := range cps {
		advance, _ := r.HMetrics(c)
		x0, y0, x1, y1 := r.BitmapBox(c, scale, scale)

		k.glyph(glyphBox{
			r:        c,
			xpos:     xpos,
			baseline: baseline,
			scale:    scale,
			x0:       x0,
			y0:       y0,
			x1:       x1,
			y1:       y1,
		})

		xpos += float64(advance) * scale
		if i+1 < len(cps) {
			xpos += scale * float64(r.KernAdvance(c, cps[i+1]))
		}
	}
	return xpos
}

// measureSink tracks the lowest glyph edge below the top of the line.
type measureSink struct {
	maxY int
}

func (m *measureSink) glyph(g glyphBox) {
	m.maxY = max(m.maxY, g.baseline+g.y1)
}

// Measure returns the size of s rendered at size pixels: the truncated pen
// position after the last glyph, and the largest baseline+y1 of any glyph.
//
// The height only grows downwards from the line top. Glyphs that reach above
// it (negative baseline+y0) do not increase it; use Extent for the full ink
// bounds.
func Measure(r Rasterizer, s string, size int) image.Point {
	var m measureSink
	xpos := layout(r, s, size, &m)
	return image.Point{X: int(xpos), Y: m.maxY}
}

// extentSink accumulates the union of all glyph boxes.
type extentSink struct {
	bounds image.Rectangle
}

func (e *extentSink) glyph(g glyphBox) {
	if g.x1 <= g.x0 || g.y1 <= g.y0 {
		return
	}
	ox := int(g.xpos)
	b := image.Rect(ox+g.x0, g.baseline+g.y0, ox+g.x1, g.baseline+g.y1)
	e.bounds = e.bounds.Union(b)
}

// Extent returns the rectangle Draw touches for s at size pixels, relative
// to the draw location. Unlike Measure it includes ink above the line top.
// An empty or blank string yields the zero rectangle.
func Extent(r Rasterizer, s string, size int) image.Rectangle {
	var e extentSink
	layout(r, s, size, &e)
	return e.bounds
}

// drawSink renders every glyph and writes it into dst.
type drawSink struct {
	dst       Target
	r         Rasterizer
	loc       image.Point
	composite Compositing

	// scratch only grows; it holds the largest glyph seen so far.
	scratch []byte
}

func (d *drawSink) glyph(g glyphBox) {
	w, h := g.x1-g.x0, g.y1-g.y0
	if w <= 0 || h <= 0 {
		return
	}
	if n := w * h; n > len(d.scratch) {
		d.scratch = make([]byte, n)
	}
	buf := d.scratch[:w*h]

	shift := g.xpos - math.Floor(g.xpos)
	d.r.RenderBitmapSubpixel(buf, w, h, w, g.scale, g.scale, shift, 0, g.r)

	ox := d.loc.X + int(g.xpos) + g.x0
	oy := d.loc.Y + g.baseline + g.y0
	for y := range h {
		row := buf[y*w : y*w+w]
		for x, cov := range row {
			px, py := ox+x, oy+y
			var cur byte
			if d.composite == CompositeBlend {
				cur = d.dst.Pixel(px, py)
			}
			d.dst.SetPixel(px, py, d.composite.Sample(cur, cov))
		}
	}
}

// Draw renders s at size pixels into dst with the top-left of the line at
// loc. Glyphs are placed on a baseline ascent*scale below loc.Y and
// positioned with subpixel precision horizontally.
//
// With the default CompositeOverwrite every sample of each glyph box is
// overwritten; see WithComposite for the alternative.
func Draw(dst Target, r Rasterizer, s string, loc image.Point, size int, opts ...DrawOption) {
	config := defaultDrawConfig()
	for _, opt := range opts {
		opt(&config)
	}

	d := drawSink{
		dst:       dst,
		r:         r,
		loc:       loc,
		composite: config.composite,
	}
	layout(r, s, size, &d)
}
