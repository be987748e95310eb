package text

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// fakeGlyph describes one glyph of fakeRasterizer in font units.
type fakeGlyph struct {
	advance int
	// box is x0, y0, x1, y1, y down, relative to the origin on the baseline.
	box [4]int
	// coverage returns the sample at (x, y) of a w x h bitmap.
	coverage func(x, y, w, h int) byte
}

// fakeRasterizer has ascent 8 and descent -2, so size n gives scale n/10.
type fakeRasterizer struct {
	glyphs map[rune]fakeGlyph
	kern   map[runePair]int

	kernCalls []runePair
	shifts    []float64
}

func newFakeRasterizer() *fakeRasterizer {
	full := func(x, y, w, h int) byte { return 255 }
	return &fakeRasterizer{
		glyphs: map[rune]fakeGlyph{
			'A': {advance: 5, box: [4]int{0, -8, 5, 0}, coverage: full},
			'B': {advance: 6, box: [4]int{0, -8, 6, 0}, coverage: full},
			' ': {advance: 3},
		},
		kern: map[runePair]int{
			{'A', 'A'}: -1,
		},
	}
}

var _ Rasterizer = (*fakeRasterizer)(nil)

func (f *fakeRasterizer) ScaleForPixelHeight(h float64) float64 { return h / 10 }

func (f *fakeRasterizer) VMetrics() (ascent, descent, lineGap int) { return 8, -2, 0 }

func (f *fakeRasterizer) HMetrics(r rune) (advance, lsb int) {
	return f.glyphs[r].advance, f.glyphs[r].box[0]
}

func (f *fakeRasterizer) BitmapBox(r rune, scaleX, scaleY float64) (x0, y0, x1, y1 int) {
	b := f.glyphs[r].box
	return int(math.Floor(float64(b[0]) * scaleX)), int(math.Floor(float64(b[1]) * scaleY)),
		int(math.Ceil(float64(b[2]) * scaleX)), int(math.Ceil(float64(b[3]) * scaleY))
}

func (f *fakeRasterizer) KernAdvance(a, b rune) int {
	f.kernCalls = append(f.kernCalls, runePair{a, b})
	return f.kern[runePair{a, b}]
}

func (f *fakeRasterizer) RenderBitmapSubpixel(dst []byte, w, h, stride int, scaleX, scaleY, shiftX, shiftY float64, r rune) {
	f.shifts = append(f.shifts, shiftX)
	g := f.glyphs[r]
	for y := range h {
		for x := range w {
			var v byte
			if g.coverage != nil {
				v = g.coverage(x, y, w, h)
			}
			dst[y*stride+x] = v
		}
	}
}

// memTarget is a single-channel Target.
type memTarget struct {
	w, h int
	pix  []byte
}

func newMemTarget(w, h int, fill byte) *memTarget {
	m := &memTarget{w: w, h: h, pix: make([]byte, w*h)}
	for i := range m.pix {
		m.pix[i] = fill
	}
	return m
}

func (m *memTarget) SetPixel(x, y int, v byte) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.pix[y*m.w+x] = v
}

func (m *memTarget) Pixel(x, y int) byte {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return 0
	}
	return m.pix[y*m.w+x]
}

// goRegular returns a FontSource for the Go Regular font.
func goRegular(t *testing.T, opts ...SourceOption) *FontSource {
	t.Helper()
	s, err := NewFontSource(goregular.TTF, opts...)
	if err != nil {
		t.Fatalf("NewFontSource(goregular) error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// robotoRegular loads Roboto Regular, which has kern and GPOS pair data.
func robotoRegular(t *testing.T, opts ...SourceOption) *FontSource {
	t.Helper()
	s, err := NewFontSourceFromFile(filepath.Join("testdata", "Roboto-Regular.ttf"), opts...)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile(roboto) error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// goRegularFile writes the Go Regular font to a temporary file.
func goRegularFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatalf("write font: %v", err)
	}
	return path
}
