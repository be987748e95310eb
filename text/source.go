package text

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// MaxFontSize is the largest font file FontSource will read (24 MiB).
const MaxFontSize = 24 << 20

// FontSource is a parsed font that implements Rasterizer.
//
// Metrics come from golang.org/x/image/font/sfnt and glyph coverage is
// rasterized with golang.org/x/image/vector. An empty FontSource, as handed
// out by Default when the font could not be loaded, reports zero metrics and
// renders nothing.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data []byte
	font *sfnt.Font
	name string

	// unitsPerEm as a 26.6 ppem makes sfnt report font units * 64.
	ppem fixed.Int26_6

	ascent, descent, lineGap int

	// mu guards the scratch state below.
	mu     sync.Mutex
	buf    sfnt.Buffer
	raster vector.Rasterizer
	mask   *image.Alpha

	shaper    *pairShaper
	kernCache *Cache[runePair, int]

	config sourceConfig
}

var _ Rasterizer = (*FontSource)(nil)

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if len(data) > MaxFontSize {
		return nil, ErrFontTooLarge
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data:   dataCopy,
		font:   f,
		ppem:   fixed.I(int(f.UnitsPerEm())),
		config: config,
	}
	s.addr = s

	m, err := f.Metrics(&s.buf, s.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font metrics: %w", err)
	}
	s.ascent = m.Ascent.Round()
	s.descent = -m.Descent.Round()
	s.lineGap = (m.Height - m.Ascent - m.Descent).Round()

	if config.kerning == KernShaped {
		sh, err := newPairShaper(dataCopy)
		if err != nil {
			slogger().Warn("text: shaped kerning unavailable, using kern tables", "err", err)
		} else {
			s.shaper = sh
			s.kernCache = NewCache[runePair, int](config.kernCacheLimit)
		}
	}

	s.name = extractFontName(f, &s.buf)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
// Files larger than MaxFontSize are rejected with ErrFontTooLarge.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	data, err := readFontFile(path)
	if err != nil {
		return nil, err
	}
	return NewFontSource(data, opts...)
}

// readFontFile reads at most MaxFontSize bytes from path.
func readFontFile(path string) ([]byte, error) {
	// #nosec G304 -- Font file path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to open font file: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, MaxFontSize+1))
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	if len(data) > MaxFontSize {
		return nil, ErrFontTooLarge
	}
	return data, nil
}

// emptySource returns a FontSource without a font.
func emptySource() *FontSource {
	s := &FontSource{name: "Unknown Font", config: defaultSourceConfig()}
	s.addr = s
	return s
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// IsEmpty reports whether the source holds no font.
func (s *FontSource) IsEmpty() bool {
	s.copyCheck()
	return s.font == nil
}

// Close releases the font data. The source is empty afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.font = nil
	s.shaper = nil
	s.kernCache = nil
	s.ascent, s.descent, s.lineGap = 0, 0, 0
	return nil
}

// ScaleForPixelHeight implements Rasterizer.
func (s *FontSource) ScaleForPixelHeight(h float64) float64 {
	s.copyCheck()

	fheight := s.ascent - s.descent
	if fheight == 0 {
		return 0
	}
	return h / float64(fheight)
}

// VMetrics implements Rasterizer.
func (s *FontSource) VMetrics() (ascent, descent, lineGap int) {
	s.copyCheck()
	return s.ascent, s.descent, s.lineGap
}

// HMetrics implements Rasterizer.
func (s *FontSource) HMetrics(r rune) (advance, lsb int) {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.font == nil {
		return 0, 0
	}
	x := s.glyphIndex(r)
	bounds, adv, err := s.font.GlyphBounds(&s.buf, x, s.ppem, font.HintingNone)
	if err != nil {
		return 0, 0
	}
	return adv.Round(), bounds.Min.X.Round()
}

// BitmapBox implements Rasterizer.
func (s *FontSource) BitmapBox(r rune, scaleX, scaleY float64) (x0, y0, x1, y1 int) {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.font == nil {
		return 0, 0, 0, 0
	}
	b, ok := s.unitBounds(s.glyphIndex(r))
	if !ok {
		return 0, 0, 0, 0
	}
	return pixelBox(b, scaleX, scaleY, 0, 0)
}

// KernAdvance implements Rasterizer.
//
// With KernTables the kern table and GPOS pair adjustments are consulted
// through sfnt. With KernShaped the pair is shaped with HarfBuzz instead.
func (s *FontSource) KernAdvance(a, b rune) int {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.font == nil {
		return 0
	}
	if s.shaper != nil {
		return s.kernCache.GetOrCreate(runePair{a, b}, func() int {
			return s.shaper.kern(a, b)
		})
	}

	k, err := s.font.Kern(&s.buf, s.glyphIndex(a), s.glyphIndex(b), s.ppem, font.HintingNone)
	if err != nil {
		// ErrNotFound means the pair has no adjustment.
		if !errors.Is(err, sfnt.ErrNotFound) {
			slogger().Debug("text: kern lookup failed", "a", a, "b", b, "err", err)
		}
		return 0
	}
	return k.Round()
}

// RenderBitmapSubpixel implements Rasterizer.
func (s *FontSource) RenderBitmapSubpixel(dst []byte, w, h, stride int, scaleX, scaleY, shiftX, shiftY float64, r rune) {
	s.copyCheck()
	if w <= 0 || h <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.font == nil {
		return
	}
	x := s.glyphIndex(r)
	b, ok := s.unitBounds(x)
	if !ok {
		return
	}
	segments, err := s.font.LoadGlyph(&s.buf, x, s.ppem, nil)
	if err != nil {
		slogger().Debug("text: load glyph failed", "rune", r, "err", err)
		return
	}

	// The outline is placed relative to the shifted box, so the mask origin
	// is the box corner at this subpixel offset.
	ox, oy, _, _ := pixelBox(b, scaleX, scaleY, shiftX, shiftY)
	tx := func(v fixed.Int26_6) float32 {
		return float32(unitsOf(v)*scaleX + shiftX - float64(ox))
	}
	ty := func(v fixed.Int26_6) float32 {
		return float32(unitsOf(v)*scaleY + shiftY - float64(oy))
	}

	s.raster.Reset(w, h)
	s.raster.DrawOp = draw.Src
	started := false
	for _, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				s.raster.ClosePath()
			}
			s.raster.MoveTo(tx(a[0].X), ty(a[0].Y))
			started = true
		case sfnt.SegmentOpLineTo:
			s.raster.LineTo(tx(a[0].X), ty(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			s.raster.QuadTo(tx(a[0].X), ty(a[0].Y), tx(a[1].X), ty(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			s.raster.CubeTo(tx(a[0].X), ty(a[0].Y), tx(a[1].X), ty(a[1].Y), tx(a[2].X), ty(a[2].Y))
		}
	}
	if started {
		s.raster.ClosePath()
	}

	mask := s.maskFor(w, h)
	s.raster.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for y := range h {
		copy(dst[y*stride:y*stride+w], mask.Pix[y*mask.Stride:y*mask.Stride+w])
	}
}

// maskFor returns a w x h scratch mask backed by memory that only grows.
// Caller must hold s.mu.
func (s *FontSource) maskFor(w, h int) *image.Alpha {
	if s.mask == nil || len(s.mask.Pix) < w*h {
		s.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	}
	s.mask.Pix = s.mask.Pix[:cap(s.mask.Pix)][:w*h]
	s.mask.Stride = w
	s.mask.Rect = image.Rect(0, 0, w, h)
	return s.mask
}

// glyphIndex maps r to a glyph, falling back to .notdef.
// Caller must hold s.mu.
func (s *FontSource) glyphIndex(r rune) sfnt.GlyphIndex {
	x, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil {
		return 0
	}
	return x
}

// unitBounds returns the outline bounds of glyph x in 26.6 font units, y down.
// Caller must hold s.mu.
func (s *FontSource) unitBounds(x sfnt.GlyphIndex) (fixed.Rectangle26_6, bool) {
	b, _, err := s.font.GlyphBounds(&s.buf, x, s.ppem, font.HintingNone)
	if err != nil || b.Empty() {
		return fixed.Rectangle26_6{}, false
	}
	return b, true
}

// unitsOf converts a 26.6 value measured at ppem == unitsPerEm to font units.
func unitsOf(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// pixelBox scales font-unit bounds to the integer pixel box covering them.
func pixelBox(b fixed.Rectangle26_6, scaleX, scaleY, shiftX, shiftY float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(unitsOf(b.Min.X)*scaleX + shiftX))
	y0 = int(math.Floor(unitsOf(b.Min.Y)*scaleY + shiftY))
	x1 = int(math.Ceil(unitsOf(b.Max.X)*scaleX + shiftX))
	y1 = int(math.Ceil(unitsOf(b.Max.Y)*scaleY + shiftY))
	return x0, y0, x1, y1
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(f *sfnt.Font, buf *sfnt.Buffer) string {
	if name, err := f.Name(buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
