package text

import (
	"bytes"
	"math"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// pairShaper derives kerning from HarfBuzz shaping of a two-rune run.
// Shaping applies the whole GPOS positioning pipeline, which covers kerning
// that is expressed through contextual lookups as well as plain pair tables.
//
// pairShaper is not safe for concurrent use; FontSource serializes access.
type pairShaper struct {
	face   *gotext.Face
	shaper shaping.HarfbuzzShaper
	size   fixed.Int26_6 // one em in 26.6, so output is in font units
	lang   language.Language
}

// newPairShaper parses data with go-text/typesetting.
func newPairShaper(data []byte) (*pairShaper, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &pairShaper{
		face: face,
		size: fixed.I(int(face.Upem())),
		lang: language.NewLanguage("en"),
	}, nil
}

// kern returns the shaped advance of a in front of b minus a's nominal
// advance, in font units. Pairs that shape into a ligature have no kern.
func (p *pairShaper) kern(a, b rune) int {
	out := p.shaper.Shape(shaping.Input{
		Text:      []rune{a, b},
		RunStart:  0,
		RunEnd:    2,
		Direction: di.DirectionLTR,
		Face:      p.face,
		Size:      p.size,
		Script:    language.LookupScript(a),
		Language:  p.lang,
	})
	if len(out.Glyphs) != 2 {
		return 0
	}

	g := out.Glyphs[0]
	shaped := float64(g.Advance) / 64
	nominal := float64(p.face.HorizontalAdvance(g.GlyphID))
	return int(math.Round(shaped - nominal))
}
