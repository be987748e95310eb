package canvas

import (
	intImage "github.com/gogpu/canvas/internal/image"
	"github.com/gogpu/canvas/text"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	src, _ := text.NewFontSourceFromFile("DejaVuSans.ttf")
//	c, err := canvas.New(fb, 1404, 1872, 2, canvas.WithFont(src))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	font        text.Rasterizer
	decoder     Decoder
	composite   text.Compositing
	boundsCheck bool
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		font:      nil, // text.Default() on first use
		decoder:   intImage.DefaultDecoder,
		composite: text.CompositeOverwrite,
	}
}

func applyOptions(base options, opts []Option) options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// WithFont sets the font used by DrawText and TextSize.
// Without it the process-wide text.Default font is used.
func WithFont(r text.Rasterizer) Option {
	return func(o *options) {
		o.font = r
	}
}

// WithDecoder sets the decoder LoadImage and LoadImageFromBytes use.
// The same decoder frees the pixels on Release.
func WithDecoder(d Decoder) Option {
	return func(o *options) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithCompositing selects how DrawText writes glyph coverage.
// The default, text.CompositeOverwrite, overwrites whole glyph boxes.
func WithCompositing(c text.Compositing) Option {
	return func(o *options) {
		o.composite = c
	}
}

// WithBoundsCheck makes SetPixel drop writes outside the canvas and Pixel
// return 0 there. Without it coordinates are trusted.
func WithBoundsCheck(on bool) Option {
	return func(o *options) {
		o.boundsCheck = on
	}
}
