package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontTooLarge is returned when a font file exceeds MaxFontSize.
	ErrFontTooLarge = errors.New("text: font file exceeds size limit")
)
