package text

const unknownStr = "Unknown"

// Compositing selects how Draw writes glyph coverage into a Target.
type Compositing uint8

const (
	// CompositeOverwrite writes every sample of a glyph box as
	// ((255-coverage)/16)<<1, a 16-level palette in steps of two. The write
	// ignores what is already there, so where consecutive glyph boxes overlap
	// (for example "lj") the later glyph's background replaces earlier ink.
	CompositeOverwrite Compositing = iota

	// CompositeBlend darkens the destination by the coverage:
	// dst*(255-coverage)/255. Samples without coverage are left untouched.
	CompositeBlend
)

// String returns the policy name.
func (c Compositing) String() string {
	switch c {
	case CompositeOverwrite:
		return "Overwrite"
	case CompositeBlend:
		return "Blend"
	default:
		return unknownStr
	}
}

// Sample returns the value written over dst for the given coverage.
func (c Compositing) Sample(dst, coverage byte) byte {
	switch c {
	case CompositeBlend:
		return byte(uint16(dst) * uint16(255-coverage) / 255)
	default:
		inv := 255 - coverage
		return (inv / 16) << 1
	}
}
