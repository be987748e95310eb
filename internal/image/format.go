// Package image provides pixel buffer management for gogpu/canvas.
//
// Buffers are byte grids addressed as y*stride + x*channels. They do not own
// their memory; the canvas that created them decides how it is released.
package image

// MaxChannels is the largest supported number of bytes per sample group.
const MaxChannels = 4

// ChannelInfo contains metadata about a sample layout.
type ChannelInfo struct {
	// Name is a short human readable layout name.
	Name string

	// HasAlpha indicates if the last channel is alpha.
	HasAlpha bool

	// IsGrayscale indicates if the color part is a single luminance channel.
	IsGrayscale bool
}

// channelInfoTable is indexed by channel count.
var channelInfoTable = [MaxChannels + 1]ChannelInfo{
	0: {Name: "Invalid"},
	1: {Name: "Gray", IsGrayscale: true},
	2: {Name: "GrayAlpha", HasAlpha: true, IsGrayscale: true},
	3: {Name: "RGB"},
	4: {Name: "RGBA", HasAlpha: true},
}

// ValidChannels reports whether n is a supported channel count.
func ValidChannels(n int) bool {
	return n >= 1 && n <= MaxChannels
}

// Info returns layout metadata for a channel count.
// Unsupported counts return the "Invalid" entry.
func Info(channels int) ChannelInfo {
	if !ValidChannels(channels) {
		return channelInfoTable[0]
	}
	return channelInfoTable[channels]
}

// RowBytes returns the minimum bytes per row for the given width.
func RowBytes(width, channels int) int {
	return width * channels
}

// ByteSize returns the bytes needed for a tightly packed buffer.
func ByteSize(width, height, channels int) int {
	return RowBytes(width, channels) * height
}
