package image

import "image"

// Copy copies the srcRect window of src into dst with its top-left corner at
// dstOrigin. For every (x, y) in the window, the sample group at
// srcRect.Min+(x, y) replaces the one at dstOrigin+(x, y). No blending.
//
// When the channel counts differ only the common leading channels are copied.
// Both windows must lie inside their buffers.
func Copy(dst *ImageBuf, dstOrigin image.Point, src *ImageBuf, srcRect image.Rectangle) {
	w, h := srcRect.Dx(), srcRect.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	if dst.channels == src.channels {
		n := w * src.channels
		for y := range h {
			so := src.PixelOffset(srcRect.Min.X, srcRect.Min.Y+y)
			do := dst.PixelOffset(dstOrigin.X, dstOrigin.Y+y)
			copy(dst.data[do:do+n], src.data[so:so+n])
		}
		return
	}

	ch := min(dst.channels, src.channels)
	for y := range h {
		for x := range w {
			s := src.PixelBytes(srcRect.Min.X+x, srcRect.Min.Y+y)
			d := dst.PixelBytes(dstOrigin.X+x, dstOrigin.Y+y)
			copy(d[:ch], s[:ch])
		}
	}
}
