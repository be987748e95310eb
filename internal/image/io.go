package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrDecode is returned when encoded bytes cannot be turned into pixels.
	ErrDecode = errors.New("image: decode failed")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Decoded is pixel memory produced by a Decoder.
//
// Pix is tightly packed with the requested channel count, or with Channels
// when the request was 0. Channels always reports the source's native count.
// Pix belongs to the Decoder that produced it and must be handed back through
// that Decoder's Free.
type Decoded struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int

	// Layout is the channel count Pix is packed with.
	Layout int
}

// Decoder turns encoded image bytes into raw pixels.
type Decoder interface {
	// DecodeFile decodes the image at path. A channels value of 0 keeps the
	// native channel count.
	DecodeFile(path string, channels int) (*Decoded, error)

	// DecodeBytes decodes an in-memory encoded image.
	DecodeBytes(data []byte, channels int) (*Decoded, error)

	// Free releases memory returned by DecodeFile or DecodeBytes.
	Free(d *Decoded)
}

// StdDecoder decodes through the standard image registry, which this package
// extends with BMP, TIFF and WebP. Pixel memory comes from a Pool and Free
// returns it there.
type StdDecoder struct {
	pool *Pool
}

var _ Decoder = (*StdDecoder)(nil)

// NewStdDecoder creates a decoder allocating from pool.
// A nil pool selects the package default pool.
func NewStdDecoder(pool *Pool) *StdDecoder {
	if pool == nil {
		pool = defaultPool
	}
	return &StdDecoder{pool: pool}
}

// DefaultDecoder is the decoder used when none is configured.
var DefaultDecoder Decoder = NewStdDecoder(nil)

// DecodeFile implements Decoder.
func (d *StdDecoder) DecodeFile(path string, channels int) (*Decoded, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open file: %w", ErrDecode, err)
	}
	defer func() { _ = f.Close() }()

	return d.decode(f, channels)
}

// DecodeBytes implements Decoder.
func (d *StdDecoder) DecodeBytes(data []byte, channels int) (*Decoded, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrEmptyData)
	}
	return d.decode(bytes.NewReader(data), channels)
}

// Free implements Decoder. Freeing nil or already freed memory is a no-op.
func (d *StdDecoder) Free(dec *Decoded) {
	if dec == nil || dec.Pix == nil {
		return
	}
	d.pool.Put(dec.Pix, dec.Width, dec.Height, dec.Layout)
	dec.Pix = nil
}

func (d *StdDecoder) decode(r io.Reader, channels int) (*Decoded, error) {
	if channels != 0 && !ValidChannels(channels) {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrInvalidChannels)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrInvalidDimensions)
	}

	native := NativeChannels(img)
	layout := channels
	if layout == 0 {
		layout = native
	}

	pix := d.pool.Get(bounds.Dx(), bounds.Dy(), layout)
	convertInto(pix, img, layout)

	return &Decoded{
		Pix:      pix,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: native,
		Layout:   layout,
	}, nil
}

// NativeChannels returns the channel count an image carries natively:
// 1 for grayscale, 3 for opaque color and 4 for color with alpha.
func NativeChannels(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// luma is the integer luminance approximation used for gray conversion.
func luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*77 + uint32(g)*150 + uint32(b)*29) >> 8)
}

// convertInto packs img into pix using the given channel layout.
func convertInto(pix []byte, img image.Image, channels int) {
	bounds := img.Bounds()
	width := bounds.Dx()

	// Fast path for grayscale to grayscale.
	if gray, ok := img.(*image.Gray); ok && channels == 1 {
		for y := range bounds.Dy() {
			srcStart := y * gray.Stride
			copy(pix[y*width:], gray.Pix[srcStart:srcStart+width])
		}
		return
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			switch channels {
			case 1:
				pix[i] = luma(c.R, c.G, c.B)
			case 2:
				pix[i] = luma(c.R, c.G, c.B)
				pix[i+1] = c.A
			case 3:
				pix[i], pix[i+1], pix[i+2] = c.R, c.G, c.B
			case 4:
				pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
			}
			i += channels
		}
	}
}

// ToStdImage converts the buffer to a standard library image.
// Returns *image.Gray for one channel and *image.NRGBA otherwise.
func (b *ImageBuf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)
	info := Info(b.channels)

	if info.IsGrayscale && !info.HasAlpha {
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray
	}

	nrgba := image.NewNRGBA(rect)
	for y := range b.height {
		row := b.RowBytes(y)
		dstStart := y * nrgba.Stride
		for x := range b.width {
			s := row[x*b.channels : (x+1)*b.channels]
			d := nrgba.Pix[dstStart+x*4 : dstStart+x*4+4]
			if info.IsGrayscale {
				d[0], d[1], d[2] = s[0], s[0], s[0]
			} else {
				d[0], d[1], d[2] = s[0], s[1], s[2]
			}
			d[3] = 255
			if info.HasAlpha {
				d[3] = s[len(s)-1]
			}
		}
	}
	return nrgba
}

// EncodePNG encodes the buffer as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the buffer as a PNG file.
func (b *ImageBuf) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
