package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func grayImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = byte(40 * i)
	}
	return img
}

func TestDecodeBytesNativeChannels(t *testing.T) {
	translucent := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	translucent.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

	opaque := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range opaque.Pix {
		opaque.Pix[i] = 255
	}

	tests := []struct {
		name string
		img  image.Image
		want int
	}{
		{"gray", grayImage(), 1},
		{"opaque color", opaque, 3},
		{"translucent color", translucent, 4},
	}

	d := NewStdDecoder(NewPool(0))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := d.DecodeBytes(encodePNG(t, tt.img), 0)
			if err != nil {
				t.Fatalf("DecodeBytes() error = %v", err)
			}
			defer d.Free(dec)

			if dec.Channels != tt.want {
				t.Errorf("Channels = %d, want %d", dec.Channels, tt.want)
			}
			if dec.Layout != tt.want {
				t.Errorf("Layout = %d, want %d", dec.Layout, tt.want)
			}
			b := tt.img.Bounds()
			if len(dec.Pix) != b.Dx()*b.Dy()*tt.want {
				t.Errorf("len(Pix) = %d, want %d", len(dec.Pix), b.Dx()*b.Dy()*tt.want)
			}
		})
	}
}

func TestDecodeBytesGrayValues(t *testing.T) {
	src := grayImage()
	d := NewStdDecoder(NewPool(0))

	dec, err := d.DecodeBytes(encodePNG(t, src), 0)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if !bytes.Equal(dec.Pix, src.Pix) {
		t.Errorf("Pix = %v, want %v", dec.Pix, src.Pix)
	}
}

func TestDecodeBytesRequestedChannels(t *testing.T) {
	d := NewStdDecoder(NewPool(0))

	dec, err := d.DecodeBytes(encodePNG(t, grayImage()), 4)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if dec.Channels != 1 {
		t.Errorf("Channels = %d, want native 1", dec.Channels)
	}
	if dec.Layout != 4 {
		t.Errorf("Layout = %d, want requested 4", dec.Layout)
	}
	// Pixel (1,0) has gray 40 and must expand to opaque RGBA.
	want := []byte{40, 40, 40, 255}
	if got := dec.Pix[4:8]; !bytes.Equal(got, want) {
		t.Errorf("pixel 1 = %v, want %v", got, want)
	}
}

func TestDecodeBytesToGrayAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 77})
	d := NewStdDecoder(NewPool(0))

	dec, err := d.DecodeBytes(encodePNG(t, img), 2)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if dec.Pix[0] != 100 || dec.Pix[1] != 77 {
		t.Errorf("Pix = %v, want [100 77]", dec.Pix)
	}
}

func TestDecodeBytesErrors(t *testing.T) {
	d := NewStdDecoder(NewPool(0))

	tests := []struct {
		name     string
		data     []byte
		channels int
		wantErr  error
	}{
		{"empty", nil, 0, ErrEmptyData},
		{"corrupt", []byte("definitely not an image"), 0, ErrDecode},
		{"truncated png", encodePNG(t, grayImage())[:20], 0, ErrDecode},
		{"bad channels", encodePNG(t, grayImage()), 7, ErrInvalidChannels},
		{"bad channels wraps decode", encodePNG(t, grayImage()), 7, ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := d.DecodeBytes(tt.data, tt.channels)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeBytes() error = %v, want %v", err, tt.wantErr)
			}
			if dec != nil {
				t.Errorf("DecodeBytes() = %+v, want nil on failure", dec)
			}
		})
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gray.bmp")

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, grayImage()); err != nil {
		t.Fatalf("bmp.Encode() error = %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	d := NewStdDecoder(NewPool(0))
	dec, err := d.DecodeFile(path, 1)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if dec.Width != 3 || dec.Height != 2 {
		t.Errorf("size = %dx%d, want 3x2", dec.Width, dec.Height)
	}
	if !bytes.Equal(dec.Pix, grayImage().Pix) {
		t.Errorf("Pix = %v, want %v", dec.Pix, grayImage().Pix)
	}

	if _, err := d.DecodeFile(filepath.Join(dir, "missing.png"), 0); !errors.Is(err, ErrDecode) {
		t.Errorf("DecodeFile(missing) error = %v, want ErrDecode", err)
	}
}

func TestFreeReturnsToPool(t *testing.T) {
	pool := NewPool(0)
	d := NewStdDecoder(pool)

	dec, err := d.DecodeBytes(encodePNG(t, grayImage()), 0)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}

	d.Free(dec)
	if dec.Pix != nil {
		t.Error("Free() did not nil Pix")
	}
	if pool.Len() != 1 {
		t.Errorf("pool.Len() = %d, want 1", pool.Len())
	}

	// Second free is a no-op.
	d.Free(dec)
	d.Free(nil)
	if pool.Len() != 1 {
		t.Errorf("pool.Len() after double free = %d, want 1", pool.Len())
	}
}

func TestToStdImageRoundTrip(t *testing.T) {
	tests := []struct {
		channels int
		sample   []byte
		want     color.NRGBA
	}{
		{2, []byte{50, 60}, color.NRGBA{R: 50, G: 50, B: 50, A: 60}},
		{3, []byte{1, 2, 3}, color.NRGBA{R: 1, G: 2, B: 3, A: 255}},
		{4, []byte{4, 5, 6, 7}, color.NRGBA{R: 4, G: 5, B: 6, A: 7}},
	}

	for _, tt := range tests {
		buf, _ := NewImageBuf(1, 1, tt.channels)
		copy(buf.PixelBytes(0, 0), tt.sample)

		img, ok := buf.ToStdImage().(*image.NRGBA)
		if !ok {
			t.Fatalf("channels=%d: ToStdImage() type %T, want *image.NRGBA", tt.channels, buf.ToStdImage())
		}
		if got := img.NRGBAAt(0, 0); got != tt.want {
			t.Errorf("channels=%d: got %v, want %v", tt.channels, got, tt.want)
		}
	}

	// Row padding of a strided gray+alpha buffer is skipped.
	padded, err := FromRaw([]byte{10, 20, 30, 40, 0xee, 50, 60, 70, 80, 0xee}, 2, 2, 2, 5)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	img := padded.ToStdImage().(*image.NRGBA)
	if got, want := img.NRGBAAt(1, 1), (color.NRGBA{R: 70, G: 70, B: 70, A: 80}); got != want {
		t.Errorf("padded (1, 1) = %v, want %v", got, want)
	}

	gray, _ := NewImageBuf(2, 1, 1)
	gray.SetPixel(1, 0, 99)
	if g, ok := gray.ToStdImage().(*image.Gray); !ok || g.GrayAt(1, 0).Y != 99 {
		t.Errorf("gray ToStdImage() = %v", gray.ToStdImage())
	}
}

func TestEncodePNG(t *testing.T) {
	buf, _ := NewImageBuf(4, 4, 1)
	buf.Fill(128)

	var out bytes.Buffer
	if err := buf.EncodePNG(&out); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	d := NewStdDecoder(NewPool(0))
	dec, err := d.DecodeBytes(out.Bytes(), 0)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	for i, v := range dec.Pix {
		if v != 128 {
			t.Fatalf("Pix[%d] = %d, want 128", i, v)
		}
	}
}
