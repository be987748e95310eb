package image

import (
	"errors"
	"image"
	"testing"
)

func TestNewImageBuf(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		channels int
		wantErr  error
	}{
		{"valid gray", 100, 100, 1, nil},
		{"valid RGBA", 50, 50, 4, nil},
		{"1x1 minimum", 1, 1, 1, nil},
		{"zero width", 0, 100, 1, ErrInvalidDimensions},
		{"zero height", 100, 0, 1, ErrInvalidDimensions},
		{"negative width", -1, 100, 1, ErrInvalidDimensions},
		{"zero channels", 10, 10, 0, ErrInvalidChannels},
		{"five channels", 10, 10, 5, ErrInvalidChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewImageBuf(tt.width, tt.height, tt.channels)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewImageBuf() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width {
				t.Errorf("Width() = %d, want %d", buf.Width(), tt.width)
			}
			if buf.Height() != tt.height {
				t.Errorf("Height() = %d, want %d", buf.Height(), tt.height)
			}
			if buf.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", buf.Channels(), tt.channels)
			}
			if buf.Stride() != tt.width*tt.channels {
				t.Errorf("Stride() = %d, want %d", buf.Stride(), tt.width*tt.channels)
			}
			if len(buf.Data()) != tt.width*tt.height*tt.channels {
				t.Errorf("len(Data()) = %d, want %d", len(buf.Data()), tt.width*tt.height*tt.channels)
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	tests := []struct {
		name    string
		dataLen int
		stride  int
		wantErr error
	}{
		{"exact size", 10 * 10 * 2, 0, nil},
		{"padded stride", 9*32 + 20, 32, nil},
		{"stride too small", 200, 10, ErrInvalidStride},
		{"data too small", 150, 0, ErrDataTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, tt.dataLen)
			buf, err := FromRaw(data, 10, 10, 2, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FromRaw() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			// FromRaw must not copy.
			buf.SetPixel(3, 4, 0xAB)
			if data[buf.PixelOffset(3, 4)] != 0xAB {
				t.Error("FromRaw() copied the data, want shared memory")
			}
		})
	}
}

func TestPixelAddressing(t *testing.T) {
	data := make([]byte, 4*16)
	buf, err := FromRaw(data, 3, 4, 3, 16)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}

	if got := buf.PixelOffset(2, 3); got != 3*16+2*3 {
		t.Errorf("PixelOffset(2, 3) = %d, want %d", got, 3*16+2*3)
	}

	buf.SetPixel(2, 3, 200)
	if data[54] != 200 {
		t.Errorf("data[54] = %d, want 200", data[54])
	}
	if got := buf.Pixel(2, 3); got != 200 {
		t.Errorf("Pixel(2, 3) = %d, want 200", got)
	}
	// Only the first channel is written.
	if data[55] != 0 || data[56] != 0 {
		t.Errorf("SetPixel wrote beyond the first channel: %v", data[54:57])
	}
}

func TestFillLeavesPadding(t *testing.T) {
	data := make([]byte, 2*8)
	buf, err := FromRaw(data, 2, 2, 2, 8)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	buf.Fill(7)

	for y := range 2 {
		for i, v := range data[y*8 : y*8+8] {
			want := byte(0)
			if i < 4 {
				want = 7
			}
			if v != want {
				t.Errorf("row %d byte %d = %d, want %d", y, i, v, want)
			}
		}
	}
}

func TestClone(t *testing.T) {
	data := make([]byte, 3*10)
	src, _ := FromRaw(data, 2, 3, 1, 10)
	src.SetPixel(1, 2, 9)

	c := src.Clone()
	if c.Stride() != 2 {
		t.Errorf("Clone().Stride() = %d, want tightly packed 2", c.Stride())
	}
	if c.Pixel(1, 2) != 9 {
		t.Errorf("Clone().Pixel(1, 2) = %d, want 9", c.Pixel(1, 2))
	}
	c.SetPixel(1, 2, 1)
	if src.Pixel(1, 2) != 9 {
		t.Error("Clone() shares memory with the source")
	}
}

func TestContainsAndBounds(t *testing.T) {
	buf, _ := NewImageBuf(4, 3, 1)
	if buf.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v", buf.Bounds())
	}
	for _, p := range []image.Point{{0, 0}, {3, 2}} {
		if !buf.Contains(p.X, p.Y) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range []image.Point{{-1, 0}, {4, 0}, {0, 3}, {0, -1}} {
		if buf.Contains(p.X, p.Y) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}
