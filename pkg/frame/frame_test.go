package frame

import (
	"image"
	"image/color"
	"testing"
)

func TestNew(t *testing.T) {
	f := New(10, 5)
	if f.Width != 10 || f.Height != 5 {
		t.Errorf("dimensions = %dx%d, want 10x5", f.Width, f.Height)
	}
	if len(f.Pix) != 10*5*Channels {
		t.Errorf("buffer length = %d, want %d", len(f.Pix), 10*5*Channels)
	}
	if err := f.Validate(); err != nil {
		t.Errorf("new frame invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
	}{
		{"zero width", Frame{Width: 0, Height: 5, Pix: []float32{}}},
		{"negative height", Frame{Width: 5, Height: -1, Pix: []float32{}}},
		{"short buffer", Frame{Width: 4, Height: 4, Pix: make([]float32, 10)}},
		{"long buffer", Frame{Width: 2, Height: 2, Pix: make([]float32, 100)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.frame.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestToNRGBAQuantization(t *testing.T) {
	f := New(3, 1)
	// In-range, above-range and below-range values
	copy(f.Pix, []float32{
		0.5, 0.5, 0.5,
		1.5, 2.0, 10,
		-0.5, -1, 0,
	})

	img := f.ToNRGBA()

	mid := img.NRGBAAt(0, 0)
	if mid.R != 128 || mid.G != 128 || mid.B != 128 {
		t.Errorf("0.5 quantized to %v, want 128", mid)
	}
	if mid.A != 255 {
		t.Errorf("alpha = %d, want opaque", mid.A)
	}

	if over := img.NRGBAAt(1, 0); over.R != 255 || over.G != 255 || over.B != 255 {
		t.Errorf("values above 1 not clamped: %v", over)
	}
	if under := img.NRGBAAt(2, 0); under.R != 0 || under.G != 0 || under.B != 0 {
		t.Errorf("values below 0 not clamped: %v", under)
	}
}

func TestRoundTrip(t *testing.T) {
	f := New(4, 3)
	for i := range f.Pix {
		f.Pix[i] = float32(i) / float32(len(f.Pix))
	}

	back := FromImage(f.ToNRGBA())
	if back.Width != f.Width || back.Height != f.Height {
		t.Fatalf("round trip dimensions = %dx%d, want %dx%d",
			back.Width, back.Height, f.Width, f.Height)
	}

	// 8-bit quantization bounds the round-trip error by half a step
	for i := range f.Pix {
		diff := float64(back.Pix[i] - f.Pix[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > 1.0/255/2+1e-6 {
			t.Errorf("pix[%d] round trip error %v", i, diff)
		}
	}
}

func TestFromImageGeneric(t *testing.T) {
	// Non-NRGBA images go through the generic color path
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 1, color.RGBA{0, 0, 255, 255})

	f := FromImage(img)
	r, g, b := f.At(0, 0)
	if r < 0.99 || g > 0.01 || b > 0.01 {
		t.Errorf("pixel (0,0) = (%v,%v,%v), want red", r, g, b)
	}
	r, _, b = f.At(1, 1)
	if r > 0.01 || b < 0.99 {
		t.Errorf("pixel (1,1) = (%v,_,%v), want blue", r, b)
	}
}

func TestFill(t *testing.T) {
	f := New(5, 5)
	f.Fill(0.25, 0.5, 0.75)

	r, g, b := f.At(4, 4)
	if r != 0.25 || g != 0.5 || b != 0.75 {
		t.Errorf("filled pixel = (%v,%v,%v), want (0.25,0.5,0.75)", r, g, b)
	}
}
