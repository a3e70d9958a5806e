// Package frame converts between the host's float pixel grids and Go images.
//
// The hosting runtime hands images around as batches of H×W×3 float32 grids
// with channel values in [0,1]. Rendering happens on image.NRGBA, so every
// invocation converts in, draws, and converts back out.
package frame

import (
	"fmt"
	"image"
	"math"
)

// Channels per pixel. Frames are always RGB.
const Channels = 3

// Frame is a single image as a row-major H×W×3 float32 grid in [0,1]
type Frame struct {
	Width  int
	Height int
	Pix    []float32
}

// Batch is an ordered collection of frames processed independently
type Batch []Frame

// New allocates a zeroed frame of the given dimensions
func New(width, height int) Frame {
	return Frame{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height*Channels),
	}
}

// Validate checks that the pixel buffer matches the declared dimensions
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("invalid frame dimensions: %dx%d", f.Width, f.Height)
	}
	if want := f.Width * f.Height * Channels; len(f.Pix) != want {
		return fmt.Errorf("frame buffer size %d does not match %dx%dx%d", len(f.Pix), f.Height, f.Width, Channels)
	}
	return nil
}

// ToNRGBA converts the frame to an opaque NRGBA image. Values are clamped
// to [0,1] and scaled to 8-bit with round-half-up.
func (f Frame) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	si := 0
	for y := 0; y < f.Height; y++ {
		di := y * img.Stride
		for x := 0; x < f.Width; x++ {
			img.Pix[di+0] = quantize(f.Pix[si+0])
			img.Pix[di+1] = quantize(f.Pix[si+1])
			img.Pix[di+2] = quantize(f.Pix[si+2])
			img.Pix[di+3] = 255
			si += Channels
			di += 4
		}
	}
	return img
}

// FromImage converts any image to a frame, dropping alpha
func FromImage(img image.Image) Frame {
	b := img.Bounds()
	f := New(b.Dx(), b.Dy())
	if nrgba, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		di := 0
		for y := 0; y < f.Height; y++ {
			si := y * nrgba.Stride
			for x := 0; x < f.Width; x++ {
				f.Pix[di+0] = float32(nrgba.Pix[si+0]) / 255
				f.Pix[di+1] = float32(nrgba.Pix[si+1]) / 255
				f.Pix[di+2] = float32(nrgba.Pix[si+2]) / 255
				si += 4
				di += Channels
			}
		}
		return f
	}
	di := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			f.Pix[di+0] = float32(r) / 65535
			f.Pix[di+1] = float32(g) / 65535
			f.Pix[di+2] = float32(bl) / 65535
			di += Channels
		}
	}
	return f
}

// At returns the RGB triple at (x, y). No bounds checking.
func (f Frame) At(x, y int) (r, g, b float32) {
	i := (y*f.Width + x) * Channels
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// Fill sets every pixel of the frame to the given RGB triple
func (f Frame) Fill(r, g, b float32) {
	for i := 0; i < len(f.Pix); i += Channels {
		f.Pix[i] = r
		f.Pix[i+1] = g
		f.Pix[i+2] = b
	}
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}
