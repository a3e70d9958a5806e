// Package label renders a text label over images: a semi-transparent rounded
// box behind fully opaque text, anchored at a configurable position.
package label

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/menta2k/image-labeler/pkg/fontres"
	"github.com/menta2k/image-labeler/pkg/frame"
	"github.com/menta2k/image-labeler/pkg/types"
)

// The box is always composited at exactly half opacity
const boxAlpha = 0.5

// Renderer draws labels onto images
type Renderer struct {
	resolver fontres.Resolver
}

// New creates a Renderer with the default platform font resolver
func New() *Renderer {
	return &Renderer{resolver: fontres.New()}
}

// NewWithResolver creates a Renderer with a custom font resolver
func NewWithResolver(resolver fontres.Resolver) *Renderer {
	return &Renderer{resolver: resolver}
}

// Metrics describes the tight ink bounding box of a measured string,
// relative to the drawing dot: Left/Top are the offsets of the ink box
// origin (Top is negative for ink above the baseline).
type Metrics struct {
	Width  int
	Height int
	Left   int
	Top    int
}

// Geometry is the resolved placement of a label box on an image
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
	Radius int
}

// MeasureText computes the tight ink bounding box of text in the given face.
// When the ink box is empty the width falls back to the advance and the
// height to the nominal font size.
func MeasureText(face font.Face, text string, fontSize int) Metrics {
	bounds, advance := font.BoundString(face, text)
	l := bounds.Min.X.Floor()
	t := bounds.Min.Y.Floor()
	w := bounds.Max.X.Ceil() - l
	h := bounds.Max.Y.Ceil() - t
	if w <= 0 || h <= 0 {
		w = advance.Ceil()
		h = fontSize
		l = 0
		t = -h
	}
	return Metrics{Width: w, Height: h, Left: l, Top: t}
}

// PlaceBox positions a box of the given size on an imgW×imgH image according
// to the placement and edge offset
func PlaceBox(imgW, imgH, boxW, boxH int, placement types.Placement, edge int) (x, y int) {
	switch placement {
	case types.TopLeft:
		return edge, edge
	case types.TopRight:
		return imgW - boxW - edge, edge
	case types.BottomLeft:
		return edge, imgH - boxH - edge
	case types.BottomRight:
		return imgW - boxW - edge, imgH - boxH - edge
	default: // center
		return (imgW - boxW) / 2, (imgH - boxH) / 2
	}
}

// BoxGeometry derives the full label box geometry for measured text on an
// image. The corner radius is clamped to half the box's smaller dimension.
func BoxGeometry(imgW, imgH int, m Metrics, opts types.Options) Geometry {
	boxW := m.Width + 2*opts.Padding
	boxH := m.Height + 2*opts.Padding
	x, y := PlaceBox(imgW, imgH, boxW, boxH, opts.Placement, opts.EdgeOffset)

	radius := opts.CornerRadius
	if maxR := minInt(boxW, boxH) / 2; radius > maxR {
		radius = maxR
	}
	if radius < 0 {
		radius = 0
	}
	return Geometry{X: x, Y: y, Width: boxW, Height: boxH, Radius: radius}
}

// Annotate draws the label on a copy of img and returns the result.
// The input image is never modified. Font resolution cannot fail; a missing
// font degrades to the embedded fallback.
func (r *Renderer) Annotate(img image.Image, text string, opts types.Options) *image.NRGBA {
	opts = opts.Clamped()
	face := r.resolver.Resolve(opts.FontFamily, opts.FontSize)
	textCol, boxCol := opts.ColorScheme.Colors()

	base := imaging.Clone(img)
	w, h := base.Bounds().Dx(), base.Bounds().Dy()

	m := MeasureText(face, text, opts.FontSize)
	geo := BoxGeometry(w, h, m, opts)

	// Box at 50% alpha on a transparent overlay, composited in one pass so
	// its opacity is exact regardless of the pixels beneath.
	overlay := image.NewNRGBA(base.Bounds())
	fillRoundedRect(overlay, geo, types.WithAlpha(boxCol, boxAlpha))
	draw.Draw(base, base.Bounds(), overlay, image.Point{}, draw.Over)

	// Text fully opaque, ink box centered in the label box
	cx := float64(geo.X) + float64(geo.Width)/2
	cy := float64(geo.Y) + float64(geo.Height)/2
	dotX := int(cx - float64(m.Width)/2 - float64(m.Left))
	dotY := int(cy - float64(m.Height)/2 - float64(m.Top))
	drawer := font.Drawer{
		Dst:  base,
		Src:  image.NewUniform(textCol),
		Face: face,
		Dot:  fixed.P(dotX, dotY),
	}
	drawer.DrawString(text)

	return base
}

// AnnotateBatch labels every frame of a batch, preserving order. Each frame
// is converted to an image, annotated, and converted back. Frames are
// independent; no state is shared across them.
func (r *Renderer) AnnotateBatch(batch frame.Batch, text string, opts types.Options) frame.Batch {
	out := make(frame.Batch, 0, len(batch))
	for _, f := range batch {
		labeled := r.Annotate(f.ToNRGBA(), text, opts)
		out = append(out, frame.FromImage(labeled))
	}
	return out
}

// fillRoundedRect fills the geometry's rectangle with c, rounding the four
// corners to geo.Radius. Pixels are written directly: on a transparent
// overlay this is equivalent to drawing the shape at the color's own alpha.
func fillRoundedRect(dst *image.NRGBA, geo Geometry, c color.NRGBA) {
	bounds := dst.Bounds()
	for row := 0; row < geo.Height; row++ {
		inset := cornerInset(row, geo.Height, geo.Radius)
		y := geo.Y + row
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		x0 := maxInt(geo.X+inset, bounds.Min.X)
		x1 := minInt(geo.X+geo.Width-inset, bounds.Max.X)
		i := dst.PixOffset(x0, y)
		for x := x0; x < x1; x++ {
			dst.Pix[i+0] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			dst.Pix[i+3] = c.A
			i += 4
		}
	}
}

// cornerInset returns how far a row's span is narrowed so the box corners
// follow a quarter circle of the given radius
func cornerInset(row, height, radius int) int {
	if radius <= 0 {
		return 0
	}
	var d int
	switch {
	case row < radius:
		d = radius - row
	case row >= height-radius:
		d = row - (height - radius) + 1
	default:
		return 0
	}
	dy := float64(d) - 0.5
	if dy <= 0 {
		return 0
	}
	r := float64(radius)
	return radius - int(math.Sqrt(r*r-dy*dy)+0.5)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
