package types

import (
	"fmt"
	"image/color"
	"strings"
)

// FontFamily selects one of the supported label fonts
type FontFamily string

// Supported font families
const (
	FamilyArial     FontFamily = "Arial"
	FamilyMonospace FontFamily = "Monospace"
)

// ParseFontFamily parses a font family name, case-insensitively
func ParseFontFamily(s string) (FontFamily, error) {
	switch strings.ToLower(s) {
	case "arial":
		return FamilyArial, nil
	case "monospace":
		return FamilyMonospace, nil
	}
	return "", fmt.Errorf("unknown font family: %q", s)
}

// Placement anchors the label box relative to the image bounds
type Placement string

// Supported placements
const (
	TopLeft     Placement = "top_left"
	TopRight    Placement = "top_right"
	BottomLeft  Placement = "bottom_left"
	BottomRight Placement = "bottom_right"
	Center      Placement = "center"
)

// ParsePlacement parses a placement name
func ParsePlacement(s string) (Placement, error) {
	switch Placement(strings.ToLower(s)) {
	case TopLeft, TopRight, BottomLeft, BottomRight, Center:
		return Placement(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unknown placement: %q", s)
}

// ColorScheme selects the text/box color pair
type ColorScheme string

// Supported color schemes
const (
	WhiteOnBlack ColorScheme = "white_on_black"
	BlackOnWhite ColorScheme = "black_on_white"
)

// ParseColorScheme parses a color scheme name
func ParseColorScheme(s string) (ColorScheme, error) {
	switch ColorScheme(strings.ToLower(s)) {
	case WhiteOnBlack, BlackOnWhite:
		return ColorScheme(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unknown color scheme: %q", s)
}

// Colors returns the text and box colors for the scheme, both fully opaque
func (cs ColorScheme) Colors() (text, box color.NRGBA) {
	if cs == WhiteOnBlack {
		return ParseHexColor("#FFFFFF"), ParseHexColor("#000000")
	}
	return ParseHexColor("#000000"), ParseHexColor("#FFFFFF")
}

// Options is the immutable style record for one labeling invocation
type Options struct {
	FontFamily   FontFamily
	FontSize     int
	Placement    Placement
	EdgeOffset   int
	ColorScheme  ColorScheme
	Padding      int
	CornerRadius int
}

// Option value ranges as declared in the node input schema
const (
	MinFontSize     = 6
	MaxFontSize     = 256
	MaxEdgeOffset   = 4096
	MaxPadding      = 256
	MaxCornerRadius = 128
)

// DefaultOptions returns the option defaults from the node input schema
func DefaultOptions() Options {
	return Options{
		FontFamily:   FamilyArial,
		FontSize:     30,
		Placement:    TopLeft,
		EdgeOffset:   30,
		ColorScheme:  BlackOnWhite,
		Padding:      15,
		CornerRadius: 15,
	}
}

// Clamped returns a copy with every numeric option forced into its schema
// range and every enum replaced by its default when unrecognized
func (o Options) Clamped() Options {
	if _, err := ParseFontFamily(string(o.FontFamily)); err != nil {
		o.FontFamily = FamilyArial
	}
	if _, err := ParsePlacement(string(o.Placement)); err != nil {
		o.Placement = TopLeft
	}
	if _, err := ParseColorScheme(string(o.ColorScheme)); err != nil {
		o.ColorScheme = BlackOnWhite
	}
	o.FontSize = clampInt(o.FontSize, MinFontSize, MaxFontSize)
	o.EdgeOffset = clampInt(o.EdgeOffset, 0, MaxEdgeOffset)
	o.Padding = clampInt(o.Padding, 0, MaxPadding)
	o.CornerRadius = clampInt(o.CornerRadius, 0, MaxCornerRadius)
	return o
}

// Validate checks every option against its schema range
func (o Options) Validate() error {
	if _, err := ParseFontFamily(string(o.FontFamily)); err != nil {
		return err
	}
	if _, err := ParsePlacement(string(o.Placement)); err != nil {
		return err
	}
	if _, err := ParseColorScheme(string(o.ColorScheme)); err != nil {
		return err
	}
	if o.FontSize < MinFontSize || o.FontSize > MaxFontSize {
		return fmt.Errorf("font_size must be between %d and %d", MinFontSize, MaxFontSize)
	}
	if o.EdgeOffset < 0 || o.EdgeOffset > MaxEdgeOffset {
		return fmt.Errorf("edge_offset must be between 0 and %d", MaxEdgeOffset)
	}
	if o.Padding < 0 || o.Padding > MaxPadding {
		return fmt.Errorf("padding must be between 0 and %d", MaxPadding)
	}
	if o.CornerRadius < 0 || o.CornerRadius > MaxCornerRadius {
		return fmt.Errorf("corner_radius must be between 0 and %d", MaxCornerRadius)
	}
	return nil
}

// ParseHexColor parses "#RGB" or "#RRGGBB" into an opaque NRGBA.
// Malformed input yields opaque white.
func ParseHexColor(s string) color.NRGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		r, okR := hexNibble(s[0])
		g, okG := hexNibble(s[1])
		b, okB := hexNibble(s[2])
		if okR && okG && okB {
			return color.NRGBA{r*16 + r, g*16 + g, b*16 + b, 255}
		}
	case 6:
		r, okR := hexByte(s[0:2])
		g, okG := hexByte(s[2:4])
		b, okB := hexByte(s[4:6])
		if okR && okG && okB {
			return color.NRGBA{r, g, b, 255}
		}
	}
	return color.NRGBA{255, 255, 255, 255}
}

// WithAlpha returns c with its alpha channel set from a fraction in [0,1]
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha*255 + 0.5)
	return c
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func hexByte(s string) (uint8, bool) {
	hi, okHi := hexNibble(s[0])
	lo, okLo := hexNibble(s[1])
	return hi*16 + lo, okHi && okLo
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
