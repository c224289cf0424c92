package texmod

import (
	"errors"
	"fmt"
	"image/color"
)

// Color4 is a four-channel floating-point color.
//
// Channels are not restricted to [0, 1]. Interpolated vertex colors produced
// upstream may exceed one, and the shading path carries them through
// unclamped. Conversion to 8-bit storage (NRGBA, RGBA) is the only place
// where values are clamped.
type Color4 struct {
	R, G, B, A float32
}

// RGBA creates a color from its four channels.
func RGBA(r, g, b, a float32) Color4 {
	return Color4{R: r, G: g, B: b, A: a}
}

// Common colors
var (
	White       = Color4{1, 1, 1, 1}
	Black       = Color4{0, 0, 0, 1}
	Transparent = Color4{0, 0, 0, 0}
)

// Mul returns the component-wise product of c and o, alpha included.
func (c Color4) Mul(o Color4) Color4 {
	return Color4{
		R: c.R * o.R,
		G: c.G * o.G,
		B: c.B * o.B,
		A: c.A * o.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c Color4) Lerp(o Color4, t float32) Color4 {
	return Color4{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// NRGBA converts c to a non-premultiplied 8-bit color, clamping every
// channel to [0, 1].
func (c Color4) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unorm8(c.R),
		G: unorm8(c.G),
		B: unorm8(c.B),
		A: unorm8(c.A),
	}
}

// RGBA implements color.Color. The result is premultiplied and clamped.
func (c Color4) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts a standard color.Color to a straight-alpha Color4.
func FromColor(c color.Color) Color4 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color4{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("texmod: invalid hex color")

// ParseHex parses a color in "RGB", "RGBA", "RRGGBB" or "RRGGBBAA" form,
// with an optional leading '#'. Alpha defaults to one.
func ParseHex(hex string) (Color4, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	digits := make([]uint8, len(s))
	for i := range len(s) {
		d, ok := hexDigit(s[i])
		if !ok {
			return Color4{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		digits[i] = d
	}

	ch := []uint8{0, 0, 0, 255}
	switch len(digits) {
	case 3, 4:
		for i, d := range digits {
			ch[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(digits); i += 2 {
			ch[i/2] = digits[i]<<4 | digits[i+1]
		}
	default:
		return Color4{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return FromColor(color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}), nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// unorm8 encodes x as an 8-bit unsigned normalized value.
func unorm8(x float32) uint8 {
	if !(x > 0) { // NaN included
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255 + 0.5)
}

// Coord2 is a two-component texture coordinate.
type Coord2 struct {
	U, V float32
}

// UV creates a texture coordinate.
func UV(u, v float32) Coord2 {
	return Coord2{U: u, V: v}
}
