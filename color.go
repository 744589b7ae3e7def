package dlist

import (
	"fmt"
	"image/color"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
// Color implements color.Color.
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
)

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color from its components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// alphaEpsilon is the tolerance under which a color counts as transparent.
const alphaEpsilon = 1e-6

// IsTransparent reports whether the alpha is approximately zero.
func (c Color) IsTransparent() bool {
	return c.A < alphaEpsilon && c.A > -alphaEpsilon
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit values.
func (c Color) RGBA() (r, g, b, a uint32) {
	a16 := clampUnit(c.A) * 0xffff
	return uint32(clampUnit(c.R) * a16), uint32(clampUnit(c.G) * a16),
		uint32(clampUnit(c.B) * a16), uint32(a16)
}

// NRGBA converts the color to 8-bit straight alpha.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clampUnit(c.R)*255 + 0.5),
		G: uint8(clampUnit(c.G)*255 + 0.5),
		B: uint8(clampUnit(c.B)*255 + 0.5),
		A: uint8(clampUnit(c.A)*255 + 0.5),
	}
}

// ColorFrom converts any color.Color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// ParseHex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var v [4]uint32
	v[3] = 255
	switch len(s) {
	case 3, 4:
		for i := range len(s) {
			d, ok := hexDigit(s[i])
			if !ok {
				return Color{}, fmt.Errorf("dlist: invalid hex color %q", s)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("dlist: invalid hex color %q", s)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color{}, fmt.Errorf("dlist: invalid hex color length %q", s)
	}
	return Color{
		R: float32(v[0]) / 255,
		G: float32(v[1]) / 255,
		B: float32(v[2]) / 255,
		A: float32(v[3]) / 255,
	}, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

func clampUnit(v float32) float32 {
	return min(max(v, 0), 1)
}
