package filter

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/gogpu/dlist/effects"
)

// ColorMatrix is a 4x5 color transformation matrix in row-major order:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column is a bias in the [0, 255] range. Coefficients apply to
// straight-alpha colors.
type ColorMatrix [20]float32

// Identity passes colors through unchanged.
var Identity = ColorMatrix{
	1, 0, 0, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 0, 1, 0,
}

// Brightness scales the color channels. 0 is black, 1 is unchanged.
func Brightness(amount float32) ColorMatrix {
	a := max(amount, 0)
	return ColorMatrix{
		a, 0, 0, 0, 0,
		0, a, 0, 0, 0,
		0, 0, a, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Contrast scales the channels around mid gray. 0 is gray, 1 is unchanged.
func Contrast(amount float32) ColorMatrix {
	a := max(amount, 0)
	offset := 127.5 * (1 - a)
	return ColorMatrix{
		a, 0, 0, 0, offset,
		0, a, 0, 0, offset,
		0, 0, a, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Grayscale converts toward luminance. 1 is fully gray.
func Grayscale(amount float32) ColorMatrix {
	s := 1 - clamp01(amount)
	return ColorMatrix{
		0.2126 + 0.7874*s, 0.7152 - 0.7152*s, 0.0722 - 0.0722*s, 0, 0,
		0.2126 - 0.2126*s, 0.7152 + 0.2848*s, 0.0722 - 0.0722*s, 0, 0,
		0.2126 - 0.2126*s, 0.7152 - 0.7152*s, 0.0722 + 0.9278*s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Saturate scales saturation. 0 is gray, 1 is unchanged, above 1 oversaturates.
func Saturate(amount float32) ColorMatrix {
	s := max(amount, 0)
	return ColorMatrix{
		0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Sepia tones toward sepia. 1 is full sepia.
func Sepia(amount float32) ColorMatrix {
	s := 1 - clamp01(amount)
	return ColorMatrix{
		0.393 + 0.607*s, 0.769 - 0.769*s, 0.189 - 0.189*s, 0, 0,
		0.349 - 0.349*s, 0.686 + 0.314*s, 0.168 - 0.168*s, 0, 0,
		0.272 - 0.272*s, 0.534 - 0.534*s, 0.131 + 0.869*s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// HueRotate rotates hue by the given angle in degrees.
func HueRotate(degrees float32) ColorMatrix {
	sin, cos := math32.Sincos(degrees * math32.Pi / 180)
	return ColorMatrix{
		0.213 + cos*0.787 - sin*0.213, 0.715 - cos*0.715 - sin*0.715, 0.072 - cos*0.072 + sin*0.928, 0, 0,
		0.213 - cos*0.213 + sin*0.143, 0.715 + cos*0.285 + sin*0.140, 0.072 - cos*0.072 - sin*0.283, 0, 0,
		0.213 - cos*0.213 - sin*0.787, 0.715 - cos*0.715 + sin*0.715, 0.072 + cos*0.928 + sin*0.072, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Invert inverts the color channels. 1 is fully inverted.
func Invert(amount float32) ColorMatrix {
	a := clamp01(amount)
	k := 1 - 2*a
	return ColorMatrix{
		k, 0, 0, 0, 255 * a,
		0, k, 0, 0, 255 * a,
		0, 0, k, 0, 255 * a,
		0, 0, 0, 1, 0,
	}
}

// Opacity multiplies alpha. 0 is transparent, 1 is unchanged.
func Opacity(amount float32) ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, clamp01(amount), 0,
	}
}

// ForFilter returns the matrix of a filter function.
// It reports false for blur, which is not a color operation.
func ForFilter(f effects.Filter) (ColorMatrix, bool) {
	switch f.Kind {
	case effects.FilterBrightness:
		return Brightness(f.Amount), true
	case effects.FilterContrast:
		return Contrast(f.Amount), true
	case effects.FilterGrayscale:
		return Grayscale(f.Amount), true
	case effects.FilterHueRotate:
		return HueRotate(f.Amount), true
	case effects.FilterInvert:
		return Invert(f.Amount), true
	case effects.FilterOpacity:
		return Opacity(f.Amount), true
	case effects.FilterSaturate:
		return Saturate(f.Amount), true
	case effects.FilterSepia:
		return Sepia(f.Amount), true
	}
	return Identity, false
}

// Multiply returns the matrix applying m first, then next.
func (m ColorMatrix) Multiply(next ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for row := range 4 {
		for col := range 4 {
			var sum float32
			for k := range 4 {
				sum += next[row*5+k] * m[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = next[row*5+0]*m[4] + next[row*5+1]*m[9] +
			next[row*5+2]*m[14] + next[row*5+3]*m[19] + next[row*5+4]
	}
	return r
}

// Apply transforms every pixel of img inside its bounds in place.
func (m ColorMatrix) Apply(img *image.RGBA) {
	if m == Identity {
		return
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			m.applyPixel(row[i : i+4 : i+4])
		}
	}
}

func (m *ColorMatrix) applyPixel(p []uint8) {
	pr, pg, pb, a := float32(p[0]), float32(p[1]), float32(p[2]), float32(p[3])

	// Un-premultiply; the coefficients assume straight alpha.
	var r, g, b float32
	if a > 0 {
		r = pr * 255 / a
		g = pg * 255 / a
		b = pb * 255 / a
	}

	nr := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
	ng := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
	nb := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
	na := clamp255(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])

	f := na / 255
	p[0] = uint8(clamp255(nr)*f + 0.5)
	p[1] = uint8(clamp255(ng)*f + 0.5)
	p[2] = uint8(clamp255(nb)*f + 0.5)
	p[3] = uint8(na + 0.5)
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

func clamp255(v float32) float32 {
	return min(max(v, 0), 255)
}
