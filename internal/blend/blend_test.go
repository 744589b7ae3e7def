package blend

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/dlist/effects"
)

type px [4]byte

func apply(mode effects.BlendMode, s, d px) px {
	r, g, b, a := For(mode)(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
	return px{r, g, b, a}
}

func nearPx(a, b px) bool {
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < -1 || d > 1 {
			return false
		}
	}
	return true
}

func TestBlendOpaque(t *testing.T) {
	red := px{255, 0, 0, 255}
	gray := px{128, 128, 128, 255}
	white := px{255, 255, 255, 255}
	black := px{0, 0, 0, 255}

	tests := []struct {
		name string
		mode effects.BlendMode
		s, d px
		want px
	}{
		{"normal", effects.BlendNormal, red, gray, red},
		{"multiply", effects.BlendMultiply, red, gray, px{128, 0, 0, 255}},
		{"multiply white", effects.BlendMultiply, white, gray, gray},
		{"screen", effects.BlendScreen, red, gray, px{255, 128, 128, 255}},
		{"screen black", effects.BlendScreen, black, gray, gray},
		{"darken", effects.BlendDarken, red, gray, px{128, 0, 0, 255}},
		{"lighten", effects.BlendLighten, red, gray, px{255, 128, 128, 255}},
		{"difference", effects.BlendDifference, white, gray, px{127, 127, 127, 255}},
		{"difference self", effects.BlendDifference, red, red, black},
		{"exclusion black", effects.BlendExclusion, black, gray, gray},
		{"overlay dark backdrop", effects.BlendOverlay, white, black, black},
		{"overlay light backdrop", effects.BlendOverlay, black, white, white},
		{"hard light", effects.BlendHardLight, black, gray, black},
		{"soft light black backdrop", effects.BlendSoftLight, gray, black, black},
		{"color dodge white", effects.BlendColorDodge, white, gray, white},
		{"color dodge black backdrop", effects.BlendColorDodge, white, black, black},
		{"color burn black", effects.BlendColorBurn, black, gray, black},
		{"color burn white backdrop", effects.BlendColorBurn, black, white, white},
		{"luminosity gray source", effects.BlendLuminosity, gray, white, gray},
		{"color keeps backdrop luma", effects.BlendColor, white, gray, gray},
		{"hue on gray", effects.BlendHue, red, gray, gray},
		{"saturation gray source", effects.BlendSaturation, gray, red, px{77, 77, 77, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apply(tt.mode, tt.s, tt.d); !nearPx(got, tt.want) {
				t.Errorf("%s(%v, %v) = %v, want %v", tt.mode, tt.s, tt.d, got, tt.want)
			}
		})
	}
}

func TestBlendTransparent(t *testing.T) {
	d := px{10, 20, 30, 255}
	s := px{200, 100, 50, 255}
	for mode := effects.BlendNormal; mode <= effects.BlendLuminosity; mode++ {
		t.Run(mode.String(), func(t *testing.T) {
			if got := apply(mode, px{}, d); got != d {
				t.Errorf("transparent source = %v, want backdrop %v", got, d)
			}
			if got := apply(mode, s, px{}); got != s {
				t.Errorf("transparent backdrop = %v, want source %v", got, s)
			}
		})
	}
}

func TestBlendHalfAlpha(t *testing.T) {
	// A half transparent source over an opaque backdrop mixes toward it.
	got := apply(effects.BlendNormal, px{128, 0, 0, 128}, px{0, 0, 255, 255})
	if !nearPx(got, px{128, 0, 127, 255}) {
		t.Errorf("source-over = %v", got)
	}
	got = apply(effects.BlendMultiply, px{128, 0, 0, 128}, px{255, 255, 255, 255})
	if !nearPx(got, px{255, 127, 127, 255}) {
		t.Errorf("multiply over white = %v", got)
	}
}

func TestForUnknownMode(t *testing.T) {
	got := apply(effects.BlendMode(200), px{255, 0, 0, 255}, px{0, 0, 255, 255})
	if got != (px{255, 0, 0, 255}) {
		t.Errorf("unknown mode = %v, want source-over", got)
	}
}

func TestComposite(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range dst.Pix {
		dst.Pix[i] = 255
	}
	src := image.NewRGBA(image.Rect(2, 2, 6, 6))
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			src.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
		}
	}

	Composite(dst, src, effects.BlendMultiply)

	if got := dst.RGBAAt(3, 3); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("overlap = %v, want red", got)
	}
	if got := dst.RGBAAt(1, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("outside = %v, want white", got)
	}
}
