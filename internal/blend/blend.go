package blend

import (
	"image"

	"github.com/gogpu/dlist/effects"
)

// Func blends a premultiplied source pixel over a premultiplied backdrop.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

var funcs = [...]Func{
	effects.BlendNormal:     SourceOver,
	effects.BlendMultiply:   separable(multiply),
	effects.BlendScreen:     separable(screen),
	effects.BlendOverlay:    separable(overlay),
	effects.BlendDarken:     separable(darken),
	effects.BlendLighten:    separable(lighten),
	effects.BlendColorDodge: separable(colorDodge),
	effects.BlendColorBurn:  separable(colorBurn),
	effects.BlendHardLight:  separable(hardLight),
	effects.BlendSoftLight:  separable(softLight),
	effects.BlendDifference: separable(difference),
	effects.BlendExclusion:  separable(exclusion),
	effects.BlendHue:        nonSeparable(hue),
	effects.BlendSaturation: nonSeparable(saturation),
	effects.BlendColor:      nonSeparable(colorMix),
	effects.BlendLuminosity: nonSeparable(luminosity),
}

// For returns the blend function of mode. Unknown modes blend as normal.
func For(mode effects.BlendMode) Func {
	if int(mode) < len(funcs) {
		return funcs[mode]
	}
	return SourceOver
}

// SourceOver is the Porter-Duff source-over operator, the normal blend mode.
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 255 {
		return sr, sg, sb, sa
	}
	if sa == 0 {
		return dr, dg, db, da
	}
	inv := 255 - sa
	return addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
		addClamp(sa, mulDiv255(da, inv))
}

// Composite blends src onto dst with mode where their bounds overlap.
// Both images share one coordinate space.
func Composite(dst, src *image.RGBA, mode effects.BlendMode) {
	r := dst.Bounds().Intersect(src.Bounds())
	if r.Empty() {
		return
	}
	fn := For(mode)
	width := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		s := src.Pix[src.PixOffset(r.Min.X, y):][:width]
		d := dst.Pix[dst.PixOffset(r.Min.X, y):][:width]
		for i := 0; i < width; i += 4 {
			if s[i+3] == 0 {
				continue
			}
			d[i], d[i+1], d[i+2], d[i+3] = fn(s[i], s[i+1], s[i+2], s[i+3], d[i], d[i+1], d[i+2], d[i+3])
		}
	}
}
