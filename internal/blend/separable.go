package blend

import "github.com/chewxy/math32"

// separable lifts a per-channel mixing function B(cb, cs) on straight-alpha
// values in [0, 1] to a premultiplied pixel Func.
func separable(b func(cb, cs float32) float32) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}
		sur, sug, sub := unpremultiply(sr, sg, sb, sa)
		dur, dug, dub := unpremultiply(dr, dg, db, da)
		as, ab := float32(sa)/255, float32(da)/255

		return mix(sr, dr, as, ab, b(dur, sur)),
			mix(sg, dg, as, ab, b(dug, sug)),
			mix(sb, db, as, ab, b(dub, sub)),
			addClamp(sa, mulDiv255(da, 255-sa))
	}
}

func multiply(cb, cs float32) float32 { return cb * cs }

func screen(cb, cs float32) float32 { return cb + cs - cb*cs }

func overlay(cb, cs float32) float32 { return hardLight(cs, cb) }

func darken(cb, cs float32) float32 { return min(cb, cs) }

func lighten(cb, cs float32) float32 { return max(cb, cs) }

func colorDodge(cb, cs float32) float32 {
	switch {
	case cb == 0:
		return 0
	case cs >= 1:
		return 1
	}
	return min(1, cb/(1-cs))
}

func colorBurn(cb, cs float32) float32 {
	switch {
	case cb >= 1:
		return 1
	case cs <= 0:
		return 0
	}
	return 1 - min(1, (1-cb)/cs)
}

func hardLight(cb, cs float32) float32 {
	if cs <= 0.5 {
		return multiply(cb, 2*cs)
	}
	return screen(cb, 2*cs-1)
}

func softLight(cb, cs float32) float32 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float32
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math32.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}

func difference(cb, cs float32) float32 { return math32.Abs(cb - cs) }

func exclusion(cb, cs float32) float32 { return cb + cs - 2*cb*cs }
