package blend

// rgb is a straight-alpha color with channels in [0, 1].
type rgb [3]float32

// nonSeparable lifts a mixing function B(Cb, Cs) on whole colors to a
// premultiplied pixel Func.
func nonSeparable(b func(cb, cs rgb) rgb) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}
		var cs, cb rgb
		cs[0], cs[1], cs[2] = unpremultiply(sr, sg, sb, sa)
		cb[0], cb[1], cb[2] = unpremultiply(dr, dg, db, da)
		as, ab := float32(sa)/255, float32(da)/255

		m := b(cb, cs)
		return mix(sr, dr, as, ab, m[0]),
			mix(sg, dg, as, ab, m[1]),
			mix(sb, db, as, ab, m[2]),
			addClamp(sa, mulDiv255(da, 255-sa))
	}
}

func hue(cb, cs rgb) rgb {
	return setLum(setSat(cs, sat(cb)), lum(cb))
}

func saturation(cb, cs rgb) rgb {
	return setLum(setSat(cb, sat(cs)), lum(cb))
}

func colorMix(cb, cs rgb) rgb {
	return setLum(cs, lum(cb))
}

func luminosity(cb, cs rgb) rgb {
	return setLum(cb, lum(cs))
}

// lum is the BT.601 luma used by the non-separable modes.
func lum(c rgb) float32 {
	return 0.30*c[0] + 0.59*c[1] + 0.11*c[2]
}

func sat(c rgb) float32 {
	return max(c[0], c[1], c[2]) - min(c[0], c[1], c[2])
}

func setLum(c rgb, l float32) rgb {
	d := l - lum(c)
	return clipColor(rgb{c[0] + d, c[1] + d, c[2] + d})
}

// clipColor pulls out of range channels toward the luma, keeping it.
func clipColor(c rgb) rgb {
	l := lum(c)
	n := min(c[0], c[1], c[2])
	x := max(c[0], c[1], c[2])
	if n < 0 {
		for i := range c {
			c[i] = l + (c[i]-l)*l/(l-n)
		}
	}
	if x > 1 {
		for i := range c {
			c[i] = l + (c[i]-l)*(1-l)/(x-l)
		}
	}
	return c
}

func setSat(c rgb, s float32) rgb {
	lo, mid, hi := order(c)
	var out rgb
	if c[hi] > c[lo] {
		out[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
		out[hi] = s
	}
	return out
}

// order returns the channel indexes of c sorted by value.
func order(c rgb) (lo, mid, hi int) {
	lo, mid, hi = 0, 1, 2
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[mid] > c[hi] {
		mid, hi = hi, mid
	}
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	return lo, mid, hi
}
