package blend

// mulDiv255 multiplies two bytes and divides by 255 exactly, using
// Alvy Ray Smith's shift formula in place of integer division.
func mulDiv255(a, b byte) byte {
	t := uint16(a)*uint16(b) + 1
	return byte((t + (t >> 8)) >> 8)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

func toByte(v float32) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return byte(v + 0.5)
}

// unpremultiply returns the straight-alpha channels in [0, 1].
func unpremultiply(r, g, b, a byte) (float32, float32, float32) {
	if a == 0 {
		return 0, 0, 0
	}
	fa := float32(a)
	return float32(r) / fa, float32(g) / fa, float32(b) / fa
}

// mix applies the general compositing formula to one channel, given the
// premultiplied channels, both alphas in [0, 1] and the mixed value B.
func mix(cs, cb byte, as, ab, b float32) byte {
	return toByte(float32(cs)*(1-ab) + float32(cb)*(1-as) + 255*as*ab*b)
}
