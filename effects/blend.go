package effects

// BlendMode is a CSS mix-blend-mode value.
type BlendMode uint8

// Blend modes following the W3C Compositing and Blending Level 1 keywords.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendModeNames = [...]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "color-dodge",
	BlendColorBurn:  "color-burn",
	BlendHardLight:  "hard-light",
	BlendSoftLight:  "soft-light",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
	BlendHue:        "hue",
	BlendSaturation: "saturation",
	BlendColor:      "color",
	BlendLuminosity: "luminosity",
}

// String returns the CSS keyword of the blend mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "unknown"
}

// ParseBlendMode returns the blend mode named by a CSS keyword.
func ParseBlendMode(name string) (BlendMode, bool) {
	for m, n := range blendModeNames {
		if n == name {
			return BlendMode(m), true
		}
	}
	return BlendNormal, false
}

// IsSeparable reports whether the mode operates on each channel independently.
func (m BlendMode) IsSeparable() bool {
	return m < BlendHue
}
