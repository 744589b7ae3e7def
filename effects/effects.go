// Package effects describes the compositing effects a stacking context
// applies to its contents: the CSS filter list (including opacity) and the
// mix-blend-mode with which the result blends into its backdrop.
package effects

import (
	"fmt"
	"strings"

	"github.com/gogpu/dlist/geom"
)

// FilterKind identifies a CSS filter function.
type FilterKind uint8

// Filter kinds.
const (
	FilterBlur FilterKind = iota
	FilterBrightness
	FilterContrast
	FilterGrayscale
	FilterHueRotate
	FilterInvert
	FilterOpacity
	FilterSaturate
	FilterSepia
)

var filterKindNames = [...]string{
	FilterBlur:       "blur",
	FilterBrightness: "brightness",
	FilterContrast:   "contrast",
	FilterGrayscale:  "grayscale",
	FilterHueRotate:  "hue-rotate",
	FilterInvert:     "invert",
	FilterOpacity:    "opacity",
	FilterSaturate:   "saturate",
	FilterSepia:      "sepia",
}

// String returns the CSS function name of the filter kind.
func (k FilterKind) String() string {
	if int(k) < len(filterKindNames) {
		return filterKindNames[k]
	}
	return "unknown"
}

// ParseFilterKind returns the kind named by a CSS function name.
func ParseFilterKind(name string) (FilterKind, bool) {
	for k, n := range filterKindNames {
		if n == name {
			return FilterKind(k), true
		}
	}
	return 0, false
}

// Filter is one CSS filter function.
//
// Amount is the numeric argument of every kind except blur: a factor for
// brightness, contrast, grayscale, invert, opacity, saturate and sepia (1 is
// 100%), and an angle in degrees for hue-rotate. Blur uses Radius.
type Filter struct {
	Kind   FilterKind
	Amount float32
	Radius geom.Au
}

// Blur returns a blur filter with the given radius.
func Blur(radius geom.Au) Filter { return Filter{Kind: FilterBlur, Radius: radius} }

// Opacity returns an opacity filter.
func Opacity(amount float32) Filter { return Filter{Kind: FilterOpacity, Amount: amount} }

// NewFilter returns a filter of kind k with the given amount.
func NewFilter(k FilterKind, amount float32) Filter { return Filter{Kind: k, Amount: amount} }

// IsIdentity reports whether the filter leaves its input unchanged.
func (f Filter) IsIdentity() bool {
	switch f.Kind {
	case FilterBlur:
		return f.Radius == 0
	case FilterBrightness, FilterContrast, FilterOpacity, FilterSaturate:
		return f.Amount == 1
	case FilterGrayscale, FilterInvert, FilterSepia, FilterHueRotate:
		return f.Amount == 0
	default:
		return false
	}
}

// String formats the filter in CSS syntax.
func (f Filter) String() string {
	switch f.Kind {
	case FilterBlur:
		return fmt.Sprintf("blur(%gpx)", geom.ToFloat32Px(f.Radius))
	case FilterHueRotate:
		return fmt.Sprintf("hue-rotate(%gdeg)", f.Amount)
	default:
		return fmt.Sprintf("%s(%g)", f.Kind, f.Amount)
	}
}

// Set is an ordered list of filters applied left to right.
type Set []Filter

// Opacity returns the product of every opacity filter in the set.
func (s Set) Opacity() float32 {
	o := float32(1)
	for _, f := range s {
		if f.Kind == FilterOpacity {
			o *= f.Amount
		}
	}
	return o
}

// IsIdentity reports whether applying the set leaves its input unchanged.
func (s Set) IsIdentity() bool {
	for _, f := range s {
		if !f.IsIdentity() {
			return false
		}
	}
	return true
}

// String formats the set as a CSS filter value.
func (s Set) String() string {
	if len(s) == 0 {
		return "none"
	}
	parts := make([]string, len(s))
	for i, f := range s {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}

// NeedsIsolation reports whether content using these effects must be painted
// into a temporary surface and composited back.
func NeedsIsolation(filters Set, mode BlendMode) bool {
	return !filters.IsIdentity() || mode != BlendNormal
}
