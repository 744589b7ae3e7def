// Package blend composites premultiplied RGBA pixels with the
// mix-blend-mode operators of W3C Compositing and Blending Level 1.
//
// Every mode uses the source-over general formula
//
//	co = cs*(1 - ab) + cb*(1 - as) + as*ab*B(Cb, Cs)
//	ao = as + ab*(1 - as)
//
// where cs and cb are premultiplied and B is the mode's mixing function on
// straight-alpha colors. Separable modes apply B to each channel; hue,
// saturation, color and luminosity mix the whole RGB triplet.
package blend
