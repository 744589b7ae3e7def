// Package filter implements the color-matrix CSS filter functions on
// premultiplied *image.RGBA pixels.
//
// Every non-blur filter of an effects.Set maps to a 4x5 ColorMatrix as
// defined by Filter Effects Level 1. Consecutive matrices can be folded with
// Multiply so a filter chain touches each pixel once. Blur is not a color
// matrix and is applied by the raster backend.
package filter
