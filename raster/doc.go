// Package raster is a CPU implementation of dlist.Backend that draws into an
// *image.RGBA with premultiplied alpha.
//
// Shapes are scan converted with golang.org/x/image/vector, glyphs come from
// an x/image font.Face, images are resampled with bild (axis-aligned
// transforms, cached) or x/image/draw (any other affine transform), and
// blur uses bild's Gaussian blur. Isolated stacking contexts paint into a
// temporary canvas that is filtered and blended back on composite.
//
// A Canvas is not safe for concurrent use. Concurrently painted tiles each
// use their own Canvas and may share one ImageCache.
//
// Importing the package registers the "raster" backend with the recording
// registry.
package raster
