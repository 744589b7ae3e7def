// Package cache provides a thread-safe LRU cache bounded by a cost budget.
//
// The raster backend uses it to keep resampled copies of images shared
// between the canvases of concurrently painted tiles:
//
//	c := cache.New[key, *image.RGBA](64<<20, func(img *image.RGBA) int {
//	    return len(img.Pix)
//	})
//	scaled := c.GetOrCreate(k, func() *image.RGBA { return resize(src) })
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
