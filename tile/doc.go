// Package tile partitions a page into a grid of square tiles and paints a
// stacking-context tree tile by tile on a bounded set of goroutines.
//
// Every tile is painted into its own raster.Canvas through the tile's
// visible rectangle, so the display list optimizer drops items and children
// outside it. The tree is only read while painting; resampled images are
// shared between tiles through one raster.ImageCache.
//
//	p := tile.NewPainter(tile.WithWorkers(4), tile.WithBackground(color.White))
//	img, err := p.Paint(ctx, root, 800, 600)
package tile
