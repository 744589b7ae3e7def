// Package dlist provides a retained-mode display list and the stacking-context
// painter that draws it.
//
// # Overview
//
// A layout engine describes each frame as a tree of [StackingContext] values.
// Every context owns a [DisplayList] whose [DisplayItem] values are sorted into
// the paint-order buckets of CSS 2.1 Appendix E, plus child contexts with
// their own transform, filters, blend mode and z-index.
//
// Once built, the tree is read-only. It can be painted in tiles from many
// goroutines at once and hit tested without locking:
//
//	dl := dlist.NewDisplayList()
//	dl.PushContent(&dlist.SolidColorItem{
//		BaseItem: dlist.BaseItem{Bounds: geom.RectPx(0, 0, 40, 40), Clip: dlist.MaxClip()},
//		Color:    dlist.RGB(1, 0, 0),
//	})
//	root := dlist.NewStackingContext(dl, bounds, overflow, 0, nil, effects.BlendNormal, nil)
//
//	pc := dlist.NewPaintContext(canvas)
//	root.Paint(pc, tile, geom.Identity(), nil)
//
//	if md, ok := root.HitTestTopmost(geom.Pt(20, 20)); ok {
//		fmt.Println(md.Node, md.Pointing)
//	}
//
// The zero [ClippingRegion] is empty, so an item built without a clip is
// culled by the optimizer and never hit. Use [MaxClip] for unclipped items.
//
// # Backends
//
// Painting goes through the narrow [Backend] interface. The recording package
// captures calls as typed commands, the raster package draws into an
// *image.RGBA, and the tile package paints a tree across a worker pool.
//
// # Geometry
//
// Layout lengths are 26.6 fixed-point values from golang.org/x/image/math/fixed
// (see the geom package). Tile bounds and transforms are float32.
//
// # Logging
//
// The package logs through log/slog. Logging is disabled by default; enable it
// with [SetLogger].
package dlist
