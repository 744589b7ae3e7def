package tile

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/raster"
)

// Painter paints stacking-context trees tile by tile in parallel.
// A Painter is safe for concurrent use.
type Painter struct {
	workers    int
	tileSize   int
	scale      float32
	background color.Color
	images     *raster.ImageCache
	canvasOpts []raster.Option
	paintOpts  []dlist.PaintOption
}

// NewPainter returns a painter using GOMAXPROCS workers, DefaultSize tiles
// and a scale of 1.
func NewPainter(opts ...Option) *Painter {
	p := &Painter{
		workers:  runtime.GOMAXPROCS(0),
		tileSize: DefaultSize,
		scale:    1,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.images == nil {
		p.images = raster.NewImageCache(raster.DefaultImageCacheBudget)
	}
	return p
}

// Paint paints root into a new width by height image.
func (p *Painter) Paint(ctx context.Context, root *dlist.StackingContext, width, height int) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := p.PaintRect(ctx, root, dst, dst.Rect); err != nil {
		return nil, err
	}
	return dst, nil
}

// PaintRect repaints the tiles of dst that intersect r. Tiles are replaced
// whole, so r is effectively rounded out to tile boundaries. It stops
// starting new tiles once ctx is done and returns its error.
func (p *Painter) PaintRect(ctx context.Context, root *dlist.StackingContext, dst *image.RGBA, r image.Rectangle) error {
	grid := NewGrid(dst.Rect.Dx(), dst.Rect.Dy(), p.tileSize)
	tiles := grid.TilesInRect(r.Sub(dst.Rect.Min))
	if len(tiles) == 0 {
		return nil
	}

	start := time.Now()
	// gctx is canceled once Wait returns; only the caller's ctx decides the
	// result after that.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for _, t := range tiles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img := p.paintTile(root, t)
			draw.Draw(dst, t.Rect.Add(dst.Rect.Min), img, image.Point{}, draw.Src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dlist.Logger().Info("tile: painted",
		"tiles", len(tiles), "workers", p.workers, "size", p.tileSize, "elapsed", time.Since(start))
	return nil
}

// paintTile paints one tile into its own canvas.
func (p *Painter) paintTile(root *dlist.StackingContext, t Tile) *image.RGBA {
	opts := append([]raster.Option{raster.WithImageCache(p.images)}, p.canvasOpts...)
	c := raster.New(t.Rect.Dx(), t.Rect.Dy(), opts...)
	if p.background != nil {
		c.Clear(p.background)
	}

	transform := geom.Translation(-float32(t.Rect.Min.X), -float32(t.Rect.Min.Y)).
		Multiply(geom.Scaling(p.scale, p.scale))
	root.Paint(dlist.NewPaintContext(c, p.paintOpts...), t.PageRect(p.scale), transform, nil)

	dlist.Logger().Debug("tile: painted tile", "x", t.X, "y", t.Y, "rect", t.Rect)
	return c.Image()
}
