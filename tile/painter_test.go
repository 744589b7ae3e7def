package tile_test

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/effects"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/tile"
)

func solid(x, y, w, h int, c dlist.Color) *dlist.SolidColorItem {
	return &dlist.SolidColorItem{
		BaseItem: dlist.BaseItem{Bounds: geom.RectPx(x, y, w, h), Clip: dlist.MaxClip()},
		Color:    c,
	}
}

// page builds pixel-aligned content that straddles tile seams, with an
// isolated translucent child.
func page() *dlist.StackingContext {
	d := dlist.NewDisplayList()
	d.PushBackgroundOrBorder(solid(0, 0, 100, 80, dlist.RGB(0.9, 0.9, 0.9)))
	d.PushContent(solid(10, 10, 50, 30, dlist.RGB(1, 0, 0)))
	d.PushContent(solid(28, 28, 40, 40, dlist.RGBA(0, 0, 1, 0.5)))

	kid := dlist.NewDisplayList()
	kid.PushContent(solid(0, 0, 20, 20, dlist.RGB(0, 1, 0)))
	d.PushChild(dlist.NewStackingContext(kid, geom.RectPx(60, 20, 20, 20), geom.RectPx(0, 0, 20, 20), 1,
		effects.Set{effects.Opacity(0.5)}, effects.BlendNormal, nil))

	return dlist.NewStackingContext(d, geom.RectPx(0, 0, 100, 80), geom.RectPx(0, 0, 100, 80), 0, nil, effects.BlendNormal, nil)
}

func TestPaintTiledMatchesSingleTile(t *testing.T) {
	root := page()
	ctx := context.Background()

	whole, err := tile.NewPainter(tile.WithTileSize(512), tile.WithWorkers(1)).Paint(ctx, root, 100, 80)
	require.NoError(t, err)
	tiled, err := tile.NewPainter(tile.WithTileSize(16), tile.WithWorkers(4)).Paint(ctx, root, 100, 80)
	require.NoError(t, err)

	assert.Equal(t, whole.Pix, tiled.Pix)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, whole.RGBAAt(15, 15))
}

func TestPaintBackground(t *testing.T) {
	d := dlist.NewDisplayList()
	d.PushContent(solid(0, 0, 4, 4, dlist.RGB(1, 0, 0)))
	root := dlist.NewStackingContext(d, geom.RectPx(0, 0, 8, 8), geom.RectPx(0, 0, 8, 8), 0, nil, effects.BlendNormal, nil)

	img, err := tile.NewPainter(tile.WithTileSize(4), tile.WithBackground(color.White)).Paint(context.Background(), root, 8, 8)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(6, 6))
}

func TestPaintScale(t *testing.T) {
	d := dlist.NewDisplayList()
	d.PushContent(solid(2, 2, 2, 2, dlist.RGB(0, 0, 1)))
	root := dlist.NewStackingContext(d, geom.RectPx(0, 0, 8, 8), geom.RectPx(0, 0, 8, 8), 0, nil, effects.BlendNormal, nil)

	img, err := tile.NewPainter(tile.WithScale(2), tile.WithTileSize(4)).Paint(context.Background(), root, 16, 16)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(4, 4))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(7, 7))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(8, 8))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(3, 3))
}

func TestPaintRectOnlyTouchesDirtyTiles(t *testing.T) {
	root := page()
	dst := image.NewRGBA(image.Rect(0, 0, 100, 80))
	p := tile.NewPainter(tile.WithTileSize(32))

	require.NoError(t, p.PaintRect(context.Background(), root, dst, image.Rect(0, 0, 10, 10)))
	assert.NotEqual(t, color.RGBA{}, dst.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(40, 40))
}

func TestPaintCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tile.NewPainter(tile.WithTileSize(8)).Paint(ctx, page(), 100, 80)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPaintSucceedsRepeatedly(t *testing.T) {
	root := dlist.NewStackingContext(nil, geom.RectPx(0, 0, 64, 64), geom.RectPx(0, 0, 64, 64), 0, nil, effects.BlendNormal, nil)
	p := tile.NewPainter(tile.WithWorkers(1))

	for range 3 {
		img, err := p.Paint(context.Background(), root, 64, 64)
		require.NoError(t, err)
		require.NotNil(t, img)
		assert.Equal(t, image.Rect(0, 0, 64, 64), img.Rect)
	}

	dst := image.NewRGBA(image.Rect(0, 0, 64, 64))
	assert.NoError(t, p.PaintRect(context.Background(), root, dst, dst.Rect))
}
