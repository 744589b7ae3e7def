package tile

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name       string
		w, h, size int
		cols, rows int
		last       image.Rectangle
	}{
		{"exact", 512, 256, 256, 2, 1, image.Rect(256, 0, 512, 256)},
		{"edge tiles", 300, 100, 128, 3, 1, image.Rect(256, 0, 300, 100)},
		{"single small", 10, 10, 0, 1, 1, image.Rect(0, 0, 10, 10)},
		{"empty", 0, 10, 64, 0, 0, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.w, tt.h, tt.size)
			cols, rows := g.Dims()
			assert.Equal(t, tt.cols, cols)
			assert.Equal(t, tt.rows, rows)
			require.Equal(t, cols*rows, g.Len())
			if g.Len() > 0 {
				assert.Equal(t, tt.last, g.Tiles()[g.Len()-1].Rect)
			}
		})
	}
}

func TestGridCoversSurface(t *testing.T) {
	g := NewGrid(300, 200, 64)
	area := 0
	for _, tl := range g.Tiles() {
		area += tl.Rect.Dx() * tl.Rect.Dy()
		assert.True(t, tl.Rect.In(image.Rect(0, 0, 300, 200)))
	}
	assert.Equal(t, 300*200, area)
}

func TestTileAt(t *testing.T) {
	g := NewGrid(300, 200, 64)

	tl, ok := g.TileAt(4, 3)
	require.True(t, ok)
	assert.Equal(t, image.Rect(256, 192, 300, 200), tl.Rect)

	_, ok = g.TileAt(5, 0)
	assert.False(t, ok)
	_, ok = g.TileAt(-1, 0)
	assert.False(t, ok)

	tl, ok = g.TileAtPixel(130, 70)
	require.True(t, ok)
	assert.Equal(t, 2, tl.X)
	assert.Equal(t, 1, tl.Y)

	_, ok = g.TileAtPixel(300, 0)
	assert.False(t, ok)
}

func TestTilesInRect(t *testing.T) {
	g := NewGrid(256, 256, 64)

	tests := []struct {
		name string
		r    image.Rectangle
		want []image.Point
	}{
		{"inside one", image.Rect(10, 10, 20, 20), []image.Point{{0, 0}}},
		{"straddles", image.Rect(60, 60, 70, 70), []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{"exact tile", image.Rect(64, 0, 128, 64), []image.Point{{1, 0}}},
		{"clamped", image.Rect(200, 200, 900, 900), []image.Point{{3, 3}}},
		{"outside", image.Rect(300, 300, 400, 400), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []image.Point
			for _, tl := range g.TilesInRect(tt.r) {
				got = append(got, image.Pt(tl.X, tl.Y))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageRect(t *testing.T) {
	tl := Tile{Rect: image.Rect(64, 32, 128, 64)}
	r := tl.PageRect(2)
	assert.InDelta(t, 32, r.MinX, 1e-6)
	assert.InDelta(t, 16, r.MinY, 1e-6)
	assert.InDelta(t, 64, r.MaxX, 1e-6)
	assert.InDelta(t, 32, r.MaxY, 1e-6)
}
