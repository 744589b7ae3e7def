package tile

import (
	"image"

	"github.com/gogpu/dlist/geom"
)

// DefaultSize is the default tile edge in device pixels.
const DefaultSize = 256

// Tile is one cell of a Grid.
type Tile struct {
	// X and Y are the column and row of the tile.
	X, Y int
	// Rect is the tile's device pixel rectangle. Edge tiles may be smaller
	// than the grid's tile size.
	Rect image.Rectangle
}

// PageRect returns the tile's rectangle in page coordinates for a device
// scale factor.
func (t Tile) PageRect(scale float32) geom.RectF {
	return geom.RectF{
		MinX: float32(t.Rect.Min.X) / scale,
		MinY: float32(t.Rect.Min.Y) / scale,
		MaxX: float32(t.Rect.Max.X) / scale,
		MaxY: float32(t.Rect.Max.Y) / scale,
	}
}

// Grid divides a width by height pixel surface into square tiles, stored in
// row-major order.
type Grid struct {
	tiles          []Tile
	tilesX, tilesY int
	width, height  int
	size           int
}

// NewGrid creates a grid of size by size tiles covering width by height
// pixels. A non-positive size selects DefaultSize.
func NewGrid(width, height, size int) *Grid {
	if size <= 0 {
		size = DefaultSize
	}
	g := &Grid{size: size}
	if width <= 0 || height <= 0 {
		return g
	}

	g.width, g.height = width, height
	g.tilesX = (width + size - 1) / size
	g.tilesY = (height + size - 1) / size
	g.tiles = make([]Tile, 0, g.tilesX*g.tilesY)
	for ty := range g.tilesY {
		for tx := range g.tilesX {
			r := image.Rect(tx*size, ty*size, (tx+1)*size, (ty+1)*size)
			g.tiles = append(g.tiles, Tile{X: tx, Y: ty, Rect: r.Intersect(image.Rect(0, 0, width, height))})
		}
	}
	return g
}

// Tiles returns every tile in row-major order.
func (g *Grid) Tiles() []Tile {
	return g.tiles
}

// Len returns the number of tiles.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Size returns the tile edge in pixels.
func (g *Grid) Size() int {
	return g.size
}

// Dims returns the number of tile columns and rows.
func (g *Grid) Dims() (cols, rows int) {
	return g.tilesX, g.tilesY
}

// TileAt returns the tile at column tx and row ty.
func (g *Grid) TileAt(tx, ty int) (Tile, bool) {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return Tile{}, false
	}
	return g.tiles[ty*g.tilesX+tx], true
}

// TileAtPixel returns the tile containing the pixel (px, py).
func (g *Grid) TileAtPixel(px, py int) (Tile, bool) {
	if px < 0 || px >= g.width || py < 0 || py >= g.height {
		return Tile{}, false
	}
	return g.TileAt(px/g.size, py/g.size)
}

// TilesInRect returns the tiles intersecting r, in row-major order.
func (g *Grid) TilesInRect(r image.Rectangle) []Tile {
	r = r.Intersect(image.Rect(0, 0, g.width, g.height))
	if r.Empty() {
		return nil
	}
	tx1, ty1 := r.Min.X/g.size, r.Min.Y/g.size
	tx2, ty2 := (r.Max.X-1)/g.size, (r.Max.Y-1)/g.size

	out := make([]Tile, 0, (tx2-tx1+1)*(ty2-ty1+1))
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			out = append(out, g.tiles[ty*g.tilesX+tx])
		}
	}
	return out
}
