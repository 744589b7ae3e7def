package raster

import (
	"image"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"github.com/gogpu/dlist/geom"
)

// kappa is the cubic Bézier handle length that approximates a quarter circle.
const kappa = 0.5522847498

// pather builds device-space paths into a rasterizer whose origin is the
// device pixel origin.
type pather struct {
	z      *vector.Rasterizer
	m      geom.Matrix
	origin image.Point
}

func (p *pather) xy(x, y float32) (float32, float32) {
	dx, dy := p.m.TransformPoint(x, y)
	return dx - float32(p.origin.X), dy - float32(p.origin.Y)
}

func (p *pather) moveTo(x, y float32) { p.z.MoveTo(p.xy(x, y)) }

func (p *pather) lineTo(x, y float32) { p.z.LineTo(p.xy(x, y)) }

func (p *pather) cubeTo(x1, y1, x2, y2, x, y float32) {
	ax, ay := p.xy(x1, y1)
	bx, by := p.xy(x2, y2)
	cx, cy := p.xy(x, y)
	p.z.CubeTo(ax, ay, bx, by, cx, cy)
}

func (p *pather) closePath() { p.z.ClosePath() }

// polygon adds a closed polygon from consecutive x, y pairs.
func (p *pather) polygon(pts ...float32) {
	p.moveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		p.lineTo(pts[i], pts[i+1])
	}
	p.closePath()
}

// rect adds r clockwise, or counter-clockwise when reverse is set so that it
// cuts a hole in a clockwise path.
func (p *pather) rect(r geom.RectF, reverse bool) {
	if reverse {
		p.polygon(r.MinX, r.MinY, r.MinX, r.MaxY, r.MaxX, r.MaxY, r.MaxX, r.MinY)
		return
	}
	p.polygon(r.MinX, r.MinY, r.MaxX, r.MinY, r.MaxX, r.MaxY, r.MinX, r.MaxY)
}

// corners holds corner radii in pixels: top-left, top-right, bottom-right,
// bottom-left.
type corners [4]float32

func cornersOf(b geom.BorderRadii) corners {
	return corners{
		geom.ToFloat32Px(b.TopLeft), geom.ToFloat32Px(b.TopRight),
		geom.ToFloat32Px(b.BottomRight), geom.ToFloat32Px(b.BottomLeft),
	}
}

// fit scales the radii down so adjacent radii never overlap on a side of r.
func (c corners) fit(r geom.RectF) corners {
	w, h := r.Width(), r.Height()
	f := float32(1)
	for _, s := range [...]struct{ sum, side float32 }{
		{c[0] + c[1], w}, {c[3] + c[2], w}, {c[0] + c[3], h}, {c[1] + c[2], h},
	} {
		if s.sum > s.side && s.sum > 0 {
			f = min(f, s.side/s.sum)
		}
	}
	for i := range c {
		c[i] = max(c[i]*f, 0)
	}
	return c
}

// shrink returns the inner radii of a border of the given widths.
func (c corners) shrink(top, right, bottom, left float32) corners {
	return corners{
		max(c[0]-max(top, left), 0), max(c[1]-max(top, right), 0),
		max(c[2]-max(bottom, right), 0), max(c[3]-max(bottom, left), 0),
	}
}

// roundedRect adds a rounded rectangle clockwise, or counter-clockwise when
// reverse is set.
func (p *pather) roundedRect(r geom.RectF, c corners, reverse bool) {
	c = c.fit(r)
	if c == (corners{}) {
		p.rect(r, reverse)
		return
	}
	k := float32(1 - kappa)
	tl, tr, br, bl := c[0], c[1], c[2], c[3]
	if !reverse {
		p.moveTo(r.MinX+tl, r.MinY)
		p.lineTo(r.MaxX-tr, r.MinY)
		p.cubeTo(r.MaxX-tr*k, r.MinY, r.MaxX, r.MinY+tr*k, r.MaxX, r.MinY+tr)
		p.lineTo(r.MaxX, r.MaxY-br)
		p.cubeTo(r.MaxX, r.MaxY-br*k, r.MaxX-br*k, r.MaxY, r.MaxX-br, r.MaxY)
		p.lineTo(r.MinX+bl, r.MaxY)
		p.cubeTo(r.MinX+bl*k, r.MaxY, r.MinX, r.MaxY-bl*k, r.MinX, r.MaxY-bl)
		p.lineTo(r.MinX, r.MinY+tl)
		p.cubeTo(r.MinX, r.MinY+tl*k, r.MinX+tl*k, r.MinY, r.MinX+tl, r.MinY)
		p.closePath()
		return
	}
	p.moveTo(r.MinX+tl, r.MinY)
	p.cubeTo(r.MinX+tl*k, r.MinY, r.MinX, r.MinY+tl*k, r.MinX, r.MinY+tl)
	p.lineTo(r.MinX, r.MaxY-bl)
	p.cubeTo(r.MinX, r.MaxY-bl*k, r.MinX+bl*k, r.MaxY, r.MinX+bl, r.MaxY)
	p.lineTo(r.MaxX-br, r.MaxY)
	p.cubeTo(r.MaxX-br*k, r.MaxY, r.MaxX, r.MaxY-br*k, r.MaxX, r.MaxY-br)
	p.lineTo(r.MaxX, r.MinY+tr)
	p.cubeTo(r.MaxX, r.MinY+tr*k, r.MaxX-tr*k, r.MinY, r.MaxX-tr, r.MinY)
	p.closePath()
}

// deviceBounds returns the device pixels touched by the local rectangle r.
func deviceBounds(m geom.Matrix, r geom.RectF) image.Rectangle {
	d := m.TransformRect(r)
	return image.Rect(
		int(math32.Floor(d.MinX)), int(math32.Floor(d.MinY)),
		int(math32.Ceil(d.MaxX)), int(math32.Ceil(d.MaxY)),
	)
}

// pixelAligned reports whether r maps exactly onto whole device pixels,
// returning them.
func pixelAligned(m geom.Matrix, r geom.RectF) (image.Rectangle, bool) {
	if !m.IsAxisAligned() {
		return image.Rectangle{}, false
	}
	d := m.TransformRect(r)
	for _, v := range [...]float32{d.MinX, d.MinY, d.MaxX, d.MaxY} {
		if v != math32.Round(v) {
			return image.Rectangle{}, false
		}
	}
	return image.Rect(int(d.MinX), int(d.MinY), int(d.MaxX), int(d.MaxY)), true
}

// scaleOf returns the average linear scale factor of m.
func scaleOf(m geom.Matrix) float32 {
	return math32.Sqrt(math32.Abs(m.A*m.E - m.B*m.D))
}
