package raster

import (
	"image"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
)

// DrawLine fills bounds as a line along its longer axis. Dashed lines use
// dashes three times the thickness long, dotted lines square dots; both
// leave gaps of the same length.
func (c *Canvas) DrawLine(bounds geom.Rect, col dlist.Color, style dlist.BorderStyle) {
	if col.IsTransparent() || !style.IsVisible() {
		return
	}
	r := geom.RectFFromRect(bounds)
	var dash float32
	switch style {
	case dlist.BorderDashed:
		dash = 3
	case dlist.BorderDotted:
		dash = 1
	default:
		c.FillRect(bounds, col)
		return
	}

	horizontal := r.Width() >= r.Height()
	thickness, length := r.Height(), r.Width()
	if !horizontal {
		thickness, length = length, thickness
	}
	if thickness <= 0 {
		return
	}
	step := dash * thickness

	c.fillPath(deviceBounds(c.transform, r), image.NewUniform(col), func(p *pather) {
		for at := float32(0); at < length; at += 2 * step {
			end := min(at+step, length)
			seg := geom.RectF{MinX: r.MinX + at, MinY: r.MinY, MaxX: r.MinX + end, MaxY: r.MaxY}
			if !horizontal {
				seg = geom.RectF{MinX: r.MinX, MinY: r.MinY + at, MaxX: r.MaxX, MaxY: r.MinY + end}
			}
			p.rect(seg, false)
		}
	})
}
