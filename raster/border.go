package raster

import (
	"image"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
)

type side int

const (
	sideTop side = iota
	sideRight
	sideBottom
	sideLeft
)

// quad adds the trapezoid of one side between the outer and inner edges.
func (p *pather) quad(s side, o, i geom.RectF) {
	switch s {
	case sideTop:
		p.polygon(o.MinX, o.MinY, o.MaxX, o.MinY, i.MaxX, i.MinY, i.MinX, i.MinY)
	case sideRight:
		p.polygon(o.MaxX, o.MinY, o.MaxX, o.MaxY, i.MaxX, i.MaxY, i.MaxX, i.MinY)
	case sideBottom:
		p.polygon(o.MaxX, o.MaxY, o.MinX, o.MaxY, i.MinX, i.MaxY, i.MaxX, i.MaxY)
	case sideLeft:
		p.polygon(o.MinX, o.MaxY, o.MinX, o.MinY, i.MinX, i.MinY, i.MinX, i.MaxY)
	}
}

func lerpRect(a, b geom.RectF, t float32) geom.RectF {
	return geom.RectF{
		MinX: a.MinX + (b.MinX-a.MinX)*t,
		MinY: a.MinY + (b.MinY-a.MinY)*t,
		MaxX: a.MaxX + (b.MaxX-a.MaxX)*t,
		MaxY: a.MaxY + (b.MaxY-a.MaxY)*t,
	}
}

// shade darkens the sides of 3-D border styles that face away from the
// light, which comes from the top left.
func shade(c dlist.Color, s side, style dlist.BorderStyle) dlist.Color {
	lit := s == sideTop || s == sideLeft
	switch style {
	case dlist.BorderInset, dlist.BorderGroove:
		lit = !lit
	case dlist.BorderOutset, dlist.BorderRidge:
	default:
		return c
	}
	if lit {
		return c
	}
	return dlist.Color{R: c.R * 0.5, G: c.G * 0.5, B: c.B * 0.5, A: c.A}
}

// DrawBorder draws the four sides of a border. Each side is a trapezoid
// between the outer bounds and the inner rectangle, clipped to the rounded
// ring when radii are set. Double borders draw the outer and inner thirds.
// Dotted and dashed sides are drawn solid.
func (c *Canvas) DrawBorder(bounds geom.Rect, widths geom.SideOffsets[geom.Au], radii geom.BorderRadii,
	colors geom.SideOffsets[dlist.Color], styles geom.SideOffsets[dlist.BorderStyle]) {
	outer := geom.RectFFromRect(bounds)
	inner := geom.RectFFromRect(geom.Deflate(bounds, widths))
	area := deviceBounds(c.transform, outer)

	var ring *image.Alpha
	if !radii.IsSquare() {
		oc := cornersOf(radii).fit(outer)
		ic := oc.shrink(geom.ToFloat32Px(widths.Top), geom.ToFloat32Px(widths.Right),
			geom.ToFloat32Px(widths.Bottom), geom.ToFloat32Px(widths.Left))
		_, ring = c.coverage(area, func(p *pather) {
			p.roundedRect(outer, oc, false)
			p.roundedRect(inner, ic, true)
		})
		if ring == nil {
			return
		}
	}

	sides := [...]struct {
		s     side
		width geom.Au
		color dlist.Color
		style dlist.BorderStyle
	}{
		{sideTop, widths.Top, colors.Top, styles.Top},
		{sideRight, widths.Right, colors.Right, styles.Right},
		{sideBottom, widths.Bottom, colors.Bottom, styles.Bottom},
		{sideLeft, widths.Left, colors.Left, styles.Left},
	}
	for _, sd := range sides {
		if sd.width <= 0 || !sd.style.IsVisible() || sd.color.IsTransparent() {
			continue
		}
		if sd.style == dlist.BorderDotted || sd.style == dlist.BorderDashed {
			logger().Debug("raster: dotted and dashed borders drawn solid", "style", sd.style)
		}
		_, cov := c.coverage(area, func(p *pather) {
			if sd.style == dlist.BorderDouble {
				p.quad(sd.s, outer, lerpRect(outer, inner, 1.0/3))
				p.quad(sd.s, lerpRect(outer, inner, 2.0/3), inner)
				return
			}
			p.quad(sd.s, outer, inner)
		})
		if cov == nil {
			continue
		}
		if ring != nil {
			multiplyMask(cov, ring)
		}
		c.fill(cov, image.NewUniform(shade(sd.color, sd.s, sd.style)))
	}
}

// multiplyMask weights dst by m where they overlap and clears the rest of dst.
func multiplyMask(dst, m *image.Alpha) {
	b := dst.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := dst.PixOffset(x, y)
			dst.Pix[i] = mulCoverage(dst.Pix[i], alphaAt(m, x, y))
		}
	}
}

// invertMask replaces every coverage value of m with its complement.
func invertMask(m *image.Alpha) {
	b := m.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := m.Pix[m.PixOffset(b.Min.X, y):][:b.Dx()]
		for i := range row {
			row[i] = 0xff - row[i]
		}
	}
}
