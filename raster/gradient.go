package raster

import (
	"image"
	"image/color"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
)

// premulStop is a gradient stop with premultiplied components in [0, 1].
type premulStop struct {
	offset     float32
	r, g, b, a float32
}

func premulStops(stops []dlist.GradientStop) []premulStop {
	out := make([]premulStop, len(stops))
	for i, s := range stops {
		a := min(max(s.Color.A, 0), 1)
		out[i] = premulStop{offset: s.Offset, r: s.Color.R * a, g: s.Color.G * a, b: s.Color.B * a, a: a}
	}
	return out
}

// at returns the color at gradient position t. Positions before the first
// stop or after the last take its color.
func colorAt(stops []premulStop, t float32) color.RGBA {
	first, last := stops[0], stops[len(stops)-1]
	s := last
	switch {
	case t <= first.offset:
		s = first
	case t < last.offset:
		for i := 1; i < len(stops); i++ {
			hi := stops[i]
			if t > hi.offset {
				continue
			}
			lo := stops[i-1]
			f := float32(0)
			if hi.offset > lo.offset {
				f = (t - lo.offset) / (hi.offset - lo.offset)
			}
			s = premulStop{
				r: lo.r + (hi.r-lo.r)*f, g: lo.g + (hi.g-lo.g)*f,
				b: lo.b + (hi.b-lo.b)*f, a: lo.a + (hi.a-lo.a)*f,
			}
			break
		}
	}
	return color.RGBA{R: unit8(s.r), G: unit8(s.g), B: unit8(s.b), A: unit8(s.a)}
}

func unit8(v float32) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

// DrawLinearGradient fills bounds with a gradient running from start to end.
// Colors are interpolated in premultiplied space.
func (c *Canvas) DrawLinearGradient(bounds geom.Rect, start, end geom.Point, stops []dlist.GradientStop) {
	if len(stops) == 0 {
		return
	}
	rf := geom.RectFFromRect(bounds)
	area, cov := c.coverage(deviceBounds(c.transform, rf), func(p *pather) {
		p.rect(rf, false)
	})
	if cov == nil {
		return
	}

	ps := premulStops(stops)
	sx, sy := geom.PointF(start)
	ex, ey := geom.PointF(end)
	dx, dy := ex-sx, ey-sy
	lenSq := dx*dx + dy*dy
	inv := c.transform.Invert()

	src := image.NewRGBA(area)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			t := float32(1)
			if lenSq > 0 {
				lx, ly := inv.TransformPoint(float32(x)+0.5, float32(y)+0.5)
				t = ((lx-sx)*dx + (ly-sy)*dy) / lenSq
			}
			src.SetRGBA(x, y, colorAt(ps, t))
		}
	}
	c.fill(cov, src)
}
