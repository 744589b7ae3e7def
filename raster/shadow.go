package raster

import (
	"image"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
)

// DrawBoxShadow draws the shadow of boxBounds moved by offset and grown by
// spread (shrunk for inset shadows), blurred by blur. Outset shadows are
// not drawn inside the box; inset shadows only inside it.
func (c *Canvas) DrawBoxShadow(boxBounds geom.Rect, offset geom.Point, col dlist.Color,
	blur, spread geom.Au, mode dlist.BoxShadowClipMode) {
	if col.IsTransparent() {
		return
	}
	box := geom.RectFFromRect(boxBounds)
	radius := geom.ToFloat32Px(blur) * scaleOf(c.transform)
	reach := int(radius*dlist.BlurInflationFactor) + 1

	var (
		area image.Rectangle
		cov  *image.Alpha
	)
	if mode == dlist.ShadowClipInset {
		inner := geom.RectFFromRect(geom.Inflate(boxBounds.Add(offset), -spread))
		area, cov = c.coverage(deviceBounds(c.transform, box).Inset(-reach), func(p *pather) {
			if inner.IsEmpty() {
				return
			}
			p.rect(inner, false)
		})
		if cov == nil {
			return
		}
		invertMask(cov)
	} else {
		shadow := geom.RectFFromRect(geom.Inflate(boxBounds.Add(offset), spread))
		if shadow.IsEmpty() {
			return
		}
		area, cov = c.coverage(deviceBounds(c.transform, shadow).Inset(-reach), func(p *pather) {
			p.rect(shadow, false)
		})
		if cov == nil {
			return
		}
	}

	if radius > 0 {
		cov = blurMask(cov, float64(radius))
	}

	if mode != dlist.ShadowClipNone {
		_, boxCov := c.coverage(area, func(p *pather) {
			p.rect(box, false)
		})
		if mode == dlist.ShadowClipOutset {
			invertMask(boxCov)
		}
		multiplyMask(cov, boxCov)
	}
	c.fill(cov, image.NewUniform(col))
}
