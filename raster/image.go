package raster

import (
	"image"
	"image/draw"
	"reflect"

	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/internal/cache"
)

// DefaultImageCacheBudget is the byte budget of a canvas's private image
// cache.
const DefaultImageCacheBudget = 32 << 20

// scaledKey identifies a resampled copy of a source image.
type scaledKey struct {
	src    image.Image
	w, h   int
	smooth bool
}

// ImageCache holds resampled copies of images, bounded by a budget in
// bytes of pixel data. It is safe for concurrent use.
type ImageCache struct {
	c *cache.Cache[scaledKey, *image.RGBA]
}

// NewImageCache returns a cache holding up to budget bytes of pixels.
func NewImageCache(budget int) *ImageCache {
	return &ImageCache{c: cache.New[scaledKey, *image.RGBA](budget, func(img *image.RGBA) int {
		return len(img.Pix)
	})}
}

// Len returns the number of cached images.
func (ic *ImageCache) Len() int {
	return ic.c.Len()
}

// Stats returns hit and miss counts.
func (ic *ImageCache) Stats() cache.Stats {
	return ic.c.Stats()
}

// scaled returns src resampled to w by h pixels. Images whose dynamic type
// cannot be a map key are resampled on every call.
func (ic *ImageCache) scaled(src image.Image, w, h int, smooth bool) *image.RGBA {
	filter := transform.NearestNeighbor
	if smooth {
		filter = transform.Linear
	}
	resize := func() *image.RGBA {
		return transform.Resize(src, w, h, filter)
	}
	if !reflect.TypeOf(src).Comparable() {
		return resize()
	}
	return ic.c.GetOrCreate(scaledKey{src: src, w: w, h: h, smooth: smooth}, resize)
}

// DrawImage draws img stretched over bounds. Under a scale and translation
// the image is resampled once to its device size through the image cache;
// under any other transform it is resampled through the inverse transform.
func (c *Canvas) DrawImage(bounds geom.Rect, img image.Image, rendering dlist.ImageRendering) {
	sb := img.Bounds()
	if sb.Empty() {
		return
	}
	rf := geom.RectFFromRect(bounds)
	dev := c.transform.TransformRect(rf)
	clip := c.clips.current()
	area := deviceBounds(c.transform, rf).Intersect(clip.bounds)
	if area.Empty() {
		return
	}
	smooth := rendering == dlist.RenderingAuto

	if c.transform.IsAxisAligned() {
		origin := image.Pt(int(dev.MinX+0.5), int(dev.MinY+0.5))
		w, h := int(dev.Width()+0.5), int(dev.Height()+0.5)
		if w <= 0 || h <= 0 {
			return
		}
		scaled := c.images.scaled(img, w, h, smooth)
		area = area.Intersect(image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))})
		sp := area.Min.Sub(origin).Add(scaled.Rect.Min)
		if clip.mask == nil {
			draw.Draw(c.img, area, scaled, sp, draw.Over)
			return
		}
		draw.DrawMask(c.img, area, scaled, sp, clip.mask, area.Min, draw.Over)
		return
	}

	// Source pixels to pixels of a temporary image covering area.
	m := geom.Translation(-float32(area.Min.X), -float32(area.Min.Y)).
		Multiply(c.transform).
		Translate(rf.MinX, rf.MinY).
		Multiply(geom.Scaling(rf.Width()/float32(sb.Dx()), rf.Height()/float32(sb.Dy()))).
		Translate(-float32(sb.Min.X), -float32(sb.Min.Y))
	s2d := f64.Aff3{
		float64(m.A), float64(m.B), float64(m.C),
		float64(m.D), float64(m.E), float64(m.F),
	}

	var interp xdraw.Interpolator = xdraw.NearestNeighbor
	if smooth {
		interp = xdraw.BiLinear
	}
	tmp := image.NewRGBA(image.Rectangle{Max: area.Size()})
	interp.Transform(tmp, s2d, img, sb, xdraw.Over, nil)
	tmp.Rect = area

	if clip.mask == nil {
		draw.Draw(c.img, area, tmp, area.Min, draw.Over)
		return
	}
	draw.DrawMask(c.img, area, tmp, area.Min, clip.mask, area.Min, draw.Over)
}
