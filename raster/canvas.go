package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/vector"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/recording"
)

// Canvas draws into an *image.RGBA. Its device space has the origin at the
// top-left pixel of the image.
type Canvas struct {
	img       *image.RGBA
	transform geom.Matrix
	clips     clipStack
	opts      *options
	images    *ImageCache
	faces     map[geom.Au]font.Face
	z         vector.Rasterizer
}

var _ dlist.Backend = (*Canvas)(nil)

func init() {
	recording.Register("raster", func(w, h int) dlist.Backend {
		return New(w, h)
	})
}

// New returns a transparent canvas of w by h pixels.
func New(w, h int, opts ...Option) *Canvas {
	return NewFromImage(image.NewRGBA(image.Rect(0, 0, w, h)), opts...)
}

// NewFromImage returns a canvas drawing into img, whose bounds must start
// at the origin.
func NewFromImage(img *image.RGBA, opts ...Option) *Canvas {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	images := o.images
	if images == nil {
		images = NewImageCache(DefaultImageCacheBudget)
	}
	return &Canvas{
		img:       img,
		transform: geom.Identity(),
		clips:     newClipStack(img.Rect),
		opts:      o,
		images:    images,
		faces:     make(map[geom.Au]font.Face),
	}
}

// Image returns the image the canvas draws into.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with col, ignoring the clip.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// ClipDepth returns the number of clips currently pushed.
func (c *Canvas) ClipDepth() int {
	return c.clips.depth()
}

// Transform returns the current transform.
func (c *Canvas) Transform() geom.Matrix {
	return c.transform
}

// SetTransform replaces the current transform.
func (c *Canvas) SetTransform(m geom.Matrix) {
	c.transform = m
}

// PushClipRect intersects the clip with r.
func (c *Canvas) PushClipRect(r geom.Rect) {
	rf := geom.RectFFromRect(r)
	if px, ok := pixelAligned(c.transform, rf); ok {
		c.clips.push(px, nil)
		return
	}
	c.clips.push(c.coverage(deviceBounds(c.transform, rf), func(p *pather) {
		p.rect(rf, false)
	}))
}

// PushClipRoundedRect intersects the clip with a rounded rectangle.
func (c *Canvas) PushClipRoundedRect(r geom.Rect, radii geom.BorderRadii) {
	if radii.IsSquare() {
		c.PushClipRect(r)
		return
	}
	rf := geom.RectFFromRect(r)
	c.clips.push(c.coverage(deviceBounds(c.transform, rf), func(p *pather) {
		p.roundedRect(rf, cornersOf(radii), false)
	}))
}

// PopClip restores the clip in effect before the last push.
// It panics when no clip is pushed.
func (c *Canvas) PopClip() {
	c.clips.pop()
}

// coverage scan converts the path built by fn over the device pixels of
// bounds, cropped to the current clip bounds. It returns the cropped bounds
// and the coverage mask, which is nil when bounds and clip are disjoint.
func (c *Canvas) coverage(bounds image.Rectangle, fn func(p *pather)) (image.Rectangle, *image.Alpha) {
	b := bounds.Intersect(c.clips.current().bounds)
	if b.Empty() {
		return image.Rectangle{}, nil
	}
	c.z.Reset(b.Dx(), b.Dy())
	fn(&pather{z: &c.z, m: c.transform, origin: b.Min})
	mask := image.NewAlpha(b)
	c.z.Draw(mask, b, image.Opaque, image.Point{})
	return b, mask
}

// fill draws src through the coverage mask cov and the current clip.
func (c *Canvas) fill(cov *image.Alpha, src image.Image) {
	if cov == nil {
		return
	}
	cov = c.clips.apply(cov)
	if cov == nil {
		return
	}
	draw.DrawMask(c.img, cov.Rect, src, cov.Rect.Min, cov, cov.Rect.Min, draw.Over)
}

// fillPath fills the path built by fn over the device pixels of bounds.
func (c *Canvas) fillPath(bounds image.Rectangle, src image.Image, fn func(p *pather)) {
	_, cov := c.coverage(bounds, fn)
	c.fill(cov, src)
}

// FillRect fills r with col.
func (c *Canvas) FillRect(r geom.Rect, col dlist.Color) {
	if col.IsTransparent() {
		return
	}
	rf := geom.RectFFromRect(r)
	src := image.NewUniform(col)
	if px, ok := pixelAligned(c.transform, rf); ok && c.clips.current().mask == nil {
		draw.Draw(c.img, px.Intersect(c.clips.current().bounds), src, image.Point{}, draw.Over)
		return
	}
	c.fillPath(deviceBounds(c.transform, rf), src, func(p *pather) {
		p.rect(rf, false)
	})
}
