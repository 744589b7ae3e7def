package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/effects"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/recording"
)

var (
	opaqueRed  = color.RGBA{255, 0, 0, 255}
	opaqueBlue = color.RGBA{0, 0, 255, 255}
)

func TestFillRect(t *testing.T) {
	c := New(10, 10)
	c.FillRect(geom.RectPx(2, 2, 3, 3), dlist.RGB(1, 0, 0))

	assert.Equal(t, opaqueRed, c.Image().RGBAAt(2, 2))
	assert.Equal(t, opaqueRed, c.Image().RGBAAt(4, 4))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(1, 2))
}

func TestFillRectTransformed(t *testing.T) {
	c := New(20, 20)
	c.SetTransform(geom.Translation(5, 5).Multiply(geom.Scaling(2, 2)))
	c.FillRect(geom.RectPx(0, 0, 2, 2), dlist.RGB(0, 0, 1))

	assert.Equal(t, opaqueBlue, c.Image().RGBAAt(5, 5))
	assert.Equal(t, opaqueBlue, c.Image().RGBAAt(8, 8))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(9, 9))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(4, 5))
}

func TestFillRectHalfPixel(t *testing.T) {
	c := New(4, 4)
	c.FillRect(geom.Rect{Max: geom.Point{X: geom.Px(1) + 32, Y: geom.Px(1)}}, dlist.RGB(1, 0, 0))

	assert.Equal(t, opaqueRed, c.Image().RGBAAt(0, 0))
	edge := c.Image().RGBAAt(1, 0)
	assert.InDelta(t, 128, int(edge.A), 2, "half covered pixel")
}

func TestTransparentFillIgnored(t *testing.T) {
	c := New(4, 4)
	c.FillRect(geom.RectPx(0, 0, 4, 4), dlist.Transparent)
	for _, v := range c.Image().Pix {
		require.Zero(t, v)
	}
}

func TestClipRect(t *testing.T) {
	c := New(10, 10)
	c.PushClipRect(geom.RectPx(0, 0, 5, 10))
	c.PushClipRect(geom.RectPx(3, 0, 7, 10))
	c.FillRect(geom.RectPx(0, 0, 10, 10), dlist.RGB(1, 0, 0))
	c.PopClip()
	c.PopClip()

	assert.Equal(t, 0, c.ClipDepth())
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(2, 5))
	assert.Equal(t, opaqueRed, c.Image().RGBAAt(3, 5))
	assert.Equal(t, opaqueRed, c.Image().RGBAAt(4, 5))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(5, 5))
}

func TestClipRoundedRect(t *testing.T) {
	c := New(20, 20)
	c.PushClipRoundedRect(geom.RectPx(0, 0, 20, 20), geom.AllSame(geom.Px(10)))
	c.FillRect(geom.RectPx(0, 0, 20, 20), dlist.RGB(1, 0, 0))
	c.PopClip()

	assert.Equal(t, opaqueRed, c.Image().RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(19, 19))
}

func TestRotatedClip(t *testing.T) {
	c := New(40, 40)
	c.SetTransform(geom.Translation(20, 20).Multiply(geom.Rotation(0.785398)))
	c.PushClipRect(geom.RectPx(-5, -5, 10, 10))
	c.SetTransform(geom.Identity())
	c.FillRect(geom.RectPx(0, 0, 40, 40), dlist.RGB(1, 0, 0))
	c.PopClip()

	assert.Equal(t, opaqueRed, c.Image().RGBAAt(20, 20))
	// The corner of the unrotated square lies outside the diamond.
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(15, 15))
}

func TestPopEmptyClipPanics(t *testing.T) {
	assert.Panics(t, func() { New(1, 1).PopClip() })
}

func TestDrawBorder(t *testing.T) {
	c := New(20, 20)
	c.DrawBorder(geom.RectPx(0, 0, 20, 20),
		geom.AllSides(geom.Px(4)),
		geom.BorderRadii{},
		geom.SideOffsets[dlist.Color]{Top: dlist.RGB(1, 0, 0), Right: dlist.RGB(0, 1, 0), Bottom: dlist.RGB(0, 0, 1), Left: dlist.RGB(1, 0, 0)},
		geom.SideOffsets[dlist.BorderStyle]{Top: dlist.BorderSolid, Right: dlist.BorderSolid, Bottom: dlist.BorderSolid, Left: dlist.BorderNone},
	)

	img := c.Image()
	assert.Equal(t, opaqueRed, img.RGBAAt(10, 1), "top")
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, img.RGBAAt(18, 10), "right")
	assert.Equal(t, opaqueBlue, img.RGBAAt(10, 18), "bottom")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 10), "left style none")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 10), "interior")
}

func TestDrawRoundedBorder(t *testing.T) {
	c := New(40, 40)
	red := dlist.RGB(1, 0, 0)
	c.DrawBorder(geom.RectPx(0, 0, 40, 40), geom.AllSides(geom.Px(4)), geom.AllSame(geom.Px(16)),
		geom.AllSides(red), geom.AllSides(dlist.BorderSolid))

	img := c.Image()
	assert.Equal(t, opaqueRed, img.RGBAAt(20, 1))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0), "outside the rounded corner")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(20, 20))
}

func TestDrawLinearGradient(t *testing.T) {
	c := New(100, 4)
	c.DrawLinearGradient(geom.RectPx(0, 0, 100, 4), geom.Pt(0, 0), geom.Pt(100, 0), []dlist.GradientStop{
		{Offset: 0, Color: dlist.RGB(1, 0, 0)},
		{Offset: 1, Color: dlist.RGB(0, 0, 1)},
	})

	img := c.Image()
	left, mid, right := img.RGBAAt(0, 1), img.RGBAAt(50, 1), img.RGBAAt(99, 1)
	assert.Greater(t, left.R, uint8(250))
	assert.Greater(t, right.B, uint8(250))
	assert.InDelta(t, 127, int(mid.R), 3)
	assert.InDelta(t, 127, int(mid.B), 3)
	assert.Equal(t, uint8(255), mid.A)
}

func TestGradientPadsBeyondStops(t *testing.T) {
	stops := premulStops([]dlist.GradientStop{
		{Offset: 0.25, Color: dlist.RGB(1, 0, 0)},
		{Offset: 0.75, Color: dlist.RGB(0, 0, 1)},
	})
	assert.Equal(t, opaqueRed, colorAt(stops, 0))
	assert.Equal(t, opaqueBlue, colorAt(stops, 1))
	assert.Equal(t, color.RGBA{128, 0, 128, 255}, colorAt(stops, 0.5))
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name  string
		style dlist.BorderStyle
		at    int
		want  color.RGBA
	}{
		{"solid", dlist.BorderSolid, 7, opaqueRed},
		{"dashed dash", dlist.BorderDashed, 1, opaqueRed},
		{"dashed gap", dlist.BorderDashed, 7, color.RGBA{}},
		{"dotted gap", dlist.BorderDotted, 3, color.RGBA{}},
		{"dotted dot", dlist.BorderDotted, 4, opaqueRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(40, 2)
			c.DrawLine(geom.RectPx(0, 0, 40, 2), dlist.RGB(1, 0, 0), tt.style)
			assert.Equal(t, tt.want, c.Image().RGBAAt(tt.at, 0))
		})
	}
}

func TestDrawBoxShadow(t *testing.T) {
	box := geom.RectPx(10, 10, 10, 10)
	black := dlist.RGB(0, 0, 0)

	t.Run("outset", func(t *testing.T) {
		c := New(40, 40)
		c.DrawBoxShadow(box, geom.Pt(5, 5), black, 0, 0, dlist.ShadowClipOutset)
		img := c.Image()
		assert.Equal(t, uint8(255), img.RGBAAt(22, 22).A, "shadow outside the box")
		assert.Zero(t, img.RGBAAt(16, 16).A, "box interior is knocked out")
		assert.Zero(t, img.RGBAAt(12, 26).A, "beyond the shadow")
	})
	t.Run("none", func(t *testing.T) {
		c := New(40, 40)
		c.DrawBoxShadow(box, geom.Pt(5, 5), black, 0, 0, dlist.ShadowClipNone)
		assert.Equal(t, uint8(255), c.Image().RGBAAt(16, 16).A)
	})
	t.Run("inset", func(t *testing.T) {
		c := New(40, 40)
		c.DrawBoxShadow(box, geom.Pt(0, 0), black, 0, geom.Px(2), dlist.ShadowClipInset)
		img := c.Image()
		assert.Equal(t, uint8(255), img.RGBAAt(10, 15).A, "inside the box edge")
		assert.Zero(t, img.RGBAAt(15, 15).A, "box center")
		assert.Zero(t, img.RGBAAt(5, 5).A, "outside the box")
	})
	t.Run("blurred", func(t *testing.T) {
		c := New(60, 60)
		c.DrawBoxShadow(geom.RectPx(20, 20, 20, 20), geom.Point{}, black, geom.Px(3), 0, dlist.ShadowClipNone)
		img := c.Image()
		assert.Greater(t, img.RGBAAt(30, 30).A, uint8(200))
		edge := img.RGBAAt(20, 30).A
		assert.Greater(t, edge, uint8(50))
		assert.Less(t, edge, uint8(200))
		assert.Greater(t, img.RGBAAt(18, 30).A, uint8(0), "ink spreads past the box")
	})
}

func checker() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, opaqueRed)
	img.SetRGBA(1, 1, opaqueRed)
	img.SetRGBA(1, 0, opaqueBlue)
	img.SetRGBA(0, 1, opaqueBlue)
	return img
}

func TestDrawImageScaled(t *testing.T) {
	ic := NewImageCache(1 << 20)
	c := New(8, 8, WithImageCache(ic))
	src := checker()

	c.DrawImage(geom.RectPx(0, 0, 4, 4), src, dlist.RenderingPixelated)
	c.DrawImage(geom.RectPx(4, 4, 4, 4), src, dlist.RenderingPixelated)

	img := c.Image()
	assert.Equal(t, opaqueRed, img.RGBAAt(1, 1))
	assert.Equal(t, opaqueBlue, img.RGBAAt(3, 0))
	assert.Equal(t, opaqueRed, img.RGBAAt(7, 7))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(7, 0))

	assert.Equal(t, 1, ic.Len(), "both draws share one resampled copy")
	assert.Equal(t, uint64(1), ic.Stats().Hits)
}

func TestDrawImageClipped(t *testing.T) {
	c := New(8, 8)
	c.PushClipRoundedRect(geom.RectPx(0, 0, 8, 8), geom.AllSame(geom.Px(4)))
	c.DrawImage(geom.RectPx(0, 0, 8, 8), checker(), dlist.RenderingPixelated)
	c.PopClip()

	assert.Zero(t, c.Image().RGBAAt(0, 0).A)
	assert.Equal(t, opaqueRed, c.Image().RGBAAt(2, 2))
}

func TestDrawImageRotated(t *testing.T) {
	c := New(40, 40)
	c.SetTransform(geom.Translation(20, 20).Multiply(geom.Rotation(0.785398)))
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	c.DrawImage(geom.RectPx(-5, -5, 10, 10), src, dlist.RenderingAuto)

	img := c.Image()
	assert.Equal(t, uint8(255), img.RGBAAt(20, 20).A)
	assert.Zero(t, img.RGBAAt(14, 14).A)
	assert.Zero(t, img.RGBAAt(0, 0).A)
}

func TestTemporaryDrawTarget(t *testing.T) {
	c := New(4, 4)
	assert.Same(t, c, c.TemporaryDrawTarget(nil, effects.BlendNormal))

	filters := effects.Set{effects.Opacity(0.5)}
	tmp := c.TemporaryDrawTarget(filters, effects.BlendNormal)
	require.NotSame(t, c, tmp)

	c.FillRect(geom.RectPx(0, 0, 4, 4), dlist.RGB(0, 0, 1))
	tmp.FillRect(geom.RectPx(0, 0, 2, 4), dlist.RGB(1, 0, 0))
	c.CompositeTemporaryDrawTarget(tmp, filters, effects.BlendNormal)

	got := c.Image().RGBAAt(0, 0)
	assert.InDelta(t, 128, int(got.R), 2)
	assert.InDelta(t, 127, int(got.B), 2)
	assert.Equal(t, uint8(255), got.A)
	assert.Equal(t, opaqueBlue, c.Image().RGBAAt(3, 0))
}

func TestCompositeBlendAndClip(t *testing.T) {
	c := New(4, 4)
	c.FillRect(geom.RectPx(0, 0, 4, 4), dlist.RGB(1, 1, 1))
	c.PushClipRect(geom.RectPx(0, 0, 2, 4))

	tmp := c.TemporaryDrawTarget(nil, effects.BlendMultiply)
	tmp.FillRect(geom.RectPx(0, 0, 4, 4), dlist.RGB(1, 0, 0))
	c.CompositeTemporaryDrawTarget(tmp, nil, effects.BlendMultiply)
	c.PopClip()

	assert.Equal(t, opaqueRed, c.Image().RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c.Image().RGBAAt(3, 1), "outside the clip")
}

func TestCompositeForeignTargetPanics(t *testing.T) {
	c := New(2, 2)
	assert.Panics(t, func() {
		c.CompositeTemporaryDrawTarget(recording.NewRecorder(2, 2), effects.Set{effects.Opacity(0.5)}, effects.BlendNormal)
	})
}

func TestApplyFiltersBlur(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 21, 21))
	img.SetRGBA(10, 10, color.RGBA{255, 255, 255, 255})
	applyFilters(img, effects.Set{effects.Blur(geom.Px(2))}, 1)

	assert.Less(t, img.RGBAAt(10, 10).A, uint8(255))
	assert.Greater(t, img.RGBAAt(11, 10).A, uint8(0))
	assert.Equal(t, img.Rect, image.Rect(0, 0, 21, 21))
}
