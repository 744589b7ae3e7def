package raster

import "image"

// clipEntry is the effective clip after a push: the device pixels inside
// bounds, weighted by mask when it is not nil.
type clipEntry struct {
	bounds image.Rectangle
	mask   *image.Alpha
}

// clipStack keeps the intersection of every pushed clip, so that the top
// entry alone describes the current clip.
type clipStack struct {
	base    image.Rectangle
	entries []clipEntry
}

func newClipStack(base image.Rectangle) clipStack {
	return clipStack{base: base, entries: make([]clipEntry, 0, 8)}
}

// current returns the effective clip.
func (s *clipStack) current() clipEntry {
	if len(s.entries) == 0 {
		return clipEntry{bounds: s.base}
	}
	return s.entries[len(s.entries)-1]
}

// push intersects the clip with bounds, weighted by mask if not nil.
func (s *clipStack) push(bounds image.Rectangle, mask *image.Alpha) {
	cur := s.current()
	b := cur.bounds.Intersect(bounds)
	if b.Empty() {
		s.entries = append(s.entries, clipEntry{})
		return
	}
	if cur.mask == nil && mask == nil {
		s.entries = append(s.entries, clipEntry{bounds: b})
		return
	}

	m := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m.Pix[m.PixOffset(x, y)] = mulCoverage(alphaAt(cur.mask, x, y), alphaAt(mask, x, y))
		}
	}
	s.entries = append(s.entries, clipEntry{bounds: b, mask: m})
}

// pop restores the clip in effect before the last push.
func (s *clipStack) pop() {
	if len(s.entries) == 0 {
		panic("raster: PopClip on an empty clip stack")
	}
	s.entries = s.entries[:len(s.entries)-1]
}

func (s *clipStack) depth() int {
	return len(s.entries)
}

// apply weights cov by the current clip and crops it to the clip bounds.
// It returns nil when nothing is left.
func (s *clipStack) apply(cov *image.Alpha) *image.Alpha {
	cur := s.current()
	b := cov.Rect.Intersect(cur.bounds)
	if b.Empty() {
		return nil
	}
	cov = cov.SubImage(b).(*image.Alpha)
	if cur.mask != nil {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				i := cov.PixOffset(x, y)
				cov.Pix[i] = mulCoverage(cov.Pix[i], cur.mask.Pix[cur.mask.PixOffset(x, y)])
			}
		}
	}
	return cov
}

// alphaAt returns the coverage of m at (x, y), treating a nil mask as full
// coverage.
func alphaAt(m *image.Alpha, x, y int) uint8 {
	if m == nil {
		return 0xff
	}
	if !(image.Point{x, y}.In(m.Rect)) {
		return 0
	}
	return m.Pix[m.PixOffset(x, y)]
}

func mulCoverage(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}
