package recording

import (
	"image"

	"github.com/gogpu/dlist"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Images and text items are immutable, so they are stored by reference.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	images []image.Image
	texts  []*dlist.TextItem
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		images: make([]image.Image, 0, 8),
		texts:  make([]*dlist.TextItem, 0, 32),
	}
}

// AddImage adds an image to the pool and returns its reference.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// AddText adds a text item to the pool and returns its reference.
func (p *ResourcePool) AddText(t *dlist.TextItem) TextRef {
	p.texts = append(p.texts, t)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return TextRef(uint32(len(p.texts) - 1))
}

// GetText returns the text item for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetText(ref TextRef) *dlist.TextItem {
	if int(ref) >= len(p.texts) {
		return nil
	}
	return p.texts[ref]
}

// TextCount returns the number of text items in the pool.
func (p *ResourcePool) TextCount() int {
	return len(p.texts)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.images = p.images[:0]
	p.texts = p.texts[:0]
}
