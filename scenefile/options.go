package scenefile

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/gogpu/dlist/shape"
)

// ImageLoader decodes the image at path.
type ImageLoader func(path string) (image.Image, error)

// Option configures scene loading.
type Option func(*options)

type options struct {
	baseDir string
	shaper  *shape.Shaper
	images  ImageLoader
}

// WithBaseDir resolves relative image paths against dir. Load defaults it to
// the scene file's directory.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// WithShaper shapes text items with s instead of the default Go Regular
// shaper.
func WithShaper(s *shape.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithImageLoader replaces the file-based image loader.
func WithImageLoader(l ImageLoader) Option {
	return func(o *options) {
		o.images = l
	}
}

// openImage decodes any format imaging understands and applies the EXIF
// orientation.
func openImage(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(true))
}
