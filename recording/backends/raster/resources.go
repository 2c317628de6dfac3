package raster

import (
	"image"
	"maps"
	"slices"

	"github.com/gogpu/drawlib"
)

// imageResource is an entry of the resource table. Entries that failed to
// load keep their error and have a nil image.
type imageResource struct {
	path          string
	img           image.Image
	width, height int
	err           error
}

// LoadImageResources decodes each file and stores it under its id,
// replacing any previous entry. Files that cannot be loaded are stored as
// invalid; shapes referencing them render with the fallback color.
func (b *Backend) LoadImageResources(resources map[string]string) error {
	for _, id := range slices.Sorted(maps.Keys(resources)) {
		path := resources[id]
		img, w, h, err := b.LoadImageResource(path)
		if err != nil {
			drawlib.Logger().Warn("raster: load image resource", "id", id, "path", path, "err", err)
		}
		b.ReleaseImageResource(id)
		b.resources[id] = &imageResource{path: path, img: img, width: w, height: h, err: err}
	}
	return nil
}

// UnloadImageResources releases the given ids. Unknown ids are ignored.
func (b *Backend) UnloadImageResources(ids []string) error {
	for _, id := range ids {
		b.ReleaseImageResource(id)
	}
	return nil
}

// LoadImageResource decodes the image at path.
func (b *Backend) LoadImageResource(path string) (image.Image, int, int, error) {
	return b.loader.Load(path)
}

// ReleaseImageResource removes id from the resource table.
func (b *Backend) ReleaseImageResource(id string) {
	delete(b.resources, id)
}

// ImageResource reports the size of a loaded resource and whether it is
// present and valid.
func (b *Backend) ImageResource(id string) (width, height int, ok bool) {
	res, found := b.resources[id]
	if !found || res.img == nil {
		return 0, 0, false
	}
	return res.width, res.height, true
}

// ResourceDimensions returns the size of the image file at path.
func (b *Backend) ResourceDimensions(path string) (width, height int, err error) {
	return b.loader.Dimensions(path)
}
