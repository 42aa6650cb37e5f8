package collage

import "errors"

// ErrNoImages is returned by Compose when no images are supplied.
var ErrNoImages = errors.New("No images provided.")

// GeometryError reports grid geometry that leaves no room for tiles: once
// the padding around and between cells is subtracted, each tile would be
// zero pixels or smaller.
type GeometryError struct {
	Output   int
	Padding  int
	GridSize int
	TileSize int
}

func (e *GeometryError) Error() string {
	return "Output size is too small for the number of images and padding."
}
