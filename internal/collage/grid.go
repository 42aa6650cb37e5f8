package collage

import "math"

// grid describes the square tile arrangement for a given image count and
// canvas geometry.
type grid struct {
	Size     int // side length in tiles
	TileSize int // side length of one tile in pixels
	Padding  int // pixels between and around tiles
}

// gridFor computes the arrangement for count images on an output×output
// canvas. The grid side is ceil(sqrt(count)); the tile size is whatever is
// left per cell after the outer margins and the gaps between tiles.
func gridFor(count, output, padding int) grid {
	size := int(math.Ceil(math.Sqrt(float64(count))))
	tile := (output - padding*(size+1)) / size
	return grid{Size: size, TileSize: tile, Padding: padding}
}

// cell returns the top-left canvas coordinates of the tile at index i,
// filling the grid row by row.
func (g grid) cell(i int) (left, top int) {
	row := i / g.Size
	col := i % g.Size
	left = g.Padding + col*(g.TileSize+g.Padding)
	top = g.Padding + row*(g.TileSize+g.Padding)
	return left, top
}
