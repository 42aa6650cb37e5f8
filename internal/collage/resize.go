package collage

import (
	"context"
	"fmt"

	"github.com/collagekit/collage/pkg/imgio"
)

// Resize produces a size×size square crop of a single image, PNG encoded.
// The image is scaled to fill the square and the overflow is cropped
// symmetrically around the center; it is never stretched or letterboxed.
func (c *Composer) Resize(ctx context.Context, in imgio.Input, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %d", size)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	tile, err := renderTile(in, size)
	if err != nil {
		return nil, err
	}
	return encodePNG(tile)
}
