// Package collage arranges individually sourced images into a single square
// grid image and exposes a square-crop resize utility. All pixel work
// (decoding, resampling, compositing, encoding) is delegated to
// github.com/disintegration/imaging; this package owns the grid arithmetic,
// input resolution and the fan-out over per-image resizes.
package collage

import (
	"bytes"
	"context"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/collagekit/collage/pkg/imgio"
)

// Options contains all composition parameters.
type Options struct {
	// Output is the side length of the square canvas in pixels.
	Output int

	// Background fills the canvas before tiles are pasted, e.g. "#1e1e2e"
	// or "white". Empty means fully transparent.
	Background string

	// Padding is the gap in pixels between tiles and around the canvas
	// edges.
	Padding int
}

// Result contains the composition result.
type Result struct {
	Buffer   []byte // PNG-encoded canvas
	GridSize int    // side length of the grid in tiles
	Count    int    // number of images placed
}

// Composer builds grid collages. The zero value is ready to use.
type Composer struct{}

// New creates a new composer instance.
func New() *Composer {
	return &Composer{}
}

// Compose resizes every image to a uniform tile and pastes the tiles row by
// row onto a freshly generated background canvas. Per-image work runs
// concurrently; tiles land at their input index, so completion order never
// affects placement. The first failure cancels the remaining work and aborts
// the whole composition with that error.
func (c *Composer) Compose(ctx context.Context, images []imgio.Input, opts Options) (*Result, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	bg, err := imgio.ParseColor(opts.Background)
	if err != nil {
		return nil, err
	}

	g := gridFor(len(images), opts.Output, opts.Padding)
	if g.TileSize <= 0 {
		return nil, &GeometryError{
			Output:   opts.Output,
			Padding:  opts.Padding,
			GridSize: g.Size,
			TileSize: g.TileSize,
		}
	}

	tiles := make([]image.Image, len(images))
	eg, ctx := errgroup.WithContext(ctx)
	for i, in := range images {
		i, in := i, in
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tile, err := renderTile(in, g.TileSize)
			if err != nil {
				return err
			}
			tiles[i] = tile
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Tiles never overlap given the geometry above, so paste order does
	// not affect the final pixels.
	canvas := imaging.New(opts.Output, opts.Output, bg)
	for i, tile := range tiles {
		left, top := g.cell(i)
		canvas = imaging.Paste(canvas, tile, image.Pt(left, top))
	}

	buf, err := encodePNG(canvas)
	if err != nil {
		return nil, err
	}

	return &Result{
		Buffer:   buf,
		GridSize: g.Size,
		Count:    len(images),
	}, nil
}

// renderTile resolves one input and cover-fits it into a size×size square:
// scaled to fill, overflow cropped around the center.
func renderTile(in imgio.Input, size int) (image.Image, error) {
	data, err := in.Resolve()
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos), nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
