package collage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/collagekit/collage/pkg/imgio"
)

// quadrantPNG encodes a size×size PNG split into four solid quadrants.
func quadrantPNG(t *testing.T, size int, tl, tr, bl, br color.NRGBA) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := tl
			switch {
			case x >= half && y < half:
				c = tr
			case x < half && y >= half:
				c = bl
			case x >= half && y >= half:
				c = br
			}
			img.SetNRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return buf.Bytes()
}

func TestResizeCoverFit(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"wide", 300, 150},
		{"tall", 150, 300},
		{"square", 150, 150},
		{"tiny upscale", 10, 10},
		{"odd aspect", 333, 97},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := imgio.FromBytes(pngBytes(t, tc.w, tc.h, color.NRGBA{R: 0xff, A: 0xff}))

			buf, err := New().Resize(context.Background(), in, 150)
			if err != nil {
				t.Fatalf("Resize: %v", err)
			}

			img := decodeResult(t, buf)
			if img.Bounds().Dx() != 150 || img.Bounds().Dy() != 150 {
				t.Errorf("result = %dx%d, want 150x150", img.Bounds().Dx(), img.Bounds().Dy())
			}
		})
	}
}

func TestResizeSquareInputKeepsPixels(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	green := color.NRGBA{G: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	yellow := color.NRGBA{R: 0xff, G: 0xff, A: 0xff}

	in := imgio.FromBytes(quadrantPNG(t, 150, red, green, blue, yellow))

	buf, err := New().Resize(context.Background(), in, 150)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}

	// An already-square input at the target size must come back
	// pixel-identical: no scaling, no crop, no resampling drift.
	img := decodeResult(t, buf)
	cases := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, red},
		{37, 37, red},
		{112, 37, green},
		{37, 112, blue},
		{112, 112, yellow},
		{74, 74, red},    // last pixel of the top-left quadrant
		{75, 75, yellow}, // first pixel of the bottom-right quadrant
		{149, 0, green},
		{0, 149, blue},
		{149, 149, yellow},
	}
	for _, tc := range cases {
		if got := pixelAt(t, img, tc.x, tc.y); got != tc.want {
			t.Errorf("pixel at (%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestResizeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	if err := os.WriteFile(path, pngBytes(t, 200, 100, color.NRGBA{B: 0xff, A: 0xff}), 0o644); err != nil {
		t.Fatal(err)
	}

	buf, err := New().Resize(context.Background(), imgio.FromFile(path), 64)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}

	img := decodeResult(t, buf)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("result = %dx%d, want 64x64", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestResizeInvalidSize(t *testing.T) {
	in := imgio.FromBytes(pngBytes(t, 10, 10, color.NRGBA{A: 0xff}))

	for _, size := range []int{0, -5} {
		if _, err := New().Resize(context.Background(), in, size); err == nil {
			t.Errorf("size %d: expected an error", size)
		}
	}
}

func TestResizeMissingFile(t *testing.T) {
	in := imgio.FromFile(filepath.Join(t.TempDir(), "nope.png"))

	_, err := New().Resize(context.Background(), in, 100)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}
