package collage

import "testing"

func TestGridSizeIsCeilSqrt(t *testing.T) {
	cases := []struct {
		count, want int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 2},
		{5, 3},
		{9, 3},
		{10, 4},
		{16, 4},
		{17, 5},
		{25, 5},
	}

	for _, tc := range cases {
		g := gridFor(tc.count, 1000, 0)
		if g.Size != tc.want {
			t.Errorf("gridFor(%d): size = %d, want %d", tc.count, g.Size, tc.want)
		}
	}
}

func TestTileSize(t *testing.T) {
	cases := []struct {
		name            string
		count           int
		output, padding int
		wantTile        int
	}{
		{"4 images, 400px, 10px padding", 4, 400, 10, 185},
		{"3 images, 300px, 5px padding", 3, 300, 5, 142},
		{"9 images, 600px, 15px padding", 9, 600, 15, 180},
		{"1 image, 200px, no padding", 1, 200, 0, 200},
		{"padding swallows the canvas", 1, 10, 50, -90},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := gridFor(tc.count, tc.output, tc.padding)
			if g.TileSize != tc.wantTile {
				t.Errorf("tile size = %d, want %d", g.TileSize, tc.wantTile)
			}
		})
	}
}

func TestCellPlacement(t *testing.T) {
	g := grid{Size: 2, TileSize: 185, Padding: 10}

	cases := []struct {
		index     int
		left, top int
	}{
		{0, 10, 10},
		{1, 205, 10},
		{2, 10, 205},
		{3, 205, 205},
	}

	for _, tc := range cases {
		left, top := g.cell(tc.index)
		if left != tc.left || top != tc.top {
			t.Errorf("cell(%d) = (%d, %d), want (%d, %d)", tc.index, left, top, tc.left, tc.top)
		}
	}
}

func TestCellPlacementNoPadding(t *testing.T) {
	g := grid{Size: 3, TileSize: 100, Padding: 0}

	left, top := g.cell(4) // center of a 3x3 grid
	if left != 100 || top != 100 {
		t.Errorf("cell(4) = (%d, %d), want (100, 100)", left, top)
	}

	left, top = g.cell(8) // last cell
	if left != 200 || top != 200 {
		t.Errorf("cell(8) = (%d, %d), want (200, 200)", left, top)
	}
}
