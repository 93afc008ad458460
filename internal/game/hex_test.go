package game

import "testing"

func TestNeighborPreservesCubeInvariant(t *testing.T) {
	b := NewBoard(4)
	for _, c := range b.AllCoords() {
		for dir := -6; dir < 12; dir++ {
			n := Neighbor(c, dir)
			if n.Q+n.R+n.S != 0 {
				t.Fatalf("Neighbor(%v, %d) = %v violates q+r+s=0", c, dir, n)
			}
		}
	}
}

func TestNeighborDirectionNormalization(t *testing.T) {
	c := Hex(1, -2)
	for dir := 0; dir < 6; dir++ {
		if Neighbor(c, dir+6) != Neighbor(c, dir) {
			t.Errorf("dir %d+6 and dir %d disagree", dir, dir)
		}
		if Neighbor(c, dir-6) != Neighbor(c, dir) {
			t.Errorf("dir %d-6 and dir %d disagree", dir, dir)
		}
	}
}

func TestOpposite(t *testing.T) {
	for dir := 0; dir < 6; dir++ {
		if got := Opposite(Opposite(dir)); got != dir {
			t.Errorf("Opposite(Opposite(%d)) = %d", dir, got)
		}
		a := hexDirections[dir]
		b := hexDirections[Opposite(dir)]
		if a.Q+b.Q != 0 || a.R+b.R != 0 || a.S+b.S != 0 {
			t.Errorf("direction %d and its opposite do not cancel", dir)
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b HexCoord
		want int
	}{
		{Hex(0, 0), Hex(0, 0), 0},
		{Hex(0, 0), Hex(0, 1), 1},
		{Hex(0, 0), Hex(2, -1), 2},
		{Hex(0, 0), Hex(2, 2), 4},
		{Hex(-3, 1), Hex(3, -1), 6},
	}
	for _, tc := range cases {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := Distance(tc.b, tc.a); got != tc.want {
			t.Errorf("Distance(%v, %v) = %d, want %d (symmetry)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestPixelRoundTrip(t *testing.T) {
	b := NewBoard(4)
	for _, c := range b.AllCoords() {
		x, y := c.Pixel()
		if got := CoordAt(x, y); got != c {
			t.Errorf("CoordAt(Pixel(%v)) = %v", c, got)
		}
	}
}

func TestCoordAtSnapsWithinCell(t *testing.T) {
	c := Hex(2, -1)
	x, y := c.Pixel()
	// Points well inside the hex snap to its centre.
	offsets := [][2]float64{{0, 0}, {hexSize * 0.4, 0}, {0, -hexSize * 0.4}, {-hexSize * 0.3, hexSize * 0.3}}
	for _, off := range offsets {
		if got := CoordAt(x+off[0], y+off[1]); got != c {
			t.Errorf("CoordAt offset %v = %v, want %v", off, got, c)
		}
	}
}
