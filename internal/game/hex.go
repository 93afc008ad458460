package game

import "math"

// hexSize is the pixel distance from a cell centre to each of its corners.
// Flat-top orientation: direction 0 points straight up the screen.
const hexSize = 34.0

// HexCoord is a cube coordinate on the hex grid. Valid coordinates satisfy
// Q+R+S == 0; every constructor and neighbour operation preserves that.
type HexCoord struct {
	Q, R, S int
}

// Hex builds a coordinate from the two free axes, deriving S.
func Hex(q, r int) HexCoord {
	return HexCoord{Q: q, R: r, S: -q - r}
}

// hexDirections lists the six neighbour deltas, indexed clockwise starting
// from straight up.
var hexDirections = [6]HexCoord{
	{0, -1, 1},  // 0: up
	{1, -1, 0},  // 1: up-right
	{1, 0, -1},  // 2: down-right
	{0, 1, -1},  // 3: down
	{-1, 1, 0},  // 4: down-left
	{-1, 0, 1},  // 5: up-left
}

// NormalizeDirection maps any int onto 0..5.
func NormalizeDirection(dir int) int {
	return ((dir % 6) + 6) % 6
}

// Opposite returns the direction pointing the other way.
func Opposite(dir int) int {
	return NormalizeDirection(dir + 3)
}

// Neighbor returns the adjacent cell in the given direction. Directions
// outside 0..5 wrap around.
func Neighbor(c HexCoord, dir int) HexCoord {
	d := hexDirections[NormalizeDirection(dir)]
	return HexCoord{Q: c.Q + d.Q, R: c.R + d.R, S: c.S + d.S}
}

// Distance returns the hex distance between two coordinates: the largest
// absolute per-axis difference in cube space.
func Distance(a, b HexCoord) int {
	dq := absInt(a.Q - b.Q)
	dr := absInt(a.R - b.R)
	ds := absInt(a.S - b.S)
	m := dq
	if dr > m {
		m = dr
	}
	if ds > m {
		m = ds
	}
	return m
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Pixel returns the board-space centre of the cell (flat-top layout).
func (c HexCoord) Pixel() (float64, float64) {
	x := hexSize * 1.5 * float64(c.Q)
	y := hexSize * (math.Sqrt(3)/2*float64(c.Q) + math.Sqrt(3)*float64(c.R))
	return x, y
}

// CoordAt returns the cell whose centre is nearest to the board-space point.
// Fractional axial coordinates are snapped with cube rounding so ties on
// cell borders resolve consistently.
func CoordAt(x, y float64) HexCoord {
	fq := (2.0 / 3.0) * x / hexSize
	fr := (-1.0/3.0*x + math.Sqrt(3)/3.0*y) / hexSize
	return cubeRound(fq, fr, -fq-fr)
}

func cubeRound(fq, fr, fs float64) HexCoord {
	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)

	// The axis with the largest rounding error is recomputed from the
	// other two so q+r+s stays zero.
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return HexCoord{Q: int(q), R: int(r), S: int(s)}
}
