package game

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var ownerColors = map[int]color.RGBA{
	0:       {R: 200, G: 70, B: 55, A: 255},  // red faction
	1:       {R: 60, G: 110, B: 210, A: 255}, // blue faction
	NoOwner: {R: 120, G: 120, B: 110, A: 255},
}

// Draw renders the full scene. The screen arrives cleared each frame, so
// there is no partial-redraw path; g.dirty is acknowledged rather than
// gating work.
func (g *Game) Draw(screen *ebiten.Image) {
	g.dirty = false
	screen.Fill(color.RGBA{R: 14, G: 16, B: 14, A: 255})

	for _, c := range g.board.AllCoords() {
		g.drawCell(screen, c)
	}

	g.drawPieces(screen)
	g.drawDragGhost(screen)
	g.drawBanner(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// drawCell renders one hex: a noise-shaded fill, the outline, and any
// highlight for legal drop cells or active selection targets.
func (g *Game) drawCell(screen *ebiten.Image, c HexCoord) {
	cx, cy := g.cellScreen(c)

	// Subtle ground variation from the precomputed noise shade.
	shade := uint8(26 + 10*g.shades[c])
	fill := color.RGBA{R: shade, G: shade + 8, B: shade, A: 255}

	if legal := g.drag.LegalSet(); legal != nil && legal[c] {
		fill = color.RGBA{R: 34, G: 62, B: 38, A: 255}
	}
	if g.board.Selection().IsTarget(c) {
		fill = color.RGBA{R: 70, G: 64, B: 24, A: 255}
	}

	vector.FillCircle(screen, float32(cx), float32(cy), float32(hexSize)*0.88, fill, false)

	outline := color.RGBA{R: 52, G: 66, B: 52, A: 255}
	if g.board.Selection().IsTarget(c) {
		outline = color.RGBA{R: 220, G: 200, B: 70, A: 255}
	}
	corners := hexCorners(cx, cy)
	for i := 0; i < 6; i++ {
		x0, y0 := corners[i][0], corners[i][1]
		x1, y1 := corners[(i+1)%6][0], corners[(i+1)%6][1]
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1.0, outline, false)
	}
}

// drawPieces renders every piece in zIndex order, skipping the one being
// dragged (it is drawn last, at the pointer).
func (g *Game) drawPieces(screen *ebiten.Image) {
	dragged, _, _, _ := g.drag.Dragging()

	pieces := g.board.Occupancy().Pieces()
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].ZIndex < pieces[j].ZIndex })
	for _, p := range pieces {
		if p == dragged {
			continue
		}
		x, y := g.cellScreen(p.Coord)
		g.drawPiece(screen, p, x, y)
	}
}

func (g *Game) drawPiece(screen *ebiten.Image, p *Piece, x, y float64) {
	col := ownerColors[p.Owner]

	switch p.Kind {
	case KindMarker:
		// Shadow placeholder: faint and small.
		vector.FillCircle(screen, float32(x), float32(y), pieceRadius*0.6,
			color.RGBA{R: col.R, G: col.G, B: col.B, A: 70}, false)
		return
	case KindBeacon:
		vector.FillCircle(screen, float32(x), float32(y), pieceRadius*0.8, col, false)
		// Spokes along the link directions.
		for _, dir := range p.linkDirections() {
			dx, dy := directionVector(dir)
			vector.StrokeLine(screen, float32(x), float32(y),
				float32(x+dx*hexSize*0.8), float32(y+dy*hexSize*0.8),
				2.0, color.RGBA{R: 235, G: 225, B: 140, A: 200}, false)
		}
	case KindDominant:
		vector.FillCircle(screen, float32(x), float32(y), pieceRadius, col, false)
		vector.StrokeCircle(screen, float32(x), float32(y), pieceRadius+3,
			2.0, color.RGBA{R: 240, G: 240, B: 240, A: 220}, false)
	case KindSubordinate:
		vector.FillCircle(screen, float32(x), float32(y), pieceRadius, col, false)
		vector.FillCircle(screen, float32(x), float32(y), pieceRadius*0.4,
			color.RGBA{R: 20, G: 20, B: 20, A: 255}, false)
	default:
		vector.FillCircle(screen, float32(x), float32(y), pieceRadius, col, false)
	}

	ebitenutil.DebugPrintAt(screen, p.Label, int(x)-len(p.Label)*3, int(y)-pieceRadius-16)
}

// drawDragGhost renders the dragged piece tracking the pointer.
func (g *Game) drawDragGhost(screen *ebiten.Image) {
	p, vx, vy, ok := g.drag.Dragging()
	if !ok {
		return
	}
	x, y := vx+g.offX, vy+g.offY
	vector.StrokeCircle(screen, float32(x), float32(y), pieceRadius+4,
		1.5, color.RGBA{R: 255, G: 240, B: 60, A: 200}, false)
	g.drawPiece(screen, p, x, y)
}

// drawBanner renders the forced-selection prompt across the top.
func (g *Game) drawBanner(screen *ebiten.Image) {
	sel := g.board.Selection()
	if !sel.Active() {
		return
	}
	vector.FillRect(screen, 0, 0, float32(g.width), bannerHeight,
		color.RGBA{R: 40, G: 36, B: 10, A: 235}, false)
	vector.StrokeLine(screen, 0, bannerHeight, float32(g.width), bannerHeight,
		1.0, color.RGBA{R: 220, G: 200, B: 70, A: 255}, false)
	msg := sel.Prompt() + "   [Esc] cancel"
	text.Draw(screen, msg, basicfont.Face7x13, 12, 23, color.RGBA{R: 240, G: 230, B: 170, A: 255})
}

// drawHUD renders the key legend in the bottom-left corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		"drag: move piece   click: inspect",
		"[R] rotate beacon under cursor",
		"[C] copy board report  [H] toggle HUD",
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 8, g.height-14*(len(lines)-i)-6)
	}
}

// cellScreen converts a cell to screen coordinates.
func (g *Game) cellScreen(c HexCoord) (float64, float64) {
	x, y := c.Pixel()
	return x + g.offX, y + g.offY
}

// hexCorners returns the six corner points of a flat-top hex at (cx, cy).
func hexCorners(cx, cy float64) [6][2]float64 {
	var out [6][2]float64
	for i := 0; i < 6; i++ {
		a := math.Pi / 3 * float64(i)
		out[i] = [2]float64{cx + hexSize*math.Cos(a), cy + hexSize*math.Sin(a)}
	}
	return out
}

// directionVector returns the unit vector of a hex direction in board
// space.
func directionVector(dir int) (float64, float64) {
	d := hexDirections[NormalizeDirection(dir)]
	x := 1.5 * float64(d.Q)
	y := math.Sqrt(3)/2*float64(d.Q) + math.Sqrt(3)*float64(d.R)
	n := math.Hypot(x, y)
	return x / n, y / n
}
