package game

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// borderWidth is the pixel gap between the window edge and the board.
const borderWidth = 48

// bannerHeight reserves room for the forced-selection prompt banner.
const bannerHeight = 36

// Game is the Ebiten host around the rule engine: it translates device
// input into board-space pointer events, runs the update turn, and renders
// the board. All game rules live in Board and its collaborators.
type Game struct {
	board *Board
	drag  *DragController

	width  int
	height int
	offX   float64 // screen offset of the board origin cell centre
	offY   float64

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
	mouseHeld     bool

	// Deterministic cosmetic shade per cell, via opensimplex noise.
	shades map[HexCoord]float64

	showHUD bool

	// dirty is set by the board's redraw trigger. Ebiten clears the screen
	// and calls Draw every frame regardless, so the flag is advisory for
	// this host; headless hosts use the same trigger to know when to
	// re-render.
	dirty bool
}

// New builds the host with the demo board.
func New() *Game {
	b := newDemoBoard()

	extX := hexSize*1.5*float64(b.Radius) + hexSize
	extY := math.Sqrt(3)*hexSize*float64(b.Radius) + hexSize
	g := &Game{
		board:    b,
		drag:     NewDragController(b),
		width:    int(2*extX) + 2*borderWidth,
		height:   int(2*extY) + 2*borderWidth + bannerHeight,
		offX:     extX + borderWidth,
		offY:     extY + borderWidth + bannerHeight,
		prevKeys: make(map[ebiten.Key]bool),
		showHUD:  true,
	}
	g.initShades(12345)
	b.SetRedraw(func() { g.dirty = true })
	return g
}

// newDemoBoard lays out a two-faction demo: movable pieces with the beacon
// transit reaction, a beacon chain per faction, a neutral shadow marker,
// and a dominant/subordinate pair sharing a cell.
func newDemoBoard() *Board {
	b := NewBoard(4)

	addMover := func(label string, owner, q, r, moveRange int) {
		b.AddPiece(&Piece{
			Label:     label,
			Owner:     owner,
			Kind:      KindPlain,
			Coord:     Hex(q, r),
			Movable:   true,
			MoveRange: moveRange,
			OnPlaced:  BeaconTransit,
			OnClick: func(b *Board, p *Piece) {
				b.Log().Add(b.Tick(), p.Label, "gesture", "inspect", coordString(p.Coord))
			},
		})
	}
	addBeacon := func(label string, owner, q, r, rotation int, mode LinkMode) {
		p := NewBeacon(owner, Hex(q, r), rotation, mode)
		p.Label = label
		b.AddPiece(p)
	}

	// Faction 0 (red), bottom half.
	addMover("R0", 0, -2, 3, 2)
	addMover("R1", 0, 0, 3, 3)
	addBeacon("RB0", 0, -3, 2, 0, LinkTwoWay)
	addBeacon("RB1", 0, -3, -1, 0, LinkTwoWay)
	addBeacon("RB2", 0, 1, 1, 5, LinkThreeWay)

	// Faction 1 (blue), top half.
	addMover("B0", 1, 2, -3, 2)
	addMover("B1", 1, 0, -3, 3)
	addBeacon("BB0", 1, 3, -2, 3, LinkTwoWay)
	addBeacon("BB1", 1, 3, 1, 3, LinkTwoWay)

	// Neutral shadow marker: never blocks anything.
	b.AddPiece(&Piece{Label: "sh", Owner: NoOwner, Kind: KindMarker, Coord: Hex(0, 0)})

	// Dominant/subordinate stack demo on one cell.
	b.AddPiece(&Piece{Label: "S0", Owner: 0, Kind: KindSubordinate, Coord: Hex(-1, 0), Movable: true, MoveRange: 1})
	b.AddPiece(&Piece{Label: "D0", Owner: 1, Kind: KindDominant, Coord: Hex(-1, 0), Movable: true, MoveRange: 1})

	return b
}

// initShades precomputes a subtle per-cell tint from deterministic noise.
func (g *Game) initShades(seed int64) {
	noise := opensimplex.NewNormalized(seed)
	g.shades = make(map[HexCoord]float64)
	for _, c := range g.board.AllCoords() {
		x, y := c.Pixel()
		g.shades[c] = noise.Eval2(x*0.01, y*0.01)
	}
}

// boardSpace converts a screen point into board-logical coordinates.
func (g *Game) boardSpace(mx, my int) (float64, float64) {
	return float64(mx) - g.offX, float64(my) - g.offY
}

func (g *Game) Update() error {
	g.board.Advance()
	g.board.Selection().Update(time.Now())
	g.handleKeys()
	g.handleMouse()
	return nil
}

// handleKeys processes edge-triggered key presses.
func (g *Game) handleKeys() {
	currentKeys := map[ebiten.Key]bool{}
	down := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// Escape: cancel an active forced selection.
	if down(ebiten.KeyEscape) && g.board.Selection().Active() {
		g.board.Selection().Cancel()
	}

	// R: rotate the beacon under the cursor one step clockwise.
	if down(ebiten.KeyR) {
		bx, by := g.boardSpace(ebiten.CursorPosition())
		if c, ok := g.board.CellAt(bx, by); ok {
			if beacon := g.board.beaconAt(c, nil); beacon != nil {
				beacon.Rotate(1)
				g.board.Log().Add(g.board.Tick(), beacon.Label, "piece", "rotate",
					fmt.Sprintf("rot=%d", beacon.Rotation()))
				g.board.requestRedraw()
			}
		}
	}

	// C: copy the debug report to the clipboard.
	if down(ebiten.KeyC) {
		if err := clipboard.WriteAll(g.board.DebugReport()); err != nil {
			log.Printf("clipboard copy failed: %v", err)
		}
	}

	// H: toggle the HUD legend.
	if down(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.prevKeys = currentKeys
}

// handleMouse feeds pointer events to the drag controller.
func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	bx, by := g.boardSpace(mx, my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// Cursor leaving the window aborts an in-flight drag.
	if mx < 0 || my < 0 || mx >= g.width || my >= g.height {
		g.drag.PointerLeave()
		g.prevMouseLeft = pressed
		return
	}

	switch {
	case pressed && !g.prevMouseLeft:
		g.drag.PointerDown(bx, by)
	case pressed && g.prevMouseLeft:
		g.drag.PointerMove(bx, by)
	case !pressed && g.prevMouseLeft:
		g.drag.PointerUp(bx, by)
	}
	g.prevMouseLeft = pressed
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
