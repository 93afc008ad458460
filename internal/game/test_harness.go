package game

import (
	"fmt"
	"time"
)

// TestBoard is a headless harness used by tests and cmd/board-report. It
// mirrors the host's update loop but has no Ebiten dependency: gestures are
// synthesized as pointer events at cell centres, and time is a fake clock
// advanced explicitly.
type TestBoard struct {
	Board *Board
	Drag  *DragController
	Clock *FakeClock

	pieces map[string]*Piece
}

// FakeClock is a deterministic time source.
type FakeClock struct {
	t time.Time
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time { return c.t }

// Advance moves the fake time forward.
func (c *FakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// boardOptionKind controls the pass in which an option is applied.
type boardOptionKind int

const (
	boardOptInfra boardOptionKind = iota // radius, log, chain config
	boardOptPiece                        // add pieces
	boardOptHook                         // wire hooks to existing pieces
)

// BoardOption is a builder function applied to a TestBoard during
// construction.
type BoardOption struct {
	kind boardOptionKind
	fn   func(*TestBoard)
}

// WithRadius sets the board radius.
func WithRadius(r int) BoardOption {
	return BoardOption{boardOptInfra, func(tb *TestBoard) {
		tb.Board.Radius = r
	}}
}

// WithVerboseLog installs a verbose event log.
func WithVerboseLog() BoardOption {
	return BoardOption{boardOptInfra, func(tb *TestBoard) {
		tb.Board.SetEventLog(NewEventLog(true))
	}}
}

// WithOwnerAgnosticChains turns off ownership filtering in chain discovery.
func WithOwnerAgnosticChains() BoardOption {
	return BoardOption{boardOptInfra, func(tb *TestBoard) {
		tb.Board.SetChainConfig(ChainConfig{OwnerFiltered: false})
	}}
}

// WithPiece adds a piece of the given kind. Markers are placed immovable.
func WithPiece(label string, kind PieceKind, owner, q, r, moveRange int) BoardOption {
	return BoardOption{boardOptPiece, func(tb *TestBoard) {
		p := &Piece{
			Label:     label,
			Owner:     owner,
			Kind:      kind,
			Coord:     Hex(q, r),
			Movable:   kind != KindMarker,
			MoveRange: moveRange,
		}
		tb.Board.AddPiece(p)
		tb.pieces[label] = p
	}}
}

// WithBeacon adds a beacon at (q,r) facing rotation with the given link
// mode.
func WithBeacon(label string, owner, q, r, rotation int, mode LinkMode) BoardOption {
	return BoardOption{boardOptPiece, func(tb *TestBoard) {
		p := NewBeacon(owner, Hex(q, r), rotation, mode)
		p.Label = label
		tb.Board.AddPiece(p)
		tb.pieces[label] = p
	}}
}

// WithTransit installs the beacon transit reaction on a previously added
// piece.
func WithTransit(label string) BoardOption {
	return BoardOption{boardOptHook, func(tb *TestBoard) {
		tb.mustPiece(label).OnPlaced = BeaconTransit
	}}
}

// WithForbidden vetoes a destination for a previously added piece.
func WithForbidden(label string, q, r int) BoardOption {
	return BoardOption{boardOptHook, func(tb *TestBoard) {
		p := tb.mustPiece(label)
		p.Forbidden = append(p.Forbidden, Hex(q, r))
	}}
}

// NewTestBoard builds a harness. Options apply in phases: infrastructure
// first, then pieces, then hooks on those pieces.
func NewTestBoard(opts ...BoardOption) *TestBoard {
	tb := &TestBoard{
		Board:  NewBoard(4),
		Clock:  &FakeClock{t: time.Unix(1_700_000_000, 0)},
		pieces: make(map[string]*Piece),
	}
	tb.Drag = NewDragController(tb.Board)
	tb.Drag.SetClock(tb.Clock.Now)
	tb.Board.Selection().SetClock(tb.Clock.Now)

	for _, phase := range []boardOptionKind{boardOptInfra, boardOptPiece, boardOptHook} {
		for _, o := range opts {
			if o.kind == phase {
				o.fn(tb)
			}
		}
	}
	return tb
}

// Piece returns the labeled piece, or nil.
func (tb *TestBoard) Piece(label string) *Piece {
	return tb.pieces[label]
}

func (tb *TestBoard) mustPiece(label string) *Piece {
	p := tb.pieces[label]
	if p == nil {
		panic(fmt.Sprintf("test harness: no piece labeled %q", label))
	}
	return p
}

// Advance moves the fake clock and runs one update turn (tick + timeout
// check), the way the host loop would.
func (tb *TestBoard) Advance(d time.Duration) {
	tb.Clock.Advance(d)
	tb.Board.Advance()
	tb.Board.Selection().Update(tb.Clock.Now())
}

// DragTo performs a full press-move-release gesture taking the labeled
// piece to the target cell centre.
func (tb *TestBoard) DragTo(label string, to HexCoord) {
	p := tb.mustPiece(label)
	sx, sy := p.Coord.Pixel()
	ex, ey := to.Pixel()
	tb.Drag.PointerDown(sx, sy)
	// A first small move past the drag threshold, then the real one.
	tb.Drag.PointerMove(sx+dragStartDist+1, sy)
	tb.Drag.PointerMove(ex, ey)
	tb.Drag.PointerUp(ex, ey)
}

// Click performs a press-release on the labeled piece with no movement.
func (tb *TestBoard) Click(label string) {
	p := tb.mustPiece(label)
	x, y := p.Coord.Pixel()
	tb.Drag.PointerDown(x, y)
	tb.Drag.PointerUp(x, y)
}

// SubmitCell offers a cell to the active selection session the way a
// pointer press on that cell would.
func (tb *TestBoard) SubmitCell(c HexCoord) {
	x, y := c.Pixel()
	tb.Drag.PointerDown(x, y)
	tb.Drag.PointerUp(x, y)
}
