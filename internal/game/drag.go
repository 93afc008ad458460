package game

import (
	"fmt"
	"time"
)

// Gesture tuning. Distances are board-space pixels.
const (
	pieceRadius      = 14.0 // draw radius of a piece
	hitRadiusFactor  = 1.6  // pointer-down hit test: distance <= radius * factor
	dragStartDist    = 6.0  // movement before a press becomes a drag
	clickMaxDuration = 300 * time.Millisecond
	liftZIndex       = 1 << 20 // transient z while a piece is being dragged
)

type dragPhase int

const (
	dragIdle dragPhase = iota
	dragPending
	dragDragging
)

// DragController is the single entry point for raw pointer input. It
// classifies each pointer-down-to-up cycle as a click or a drag, validates
// drops against the mover's cached legal-destination set, and on commit
// triggers the stacking resolver and the piece's post-placement reaction.
// While a forced selection session is active, pointer-downs route to
// Submit instead and ordinary gesture handling is suppressed.
type DragController struct {
	board *Board

	phase   dragPhase
	piece   *Piece
	pressX  float64
	pressY  float64
	pressAt time.Time
	moved   bool // press travelled past the drag threshold
	offX    float64 // press point minus piece centre
	offY    float64
	visX    float64 // visual position while dragging
	visY    float64
	legal   map[HexCoord]bool // computed once per drag

	now func() time.Time
}

// NewDragController creates a controller for the board.
func NewDragController(b *Board) *DragController {
	return &DragController{board: b, now: time.Now}
}

// SetClock injects the time source used for click classification.
func (d *DragController) SetClock(now func() time.Time) {
	d.now = now
}

// Dragging reports whether a drag is in progress, and for the host's
// benefit the piece and its visual position.
func (d *DragController) Dragging() (*Piece, float64, float64, bool) {
	if d.phase != dragDragging {
		return nil, 0, 0, false
	}
	return d.piece, d.visX, d.visY, true
}

// LegalSet returns the active drag's cached destination set, or nil.
func (d *DragController) LegalSet() map[HexCoord]bool {
	if d.phase != dragDragging {
		return nil
	}
	return d.legal
}

// PointerDown begins a gesture at the board-space point.
func (d *DragController) PointerDown(x, y float64) {
	if d.board.selection.Active() {
		if c, ok := d.board.CellAt(x, y); ok {
			d.board.selection.Submit(c)
			d.board.requestRedraw()
		}
		return
	}
	if d.phase != dragIdle {
		return
	}
	p := d.hitTest(x, y)
	if p == nil {
		return
	}
	px, py := p.Coord.Pixel()
	d.phase = dragPending
	d.piece = p
	d.pressX, d.pressY = x, y
	d.pressAt = d.now()
	d.offX, d.offY = x-px, y-py
	d.board.elog.AddVerbose(d.board.tick, p.Label, "gesture", "press",
		fmt.Sprintf("(%.0f,%.0f)", x, y))
}

// PointerMove updates an in-flight gesture. A pending press that travels
// past the distance threshold on a movable piece becomes a drag: the
// piece's zIndex is snapshotted, it is lifted above everything, and its
// legal destinations are computed once for the whole drag. The logical
// coordinate stays unchanged until drop.
func (d *DragController) PointerMove(x, y float64) {
	switch d.phase {
	case dragPending:
		dx, dy := x-d.pressX, y-d.pressY
		if dx*dx+dy*dy < dragStartDist*dragStartDist {
			return
		}
		d.moved = true
		if !d.piece.Movable {
			return
		}
		d.piece.originalZIndex = d.piece.ZIndex
		d.piece.ZIndex = liftZIndex
		d.legal = d.board.LegalDestinations(d.piece)
		d.phase = dragDragging
		d.visX, d.visY = x-d.offX, y-d.offY
		d.board.elog.AddVerbose(d.board.tick, d.piece.Label, "gesture", "drag-start", "")
		d.board.requestRedraw()
	case dragDragging:
		d.visX, d.visY = x-d.offX, y-d.offY
		d.board.requestRedraw()
	}
}

// PointerUp ends the gesture: a short, still press classifies as a click; a
// drag resolves its drop cell. Illegal destinations revert silently.
func (d *DragController) PointerUp(x, y float64) {
	switch d.phase {
	case dragPending:
		p := d.piece
		moved := d.moved
		d.reset()
		if !moved && d.now().Sub(d.pressAt) < clickMaxDuration {
			d.board.elog.Add(d.board.tick, p.Label, "gesture", "click", "")
			if p.OnClick != nil {
				p.OnClick(d.board, p)
			}
		}
	case dragDragging:
		d.drop(x, y)
	}
}

// PointerLeave aborts a drag as if the drop were invalid.
func (d *DragController) PointerLeave() {
	if d.phase == dragDragging {
		d.revert()
	}
	d.reset()
}

func (d *DragController) drop(x, y float64) {
	p := d.piece
	legal := d.legal
	d.reset()

	cell, ok := d.board.CellAt(x, y)
	if !ok || !legal[cell] {
		d.revertPiece(p)
		d.board.elog.Add(d.board.tick, p.Label, "gesture", "drop-revert", "")
		d.board.requestRedraw()
		return
	}

	from := p.Coord
	if cell != from {
		d.board.MovePiece(p, cell)
		if p.OnPlaced != nil {
			p.OnPlaced(d.board, p, from)
		}
	}
	p.ZIndex = p.originalZIndex
	p.originalZIndex = 0
	d.board.Restack(p)
	d.board.requestRedraw()
}

func (d *DragController) revert() {
	d.revertPiece(d.piece)
	d.board.elog.Add(d.board.tick, d.piece.Label, "gesture", "drop-revert", "")
	d.board.requestRedraw()
}

func (d *DragController) revertPiece(p *Piece) {
	p.ZIndex = p.originalZIndex
	p.originalZIndex = 0
}

// hitTest picks the highest-z piece whose centre is within the hit radius
// of the point.
func (d *DragController) hitTest(x, y float64) *Piece {
	limit := pieceRadius * hitRadiusFactor
	var best *Piece
	for _, p := range d.board.occ.Pieces() {
		px, py := p.Coord.Pixel()
		dx, dy := x-px, y-py
		if dx*dx+dy*dy > limit*limit {
			continue
		}
		if best == nil || p.ZIndex > best.ZIndex {
			best = p
		}
	}
	return best
}

func (d *DragController) reset() {
	d.phase = dragIdle
	d.piece = nil
	d.legal = nil
	d.moved = false
}
