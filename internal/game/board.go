package game

import "fmt"

// ChainConfig tunes beacon chain discovery.
type ChainConfig struct {
	// OwnerFiltered restricts chains to beacons of the starting beacon's
	// owner. Off, chains ignore ownership entirely.
	OwnerFiltered bool
}

// Board is the aggregate the host constructs and hands to collaborators:
// the grid shape, the occupancy index, the stacking resolver, the forced
// selection controller, and the event log. Nothing here is a process-wide
// singleton; everything reaches its dependencies through the Board.
type Board struct {
	Radius int

	occ       *Occupancy
	stacker   *Stacker
	selection *SelectionController
	chain     ChainConfig
	elog      *EventLog

	tick   int
	nextID int
	redraw func()
}

// NewBoard creates an empty hexagonal board of the given radius. Cells with
// max(|q|,|r|,|s|) <= radius are on the grid.
func NewBoard(radius int) *Board {
	b := &Board{
		Radius:  radius,
		occ:     NewOccupancy(),
		stacker: NewStacker(),
		chain:   ChainConfig{OwnerFiltered: true},
		elog:    NewEventLog(false),
	}
	b.selection = NewSelectionController(b.elog, &b.tick)
	return b
}

// Occupancy returns the board's occupancy index.
func (b *Board) Occupancy() *Occupancy { return b.occ }

// Stacker returns the board's stacking resolver.
func (b *Board) Stacker() *Stacker { return b.stacker }

// Selection returns the board's forced-selection controller.
func (b *Board) Selection() *SelectionController { return b.selection }

// Log returns the board's event log.
func (b *Board) Log() *EventLog { return b.elog }

// SetChainConfig replaces the beacon chain configuration.
func (b *Board) SetChainConfig(cfg ChainConfig) { b.chain = cfg }

// SetEventLog replaces the event log (the harness installs a verbose one).
func (b *Board) SetEventLog(l *EventLog) {
	b.elog = l
	b.selection.elog = l
}

// SetRedraw installs the host's redraw trigger. The core raises it after
// any state change a human should see.
func (b *Board) SetRedraw(fn func()) { b.redraw = fn }

func (b *Board) requestRedraw() {
	if b.redraw != nil {
		b.redraw()
	}
}

// Advance increments the board tick. The host calls it once per update
// turn; the tick only timestamps log entries.
func (b *Board) Advance() { b.tick++ }

// Tick returns the current board tick.
func (b *Board) Tick() int { return b.tick }

// ValidCoord reports whether the cell is on the grid.
func (b *Board) ValidCoord(c HexCoord) bool {
	if c.Q+c.R+c.S != 0 {
		return false
	}
	return Distance(HexCoord{}, c) <= b.Radius
}

// AllCoords enumerates every cell on the grid.
func (b *Board) AllCoords() []HexCoord {
	var out []HexCoord
	for q := -b.Radius; q <= b.Radius; q++ {
		for r := -b.Radius; r <= b.Radius; r++ {
			c := Hex(q, r)
			if b.ValidCoord(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// CellAt returns the grid cell nearest to the board-space point, or false
// when no cell centre lies within one hex radius.
func (b *Board) CellAt(x, y float64) (HexCoord, bool) {
	c := CoordAt(x, y)
	if !b.ValidCoord(c) {
		return HexCoord{}, false
	}
	cx, cy := c.Pixel()
	dx, dy := x-cx, y-cy
	if dx*dx+dy*dy > hexSize*hexSize {
		return HexCoord{}, false
	}
	return c, true
}

// AddPiece registers the piece, assigning an id and label if unset, and
// resolves its z-order against the cell's existing occupants.
func (b *Board) AddPiece(p *Piece) {
	p.ID = b.nextID
	b.nextID++
	if p.Label == "" {
		p.Label = fmt.Sprintf("P%d", p.ID)
	}
	co := b.occ.At(p.Coord)
	b.occ.Add(p)
	b.stacker.ResolveZIndex(p, co)
	b.elog.Add(b.tick, p.Label, "piece", "add",
		fmt.Sprintf("%s %s z=%d", p.Kind, coordString(p.Coord), p.ZIndex))
	b.requestRedraw()
}

// RemovePiece takes the piece off the board (captured or recycled).
func (b *Board) RemovePiece(p *Piece) {
	b.occ.Remove(p)
	b.elog.Add(b.tick, p.Label, "piece", "remove", coordString(p.Coord))
	b.requestRedraw()
}

// MovePiece relocates the piece and records the move. Stacking is the
// caller's concern: the drag controller and transit hook restack after any
// reaction has run.
func (b *Board) MovePiece(p *Piece, to HexCoord) {
	from := p.Coord
	b.occ.Move(p, to)
	b.elog.Add(b.tick, p.Label, "move", "commit",
		fmt.Sprintf("%s -> %s", coordString(from), coordString(to)))
	b.requestRedraw()
}

// Restack re-resolves the piece's z-order against its current co-occupants
// (excluding itself).
func (b *Board) Restack(p *Piece) {
	var co []*Piece
	for _, q := range b.occ.At(p.Coord) {
		if q != p {
			co = append(co, q)
		}
	}
	z := b.stacker.ResolveZIndex(p, co)
	b.elog.AddVerbose(b.tick, p.Label, "stack", "resolve", fmt.Sprintf("z=%d", z))
}

// LegalDestinations returns the cells the piece may move to: up to
// MoveRange steps outward along each of the six directions, stopping each
// ray at the first blocked or off-grid cell, minus the piece's own vetoes.
// The origin is always a legal (no-op) destination. A piece-specific
// override replaces the ray walk entirely but still honours vetoes.
func (b *Board) LegalDestinations(p *Piece) map[HexCoord]bool {
	out := map[HexCoord]bool{p.Coord: true}
	if p.LegalMovesFn != nil {
		for _, c := range p.LegalMovesFn(b, p) {
			if b.ValidCoord(c) && !p.forbids(c) {
				out[c] = true
			}
		}
		return out
	}
	for dir := 0; dir < 6; dir++ {
		c := p.Coord
		for step := 0; step < p.MoveRange; step++ {
			c = Neighbor(c, dir)
			if !b.ValidCoord(c) || b.occ.IsBlocked(p, c) {
				break
			}
			if !p.forbids(c) {
				out[c] = true
			}
		}
	}
	return out
}
