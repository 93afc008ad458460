package game

import "sort"

// Occupancy maps board cells to the pieces currently on them. It is the one
// shared mutable resource of the engine: every component queries it rather
// than keeping its own copy of "what is where". All mutation happens inside
// a single event-handler turn, so no locking.
type Occupancy struct {
	cells map[HexCoord][]*Piece
	count int
}

// NewOccupancy creates an empty index.
func NewOccupancy() *Occupancy {
	return &Occupancy{cells: make(map[HexCoord][]*Piece)}
}

// Add registers the piece at its current coordinate.
func (o *Occupancy) Add(p *Piece) {
	o.cells[p.Coord] = append(o.cells[p.Coord], p)
	o.count++
}

// Remove takes the piece out of the index. Removing a piece that is not
// registered is a no-op.
func (o *Occupancy) Remove(p *Piece) {
	list := o.cells[p.Coord]
	for i, q := range list {
		if q == p {
			o.cells[p.Coord] = append(list[:i], list[i+1:]...)
			if len(o.cells[p.Coord]) == 0 {
				delete(o.cells, p.Coord)
			}
			o.count--
			return
		}
	}
}

// Move relocates the piece to a new cell, keeping the invariant that it
// appears in exactly the entry matching its coordinate.
func (o *Occupancy) Move(p *Piece, to HexCoord) {
	o.Remove(p)
	p.Coord = to
	o.Add(p)
}

// At returns the pieces on the cell ordered by zIndex ascending. The slice
// is a copy; callers may keep it across mutations.
func (o *Occupancy) At(c HexCoord) []*Piece {
	list := o.cells[c]
	if len(list) == 0 {
		return nil
	}
	out := make([]*Piece, len(list))
	copy(out, list)
	sort.Slice(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}

// Contains reports whether the piece is still live in the index at its
// current coordinate. Hooks that resume after a suspension point use this
// to re-validate before mutating.
func (o *Occupancy) Contains(p *Piece) bool {
	for _, q := range o.cells[p.Coord] {
		if q == p {
			return true
		}
	}
	return false
}

// IsBlocked reports whether the cell blocks the moving piece. A cell blocks
// when it holds any occupant that is neither the mover itself, a beacon,
// nor a marker. Pass a nil mover for the generic passability test used by
// beacon walks.
func (o *Occupancy) IsBlocked(mover *Piece, c HexCoord) bool {
	for _, q := range o.cells[c] {
		if q == mover {
			continue
		}
		if !q.passable() {
			return true
		}
	}
	return false
}

// Len returns the number of registered pieces.
func (o *Occupancy) Len() int {
	return o.count
}

// Pieces returns every registered piece, ordered by cell then zIndex. Used
// by rendering and reports.
func (o *Occupancy) Pieces() []*Piece {
	out := make([]*Piece, 0, o.count)
	for _, list := range o.cells {
		out = append(out, list...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ZIndex != out[j].ZIndex {
			return out[i].ZIndex < out[j].ZIndex
		}
		return out[i].ID < out[j].ID
	})
	return out
}
