package game

import (
	"fmt"
	"time"
)

// transitTimeout caps how long a beacon-travel selection stays open before
// it behaves as a cancellation.
const transitTimeout = 30 * time.Second

// NewBeacon builds a beacon piece: immovable, owner-linked, facing the
// given direction.
func NewBeacon(owner int, c HexCoord, rotation int, mode LinkMode) *Piece {
	return &Piece{
		Owner:    owner,
		Kind:     KindBeacon,
		Coord:    c,
		rotation: NormalizeDirection(rotation),
		LinkMode: mode,
	}
}

// FindChain returns every beacon transitively reachable from start through
// directional links, starting beacon included, in breadth-first order. A
// walk along a link direction passes through empty and marker-only cells,
// stops at the grid edge or any blocking occupant, and continues into a
// beacon only when ownership filtering allows it. Pure query: no side
// effects, safe to call at any time.
func (b *Board) FindChain(start *Piece) []*Piece {
	visited := map[HexCoord]bool{start.Coord: true}
	queue := []*Piece{start}
	var chain []*Piece

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		chain = append(chain, cur)

		for _, dir := range cur.linkDirections() {
			// A direction whose first step was already visited is
			// abandoned entirely; no re-walking through a visited cell.
			if visited[Neighbor(cur.Coord, dir)] {
				continue
			}
			c := cur.Coord
			for {
				c = Neighbor(c, dir)
				if !b.ValidCoord(c) || b.occ.IsBlocked(nil, c) {
					break
				}
				next := b.beaconAt(c, nil)
				if next == nil {
					continue // empty or marker-only: keep walking
				}
				if !b.chain.OwnerFiltered || next.Owner == start.Owner {
					if !visited[c] {
						visited[c] = true
						queue = append(queue, next)
					}
					break
				}
				// Foreign-owned beacons are passable; walk on through.
			}
		}
	}
	return chain
}

// beaconAt returns the cell's beacon when exactly one non-marker occupant
// is present and it is a beacon, else nil. The ignore piece, if any, does
// not count as an occupant; the transit hook passes the piece that just
// landed on the cell.
func (b *Board) beaconAt(c HexCoord, ignore *Piece) *Piece {
	var found *Piece
	for _, q := range b.occ.At(c) {
		if q == ignore || q.Kind == KindMarker {
			continue
		}
		if q.Kind != KindBeacon || found != nil {
			return nil
		}
		found = q
	}
	return found
}

// BeaconTransit is the standard post-placement reaction: a piece landing on
// a beacon cell is forced to pick one beacon from the chain and travels
// there. Install it as a piece's OnPlaced hook.
//
// The selection callback resumes after user interaction, so it re-validates
// occupancy before teleporting: the piece may have been removed and the
// chosen cell may have become blocked in the meantime.
func BeaconTransit(b *Board, p *Piece, from HexCoord) {
	gate := b.beaconAt(p.Coord, p)
	if gate == nil {
		return
	}
	if b.chain.OwnerFiltered && gate.Owner != p.Owner {
		return
	}

	var targets []HexCoord
	for _, bc := range b.FindChain(gate) {
		if bc != gate {
			targets = append(targets, bc.Coord)
		}
	}
	if len(targets) == 0 {
		return
	}

	_, err := b.selection.Begin(targets, "Choose a beacon to travel to", SelectionOptions{
		Cancelable: true,
		Timeout:    transitTimeout,
		OnResolve: func(c HexCoord) {
			if !b.occ.Contains(p) {
				b.elog.Add(b.tick, p.Label, "chain", "stale", "piece gone before transit")
				return
			}
			if b.occ.IsBlocked(p, c) {
				b.elog.Add(b.tick, p.Label, "chain", "stale", "destination blocked")
				return
			}
			b.MovePiece(p, c)
			b.Restack(p)
			b.elog.Add(b.tick, p.Label, "chain", "transit", coordString(c))
		},
	})
	if err != nil {
		// A session was already open; the move stands without transit.
		b.elog.Add(b.tick, p.Label, "chain", "skipped", fmt.Sprintf("%v", err))
	}
}
