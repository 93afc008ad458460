package game

import "sort"

// dominantOffset guarantees dominant pieces outrank every ordinary zIndex
// regardless of arrival order.
const dominantOffset = 10000

// Stacker resolves the z-order of co-located pieces. It owns a monotonic
// global counter so dominant placements always clear the current maximum.
// Resolution is total: it never rejects a placement and never produces
// ties, because every rule derives from max/min plus an offset of at
// least one.
type Stacker struct {
	globalMax int
}

// NewStacker creates a resolver with the counter at zero.
func NewStacker() *Stacker {
	return &Stacker{}
}

// GlobalMax returns the highest zIndex the resolver has handed out.
func (s *Stacker) GlobalMax() int {
	return s.globalMax
}

// ResolveZIndex assigns and returns the piece's zIndex given the other
// occupants of its cell. Invoked once per successful placement.
func (s *Stacker) ResolveZIndex(p *Piece, coOccupants []*Piece) int {
	switch p.Kind {
	case KindDominant:
		p.ZIndex = s.globalMax + dominantOffset
		s.restackDominants(p, coOccupants)
	case KindSubordinate:
		if low, ok := lowestDominant(coOccupants); ok {
			// Strictly beneath the dominant stack and any subordinate
			// already slotted under it.
			for _, q := range coOccupants {
				if q.Kind == KindSubordinate && q.ZIndex < low {
					low = q.ZIndex
				}
			}
			p.ZIndex = low - 1
		} else {
			p.ZIndex = s.defaultZ(coOccupants)
		}
	default:
		p.ZIndex = s.defaultZ(coOccupants)
	}
	return p.ZIndex
}

// defaultZ is the highest-wins rule: one above the tallest occupant, never
// below 1 on an empty cell.
func (s *Stacker) defaultZ(coOccupants []*Piece) int {
	top := 0
	for _, q := range coOccupants {
		if q.ZIndex > top {
			top = q.ZIndex
		}
	}
	z := top + 1
	if z > s.globalMax {
		s.globalMax = z
	}
	return z
}

// restackDominants renumbers every dominant piece on the cell (including
// the new arrival) to consecutive values above the offset, preserving
// relative arrival order, and advances the global counter past them.
func (s *Stacker) restackDominants(p *Piece, coOccupants []*Piece) {
	doms := []*Piece{p}
	for _, q := range coOccupants {
		if q.Kind == KindDominant {
			doms = append(doms, q)
		}
	}
	// Earlier arrivals hold smaller z values, so sorting by zIndex
	// recovers arrival order.
	sort.Slice(doms, func(i, j int) bool { return doms[i].ZIndex < doms[j].ZIndex })

	base := s.globalMax + dominantOffset
	for i, d := range doms {
		d.ZIndex = base + i
	}
	s.globalMax = base + len(doms) - 1
}

func lowestDominant(pieces []*Piece) (int, bool) {
	low, found := 0, false
	for _, q := range pieces {
		if q.Kind != KindDominant {
			continue
		}
		if !found || q.ZIndex < low {
			low = q.ZIndex
			found = true
		}
	}
	return low, found
}
