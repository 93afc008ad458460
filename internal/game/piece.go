package game

// PieceKind is the closed set of piece variants the stacking and pathfinding
// rules special-case. Everything else behaves as KindPlain.
type PieceKind int

const (
	KindPlain PieceKind = iota
	KindBeacon
	KindMarker // non-interactive placeholder: never blocks movement or chains
	KindDominant
	KindSubordinate
)

// String returns the short kind name used in logs and reports.
func (k PieceKind) String() string {
	switch k {
	case KindBeacon:
		return "beacon"
	case KindMarker:
		return "marker"
	case KindDominant:
		return "dominant"
	case KindSubordinate:
		return "subordinate"
	default:
		return "plain"
	}
}

// LinkMode selects which directions a beacon links along.
type LinkMode int

const (
	// LinkTwoWay links along the facing direction and its opposite.
	LinkTwoWay LinkMode = iota
	// LinkThreeWay links along the three alternating directions that
	// exclude the facing one (facing+1, +3 and +5, a tripod).
	LinkThreeWay
)

// NoOwner marks neutral pieces that belong to no faction.
const NoOwner = -1

// Piece is one game piece on the board. Pieces are mutated in place when
// they move, rotate, or change hands; the Occupancy index is the single
// source of truth for which cell a live piece is on.
type Piece struct {
	ID     int
	Label  string // short display label, e.g. "R0", "B3"
	Owner  int    // faction id, NoOwner for neutral
	Kind   PieceKind
	Coord  HexCoord
	ZIndex int

	// originalZIndex is a scratch slot used only during an active drag,
	// while the piece carries a transient lifted z. Cleared afterward.
	originalZIndex int

	Movable   bool
	MoveRange int        // steps along each of the six directions
	Forbidden []HexCoord // per-piece destination vetoes on top of blocking

	// Beacon-only state; Rotate is the only mutation path.
	rotation int
	LinkMode LinkMode

	// OnClick runs when a press-and-release gesture never became a drag.
	OnClick func(b *Board, p *Piece)
	// OnPlaced runs after a committed move that changed the coordinate,
	// with the coordinate the piece moved from. It may open a forced
	// selection session; anything it does after that suspension point
	// must re-validate occupancy first.
	OnPlaced func(b *Board, p *Piece, from HexCoord)
	// LegalMovesFn overrides the default ray-walk destination set.
	LegalMovesFn func(b *Board, p *Piece) []HexCoord
}

// Rotation returns the beacon's facing direction (0..5).
func (p *Piece) Rotation() int {
	return p.rotation
}

// Rotate turns the piece's facing by delta steps clockwise. Collaborators
// rotate through this method; the field itself is not part of the contract.
func (p *Piece) Rotate(delta int) {
	p.rotation = NormalizeDirection(p.rotation + delta)
}

// passable reports whether the piece never blocks movement or beacon walks.
func (p *Piece) passable() bool {
	return p.Kind == KindBeacon || p.Kind == KindMarker
}

// forbids reports whether the piece vetoes c as a destination.
func (p *Piece) forbids(c HexCoord) bool {
	for _, f := range p.Forbidden {
		if f == c {
			return true
		}
	}
	return false
}

// linkDirections returns the directions a beacon links along, derived from
// its facing and link mode.
func (p *Piece) linkDirections() []int {
	if p.LinkMode == LinkTwoWay {
		return []int{p.rotation, Opposite(p.rotation)}
	}
	return []int{
		NormalizeDirection(p.rotation + 1),
		NormalizeDirection(p.rotation + 3),
		NormalizeDirection(p.rotation + 5),
	}
}
