package game

import (
	"strings"
	"testing"
	"time"
)

func TestLegalDestinationsWalkSixRays(t *testing.T) {
	tb := NewTestBoard(
		WithPiece("m", KindPlain, 0, 0, 0, 2),
	)

	legal := tb.Board.LegalDestinations(tb.Piece("m"))

	// Origin plus two steps along each of the six directions.
	if len(legal) != 13 {
		t.Fatalf("legal cells = %d, want 13", len(legal))
	}
	for _, c := range []HexCoord{Hex(0, 0), Hex(0, -2), Hex(2, 0), Hex(-2, 2)} {
		if !legal[c] {
			t.Fatalf("ray cell %v missing from legal set", c)
		}
	}
	if legal[Hex(1, 1)] {
		t.Fatalf("off-ray cell (1,1,-2) in legal set")
	}
}

func TestLegalDestinationsStopAtBlockers(t *testing.T) {
	tb := NewTestBoard(
		WithPiece("m", KindPlain, 0, 0, 0, 2),
		WithPiece("wall", KindPlain, 1, 0, 1, 0),
		WithBeacon("b", 0, 1, -1, 0, LinkTwoWay),
	)

	legal := tb.Board.LegalDestinations(tb.Piece("m"))

	// The occupied cell and everything behind it are out.
	if legal[Hex(0, 1)] || legal[Hex(0, 2)] {
		t.Fatalf("blocked ray leaked destinations past the wall")
	}
	// A beacon is passable: its cell is a destination and the ray continues.
	if !legal[Hex(1, -1)] || !legal[Hex(2, -2)] {
		t.Fatalf("passable beacon stopped the ray")
	}
}

func TestLegalDestinationsSkipVetoedCells(t *testing.T) {
	tb := NewTestBoard(
		WithPiece("m", KindPlain, 0, 0, 0, 2),
		WithForbidden("m", 0, 1),
	)

	legal := tb.Board.LegalDestinations(tb.Piece("m"))

	if legal[Hex(0, 1)] {
		t.Fatalf("vetoed cell in legal set")
	}
	// A veto removes the cell, it does not cut the ray.
	if !legal[Hex(0, 2)] {
		t.Fatalf("cell behind a vetoed cell missing from legal set")
	}
}

func TestLegalDestinationsClipToGrid(t *testing.T) {
	tb := NewTestBoard(
		WithRadius(1),
		WithPiece("m", KindPlain, 0, 0, 0, 3),
	)

	legal := tb.Board.LegalDestinations(tb.Piece("m"))

	if len(legal) != 7 {
		t.Fatalf("legal cells = %d on a radius-1 board, want 7", len(legal))
	}
}

func TestLegalMovesOverrideReplacesRayWalk(t *testing.T) {
	tb := NewTestBoard(
		WithPiece("m", KindPlain, 0, 0, 0, 2),
		WithForbidden("m", 2, 0),
	)
	tb.Piece("m").LegalMovesFn = func(*Board, *Piece) []HexCoord {
		return []HexCoord{Hex(3, -3), Hex(2, 0), Hex(9, 9)}
	}

	legal := tb.Board.LegalDestinations(tb.Piece("m"))

	if !legal[Hex(3, -3)] {
		t.Fatalf("override destination missing")
	}
	if !legal[Hex(0, 0)] {
		t.Fatalf("origin missing under an override")
	}
	if legal[Hex(2, 0)] {
		t.Fatalf("override bypassed the piece's veto")
	}
	if legal[Hex(9, 9)] {
		t.Fatalf("override placed an off-grid cell in the legal set")
	}
	if legal[Hex(0, 1)] {
		t.Fatalf("ray-walk destination present alongside an override")
	}
}

func TestCellAtSnapsToCellCentres(t *testing.T) {
	tb := NewTestBoard()

	x, y := Hex(1, 0).Pixel()
	if c, ok := tb.Board.CellAt(x+3, y-3); !ok || c != Hex(1, 0) {
		t.Fatalf("CellAt near centre = %v %v, want (1,0,-1) true", c, ok)
	}
	if _, ok := tb.Board.CellAt(10_000, 10_000); ok {
		t.Fatalf("CellAt accepted a point far off the grid")
	}
}

func TestAddPieceAssignsIdentity(t *testing.T) {
	b := NewBoard(4)
	p := &Piece{Kind: KindPlain, Owner: 0, Coord: Hex(0, 0), Movable: true}
	b.AddPiece(p)

	if p.Label == "" {
		t.Fatalf("AddPiece left the label empty")
	}
	if got := b.Log().Filter("piece", "add"); len(got) != 1 {
		t.Fatalf("add events = %d, want 1", len(got))
	}

	q := &Piece{Kind: KindPlain, Owner: 0, Coord: Hex(1, 0), Movable: true}
	b.AddPiece(q)
	if q.ID == p.ID {
		t.Fatalf("two pieces share id %d", q.ID)
	}
}

func TestRemovePieceClearsOccupancy(t *testing.T) {
	tb := NewTestBoard(
		WithPiece("m", KindPlain, 0, 0, 0, 1),
	)
	tb.Board.RemovePiece(tb.Piece("m"))

	if tb.Board.Occupancy().Len() != 0 {
		t.Fatalf("occupancy not empty after removal")
	}
	if tb.Board.Occupancy().Contains(tb.Piece("m")) {
		t.Fatalf("removed piece still indexed")
	}
}

func transitBoard(extra ...BoardOption) *TestBoard {
	opts := []BoardOption{
		WithBeacon("A", 0, 0, 0, 0, LinkTwoWay),
		WithBeacon("B", 0, 0, 2, 3, LinkTwoWay),
		WithPiece("m", KindPlain, 0, 0, -1, 1),
		WithTransit("m"),
	}
	return NewTestBoard(append(opts, extra...)...)
}

func TestBeaconTransitMovesThroughChain(t *testing.T) {
	tb := transitBoard()

	tb.DragTo("m", Hex(0, 0))

	sel := tb.Board.Selection()
	if !sel.Active() {
		t.Fatalf("landing on a beacon did not open a selection session")
	}
	if sel.IsTarget(Hex(0, 0)) {
		t.Fatalf("gate beacon offered as a travel target")
	}
	if !sel.IsTarget(Hex(0, 2)) {
		t.Fatalf("chain beacon missing from travel targets")
	}

	tb.SubmitCell(Hex(0, 2))

	if got := tb.Piece("m").Coord; got != Hex(0, 2) {
		t.Fatalf("piece at %v after transit, want (0,2,-2)", got)
	}
	if got := tb.Board.Log().Filter("chain", "transit"); len(got) != 1 {
		t.Fatalf("transit events = %d, want 1", len(got))
	}

	// The piece's own history carries both the landing and the transit.
	history := tb.Board.Log().FilterPiece("m")
	commits, transits := 0, 0
	for _, e := range history {
		if e.Piece != "m" {
			t.Fatalf("foreign entry %v in per-piece history", e)
		}
		switch {
		case e.Category == "move" && e.Key == "commit":
			commits++
		case e.Category == "chain" && e.Key == "transit":
			transits++
		}
	}
	if commits != 2 || transits != 1 {
		t.Fatalf("history commits=%d transits=%d, want 2 and 1", commits, transits)
	}
}

func TestBeaconTransitCancelLeavesPieceOnGate(t *testing.T) {
	tb := transitBoard()
	tb.DragTo("m", Hex(0, 0))

	if !tb.Board.Selection().Cancel() {
		t.Fatalf("transit session refused cancellation")
	}
	if got := tb.Piece("m").Coord; got != Hex(0, 0) {
		t.Fatalf("piece at %v after cancel, want the gate cell", got)
	}
}

func TestBeaconTransitTimesOut(t *testing.T) {
	tb := transitBoard()
	tb.DragTo("m", Hex(0, 0))

	tb.Advance(29 * time.Second)
	if !tb.Board.Selection().Active() {
		t.Fatalf("transit session timed out early")
	}
	tb.Advance(2 * time.Second)

	if tb.Board.Selection().Active() {
		t.Fatalf("transit session survived its timeout")
	}
	if got := tb.Piece("m").Coord; got != Hex(0, 0) {
		t.Fatalf("piece at %v after timeout, want the gate cell", got)
	}
}

func TestBeaconTransitIgnoresForeignGate(t *testing.T) {
	tb := NewTestBoard(
		WithBeacon("A", 0, 0, 0, 0, LinkTwoWay),
		WithBeacon("B", 0, 0, 2, 3, LinkTwoWay),
		WithPiece("m", KindPlain, 1, 0, -1, 1),
		WithTransit("m"),
	)

	tb.DragTo("m", Hex(0, 0))

	if tb.Board.Selection().Active() {
		t.Fatalf("foreign-owned gate opened a transit session")
	}
	if got := tb.Piece("m").Coord; got != Hex(0, 0) {
		t.Fatalf("piece at %v, the move itself should stand", got)
	}
}

func TestBeaconTransitNoSessionForSingletonChain(t *testing.T) {
	tb := NewTestBoard(
		WithBeacon("A", 0, 0, 0, 0, LinkTwoWay),
		WithPiece("m", KindPlain, 0, 0, -1, 1),
		WithTransit("m"),
	)

	tb.DragTo("m", Hex(0, 0))

	if tb.Board.Selection().Active() {
		t.Fatalf("a chain with no other beacon opened a session")
	}
}

func TestBeaconTransitRevalidatesDestination(t *testing.T) {
	tb := transitBoard()
	tb.DragTo("m", Hex(0, 0))

	// The destination fills up while the session is open.
	tb.Board.AddPiece(&Piece{
		Label: "late", Kind: KindPlain, Owner: 1, Coord: Hex(0, 2), Movable: true,
	})
	tb.SubmitCell(Hex(0, 2))

	if got := tb.Piece("m").Coord; got != Hex(0, 0) {
		t.Fatalf("piece teleported into an occupied cell: %v", got)
	}
	if got := tb.Board.Log().Filter("chain", "stale"); len(got) != 1 {
		t.Fatalf("stale events = %d, want 1", len(got))
	}
}

func TestBeaconTransitSkippedWhileSessionBusy(t *testing.T) {
	tb := transitBoard()
	_, err := tb.Board.Selection().Begin(
		[]HexCoord{Hex(2, 0)}, "other business", SelectionOptions{})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	// Pointer input is owned by the open session, so place directly.
	p := tb.Piece("m")
	from := p.Coord
	tb.Board.MovePiece(p, Hex(0, 0))
	BeaconTransit(tb.Board, p, from)

	if got := tb.Board.Log().Filter("chain", "skipped"); len(got) != 1 {
		t.Fatalf("skipped events = %d, want 1", len(got))
	}
	if tb.Board.Selection().Prompt() != "other business" {
		t.Fatalf("transit displaced the open session")
	}
	if p.Coord != Hex(0, 0) {
		t.Fatalf("piece at %v, the landing itself should stand", p.Coord)
	}
}

func TestDebugReportSnapshotsBoard(t *testing.T) {
	tb := transitBoard()
	tb.DragTo("m", Hex(0, 0))

	report := tb.Board.DebugReport()

	for _, want := range []string{
		"radius=4 pieces=3",
		"A[beacon",
		"m[plain",
		"Choose a beacon to travel to",
		"target (0,2,-2)",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}
