package main

import "testing"

func TestRunScenarioDeterministic(t *testing.T) {
	_, a := runScenario(42, 50)
	_, b := runScenario(42, 50)

	if a.moves != b.moves || a.commits != b.commits || a.reverts != b.reverts ||
		a.transits != b.transits || a.selections != b.selections {
		t.Errorf("same seed produced different stats: %+v vs %+v", a, b)
	}
	if a.moves != 50 {
		t.Errorf("moves = %d, want 50", a.moves)
	}
}

func TestRunScenarioKeepsBoardConsistent(t *testing.T) {
	tb, _ := runScenario(7, 100)

	// Every piece must still sit in exactly the occupancy entry matching
	// its coordinate.
	for _, p := range tb.Board.Occupancy().Pieces() {
		found := false
		for _, q := range tb.Board.Occupancy().At(p.Coord) {
			if q == p {
				found = true
			}
		}
		if !found {
			t.Errorf("piece %s missing from its own cell %v", p.Label, p.Coord)
		}
	}
}
