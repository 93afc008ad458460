package game

import "testing"

func TestDefaultStackingMonotonic(t *testing.T) {
	s := NewStacker()
	var placed []*Piece
	for i := 0; i < 5; i++ {
		p := &Piece{Kind: KindPlain}
		z := s.ResolveZIndex(p, placed)
		for _, q := range placed {
			if z <= q.ZIndex {
				t.Fatalf("placement %d: z=%d not above existing z=%d", i, z, q.ZIndex)
			}
		}
		placed = append(placed, p)
	}
}

func TestStackingNeverTies(t *testing.T) {
	s := NewStacker()
	var placed []*Piece
	// Consecutive subordinates under a dominant are the delicate case.
	kinds := []PieceKind{KindPlain, KindDominant, KindSubordinate, KindSubordinate, KindDominant, KindPlain, KindSubordinate}
	for _, k := range kinds {
		p := &Piece{Kind: k}
		s.ResolveZIndex(p, placed)
		placed = append(placed, p)
	}
	seen := map[int]bool{}
	for _, p := range placed {
		if seen[p.ZIndex] {
			t.Fatalf("duplicate zIndex %d", p.ZIndex)
		}
		seen[p.ZIndex] = true
	}
}

func TestDominantAlwaysAboveSubordinate(t *testing.T) {
	check := func(t *testing.T, dom, sub *Piece) {
		t.Helper()
		if dom.ZIndex <= sub.ZIndex {
			t.Errorf("dominant z=%d not above subordinate z=%d", dom.ZIndex, sub.ZIndex)
		}
	}

	t.Run("dominant arrives first", func(t *testing.T) {
		s := NewStacker()
		dom := &Piece{Kind: KindDominant}
		s.ResolveZIndex(dom, nil)
		sub := &Piece{Kind: KindSubordinate}
		s.ResolveZIndex(sub, []*Piece{dom})
		check(t, dom, sub)
		if sub.ZIndex != dom.ZIndex-1 {
			t.Errorf("subordinate z=%d, want %d (one under the dominant)", sub.ZIndex, dom.ZIndex-1)
		}
	})

	t.Run("subordinate arrives first", func(t *testing.T) {
		s := NewStacker()
		sub := &Piece{Kind: KindSubordinate}
		s.ResolveZIndex(sub, nil)
		dom := &Piece{Kind: KindDominant}
		s.ResolveZIndex(dom, []*Piece{sub})
		check(t, dom, sub)
	})
}

func TestSubordinatesStackWithoutTies(t *testing.T) {
	s := NewStacker()
	dom := &Piece{Kind: KindDominant}
	s.ResolveZIndex(dom, nil)

	subA := &Piece{Kind: KindSubordinate}
	s.ResolveZIndex(subA, []*Piece{dom})
	subB := &Piece{Kind: KindSubordinate}
	s.ResolveZIndex(subB, []*Piece{dom, subA})

	if subA.ZIndex != dom.ZIndex-1 {
		t.Errorf("first subordinate z=%d, want %d", subA.ZIndex, dom.ZIndex-1)
	}
	if subB.ZIndex != subA.ZIndex-1 {
		t.Errorf("second subordinate z=%d, want %d (under the first)", subB.ZIndex, subA.ZIndex-1)
	}
	if subA.ZIndex == subB.ZIndex {
		t.Fatalf("co-located subordinates tied at z=%d", subA.ZIndex)
	}
}

func TestSubordinateFallsBackToDefault(t *testing.T) {
	s := NewStacker()
	plain := &Piece{Kind: KindPlain}
	s.ResolveZIndex(plain, nil)
	sub := &Piece{Kind: KindSubordinate}
	z := s.ResolveZIndex(sub, []*Piece{plain})
	if z != plain.ZIndex+1 {
		t.Errorf("subordinate without dominant got z=%d, want %d", z, plain.ZIndex+1)
	}
}

func TestDominantRenumberingPreservesArrivalOrder(t *testing.T) {
	s := NewStacker()
	cell := []*Piece{}

	first := &Piece{Label: "d1", Kind: KindDominant}
	s.ResolveZIndex(first, cell)
	cell = append(cell, first)

	second := &Piece{Label: "d2", Kind: KindDominant}
	s.ResolveZIndex(second, cell)
	cell = append(cell, second)

	third := &Piece{Label: "d3", Kind: KindDominant}
	s.ResolveZIndex(third, cell)

	if !(first.ZIndex < second.ZIndex && second.ZIndex < third.ZIndex) {
		t.Fatalf("arrival order not preserved: %d, %d, %d", first.ZIndex, second.ZIndex, third.ZIndex)
	}
	if second.ZIndex != first.ZIndex+1 || third.ZIndex != second.ZIndex+1 {
		t.Errorf("dominants not consecutive: %d, %d, %d", first.ZIndex, second.ZIndex, third.ZIndex)
	}
	if s.GlobalMax() != third.ZIndex {
		t.Errorf("global counter %d not advanced past dominants (top z=%d)", s.GlobalMax(), third.ZIndex)
	}
	if first.ZIndex < dominantOffset {
		t.Errorf("dominant z=%d below offset %d", first.ZIndex, dominantOffset)
	}
}

func TestDominantOutranksLaterPlainArrivals(t *testing.T) {
	s := NewStacker()
	dom := &Piece{Kind: KindDominant}
	s.ResolveZIndex(dom, nil)

	// A later plain piece on another cell derives from the global counter's
	// neighbourhood but must stay under the dominant.
	plain := &Piece{Kind: KindPlain}
	s.ResolveZIndex(plain, nil)
	if plain.ZIndex >= dom.ZIndex {
		t.Errorf("plain z=%d reached dominant z=%d", plain.ZIndex, dom.ZIndex)
	}
}
