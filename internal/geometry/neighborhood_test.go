package geometry

import "testing"

func TestLatticeNeighborhoodOrder(t *testing.T) {
	origin := NewLatticePoint(5, 2)

	got := origin.Neighbors().Collect()
	want := []LatticePoint{
		{4, 1}, {5, 1}, {6, 1},
		{4, 2}, {6, 2},
		{4, 3}, {5, 3}, {6, 3},
	}
	assertLatticeSeq(t, got, want)

	got = origin.NeighborsAndSelf().Collect()
	want = []LatticePoint{
		{4, 1}, {5, 1}, {6, 1},
		{4, 2}, {5, 2}, {6, 2},
		{4, 3}, {5, 3}, {6, 3},
	}
	assertLatticeSeq(t, got, want)
}

func TestLatticeNeighborhoodCounts(t *testing.T) {
	pow3 := 1
	for dim := 1; dim <= 5; dim++ {
		pow3 *= 3
		origin := LatticeDiagonal(dim, -7)

		without := origin.Neighbors()
		if without.Len() != pow3-1 {
			t.Fatalf("dim %d: Len=%d", dim, without.Len())
		}
		pts := without.Collect()
		if len(pts) != pow3-1 {
			t.Fatalf("dim %d: got %d neighbors want %d", dim, len(pts), pow3-1)
		}
		for _, p := range pts {
			if p.Equal(origin) {
				t.Fatalf("dim %d: origin included", dim)
			}
			if p.Sub(origin).Magnitude(Chebyshev{}) != 1 {
				t.Fatalf("dim %d: %v is not adjacent", dim, p)
			}
		}

		if n := len(origin.NeighborsAndSelf().Collect()); n != pow3 {
			t.Fatalf("dim %d: got %d with self want %d", dim, n, pow3)
		}
	}
}

func TestLatticeNeighborhoodRestartable(t *testing.T) {
	origin := NewLatticePoint(0, 0, 0)
	first := origin.NeighborsAndSelf().Collect()
	second := origin.NeighborsAndSelf().Collect()
	assertLatticeSeq(t, second, first)

	n := origin.Neighbors()
	n.Collect()
	if _, ok := n.Next(); ok {
		t.Fatalf("exhausted walk yielded another point")
	}
}

func TestVertexNeighborhoodOrder(t *testing.T) {
	got := NewRealPoint(1.2, -5.9, 8.0).VertexNeighborhood().Collect()
	want := []RealPoint{
		{1, -6, 8},
		{2, -6, 8},
		{1, -5, 8},
		{2, -5, 8},
		{1, -6, 9},
		{2, -6, 9},
		{1, -5, 9},
		{2, -5, 9},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d vertices want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("vertex %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestVertexNeighborhoodCounts(t *testing.T) {
	for dim := 1; dim <= 6; dim++ {
		p := RealDiagonal(dim, 0.5)
		if n := len(p.VertexNeighborhood().Collect()); n != 1<<dim {
			t.Fatalf("dim %d: got %d vertices", dim, n)
		}
	}
}

func assertLatticeSeq(t *testing.T, got, want []LatticePoint) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("point %d: got %v want %v", i, got[i], want[i])
		}
	}
}
