package seismic

import "testing"

func TestLateralGeometryXY(t *testing.T) {
	g := NewLateralGeometry(10, 10, 100, 200, 25, 25)
	x, y := g.XY(0, 0)
	if x != 112.5 || y != 212.5 {
		t.Errorf("XY(0,0) = (%v,%v), want (112.5,212.5)", x, y)
	}
}

func TestLateralGeometryTraverseIndexVisitsEveryCell(t *testing.T) {
	g := NewLateralGeometry(4, 3, 0, 0, 1, 1)
	seen := make(map[[2]int]bool)
	g.Traverse(func(i, j int, x, y float64) {
		seen[[2]int{i, j}] = true
	})
	if len(seen) != 4*3 {
		t.Errorf("visited %d cells, want %d", len(seen), 4*3)
	}
}

func TestIndexFromInlineCrosslineClamps(t *testing.T) {
	g := NewLateralGeometry(5, 5, 0, 0, 1, 1).WithSegyGeometry(100, 140, 10, 1000, 1040, 10)
	i, j := g.IndexFromInlineCrossline(0, 0)
	if i != 0 || j != 0 {
		t.Errorf("out-of-range (il,xl) clamped to (%d,%d), want (0,0)", i, j)
	}
}

func TestLateralGeometryTraverseInlineCrossline(t *testing.T) {
	g := NewLateralGeometry(5, 5, 0, 0, 1, 1).WithSegyGeometry(100, 140, 10, 1000, 1040, 10)
	count := 0
	g.Traverse(func(i, j int, x, y float64) { count++ })
	wantCount := ((140-100)/10 + 1) * ((1040-1000)/10 + 1)
	if count != wantCount {
		t.Errorf("visited %d cells, want %d", count, wantCount)
	}
}
