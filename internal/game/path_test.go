package game

import (
	"testing"

	"github.com/napolitain/microciv/internal/terrain"
)

func flatGrid(w, h int) *terrain.Grid {
	g := &terrain.Grid{Width: w, Height: h, Seed: "test", Tiles: make([]terrain.Tile, w*h)}
	for i := range g.Tiles {
		g.Tiles[i] = terrain.Plains
	}
	return g
}

func TestFindPathStraightLine(t *testing.T) {
	grid := flatGrid(10, 10)

	path, cost, err := findPath(grid, 1, 1, 5, 1)
	if err != nil {
		t.Fatalf("findPath failed: %v", err)
	}
	if cost != 4*terrain.CostScale {
		t.Errorf("cost: got %d, want %d", cost, 4*terrain.CostScale)
	}
	if len(path) != 4 {
		t.Fatalf("path length: got %d, want 4", len(path))
	}
	if last := path[len(path)-1]; last != (terrain.Point{X: 5, Y: 1}) {
		t.Errorf("path end: got %+v", last)
	}
}

func TestFindPathAvoidsMountains(t *testing.T) {
	grid := flatGrid(7, 7)
	// Vertical wall at x=3 with a gap at y=6.
	for y := 0; y < 6; y++ {
		grid.Set(3, y, terrain.Mountain)
	}

	path, _, err := findPath(grid, 1, 0, 5, 0)
	if err != nil {
		t.Fatalf("findPath failed: %v", err)
	}
	for _, p := range path {
		if grid.At(p.X, p.Y) == terrain.Mountain {
			t.Fatalf("path crosses mountain at %+v", p)
		}
	}
	// Detour through the gap is much longer than the straight line.
	if len(path) < 10 {
		t.Errorf("path suspiciously short for a detour: %d steps", len(path))
	}
}

func TestFindPathNoPath(t *testing.T) {
	grid := flatGrid(7, 7)
	// Seal the target in a mountain ring.
	for _, p := range []terrain.Point{{X: 4, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 6}} {
		grid.Set(p.X, p.Y, terrain.Mountain)
	}

	if _, _, err := findPath(grid, 0, 0, 5, 5); err != ErrNoPath {
		t.Errorf("got %v, want ErrNoPath", err)
	}
}

func TestWaterCostsTripleLand(t *testing.T) {
	grid := flatGrid(5, 3)
	grid.Set(2, 1, terrain.Water)
	// Mountains above and below force the water crossing.
	grid.Set(2, 0, terrain.Mountain)
	grid.Set(2, 2, terrain.Mountain)

	_, cost, err := findPath(grid, 1, 1, 3, 1)
	if err != nil {
		t.Fatalf("findPath failed: %v", err)
	}
	want := 3*terrain.CostScale + terrain.CostScale
	if cost != want {
		t.Errorf("cost: got %d, want %d", cost, want)
	}
}

// Equal-cost ties are broken by insertion order, so the same query always
// returns the same path.
func TestFindPathDeterministic(t *testing.T) {
	grid := flatGrid(20, 20)

	first, cost, err := findPath(grid, 2, 3, 15, 17)
	if err != nil {
		t.Fatalf("findPath failed: %v", err)
	}
	for i := 0; i < 50; i++ {
		path, c, err := findPath(grid, 2, 3, 15, 17)
		if err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
		if c != cost {
			t.Fatalf("iteration %d: cost %d != %d", i, c, cost)
		}
		if len(path) != len(first) {
			t.Fatalf("iteration %d: length %d != %d", i, len(path), len(first))
		}
		for j := range path {
			if path[j] != first[j] {
				t.Fatalf("iteration %d: path diverges at %d: %+v != %+v", i, j, path[j], first[j])
			}
		}
	}
}

func TestTravelTurns(t *testing.T) {
	cases := []struct {
		cost int
		want int
	}{
		{0, 1},
		{1, 1},
		{terrain.CostScale, 1},
		{terrain.CostScale + 1, 2},
		{150, 2},
		{3 * terrain.CostScale, 3},
		{301, 4},
	}
	for _, tc := range cases {
		if got := travelTurns(tc.cost); got != tc.want {
			t.Errorf("travelTurns(%d): got %d, want %d", tc.cost, got, tc.want)
		}
	}
}
