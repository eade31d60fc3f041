// Package terrain holds the tile grid the simulation runs on and the seeded
// generator that produces it. Generation is deterministic per seed string so
// games are reproducible.
package terrain

// Tile classifies one grid cell.
type Tile byte

const (
	Water Tile = iota
	Plains
	Desert
	Mountain
)

// String returns a short name for map dumps and logs.
func (t Tile) String() string {
	switch t {
	case Water:
		return "water"
	case Plains:
		return "plains"
	case Desert:
		return "desert"
	case Mountain:
		return "mountain"
	default:
		return "unknown"
	}
}

// Rune returns the single-character glyph used by text renderings.
func (t Tile) Rune() rune {
	switch t {
	case Water:
		return '~'
	case Plains:
		return '.'
	case Desert:
		return ':'
	case Mountain:
		return '^'
	default:
		return '?'
	}
}

// CostScale is the integer scaling applied to movement costs. Costs stay in
// scaled integers end to end so shortest-path tie-breaking never depends on
// floating-point comparison order.
const CostScale = 100

// MoveCost returns the scaled cost of entering the tile, or -1 when the tile
// is impassable.
func (t Tile) MoveCost() int {
	switch t {
	case Plains, Desert:
		return CostScale
	case Water:
		return 3 * CostScale
	case Mountain:
		return -1
	default:
		return -1
	}
}

// Point is a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a rectangular tile map, row-major.
type Grid struct {
	Width  int
	Height int
	Seed   string
	Tiles  []Tile
}

// At returns the tile at (x, y). Out-of-bounds coordinates read as Mountain
// so the edge of the world is impassable.
func (g *Grid) At(x, y int) Tile {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return Mountain
	}
	return g.Tiles[y*g.Width+x]
}

// Set overwrites the tile at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.Tiles[y*g.Width+x] = t
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// String renders the grid as one rune per tile, one row per line.
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.Width+1)*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			buf = append(buf, g.At(x, y).Rune())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
