package game

import (
	"github.com/napolitain/microciv/internal/models"
	"github.com/napolitain/microciv/internal/terrain"
)

// testConfig returns a small two-civilization setup with victory thresholds
// disabled, so tests only end the game through elimination.
func testConfig() *models.Config {
	cfg := models.DefaultConfig()
	cfg.Game.MapWidth = 12
	cfg.Game.MapHeight = 12
	cfg.Cities[0].X, cfg.Cities[0].Y = 1, 1
	cfg.Cities[1].X, cfg.Cities[1].Y = 9, 9
	cfg.Victory = models.VictoryConfig{}
	return cfg
}

// newTestGame builds a game on an all-plains map so path costs are exactly
// one land step per tile.
func newTestGame() *Game {
	g := New(testConfig())
	flatten(g.Map)
	return g
}

// flatten forces every tile to plains.
func flatten(grid *terrain.Grid) {
	for i := range grid.Tiles {
		grid.Tiles[i] = terrain.Plains
	}
}

// garrison replaces a civilization's units with a single stack.
func garrison(g *Game, civ int, unit string, count int) {
	g.Civs[civ].City.Units = []UnitStack{{Name: unit, Count: count}}
}

// placeCity moves a civilization's city, keeping tests independent of the
// configured positions.
func placeCity(g *Game, civ, x, y int) {
	g.Civs[civ].City.X = x
	g.Civs[civ].City.Y = y
}
