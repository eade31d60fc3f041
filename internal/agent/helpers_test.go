package agent

import (
	"testing"

	"github.com/napolitain/microciv/internal/game"
	"github.com/napolitain/microciv/internal/models"
	"github.com/napolitain/microciv/internal/terrain"
)

// newAgentTestGame builds a small two-civilization game on an all-plains map.
// Civilization 1 is the agent seat.
func newAgentTestGame(t *testing.T) *game.Game {
	t.Helper()
	cfg := models.DefaultConfig()
	cfg.Game.MapWidth = 12
	cfg.Game.MapHeight = 12
	cfg.Cities[0].X, cfg.Cities[0].Y = 1, 1
	cfg.Cities[1].X, cfg.Cities[1].Y = 9, 9
	cfg.Victory = models.VictoryConfig{}
	g := game.New(cfg)
	for i := range g.Map.Tiles {
		g.Map.Tiles[i] = terrain.Plains
	}
	return g
}
