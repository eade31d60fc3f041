// Package agent implements the decision-makers that can drive a
// civilization: a local pseudo-random player and a bridge to a remote
// text-generation service. Both satisfy game.Agent and only ever operate on
// immutable snapshots.
package agent

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/napolitain/microciv/internal/game"
)

// Random picks uniformly among the legal commands visible in the snapshot.
// Seeded, so simulations are reproducible.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random agent from a seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// SelectAction returns a random candidate command. It never declines to act:
// "end" is always among the candidates, so turns still terminate.
func (r *Random) SelectAction(view game.Snapshot, civIndex int) (string, bool) {
	actions := []string{"end"}
	for _, b := range view.Buildings {
		actions = append(actions, "build "+strings.ToLower(b))
	}
	for _, u := range view.Units {
		actions = append(actions, "hire "+strings.ToLower(u))
	}
	for i, p := range view.Players {
		if i != civIndex && p.Alive {
			actions = append(actions, "attack "+strings.ToLower(p.Name))
		}
	}
	return actions[r.rng.Intn(len(actions))], true
}

// SelectPopupInput answers with a random 1-based choice index, or empty input
// for free-text popups.
func (r *Random) SelectPopupInput(view game.Snapshot, civIndex int, popup game.PopupView) string {
	if len(popup.Choices) == 0 {
		return ""
	}
	return fmt.Sprintf("%d", r.rng.Intn(len(popup.Choices))+1)
}
