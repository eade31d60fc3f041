package game

import (
	"log/slog"
	"strings"

	"github.com/napolitain/microciv/internal/models"
)

// maxAgentActions caps how many decisions an agent may make in one driving
// loop. Deliberate, non-configurable safety valve against a runaway or
// adversarial decision source.
const maxAgentActions = 256

// Agent decides for a civilization. SelectAction returns the next command and
// true, or false to end the turn. SelectPopupInput answers an open popup.
// Implementations only ever see snapshots, never live state.
type Agent interface {
	SelectAction(view Snapshot, civIndex int) (string, bool)
	SelectPopupInput(view Snapshot, civIndex int, popup PopupView) string
}

// RegisterAgent attaches an agent to the civilization at civIndex.
func (g *Game) RegisterAgent(civIndex int, a Agent) {
	if civIndex < 0 || civIndex >= len(g.agents) {
		return
	}
	g.agents[civIndex] = a
	slog.Info("agent registered", "civ", g.Civs[civIndex].City.Name)
}

// EndTurn passes play to the next living civilization. On wraparound the turn
// counter advances and the round-seam victory conditions are checked; the new
// active civilization then gets its turn-start economy tick.
func (g *Game) EndTurn() {
	if g.gameOver {
		return
	}
	for range g.Civs {
		g.Active = (g.Active + 1) % len(g.Civs)
		if g.Active == 0 {
			g.Turn++
			g.checkVictoryConditions()
			if g.gameOver {
				return
			}
		}
		if g.Civs[g.Active].Alive {
			break
		}
	}
	g.onTurnStart(g.Active)
}

// Step force-advances to the next civilization without requiring a parsed
// "end" command.
func (g *Game) Step() {
	g.EndTurn()
}

// checkVictoryConditions applies the configured thresholds at the round seam:
// a civilization whose cumulative spend reaches the economic threshold wins
// outright; past the turn limit the richest living civilization wins.
func (g *Game) checkVictoryConditions() {
	if g.gameOver {
		return
	}

	if g.Victory.ResourcesSpent > 0 {
		for i, c := range g.Civs {
			if c.Alive && c.Spent >= g.Victory.ResourcesSpent {
				g.gameOver = true
				g.winner = i
				slog.Info("economic victory", "winner", c.City.Name, "spent", c.Spent, "turn", g.Turn)
				return
			}
		}
	}

	if g.Victory.TurnLimit > 0 && g.Turn > g.Victory.TurnLimit {
		best := -1
		for i, c := range g.Civs {
			if !c.Alive {
				continue
			}
			if best < 0 || c.Resources > g.Civs[best].Resources {
				best = i
			}
		}
		g.gameOver = true
		g.winner = best
		if best >= 0 {
			slog.Info("turn limit reached", "winner", g.Civs[best].City.Name, "turn", g.Turn)
		}
	}
}

// RunAgentTurn drives agent-controlled civilizations until a human becomes
// active, the game ends, or the safety cap trips. Each iteration asks the
// registered agent either for the next command or, when a popup is open, for
// the popup's input. The cap is per civilization: it resets whenever play
// passes to a different one.
func (g *Game) RunAgentTurn() {
	actions := 0
	current := g.Active
	for {
		if g.gameOver {
			return
		}
		idx := g.Active
		if idx != current {
			current = idx
			actions = 0
		}
		civ := g.Civs[idx]
		if civ.City.Kind != models.PlayerAgent || g.agents[idx] == nil {
			return
		}
		a := g.agents[idx]

		if actions >= maxAgentActions {
			// A popup abandoned here would wedge the interactive loop, so it
			// is discarded along with the rest of the turn.
			slog.Warn("agent action cap reached", "civ", civ.City.Name, "cap", maxAgentActions)
			g.popup = nil
			g.EndTurn()
			return
		}
		actions++

		if popup, open := g.PopupView(); open {
			input := a.SelectPopupInput(g.Snapshot(), idx, popup)
			slog.Debug("agent popup input", "civ", civ.City.Name, "title", popup.Title, "input", input)
			g.SubmitPopupInput(input)
			continue
		}

		action, ok := a.SelectAction(g.Snapshot(), idx)
		if !ok {
			slog.Debug("agent ended turn", "civ", civ.City.Name)
			g.EndTurn()
			continue
		}
		slog.Debug("agent action", "civ", civ.City.Name, "action", action)
		g.ApplyAction(action)
	}
}

// PossibleActions lists plausible commands for a civilization, in the
// lowercase form the parser accepts. Used by locally-deciding agents and by
// prompts for remote ones.
func (g *Game) PossibleActions(civIndex int) []string {
	actions := []string{"end"}
	for _, b := range g.Buildings {
		actions = append(actions, "build "+strings.ToLower(b.Name))
	}
	for _, u := range g.Units {
		actions = append(actions, "hire "+strings.ToLower(u.Name))
	}
	for i, c := range g.Civs {
		if i != civIndex && c.Alive {
			actions = append(actions, "attack "+strings.ToLower(c.City.Name))
		}
	}
	return actions
}
