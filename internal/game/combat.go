package game

import (
	"log/slog"
	"sort"
)

// startAttack validates an attack order, debits the sent units immediately,
// and enqueues a Travel along the shortest path between the two cities.
// amount <= 0 means "send everything"; a larger request is clamped to what is
// available.
func (g *Game) startAttack(attacker, defender, amount int) error {
	if g.gameOver {
		return ErrGameOver
	}
	if attacker < 0 || attacker >= len(g.Civs) || defender < 0 || defender >= len(g.Civs) {
		return ErrUnknownTarget
	}
	if attacker == defender {
		return ErrSelfAttack
	}
	atk := g.Civs[attacker]
	def := g.Civs[defender]
	if !atk.Alive || !def.Alive {
		return ErrCivDead
	}

	available := atk.City.UnitCount()
	if available == 0 {
		return ErrNoUnitsAvailable
	}
	if amount <= 0 || amount > available {
		amount = available
	}

	path, cost, err := findPath(g.Map, atk.City.X, atk.City.Y, def.City.X, def.City.Y)
	if err != nil {
		return err
	}
	turns := travelTurns(cost)

	g.removeUnits(atk, amount)
	g.Travels = append(g.Travels, &Travel{
		Attacker:  attacker,
		Defender:  defender,
		Units:     amount,
		Remaining: turns,
		Total:     turns,
		Path:      path,
	})
	slog.Info("attack launched",
		"attacker", atk.City.Name, "defender", def.City.Name,
		"units", amount, "turns", turns, "path_cost", cost)
	return nil
}

// removeUnits debits count units from civ's garrison, draining smallest
// stacks first and dropping emptied stacks.
func (g *Game) removeUnits(civ *Civilization, count int) {
	sort.SliceStable(civ.City.Units, func(i, j int) bool {
		return civ.City.Units[i].Count < civ.City.Units[j].Count
	})
	kept := civ.City.Units[:0]
	for _, stack := range civ.City.Units {
		if count > 0 {
			taken := stack.Count
			if taken > count {
				taken = count
			}
			stack.Count -= taken
			count -= taken
		}
		if stack.Count > 0 {
			kept = append(kept, stack)
		}
	}
	civ.City.Units = kept
}

// tickTravels advances every travel launched by civIdx and resolves the ones
// that arrive. Arrivals are removed in the same tick that zeroes them.
// Afterwards any travel whose attacker has been eliminated is disbanded: a
// dead civilization gets no more turn-starts, so its armies would otherwise
// freeze in transit forever.
func (g *Game) tickTravels(civIdx int) {
	active := g.Travels[:0]
	for _, t := range g.Travels {
		if t.Attacker != civIdx {
			active = append(active, t)
			continue
		}
		t.Remaining--
		if t.Remaining > 0 {
			active = append(active, t)
			continue
		}
		g.resolveTravel(t)
	}
	g.Travels = active
	g.disbandOrphanTravels()
}

// disbandOrphanTravels drops travels launched by civilizations that are no
// longer alive. The sent units fall with their civilization.
func (g *Game) disbandOrphanTravels() {
	kept := g.Travels[:0]
	for _, t := range g.Travels {
		if !g.Civs[t.Attacker].Alive {
			slog.Info("travel disbanded",
				"attacker", g.Civs[t.Attacker].City.Name,
				"defender", g.Civs[t.Defender].City.Name, "units", t.Units)
			continue
		}
		kept = append(kept, t)
	}
	g.Travels = kept
}

// resolveTravel runs the battle when a travel arrives. Attacker power is the
// number of units sent; defender power is summed over the garrison. A
// strictly stronger attacker eliminates the defender; otherwise the defender
// loses floor(attackerPower/2) units, smallest stacks first. The sent units
// are lost either way.
func (g *Game) resolveTravel(t *Travel) {
	def := g.Civs[t.Defender]
	if !def.Alive {
		return // defender fell to an earlier arrival
	}

	attackerPower := t.Units
	defenderPower := g.Power(t.Defender)

	if attackerPower > defenderPower {
		def.Alive = false
		def.City.Units = nil
		slog.Info("city conquered",
			"attacker", g.Civs[t.Attacker].City.Name, "defender", def.City.Name,
			"attack_power", attackerPower, "defense_power", defenderPower)
	} else {
		losses := attackerPower / 2
		g.removeUnits(def, losses)
		slog.Info("attack repelled",
			"attacker", g.Civs[t.Attacker].City.Name, "defender", def.City.Name,
			"attack_power", attackerPower, "defense_power", defenderPower, "defender_losses", losses)
	}

	g.checkElimination()
}

// Power returns the aggregate military strength of a civilization's garrison:
// the sum of unit count times unit attack across its stacks.
func (g *Game) Power(civIdx int) int {
	civ := g.Civs[civIdx]
	power := 0
	for _, stack := range civ.City.Units {
		if def := g.findUnit(stack.Name); def != nil {
			power += stack.Count * def.Attack
		}
	}
	return power
}

// checkElimination sets the game-over latch once the count of alive
// civilizations drops to one or fewer. The latch never clears; calling this
// again is a no-op.
func (g *Game) checkElimination() {
	if g.gameOver {
		return
	}
	if g.aliveCount() > 1 {
		return
	}
	g.gameOver = true
	for i, c := range g.Civs {
		if c.Alive {
			g.winner = i
			break
		}
	}
	if g.winner >= 0 {
		slog.Info("game over", "winner", g.Civs[g.winner].City.Name, "turn", g.Turn)
	} else {
		slog.Info("game over", "winner", "none", "turn", g.Turn)
	}
}
