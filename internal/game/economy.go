package game

import (
	"log/slog"

	"github.com/napolitain/microciv/internal/models"
)

// startConstruction validates and enqueues a building order for civ. The cost
// is debited immediately; the building materializes when the timer runs out.
func (g *Game) startConstruction(civIdx int, buildingName string) error {
	def := g.findBuilding(buildingName)
	if def == nil {
		return ErrUnknownBuilding
	}
	civ := g.Civs[civIdx]
	if len(civ.Constructions) > 0 {
		return ErrAlreadyInProgress
	}
	if len(civ.City.Buildings)+len(civ.Constructions) >= civ.City.BuildingSlots {
		return ErrNoSlot
	}
	if civ.Resources < def.Cost {
		return ErrInsufficientResources
	}

	civ.Resources -= def.Cost
	civ.Spent += def.Cost
	civ.Constructions = append(civ.Constructions, Construction{
		Building:  def.Name,
		Remaining: def.BuildTime,
		Total:     def.BuildTime,
	})
	slog.Info("construction started", "civ", civ.City.Name, "building", def.Name, "turns", def.BuildTime)
	return nil
}

// startRecruitment validates and enqueues a unit order for civ. Recruitment
// requires a completed producer building; its production cost and time apply,
// not anything on the unit template.
func (g *Game) startRecruitment(civIdx int, unitName string) error {
	def := g.findUnit(unitName)
	if def == nil {
		return ErrUnknownUnit
	}
	civ := g.Civs[civIdx]

	producer := g.findProducer(civ, def.Name)
	if producer == nil {
		return ErrNoProducer
	}
	if len(civ.Recruitments) > 0 {
		return ErrAlreadyInProgress
	}
	if civ.City.UnitCount()+queuedUnits(civ) >= civ.City.UnitSlots {
		return ErrNoSlot
	}
	cost := producer.Production.Cost
	if civ.Resources < cost {
		return ErrInsufficientResources
	}

	civ.Resources -= cost
	civ.Spent += cost
	civ.Recruitments = append(civ.Recruitments, Recruitment{
		Unit:      def.Name,
		Remaining: producer.Production.Time,
		Total:     producer.Production.Time,
		Amount:    1,
	})
	slog.Info("recruitment started", "civ", civ.City.Name, "unit", def.Name, "turns", producer.Production.Time)
	return nil
}

// findProducer returns the template of a completed building in civ's city
// whose production yields the named unit.
func (g *Game) findProducer(civ *Civilization, unitName string) *models.BuildingDef {
	for _, inst := range civ.City.Buildings {
		def := g.findBuilding(inst.Name)
		if def == nil || def.Production.Type != models.ProduceUnit {
			continue
		}
		if def.Production.UnitID == unitName {
			return def
		}
	}
	return nil
}

// queuedUnits counts units tied up in pending recruitments.
func queuedUnits(civ *Civilization) int {
	n := 0
	for _, r := range civ.Recruitments {
		n += r.Amount
	}
	return n
}

// onTurnStart runs the per-turn economy for the civilization that just became
// active: production income, order timers, order finalization. It also ticks
// the travels this civilization launched, so every travel advances exactly
// once per full round.
func (g *Game) onTurnStart(civIdx int) {
	civ := g.Civs[civIdx]
	if !civ.Alive {
		return
	}

	// Income from completed resource producers.
	for _, inst := range civ.City.Buildings {
		def := g.findBuilding(inst.Name)
		if def != nil && def.Production.Type == models.ProduceResource {
			civ.Resources += def.Production.Amount
		}
	}

	// Constructions: tick, then finalize the ones that reached zero.
	remaining := civ.Constructions[:0]
	for _, cons := range civ.Constructions {
		if cons.Remaining > 0 {
			cons.Remaining--
		}
		if cons.Remaining == 0 {
			civ.City.Buildings = append(civ.City.Buildings, BuildingInstance{Name: cons.Building, Level: 1})
			slog.Info("construction completed", "civ", civ.City.Name, "building", cons.Building)
			continue
		}
		remaining = append(remaining, cons)
	}
	civ.Constructions = remaining

	// Recruitments: same lifecycle; finished units merge into an existing
	// stack of the same type.
	pending := civ.Recruitments[:0]
	for _, rec := range civ.Recruitments {
		if rec.Remaining > 0 {
			rec.Remaining--
		}
		if rec.Remaining == 0 {
			g.addUnits(civ, rec.Unit, rec.Amount)
			slog.Info("recruitment completed", "civ", civ.City.Name, "unit", rec.Unit, "amount", rec.Amount)
			continue
		}
		pending = append(pending, rec)
	}
	civ.Recruitments = pending

	g.tickTravels(civIdx)
}

// addUnits merges count units into civ's stack of the given type, creating
// the stack if absent.
func (g *Game) addUnits(civ *Civilization, unitName string, count int) {
	for i := range civ.City.Units {
		if civ.City.Units[i].Name == unitName {
			civ.City.Units[i].Count += count
			return
		}
	}
	civ.City.Units = append(civ.City.Units, UnitStack{Name: unitName, Count: count})
}
