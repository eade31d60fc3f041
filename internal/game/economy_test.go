package game

import (
	"errors"
	"testing"
)

func TestStartConstructionDebitsAndQueues(t *testing.T) {
	g := newTestGame()
	civ := g.Civs[0]
	before := civ.Resources

	if err := g.startConstruction(0, "farm"); err != nil {
		t.Fatalf("startConstruction failed: %v", err)
	}
	if civ.Resources != before-10 {
		t.Errorf("resources: got %d, want %d", civ.Resources, before-10)
	}
	if len(civ.Constructions) != 1 {
		t.Fatalf("constructions: got %d, want 1", len(civ.Constructions))
	}
	cons := civ.Constructions[0]
	if cons.Building != "Farm" || cons.Remaining != 2 || cons.Total != 2 {
		t.Errorf("unexpected construction: %+v", cons)
	}
}

func TestStartConstructionValidation(t *testing.T) {
	g := newTestGame()
	civ := g.Civs[0]

	if err := g.startConstruction(0, "palace"); !errors.Is(err, ErrUnknownBuilding) {
		t.Errorf("unknown building: got %v, want ErrUnknownBuilding", err)
	}

	if err := g.startConstruction(0, "farm"); err != nil {
		t.Fatalf("first construction failed: %v", err)
	}
	if err := g.startConstruction(0, "farm"); !errors.Is(err, ErrAlreadyInProgress) {
		t.Errorf("second construction: got %v, want ErrAlreadyInProgress", err)
	}

	civ.Constructions = nil
	civ.Resources = 5
	if err := g.startConstruction(0, "farm"); !errors.Is(err, ErrInsufficientResources) {
		t.Errorf("poor civ: got %v, want ErrInsufficientResources", err)
	}

	civ.Resources = 1000
	for i := 0; i < civ.City.BuildingSlots; i++ {
		civ.City.Buildings = append(civ.City.Buildings, BuildingInstance{Name: "Farm", Level: 1})
	}
	if err := g.startConstruction(0, "farm"); !errors.Is(err, ErrNoSlot) {
		t.Errorf("full city: got %v, want ErrNoSlot", err)
	}
}

// Slot accounting counts queued constructions against the cap, so built +
// queued can never exceed the configured slots.
func TestSlotInvariantHoldsWithQueue(t *testing.T) {
	g := newTestGame()
	civ := g.Civs[0]
	civ.Resources = 10000

	for i := 0; i < civ.City.BuildingSlots-1; i++ {
		civ.City.Buildings = append(civ.City.Buildings, BuildingInstance{Name: "Farm", Level: 1})
	}
	if err := g.startConstruction(0, "farm"); err != nil {
		t.Fatalf("last slot refused: %v", err)
	}
	if err := g.startConstruction(0, "farm"); err == nil {
		t.Fatal("construction accepted past the slot cap")
	}
	if got := len(civ.City.Buildings) + len(civ.Constructions); got > civ.City.BuildingSlots {
		t.Errorf("slot invariant broken: %d > %d", got, civ.City.BuildingSlots)
	}
}

func TestOnTurnStartFinalizesConstruction(t *testing.T) {
	g := newTestGame()
	civ := g.Civs[0]
	if err := g.startConstruction(0, "farm"); err != nil {
		t.Fatalf("startConstruction failed: %v", err)
	}

	g.onTurnStart(0)
	if len(civ.Constructions) != 1 || civ.Constructions[0].Remaining != 1 {
		t.Fatalf("after 1 tick: %+v", civ.Constructions)
	}

	g.onTurnStart(0)
	if len(civ.Constructions) != 0 {
		t.Fatalf("construction not finalized: %+v", civ.Constructions)
	}
	if len(civ.City.Buildings) != 1 || civ.City.Buildings[0].Name != "Farm" {
		t.Fatalf("built buildings: %+v", civ.City.Buildings)
	}

	// Completed farm now yields 5 per turn.
	before := civ.Resources
	g.onTurnStart(0)
	if civ.Resources != before+5 {
		t.Errorf("farm income: got %d, want %d", civ.Resources, before+5)
	}
}

func TestRecruitmentRequiresCompletedProducer(t *testing.T) {
	g := newTestGame()
	civ := g.Civs[0]

	if err := g.startRecruitment(0, "warrior"); !errors.Is(err, ErrNoProducer) {
		t.Errorf("no barracks: got %v, want ErrNoProducer", err)
	}

	// A queued barracks is not a producer yet.
	if err := g.startConstruction(0, "barracks"); err != nil {
		t.Fatalf("startConstruction failed: %v", err)
	}
	if err := g.startRecruitment(0, "warrior"); !errors.Is(err, ErrNoProducer) {
		t.Errorf("queued barracks: got %v, want ErrNoProducer", err)
	}

	civ.Constructions = nil
	civ.City.Buildings = append(civ.City.Buildings, BuildingInstance{Name: "Barracks", Level: 1})
	if err := g.startRecruitment(0, "warrior"); err != nil {
		t.Errorf("with barracks: %v", err)
	}
	// Producer cost is 5 (the barracks production cost), not the unit's.
	if civ.Resources != 100-20-5 {
		t.Errorf("resources after recruit: got %d, want %d", civ.Resources, 100-20-5)
	}
	if len(civ.Recruitments) != 1 || civ.Recruitments[0].Remaining != 3 {
		t.Errorf("recruitment: %+v", civ.Recruitments)
	}
}

func TestRecruitmentValidation(t *testing.T) {
	g := newTestGame()
	civ := g.Civs[0]
	civ.City.Buildings = append(civ.City.Buildings, BuildingInstance{Name: "Barracks", Level: 1})

	if err := g.startRecruitment(0, "dragon"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("unknown unit: got %v, want ErrUnknownUnit", err)
	}

	if err := g.startRecruitment(0, "warrior"); err != nil {
		t.Fatalf("first recruitment failed: %v", err)
	}
	if err := g.startRecruitment(0, "warrior"); !errors.Is(err, ErrAlreadyInProgress) {
		t.Errorf("second recruitment: got %v, want ErrAlreadyInProgress", err)
	}

	civ.Recruitments = nil
	garrison(g, 0, "Warrior", civ.City.UnitSlots)
	if err := g.startRecruitment(0, "warrior"); !errors.Is(err, ErrNoSlot) {
		t.Errorf("full garrison: got %v, want ErrNoSlot", err)
	}

	civ.City.Units = nil
	civ.Resources = 2
	if err := g.startRecruitment(0, "warrior"); !errors.Is(err, ErrInsufficientResources) {
		t.Errorf("poor civ: got %v, want ErrInsufficientResources", err)
	}
}

func TestRecruitedUnitsMergeIntoStacks(t *testing.T) {
	g := newTestGame()
	civ := g.Civs[0]
	civ.City.Buildings = append(civ.City.Buildings, BuildingInstance{Name: "Barracks", Level: 1})

	for round := 0; round < 2; round++ {
		if err := g.startRecruitment(0, "warrior"); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		for i := 0; i < 3; i++ {
			g.onTurnStart(0)
		}
	}

	if len(civ.City.Units) != 1 {
		t.Fatalf("stacks: got %d, want 1 (merged)", len(civ.City.Units))
	}
	if civ.City.Units[0].Count != 2 {
		t.Errorf("stack count: got %d, want 2", civ.City.Units[0].Count)
	}
}

// A refused order must leave the balance untouched and surface as a popup.
func TestBuildRefusedWhenPoorOpensPopup(t *testing.T) {
	g := newTestGame()
	civ := g.Civs[0]
	civ.Resources = 3

	opened := g.ApplyAction("build farm")
	if !opened {
		t.Fatal("expected a popup")
	}
	p := g.Popup()
	if p == nil || p.Title != "Build" {
		t.Fatalf("popup: %+v", p)
	}
	if p.Prompt == "" {
		t.Error("popup has no error message")
	}
	if civ.Resources != 3 {
		t.Errorf("balance changed on refused build: %d", civ.Resources)
	}
	if len(civ.Constructions) != 0 {
		t.Errorf("construction queued despite refusal: %+v", civ.Constructions)
	}
}
