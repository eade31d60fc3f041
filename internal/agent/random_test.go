package agent

import (
	"strconv"
	"strings"
	"testing"

	"github.com/napolitain/microciv/internal/game"
)

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		Turn:   1,
		Active: 1,
		Players: []game.PlayerSnapshot{
			{Name: "Player", Resources: 100, Alive: true},
			{Name: "Rival", Resources: 100, Alive: true},
		},
		Buildings: []string{"Farm", "Barracks"},
		Units:     []string{"Warrior"},
		Winner:    -1,
	}
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	view := testSnapshot()

	a, b := NewRandom(42), NewRandom(42)
	for i := 0; i < 20; i++ {
		x, _ := a.SelectAction(view, 1)
		y, _ := b.SelectAction(view, 1)
		if x != y {
			t.Fatalf("step %d: %q != %q for the same seed", i, x, y)
		}
	}
}

func TestRandomOnlyPicksLegalCommands(t *testing.T) {
	view := testSnapshot()
	legal := map[string]bool{
		"end":            true,
		"build farm":     true,
		"build barracks": true,
		"hire warrior":   true,
		"attack player":  true,
	}

	r := NewRandom(7)
	for i := 0; i < 100; i++ {
		action, ok := r.SelectAction(view, 1)
		if !ok {
			t.Fatal("random agent declined to act")
		}
		if !legal[action] {
			t.Fatalf("illegal command %q", action)
		}
		if strings.HasPrefix(action, "attack rival") {
			t.Fatal("agent targeted itself")
		}
	}
}

func TestRandomNeverTargetsDeadCivilizations(t *testing.T) {
	view := testSnapshot()
	view.Players[0].Alive = false

	r := NewRandom(11)
	for i := 0; i < 100; i++ {
		action, _ := r.SelectAction(view, 1)
		if strings.HasPrefix(action, "attack") {
			t.Fatalf("attack issued with no living target: %q", action)
		}
	}
}

func TestRandomPopupInputIsValidIndex(t *testing.T) {
	popup := game.PopupView{Title: "Build", Choices: []string{"Farm", "Barracks"}}

	r := NewRandom(3)
	for i := 0; i < 50; i++ {
		input := r.SelectPopupInput(testSnapshot(), 1, popup)
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(popup.Choices) {
			t.Fatalf("popup input %q out of range", input)
		}
	}

	if input := r.SelectPopupInput(testSnapshot(), 1, game.PopupView{Title: "Info"}); input != "" {
		t.Errorf("choiceless popup: got %q, want empty", input)
	}
}
