package game

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// PopupKind dispatches what submitting a popup choice does. Behavior is keyed
// on this tag, never on the display title.
type PopupKind int

const (
	// PopupInfo is purely informational; submitting it just closes it.
	PopupInfo PopupKind = iota
	// PopupBuild resolves its choice into a construction order.
	PopupBuild
	// PopupHire resolves its choice into a recruitment order.
	PopupHire
	// PopupAttack resolves its choice into an attack on the named city.
	PopupAttack
)

// Popup is a disambiguation or feedback dialog. An empty Choices list means
// free-text (or no) input.
type Popup struct {
	Kind    PopupKind
	Title   string
	Prompt  string
	Choices []string
	Input   string
}

// Popup returns the open popup, or nil.
func (g *Game) Popup() *Popup { return g.popup }

// ClosePopup discards the open popup without resolving it.
func (g *Game) ClosePopup() { g.popup = nil }

func (g *Game) openPopup(kind PopupKind, title, prompt string, choices []string) {
	g.popup = &Popup{Kind: kind, Title: title, Prompt: prompt, Choices: choices}
}

// openInfo opens a choice-less feedback popup, the surface for recoverable
// validation errors.
func (g *Game) openInfo(title, message string) {
	g.openPopup(PopupInfo, title, message, nil)
}

// ApplyAction parses and applies a free-text command for the active
// civilization. It returns true when a popup was opened and needs further
// input, either to disambiguate a valid command or to report why an invalid
// one was refused.
func (g *Game) ApplyAction(text string) bool {
	txt := strings.ToLower(strings.TrimSpace(text))
	if txt == "" {
		return false
	}
	if g.gameOver {
		g.openInfo("Action", capitalize(ErrGameOver.Error()))
		return true
	}
	if !g.Civs[g.Active].Alive {
		g.openInfo("Action", capitalize(ErrCivDead.Error()))
		return true
	}
	slog.Debug("action submitted", "civ", g.Civs[g.Active].City.Name, "action", txt)

	if txt == "end" || txt == "end turn" {
		g.EndTurn()
		return false
	}

	parts := strings.Fields(txt)
	switch parts[0] {
	case "build":
		if len(parts) < 2 {
			g.openPopup(PopupBuild, "Build", "Choose building type:", g.buildingNames())
			return true
		}
		if err := g.startConstruction(g.Active, parts[1]); err != nil {
			g.openInfo("Build", errorText(err, parts[1]))
			return true
		}
	case "hire", "recruit":
		if len(parts) < 2 {
			g.openPopup(PopupHire, "Hire", "Choose unit to hire:", g.unitNames())
			return true
		}
		if err := g.startRecruitment(g.Active, parts[1]); err != nil {
			g.openInfo("Hire", errorText(err, parts[1]))
			return true
		}
	case "attack":
		if len(parts) < 2 {
			g.openPopup(PopupAttack, "Attack", "Choose player to attack:", g.enemyNames())
			return true
		}
		amount := 0 // zero = send everything
		if len(parts) >= 3 {
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				g.openInfo("Attack", errorText(ErrInvalidAmount, parts[2]))
				return true
			}
			amount = n
		}
		target := g.findCiv(parts[1])
		if target < 0 {
			g.openInfo("Attack", errorText(ErrUnknownTarget, parts[1]))
			return true
		}
		if err := g.startAttack(g.Active, target, amount); err != nil {
			g.openInfo("Attack", errorText(err, parts[1]))
			return true
		}
	default:
		g.openInfo("Action", fmt.Sprintf("Unknown action: %s", txt))
		return true
	}

	return false
}

// SubmitPopupInput feeds text into the open popup and resolves it. It returns
// whether a popup was present. Resolution tries an exact 1-based index into
// the choices first, then a case-insensitive prefix match taking the first
// hit; unresolved input closes the popup without any effect.
func (g *Game) SubmitPopupInput(text string) bool {
	if g.popup == nil {
		return false
	}
	popup := g.popup
	popup.Input = text
	g.popup = nil

	if len(popup.Choices) == 0 {
		return true // informational, nothing to resolve
	}

	chosen, ok := resolveChoice(popup.Choices, text)
	if !ok {
		slog.Debug("popup input unresolved", "title", popup.Title, "input", text)
		return true
	}

	// Both entry points funnel into the same validated operations, so a
	// popup-selected command can fail and reopen a feedback popup exactly
	// like a direct command.
	switch popup.Kind {
	case PopupBuild:
		if err := g.startConstruction(g.Active, chosen); err != nil {
			g.openInfo("Build", errorText(err, chosen))
		}
	case PopupHire:
		if err := g.startRecruitment(g.Active, chosen); err != nil {
			g.openInfo("Hire", errorText(err, chosen))
		}
	case PopupAttack:
		target := g.findCiv(chosen)
		if target < 0 {
			g.openInfo("Attack", errorText(ErrUnknownTarget, chosen))
			return true
		}
		if err := g.startAttack(g.Active, target, 0); err != nil {
			g.openInfo("Attack", errorText(err, chosen))
		}
	case PopupInfo:
	}
	return true
}

// resolveChoice maps popup input to one of the choices: exact 1-based index,
// then first case-insensitive prefix match.
func resolveChoice(choices []string, input string) (string, bool) {
	sel := strings.TrimSpace(input)
	if sel == "" {
		return "", false
	}
	if idx, err := strconv.Atoi(sel); err == nil {
		if idx >= 1 && idx <= len(choices) {
			return choices[idx-1], true
		}
		return "", false
	}
	lower := strings.ToLower(sel)
	for _, c := range choices {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			return c, true
		}
	}
	return "", false
}

// errorText renders a validation error for popup display, attaching the
// offending name where it helps.
func errorText(err error, subject string) string {
	switch err {
	case ErrUnknownBuilding, ErrUnknownUnit, ErrUnknownTarget, ErrInvalidAmount:
		return fmt.Sprintf("%s: %s", capitalize(err.Error()), subject)
	default:
		return capitalize(err.Error())
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (g *Game) buildingNames() []string {
	names := make([]string, 0, len(g.Buildings))
	for _, b := range g.Buildings {
		names = append(names, b.Name)
	}
	return names
}

func (g *Game) unitNames() []string {
	names := make([]string, 0, len(g.Units))
	for _, u := range g.Units {
		names = append(names, u.Name)
	}
	return names
}

// enemyNames lists the cities the active civilization may attack.
func (g *Game) enemyNames() []string {
	var names []string
	for i, c := range g.Civs {
		if i != g.Active && c.Alive {
			names = append(names, c.City.Name)
		}
	}
	return names
}
