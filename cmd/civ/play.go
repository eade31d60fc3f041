package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/microciv/internal/game"
	"github.com/napolitain/microciv/internal/models"
)

// uiMode mirrors the interactive input state machine: idle, typing an action,
// or answering a popup.
type uiMode int

const (
	modeNormal uiMode = iota
	modeAction
	modePopup
)

type playModel struct {
	g     *game.Game
	mode  uiMode
	input string

	styles struct {
		title  lipgloss.Style
		active lipgloss.Style
		popup  lipgloss.Style
		help   lipgloss.Style
	}
}

func newPlayModel(g *game.Game) playModel {
	m := playModel{g: g}
	m.styles.title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	m.styles.active = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	m.styles.popup = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("212")).
		Padding(0, 1)
	m.styles.help = lipgloss.NewStyle().Faint(true)
	return m
}

func (m playModel) Init() tea.Cmd { return nil }

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeNormal:
		switch key.String() {
		case "q":
			return m, tea.Quit
		case "a":
			if !m.g.Over() {
				m.input = ""
				m.mode = modeAction
			}
		}

	case modeAction:
		switch key.Type {
		case tea.KeyEnter:
			opened := m.g.ApplyAction(m.input)
			m.input = ""
			if opened {
				m.mode = modePopup
			} else {
				m.mode = modeNormal
				m.runAgents()
			}
		case tea.KeyEsc:
			m.input = ""
			m.mode = modeNormal
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeyRunes, tea.KeySpace:
			m.input += string(key.Runes)
			if key.Type == tea.KeySpace {
				m.input += " "
			}
		}

	case modePopup:
		switch key.Type {
		case tea.KeyEnter:
			m.g.SubmitPopupInput(m.input)
			m.input = ""
			if m.g.Popup() == nil {
				m.mode = modeNormal
				m.runAgents()
			}
		case tea.KeyEsc:
			m.g.ClosePopup()
			m.input = ""
			m.mode = modeNormal
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeyRunes, tea.KeySpace:
			m.input += string(key.Runes)
			if key.Type == tea.KeySpace {
				m.input += " "
			}
		}
	}

	return m, nil
}

// runAgents lets agent-controlled civilizations play whenever the human's
// command handed the turn over.
func (m *playModel) runAgents() {
	if m.g.Civs[m.g.Active].City.Kind == models.PlayerAgent {
		m.g.RunAgentTurn()
	}
}

func (m playModel) View() string {
	var b strings.Builder
	snap := m.g.Snapshot()

	b.WriteString(m.styles.title.Render("microciv") + "\n")
	fmt.Fprintf(&b, "Turn %d — seed %q\n\n", snap.Turn, snap.Seed)

	for i, p := range snap.Players {
		line := fmt.Sprintf("%-12s %5d res  %2d bld  %3d units", p.Name, p.Resources, p.Buildings, p.Units)
		if !p.Alive {
			line += "  [defeated]"
		}
		if i == snap.Active {
			line = m.styles.active.Render("▶ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if snap.Over {
		if snap.Winner >= 0 {
			fmt.Fprintf(&b, "Game over — %s wins!\n", snap.Players[snap.Winner].Name)
		} else {
			b.WriteString("Game over.\n")
		}
		b.WriteString(m.styles.help.Render("q quit") + "\n")
		return b.String()
	}

	if p := m.g.Popup(); p != nil {
		var pb strings.Builder
		pb.WriteString(p.Title + "\n" + p.Prompt + "\n")
		for i, c := range p.Choices {
			fmt.Fprintf(&pb, "  %d. %s\n", i+1, c)
		}
		pb.WriteString("> " + m.input + "█")
		b.WriteString(m.styles.popup.Render(pb.String()) + "\n")
		b.WriteString(m.styles.help.Render("enter submit · esc cancel") + "\n")
		return b.String()
	}

	switch m.mode {
	case modeAction:
		fmt.Fprintf(&b, "action> %s█\n", m.input)
		b.WriteString(m.styles.help.Render("enter submit · esc cancel · commands: end, build, hire, attack") + "\n")
	default:
		b.WriteString(m.styles.help.Render("a action · q quit") + "\n")
	}
	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, err := newGame(ctx)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(newPlayModel(g)).Run(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
