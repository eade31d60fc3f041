package game

// PlayerSnapshot is one civilization's public summary.
type PlayerSnapshot struct {
	Name      string `json:"name"`
	Resources int    `json:"resources"`
	Buildings int    `json:"buildings"`
	Units     int    `json:"units"`
	Alive     bool   `json:"alive"`
}

// Snapshot is an immutable view of the game, built fresh per request. It
// never aliases live state, so it can safely cross the agent-bridge boundary
// and feed UI rendering.
type Snapshot struct {
	Turn      int              `json:"turn"`
	Active    int              `json:"player_turn"`
	Players   []PlayerSnapshot `json:"players"`
	Buildings []string         `json:"buildings"`
	Units     []string         `json:"units"`
	Seed      string           `json:"seed"`
	Over      bool             `json:"game_over"`
	Winner    int              `json:"winner"`
}

// PopupView is the immutable copy of an open popup handed to agents.
type PopupView struct {
	Title   string   `json:"title"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
}

// Snapshot builds a fresh view of the current state.
func (g *Game) Snapshot() Snapshot {
	players := make([]PlayerSnapshot, 0, len(g.Civs))
	for _, c := range g.Civs {
		players = append(players, PlayerSnapshot{
			Name:      c.City.Name,
			Resources: c.Resources,
			Buildings: len(c.City.Buildings),
			Units:     c.City.UnitCount(),
			Alive:     c.Alive,
		})
	}
	return Snapshot{
		Turn:      g.Turn,
		Active:    g.Active,
		Players:   players,
		Buildings: append([]string(nil), g.buildingNames()...),
		Units:     append([]string(nil), g.unitNames()...),
		Seed:      g.Map.Seed,
		Over:      g.gameOver,
		Winner:    g.winner,
	}
}

// PopupView copies the open popup for an agent request, or returns false when
// no popup is open.
func (g *Game) PopupView() (PopupView, bool) {
	if g.popup == nil {
		return PopupView{}, false
	}
	return PopupView{
		Title:   g.popup.Title,
		Prompt:  g.popup.Prompt,
		Choices: append([]string(nil), g.popup.Choices...),
	}, true
}
