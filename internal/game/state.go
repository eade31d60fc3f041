package game

import (
	"strings"

	"github.com/napolitain/microciv/internal/models"
	"github.com/napolitain/microciv/internal/terrain"
)

// BuildingInstance is a completed building inside a city.
type BuildingInstance struct {
	Name  string
	Level int
}

// UnitStack is a group of identical units garrisoned in a city.
type UnitStack struct {
	Name  string
	Count int
}

// City is the physical settlement owned by a civilization.
type City struct {
	Name          string
	X, Y          int
	Color         string
	Kind          models.PlayerKind
	BuildingSlots int
	UnitSlots     int
	Buildings     []BuildingInstance
	Units         []UnitStack
}

// UnitCount returns the total number of garrisoned units across all stacks.
func (c *City) UnitCount() int {
	total := 0
	for _, s := range c.Units {
		total += s.Count
	}
	return total
}

// Construction is an in-flight building order. At most one per civilization.
type Construction struct {
	Building  string
	Remaining int
	Total     int
}

// Recruitment is an in-flight unit order. At most one per civilization.
type Recruitment struct {
	Unit      string
	Remaining int
	Total     int
	Amount    int
}

// Civilization is one player slot. Created once at game start and only
// mutated afterwards.
type Civilization struct {
	Resources     int
	Spent         int // cumulative resources spent, for the economic victory check
	City          City
	Alive         bool
	Constructions []Construction
	Recruitments  []Recruitment
}

// Travel is an attacking force in transit between two cities. Units inside a
// travel exist nowhere else: they were debited from the attacker when the
// attack was validated.
type Travel struct {
	Attacker  int
	Defender  int
	Units     int
	Remaining int
	Total     int
	Path      []terrain.Point
}

// Game owns the whole simulation state: the aggregate of GameState in the
// data model plus the registered agents driving non-human civilizations.
type Game struct {
	Map       *terrain.Grid
	Turn      int
	Active    int
	Civs      []*Civilization
	Travels   []*Travel
	Buildings []models.BuildingDef
	Units     []models.UnitDef
	Victory   models.VictoryConfig

	popup    *Popup
	gameOver bool
	winner   int

	agents []Agent
}

// New builds a game from a validated config. The terrain is generated from
// the configured seed, and each city site is flattened so no civilization
// starts unreachable.
func New(cfg *models.Config) *Game {
	grid := terrain.Generate(cfg.Game.Seed, cfg.Game.MapWidth, cfg.Game.MapHeight)

	civs := make([]*Civilization, 0, len(cfg.Cities))
	for _, city := range cfg.Cities {
		grid.ClearSite(city.X, city.Y)
		civs = append(civs, &Civilization{
			Resources: city.StartingResources,
			Alive:     true,
			City: City{
				Name:          city.Name,
				X:             city.X,
				Y:             city.Y,
				Color:         city.Color,
				Kind:          city.Kind,
				BuildingSlots: city.BuildingSlots,
				UnitSlots:     city.UnitSlots,
			},
		})
	}

	return &Game{
		Map:       grid,
		Turn:      1,
		Civs:      civs,
		Buildings: cfg.Buildings,
		Units:     cfg.Units,
		Victory:   cfg.Victory,
		winner:    -1,
		agents:    make([]Agent, len(civs)),
	}
}

// Over reports whether the game-over latch is set.
func (g *Game) Over() bool { return g.gameOver }

// Winner returns the winning civilization index, or -1 while the game runs.
func (g *Game) Winner() int { return g.winner }

// findBuilding looks up a building template by case-insensitive name.
func (g *Game) findBuilding(name string) *models.BuildingDef {
	for i := range g.Buildings {
		if strings.EqualFold(g.Buildings[i].Name, name) {
			return &g.Buildings[i]
		}
	}
	return nil
}

// findUnit looks up a unit template by case-insensitive name.
func (g *Game) findUnit(name string) *models.UnitDef {
	for i := range g.Units {
		if strings.EqualFold(g.Units[i].Name, name) {
			return &g.Units[i]
		}
	}
	return nil
}

// findCiv looks up a civilization index by case-insensitive city name.
func (g *Game) findCiv(name string) int {
	for i, c := range g.Civs {
		if strings.EqualFold(c.City.Name, name) {
			return i
		}
	}
	return -1
}

// aliveCount returns how many civilizations are still in the game.
func (g *Game) aliveCount() int {
	n := 0
	for _, c := range g.Civs {
		if c.Alive {
			n++
		}
	}
	return n
}
