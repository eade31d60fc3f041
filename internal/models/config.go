package models

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failures are fatal: the simulation refuses to start on a bad
// config, and the error must name the offending field.
var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidField = errors.New("invalid field value")
)

// Config is the full, already-typed game configuration. It is consumed as-is
// by the simulation core and never reparsed.
type Config struct {
	Game      GameConfig    `json:"game"`
	Buildings []BuildingDef `json:"buildings"`
	Units     []UnitDef     `json:"units"`
	Cities    []CityConfig  `json:"cities"`
	Victory   VictoryConfig `json:"victory"`
}

// Validate checks the config for completeness and internal consistency.
func (c *Config) Validate() error {
	if c.Game.MapWidth <= 0 || c.Game.MapHeight <= 0 {
		return fmt.Errorf("%w: game.map_width/map_height must be positive, got %dx%d",
			ErrInvalidField, c.Game.MapWidth, c.Game.MapHeight)
	}
	if c.Game.Seed == "" {
		return fmt.Errorf("%w: game.seed", ErrMissingField)
	}
	if len(c.Cities) < 2 {
		return fmt.Errorf("%w: cities: need at least 2, got %d", ErrInvalidField, len(c.Cities))
	}
	if len(c.Buildings) == 0 {
		return fmt.Errorf("%w: buildings", ErrMissingField)
	}

	units := make(map[string]bool, len(c.Units))
	for i, u := range c.Units {
		if u.Name == "" {
			return fmt.Errorf("%w: units[%d].name", ErrMissingField, i)
		}
		if u.Attack < 0 {
			return fmt.Errorf("%w: units[%d].attack: %d", ErrInvalidField, i, u.Attack)
		}
		units[strings.ToLower(u.Name)] = true
	}

	names := make(map[string]bool, len(c.Buildings))
	for i, b := range c.Buildings {
		if b.Name == "" {
			return fmt.Errorf("%w: buildings[%d].name", ErrMissingField, i)
		}
		key := strings.ToLower(b.Name)
		if names[key] {
			return fmt.Errorf("%w: buildings[%d].name: duplicate %q", ErrInvalidField, i, b.Name)
		}
		names[key] = true
		if b.Cost < 0 || b.BuildTime <= 0 {
			return fmt.Errorf("%w: buildings[%d]: cost=%d build_time=%d", ErrInvalidField, i, b.Cost, b.BuildTime)
		}
		switch b.Production.Type {
		case ProduceResource:
		case ProduceUnit:
			if b.Production.UnitID == "" {
				return fmt.Errorf("%w: buildings[%d].production.unit_id", ErrMissingField, i)
			}
			if !units[strings.ToLower(b.Production.UnitID)] {
				return fmt.Errorf("%w: buildings[%d].production.unit_id: unknown unit %q",
					ErrInvalidField, i, b.Production.UnitID)
			}
			if b.Production.Time <= 0 {
				return fmt.Errorf("%w: buildings[%d].production.time: %d", ErrInvalidField, i, b.Production.Time)
			}
		default:
			return fmt.Errorf("%w: buildings[%d].production.type: %q", ErrInvalidField, i, b.Production.Type)
		}
	}

	cityNames := make(map[string]bool, len(c.Cities))
	for i, city := range c.Cities {
		if city.Name == "" {
			return fmt.Errorf("%w: cities[%d].name", ErrMissingField, i)
		}
		key := strings.ToLower(city.Name)
		if cityNames[key] {
			return fmt.Errorf("%w: cities[%d].name: duplicate %q", ErrInvalidField, i, city.Name)
		}
		cityNames[key] = true
		if city.X < 0 || city.X >= c.Game.MapWidth || city.Y < 0 || city.Y >= c.Game.MapHeight {
			return fmt.Errorf("%w: cities[%d]: position (%d,%d) outside %dx%d map",
				ErrInvalidField, i, city.X, city.Y, c.Game.MapWidth, c.Game.MapHeight)
		}
		if city.BuildingSlots <= 0 || city.UnitSlots <= 0 {
			return fmt.Errorf("%w: cities[%d]: building_slots=%d unit_slots=%d",
				ErrInvalidField, i, city.BuildingSlots, city.UnitSlots)
		}
		switch city.Kind {
		case PlayerHuman, PlayerAgent:
		default:
			return fmt.Errorf("%w: cities[%d].kind: %q", ErrInvalidField, i, city.Kind)
		}
	}

	return nil
}

// DefaultConfig returns the built-in two-civilization setup used when no
// config file is supplied: a farm economy, a barracks recruiting warriors,
// one human city and one agent city.
func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			Seed:      "pokemon",
			MapWidth:  160,
			MapHeight: 40,
			UIColor:   "#FFFFFF",
		},
		Buildings: []BuildingDef{
			{
				Name:      "Farm",
				Cost:      10,
				BuildTime: 2,
				Slots:     1,
				Production: Production{
					Type:   ProduceResource,
					Amount: 5,
					Time:   1,
				},
			},
			{
				Name:      "Barracks",
				Cost:      20,
				BuildTime: 4,
				Slots:     1,
				Production: Production{
					Type:   ProduceUnit,
					Cost:   5,
					Time:   3,
					UnitID: "Warrior",
				},
			},
		},
		Units: []UnitDef{
			{Name: "Warrior", Attack: 1},
		},
		Cities: []CityConfig{
			{
				Name:              "Player",
				X:                 10,
				Y:                 10,
				Color:             "#0000FF",
				Kind:              PlayerHuman,
				BuildingSlots:     5,
				UnitSlots:         10,
				StartingResources: 100,
			},
			{
				Name:              "Rival",
				X:                 20,
				Y:                 20,
				Color:             "#FF0000",
				Kind:              PlayerAgent,
				BuildingSlots:     5,
				UnitSlots:         10,
				StartingResources: 100,
			},
		},
		Victory: VictoryConfig{
			TurnLimit:      500,
			ResourcesSpent: 300,
		},
	}
}
