package models

// ProductionType classifies what a building produces once completed.
type ProductionType string

const (
	ProduceResource ProductionType = "resource"
	ProduceUnit     ProductionType = "unit"
)

// PlayerKind tags who controls a civilization.
type PlayerKind string

const (
	PlayerHuman PlayerKind = "human"
	PlayerAgent PlayerKind = "agent"
)

// Production describes the per-turn output of a completed building.
// Resource producers credit Amount to the owner every turn. Unit producers
// recruit UnitID; Cost and Time are the recruitment cost and duration,
// charged per order instead of anything on the unit template itself.
type Production struct {
	Type   ProductionType `json:"type"`
	Amount int            `json:"amount"`
	Cost   int            `json:"cost"`
	Time   int            `json:"time"`
	UnitID string         `json:"unit_id,omitempty"`
}

// BuildingDef is an immutable building template shared by all civilizations.
type BuildingDef struct {
	Name          string     `json:"name"`
	Cost          int        `json:"cost"`
	BuildTime     int        `json:"build_time"`
	Slots         int        `json:"slots"`
	Prerequisites []string   `json:"prerequisites,omitempty"`
	Production    Production `json:"production"`
}

// UnitDef is an immutable unit template shared by all civilizations.
type UnitDef struct {
	Name   string `json:"name"`
	Attack int    `json:"attack"`
}

// CityConfig is the initial definition of one civilization's city.
type CityConfig struct {
	Name              string     `json:"name"`
	X                 int        `json:"x"`
	Y                 int        `json:"y"`
	Color             string     `json:"color"`
	Kind              PlayerKind `json:"kind"`
	BuildingSlots     int        `json:"building_slots"`
	UnitSlots         int        `json:"unit_slots"`
	StartingResources int        `json:"starting_resources"`
}

// VictoryConfig holds the optional end-of-game thresholds. Zero values
// disable the corresponding condition.
type VictoryConfig struct {
	TurnLimit      int `json:"turn_limit"`
	ResourcesSpent int `json:"resources_spent"`
}

// GameConfig holds map and presentation settings consumed at startup.
type GameConfig struct {
	Seed      string `json:"seed"`
	MapWidth  int    `json:"map_width"`
	MapHeight int    `json:"map_height"`
	UIColor   string `json:"ui_color"`
}
