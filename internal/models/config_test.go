package models

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{
			"zero map size",
			func(c *Config) { c.Game.MapWidth = 0 },
			ErrInvalidField,
		},
		{
			"empty seed",
			func(c *Config) { c.Game.Seed = "" },
			ErrMissingField,
		},
		{
			"single city",
			func(c *Config) { c.Cities = c.Cities[:1] },
			ErrInvalidField,
		},
		{
			"no buildings",
			func(c *Config) { c.Buildings = nil },
			ErrMissingField,
		},
		{
			"unnamed unit",
			func(c *Config) { c.Units[0].Name = "" },
			ErrMissingField,
		},
		{
			"negative attack",
			func(c *Config) { c.Units[0].Attack = -1 },
			ErrInvalidField,
		},
		{
			"duplicate building name",
			func(c *Config) { c.Buildings[1].Name = "farm" },
			ErrInvalidField,
		},
		{
			"zero build time",
			func(c *Config) { c.Buildings[0].BuildTime = 0 },
			ErrInvalidField,
		},
		{
			"producer without unit id",
			func(c *Config) { c.Buildings[1].Production.UnitID = "" },
			ErrMissingField,
		},
		{
			"producer for unknown unit",
			func(c *Config) { c.Buildings[1].Production.UnitID = "Dragon" },
			ErrInvalidField,
		},
		{
			"bad production type",
			func(c *Config) { c.Buildings[0].Production.Type = "gold" },
			ErrInvalidField,
		},
		{
			"duplicate city name",
			func(c *Config) { c.Cities[1].Name = "PLAYER" },
			ErrInvalidField,
		},
		{
			"city off the map",
			func(c *Config) { c.Cities[0].X = 1000 },
			ErrInvalidField,
		},
		{
			"zero slots",
			func(c *Config) { c.Cities[0].BuildingSlots = 0 },
			ErrInvalidField,
		},
		{
			"bad player kind",
			func(c *Config) { c.Cities[0].Kind = "alien" },
			ErrInvalidField,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("bad config accepted")
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}
