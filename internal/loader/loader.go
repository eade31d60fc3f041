// Package loader reads and validates game configuration files. Config errors
// are fatal by design: a simulation never starts from a half-valid config,
// and every failure names the file and field involved.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/napolitain/microciv/internal/models"
)

// Load reads a JSON config file and validates it.
func Load(path string) (*models.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates raw config bytes. The name is only used in
// error messages.
func Parse(data []byte, name string) (*models.Config, error) {
	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", name, err)
	}
	return &cfg, nil
}
