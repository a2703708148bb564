package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/constants"
)

// Config is the full server configuration: defaults, overridden by the
// optional JSON config file, overridden by environment variables.
type Config struct {
	ServerAddress string `json:"server_address" env:"SARANDA_ADDR"`
	DBPath        string `json:"db_path" env:"SARANDA_DB"`

	// SpeciesBaseURL points at a PokeAPI-compatible catalog service.
	SpeciesBaseURL        string `json:"species_base_url" env:"SARANDA_SPECIES_URL"`
	CatalogTimeoutSeconds int    `json:"catalog_timeout_seconds" env:"SARANDA_CATALOG_TIMEOUT"`

	// RegionsPath locates the YAML region/encounter table.
	RegionsPath string `json:"regions_path" env:"SARANDA_REGIONS"`

	PlayerName string `json:"player_name" env:"SARANDA_PLAYER_NAME"`

	Debug bool `json:"debug" env:"SARANDA_DEBUG"`
}

// Load builds the configuration from the JSON file at path (missing file
// is not an error; a malformed one is) and applies environment
// overrides on top.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ServerAddress:         constants.DefaultAddr,
		DBPath:                constants.DefaultDBPath,
		SpeciesBaseURL:        constants.DefaultSpeciesURL,
		CatalogTimeoutSeconds: 10,
		RegionsPath:           constants.DefaultRegionsPath,
		PlayerName:            "Trainer",
	}

	if b, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return cfg, nil
}

// CatalogTimeout is the species client timeout as a duration.
func (c *Config) CatalogTimeout() time.Duration {
	return time.Duration(c.CatalogTimeoutSeconds) * time.Second
}
