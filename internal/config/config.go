// Package config loads the optional tool configuration file. Projects are
// described by aircraft.yaml; this file only carries tool-level defaults
// and is looked up as planecalc.toml in the project directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/prahaas123/RC-Plane-Calculator/pkg/spec"
)

// FileName is the tool configuration file name within a project directory.
const FileName = "planecalc.toml"

// Config holds tool-level settings.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Defaults DefaultsConfig `toml:"defaults"`
}

// ServerConfig configures the local development server.
type ServerConfig struct {
	Port int `toml:"port"`
}

// DefaultsConfig fills spec fields that were left at zero.
type DefaultsConfig struct {
	StaticMarginPercent float64 `toml:"static_margin_percent"`
	TailEfficiency      float64 `toml:"tail_efficiency"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: 8090},
		Defaults: DefaultsConfig{
			StaticMarginPercent: 10,
			TailEfficiency:      0.9,
		},
	}
}

// LoadProject reads planecalc.toml from the project directory. A missing
// file is not an error; the built-in defaults are returned.
func LoadProject(projectDir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(projectDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config TOML: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills zero-valued spec fields from the configuration.
// Explicit spec values always win.
func (c Config) ApplyDefaults(s *spec.AircraftSpec) {
	if s.Balance.StaticMarginPercent == 0 {
		s.Balance.StaticMarginPercent = c.Defaults.StaticMarginPercent
	}
	if s.Layout.TailEfficiency == 0 {
		s.Layout.TailEfficiency = c.Defaults.TailEfficiency
	}
}
