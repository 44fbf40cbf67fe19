package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads an aircraft spec from a YAML file.
func Load(path string) (*AircraftSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var spec AircraftSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return &spec, nil
}

// LoadProject loads an aircraft spec from a project directory.
// It looks for aircraft.yaml in the given directory.
func LoadProject(projectDir string) (*AircraftSpec, error) {
	specPath := filepath.Join(projectDir, "aircraft.yaml")
	return Load(specPath)
}
