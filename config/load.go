package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the defaults overlaid with any values present in the yaml
// file at path. Fields absent from the file keep their defaults.
func Load(path string) (Fabrication, error) {
	fab := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return fab, fmt.Errorf("loading fabrication config from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fab); err != nil {
		return fab, fmt.Errorf("parsing fabrication config %s: %w", path, err)
	}
	return fab, nil
}

// Save writes the constants as yaml, mostly for generating a starter file.
func Save(path string, fab Fabrication) error {
	data, err := yaml.Marshal(fab)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
