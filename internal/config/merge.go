package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSections mirrors Config with optional sections so a file can tell
// "section absent" apart from "section present but empty".
type fileSections struct {
	API     *APIConfig     `yaml:"api"`
	Logging *LoggingConfig `yaml:"logging"`
	Metrics *MetricsConfig `yaml:"metrics"`
}

// MergeFile applies the YAML file at path onto target. Each section present in
// the file replaces the whole section in target; absent sections and unknown
// keys are left alone.
func MergeFile(target *Config, path string) error {
	if target == nil {
		return errors.New("merge config: nil target")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var file fileSections
	if err = yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if file.API != nil {
		target.API = *file.API
	}
	if file.Logging != nil {
		target.Logging = *file.Logging
	}
	if file.Metrics != nil {
		target.Metrics = *file.Metrics
	}
	return nil
}
