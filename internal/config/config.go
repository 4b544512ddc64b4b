/*
PURPOSE:
  Defines the configuration structure and loading logic for envsnap.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the probed interpreter, output location,
    and benchmark matrix size.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Output directory naming must be explicit configuration, not an
    ambient global fixed at import time.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine, internal/guidance
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing config file falls back to defaults.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (python3, 1000x1000 matrices).

USAGE:
  cfg, err := config.Load("envsnap.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Load() defaults.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for envsnap.
type Config struct {
	// PythonBin is the interpreter used for library and backend probes.
	PythonBin string `yaml:"python_bin"`
	// OutputDir is the parent directory for snapshot directories.
	OutputDir string `yaml:"output_dir"`
	// DirPrefix is the snapshot directory name prefix; the run
	// timestamp is appended as _<YYYYMMDD_HHMMSS>.
	DirPrefix string `yaml:"dir_prefix"`
	// MatrixSize is the side length of the benchmark matrices.
	MatrixSize int `yaml:"matrix_size"`

	// Guidance/generation settings (advise subcommand).
	GenerateURL     string        `yaml:"generate_url"`
	GenerateModel   string        `yaml:"generate_model"`
	LoadTimeout     time.Duration `yaml:"load_timeout"`
	GenerateTimeout time.Duration `yaml:"generate_timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		PythonBin:       "python3",
		OutputDir:       ".",
		DirPrefix:       "ai_env_save",
		MatrixSize:      1000,
		GenerateURL:     "http://localhost:11434",
		GenerateModel:   "llama3.2",
		LoadTimeout:     30 * time.Second,
		GenerateTimeout: 120 * time.Second,
	}
}

// SnapshotDirName returns the snapshot directory name for a run that
// started at the given time. Collisions are only possible within the
// same second, which a sequential tool cannot produce.
func (c *Config) SnapshotDirName(start time.Time) string {
	return fmt.Sprintf("%s_%s", c.DirPrefix, start.Format("20060102_150405"))
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"envsnap.yaml", "envsnap.conf"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
