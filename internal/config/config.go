// Package config loads CLI configuration from the environment with an
// optional YAML file overlay. Only the command-line binary consumes this;
// the library takes everything through options.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds everything the langsheet CLI needs beyond its positional
// arguments. Environment variables override file values.
type Config struct {
	// LanguageMap maps language codes to spreadsheet header display names.
	LanguageMap map[string]string `yaml:"languages" env:"-"`

	// SheetName is the worksheet to write or read.
	SheetName string `yaml:"sheet" env:"LANGSHEET_SHEET"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"LANGSHEET_LOG_LEVEL"`

	// Concurrency caps parallel file decodes and writes; 0 means one per CPU.
	Concurrency int `yaml:"concurrency" env:"LANGSHEET_CONCURRENCY"`

	// FailOnDuplicates aborts imports when the sheet repeats a key.
	FailOnDuplicates bool `yaml:"fail_on_duplicates" env:"LANGSHEET_FAIL_ON_DUPLICATES"`

	// Report enables the data-quality report during exports.
	Report bool `yaml:"report" env:"LANGSHEET_REPORT"`
}

// Load reads the optional YAML file at path (skipped when path is empty or
// the file does not exist), then applies environment variables on top.
// Defaults are set first so either layer can override them.
func Load(path string) (Config, error) {
	cfg := Config{
		LogLevel: "info",
		Report:   true,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Optional file; env alone is a valid configuration.
		case err != nil:
			return cfg, fmt.Errorf("config: reading %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parsing %q: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing environment: %w", err)
	}

	return cfg, nil
}
