// Package config loads the optional .zerv.yaml project configuration.
// It mirrors the teacher's internal/config: a strict YAML decode, an
// environment-variable escape hatch, and function-variable seams for
// test overriding. Absence of the file is not an error — it is the
// common case.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// SchemaPreset is a named, reusable inline schema definition so users
// don't have to repeat --schema-ron on every invocation.
type SchemaPreset struct {
	Name string `yaml:"name"`
	Ron  string `yaml:"ron"`
}

// Config holds the project-level defaults read from .zerv.yaml.
type Config struct {
	// DefaultPath is the working directory the VCS probe starts from
	// when -C is absent (the teacher's "path" priority hierarchy,
	// generalized from a version-file path to a probe directory: -C
	// flag, then ZERV_PATH, then this field, then ".").
	DefaultPath string `yaml:"default-path,omitempty"`

	// DefaultSchema is the preset name (standard, calver, or a custom
	// preset name below) used when --schema/--schema-ron are absent.
	DefaultSchema string `yaml:"default-schema,omitempty"`

	// DefaultOutputFormat is read from .zerv.yaml and saved back, but
	// the version command does not consult it: without --output-format
	// it emits semver.
	DefaultOutputFormat string `yaml:"default-output-format,omitempty"`

	// DefaultOutputPrefix is read from .zerv.yaml and saved back, but
	// the version command does not consult it: a prefix is added only
	// by --output-prefix (with --output-prefix-char).
	DefaultOutputPrefix string `yaml:"default-output-prefix,omitempty"`

	// SchemaPresets registers named custom schemas.
	SchemaPresets []SchemaPreset `yaml:"schema-presets,omitempty"`
}

const configFileName = ".zerv.yaml"

var (
	// LoadConfigFn is a function variable so tests can stub config
	// loading without touching the filesystem.
	LoadConfigFn = loadConfig

	// SaveConfigFn persists a Config back to .zerv.yaml.
	SaveConfigFn = saveConfig
)

func loadConfig() (*Config, error) {
	// Highest priority: environment variables, mirroring the teacher's
	// SEMVER_PATH escape hatch. ZERV_PATH gives the VCS probe's default
	// working directory (overridden in turn by -C); ZERV_SCHEMA lets CI
	// pick a default preset without a checked-in file. Either short-
	// circuits the .zerv.yaml read, same as the teacher's SEMVER_PATH.
	envPath := os.Getenv("ZERV_PATH")
	envSchema := os.Getenv("ZERV_SCHEMA")
	if envPath != "" || envSchema != "" {
		return &Config{DefaultPath: envPath, DefaultSchema: envSchema}, nil
	}

	data, err := os.ReadFile(configFileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}

	return &cfg, nil
}

func saveConfig(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(configFileName, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configFileName, err)
	}
	return nil
}

// FindSchemaPreset looks up a user-registered schema preset by name.
func (c *Config) FindSchemaPreset(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	for _, p := range c.SchemaPresets {
		if p.Name == name {
			return p.Ron, true
		}
	}
	return "", false
}
