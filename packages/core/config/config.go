package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/must/packages/compare"
	"gopkg.in/yaml.v3"
)

// Config represents the must settings
type Config struct {
	Comparison      string `json:"comparison,omitempty" yaml:"comparison,omitempty"` // default mode for BeLike/NotBeLike
	Culture         string `json:"culture,omitempty" yaml:"culture,omitempty"`       // BCP 47 tag for CurrentCulture modes
	NoColor         *bool  `json:"noColor,omitempty" yaml:"noColor,omitempty"`
	MaxValueLength  int    `json:"maxValueLength,omitempty" yaml:"maxValueLength,omitempty"` // truncation in diagnostics
	SnapshotDir     string `json:"snapshotDir,omitempty" yaml:"snapshotDir,omitempty"`
	UpdateSnapshots *bool  `json:"updateSnapshots,omitempty" yaml:"updateSnapshots,omitempty"`
}

// ErrInvalidEnv is wrapped by ApplyEnv when a variable cannot be parsed.
var ErrInvalidEnv = errors.New("invalid environment variable")

// boolPtr returns a pointer to a bool value
func boolPtr(b bool) *bool {
	return &b
}

// BoolPtr is exported version of boolPtr for external use
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetUpdateSnapshots returns the update snapshots setting, defaulting to false
func (c *Config) GetUpdateSnapshots() bool {
	return getBool(c.UpdateSnapshots, false)
}

// ComparisonMode returns the parsed default comparison mode.
func (c *Config) ComparisonMode() compare.Mode {
	if c.Comparison == "" {
		return compare.Default
	}
	mode, err := compare.ParseMode(c.Comparison)
	if err != nil {
		return compare.Default
	}
	return mode
}

// ConfigFilenames contains the possible config file names, in lookup order
var ConfigFilenames = []string{
	".must.yaml",
	".must.yml",
	"must.config.json",
	".mustrc.json",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search from the current directory upwards
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in dir and its parents. The
// search stops after the first directory holding a go.mod file.
func FindAndLoadConfig(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory: %w", err)
	}

	for {
		for _, filename := range ConfigFilenames {
			configPath := filepath.Join(abs, filename)
			if _, err := os.Stat(configPath); err == nil {
				return loadConfigFromFile(configPath)
			}
		}

		if _, err := os.Stat(filepath.Join(abs, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Validate checks that every set value can be used.
func (c *Config) Validate() error {
	if c.Comparison != "" {
		if _, err := compare.ParseMode(c.Comparison); err != nil {
			return err
		}
	}
	if c.Culture != "" {
		if _, err := compare.ParseCulture(c.Culture); err != nil {
			return err
		}
	}
	if c.MaxValueLength < 0 {
		return fmt.Errorf("maxValueLength must not be negative, got %d", c.MaxValueLength)
	}
	return nil
}

// ApplyEnv overrides settings from environment variables read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("MUST_COMPARISON"); ok && v != "" {
		if _, err := compare.ParseMode(v); err != nil {
			return fmt.Errorf("%w MUST_COMPARISON: %v", ErrInvalidEnv, err)
		}
		c.Comparison = v
	}
	if v, ok := lookup("MUST_CULTURE"); ok && v != "" {
		if _, err := compare.ParseCulture(v); err != nil {
			return fmt.Errorf("%w MUST_CULTURE: %v", ErrInvalidEnv, err)
		}
		c.Culture = v
	}
	// https://no-color.org: any non-empty value disables colour
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		c.NoColor = boolPtr(true)
	}
	if v, ok := lookup("MUST_NO_COLOR"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w MUST_NO_COLOR: %v", ErrInvalidEnv, err)
		}
		c.NoColor = boolPtr(b)
	}
	if v, ok := lookup("MUST_MAX_VALUE_LENGTH"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%w MUST_MAX_VALUE_LENGTH: %q", ErrInvalidEnv, v)
		}
		c.MaxValueLength = n
	}
	if v, ok := lookup("MUST_UPDATE_SNAPSHOTS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w MUST_UPDATE_SNAPSHOTS: %v", ErrInvalidEnv, err)
		}
		c.UpdateSnapshots = boolPtr(b)
	}
	return nil
}

// Load resolves the effective settings for dir: the nearest config file,
// then environment overrides.
func Load(dir string) (*Config, error) {
	config, err := FindAndLoadConfig(dir)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Comparison != "" {
		result.Comparison = other.Comparison
	}
	if other.Culture != "" {
		result.Culture = other.Culture
	}
	if other.MaxValueLength > 0 {
		result.MaxValueLength = other.MaxValueLength
	}
	if other.SnapshotDir != "" {
		result.SnapshotDir = other.SnapshotDir
	}

	// Boolean flags - only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.UpdateSnapshots != nil {
		result.UpdateSnapshots = other.UpdateSnapshots
	}

	return &result
}

// SaveConfig saves the configuration to a file, as YAML or JSON by extension
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
