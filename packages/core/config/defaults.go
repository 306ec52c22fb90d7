package config

import "github.com/abdul-hamid-achik/must/packages/compare"

// DefaultSnapshotDir is the directory, next to the test file, holding snapshots
const DefaultSnapshotDir = "__snapshots__"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Comparison:      compare.Default.String(),
		Culture:         "",
		NoColor:         boolPtr(false),
		MaxValueLength:  100,
		SnapshotDir:     DefaultSnapshotDir,
		UpdateSnapshots: boolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.ComparisonMode() == defaults.ComparisonMode() &&
		c.Culture == defaults.Culture &&
		c.GetNoColor() == defaults.GetNoColor() &&
		c.MaxValueLength == defaults.MaxValueLength &&
		c.SnapshotDir == defaults.SnapshotDir &&
		c.GetUpdateSnapshots() == defaults.GetUpdateSnapshots()
}
