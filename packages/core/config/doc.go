// Package config handles settings loading for the must assertion helpers.
//
// It provides functionality for:
//   - Loading settings from .must.yaml, .must.yml or JSON config files
//   - Default values for comparison mode, colour output and snapshots
//   - Environment variable overrides (MUST_*, NO_COLOR)
package config
