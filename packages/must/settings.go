package must

import (
	"os"
	"sync"

	"github.com/abdul-hamid-achik/must/packages/compare"
	"github.com/abdul-hamid-achik/must/packages/core/config"
	"github.com/abdul-hamid-achik/must/packages/diagnostic"
	"github.com/abdul-hamid-achik/must/packages/snapshot"
	"golang.org/x/text/language"
)

var (
	settingsOnce sync.Once
	settingsMu   sync.RWMutex
	active       *config.Config
	activeErr    error
	snapshots    *snapshot.Manager
)

func loadSettings() {
	cfg, err := config.Load(".")
	if err != nil {
		cfg = config.DefaultConfig()
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	install(cfg, err)
}

// install must be called with settingsMu held.
func install(cfg *config.Config, err error) {
	active = cfg
	activeErr = err
	snapshots = snapshot.NewManager(cfg.SnapshotDir, cfg.GetUpdateSnapshots())
}

func current() (*config.Config, *snapshot.Manager) {
	settingsOnce.Do(loadSettings)
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return active, snapshots
}

// Settings returns a copy of the active settings.
func Settings() config.Config {
	cfg, _ := current()
	return *cfg
}

// SettingsErr returns the error hit while loading settings from disk or the
// environment, if any. Defaults are used in that case.
func SettingsErr() error {
	settingsOnce.Do(loadSettings)
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return activeErr
}

// Configure replaces the active settings with cfg layered over the
// defaults. Files and environment are no longer consulted afterwards.
func Configure(cfg *config.Config) error {
	merged := config.DefaultConfig().Merge(cfg)
	if err := merged.Validate(); err != nil {
		return err
	}
	settingsOnce.Do(func() {})
	settingsMu.Lock()
	defer settingsMu.Unlock()
	install(merged, nil)
	return nil
}

func formatter() *diagnostic.Formatter {
	cfg, _ := current()
	return diagnostic.NewFormatter(
		diagnostic.WithNoColor(cfg.GetNoColor()),
		diagnostic.WithMaxValueLength(cfg.MaxValueLength),
	)
}

func defaultComparison() compare.Mode {
	cfg, _ := current()
	return cfg.ComparisonMode()
}

func culture() language.Tag {
	cfg, _ := current()
	return compare.ResolveCulture(cfg.Culture, os.LookupEnv)
}
