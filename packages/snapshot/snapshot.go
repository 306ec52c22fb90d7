// Package snapshot stores and compares JSON snapshots for must.MatchSnapshot.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	// DefaultDir is the directory name for storing snapshots
	DefaultDir = "__snapshots__"
	// SnapshotExt is the file extension for snapshot files
	SnapshotExt = ".snap.json"
)

// ErrMissing is set on a Result when no snapshot exists and update mode is off.
var ErrMissing = errors.New("snapshot does not exist")

// anonNamespace seeds the deterministic keys of unnamed snapshots.
var anonNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("github.com/abdul-hamid-achik/must/snapshot"))

// Manager handles snapshot storage and comparison. It is safe for use by
// parallel tests.
type Manager struct {
	dirName       string
	updateMode    bool
	mu            sync.Mutex
	snapshotsRead map[string]map[string]any // file -> {key -> value}
}

// NewManager creates a new snapshot manager. dirName is created next to
// each test file; an empty name means DefaultDir.
func NewManager(dirName string, updateMode bool) *Manager {
	if dirName == "" {
		dirName = DefaultDir
	}
	return &Manager{
		dirName:       dirName,
		updateMode:    updateMode,
		snapshotsRead: make(map[string]map[string]any),
	}
}

// UpdateMode reports whether mismatches rewrite the stored snapshot.
func (m *Manager) UpdateMode() bool {
	return m.updateMode
}

// Result represents the result of a snapshot comparison.
type Result struct {
	Passed     bool
	Message    string
	Expected   any
	Actual     any
	IsNew      bool
	WasUpdated bool
	Err        error
}

// Compare compares an actual value against a stored snapshot.
// If updateMode is true and there's a mismatch, the snapshot is updated.
// The snapshotName parameter is optional; it distinguishes several
// snapshots taken by the same test.
func (m *Manager) Compare(testFile, testName, snapshotName string, actual any) *Result {
	normalized, err := normalize(actual)
	if err != nil {
		return &Result{Actual: actual, Err: err, Message: fmt.Sprintf("failed to encode value: %v", err)}
	}
	result := &Result{
		Actual: normalized,
	}

	snapshotFile := m.FilePath(testFile)
	key := m.generateKey(testName, snapshotName, normalized)

	m.mu.Lock()
	defer m.mu.Unlock()

	snapshots, err := m.loadSnapshots(snapshotFile)
	if err != nil {
		result.Err = err
		result.Message = fmt.Sprintf("failed to load snapshots: %v", err)
		return result
	}

	expected, exists := snapshots[key]
	if !exists {
		if m.updateMode {
			snapshots[key] = normalized
			if err := m.saveSnapshots(snapshotFile, snapshots); err != nil {
				result.Err = err
				result.Message = fmt.Sprintf("failed to save snapshot: %v", err)
				return result
			}
			result.Passed = true
			result.IsNew = true
			result.Expected = normalized
			result.Message = "new snapshot created"
			return result
		}

		result.Err = ErrMissing
		result.Message = fmt.Sprintf("snapshot %q does not exist (run with MUST_UPDATE_SNAPSHOTS=1 to create)", key)
		return result
	}

	result.Expected = expected

	if reflect.DeepEqual(expected, normalized) {
		result.Passed = true
		return result
	}

	if m.updateMode {
		snapshots[key] = normalized
		if err := m.saveSnapshots(snapshotFile, snapshots); err != nil {
			result.Err = err
			result.Message = fmt.Sprintf("failed to update snapshot: %v", err)
			return result
		}
		result.Passed = true
		result.WasUpdated = true
		result.Message = "snapshot updated"
		return result
	}

	result.Message = fmt.Sprintf("snapshot %q mismatch", key)
	return result
}

// FilePath returns the path to the snapshot file for a test file.
func (m *Manager) FilePath(testFile string) string {
	dir := filepath.Dir(testFile)
	base := filepath.Base(testFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(dir, m.dirName, name+SnapshotExt)
}

// generateKey generates a unique key for a snapshot.
func (m *Manager) generateKey(testName, snapshotName string, value any) string {
	if snapshotName != "" {
		return fmt.Sprintf("%s::%s", testName, snapshotName)
	}
	if testName != "" {
		return testName
	}
	data, _ := json.Marshal(value)
	return "anon_" + uuid.NewSHA1(anonNamespace, data).String()
}

// loadSnapshots loads snapshots from a file. Callers hold m.mu.
func (m *Manager) loadSnapshots(path string) (map[string]any, error) {
	if cached, ok := m.snapshotsRead[path]; ok {
		return cached, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			snapshots := make(map[string]any)
			m.snapshotsRead[path] = snapshots
			return snapshots, nil
		}
		return nil, err
	}

	var snapshots map[string]any
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, fmt.Errorf("invalid snapshot file %s: %w", path, err)
	}
	if snapshots == nil {
		snapshots = make(map[string]any)
	}

	m.snapshotsRead[path] = snapshots
	return snapshots, nil
}

// saveSnapshots saves snapshots to a file. Callers hold m.mu.
func (m *Manager) saveSnapshots(path string, snapshots map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return err
	}

	m.snapshotsRead[path] = snapshots

	return os.WriteFile(path, append(data, '\n'), 0644)
}

// normalize round-trips v through JSON so structs, typed maps and numbers
// compare equal to what a snapshot file decodes to.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
