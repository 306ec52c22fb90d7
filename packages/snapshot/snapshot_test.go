package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestManager_Compare_NewSnapshot(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "user_test.go")

	manager := NewManager("", true) // Update mode enabled

	result := manager.Compare(testFile, "TestUser", "", map[string]any{
		"id":   1,
		"name": "John",
	})

	if !result.Passed {
		t.Errorf("expected passed to be true, got false: %s", result.Message)
	}
	if !result.IsNew {
		t.Error("expected IsNew to be true")
	}

	// Verify snapshot file was created
	snapshotPath := filepath.Join(tmpDir, DefaultDir, "user_test.snap.json")
	if _, err := os.Stat(snapshotPath); os.IsNotExist(err) {
		t.Error("expected snapshot file to be created")
	}
}

func TestManager_Compare_ExistingSnapshot_Match(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "user_test.go")

	manager := NewManager("", true)

	data := map[string]any{"id": 1, "name": "John"}
	result := manager.Compare(testFile, "TestUser", "", data)
	if !result.Passed || !result.IsNew {
		t.Fatal("failed to create initial snapshot")
	}

	// A fresh manager reads the file back
	manager2 := NewManager("", false)
	result = manager2.Compare(testFile, "TestUser", "", data)

	if !result.Passed {
		t.Errorf("expected match, got: %s", result.Message)
	}
}

func TestManager_Compare_StructMatchesStoredMap(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "user_test.go")

	type user struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	manager := NewManager("", true)
	if result := manager.Compare(testFile, "TestUser", "", user{ID: 1, Name: "John"}); !result.Passed {
		t.Fatalf("failed to create initial snapshot: %s", result.Message)
	}

	result := NewManager("", false).Compare(testFile, "TestUser", "", map[string]int64{"id": 1})
	if result.Passed {
		t.Error("expected mismatch for a map missing the name field")
	}

	result = NewManager("", false).Compare(testFile, "TestUser", "", user{ID: 1, Name: "John"})
	if !result.Passed {
		t.Errorf("expected struct to match its stored form, got: %s", result.Message)
	}
}

func TestManager_Compare_ExistingSnapshot_Mismatch(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "user_test.go")

	manager := NewManager("", true)

	result := manager.Compare(testFile, "TestUser", "", map[string]any{
		"id":   1,
		"name": "John",
	})
	if !result.Passed || !result.IsNew {
		t.Fatal("failed to create initial snapshot")
	}

	manager2 := NewManager("", false) // Update mode disabled
	result = manager2.Compare(testFile, "TestUser", "", map[string]any{
		"id":   1,
		"name": "Jane", // Different
	})

	if result.Passed {
		t.Error("expected mismatch, got passed")
	}
	if result.Message != `snapshot "TestUser" mismatch` {
		t.Errorf("unexpected message: %s", result.Message)
	}
	if result.Err != nil {
		t.Errorf("a mismatch is not an error, got %v", result.Err)
	}
}

func TestManager_Compare_UpdateExisting(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "user_test.go")

	manager := NewManager("", true)

	result := manager.Compare(testFile, "TestUser", "", map[string]any{"name": "John"})
	if !result.Passed || !result.IsNew {
		t.Fatal("failed to create initial snapshot")
	}

	result = manager.Compare(testFile, "TestUser", "", map[string]any{"name": "Jane"})

	if !result.Passed {
		t.Errorf("expected passed, got: %s", result.Message)
	}
	if !result.WasUpdated {
		t.Error("expected WasUpdated to be true")
	}

	result = NewManager("", false).Compare(testFile, "TestUser", "", map[string]any{"name": "Jane"})
	if !result.Passed {
		t.Errorf("expected updated snapshot on disk, got: %s", result.Message)
	}
}

func TestManager_Compare_NoSnapshotNoUpdateMode(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "user_test.go")

	manager := NewManager("", false) // Update mode disabled

	result := manager.Compare(testFile, "TestUser", "", map[string]any{"name": "John"})

	if result.Passed {
		t.Error("expected failure when no snapshot exists and update mode disabled")
	}
	if result.Err != ErrMissing {
		t.Errorf("expected ErrMissing, got %v", result.Err)
	}
	if !strings.Contains(result.Message, "MUST_UPDATE_SNAPSHOTS") {
		t.Errorf("expected a hint in the message, got %q", result.Message)
	}
}

func TestManager_Compare_WithSnapshotName(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "user_test.go")

	manager := NewManager("golden", true)

	result := manager.Compare(testFile, "TestUser", "response", map[string]any{"id": 1})
	if !result.Passed || !result.IsNew {
		t.Fatal("failed to create initial snapshot")
	}

	result = manager.Compare(testFile, "TestUser", "list", []any{1, 2, 3})
	if !result.Passed || !result.IsNew {
		t.Fatal("failed to create second snapshot")
	}

	// Verify both snapshots exist separately
	manager2 := NewManager("golden", false)

	result = manager2.Compare(testFile, "TestUser", "response", map[string]any{"id": 1})
	if !result.Passed {
		t.Errorf("first snapshot mismatch: %s", result.Message)
	}

	result = manager2.Compare(testFile, "TestUser", "list", []any{1, 2, 3})
	if !result.Passed {
		t.Errorf("second snapshot mismatch: %s", result.Message)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "golden", "user_test.snap.json")); err != nil {
		t.Errorf("expected snapshot in custom directory: %v", err)
	}
}

func TestManager_Compare_CorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "user_test.go")

	manager := NewManager("", false)
	path := manager.FilePath(testFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	result := manager.Compare(testFile, "TestUser", "", "value")
	if result.Passed || result.Err == nil {
		t.Errorf("expected load error, got %+v", result)
	}
}

func TestManager_Compare_Unencodable(t *testing.T) {
	manager := NewManager("", true)
	result := manager.Compare(filepath.Join(t.TempDir(), "x_test.go"), "TestX", "", make(chan int))
	if result.Passed || result.Err == nil {
		t.Errorf("expected encode error, got %+v", result)
	}
}

func TestManager_Compare_Parallel(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "parallel_test.go")
	manager := NewManager("", true)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "TestParallel/" + string(rune('a'+i))
			if result := manager.Compare(testFile, name, "", i); !result.Passed {
				t.Errorf("%s: %s", name, result.Message)
			}
		}(i)
	}
	wg.Wait()

	check := NewManager("", false)
	for i := 0; i < 20; i++ {
		name := "TestParallel/" + string(rune('a'+i))
		if result := check.Compare(testFile, name, "", i); !result.Passed {
			t.Errorf("%s not persisted: %s", name, result.Message)
		}
	}
}

func TestGenerateKey(t *testing.T) {
	manager := NewManager("", false)

	tests := []struct {
		testName     string
		snapshotName string
		expectPrefix string
	}{
		{"TestUser", "response", "TestUser::response"},
		{"TestUser", "", "TestUser"},
		{"", "response", "::response"},
		{"", "", "anon_"}, // Should start with anon_
	}

	for _, tt := range tests {
		key := manager.generateKey(tt.testName, tt.snapshotName, nil)
		if tt.expectPrefix == "anon_" {
			if !strings.HasPrefix(key, "anon_") {
				t.Errorf("expected key starting with 'anon_', got %q", key)
			}
		} else if key != tt.expectPrefix {
			t.Errorf("generateKey(%q, %q): got %q, expected %q", tt.testName, tt.snapshotName, key, tt.expectPrefix)
		}
	}

	first := manager.generateKey("", "", map[string]any{"a": 1.0})
	second := manager.generateKey("", "", map[string]any{"a": 1.0})
	if first != second {
		t.Errorf("anonymous keys must be deterministic: %q != %q", first, second)
	}
	if other := manager.generateKey("", "", map[string]any{"a": 2.0}); other == first {
		t.Errorf("different values must not share a key: %q", other)
	}
}
