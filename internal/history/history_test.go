package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	store, warning := Load(t.TempDir())
	if warning != "" {
		t.Errorf("missing file should not warn, got %q", warning)
	}
	if store.Count("anything") != 0 {
		t.Error("unknown keys must default to zero")
	}
}

func TestRecordLaunchPersistsAcrossReloads(t *testing.T) {
	dir := t.TempDir()

	store, _ := Load(dir)
	for i := 0; i < 3; i++ {
		if err := store.RecordLaunch("firefox\x00firefox"); err != nil {
			t.Fatalf("RecordLaunch failed: %v", err)
		}
	}
	if err := store.RecordLaunch("gimp\x00gimp"); err != nil {
		t.Fatalf("RecordLaunch failed: %v", err)
	}

	reloaded, warning := Load(dir)
	if warning != "" {
		t.Fatalf("reload warned: %q", warning)
	}
	if got := reloaded.Count("firefox\x00firefox"); got != 3 {
		t.Errorf("firefox count = %d, want 3", got)
	}
	if got := reloaded.Count("gimp\x00gimp"); got != 1 {
		t.Errorf("gimp count = %d, want 1", got)
	}
}

func TestLoadCorruptFileDegrades(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, storeFileName), []byte("not toml ["), 0644); err != nil {
		t.Fatal(err)
	}

	store, warning := Load(dir)
	if warning == "" {
		t.Error("corrupt file should produce a warning")
	}
	if store == nil || store.Count("x") != 0 {
		t.Error("corrupt file should degrade to an empty store")
	}
	// The degraded store must still be usable
	if err := store.RecordLaunch("x"); err != nil {
		t.Errorf("degraded store cannot record: %v", err)
	}
}

func TestToggleFavorite(t *testing.T) {
	dir := t.TempDir()
	store, _ := Load(dir)

	if store.IsFavorite("k") {
		t.Fatal("fresh store has no favorites")
	}
	if err := store.ToggleFavorite("k"); err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if !store.IsFavorite("k") {
		t.Error("toggle on did not stick")
	}

	reloaded, _ := Load(dir)
	if !reloaded.IsFavorite("k") {
		t.Error("favorite not persisted")
	}

	if err := reloaded.ToggleFavorite("k"); err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if reloaded.IsFavorite("k") {
		t.Error("toggle off did not stick")
	}
}

func TestSaveCreatesParentDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "flare")
	store, _ := Load(dir)
	if err := store.RecordLaunch("k"); err != nil {
		t.Fatalf("RecordLaunch with missing parent dir failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, storeFileName)); err != nil {
		t.Errorf("store file not written: %v", err)
	}
}
