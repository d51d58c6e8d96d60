package entries

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.yaml")
	yaml := `entries:
  - name: Deploy Dashboard
    exec: xdg-open https://dash.example.com
  - name: Serial Console
    exec: picocom /dev/ttyUSB0
    terminal: true
  - name: Broken
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	got, warnings := LoadCustom(path)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Rank != 0 || got[1].Rank != 0 {
		t.Error("custom entries must carry rank 0")
	}
	if !got[1].Terminal {
		t.Error("terminal flag not carried over")
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1 for the entry without exec", len(warnings))
	}
}

func TestLoadCustomMissingFile(t *testing.T) {
	got, warnings := LoadCustom(filepath.Join(t.TempDir(), "entries.yaml"))
	if got != nil || warnings != nil {
		t.Errorf("missing file should be a clean no-op, got %v / %v", got, warnings)
	}
}

func TestLoadCustomInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.yaml")
	if err := os.WriteFile(path, []byte("entries: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	got, warnings := LoadCustom(path)
	if len(got) != 0 {
		t.Errorf("invalid file should yield no entries, got %v", got)
	}
	if len(warnings) != 1 {
		t.Errorf("invalid file should yield one warning, got %v", warnings)
	}
}
