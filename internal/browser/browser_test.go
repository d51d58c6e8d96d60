package browser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		fragment, dir, prefix string
	}{
		{"~/Doc", "~/", "Doc"},
		{"~/Documents/", "~/Documents/", ""},
		{"/usr", "/", "usr"},
		{"/", "/", ""},
		{"~", "~/", ""},
		{"/usr/local/b", "/usr/local/", "b"},
	}
	for _, c := range cases {
		dir, prefix := Split(c.fragment)
		if dir != c.dir || prefix != c.prefix {
			t.Errorf("Split(%q) = (%q, %q), want (%q, %q)",
				c.fragment, dir, prefix, c.dir, c.prefix)
		}
	}
}

func TestExpandTilde(t *testing.T) {
	if got := ExpandTilde("~/Documents", "/home/u"); got != "/home/u/Documents" {
		t.Errorf("got %q", got)
	}
	if got := ExpandTilde("~", "/home/u"); got != "/home/u" {
		t.Errorf("got %q", got)
	}
	if got := ExpandTilde("/etc", "/home/u"); got != "/etc" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestListBuildsNodes(t *testing.T) {
	home := t.TempDir()
	if err := os.Mkdir(filepath.Join(home, "Documents"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, "script.sh"), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, "notes.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	nodes, err := List("~/", home)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}

	byName := map[string]Node{}
	for _, n := range nodes {
		byName[n.Name] = n
	}
	if !byName["Documents"].IsDir {
		t.Error("Documents should be a directory")
	}
	if !byName["script.sh"].Executable {
		t.Error("script.sh should be executable")
	}
	if byName["notes.txt"].Executable {
		t.Error("notes.txt should not be executable")
	}
	if byName["Documents"].Display != "~/Documents" {
		t.Errorf("Display = %q, want tilde-contracted path", byName["Documents"].Display)
	}
	if byName["Documents"].Path != filepath.Join(home, "Documents") {
		t.Errorf("Path = %q, want absolute", byName["Documents"].Path)
	}
}

func TestListNotFound(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing")+"/", "/home/u")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestVisibleFiltersHidden(t *testing.T) {
	nodes := []Node{
		{Name: ".config"},
		{Name: "Documents"},
	}

	vis := Visible(nodes, "Do")
	if len(vis) != 1 || vis[0].Name != "Documents" {
		t.Errorf("hidden entries should be excluded: %v", vis)
	}

	vis = Visible(nodes, ".c")
	if len(vis) != 2 {
		t.Errorf("a dot fragment should reveal hidden entries, got %v", vis)
	}
}

func TestCompleteSingleMatch(t *testing.T) {
	nodes := []Node{
		{Name: "Documents", IsDir: true},
		{Name: "Music", IsDir: true},
	}

	got, changed := Complete("~/Doc", nodes)
	if !changed || got != "~/Documents/" {
		t.Errorf("got (%q, %v), want (~/Documents/, true)", got, changed)
	}
}

func TestCompleteSingleFileMatchNoSeparator(t *testing.T) {
	nodes := []Node{{Name: "notes.txt"}}

	got, changed := Complete("~/no", nodes)
	if !changed || got != "~/notes.txt" {
		t.Errorf("got (%q, %v), want (~/notes.txt, true)", got, changed)
	}
}

func TestCompleteExtendsToCommonPrefix(t *testing.T) {
	nodes := []Node{
		{Name: "Downloads", IsDir: true},
		{Name: "Documents", IsDir: true},
	}

	got, changed := Complete("~/D", nodes)
	if !changed || got != "~/Do" {
		t.Errorf("got (%q, %v), want (~/Do, true)", got, changed)
	}

	// Already at the shared prefix: nothing to extend
	got, changed = Complete("~/Do", nodes)
	if changed {
		t.Errorf("got (%q, %v), want no-op", got, changed)
	}
}

func TestCompleteNoMatchIsNoop(t *testing.T) {
	nodes := []Node{{Name: "Music", IsDir: true}}

	got, changed := Complete("~/zzz", nodes)
	if changed || got != "~/zzz" {
		t.Errorf("got (%q, %v), want unchanged", got, changed)
	}
}
