package entries

import "testing"

func TestDedupeLowerRankWins(t *testing.T) {
	list := []Entry{
		{Name: "Terminal", Exec: []string{"term"}, Source: "/usr/share/applications", Rank: 2},
		{Name: "Terminal", Exec: []string{"term"}, Source: "/home/u/.local/share/applications", Rank: 1},
		{Name: "Editor", Exec: []string{"ed"}, Rank: 2},
	}

	out := Dedupe(list, false)
	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	if out[0].Rank != 1 {
		t.Errorf("kept rank %d for Terminal, want the rank-1 occurrence", out[0].Rank)
	}
	// First-seen position is preserved even when a later occurrence wins
	if out[0].Name != "Terminal" || out[1].Name != "Editor" {
		t.Errorf("order changed: %v, %v", out[0].Name, out[1].Name)
	}
}

func TestDedupeEqualRankKeepsFirstSeen(t *testing.T) {
	list := []Entry{
		{Name: "App", Exec: []string{"app"}, Source: "a", Rank: 1},
		{Name: "App", Exec: []string{"app"}, Source: "b", Rank: 1},
	}

	out := Dedupe(list, false)
	if len(out) != 1 {
		t.Fatalf("got %d entries, want 1", len(out))
	}
	if out[0].Source != "a" {
		t.Errorf("kept source %q, want the first seen", out[0].Source)
	}
}

func TestDedupeShowDuplicatesKeepsAll(t *testing.T) {
	list := []Entry{
		{Name: "App", Exec: []string{"app"}, Source: "a", Rank: 1},
		{Name: "App", Exec: []string{"app"}, Source: "b", Rank: 2},
	}

	out := Dedupe(list, true)
	if len(out) != 2 {
		t.Fatalf("got %d entries, want both occurrences", len(out))
	}
	if out[0].Source == out[1].Source {
		t.Error("occurrences should keep their distinct sources")
	}
}

func TestDedupeDistinctCommandsNotMerged(t *testing.T) {
	list := []Entry{
		{Name: "Terminal", Exec: []string{"gnome-terminal"}, Rank: 1},
		{Name: "Terminal", Exec: []string{"xterm"}, Rank: 2},
	}

	out := Dedupe(list, false)
	if len(out) != 2 {
		t.Errorf("same name with different commands must both survive, got %d", len(out))
	}
}
