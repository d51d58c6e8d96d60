package fuzzy

import "testing"

func TestMatchEmptyQuery(t *testing.T) {
	score, ok := Match("Firefox", "")
	if !ok {
		t.Error("empty query should match everything")
	}
	if score != 0 {
		t.Errorf("empty query score = %d, want 0", score)
	}
}

func TestMatchSubsequence(t *testing.T) {
	if _, ok := Match("Firefox", "ffx"); !ok {
		t.Error("ffx should match Firefox as a subsequence")
	}
	if _, ok := Match("Firefox", "xf"); ok {
		t.Error("xf should not match Firefox: out of order")
	}
	if _, ok := Match("GIMP", "fire"); ok {
		t.Error("fire should not match GIMP")
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	s1, ok1 := Match("FIREFOX", "fire")
	s2, ok2 := Match("firefox", "FIRE")
	if !ok1 || !ok2 {
		t.Fatal("matching should ignore case")
	}
	if s1 != s2 {
		t.Errorf("case variants scored differently: %d vs %d", s1, s2)
	}
}

func TestMatchExactBeatsPrefix(t *testing.T) {
	exact, ok := Match("Files", "files")
	if !ok {
		t.Fatal("exact match failed")
	}
	prefix, ok := Match("Files Manager", "files")
	if !ok {
		t.Fatal("prefix match failed")
	}
	if exact <= prefix {
		t.Errorf("exact score %d should beat prefix score %d", exact, prefix)
	}
}

func TestMatchPrefixBeatsScattered(t *testing.T) {
	prefix, ok := Match("Firefox", "fire")
	if !ok {
		t.Fatal("prefix match failed")
	}
	scattered, ok := Match("File Renamer", "fire")
	if !ok {
		t.Fatal("scattered match failed")
	}
	if prefix <= scattered {
		t.Errorf("prefix score %d should beat scattered score %d", prefix, scattered)
	}
}

func TestMatchContiguousRunBeatsScatteredAtStart(t *testing.T) {
	scattered, ok := Match("faibrce", "fire")
	if !ok {
		t.Fatal("scattered match failed")
	}
	run, ok := Match("xfire", "fire")
	if !ok {
		t.Fatal("contiguous match failed")
	}
	if scattered >= run {
		t.Errorf("scattered-at-0 score %d must not outrank contiguous run score %d",
			scattered, run)
	}
}

func TestMatchPrefixBonusNeedsTruePrefix(t *testing.T) {
	prefix, ok := Match("fire place", "fire")
	if !ok {
		t.Fatal("prefix match failed")
	}
	scattered, ok := Match("faibrce", "fire")
	if !ok {
		t.Fatal("scattered match failed")
	}
	if scattered >= prefix {
		t.Errorf("a first hit at index 0 alone must not earn the prefix weight: %d vs %d",
			scattered, prefix)
	}
}

func TestMatchEarlierStartScoresHigher(t *testing.T) {
	early, ok := Match("vim editor", "vim")
	if !ok {
		t.Fatal("early match failed")
	}
	late, ok := Match("neo vim", "vim")
	if !ok {
		t.Fatal("late match failed")
	}
	if early <= late {
		t.Errorf("earlier start %d should beat later start %d", early, late)
	}
}

func TestMatchDeterministic(t *testing.T) {
	a, _ := Match("Firefox Developer Edition", "fdev")
	for i := 0; i < 10; i++ {
		b, _ := Match("Firefox Developer Edition", "fdev")
		if a != b {
			t.Fatalf("score changed between calls: %d vs %d", a, b)
		}
	}
}

func TestMatchAppendNonMatchingNeverImproves(t *testing.T) {
	if _, ok := Match("Firefox", "fire"); !ok {
		t.Fatal("base query should match")
	}
	if _, ok := Match("Firefox", "fireq"); ok {
		t.Error("appending a non-matching rune must turn the match off")
	}
}
