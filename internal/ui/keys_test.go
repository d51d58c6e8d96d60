package ui

import "testing"

func TestNoBindingStealsTextCursorKeys(t *testing.T) {
	k := DefaultKeyMap("alt+f")
	for _, row := range k.FullHelp() {
		for _, b := range row {
			for _, name := range b.Keys() {
				if name == "left" || name == "right" {
					t.Errorf("binding %v takes %q away from the query input", b.Keys(), name)
				}
			}
		}
	}
}

func TestFavoriteKeyConfigurable(t *testing.T) {
	k := DefaultKeyMap("")
	if len(k.Favorite.Keys()) == 0 || k.Favorite.Keys()[0] != "alt+f" {
		t.Errorf("empty favorite key should fall back to alt+f, got %v", k.Favorite.Keys())
	}

	k = DefaultKeyMap("alt+x")
	if k.Favorite.Keys()[0] != "alt+x" {
		t.Errorf("configured favorite key not applied: %v", k.Favorite.Keys())
	}
}
