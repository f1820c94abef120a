package ui

import "testing"

func TestGetTheme_UnknownFallsBackToFirst(t *testing.T) {
	t.Parallel()

	if got := GetTheme("NoSuchTheme").Name; got != themes[0].Name {
		t.Fatalf("GetTheme fallback = %q, want %q", got, themes[0].Name)
	}
	if got := GetTheme("Gruvbox").Name; got != "Gruvbox" {
		t.Fatalf("GetTheme = %q, want Gruvbox", got)
	}
}

func TestNextTheme_CyclesThroughAllThemes(t *testing.T) {
	t.Parallel()

	name := themes[0].Name
	seen := map[string]bool{}
	for range themes {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themes[0].Name {
		t.Fatalf("cycle did not wrap: ended at %q", name)
	}
	if len(seen) != len(themes) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themes))
	}
}
