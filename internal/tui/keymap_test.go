package tui

import "testing"

// TestKeyMapDefaults verifies the default key assignments stay stable.
func TestKeyMapDefaults(t *testing.T) {
	k := newKeyMap()

	if got := k.toggleDone.Keys(); len(got) != 2 || got[0] != " " || got[1] != "space" {
		t.Fatalf("unexpected toggle keys %#v", got)
	}
	if got := k.switchScreen.Keys(); len(got) != 1 || got[0] != "tab" {
		t.Fatalf("unexpected screen keys %#v", got)
	}
	if got := k.clearFilters.Keys(); len(got) != 1 || got[0] != "F" {
		t.Fatalf("unexpected clear filter keys %#v", got)
	}
	if got := k.quit.Keys(); len(got) != 2 || got[0] != "q" || got[1] != "ctrl+c" {
		t.Fatalf("unexpected quit keys %#v", got)
	}
}

// TestKeyMapHelpCoversBindings verifies the help surfaces stay consistent.
func TestKeyMapHelpCoversBindings(t *testing.T) {
	k := newKeyMap()

	if got := len(k.ShortHelp()); got != 7 {
		t.Fatalf("unexpected short help length %d", got)
	}
	full := k.FullHelp()
	if len(full) != 4 {
		t.Fatalf("unexpected full help group count %d", len(full))
	}
	total := 0
	for _, group := range full {
		total += len(group)
	}
	if total != 22 {
		t.Fatalf("full help must list every binding, got %d", total)
	}
}
