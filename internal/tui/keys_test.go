package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry(DefaultBindings())
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyEnter}, scopeLanding); got != actionSelect {
		t.Fatalf("enter on landing = %q", got)
	}
	if got := reg.ActionFor(runes("o"), scopeLanding); got != "" {
		t.Fatalf("o should be inert on landing, got %q", got)
	}
	if !reg.IsAction(runes("o"), actionOpen, scopePlayer) {
		t.Fatalf("expected o to open media in player")
	}
	if reg.IsAction(runes("q"), actionQuit, scopeJump) {
		t.Fatalf("q must reach the jump prompt")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlC}, actionQuit, scopeJump) {
		t.Fatalf("ctrl+c should quit from the jump prompt")
	}
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyEsc}, scopeLanding); got != "" {
		t.Fatalf("esc on landing = %q", got)
	}
	if got := reg.ActionFor(runes("3"), scopeDemos); got != actionPick {
		t.Fatalf("3 in demos = %q", got)
	}
	if got := reg.ActionFor(runes("j"), scopePlayer); got != actionDown {
		t.Fatalf("j in player = %q", got)
	}
	if got := reg.ActionFor(runes("l"), scopePlayer); got != "" {
		t.Fatalf("l should be inert in player, got %q", got)
	}
}

func TestKeyRegistryWildcardScope(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		bind("x", []string{"*"}, []string{"x"}, "x", "x"),
		bind("y", nil, []string{"y"}, "y", "y"),
	})
	if !reg.IsAction(runes("x"), "x", "anything") || !reg.IsAction(runes("y"), "y", "anything") {
		t.Fatalf("wildcard and empty scopes should match every scope")
	}
}

func TestBindingsForScopeFeedsHelp(t *testing.T) {
	reg := NewKeyRegistry(DefaultBindings())
	loading := reg.BindingsForScope(scopeLoading)
	if len(loading) != 1 || loading[0].Help().Desc != "quit" {
		t.Fatalf("loading help = %+v", loading)
	}
	player := scopedKeyMap(reg.BindingsForScope(scopePlayer))
	var descs []string
	for _, b := range player.ShortHelp() {
		descs = append(descs, b.Help().Desc)
	}
	want := map[string]bool{"back": false, "main menu": false, "open media": false}
	for _, d := range descs {
		if _, ok := want[d]; ok {
			want[d] = true
		}
	}
	for d, seen := range want {
		if !seen {
			t.Fatalf("player help missing %q in %v", d, descs)
		}
	}
	if cols := player.FullHelp(); len(cols) < 2 || len(cols[0]) != 4 {
		t.Fatalf("full help columns = %d", len(cols))
	}
}
