package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeLoading = "loading"
	scopeLanding = "landing"
	scopeDemos   = "demos"
	scopePlayer  = "player"
	scopeJump    = "jump"
)

const (
	actionUp     = "up"
	actionDown   = "down"
	actionSelect = "select"
	actionPick   = "pick"
	actionBack   = "back"
	actionMenu   = "menu"
	actionJump   = "jump"
	actionOpen   = "open"
	actionHelp   = "help"
	actionCancel = "cancel"
	actionQuit   = "quit"
)

// KeyBinding attaches an action and the scopes it is live in to a
// bubbles key binding. An empty scope list or "*" matches every scope.
type KeyBinding struct {
	key.Binding
	Action string
	Scopes []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// BindingsForScope returns the enabled bindings live in scope, for help.
func (r *KeyRegistry) BindingsForScope(scope string) []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if b.Enabled() && scopeMatch(scope, b.Scopes) {
			out = append(out, b.Binding)
		}
	}
	return out
}

// ActionFor returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) string {
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) && key.Matches(msg, b.Binding) {
			return b.Action
		}
	}
	return ""
}

// IsAction reports whether msg triggers action in scope.
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, b := range r.bindings {
		if b.Action == action && scopeMatch(scope, b.Scopes) && key.Matches(msg, b.Binding) {
			return true
		}
	}
	return false
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func bind(action string, scopes []string, keys []string, helpKey, desc string) KeyBinding {
	return KeyBinding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc)),
		Action:  action,
		Scopes:  scopes,
	}
}

var (
	browseScopes = []string{scopeLanding, scopeDemos}
	navScopes    = []string{scopeLanding, scopeDemos, scopePlayer}
)

// DefaultBindings is the showcase keymap.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		bind(actionUp, browseScopes, []string{"up", "k", "left", "h", "shift+tab"}, "↑/k", "prev"),
		bind(actionDown, browseScopes, []string{"down", "j", "right", "l", "tab"}, "↓/j", "next"),
		bind(actionUp, []string{scopePlayer}, []string{"up", "k"}, "↑/k", "scroll up"),
		bind(actionDown, []string{scopePlayer}, []string{"down", "j"}, "↓/j", "scroll down"),
		bind(actionSelect, browseScopes, []string{"enter", " "}, "enter", "open"),
		bind(actionPick, browseScopes, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "1-9", "pick"),
		bind(actionBack, []string{scopeDemos, scopePlayer}, []string{"esc", "backspace"}, "esc", "back"),
		bind(actionMenu, []string{scopeDemos, scopePlayer}, []string{"m"}, "m", "main menu"),
		bind(actionOpen, []string{scopePlayer}, []string{"o"}, "o", "open media"),
		bind(actionJump, navScopes, []string{"/"}, "/", "jump"),
		bind(actionHelp, navScopes, []string{"?"}, "?", "more keys"),
		bind(actionSelect, []string{scopeJump}, []string{"enter"}, "enter", "go"),
		bind(actionCancel, []string{scopeJump}, []string{"esc"}, "esc", "cancel"),
		bind(actionQuit, []string{scopeJump}, []string{"ctrl+c"}, "ctrl+c", "quit"),
		bind(actionQuit, []string{scopeLoading, scopeLanding, scopeDemos, scopePlayer}, []string{"q", "ctrl+c"}, "q", "quit"),
	}
}

// scopedKeyMap adapts a scope's bindings to help.KeyMap.
type scopedKeyMap []key.Binding

func (k scopedKeyMap) ShortHelp() []key.Binding { return k }

func (k scopedKeyMap) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for chunk := range slices.Chunk([]key.Binding(k), 4) {
		out = append(out, chunk)
	}
	return out
}
