package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/mlshowcase/internal/showcase"
)

// handleMouse treats a left-button press on a tile or button as a click.
// Clicks wait for a pending transition: the zones belong to the screen
// being shown, not to the one about to replace it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.jumping || m.pending != nil || msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	for _, z := range m.zones() {
		if !z.contains(msg.X, msg.Y) {
			continue
		}
		m.setStatus("", false)
		var cmd tea.Cmd
		switch z.action {
		case actionPick:
			cmd = m.navigate(m.selectAt(m.state, z.index))
		case actionBack:
			cmd = m.navigate(showcase.Back(m.state))
		case actionMenu:
			cmd = m.navigate(showcase.Reset(m.state))
		}
		return m, cmd
	}
	return m, nil
}
