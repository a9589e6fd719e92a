package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/mlshowcase/internal/showcase"
)

func (m *Model) openJump() tea.Cmd {
	m.jumping = true
	m.jump.Reset()
	return m.jump.Focus()
}

func (m *Model) closeJump() {
	m.jumping = false
	m.jump.Blur()
	m.jump.Reset()
}

// handleJumpKey feeds the prompt; enter selects the closest project or
// demo title. The lists on screen are never filtered.
func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsAction(msg, actionQuit, scopeJump) {
		return m.quit()
	}
	switch m.keys.ActionFor(msg, scopeJump) {
	case actionCancel:
		m.closeJump()
		return m, nil
	case actionSelect:
		query := m.jump.Value()
		m.closeJump()
		match, ok := m.catalog.Closest(query)
		if !ok {
			m.setStatus(fmt.Sprintf("Nothing matches %q", query), true)
			return m, nil
		}
		next := showcase.SelectProject(m.target(), match.Project)
		if match.Demo != nil {
			next = showcase.SelectDemo(next, *match.Demo)
		}
		cmd := m.navigate(next)
		m.setStatus("Jumped to "+match.Title(), false)
		return m, cmd
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}
