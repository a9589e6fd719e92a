// Package tui renders the showcase as a Bubble Tea program.
package tui

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/mlshowcase/internal/catalog"
	"github.com/jask/mlshowcase/internal/config"
	"github.com/jask/mlshowcase/internal/showcase"
)

const (
	defaultWidth = 80
	maxWidth     = 110
)

// settledMsg ends the loading screen once the settle delay has passed.
type settledMsg struct {
	tickerID int
}

// transitionMsg applies a delayed navigation if it is still the latest one.
type transitionMsg struct {
	seq int
}

// Model is the showcase view: navigation state plus the widgets that draw it.
type Model struct {
	cfg     config.Config
	catalog *catalog.Catalog
	keys    *KeyRegistry
	help    help.Model

	state      showcase.State
	pending    showcase.State
	pendingSeq int
	ticker     showcase.Ticker
	scroll     int

	loadBar progress.Model
	statBar progress.Model
	jump    textinput.Model
	jumping bool

	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
}

func New(cat *catalog.Catalog, cfg config.Config) Model {
	jump := textinput.New()
	jump.Prompt = "/ "
	jump.Placeholder = "project or demo title"
	jump.CharLimit = 64

	m := Model{
		cfg:     cfg,
		catalog: cat,
		keys:    NewKeyRegistry(DefaultBindings()),
		help:    help.New(),
		state:   showcase.Start(),
		ticker:  showcase.NewTicker(cfg.Loading.Interval),
		loadBar: progress.New(progress.WithGradient(string(colorBlue), string(colorPink))),
		statBar: progress.New(progress.WithSolidFill(string(colorSuccess)), progress.WithoutPercentage()),
		jump:    jump,
	}
	m.resize(defaultWidth, 0)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.ticker.Next()
}

// State returns the navigation state on screen.
func (m Model) State() showcase.State { return m.state }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case showcase.TickMsg:
		return m.handleTick(msg)
	case settledMsg:
		if msg.tickerID == m.ticker.ID() {
			m.apply(showcase.Settle(m.state))
		}
		return m, nil
	case transitionMsg:
		if msg.seq == m.pendingSeq && m.pending != nil {
			m.apply(m.pending)
		}
		return m, nil
	case mediaOpenedMsg:
		if msg.err != nil {
			log.Printf("media %q: %v", msg.title, msg.err)
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus("Closed viewer for "+msg.title, false)
		}
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.jumping {
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleTick(msg showcase.TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticker.Accept(msg) {
		return m, nil
	}
	m.state = showcase.Advance(m.state, m.cfg.Loading.Step)
	if showcase.Progress(m.state) < 100 {
		return m, m.ticker.Next()
	}
	m.ticker = m.ticker.Stop()
	id := m.ticker.ID()
	if m.cfg.Loading.Settle <= 0 {
		return m, func() tea.Msg { return settledMsg{tickerID: id} }
	}
	return m, tea.Tick(m.cfg.Loading.Settle, func(time.Time) tea.Msg {
		return settledMsg{tickerID: id}
	})
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.jumping {
		return m.handleJumpKey(msg)
	}
	m.setStatus("", false)
	base := m.target()
	var cmd tea.Cmd
	switch m.keys.ActionFor(msg, m.scope()) {
	case actionQuit:
		return m.quit()
	case actionUp:
		m.moveCursor(-1)
	case actionDown:
		m.moveCursor(1)
	case actionSelect:
		cmd = m.navigate(m.selectAt(base, showcase.Cursor(base)))
	case actionPick:
		if n, err := strconv.Atoi(msg.String()); err == nil {
			cmd = m.navigate(m.selectAt(base, n-1))
		}
	case actionBack:
		cmd = m.navigate(showcase.Back(base))
	case actionMenu:
		cmd = m.navigate(showcase.Reset(base))
	case actionJump:
		cmd = m.openJump()
	case actionOpen:
		if d, ok := showcase.SelectedDemo(m.state); ok {
			cmd = m.openMedia(d)
		}
	case actionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, cmd
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.ticker = m.ticker.Stop()
	m.pending = nil
	m.quitting = true
	return *m, tea.Quit
}

func (m Model) scope() string {
	if m.jumping {
		return scopeJump
	}
	switch showcase.ScreenOf(m.state) {
	case showcase.ScreenLanding:
		return scopeLanding
	case showcase.ScreenDemoList:
		return scopeDemos
	case showcase.ScreenPlayer:
		return scopePlayer
	default:
		return scopeLoading
	}
}

// target is the state navigation builds on: a pending transition if one
// is in flight, the displayed state otherwise.
func (m Model) target() showcase.State {
	if m.pending != nil {
		return m.pending
	}
	return m.state
}

func (m *Model) moveCursor(delta int) {
	if m.pending != nil {
		return
	}
	switch st := m.state.(type) {
	case showcase.Landing:
		m.state = showcase.MoveCursor(st, delta, m.catalog.Len())
	case showcase.DemoList:
		m.state = showcase.MoveCursor(st, delta, len(st.Project.Demos))
	case showcase.Player:
		_, _, body, room := m.arrange()
		m.scroll = body.window(room, max(0, m.scroll+delta))
	}
}

// selectAt opens entry i of the list shown by s.
func (m Model) selectAt(s showcase.State, i int) showcase.State {
	switch st := s.(type) {
	case showcase.Landing:
		if p, ok := m.catalog.ProjectAt(i); ok {
			return showcase.SelectProject(st, p)
		}
	case showcase.DemoList:
		if d, ok := st.Project.DemoAt(i); ok {
			return showcase.SelectDemo(st, d)
		}
	}
	return s
}

// navigate moves to next, after the cosmetic transition delay if one is
// configured. A newer request supersedes a pending one.
func (m *Model) navigate(next showcase.State) tea.Cmd {
	delay := m.cfg.UI.TransitionDelay
	if delay <= 0 {
		m.apply(next)
		return nil
	}
	m.pendingSeq++
	m.pending = next
	seq := m.pendingSeq
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return transitionMsg{seq: seq}
	})
}

func (m *Model) apply(next showcase.State) {
	prev := showcase.ScreenOf(m.state)
	m.state = next
	m.pending = nil
	m.scroll = 0
	if cur := showcase.ScreenOf(next); cur != prev {
		log.Printf("screen %s -> %s%s", prev, cur, describe(next))
	}
}

func describe(s showcase.State) string {
	switch st := s.(type) {
	case showcase.DemoList:
		return fmt.Sprintf(" project=%s", st.Project.ID)
	case showcase.Player:
		return fmt.Sprintf(" project=%s demo=%d", st.Project.ID, st.Demo.ID)
	}
	return ""
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.scroll = 0
	w := m.contentWidth()
	m.help.Width = w
	m.loadBar.Width = max(10, w-8)
	m.statBar.Width = max(10, w-32)
	m.jump.Width = max(10, w-8)
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return min(m.width, maxWidth)
}
