package showcase

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTickerID int64

func nextTickerID() int {
	return int(atomic.AddInt64(&lastTickerID, 1))
}

// TickMsg is delivered on every period of a running Ticker.
type TickMsg struct {
	ID   int
	Time time.Time
	gen  int
}

// Ticker is a cancellable repeating task for Bubble Tea models. Each tick
// must be re-armed with Next; Stop invalidates ticks already in flight.
type Ticker struct {
	id       int
	gen      int
	interval time.Duration
	running  bool
}

// NewTicker returns a running ticker. The first tick is scheduled by Next.
func NewTicker(interval time.Duration) Ticker {
	return Ticker{id: nextTickerID(), interval: interval, running: true}
}

// ID identifies the ticker's messages.
func (t Ticker) ID() int { return t.id }

// Running reports whether ticks are still accepted.
func (t Ticker) Running() bool { return t.running }

// Accept reports whether msg is a live tick of this ticker.
func (t Ticker) Accept(msg TickMsg) bool {
	return t.running && msg.ID == t.id && msg.gen == t.gen
}

// Next schedules the following tick. It returns nil once stopped.
func (t Ticker) Next() tea.Cmd {
	if !t.running {
		return nil
	}
	id, gen := t.id, t.gen
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Time: now, gen: gen}
	})
}

// Stop releases the ticker. Pending ticks are discarded by Accept.
func (t Ticker) Stop() Ticker {
	t.running = false
	t.gen++
	return t
}
