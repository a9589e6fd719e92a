package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// zone is a clickable region of the rendered view, in cell coordinates.
type zone struct {
	x0, y0, x1, y1 int
	action         string
	index          int
}

func (z zone) contains(x, y int) bool {
	return x >= z.x0 && x <= z.x1 && y >= z.y0 && y <= z.y1
}

// stack builds a column of blocks and records where clickable ones land.
// When clipped, the first pinned lines stay on top and the rest scrolls,
// keeping the focused block in view.
type stack struct {
	blocks []string
	height int
	zones  []zone

	pinned             int
	focused            bool
	focusTop, focusBot int
}

func (s *stack) add(block string) int {
	top := s.height
	s.blocks = append(s.blocks, block)
	s.height += lipgloss.Height(block)
	return top
}

func (s *stack) gap() { s.add("") }

func (s *stack) addClickable(block, action string, index int, focus bool) {
	top := s.add(block)
	z := zone{
		x0: 0, y0: top,
		x1: lipgloss.Width(block) - 1, y1: top + lipgloss.Height(block) - 1,
		action: action, index: index,
	}
	s.zones = append(s.zones, z)
	if focus {
		s.focused = true
		s.focusTop, s.focusBot = z.y0, z.y1
	}
}

// pin keeps every line added so far on screen when the stack is clipped.
func (s *stack) pin() { s.pinned = s.height }

type button struct {
	label  string
	action string
}

// addButtons lays buttons out on one row, spread across width.
func (s *stack) addButtons(width int, buttons ...button) {
	rendered := make([]string, len(buttons))
	used := 0
	for i, b := range buttons {
		rendered[i] = buttonStyle.Render(b.label)
		used += lipgloss.Width(rendered[i])
	}
	spacing := 2
	if len(buttons) > 1 {
		spacing = max(spacing, (width-used)/(len(buttons)-1))
	}
	top := s.height
	var row strings.Builder
	x := 0
	for i, r := range rendered {
		if i > 0 {
			row.WriteString(strings.Repeat(" ", spacing))
			x += spacing
		}
		w := lipgloss.Width(r)
		s.zones = append(s.zones, zone{x0: x, y0: top, x1: x + w - 1, y1: top, action: buttons[i].action})
		row.WriteString(r)
		x += w
	}
	s.add(row.String())
}

func (s *stack) render() string {
	return strings.Join(s.blocks, "\n")
}

// window returns how many lines below the pinned rows are scrolled out
// when the stack is shown in room lines. scroll is the requested offset;
// the focused block overrides it as far as needed to stay visible.
func (s *stack) window(room, scroll int) int {
	if room <= 0 || s.height <= room {
		return 0
	}
	pinned := min(s.pinned, room)
	visible := room - pinned
	start := scroll
	if s.focused {
		top, bot := s.focusTop-pinned, s.focusBot-pinned
		if bot >= start+visible {
			start = bot - visible + 1
		}
		if top < start {
			start = top
		}
	}
	return min(max(start, 0), s.height-room)
}

// fit renders at most room lines (all of them when room <= 0) and the
// zones of what is left, with rows relative to the top of the stack.
func (s *stack) fit(room, scroll int) (string, []zone) {
	if room <= 0 || s.height <= room {
		return s.render(), slices.Clone(s.zones)
	}
	lines := strings.Split(s.render(), "\n")
	pinned := min(s.pinned, room)
	start := s.window(room, scroll)
	out := slices.Clone(lines[:pinned])
	out = append(out, lines[pinned+start:start+room]...)

	var zones []zone
	for _, z := range s.zones {
		lo, hi := 0, pinned-1
		if z.y0 >= s.pinned {
			z.y0 -= start
			z.y1 -= start
			lo, hi = pinned, room-1
		}
		z.y0, z.y1 = max(z.y0, lo), min(z.y1, hi)
		if z.y0 > z.y1 {
			continue
		}
		zones = append(zones, z)
	}
	return strings.Join(out, "\n"), zones
}
