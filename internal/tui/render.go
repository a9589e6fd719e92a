package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/mlshowcase/internal/catalog"
	"github.com/jask/mlshowcase/internal/showcase"
)

const (
	appTitle    = "ML Research Showcase"
	appSubtitle = "Explore cutting-edge machine learning applications in computer vision and audio processing"
	copyright   = "© 2025 Advanced ML Research • Interactive Showcase"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	view, _ := m.frame()
	return view
}

// zones returns the clickable regions of the current view.
func (m Model) zones() []zone {
	_, zones := m.frame()
	return zones
}

// frame lays out the view for the terminal size and returns it with the
// clickable zones in screen coordinates.
func (m Model) frame() (string, []zone) {
	header, footer, s, room := m.arrange()
	body, zones := s.fit(room, m.scroll)
	dy := lipgloss.Height(header)
	for i := range zones {
		zones[i].y0 += dy
		zones[i].y1 += dy
	}
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, footer)), zones
}

// arrange renders the parts of the view and the number of body lines the
// terminal has room for, 0 when the height is unknown. The header
// shrinks to the title line when the body does not fit under it.
func (m Model) arrange() (header, footer string, body *stack, room int) {
	header = m.renderHeader()
	footer = m.renderFooter()
	body = m.renderBody()
	if m.height <= 0 {
		return header, footer, body, 0
	}
	room = m.height - lipgloss.Height(footer)
	if lipgloss.Height(header)+body.height > room {
		header = m.renderTitle()
	}
	room = max(1, room-lipgloss.Height(header))
	return header, footer, body, room
}

func (m Model) renderTitle() string {
	return lipgloss.PlaceHorizontal(m.contentWidth(), lipgloss.Center, brandStyle.Render(appTitle))
}

func (m Model) renderHeader() string {
	sub := subtitleStyle.Width(m.contentWidth()).Align(lipgloss.Center).Render(appSubtitle)
	return m.renderTitle() + "\n" + sub + "\n"
}

func (m Model) renderBody() *stack {
	s := &stack{}
	switch st := m.state.(type) {
	case showcase.Loading:
		m.buildLoading(s, st)
	case showcase.Landing:
		m.buildLanding(s, st)
	case showcase.DemoList:
		m.buildDemoList(s, st)
	case showcase.Player:
		m.buildPlayer(s, st)
	}
	return s
}

func (m Model) buildLoading(s *stack, st showcase.Loading) {
	w := m.contentWidth()
	s.gap()
	s.add(lipgloss.PlaceHorizontal(w, lipgloss.Center, headingStyle.Render("Loading showcase")))
	s.gap()
	s.add(lipgloss.PlaceHorizontal(w, lipgloss.Center, m.loadBar.ViewAs(float64(st.Progress)/100)))
}

func (m Model) buildLanding(s *stack, st showcase.Landing) {
	w := m.contentWidth()
	for i, p := range m.catalog.Projects() {
		s.addClickable(projectTile(p, i == st.Cursor, w), actionPick, i, i == st.Cursor)
	}
}

func projectTile(p catalog.Project, selected bool, width int) string {
	th := themeFor(p.Theme)
	inner := width - 4
	title := lipgloss.NewStyle().Foreground(th.Primary).Bold(true).
		Render(fmt.Sprintf("%d  %s  %s", p.Index+1, iconFor(p.Icon), p.Title))
	desc := mutedStyle.Width(inner).Render(p.Description)
	left := dimStyle.Render(glyphBrain + " ML Powered")
	right := linkStyle.Render("Explore " + glyphNext)
	foot := left + strings.Repeat(" ", max(1, inner-lipgloss.Width(left)-lipgloss.Width(right))) + right

	style := tileStyle.BorderForeground(th.Secondary)
	if selected {
		style = activeTileStyle.BorderForeground(th.Primary)
	}
	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, desc, "", foot))
}

func (m Model) buildDemoList(s *stack, st showcase.DemoList) {
	w := m.contentWidth()
	p := st.Project
	th := themeFor(p.Theme)

	s.addButtons(w, button{label: glyphPrev + " Back to projects", action: actionBack})
	s.pin()
	s.add(lipgloss.PlaceHorizontal(w, lipgloss.Center,
		lipgloss.NewStyle().Foreground(th.Primary).Bold(true).Render(iconFor(p.Icon)+"  "+p.Title)))
	s.add(mutedStyle.Width(w).Align(lipgloss.Center).Render(p.Description))
	if p.KeyFeature != "" {
		s.add(dimStyle.Width(w).Align(lipgloss.Center).Render("Key feature: " + p.KeyFeature))
	}
	if len(p.Technologies) > 0 {
		s.add(lipgloss.PlaceHorizontal(w, lipgloss.Center,
			linkStyle.Render(strings.Join(p.Technologies, " "+glyphBullet+" "))))
	}
	s.gap()
	s.add(lipgloss.PlaceHorizontal(w, lipgloss.Center, headingStyle.Render("Select a Demo")))
	for i, d := range p.Demos {
		s.addClickable(demoTile(d, i == st.Cursor, th, w), actionPick, i, i == st.Cursor)
	}
}

func demoTile(d catalog.Demo, selected bool, th projectTheme, width int) string {
	glyph := glyphPlay
	if d.Kind == catalog.MediaImage {
		glyph = glyphImage
	}
	title := headingStyle.Render(fmt.Sprintf("%d  %s  %s", d.Index+1, linkStyle.Render(glyph), d.Title))
	desc := mutedStyle.Width(width - 4).Render(d.Description)
	style := tileStyle
	if selected {
		style = activeTileStyle.BorderForeground(th.Primary)
	}
	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, desc))
}

func (m Model) buildPlayer(s *stack, st showcase.Player) {
	w := m.contentWidth()
	d := st.Demo

	s.addButtons(w,
		button{label: glyphPrev + " Back to demos", action: actionBack},
		button{label: glyphPrev + " Main menu", action: actionMenu},
	)
	s.pin()
	s.add(headingStyle.Render(d.Title))
	s.add(mutedStyle.Width(w).Render(d.Description))
	s.gap()
	s.add(mediaPanel(d, w))
	s.add(m.statsCard(d.Stats, w))

	half := w / 2
	features := bulletCard("Key Features", d.Features, half)
	tech := bulletCard("Technology Used", st.Project.Technologies, w-half)
	s.add(lipgloss.JoinHorizontal(lipgloss.Top, features, tech))
	if len(st.Project.Applications) > 0 {
		s.add(bulletCard("Applications", st.Project.Applications, w))
	}
}

func mediaPanel(d catalog.Demo, width int) string {
	var kind, detail string
	switch d.Kind {
	case catalog.MediaVideo:
		kind = glyphPlay + " video"
		detail = "autoplay " + glyphBullet + " loop " + glyphBullet + " controls"
	default:
		kind = glyphImage + " image"
		detail = "still " + glyphBullet + " fit to frame"
	}
	lines := []string{
		linkStyle.Render(kind) + "  " + headingStyle.Render(d.Media),
		dimStyle.Render(detail),
		dimStyle.Render("press o to open in the external viewer"),
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface0).
		Width(width-2).
		Align(lipgloss.Center).
		Padding(1, 1).
		Render(strings.Join(lines, "\n"))
}

func (m Model) statsCard(stats catalog.Stats, width int) string {
	const labelWidth = 16
	inner := width - 4
	bar := m.statBar
	bar.Width = max(10, inner-labelWidth-6)
	row := func(label string, v int) string {
		return fmt.Sprintf("%-*s%s %4d%%", labelWidth, label, bar.ViewAs(float64(v)/100), v)
	}
	body := strings.Join([]string{
		headingStyle.Render("Accuracy Metrics"),
		row("Accuracy", stats.Accuracy),
		row("Speed", stats.Speed),
		row("Implementation", stats.Implementation),
	}, "\n")
	return cardStyle.Width(width - 2).Render(body)
}

func bulletCard(title string, items []string, width int) string {
	lines := []string{headingStyle.Render(title)}
	for _, it := range items {
		lines = append(lines, bulletStyle.Render(glyphBullet)+" "+it)
	}
	return cardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	w := m.contentWidth()
	var parts []string
	parts = append(parts, "")
	if m.jumping {
		parts = append(parts, m.jump.View())
	}
	if strings.TrimSpace(m.status) != "" {
		style := statusBarStyle
		if m.statusErr {
			style = statusErrBarStyle
		}
		parts = append(parts, renderBar(style, w, m.status))
	}
	parts = append(parts, m.help.View(scopedKeyMap(m.keys.BindingsForScope(m.scope()))))
	parts = append(parts, lipgloss.PlaceHorizontal(w, lipgloss.Center, copyrightStyle.Render(copyright)))
	return strings.Join(parts, "\n")
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := " " + strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "…")
	if lw := ansi.StringWidth(line); lw < width {
		line += strings.Repeat(" ", width-lw)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
