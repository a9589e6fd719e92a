package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, true-color hex values.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	colorAccent  = colorBlue
	colorBrand   = colorMauve
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorSubtext0
	colorBorder  = colorSurface2
)

// projectTheme is the pair of colors a project tile is drawn with.
type projectTheme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
}

var projectThemes = map[string]projectTheme{
	"blue-purple": {Primary: colorBlue, Secondary: colorMauve},
	"green-teal":  {Primary: colorGreen, Secondary: colorTeal},
	"pink-yellow": {Primary: colorPink, Secondary: colorYellow},
}

func themeFor(tag string) projectTheme {
	if th, ok := projectThemes[tag]; ok {
		return th
	}
	return projectTheme{Primary: colorAccent, Secondary: colorLavender}
}

// Decorative glyphs; all single-cell wide.
const (
	glyphPlay    = "▶"
	glyphImage   = "▣"
	glyphBrain   = "✦"
	glyphNext    = "›"
	glyphPrev    = "‹"
	glyphBullet  = "•"
	glyphDefault = "◆"
)

var projectIcons = map[string]string{
	"activity": "∿",
	"mic":      "◉",
	"video":    glyphPlay,
	"brain":    glyphBrain,
}

func iconFor(tag string) string {
	if g, ok := projectIcons[tag]; ok {
		return g
	}
	return glyphDefault
}
