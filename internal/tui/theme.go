package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/boule/internal/board"
)

// Ball colors, one per palette index.
var palette = [board.PaletteSize]lipgloss.Color{
	"#ff0000", // red
	"#00ff00", // green
	"#0000ff", // blue
	"#ffff00", // yellow
	"#a52a2a", // brown
	"#f0e68c", // khaki
	"#ff8080", // light red
	"#90ee90", // light green
	"#add8e6", // light blue
	"#ffffe0", // light yellow
	"#ffd700", // gold
	"#4a4a4a", // black, lifted off the terminal background
	"#00008b", // dark blue
}

// Colors past the palette reuse it with a different glyph.
var glyphs = []string{"●", "◆", "■", "▲"}

const (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#6c7086"
	colorAccent  lipgloss.Color = "#f5c2e7"
	colorFocus   lipgloss.Color = "#b4befe"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	emptyStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	bannerStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	statusStyle  = lipgloss.NewStyle().Foreground(colorText)
	scoresStyle  = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted)
	boardPadding = lipgloss.NewStyle().Padding(1, 2)
)

// ballStyle renders color c; picked balls are shown reversed.
func ballStyle(c int, picked bool) (lipgloss.Style, string) {
	st := lipgloss.NewStyle().Foreground(palette[c%board.PaletteSize])
	if picked {
		st = st.Reverse(true)
	}
	return st, glyphs[(c/board.PaletteSize)%len(glyphs)]
}
