package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/boule/internal/game"
	"github.com/jask/boule/internal/history"
)

const cellWidth = 3

func (a *App) View() string {
	sections := []string{a.renderHeader()}
	if b := a.game.Board(); b != nil {
		sections = append(sections, boardPadding.Render(a.renderBoard(b)))
	} else {
		sections = append(sections, boardPadding.Render(mutedStyle.Render("no puzzle in play, press n to start")))
	}
	if a.game.State() == game.Won {
		sections = append(sections, bannerStyle.Render(fmt.Sprintf("Solved in %d moves!", a.game.Score())))
	}
	if a.showScores {
		sections = append(sections, a.renderScores())
	}
	if a.status != "" {
		st := statusStyle
		if a.statusErr {
			st = errorStyle
		}
		sections = append(sections, st.Render(a.status))
	}
	sections = append(sections, a.help.View(a.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderHeader() string {
	moves := 0
	if b := a.game.Board(); b != nil {
		moves = b.Plays()
	}
	return fmt.Sprintf("%s  %s  %s  moves: %d",
		titleStyle.Render("boule"),
		a.game.Config(),
		mutedStyle.Render(a.game.State().String()),
		moves)
}

func (a *App) renderBoard(b game.BoardView) string {
	var sb strings.Builder
	for row := 0; row < b.Capacity(); row++ {
		for col := 0; col < b.Columns(); col++ {
			sb.WriteString(a.renderSlot(b, row, col))
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < b.Columns(); col++ {
		mark := "   "
		if col == a.cursor {
			mark = cursorStyle.Render(" ^ ")
		}
		sb.WriteString(mark)
	}
	return sb.String()
}

func (a *App) renderSlot(b game.BoardView, row, col int) string {
	c, ok := b.Slot(row, col).Color()
	if !ok {
		return emptyStyle.Render(" · ")
	}
	st, glyph := ballStyle(c, col == a.picked && b.IsTop(row, col))
	return lipgloss.PlaceHorizontal(cellWidth, lipgloss.Center, st.Render(glyph))
}

func (a *App) renderScores() string {
	cfg := a.game.Config()
	top := a.game.Ledger().Top(cfg, history.DisplayLimit)
	lines := []string{titleStyle.Render("scores " + cfg.String())}
	if best, ok := a.game.Ledger().Best(cfg); ok {
		lines = append(lines, fmt.Sprintf("best: %d", best))
	} else {
		lines = append(lines, mutedStyle.Render("no scores yet"))
	}
	for i, s := range top {
		lines = append(lines, fmt.Sprintf("%2d. %d", i+1, s))
	}
	return scoresStyle.Render(strings.Join(lines, "\n"))
}
