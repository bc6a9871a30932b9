package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/boule/internal/board"
	"github.com/jask/boule/internal/config"
	"github.com/jask/boule/internal/game"
	"github.com/jask/boule/internal/service"
)

const tickInterval = time.Second

// App is the input layer: it turns key presses into game calls and keeps the
// store in step with the game.
type App struct {
	ctx    context.Context
	game   *game.Game
	saver  *service.Saver
	rng    board.Shuffler
	logger *slog.Logger
	keys   keyMap
	help   help.Model

	cursor     int
	picked     int // source column, -1 when nothing is held
	showScores bool
	status     string
	statusErr  bool
	width      int
}

type tickMsg time.Time

// ConfigMsg carries a reloaded configuration into the running program.
type ConfigMsg config.Config

func New(ctx context.Context, g *game.Game, saver *service.Saver, src board.Shuffler, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		ctx:    ctx,
		game:   g,
		saver:  saver,
		rng:    src,
		logger: logger,
		keys:   defaultKeys(),
		help:   help.New(),
		picked: -1,
	}
}

// Game exposes the model's game, mostly for tests and shutdown.
func (a *App) Game() *game.Game { return a.game }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (a *App) Init() tea.Cmd {
	return tick()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
	case tickMsg:
		if a.saver.Due(time.Time(m)) {
			a.flush(true)
		}
		return a, tick()
	case ConfigMsg:
		a.saver.Interval = m.Autosave.Interval
		a.logger.Info("autosave interval changed", "interval", a.saver.Interval)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		a.flush(true)
		return a, tea.Quit
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(m, a.keys.Scores):
		a.showScores = !a.showScores
	case key.Matches(m, a.keys.Left):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Right):
		if a.cursor < a.columns()-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Cancel):
		a.picked = -1
	case key.Matches(m, a.keys.Pick):
		a.pickOrDrop()
	case key.Matches(m, a.keys.New):
		a.picked = -1
		if err := a.game.NewPuzzle(a.rng); err != nil {
			a.setError(err)
			break
		}
		a.logger.Info("puzzle started", "session", a.game.SessionID(), "config", a.game.Config())
		a.setStatus(fmt.Sprintf("new %s puzzle", a.game.Config()))
	case key.Matches(m, a.keys.Abort):
		a.picked = -1
		if a.game.Abort() {
			a.setStatus("puzzle abandoned")
		}
	case key.Matches(m, a.keys.MoreColumns):
		a.resize(1, 0)
	case key.Matches(m, a.keys.FewerColumns):
		a.resize(-1, 0)
	case key.Matches(m, a.keys.MoreCapacity):
		a.resize(0, 1)
	case key.Matches(m, a.keys.LessCapacity):
		a.resize(0, -1)
	}
	a.clampCursor()
	a.flush(false)
	return a, nil
}

func (a *App) pickOrDrop() {
	if a.game.State() != game.Playing {
		a.setStatus("press n to start a puzzle")
		return
	}
	b := a.game.Board()
	if a.picked < 0 {
		if _, ok := b.FirstBall(a.cursor); ok {
			a.picked = a.cursor
			return
		}
		// Nothing to hold; the attempt still gets a win check.
		a.attempt(a.cursor, a.cursor)
		return
	}
	from := a.picked
	a.picked = -1
	a.attempt(from, a.cursor)
}

// attempt sends a move to the game. Same-column moves change nothing on the
// board but still let a solved board register as won.
func (a *App) attempt(from, to int) {
	out := a.game.Move(game.ColumnMove{From: from, To: to})
	if out.Won {
		a.logger.Info("puzzle solved", "session", a.game.SessionID(), "config", a.game.Config(), "moves", out.Score)
		a.setStatus(fmt.Sprintf("solved in %d moves", out.Score))
	}
}

func (a *App) resize(dCols, dCap int) {
	cfg := a.game.Config()
	cfg.Columns += dCols
	cfg.Capacity += dCap
	cfg = cfg.Clamp()
	if err := a.game.SetConfig(cfg); err != nil {
		a.setError(err)
		return
	}
	if a.game.State() == game.Playing {
		a.setStatus(fmt.Sprintf("next puzzle: %s", cfg))
	} else {
		a.setStatus(cfg.String())
	}
}

func (a *App) columns() int {
	if b := a.game.Board(); b != nil {
		return b.Columns()
	}
	return a.game.Config().Columns
}

func (a *App) clampCursor() {
	if n := a.columns(); a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// flush persists the game when it changed, or always when force is set.
func (a *App) flush(force bool) {
	if err := a.saver.Flush(a.ctx, a.game, force); err != nil {
		a.setError(fmt.Errorf("save: %w", err))
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = err.Error()
	a.statusErr = true
}
