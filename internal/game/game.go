package game

import (
	"github.com/google/uuid"

	"github.com/jask/boule/internal/board"
	"github.com/jask/boule/internal/history"
)

// Game is the application instance that gets persisted: the configuration
// chosen for the next puzzle, the session and the score ledger. Every call
// that changes any of them sets the dirty flag; the persistence driver
// clears it after a successful save.
type Game struct {
	cfg     board.Config
	session *Session
	ledger  *history.Ledger
	dirty   bool
}

// New returns a game with no puzzle in progress and an empty ledger.
func New(cfg board.Config) *Game {
	l := history.New()
	return &Game{cfg: cfg, session: NewSession(l), ledger: l}
}

func (g *Game) Config() board.Config { return g.cfg }
func (g *Game) State() State { return g.session.State() }
func (g *Game) Board() BoardView { return g.session.Board() }
func (g *Game) SessionID() uuid.UUID { return g.session.ID() }
func (g *Game) Score() int { return g.session.Score() }
func (g *Game) Ledger() *history.Ledger { return g.ledger }
func (g *Game) Dirty() bool { return g.dirty }

// MarkClean is called once the current state has been written out.
func (g *Game) MarkClean() { g.dirty = false }

// SetConfig changes the configuration used by the next Start.
func (g *Game) SetConfig(cfg board.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg != g.cfg {
		g.cfg = cfg
		g.dirty = true
	}
	return nil
}

// Start begins a puzzle with the current configuration.
func (g *Game) Start(src board.Shuffler) error {
	if err := g.session.Start(g.cfg, src); err != nil {
		return err
	}
	g.dirty = true
	return nil
}

// Move forwards a move intent to the session.
func (g *Game) Move(in Intent) Outcome {
	out := g.session.Attempt(in)
	if out.Moved || out.Won {
		g.dirty = true
	}
	return out
}

func (g *Game) Abort() bool {
	if !g.session.Abort() {
		return false
	}
	g.dirty = true
	return true
}

func (g *Game) Restart() bool {
	if !g.session.Restart() {
		return false
	}
	g.dirty = true
	return true
}

// NewPuzzle discards whatever is on the table and starts over with the
// current configuration. A puzzle in play is aborted, not recorded.
func (g *Game) NewPuzzle(src board.Shuffler) error {
	g.Abort()
	g.Restart()
	return g.Start(src)
}
