package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/boule/internal/board"
	"github.com/jask/boule/internal/history"
)

// SnapshotVersion is written into every encoded snapshot.
const SnapshotVersion = 1

// ErrCorruptSnapshot wraps every reason a stored snapshot cannot be used.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// Snapshot is everything that survives a restart. The dirty flag is not
// part of it.
type Snapshot struct {
	Version  int              `json:"version"`
	Columns  int              `json:"columns"`
	Capacity int              `json:"capacity"`
	Session  *SessionSnapshot `json:"session,omitempty"`
	Ledger   *history.Ledger  `json:"ledger"`
}

// SessionSnapshot is a puzzle in progress, or one won but not yet cleared.
type SessionSnapshot struct {
	ID    string       `json:"id"`
	Won   bool         `json:"won,omitempty"`
	Board *board.Board `json:"board"`
}

// Config is the configuration stored in s.
func (s Snapshot) Config() board.Config {
	return board.Config{Columns: s.Columns, Capacity: s.Capacity}
}

// Snapshot copies the persistent state of g.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Version:  SnapshotVersion,
		Columns:  g.cfg.Columns,
		Capacity: g.cfg.Capacity,
		Ledger:   g.ledger.Clone(),
	}
	if g.session.board != nil {
		s.Session = &SessionSnapshot{
			ID:    g.session.id.String(),
			Won:   g.session.state == Won,
			Board: g.session.board.Clone(),
		}
	}
	return s
}

// Restore rebuilds a game from s. Any inconsistency is reported as
// ErrCorruptSnapshot; callers fall back to New.
func Restore(s Snapshot) (*Game, error) {
	if s.Version > SnapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrCorruptSnapshot, s.Version)
	}
	cfg := s.Config()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	l := history.New()
	if s.Ledger != nil {
		l = s.Ledger.Clone()
	}
	g := &Game{cfg: cfg, session: NewSession(l), ledger: l}
	if s.Session == nil {
		return g, nil
	}

	b := s.Session.Board
	if b == nil {
		return nil, fmt.Errorf("%w: session without board", ErrCorruptSnapshot)
	}
	b = b.Clone()
	if err := b.Check(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	id, err := uuid.Parse(s.Session.ID)
	if err != nil {
		id = uuid.New()
	}
	state := Playing
	if s.Session.Won {
		if _, won := b.IsWinning(); !won {
			return nil, fmt.Errorf("%w: session marked won on an unsolved board", ErrCorruptSnapshot)
		}
		state = Won
	}
	g.session.board = b
	g.session.id = id
	g.session.state = state
	return g, nil
}

// EncodeSnapshot writes s as JSON.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	if s.Version == 0 {
		s.Version = SnapshotVersion
	}
	if s.Ledger == nil {
		s.Ledger = history.New()
	}
	return json.MarshalIndent(s, "", "  ")
}

// DecodeSnapshot parses data written by EncodeSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return s, nil
}
