// Package game drives a puzzle through its lifecycle and owns everything
// that gets persisted between runs.
package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/jask/boule/internal/board"
)

// State is the session lifecycle tag.
type State int

const (
	NotStarted State = iota
	Playing
	Won
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	default:
		return "not started"
	}
}

// ErrSessionActive is returned by Start when a board is already in play or
// has been won and not yet restarted.
var ErrSessionActive = errors.New("session already has a board")

// Recorder receives the move count of each win.
type Recorder interface {
	Record(cfg board.Config, score int) bool
}

// BoardView is the read-only side of a board.
type BoardView interface {
	Config() board.Config
	Columns() int
	Capacity() int
	Plays() int
	Slot(row, col int) board.Slot
	IsTop(row, col int) bool
	FirstBall(col int) (int, bool)
	FirstEmpty(col int) (int, bool)
}

// Outcome describes what one Attempt did. Won is only set on the attempt
// that completed the puzzle.
type Outcome struct {
	Moved bool
	Won   bool
	Score int
}

// Session owns one board at a time.
type Session struct {
	id    uuid.UUID
	state State
	board *board.Board
	rec   Recorder
}

func NewSession(rec Recorder) *Session {
	return &Session{rec: rec}
}

func (s *Session) State() State { return s.state }
func (s *Session) ID() uuid.UUID { return s.id }

// Board returns the current board, or nil when not started.
func (s *Session) Board() BoardView {
	if s.board == nil {
		return nil
	}
	return s.board
}

// Score is the winning move count; zero unless the session is Won.
func (s *Session) Score() int {
	if s.state != Won {
		return 0
	}
	return s.board.Plays()
}

// Start allocates a fresh board and begins play.
func (s *Session) Start(cfg board.Config, src board.Shuffler) error {
	if s.state != NotStarted {
		return ErrSessionActive
	}
	b, err := board.New(cfg, src)
	if err != nil {
		return err
	}
	s.board = b
	s.id = uuid.New()
	s.state = Playing
	return nil
}

// Attempt applies a move intent while Playing and checks for a win. Calls in
// any other state are ignored.
func (s *Session) Attempt(in Intent) Outcome {
	if s.state != Playing || in == nil {
		return Outcome{}
	}
	var out Outcome
	if from, to, ok := in.columns(s.board); ok {
		out.Moved = s.board.MoveBall(from, to)
	}
	if score, won := s.board.IsWinning(); won {
		s.state = Won
		out.Won = true
		out.Score = score
		if s.rec != nil {
			s.rec.Record(s.board.Config(), score)
		}
	}
	return out
}

// Abort drops the board in play without recording anything.
func (s *Session) Abort() bool {
	if s.state != Playing {
		return false
	}
	s.reset()
	return true
}

// Restart clears a won session. It is ignored while Playing; use Abort.
func (s *Session) Restart() bool {
	switch s.state {
	case Won:
		s.reset()
		return true
	case NotStarted:
		s.reset()
	}
	return false
}

func (s *Session) reset() {
	s.board = nil
	s.id = uuid.Nil
	s.state = NotStarted
}
