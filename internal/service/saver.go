package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jask/boule/internal/board"
	"github.com/jask/boule/internal/game"
)

// Saver drives persistence for a running game: restore once at startup,
// flush after every dirtying event and on a periodic tick.
type Saver struct {
	Store    SnapshotStore
	Interval time.Duration
	Logger   *slog.Logger
	// Default is the configuration of the fresh game used when nothing
	// usable is stored.
	Default board.Config

	now  func() time.Time
	last time.Time
}

func (s *Saver) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *Saver) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// Restore loads the stored game. A missing or unusable snapshot yields a
// fresh game with an empty ledger; it never fails.
func (s *Saver) Restore(ctx context.Context) *game.Game {
	s.last = s.clock()
	fresh := func() *game.Game {
		cfg := s.Default
		if cfg.Validate() != nil {
			cfg = board.DefaultConfig
		}
		return game.New(cfg)
	}
	snap, err := s.Store.Load(ctx)
	switch {
	case errors.Is(err, ErrNoSnapshot):
		s.logger().Info("no saved game, starting fresh", "config", s.Default)
		return fresh()
	case err != nil:
		s.logger().Warn("load snapshot failed, starting fresh", "err", err)
		return fresh()
	}
	g, err := game.Restore(snap)
	if err != nil {
		s.logger().Warn("discarding stored snapshot", "err", err)
		return fresh()
	}
	s.logger().Info("restored game", "config", g.Config(), "state", g.State(), "session", g.SessionID())
	return g
}

// Flush saves g when it is dirty, or unconditionally when force is set, and
// marks it clean on success.
func (s *Saver) Flush(ctx context.Context, g *game.Game, force bool) error {
	if !g.Dirty() && !force {
		return nil
	}
	if err := s.Store.Save(ctx, g.Snapshot()); err != nil {
		s.logger().Error("save snapshot", "err", err)
		return err
	}
	g.MarkClean()
	s.last = s.clock()
	s.logger().Debug("saved snapshot", "state", g.State(), "forced", force)
	return nil
}

// Due reports whether the periodic save interval has elapsed since the last
// successful save.
func (s *Saver) Due(now time.Time) bool {
	if s.Interval <= 0 {
		return false
	}
	return now.Sub(s.last) >= s.Interval
}
