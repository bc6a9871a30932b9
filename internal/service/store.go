package service

import (
	"context"
	"errors"

	"github.com/jask/boule/internal/game"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

// SnapshotStore persists the game snapshot. Implementations live in this
// package (sqlite), internal/prefs (file) and internal/kvstore (badger).
type SnapshotStore interface {
	Load(ctx context.Context) (game.Snapshot, error)
	Save(ctx context.Context, s game.Snapshot) error
}
