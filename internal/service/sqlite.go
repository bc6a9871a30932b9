package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jask/boule/internal/board"
	"github.com/jask/boule/internal/database"
	"github.com/jask/boule/internal/database/repository"
	"github.com/jask/boule/internal/game"
	"github.com/jask/boule/internal/history"
)

// SQLiteStore keeps the session in a single row and every score in its own
// row keyed by configuration and move count.
type SQLiteStore struct {
	DB *sql.DB
}

func (s *SQLiteStore) Load(ctx context.Context) (game.Snapshot, error) {
	if s.DB == nil {
		return game.Snapshot{}, fmt.Errorf("sqlite store: db not configured")
	}
	row, err := repository.NewSessionRepo(s.DB).Get(ctx)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("load session: %w", err)
	}
	if row == nil {
		return game.Snapshot{}, ErrNoSnapshot
	}
	scores, err := repository.NewScoreRepo(s.DB).List(ctx)
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("load scores: %w", err)
	}

	ledger := history.New()
	for _, sc := range scores {
		if sc.Moves < 0 {
			return game.Snapshot{}, fmt.Errorf("%w: negative score %d", game.ErrCorruptSnapshot, sc.Moves)
		}
		ledger.Record(board.Config{Columns: sc.Columns, Capacity: sc.Capacity}, sc.Moves)
	}
	snap := game.Snapshot{
		Version:  game.SnapshotVersion,
		Columns:  row.Columns,
		Capacity: row.Capacity,
		Ledger:   ledger,
	}
	if row.Board != nil {
		var b board.Board
		if err := json.Unmarshal([]byte(*row.Board), &b); err != nil {
			return game.Snapshot{}, fmt.Errorf("%w: board: %v", game.ErrCorruptSnapshot, err)
		}
		sess := &game.SessionSnapshot{Won: row.Won, Board: &b}
		if row.SessionID != nil {
			sess.ID = *row.SessionID
		}
		snap.Session = sess
	}
	return snap, nil
}

func (s *SQLiteStore) Save(ctx context.Context, snap game.Snapshot) error {
	if s.DB == nil {
		return fmt.Errorf("sqlite store: db not configured")
	}
	row := repository.SessionRow{Columns: snap.Columns, Capacity: snap.Capacity}
	if snap.Session != nil && snap.Session.Board != nil {
		data, err := json.Marshal(snap.Session.Board)
		if err != nil {
			return fmt.Errorf("encode board: %w", err)
		}
		id, encoded := snap.Session.ID, string(data)
		row.SessionID = &id
		row.Board = &encoded
		row.Won = snap.Session.Won
	}
	return database.WithTx(s.DB, func(tx *sql.Tx) error {
		if err := repository.NewSessionRepo(tx).Upsert(ctx, row); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		if snap.Ledger == nil {
			return nil
		}
		scores := repository.NewScoreRepo(tx)
		for _, e := range snap.Ledger.Entries() {
			for _, m := range e.Scores {
				if _, err := scores.Insert(ctx, e.Columns, e.Capacity, m); err != nil {
					return fmt.Errorf("save score %dx%d/%d: %w", e.Columns, e.Capacity, m, err)
				}
			}
		}
		return nil
	})
}
