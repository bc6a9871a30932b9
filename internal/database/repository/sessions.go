package repository

import (
	"context"
	"database/sql"
	"errors"
)

// SessionRepo handles the session row.
type SessionRepo struct {
	db DBTX
}

func NewSessionRepo(db DBTX) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Upsert(ctx context.Context, s SessionRow) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO session(id, columns, capacity, session_id, won, board, updated_at)
	VALUES (1, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 columns=excluded.columns,
	 capacity=excluded.capacity,
	 session_id=excluded.session_id,
	 won=excluded.won,
	 board=excluded.board,
	 updated_at=CURRENT_TIMESTAMP;
	`, s.Columns, s.Capacity, s.SessionID, s.Won, s.Board)
	return err
}

// Get returns nil when nothing has been saved yet.
func (r *SessionRepo) Get(ctx context.Context) (*SessionRow, error) {
	var s SessionRow
	err := r.db.QueryRowContext(ctx, `SELECT columns, capacity, session_id, won, board, updated_at FROM session WHERE id = 1`).
		Scan(&s.Columns, &s.Capacity, &s.SessionID, &s.Won, &s.Board, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
