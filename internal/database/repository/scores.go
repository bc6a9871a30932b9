package repository

import "context"

// ScoreRepo handles recorded scores.
type ScoreRepo struct {
	db DBTX
}

func NewScoreRepo(db DBTX) *ScoreRepo { return &ScoreRepo{db: db} }

// Insert records a score; duplicates are ignored. It reports whether a row was added.
func (r *ScoreRepo) Insert(ctx context.Context, columns, capacity, moves int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO scores(columns, capacity, moves) VALUES(?, ?, ?)`, columns, capacity, moves)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// List returns every score ordered by configuration then moves.
func (r *ScoreRepo) List(ctx context.Context) ([]Score, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT columns, capacity, moves, recorded_at FROM scores ORDER BY columns, capacity, moves`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Score
	for rows.Next() {
		var s Score
		if err := rows.Scan(&s.Columns, &s.Capacity, &s.Moves, &s.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
