package repository

import "time"

// SessionRow represents the single persisted session row.
type SessionRow struct {
	Columns   int
	Capacity  int
	SessionID *string
	Won       bool
	Board     *string // JSON encoded board; nil when no session is active
	UpdatedAt time.Time
}

// Score represents a recorded winning move count.
type Score struct {
	Columns    int
	Capacity   int
	Moves      int
	RecordedAt time.Time
}
