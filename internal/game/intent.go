package game

import "github.com/jask/boule/internal/board"

// Intent is a move request from the input layer. Payload shapes differ by
// version; the session resolves every version to a column pair.
type Intent interface {
	Version() int
	columns(b *board.Board) (from, to int, ok bool)
}

// ColumnMove asks to move the top ball of From onto To.
type ColumnMove struct {
	From int
	To   int
}

func (ColumnMove) Version() int { return 2 }

func (m ColumnMove) columns(*board.Board) (int, int, bool) {
	return m.From, m.To, true
}

// SlotMove is the older drag payload: the dragged slot and the slot it was
// released over. It only resolves when the dragged slot is its column's top
// ball and the release slot is empty and in another column.
type SlotMove struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

func (SlotMove) Version() int { return 1 }

func (m SlotMove) columns(b *board.Board) (int, int, bool) {
	if m.FromCol == m.ToCol || !b.IsTop(m.FromRow, m.FromCol) {
		return 0, 0, false
	}
	if m.ToRow < 0 || m.ToRow >= b.Capacity() || m.ToCol < 0 || m.ToCol >= b.Columns() {
		return 0, 0, false
	}
	if b.Slot(m.ToRow, m.ToCol) != board.Empty {
		return 0, 0, false
	}
	return m.FromCol, m.ToCol, true
}
