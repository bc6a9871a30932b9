// Package testdata produces deterministic boards and move plans for tests.
package testdata

import (
	"errors"
	"math/rand/v2"

	"github.com/jask/boule/internal/board"
)

// Move is a column pair.
type Move struct {
	From, To int
}

// Rand returns a seeded source so generated boards are reproducible.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ErrUnsupportedLayout is returned by Plan for boards that are not in the
// shape New produces: every column full except an empty last column.
var ErrUnsupportedLayout = errors.New("plan: board must have full columns and an empty last column")

type pos struct{ row, col int }

type planner struct {
	b     *board.Board
	spare int
	moves []Move
	err   error
}

// Plan sorts a copy of b and returns the moves it made, in order. Column i
// ends up holding color i and the last column ends up empty. Every move in
// the plan changes the board.
//
// Sorting is done by transpositions: any two slots can be exchanged through
// the top of a third column, parking blockers in the spare column.
func Plan(b *board.Board) ([]Move, error) {
	cfg := b.Config()
	spare := cfg.Columns - 1
	if cfg.Columns < 1 {
		return nil, ErrUnsupportedLayout
	}
	for col := 0; col < cfg.Columns; col++ {
		want := cfg.Capacity
		if col == spare {
			want = 0
		}
		if n := filled(b, col); n != want {
			return nil, ErrUnsupportedLayout
		}
	}
	if cfg.Columns < 3 {
		// Zero or one color: already sorted.
		return nil, nil
	}

	p := &planner{b: b.Clone(), spare: spare}
	for col := 0; col < spare; col++ {
		for row := 0; row < cfg.Capacity; row++ {
			if p.b.Slot(row, col) == board.Ball(col) {
				continue
			}
			from, ok := p.find(board.Ball(col), pos{row, col})
			if !ok {
				return nil, ErrUnsupportedLayout
			}
			p.transpose(pos{row, col}, from)
			if p.err != nil {
				return nil, p.err
			}
		}
	}
	return p.moves, nil
}

func filled(b *board.Board, col int) int {
	n := 0
	for row := 0; row < b.Capacity(); row++ {
		if b.Slot(row, col) != board.Empty {
			n++
		}
	}
	return n
}

// find returns the first slot after at (column-major) holding s.
func (p *planner) find(s board.Slot, at pos) (pos, bool) {
	cfg := p.b.Config()
	for col := at.col; col < p.spare; col++ {
		start := 0
		if col == at.col {
			start = at.row + 1
		}
		for row := start; row < cfg.Capacity; row++ {
			if p.b.Slot(row, col) == s {
				return pos{row, col}, true
			}
		}
	}
	return pos{}, false
}

func (p *planner) move(from, to int) {
	if p.err != nil {
		return
	}
	if !p.b.MoveBall(from, to) {
		p.err = errors.New("plan: move had no effect")
		return
	}
	p.moves = append(p.moves, Move{From: from, To: to})
}

// swapTop exchanges the ball at x with the top ball of column dst.
func (p *planner) swapTop(x pos, dst int) {
	for i := 0; i < x.row; i++ {
		p.move(x.col, p.spare)
	}
	p.move(x.col, p.spare)
	p.move(dst, x.col)
	p.move(p.spare, dst)
	for i := 0; i < x.row; i++ {
		p.move(p.spare, x.col)
	}
}

// other returns a filled column that is neither a nor the spare.
func (p *planner) other(a int) int {
	for col := 0; col < p.spare; col++ {
		if col != a {
			return col
		}
	}
	return a
}

func (p *planner) transpose(x, y pos) {
	switch {
	case x == y:
	case x.col == y.col:
		s := p.other(x.col)
		p.swapTop(x, s)
		p.swapTop(y, s)
		p.swapTop(x, s)
	case y.row == 0:
		p.swapTop(x, y.col)
	case x.row == 0:
		p.swapTop(y, x.col)
	default:
		// (x y) = (x t)(y t)(x t) with t the top of y's column; (y t) is
		// itself routed through the top of x's column.
		t := pos{0, y.col}
		p.swapTop(x, y.col)
		p.swapTop(y, x.col)
		p.swapTop(t, x.col)
		p.swapTop(y, x.col)
		p.swapTop(x, y.col)
	}
}
