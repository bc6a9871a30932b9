// Package board holds the puzzle grid: generation, queries and the single
// move primitive. It knows nothing about sessions or history.
package board

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Slot is one cell of a column. The zero value is Empty.
type Slot int

// Empty marks a cell with no ball.
const Empty Slot = 0

// Ball returns the slot holding a ball of the given color.
func Ball(color int) Slot { return Slot(color + 1) }

// Color reports the ball color, or false for an empty slot.
func (s Slot) Color() (int, bool) {
	if s <= Empty {
		return 0, false
	}
	return int(s) - 1, true
}

func (s Slot) String() string {
	if c, ok := s.Color(); ok {
		return strconv.Itoa(c)
	}
	return "."
}

// MarshalJSON writes null for an empty slot and the color otherwise.
func (s Slot) MarshalJSON() ([]byte, error) {
	if c, ok := s.Color(); ok {
		return []byte(strconv.Itoa(c)), nil
	}
	return []byte("null"), nil
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Empty
		return nil
	}
	c, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("slot: %w", err)
	}
	if c < 0 || c == math.MaxInt {
		return fmt.Errorf("slot: color %d out of range", c)
	}
	*s = Ball(c)
	return nil
}

// Shuffler is the randomness a board needs. *rand.Rand from math/rand/v2
// satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Board is a column-major grid of slots. Within a column the balls sit in a
// contiguous run against the closed end; row 0 is the open end.
type Board struct {
	cfg   Config
	plays int
	slots []Slot
}

// New builds a shuffled board. The first Columns-1 columns are filled with
// one color each and then permuted together; the last column stays empty.
func New(cfg Config, src Shuffler) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Board{cfg: cfg, slots: make([]Slot, cfg.Columns*cfg.Capacity)}
	filled := cfg.Colors() * cfg.Capacity
	for i := 0; i < filled; i++ {
		b.slots[i] = Ball(i / cfg.Capacity)
	}
	if src != nil && filled > 1 {
		src.Shuffle(filled, func(i, j int) {
			b.slots[i], b.slots[j] = b.slots[j], b.slots[i]
		})
	}
	return b, nil
}

func (b *Board) Config() Config { return b.cfg }
func (b *Board) Columns() int { return b.cfg.Columns }
func (b *Board) Capacity() int { return b.cfg.Capacity }

// Plays is the number of successful moves made so far.
func (b *Board) Plays() int { return b.plays }

func (b *Board) index(row, col int) int { return col*b.cfg.Capacity + row }

func (b *Board) inColumn(col int) bool { return col >= 0 && col < b.cfg.Columns }

func (b *Board) inBounds(row, col int) bool {
	return b.inColumn(col) && row >= 0 && row < b.cfg.Capacity
}

// Slot returns the cell at row (counted from the open end) of col. Out of
// range coordinates read as Empty.
func (b *Board) Slot(row, col int) Slot {
	if !b.inBounds(row, col) {
		return Empty
	}
	return b.slots[b.index(row, col)]
}

// IsTop reports whether (row, col) holds the single movable ball of col.
func (b *Board) IsTop(row, col int) bool {
	if b.Slot(row, col) == Empty {
		return false
	}
	for r := 0; r < row; r++ {
		if b.Slot(r, col) != Empty {
			return false
		}
	}
	return true
}

// FirstEmpty returns the landing row for a ball pushed onto col, i.e. the
// empty row nearest the stack. It is false when col is full.
func (b *Board) FirstEmpty(col int) (int, bool) {
	if !b.inColumn(col) {
		return 0, false
	}
	for r := b.cfg.Capacity - 1; r >= 0; r-- {
		if b.Slot(r, col) == Empty {
			return r, true
		}
	}
	return 0, false
}

// FirstBall returns the row of the topmost ball in col, or false when the
// column is empty.
func (b *Board) FirstBall(col int) (int, bool) {
	if !b.inColumn(col) {
		return 0, false
	}
	for r := 0; r < b.cfg.Capacity; r++ {
		if b.Slot(r, col) != Empty {
			return r, true
		}
	}
	return 0, false
}

// MoveBall moves the top ball of from onto to. Any ball may land on any
// column that has room; colors are not matched. It returns false and leaves
// the board untouched when from == to, from is empty or to is full.
func (b *Board) MoveBall(from, to int) bool {
	if from == to {
		return false
	}
	src, ok := b.FirstBall(from)
	if !ok {
		return false
	}
	dst, ok := b.FirstEmpty(to)
	if !ok {
		return false
	}
	b.slots[b.index(dst, to)] = b.slots[b.index(src, from)]
	b.slots[b.index(src, from)] = Empty
	b.plays++
	return true
}

// IsWinning returns the move count when every column holds a single value
// across all of its slots (an all-empty column counts).
func (b *Board) IsWinning() (int, bool) {
	for col := 0; col < b.cfg.Columns; col++ {
		first := b.Slot(0, col)
		for row := 1; row < b.cfg.Capacity; row++ {
			if b.Slot(row, col) != first {
				return 0, false
			}
		}
	}
	return b.plays, true
}

// Balls counts occupied slots.
func (b *Board) Balls() int {
	n := 0
	for _, s := range b.slots {
		if s != Empty {
			n++
		}
	}
	return n
}

// ColorCounts returns how many balls of each color are on the board.
func (b *Board) ColorCounts() map[int]int {
	out := make(map[int]int)
	for _, s := range b.slots {
		if c, ok := s.Color(); ok {
			out[c]++
		}
	}
	return out
}

// Column copies col from the open end to the closed end.
func (b *Board) Column(col int) []Slot {
	if !b.inColumn(col) {
		return nil
	}
	start := b.index(0, col)
	return append([]Slot(nil), b.slots[start:start+b.cfg.Capacity]...)
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	return &Board{cfg: b.cfg, plays: b.plays, slots: append([]Slot(nil), b.slots...)}
}

// Check verifies the structural invariants of a board that did not come
// from New, such as one decoded from storage.
func (b *Board) Check() error {
	if err := b.cfg.Validate(); err != nil {
		return err
	}
	if b.plays < 0 {
		return fmt.Errorf("board: negative play count %d", b.plays)
	}
	if want := b.cfg.Columns * b.cfg.Capacity; len(b.slots) != want {
		return fmt.Errorf("board: %d slots, want %d", len(b.slots), want)
	}
	for col := 0; col < b.cfg.Columns; col++ {
		seen := false
		for row := 0; row < b.cfg.Capacity; row++ {
			s := b.Slot(row, col)
			if s < Empty {
				return fmt.Errorf("board: invalid slot %d in column %d", s, col)
			}
			empty := s == Empty
			if seen && empty {
				return fmt.Errorf("board: gap in column %d at row %d", col, row)
			}
			seen = seen || !empty
		}
	}
	return nil
}

type boardJSON struct {
	Columns  int    `json:"columns"`
	Capacity int    `json:"capacity"`
	Plays    int    `json:"plays"`
	Slots    []Slot `json:"slots"`
}

func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{
		Columns:  b.cfg.Columns,
		Capacity: b.cfg.Capacity,
		Plays:    b.plays,
		Slots:    b.slots,
	})
}

// UnmarshalJSON decodes and validates a board.
func (b *Board) UnmarshalJSON(data []byte) error {
	var w boardJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	out := Board{
		cfg:   Config{Columns: w.Columns, Capacity: w.Capacity},
		plays: w.Plays,
		slots: w.Slots,
	}
	if err := out.Check(); err != nil {
		return err
	}
	*b = out
	return nil
}
