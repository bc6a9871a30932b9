package board

import (
	"errors"
	"fmt"
)

// PaletteSize is the number of distinct ball colors the UI can paint before
// it falls back to glyph variants.
const PaletteSize = 13

// Bounds enforced by the input surface.
const (
	MinColumns  = 1
	MaxColumns  = PaletteSize + 1
	MinCapacity = 2
	MaxCapacity = 20
)

// ErrInvalidConfig is returned when a board is requested with fewer than one
// column or a capacity below one.
var ErrInvalidConfig = errors.New("invalid board configuration")

// Config is the (column count, column capacity) pair. It fully determines
// generation parameters and keys the score history.
type Config struct {
	Columns  int `json:"columns" mapstructure:"columns"`
	Capacity int `json:"capacity" mapstructure:"capacity"`
}

// DefaultConfig is the board offered on first launch.
var DefaultConfig = Config{Columns: 7, Capacity: 7}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d", c.Columns, c.Capacity)
}

// Validate rejects configurations that cannot hold a board at all.
func (c Config) Validate() error {
	if c.Columns < 1 || c.Capacity < 1 {
		return fmt.Errorf("%w: columns=%d capacity=%d", ErrInvalidConfig, c.Columns, c.Capacity)
	}
	return nil
}

// Clamp pulls c into the range the UI allows.
func (c Config) Clamp() Config {
	return Config{
		Columns:  clamp(c.Columns, MinColumns, MaxColumns),
		Capacity: clamp(c.Capacity, MinCapacity, MaxCapacity),
	}
}

// Colors is the number of distinct colors a fresh board uses.
func (c Config) Colors() int {
	if c.Columns < 1 {
		return 0
	}
	return c.Columns - 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
