package board_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/boule/internal/board"
	"github.com/jask/boule/internal/testdata"
)

// noShuffle leaves the filled region in construction order.
type noShuffle struct{}

func (noShuffle) Shuffle(int, func(i, j int)) {}

func mustNew(t *testing.T, cols, capacity int, seed uint64) *board.Board {
	t.Helper()
	b, err := board.New(board.Config{Columns: cols, Capacity: capacity}, testdata.Rand(seed))
	require.NoError(t, err)
	return b
}

func TestNewColorDistribution(t *testing.T) {
	t.Parallel()

	for _, cfg := range []board.Config{
		{Columns: 1, Capacity: 1},
		{Columns: 1, Capacity: 5},
		{Columns: 2, Capacity: 3},
		{Columns: 4, Capacity: 5},
		{Columns: 7, Capacity: 7},
		{Columns: 14, Capacity: 20},
	} {
		t.Run(cfg.String(), func(t *testing.T) {
			b, err := board.New(cfg, testdata.Rand(42))
			require.NoError(t, err)

			counts := b.ColorCounts()
			assert.Len(t, counts, cfg.Columns-1)
			for c := 0; c < cfg.Columns-1; c++ {
				assert.Equal(t, cfg.Capacity, counts[c], "color %d", c)
			}
			assert.Equal(t, (cfg.Columns-1)*cfg.Capacity, b.Balls())
			assert.Equal(t, 0, b.Plays())

			last := b.Column(cfg.Columns - 1)
			for row, s := range last {
				assert.Equal(t, board.Empty, s, "row %d of free column", row)
			}
			require.NoError(t, b.Check())
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	for _, cfg := range []board.Config{
		{Columns: 0, Capacity: 5},
		{Columns: 5, Capacity: 0},
		{Columns: -1, Capacity: 3},
		{},
	} {
		_, err := board.New(cfg, testdata.Rand(1))
		require.ErrorIs(t, err, board.ErrInvalidConfig, "config %v", cfg)
	}
}

func TestNewShufflesOnlyFilledRegion(t *testing.T) {
	t.Parallel()

	var n int
	spy := shuffleFunc(func(size int, swap func(i, j int)) { n = size })
	_, err := board.New(board.Config{Columns: 5, Capacity: 4}, spy)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
}

type shuffleFunc func(n int, swap func(i, j int))

func (f shuffleFunc) Shuffle(n int, swap func(i, j int)) { f(n, swap) }

func TestQueries(t *testing.T) {
	t.Parallel()

	b, err := board.New(board.Config{Columns: 3, Capacity: 3}, noShuffle{})
	require.NoError(t, err)

	// Column 0 full of color 0, column 2 empty.
	assert.Equal(t, board.Ball(0), b.Slot(0, 0))
	assert.Equal(t, board.Empty, b.Slot(9, 9))

	row, ok := b.FirstBall(0)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	_, ok = b.FirstEmpty(0)
	assert.False(t, ok)

	_, ok = b.FirstBall(2)
	assert.False(t, ok)
	row, ok = b.FirstEmpty(2)
	require.True(t, ok)
	assert.Equal(t, 2, row, "landing slot is at the closed end")

	assert.True(t, b.IsTop(0, 0))
	assert.False(t, b.IsTop(1, 0))
	assert.False(t, b.IsTop(0, 2))

	require.True(t, b.MoveBall(0, 2))
	assert.True(t, b.IsTop(2, 2))
	assert.True(t, b.IsTop(1, 0))
	row, ok = b.FirstEmpty(0)
	require.True(t, ok)
	assert.Equal(t, 0, row)
}

func TestMoveBallSameColumnIsNoop(t *testing.T) {
	t.Parallel()

	b := mustNew(t, 4, 5, 7)
	before := b.Clone()
	for col := 0; col < 4; col++ {
		assert.False(t, b.MoveBall(col, col))
	}
	assert.Equal(t, before, b)
}

func TestMoveBallIllegalIsNoop(t *testing.T) {
	t.Parallel()

	b := mustNew(t, 4, 5, 7)
	before := b.Clone()

	assert.False(t, b.MoveBall(3, 0), "source empty")
	assert.False(t, b.MoveBall(0, 1), "destination full")
	assert.False(t, b.MoveBall(-1, 3), "source out of range")
	assert.False(t, b.MoveBall(0, 4), "destination out of range")
	assert.Equal(t, before, b)
	assert.Equal(t, 15, b.Balls())
}

func TestMoveBallRelocatesTop(t *testing.T) {
	t.Parallel()

	b := mustNew(t, 4, 5, 11)
	top := b.Slot(0, 1)

	require.True(t, b.MoveBall(1, 3))
	assert.Equal(t, 1, b.Plays())
	assert.Equal(t, board.Empty, b.Slot(0, 1))
	assert.Equal(t, top, b.Slot(4, 3))
	assert.Equal(t, 15, b.Balls())

	// No color matching: a second, possibly different, ball stacks on top.
	next := b.Slot(0, 2)
	require.True(t, b.MoveBall(2, 3))
	assert.Equal(t, next, b.Slot(3, 3))
	assert.Equal(t, 2, b.Plays())
	require.NoError(t, b.Check())
}

func TestIsWinning(t *testing.T) {
	t.Parallel()

	sorted, err := board.New(board.Config{Columns: 4, Capacity: 3}, noShuffle{})
	require.NoError(t, err)
	n, ok := sorted.IsWinning()
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	single, err := board.New(board.Config{Columns: 1, Capacity: 4}, testdata.Rand(3))
	require.NoError(t, err)
	_, ok = single.IsWinning()
	assert.True(t, ok, "an all-empty column is monochromatic")

	require.True(t, sorted.MoveBall(0, 3))
	_, ok = sorted.IsWinning()
	assert.False(t, ok, "split column")

	require.True(t, sorted.MoveBall(3, 0))
	n, ok = sorted.IsWinning()
	assert.True(t, ok, "re-evaluated after every move")
	assert.Equal(t, 2, n)
}

func TestSortToWinCountsMoves(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint64{1, 2, 3, 99} {
		b := mustNew(t, 4, 5, seed)
		assert.Equal(t, 15, b.Balls())
		assert.Len(t, b.ColorCounts(), 3)

		plan, err := testdata.Plan(b)
		require.NoError(t, err)

		moved := 0
		for _, m := range plan {
			if b.MoveBall(m.From, m.To) {
				moved++
			}
			assert.Equal(t, 15, b.Balls())
		}
		n, ok := b.IsWinning()
		require.True(t, ok, "seed %d", seed)
		assert.Equal(t, moved, n)
		assert.Equal(t, len(plan), n)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	b := mustNew(t, 5, 4, 21)
	require.True(t, b.MoveBall(0, 4))
	require.True(t, b.MoveBall(1, 4))

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var out board.Board
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, b, &out)
	assert.Equal(t, 2, out.Plays())
}

func TestJSONRejectsCorruptBoards(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"slot count":   `{"columns":2,"capacity":2,"plays":0,"slots":[0,0,null]}`,
		"gravity":      `{"columns":2,"capacity":2,"plays":0,"slots":[0,null,null,null]}`,
		"no columns":   `{"columns":0,"capacity":2,"plays":0,"slots":[]}`,
		"negative":     `{"columns":1,"capacity":1,"plays":0,"slots":[-3]}`,
		"plays":        `{"columns":1,"capacity":1,"plays":-1,"slots":[null]}`,
		"not a number": `{"columns":1,"capacity":1,"plays":0,"slots":["red"]}`,
		"overflow":     `{"columns":1,"capacity":1,"plays":0,"slots":[9223372036854775807]}`,
	}
	for name, data := range cases {
		var b board.Board
		assert.Error(t, json.Unmarshal([]byte(data), &b), name)
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, board.Config{Columns: 1, Capacity: 2}, board.Config{Columns: 0, Capacity: 1}.Clamp())
	assert.Equal(t, board.Config{Columns: board.MaxColumns, Capacity: 20}, board.Config{Columns: 99, Capacity: 99}.Clamp())
	assert.Equal(t, board.DefaultConfig, board.DefaultConfig.Clamp())
}
