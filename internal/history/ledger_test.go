package history

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/boule/internal/board"
)

func TestRecordIsIdempotent(t *testing.T) {
	t.Parallel()

	l := New()
	cfg := board.Config{Columns: 6, Capacity: 7}
	assert.True(t, l.Record(cfg, 40))
	assert.True(t, l.Record(cfg, 25))
	assert.False(t, l.Record(cfg, 25))
	assert.True(t, l.Record(cfg, 30))

	assert.Equal(t, []int{25, 30, 40}, l.Query(cfg))
	best, ok := l.Best(cfg)
	require.True(t, ok)
	assert.Equal(t, 25, best)
}

func TestRecordRejectsNegativeScores(t *testing.T) {
	t.Parallel()

	l := New()
	cfg := board.Config{Columns: 4, Capacity: 4}
	assert.False(t, l.Record(cfg, -1))
	assert.Zero(t, l.Len())
	assert.Empty(t, l.Configs())
}

func TestConfigsAreIndependent(t *testing.T) {
	t.Parallel()

	l := New()
	a := board.Config{Columns: 4, Capacity: 5}
	b := board.Config{Columns: 5, Capacity: 4}
	l.Record(a, 12)
	l.Record(b, 30)

	assert.Equal(t, []int{12}, l.Query(a))
	assert.Equal(t, []int{30}, l.Query(b))
	assert.Empty(t, l.Query(board.Config{Columns: 9, Capacity: 9}))
	_, ok := l.Best(board.Config{Columns: 9, Capacity: 9})
	assert.False(t, ok)
	assert.Equal(t, []board.Config{a, b}, l.Configs())
	assert.Equal(t, 2, l.Len())
}

func TestTopTruncatesButLedgerDoesNot(t *testing.T) {
	t.Parallel()

	l := New()
	cfg := board.DefaultConfig
	for s := 30; s > 15; s-- {
		l.Record(cfg, s)
	}

	top := l.Top(cfg, DisplayLimit)
	assert.Equal(t, []int{16, 17, 18, 19, 20, 21, 22, 23, 24, 25}, top)
	assert.Len(t, l.Query(cfg), 15)
	assert.Len(t, l.Top(cfg, 100), 15)
}

func TestQueryReturnsCopy(t *testing.T) {
	t.Parallel()

	l := New()
	cfg := board.DefaultConfig
	l.Record(cfg, 3)
	got := l.Query(cfg)
	got[0] = 99
	assert.Equal(t, []int{3}, l.Query(cfg))
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	l := New()
	l.Record(board.Config{Columns: 6, Capacity: 7}, 40)
	l.Record(board.Config{Columns: 6, Capacity: 7}, 25)
	l.Record(board.Config{Columns: 3, Capacity: 2}, 4)

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var out Ledger
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, l.Entries(), out.Entries())
}

func TestFromEntriesNormalizesAndValidates(t *testing.T) {
	t.Parallel()

	l, err := FromEntries([]Entry{{Columns: 4, Capacity: 4, Scores: []int{9, 3, 9, 5}}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 9}, l.Query(board.Config{Columns: 4, Capacity: 4}))

	_, err = FromEntries([]Entry{{Columns: 0, Capacity: 4, Scores: []int{1}}})
	require.ErrorIs(t, err, board.ErrInvalidConfig)

	_, err = FromEntries([]Entry{{Columns: 2, Capacity: 4, Scores: []int{-1}}})
	require.Error(t, err)
}
