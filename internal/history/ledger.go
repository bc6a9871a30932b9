// Package history keeps the winning move counts per board configuration.
package history

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/jask/boule/internal/board"
)

// DisplayLimit is how many scores the UI shows per configuration.
const DisplayLimit = 10

// Ledger maps a configuration to the ascending set of move counts achieved
// in past wins. It only grows.
type Ledger struct {
	scores map[board.Config][]int
}

func New() *Ledger {
	return &Ledger{scores: make(map[board.Config][]int)}
}

// Record inserts score for cfg. It reports false when the score was already
// present or is negative.
func (l *Ledger) Record(cfg board.Config, score int) bool {
	if score < 0 {
		return false
	}
	if l.scores == nil {
		l.scores = make(map[board.Config][]int)
	}
	set := l.scores[cfg]
	i, found := slices.BinarySearch(set, score)
	if found {
		return false
	}
	l.scores[cfg] = slices.Insert(set, i, score)
	return true
}

// Query returns every recorded score for cfg, lowest first.
func (l *Ledger) Query(cfg board.Config) []int {
	return slices.Clone(l.scores[cfg])
}

// Top returns at most n of the lowest scores for cfg.
func (l *Ledger) Top(cfg board.Config, n int) []int {
	set := l.scores[cfg]
	if n >= 0 && len(set) > n {
		set = set[:n]
	}
	return slices.Clone(set)
}

// Best returns the lowest score for cfg.
func (l *Ledger) Best(cfg board.Config) (int, bool) {
	set := l.scores[cfg]
	if len(set) == 0 {
		return 0, false
	}
	return set[0], true
}

// Configs lists every configuration with at least one score, ordered by
// columns then capacity.
func (l *Ledger) Configs() []board.Config {
	out := make([]board.Config, 0, len(l.scores))
	for cfg, set := range l.scores {
		if len(set) > 0 {
			out = append(out, cfg)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Columns != out[j].Columns {
			return out[i].Columns < out[j].Columns
		}
		return out[i].Capacity < out[j].Capacity
	})
	return out
}

// Clone returns an independent copy.
func (l *Ledger) Clone() *Ledger {
	out := New()
	for cfg, set := range l.scores {
		if len(set) > 0 {
			out.scores[cfg] = slices.Clone(set)
		}
	}
	return out
}

// Len counts recorded scores across all configurations.
func (l *Ledger) Len() int {
	n := 0
	for _, set := range l.scores {
		n += len(set)
	}
	return n
}

// Entry is the storage form of one configuration's scores.
type Entry struct {
	Columns  int   `json:"columns"`
	Capacity int   `json:"capacity"`
	Scores   []int `json:"scores"`
}

// Entries flattens the ledger in Configs order.
func (l *Ledger) Entries() []Entry {
	cfgs := l.Configs()
	out := make([]Entry, 0, len(cfgs))
	for _, cfg := range cfgs {
		out = append(out, Entry{Columns: cfg.Columns, Capacity: cfg.Capacity, Scores: l.Query(cfg)})
	}
	return out
}

// FromEntries rebuilds a ledger. Scores are deduplicated and sorted; negative
// scores and invalid configurations are rejected.
func FromEntries(entries []Entry) (*Ledger, error) {
	l := New()
	for _, e := range entries {
		cfg := board.Config{Columns: e.Columns, Capacity: e.Capacity}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("ledger entry: %w", err)
		}
		for _, s := range e.Scores {
			if s < 0 {
				return nil, fmt.Errorf("ledger entry %s: negative score %d", cfg, s)
			}
			l.Record(cfg, s)
		}
	}
	return l, nil
}

func (l *Ledger) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Entries())
}

func (l *Ledger) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	out, err := FromEntries(entries)
	if err != nil {
		return err
	}
	*l = *out
	return nil
}
