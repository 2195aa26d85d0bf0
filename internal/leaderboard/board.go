// Package leaderboard keeps one row per player with the highest level they
// have reached. Rows stay in the order players first appeared.
package leaderboard

import (
	"slices"
	"strings"
	"sync"
	"time"
)

// Entry is one player's row. Time is the epoch milliseconds of the last
// improvement, 0 for a player who has started but not yet completed a level.
type Entry struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Time  int64  `json:"time"`
}

// UpdatedAt returns Time as a time.Time, or the zero time for a fresh row.
func (e Entry) UpdatedAt() time.Time {
	if e.Time == 0 {
		return time.Time{}
	}
	return time.UnixMilli(e.Time)
}

// Board is safe for concurrent use.
type Board struct {
	mu      sync.RWMutex
	entries []Entry
}

// New creates a board from previously saved rows. Rows with an empty name
// or a level below 1 are dropped, and later duplicates of a name are merged
// into the first row keeping the higher level.
func New(rows []Entry) *Board {
	b := &Board{}
	for _, r := range rows {
		if strings.TrimSpace(r.Name) == "" || r.Level < 1 {
			continue
		}
		if i := b.index(r.Name); i >= 0 {
			if r.Level > b.entries[i].Level {
				b.entries[i].Level = r.Level
				b.entries[i].Time = r.Time
			}
			continue
		}
		b.entries = append(b.entries, r)
	}
	return b
}

func (b *Board) index(name string) int {
	return slices.IndexFunc(b.entries, func(e Entry) bool { return e.Name == name })
}

// RecordStart appends {name, 1, 0} unless name already has a row.
// It reports whether a row was added.
func (b *Board) RecordStart(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.index(name) >= 0 {
		return false
	}
	b.entries = append(b.entries, Entry{Name: name, Level: 1})
	return true
}

// RecordCompletion raises name's level to completed+1 and stamps now, if
// that is an improvement. Unknown names are ignored. It reports whether the
// row changed.
func (b *Board) RecordCompletion(name string, completed int, now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.index(name)
	if i < 0 {
		return false
	}
	if b.entries[i].Level >= completed+1 {
		return false
	}
	b.entries[i].Level = completed + 1
	b.entries[i].Time = now.UnixMilli()
	return true
}

// Get returns name's row.
func (b *Board) Get(name string) (Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i := b.index(name); i >= 0 {
		return b.entries[i], true
	}
	return Entry{}, false
}

// Entries returns a copy of the rows in insertion order.
func (b *Board) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.entries)
}

// Save passes a copy of the rows to write while holding the board lock.
// Concurrent savers therefore persist snapshots in the order the board
// changed, and the last write always holds every row.
func (b *Board) Save(write func([]Entry)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	write(slices.Clone(b.entries))
}

// Len returns the number of rows.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Ranked returns a copy sorted by level descending, then by who got there
// first. Rows with no completion yet sort after timed rows of equal level.
func (b *Board) Ranked() []Entry {
	out := b.Entries()
	slices.SortStableFunc(out, func(x, y Entry) int {
		if x.Level != y.Level {
			return y.Level - x.Level
		}
		switch {
		case x.Time == y.Time:
			return 0
		case x.Time == 0:
			return 1
		case y.Time == 0:
			return -1
		case x.Time < y.Time:
			return -1
		default:
			return 1
		}
	})
	return out
}
