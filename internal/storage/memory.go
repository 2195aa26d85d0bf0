package storage

import (
	"maps"
	"slices"
	"sync"
	"time"
)

// Memory is a Backend that lives only as long as the process. It backs
// tests and stands in when the database cannot be opened.
type Memory struct {
	mu          sync.Mutex
	values      map[string]string
	completions []Completion
	now         func() time.Time

	// FailWrites makes Set and Delete fail, to exercise callers' error paths.
	FailWrites error
}

var _ Backend = (*Memory)(nil)

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string), now: time.Now}
}

// Get returns the value stored under key, or ErrNotFound.
func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set overwrites the value stored under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.values[key] = value
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return m.FailWrites
	}
	delete(m.values, key)
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *Memory) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.values))
}

// SaveCompletion appends a completion to the history.
func (m *Memory) SaveCompletion(c Completion) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = int64(len(m.completions) + 1)
	c.CreatedAt = m.now()
	m.completions = append(m.completions, c)
	return c.ID, nil
}

// Completions returns a player's most recent completions, newest first.
func (m *Memory) Completions(player string, limit int) ([]Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}
	var out []Completion
	for i := len(m.completions) - 1; i >= 0 && len(out) < limit; i-- {
		if m.completions[i].Player == player {
			out = append(out, m.completions[i])
		}
	}
	return out, nil
}

// PlayerStats aggregates one player's history.
func (m *Memory) PlayerStats(player string) (*PlayerStats, error) {
	all, _ := m.AllPlayerStats()
	if ps, ok := all[player]; ok {
		return ps, nil
	}
	return &PlayerStats{Player: player}, nil
}

// AllPlayerStats aggregates history for every player.
func (m *Memory) AllPlayerStats() (map[string]*PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := make(map[string]*PlayerStats)
	for _, c := range m.completions {
		ps, ok := stats[c.Player]
		if !ok {
			ps = &PlayerStats{Player: c.Player}
			stats[c.Player] = ps
		}
		ps.Completions++
		ps.HighestLevel = max(ps.HighestLevel, c.Level)
		ps.TotalAttempts += c.Attempts
		ps.TotalHints += c.Hints
		ps.TotalTime += c.Duration
		if c.CreatedAt.After(ps.LastPlayed) {
			ps.LastPlayed = c.CreatedAt
		}
	}
	return stats, nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
