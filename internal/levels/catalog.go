package levels

import (
	"errors"
	"fmt"
	"sort"
)

// Catalog is an ordered, dense, 1-based sequence of levels.
// It is immutable once built.
type Catalog struct {
	levels []Level
}

// New validates the levels and builds a catalog. Levels may be given in any
// order but their IDs must form the sequence 1..n without gaps or repeats.
func New(lvls []Level) (*Catalog, error) {
	if len(lvls) == 0 {
		return nil, errors.New("levels: catalog is empty")
	}

	sorted := make([]Level, len(lvls))
	copy(sorted, lvls)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	for i := range sorted {
		lvl := &sorted[i]
		if lvl.ID != i+1 {
			return nil, fmt.Errorf("levels: expected level %d, found %d (ids must be dense and start at 1)", i+1, lvl.ID)
		}
		if err := lvl.validate(); err != nil {
			return nil, fmt.Errorf("levels: level %d: %w", lvl.ID, err)
		}
	}

	return &Catalog{levels: sorted}, nil
}

// Total returns the number of levels.
func (c *Catalog) Total() int {
	return len(c.levels)
}

// Get returns the level with the given 1-based ID, or nil if out of range.
func (c *Catalog) Get(id int) *Level {
	if id < 1 || id > len(c.levels) {
		return nil
	}
	return &c.levels[id-1]
}

// Valid reports whether id names a catalog level.
func (c *Catalog) Valid(id int) bool {
	return id >= 1 && id <= len(c.levels)
}

// Levels returns all levels in order. The slice must not be modified.
func (c *Catalog) Levels() []Level {
	return c.levels
}

// KindCounts returns how many levels use each kind.
func (c *Catalog) KindCounts() map[Kind]int {
	counts := make(map[Kind]int)
	for i := range c.levels {
		counts[c.levels[i].Kind()]++
	}
	return counts
}
