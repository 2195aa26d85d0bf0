// Package persist mirrors game records into storage slots as JSON. Nothing
// here returns an error to the caller: unreadable records load as absent
// and failed writes are logged, so a broken store only costs durability.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crispy-forty/internal/leaderboard"
	"github.com/vovakirdan/crispy-forty/internal/storage"
)

// DefaultPlayer is the name used when no player name has been stored.
const DefaultPlayer = "Player"

// Keys names the storage slots.
type Keys struct {
	Progress    string
	Leaderboard string
	Player      string
}

// DefaultKeys returns the slot names the game has always used.
func DefaultKeys() Keys {
	return Keys{
		Progress:    "crispyFortyGameState",
		Leaderboard: "crispyFortyLeaderboard",
		Player:      "playerName",
	}
}

// Progress is the persisted subset of a session.
type Progress struct {
	CurrentLevel  int   `json:"currentLevel"`
	LevelProgress []int `json:"levelProgress"`
	HintsUsed     int   `json:"hintsUsed"`
	GameStarted   bool  `json:"gameStarted"`
}

// Limits bounds what a loaded Progress may contain.
type Limits struct {
	Levels int
	Hints  int
}

// Adapter reads and writes the game's records.
type Adapter struct {
	kv            storage.KV
	keys          Keys
	defaultPlayer string
	logger        *log.Logger
}

// New creates an adapter over kv. A nil logger discards.
func New(kv storage.KV, keys Keys, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Adapter{kv: kv, keys: keys, defaultPlayer: DefaultPlayer, logger: logger}
}

// WithDefaultPlayer returns a copy that falls back to name instead of
// DefaultPlayer. A blank name is ignored.
func (a *Adapter) WithDefaultPlayer(name string) *Adapter {
	c := *a
	if strings.TrimSpace(name) != "" {
		c.defaultPlayer = name
	}
	return &c
}

// Namespace returns an adapter whose progress and player slots are
// prefixed. The leaderboard slot stays shared.
func (a *Adapter) Namespace(prefix string) *Adapter {
	c := *a
	c.keys.Progress = prefix + ":" + a.keys.Progress
	c.keys.Player = prefix + ":" + a.keys.Player
	c.logger = a.logger.With("ns", prefix)
	return &c
}

// Keys returns the slot names in use.
func (a *Adapter) Keys() Keys {
	return a.keys
}

// SaveProgress overwrites the progress record.
func (a *Adapter) SaveProgress(p Progress) {
	if p.LevelProgress == nil {
		p.LevelProgress = []int{}
	}
	a.write(a.keys.Progress, p)
}

// LoadProgress returns the stored progress. ok is false when the record is
// missing, unparseable, describes a game that was never started, or breaks
// lim. Duplicate completed levels are collapsed.
func (a *Adapter) LoadProgress(lim Limits) (p Progress, ok bool) {
	if !a.read(a.keys.Progress, &p) {
		return Progress{}, false
	}
	if !p.GameStarted {
		return Progress{}, false
	}
	if err := p.check(lim); err != nil {
		a.logger.Warn("discarding invalid progress", "key", a.keys.Progress, "err", err)
		return Progress{}, false
	}
	p.LevelProgress = dedupe(p.LevelProgress)
	return p, true
}

func (p Progress) check(lim Limits) error {
	if p.CurrentLevel < 1 || p.CurrentLevel > lim.Levels {
		return fmt.Errorf("current level %d outside 1..%d", p.CurrentLevel, lim.Levels)
	}
	if p.HintsUsed < 0 || p.HintsUsed > lim.Hints {
		return fmt.Errorf("hints used %d outside 0..%d", p.HintsUsed, lim.Hints)
	}
	for _, id := range p.LevelProgress {
		if id < 1 || id > lim.Levels {
			return fmt.Errorf("completed level %d outside 1..%d", id, lim.Levels)
		}
	}
	return nil
}

func dedupe(ids []int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// ClearProgress deletes the progress record.
func (a *Adapter) ClearProgress() {
	if err := a.kv.Delete(a.keys.Progress); err != nil {
		a.logger.Error("progress not cleared", "key", a.keys.Progress, "err", err)
	}
}

// SaveLeaderboard overwrites the leaderboard record.
func (a *Adapter) SaveLeaderboard(rows []leaderboard.Entry) {
	if rows == nil {
		rows = []leaderboard.Entry{}
	}
	a.write(a.keys.Leaderboard, rows)
}

// LoadLeaderboard returns the stored rows, or nil when absent or unreadable.
func (a *Adapter) LoadLeaderboard() []leaderboard.Entry {
	var rows []leaderboard.Entry
	if !a.read(a.keys.Leaderboard, &rows) {
		return nil
	}
	return rows
}

// ClearLeaderboard deletes the leaderboard record.
func (a *Adapter) ClearLeaderboard() {
	if err := a.kv.Delete(a.keys.Leaderboard); err != nil {
		a.logger.Error("leaderboard not cleared", "key", a.keys.Leaderboard, "err", err)
	}
}

// PlayerName returns the stored player name, or the default when it is
// missing or blank.
func (a *Adapter) PlayerName() string {
	v, err := a.kv.Get(a.keys.Player)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.logger.Warn("cannot read player name", "key", a.keys.Player, "err", err)
		}
		return a.defaultPlayer
	}
	if strings.TrimSpace(v) == "" {
		return a.defaultPlayer
	}
	return v
}

// SetPlayerName stores name as a bare string.
func (a *Adapter) SetPlayerName(name string) {
	if err := a.kv.Set(a.keys.Player, name); err != nil {
		a.logger.Error("player name not saved", "key", a.keys.Player, "err", err)
	}
}

func (a *Adapter) write(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		a.logger.Error("cannot encode record", "key", key, "err", err)
		return
	}
	if err := a.kv.Set(key, string(data)); err != nil {
		a.logger.Error("record not saved", "key", key, "err", err)
	}
}

func (a *Adapter) read(key string, v any) bool {
	raw, err := a.kv.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return false
	}
	if err != nil {
		a.logger.Warn("cannot read record", "key", key, "err", err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		a.logger.Warn("discarding unreadable record", "key", key, "err", err)
		return false
	}
	return true
}
