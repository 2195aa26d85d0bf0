// Package game owns the level progression of one player session: which
// level is current, which are completed, hints, pause and the countdown.
// Every transition is a no-op when its precondition does not hold.
package game

import (
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/crispy-forty/internal/leaderboard"
	"github.com/vovakirdan/crispy-forty/internal/levels"
	"github.com/vovakirdan/crispy-forty/internal/persist"
	"github.com/vovakirdan/crispy-forty/internal/storage"
	"github.com/vovakirdan/crispy-forty/internal/timer"
)

// DefaultHints is the number of hints a game allows.
const DefaultHints = 3

// Options configures a Session.
type Options struct {
	Catalog *levels.Catalog
	Board   *leaderboard.Board
	Store   *persist.Adapter

	// History, when set, receives one record per first-time completion.
	History storage.History

	// Player overrides the stored player name.
	Player string

	// HintsAvailable defaults to DefaultHints.
	HintsAvailable int

	Logger *log.Logger
	Now    func() time.Time
}

// Session is the progression state machine. It is not safe for concurrent
// use; each front end owns one.
type Session struct {
	catalog *levels.Catalog
	board   *leaderboard.Board
	store   *persist.Adapter
	history storage.History
	logger  *log.Logger
	now     func() time.Time

	player         string
	runID          string
	hintsAvailable int

	state     State
	started   bool
	current   int
	completed []int
	hintsUsed int
	countdown timer.Countdown
	liveToken timer.Token

	resume *persist.Progress

	stats      map[int]*LevelStats
	levelSince time.Time
}

// New creates a session. A started game found in the store is held for
// Start to resume; until then the session is at its defaults.
func New(opts Options) *Session {
	s := &Session{
		catalog:        opts.Catalog,
		board:          opts.Board,
		store:          opts.Store,
		history:        opts.History,
		logger:         opts.Logger,
		now:            opts.Now,
		hintsAvailable: opts.HintsAvailable,
	}
	if s.board == nil {
		s.board = leaderboard.New(nil)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.hintsAvailable <= 0 {
		s.hintsAvailable = DefaultHints
	}

	s.player = opts.Player
	if s.player == "" && s.store != nil {
		s.player = s.store.PlayerName()
	}
	if s.player == "" {
		s.player = persist.DefaultPlayer
	}

	s.defaults()

	if s.store != nil {
		if p, ok := s.store.LoadProgress(persist.Limits{Levels: s.catalog.Total(), Hints: s.hintsAvailable}); ok {
			s.resume = &p
		}
	}
	return s
}

func (s *Session) defaults() {
	s.state = StateNotStarted
	s.started = false
	s.current = 1
	s.completed = nil
	s.hintsUsed = 0
	s.countdown.Stop()
	s.stats = make(map[int]*LevelStats)
	s.runID = uuid.NewString()
}

// Start begins a game at level 1, or resumes a stored game at its level.
// It makes sure the player has a leaderboard row.
func (s *Session) Start() {
	if s.state != StateNotStarted {
		return
	}

	s.started = true
	level := 1
	if s.resume != nil {
		level = s.resume.CurrentLevel
		s.completed = slices.Clone(s.resume.LevelProgress)
		s.hintsUsed = s.resume.HintsUsed
		s.resume = nil
	}

	if s.board.RecordStart(s.player) {
		s.saveLeaderboard()
	}
	s.enter(level)
	s.save()
	s.logger.Info("game started", "player", s.player, "level", level, "run", s.runID)
}

// CompleteLevel marks the current level solved. Only valid while playing.
func (s *Session) CompleteLevel() {
	if s.state != StatePlaying {
		return
	}

	level := s.current
	s.countdown.Stop()
	st := s.levelStats(level)
	st.TimeSpent += s.now().Sub(s.levelSince)

	first := !slices.Contains(s.completed, level)
	if first {
		s.completed = append(s.completed, level)
	}
	if s.board.RecordCompletion(s.player, level, s.now()) {
		s.saveLeaderboard()
	}
	s.state = StateLevelSuccess
	s.save()

	if first {
		s.recordHistory(level, st)
	}
	s.logger.Info("level completed", "player", s.player, "level", level, "attempts", st.Attempts, "first", first)
}

// ResetSuccess leaves the success screen for the next level. The last
// level has no successor, so it is played again.
func (s *Session) ResetSuccess() {
	if s.state != StateLevelSuccess {
		return
	}
	s.enter(min(s.current+1, s.catalog.Total()))
	s.save()
}

// TogglePause switches between playing and paused. The countdown freezes
// while paused and picks up where it left off.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.levelStats(s.current).TimeSpent += s.now().Sub(s.levelSince)
		s.countdown.Freeze(true)
		s.state = StatePaused
	case StatePaused:
		s.levelSince = s.now()
		s.countdown.Freeze(false)
		s.state = StatePlaying
	}
}

// UseHint spends a hint on the current level and returns its text.
func (s *Session) UseHint() (string, bool) {
	if s.state != StatePlaying || s.hintsUsed >= s.hintsAvailable {
		return "", false
	}
	s.hintsUsed++
	s.levelStats(s.current).HintsUsed++
	s.save()
	return s.Level().Hint, true
}

// ResetGame returns to the defaults and forgets the stored progress.
// The leaderboard is kept.
func (s *Session) ResetGame() {
	s.defaults()
	s.resume = nil
	if s.store != nil {
		s.store.ClearProgress()
	}
	s.logger.Info("game reset", "player", s.player)
}

// Submit checks a typed answer against the current level. Matching answers
// complete the level.
func (s *Session) Submit(answer string) Outcome {
	if s.state != StatePlaying {
		return Ignored
	}
	lvl := s.Level()
	if !lvl.TextAnswer() {
		return Ignored
	}

	s.levelStats(s.current).Attempts++
	if !lvl.CheckAnswer(levels.NormalizeAnswer(answer)) {
		return Incorrect
	}
	s.CompleteLevel()
	return Correct
}

// Tick forwards a one-second tick. It reports whether tok is still live
// and another tick should be scheduled.
func (s *Session) Tick(tok timer.Token) bool {
	return s.countdown.Tick(tok)
}

// TimerToken returns the live countdown token, if a countdown is armed.
func (s *Session) TimerToken() (timer.Token, bool) {
	return s.liveToken, s.countdown.Live(s.liveToken)
}

// RestartTimer re-arms the countdown of the current timed level.
func (s *Session) RestartTimer() {
	if s.state != StatePlaying || !s.Level().Timed {
		return
	}
	s.liveToken = s.countdown.Start(s.Level().TimeLimit)
}

// TimeUp reports whether the current timed level's countdown reached zero.
func (s *Session) TimeUp() bool {
	if (s.state != StatePlaying && s.state != StatePaused) || !s.Level().Timed {
		return false
	}
	return s.countdown.Expired()
}

// Remaining returns the seconds left on the countdown.
func (s *Session) Remaining() int {
	return s.countdown.Remaining()
}

func (s *Session) enter(level int) {
	s.current = level
	s.state = StatePlaying
	s.levelSince = s.now()

	lvl := s.Level()
	if lvl.Timed {
		s.liveToken = s.countdown.Start(lvl.TimeLimit)
	} else {
		s.countdown.Stop()
	}
}

func (s *Session) levelStats(level int) *LevelStats {
	st, ok := s.stats[level]
	if !ok {
		st = &LevelStats{}
		s.stats[level] = st
	}
	return st
}

func (s *Session) save() {
	if s.store == nil {
		return
	}
	s.store.SaveProgress(persist.Progress{
		CurrentLevel:  s.current,
		LevelProgress: slices.Clone(s.completed),
		HintsUsed:     s.hintsUsed,
		GameStarted:   s.started,
	})
}

func (s *Session) saveLeaderboard() {
	if s.store == nil {
		return
	}
	s.board.Save(s.store.SaveLeaderboard)
}

func (s *Session) recordHistory(level int, st *LevelStats) {
	if s.history == nil {
		return
	}
	_, err := s.history.SaveCompletion(storage.Completion{
		RunID:    s.runID,
		Player:   s.player,
		Level:    level,
		Attempts: st.Attempts,
		Hints:    st.HintsUsed,
		Duration: st.TimeSpent,
	})
	if err != nil {
		s.logger.Error("completion not recorded", "level", level, "err", err)
	}
}

// SetPlayer changes the player name before a game starts and stores it.
func (s *Session) SetPlayer(name string) bool {
	if s.state != StateNotStarted || name == "" {
		return false
	}
	s.player = name
	if s.store != nil {
		s.store.SetPlayerName(name)
	}
	return true
}

// Player returns the player name.
func (s *Session) Player() string { return s.player }

// RunID identifies this playthrough in the completion history.
func (s *Session) RunID() string { return s.runID }

// State returns the progression state.
func (s *Session) State() State { return s.state }

// GameStarted reports whether a game is in progress.
func (s *Session) GameStarted() bool { return s.started }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.state == StatePaused }

// CurrentLevel returns the current level id.
func (s *Session) CurrentLevel() int { return s.current }

// Level returns the current level definition.
func (s *Session) Level() *levels.Level { return s.catalog.Get(s.current) }

// Catalog returns the level catalog.
func (s *Session) Catalog() *levels.Catalog { return s.catalog }

// Board returns the leaderboard.
func (s *Session) Board() *leaderboard.Board { return s.board }

// Completed returns the completed level ids in completion order.
func (s *Session) Completed() []int { return slices.Clone(s.completed) }

// IsCompleted reports whether level has been completed.
func (s *Session) IsCompleted(level int) bool { return slices.Contains(s.completed, level) }

// HintsUsed returns the hints spent this game.
func (s *Session) HintsUsed() int { return s.hintsUsed }

// HintsAvailable returns the hint allowance.
func (s *Session) HintsAvailable() int { return s.hintsAvailable }

// HintsLeft returns how many hints remain.
func (s *Session) HintsLeft() int { return s.hintsAvailable - s.hintsUsed }

// CanResume reports whether Start will resume a stored game, and at which level.
func (s *Session) CanResume() (int, bool) {
	if s.resume == nil {
		return 0, false
	}
	return s.resume.CurrentLevel, true
}

// Finished reports whether every level has been completed.
func (s *Session) Finished() bool {
	return len(s.completed) == s.catalog.Total()
}

// LevelStats returns the effort recorded for level this session.
func (s *Session) LevelStats(level int) LevelStats {
	if st, ok := s.stats[level]; ok {
		return *st
	}
	return LevelStats{}
}

// Stats summarises the session.
func (s *Session) Stats() GameStats {
	var elapsed time.Duration
	for _, st := range s.stats {
		elapsed += st.TimeSpent
	}
	if s.state == StatePlaying {
		elapsed += s.now().Sub(s.levelSince)
	}

	total := s.catalog.Total()
	return GameStats{
		Completed:      len(s.completed),
		Total:          total,
		Current:        s.current,
		HintsUsed:      s.hintsUsed,
		HintsAvailable: s.hintsAvailable,
		Elapsed:        elapsed,
		Percent:        int(math.Round(float64(len(s.completed)) / float64(total) * 100)),
	}
}
