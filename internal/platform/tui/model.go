package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crispy-forty/internal/assistant"
	"github.com/vovakirdan/crispy-forty/internal/core"
	"github.com/vovakirdan/crispy-forty/internal/game"
	"github.com/vovakirdan/crispy-forty/internal/timer"
)

// feedbackTTL is how long the "try again" line stays up.
const feedbackTTL = 1500 * time.Millisecond

type screen int

const (
	screenHome screen = iota
	screenName
	screenLevel
	screenLeaderboard
	screenChat
)

type menuAction int

const (
	menuContinue menuAction = iota
	menuNewGame
	menuName
	menuLeaderboard
	menuChat
	menuQuit
)

type menuItem struct {
	label  string
	action menuAction
}

// Options wires a Model to its session and helpers.
type Options struct {
	Session   *game.Session
	Assistant *assistant.Assistant
	MinDelay  time.Duration
	MaxDelay  time.Duration
	Rand      *rand.Rand
	Logger    *log.Logger
	Width     int
	Height    int
}

// Model is the Bubble Tea model for one player. It owns the player's
// session for the lifetime of the program.
type Model struct {
	session *game.Session
	rng     *rand.Rand
	logger  *log.Logger
	keys    KeyMap
	help    help.Model

	screen screen
	prev   screen
	cursor int

	view        *levelView
	answer      textinput.Model
	nameInput   textinput.Model
	hint        string
	feedback    string
	feedbackSeq int
	armed       timer.Token

	board LeaderboardModel
	chat  ChatModel

	width    int
	height   int
	quitting bool
}

// New creates the model.
func New(opts Options) Model {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	bot := opts.Assistant
	if bot == nil {
		bot = assistant.New(assistant.Corpus{Fallback: "Sorry, help is unavailable."})
	}

	answer := textinput.New()
	answer.Placeholder = "Type your answer"
	answer.CharLimit = 64
	answer.Width = 30

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 24
	name.Width = 24

	h := help.New()
	h.Width = opts.Width

	return Model{
		session:   opts.Session,
		rng:       rng,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      h,
		answer:    answer,
		nameInput: name,
		chat:      NewChatModel(bot, rng, opts.MinDelay, opts.MaxDelay),
		width:     opts.Width,
		height:    opts.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Session returns the session the model drives.
func (m Model) Session() *game.Session {
	return m.session
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.chat, _ = m.chat.Update(msg)
		if m.screen == screenLeaderboard {
			m.board, _ = m.board.Update(msg)
		}
		return m, nil

	case TickMsg:
		if m.session.Tick(msg.Token) {
			return m, tickCmd(msg.Token)
		}
		return m, nil

	case feedbackClearMsg:
		if msg.seq == m.feedbackSeq {
			m.feedback = ""
		}
		return m, nil

	case botReplyMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenHome:
		m, cmd = m.updateHome(msg)
	case screenName:
		m, cmd = m.updateName(msg)
	case screenLevel:
		m, cmd = m.updateLevel(msg)
	case screenLeaderboard:
		m.board, cmd = m.board.Update(msg)
		if m.board.Done() {
			m.screen = m.prev
		}
	case screenChat:
		m, cmd = m.updateChat(msg)
	}

	timerCmd := m.syncTimer()
	return m, tea.Batch(cmd, timerCmd)
}

// syncTimer starts a tick loop for a newly armed countdown. Each loop ends
// by itself once its token goes stale.
func (m *Model) syncTimer() tea.Cmd {
	tok, ok := m.session.TimerToken()
	if !ok || tok == m.armed {
		return nil
	}
	m.armed = tok
	return tickCmd(tok)
}

func (m Model) menuItems() []menuItem {
	var items []menuItem
	s := m.session
	switch {
	case s.GameStarted():
		items = append(items, menuItem{fmt.Sprintf("Continue (level %d)", s.CurrentLevel()), menuContinue})
	default:
		if lvl, ok := s.CanResume(); ok {
			items = append(items, menuItem{fmt.Sprintf("Continue (level %d)", lvl), menuContinue})
		}
	}
	items = append(items, menuItem{"New game", menuNewGame})
	if !s.GameStarted() {
		items = append(items, menuItem{"Change name", menuName})
	}
	return append(items,
		menuItem{"Leaderboard", menuLeaderboard},
		menuItem{"Help chat", menuChat},
		menuItem{"Quit", menuQuit},
	)
}

func (m Model) updateHome(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.menuItems()
	switch m.keys.MapKey(k) {
	case core.ActionUp:
		m.cursor = (m.cursor - 1 + len(items)) % len(items)
	case core.ActionDown:
		m.cursor = (m.cursor + 1) % len(items)
	case core.ActionLeaderboard:
		return m.openLeaderboard()
	case core.ActionChat:
		return m.openChat()
	case core.ActionConfirm, core.ActionMark:
		return m.selectMenu(items[min(m.cursor, len(items)-1)].action)
	}
	return m, nil
}

func (m Model) selectMenu(a menuAction) (Model, tea.Cmd) {
	s := m.session
	m.cursor = 0
	switch a {
	case menuContinue:
		if s.GameStarted() {
			if s.Paused() {
				s.TogglePause()
			}
			m.screen = screenLevel
			if m.view == nil {
				cmd := m.enterLevel()
				return m, cmd
			}
			cmd := m.answer.Focus()
			return m, cmd
		}
		s.Start()
		cmd := m.enterLevel()
		return m, cmd

	case menuNewGame:
		if _, resumable := s.CanResume(); s.GameStarted() || resumable {
			s.ResetGame()
		}
		s.Start()
		cmd := m.enterLevel()
		return m, cmd

	case menuName:
		m.nameInput.SetValue(s.Player())
		m.screen = screenName
		cmd := m.nameInput.Focus()
		return m, cmd

	case menuLeaderboard:
		return m.openLeaderboard()

	case menuChat:
		return m.openChat()

	case menuQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateName(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			if name := strings.TrimSpace(m.nameInput.Value()); name != "" {
				m.session.SetPlayer(name)
			}
			m.nameInput.Blur()
			m.screen = screenHome
			return m, nil
		case tea.KeyEsc:
			m.nameInput.Blur()
			m.screen = screenHome
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// enterLevel builds a fresh view for the session's current level.
func (m *Model) enterLevel() tea.Cmd {
	m.screen = screenLevel
	m.view = newLevelView(m.session.Level(), m.rng)
	m.logger.Debug("level shown", "level", m.view.level.ID, "kind", m.view.level.Kind())
	m.answer.Reset()
	m.hint = ""
	m.feedback = ""
	if m.view.level.TextAnswer() {
		return m.answer.Focus()
	}
	m.answer.Blur()
	return nil
}

func (m Model) updateLevel(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.answer, cmd = m.answer.Update(msg)
		return m, cmd
	}

	s := m.session
	a := m.keys.MapKey(k)

	// Available in every level state
	switch a {
	case core.ActionLeaderboard:
		return m.openLeaderboard()
	case core.ActionChat:
		return m.openChat()
	}

	switch s.State() {
	case game.StatePaused:
		switch a {
		case core.ActionPause:
			s.TogglePause()
		case core.ActionBack:
			m.screen = screenHome
		}
		return m, nil

	case game.StateLevelSuccess:
		switch a {
		case core.ActionConfirm:
			s.ResetSuccess()
			cmd := m.enterLevel()
			return m, cmd
		case core.ActionBack:
			m.screen = screenHome
		}
		return m, nil

	case game.StatePlaying:
		return m.updatePlaying(k, a)
	}
	return m, nil
}

func (m Model) updatePlaying(k tea.KeyMsg, a core.Action) (Model, tea.Cmd) {
	s := m.session

	switch a {
	case core.ActionPause:
		s.TogglePause()
		return m, nil
	case core.ActionBack:
		s.TogglePause()
		m.screen = screenHome
		return m, nil
	case core.ActionHint:
		if text, ok := s.UseHint(); ok {
			m.hint = text
		}
		return m, nil
	case core.ActionRestartTimer:
		s.RestartTimer()
		return m, nil
	case core.ActionShuffle:
		m.view.handle(a)
		return m, nil
	}

	if !m.view.level.TextAnswer() {
		if m.view.handle(a) {
			s.CompleteLevel()
		}
		return m, nil
	}

	if a == core.ActionConfirm {
		switch s.Submit(m.answer.Value()) {
		case game.Correct:
			m.answer.Reset()
			m.feedback = ""
		case game.Incorrect:
			m.feedbackSeq++
			m.feedback = "Incorrect, try again!"
			return m, clearFeedbackCmd(m.feedbackSeq, feedbackTTL)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(k)
	return m, cmd
}

func (m Model) openLeaderboard() (Model, tea.Cmd) {
	m.prev = m.screen
	m.board = NewLeaderboardModel(m.session.Board(), m.session.Player(), m.width, m.height)
	m.screen = screenLeaderboard
	return m, nil
}

func (m Model) openChat() (Model, tea.Cmd) {
	m.prev = m.screen
	m.screen = screenChat
	cmd := m.chat.Open()
	return m, cmd
}

func (m Model) updateChat(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
		m.chat.Close()
		m.screen = m.prev
		return m, nil
	}
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenName:
		return m.viewName()
	case screenLevel:
		return m.viewLevel()
	case screenLeaderboard:
		return m.board.View()
	case screenChat:
		return m.chat.View()
	default:
		return m.viewHome()
	}
}

func (m Model) viewHome() string {
	s := m.session
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerBlock(titleStyle.Render("C R I S P Y   F O R T Y"), m.width))
	b.WriteString("\n")
	b.WriteString(centerBlock(subtitleStyle.Render(fmt.Sprintf("%d puzzles • playing as %s", s.Catalog().Total(), s.Player())), m.width))
	b.WriteString("\n\n")

	items := m.menuItems()
	var menu strings.Builder
	for i, item := range items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == min(m.cursor, len(items)-1) {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		menu.WriteString(style.Render(cursor + item.label))
		menu.WriteString("\n")
	}
	b.WriteString(centerBlock(strings.TrimRight(menu.String(), "\n"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(helpStyle.Render("↑/↓ navigate • enter select • ctrl+l leaderboard • ctrl+g help chat • ctrl+c quit"), m.width))
	return b.String()
}

func (m Model) viewName() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		centerBlock(titleStyle.Render("What should we call you?"), m.width),
		"",
		centerBlock(panelStyle.Render(m.nameInput.View()), m.width),
		"",
		centerBlock(helpStyle.Render("enter save • esc cancel"), m.width),
	)
}

func (m Model) viewLevel() string {
	s := m.session
	lvl := m.view.level
	st := s.Stats()

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(fmt.Sprintf("Level %d/%d • %s", lvl.ID, st.Total, lvl.Title)),
		"   ",
		subtitleStyle.Render(fmt.Sprintf("hints %d/%d", s.HintsLeft(), s.HintsAvailable())),
		"   ",
		m.timerView(),
	)

	rows := []string{"", centerBlock(header, m.width), centerBlock(progressBar(st, 30), m.width), ""}

	switch s.State() {
	case game.StatePaused:
		rows = append(rows,
			centerBlock(panelStyle.Padding(1, 6).Render(accentStyle.Render("PAUSED")+"\n\n"+subtitleStyle.Render("ctrl+p resume • esc menu")), m.width))

	case game.StateLevelSuccess:
		rows = append(rows, centerBlock(m.successView(), m.width))

	default:
		rows = append(rows,
			centerBlock(subtitleStyle.Render(lvl.Instructions), m.width),
			"",
			centerBlock(m.view.render(), m.width),
			"",
		)
		if lvl.TextAnswer() {
			rows = append(rows, centerBlock(m.answer.View(), m.width))
		}
		if m.feedback != "" {
			rows = append(rows, centerBlock(badStyle.Render(m.feedback), m.width))
		}
		if m.hint != "" {
			rows = append(rows, centerBlock(accentStyle.Render("Hint: ")+m.hint, m.width))
		}
	}

	rows = append(rows, "", centerBlock(helpStyle.Render(m.help.View(m.levelHelp())), m.width))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) successView() string {
	s := m.session
	lvl := s.CurrentLevel()
	ls := s.LevelStats(lvl)

	lines := []string{
		goodStyle.Render(fmt.Sprintf("Level %d complete!", lvl)),
		"",
		subtitleStyle.Render(fmt.Sprintf("attempts %d • hints %d • time %s", ls.Attempts, ls.HintsUsed, ls.TimeSpent.Round(time.Second))),
	}
	if s.Finished() {
		lines = append(lines, "", accentStyle.Render(fmt.Sprintf("You've completed all %d levels!", s.Catalog().Total())))
	}
	lines = append(lines, "", subtitleStyle.Render("enter next level • ctrl+l leaderboard • esc menu"))
	return panelStyle.Padding(1, 4).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m Model) timerView() string {
	s := m.session
	if !m.view.level.Timed {
		return ""
	}
	if s.TimeUp() {
		return badStyle.Render("time's up! ctrl+r restarts the timer")
	}
	style := subtitleStyle
	if s.Remaining() <= 10 {
		style = badStyle
	}
	return style.Render(fmt.Sprintf("⏱ %ds", s.Remaining()))
}

func (m Model) levelHelp() levelHelp {
	k := m.keys
	var bindings []key.Binding
	switch {
	case m.session.State() != game.StatePlaying:
		bindings = []key.Binding{k.Pause, k.Leaderboard, k.Back}
	case m.view.maze != nil:
		bindings = []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Hint, k.Pause, k.Chat}
	case m.view.finder != nil:
		bindings = []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Mark, k.Hint, k.Pause}
	case m.view.scramble != nil:
		bindings = []key.Binding{k.Confirm, k.Shuffle, k.Hint, k.Pause, k.Chat}
	default:
		bindings = []key.Binding{k.Confirm, k.Hint, k.Pause, k.Chat, k.Back}
	}
	if m.view.level.Timed && m.session.TimeUp() {
		bindings = append(bindings, k.RestartTimer)
	}
	return levelHelp{keys: k, bindings: bindings}
}

func progressBar(st game.GameStats, width int) string {
	filled := 0
	if st.Total > 0 {
		filled = st.Completed * width / st.Total
	}
	bar := goodStyle.Render(strings.Repeat("█", filled)) + subtitleStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d%%", bar, st.Percent)
}

// Run starts the Bubble Tea program for a local player.
func Run(opts Options) error {
	p := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	_, err := p.Run()
	return err
}
