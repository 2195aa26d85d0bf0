package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crispy-forty/internal/leaderboard"
)

// LeaderboardKeyMap defines the key bindings for the leaderboard screen.
type LeaderboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Ranked key.Binding
	Back   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LeaderboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Ranked, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k LeaderboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Ranked, k.Back}}
}

// DefaultLeaderboardKeyMap returns default key bindings.
func DefaultLeaderboardKeyMap() LeaderboardKeyMap {
	return LeaderboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Ranked: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle ranking"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "q"),
			key.WithHelp("esc", "back"),
		),
	}
}

// LeaderboardModel shows the leaderboard in a table. Rows are shown in the
// order players first appeared unless ranking is switched on.
type LeaderboardModel struct {
	board  *leaderboard.Board
	player string
	ranked bool
	table  table.Model
	keys   LeaderboardKeyMap
	width  int
	height int
	done   bool
}

// NewLeaderboardModel creates a leaderboard screen. player is highlighted.
func NewLeaderboardModel(board *leaderboard.Board, player string, width, height int) LeaderboardModel {
	m := LeaderboardModel{
		board:  board,
		player: player,
		keys:   DefaultLeaderboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.refresh()
	return m
}

func (m *LeaderboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 20},
		{Title: "Level", Width: 6},
		{Title: "Updated", Width: 16},
	}

	height := m.height - 10
	if height < 5 {
		height = 5
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Rows returns the table rows for the current ordering.
func (m LeaderboardModel) Rows() []table.Row {
	return LeaderboardRows(m.entries(), m.player)
}

func (m LeaderboardModel) entries() []leaderboard.Entry {
	if m.ranked {
		return m.board.Ranked()
	}
	return m.board.Entries()
}

// LeaderboardRows formats entries as table rows, marking the current player.
func LeaderboardRows(entries []leaderboard.Entry, player string) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		name := e.Name
		if e.Name == player {
			name = "▸ " + name
		}
		updated := "-"
		if t := e.UpdatedAt(); !t.IsZero() {
			updated = t.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{strconv.Itoa(i + 1), name, strconv.Itoa(e.Level), updated}
	}
	return rows
}

func (m *LeaderboardModel) refresh() {
	m.table.SetRows(m.Rows())
	m.table.GotoTop()
}

// Init initializes the leaderboard model.
func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard.
func (m LeaderboardModel) Update(msg tea.Msg) (LeaderboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.done = true
			return m, nil
		case key.Matches(msg, m.keys.Ranked):
			m.ranked = !m.ranked
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.refresh()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Done reports whether the player left the screen.
func (m LeaderboardModel) Done() bool {
	return m.done
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	title := "LEADERBOARD"
	if m.ranked {
		title += " (ranked)"
	}

	var body string
	if m.board.Len() == 0 {
		body = subtitleStyle.Italic(true).Padding(1, 4).Render("No players yet.\nStart a game to get on the board!")
	} else {
		body = m.table.View()
	}

	h := helpStyle.Render(fmt.Sprintf("%s • %s • %s",
		m.keys.Up.Help().Key+"/"+m.keys.Down.Help().Key+" scroll",
		m.keys.Ranked.Help().Key+" "+m.keys.Ranked.Help().Desc,
		m.keys.Back.Help().Key+" back"))

	return lipgloss.JoinVertical(lipgloss.Center,
		centerBlock(titleStyle.Render(title), m.width),
		"",
		centerBlock(panelStyle.Render(body), m.width),
		"",
		centerBlock(h, m.width),
	)
}
