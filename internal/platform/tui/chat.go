package tui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crispy-forty/internal/assistant"
)

const chatGreeting = "Hi! I'm the Crispy-Forty assistant. Ask me anything about the game."

// chatLine is one message in the help chat.
type chatLine struct {
	fromBot bool
	text    string
}

// botReplyMsg carries a delayed assistant reply. Replies whose seq does not
// match the chat's current seq belong to a closed chat and are dropped.
type botReplyMsg struct {
	seq  int
	text string
}

// ChatModel is the help chat screen.
type ChatModel struct {
	bot      *assistant.Assistant
	rng      *rand.Rand
	minDelay time.Duration
	maxDelay time.Duration

	input   textinput.Model
	lines   []chatLine
	seq     int
	pending int
	width   int
}

// NewChatModel creates an empty chat.
func NewChatModel(bot *assistant.Assistant, rng *rand.Rand, minDelay, maxDelay time.Duration) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask a question..."
	ti.CharLimit = 200
	ti.Width = 50

	return ChatModel{
		bot:      bot,
		rng:      rng,
		minDelay: minDelay,
		maxDelay: maxDelay,
		input:    ti,
		lines:    []chatLine{{fromBot: true, text: chatGreeting}},
		seq:      1,
	}
}

// Open focuses the input for a new visit to the chat.
func (m *ChatModel) Open() tea.Cmd {
	return m.input.Focus()
}

// Close abandons any reply still in flight.
func (m *ChatModel) Close() {
	m.seq++
	m.pending = 0
	m.input.Blur()
}

// Waiting reports whether a reply is still being "typed".
func (m ChatModel) Waiting() bool {
	return m.pending > 0
}

func (m ChatModel) delay() time.Duration {
	span := m.maxDelay - m.minDelay
	if span <= 0 {
		return m.minDelay
	}
	return m.minDelay + time.Duration(m.rng.Int63n(int64(span)+1))
}

// Update handles messages for the chat. Enter sends the typed question.
func (m ChatModel) Update(msg tea.Msg) (ChatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case botReplyMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.pending--
		m.lines = append(m.lines, chatLine{fromBot: true, text: msg.text})
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				return m, nil
			}
			m.input.Reset()
			m.lines = append(m.lines, chatLine{text: q})
			m.pending++

			reply, seq := m.bot.Reply(q), m.seq
			return m, tea.Tick(m.delay(), func(time.Time) tea.Msg {
				return botReplyMsg{seq: seq, text: reply}
			})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

var (
	botStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	userStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// View renders the conversation and the input line.
func (m ChatModel) View() string {
	width := 60
	var b strings.Builder
	for _, l := range m.lines {
		if l.fromBot {
			b.WriteString(botStyle.Width(width).Render("bot: " + l.text))
		} else {
			b.WriteString(userStyle.Width(width).Align(lipgloss.Right).Render(l.text + " :you"))
		}
		b.WriteString("\n")
	}
	if m.pending > 0 {
		b.WriteString(subtitleStyle.Render("bot is typing..."))
		b.WriteString("\n")
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		centerBlock(titleStyle.Render("HELP CHAT"), m.width),
		"",
		centerBlock(panelStyle.Render(strings.TrimRight(b.String(), "\n")), m.width),
		centerBlock(m.input.View(), m.width),
		"",
		centerBlock(helpStyle.Render("enter send • esc back"), m.width),
	)
}
