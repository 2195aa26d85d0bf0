package tui

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/crispy-forty/internal/assistant"
)

func newTestChat() ChatModel {
	bot := assistant.New(assistant.Corpus{
		Fallback: "no idea",
		Examples: []assistant.Example{{Input: "how do i pause", Output: "press ctrl+p", Category: "mechanics"}},
	})
	return NewChatModel(bot, rand.New(rand.NewSource(1)), 0, 0)
}

func typeText(m ChatModel, text string) ChatModel {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestChatReply(t *testing.T) {
	m := newTestChat()
	m.Open()
	require.Contains(t, m.View(), "Hi! I'm the Crispy-Forty assistant.")

	m = typeText(m, "how do I pause?")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, m.Waiting())
	require.Contains(t, m.View(), "how do I pause?")

	m, _ = m.Update(cmd())
	require.False(t, m.Waiting())
	require.Contains(t, m.View(), "press ctrl+p")
}

func TestChatIgnoresBlankInput(t *testing.T) {
	m := newTestChat()
	m.Open()
	m = typeText(m, "   ")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.False(t, m.Waiting())
}

func TestChatFallback(t *testing.T) {
	m := newTestChat()
	m.Open()
	m = typeText(m, "quantum chromodynamics")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(cmd())
	require.Contains(t, m.View(), "no idea")
}

func TestChatDelayWithinBounds(t *testing.T) {
	m := newTestChat()
	m.minDelay, m.maxDelay = 100, 200
	for range 50 {
		d := m.delay()
		require.GreaterOrEqual(t, int64(d), int64(100))
		require.LessOrEqual(t, int64(d), int64(200))
	}
}
