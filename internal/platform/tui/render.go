package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crispy-forty/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWall:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorPath:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	core.ColorGoal:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	core.ColorFound:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("46")),
	core.ColorCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Shared text styles.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	goodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	badStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	tileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true).
			Padding(0, 1)
)

// RenderBoard converts a Board to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderBoard(b *core.Board) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(b.Width()*b.Height()*2 + b.Height())

	for y := range b.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < b.Width() {
			cell := b.Get(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < b.Width() {
				cell = b.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerBlock centers a possibly multi-line block within width.
func centerBlock(block string, width int) string {
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
