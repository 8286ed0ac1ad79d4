package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finplan/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the plan name plus the latest status message on the right.
func RenderStatusBar(width int, plan, message string, isErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	planStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface)
	if isErr {
		msgStyle = msgStyle.Foreground(t.Expense)
	}

	left := style.Render(" [?]help  [q]uit")

	right := ""
	if message != "" {
		right = msgStyle.Render(message) + style.Render("  ")
	}
	right += style.Render("plano ") + planStyle.Render(plan) + style.Render(" ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().Background(t.Surface).Width(width).
		Render(left + lipgloss.PlaceHorizontal(gap, lipgloss.Left, "", lipgloss.WithWhitespaceBackground(t.Surface)) + right)
}
