package components

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finplan/internal/numfmt"
	"github.com/theirongolddev/finplan/internal/tui/theme"
)

// ColorForRate returns the color of a savings rate: negative rates are
// expenses, low rates a warning, the rest income.
func ColorForRate(rate decimal.Decimal) lipgloss.Color {
	t := theme.Active
	switch {
	case rate.IsNegative():
		return t.Expense
	case rate.LessThan(decimal.NewFromInt(10)):
		return t.Warning
	default:
		return t.Income
	}
}

// SavingsGauge renders a labeled bar for a savings rate in percent. The bar
// is clamped to 0-100 while the label shows the real rate.
func SavingsGauge(label string, rate decimal.Decimal, p numfmt.Policy, labelW, barWidth int) string {
	t := theme.Active
	color := ColorForRate(rate)

	frac, _ := rate.Abs().Div(decimal.NewFromInt(100)).Float64()
	if frac > 1 {
		frac = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	rateStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(padRight(label, labelW)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(frac) +
		spaceStyle.Render(" ") +
		rateStyle.Render(p.WholePercent(rate))
}
