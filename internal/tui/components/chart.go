package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finplan/internal/model"
	"github.com/theirongolddev/finplan/internal/numfmt"
	"github.com/theirongolddev/finplan/internal/tui/theme"
)

// BarChart renders one horizontal bar per chart point, scaled to the largest
// value, followed by the amount and share:
//
//	Aluguel      ████████████████  R$ 1.500,00  65%
func BarChart(points []model.ChartPoint, p numfmt.Policy, width int) string {
	t := theme.Active
	if len(points) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("Nenhuma despesa")
	}

	labelW := 4
	valueW := 0
	peak := decimal.Zero
	for _, pt := range points {
		labelW = max(labelW, lipgloss.Width(pt.Name))
		valueW = max(valueW, lipgloss.Width(p.Currency(pt.Value)))
		if pt.Value.GreaterThan(peak) {
			peak = pt.Value
		}
	}
	labelW = min(labelW, 18)

	const shareW = 7
	barW := width - labelW - valueW - shareW - 4
	if barW < 4 {
		barW = 4
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i, pt := range points {
		n := scaled(pt.Value, peak, barW)
		barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(pt.Color)).Background(t.Surface)

		b.WriteString(labelStyle.Render(padRight(truncate(pt.Name, labelW), labelW)))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
		b.WriteString(dimStyle.Render(strings.Repeat("·", barW-n)))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%*s", valueW, p.Currency(pt.Value))))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(barStyle.Render(fmt.Sprintf("%*s", shareW, p.WholePercent(pt.Percentage.Round(0)))))
		if i < len(points)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ShareStrip renders a single-line stacked bar where each point takes a
// width proportional to its value.
func ShareStrip(points []model.ChartPoint, width int) string {
	t := theme.Active
	total := decimal.Zero
	for _, pt := range points {
		if pt.Value.IsPositive() {
			total = total.Add(pt.Value)
		}
	}
	if !total.IsPositive() || width <= 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(strings.Repeat("░", max(width, 0)))
	}

	var b strings.Builder
	used := 0
	acc := decimal.Zero
	for _, pt := range points {
		if !pt.Value.IsPositive() {
			continue
		}
		acc = acc.Add(pt.Value)
		end := scaled(acc, total, width)
		if end > used {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(pt.Color)).Background(t.Surface)
			b.WriteString(style.Render(strings.Repeat("█", end-used)))
			used = end
		}
	}
	return b.String()
}

// scaled returns round(value/peak*width), clamped to [0, width]. Positive
// values never vanish entirely.
func scaled(value, peak decimal.Decimal, width int) int {
	if !peak.IsPositive() || !value.IsPositive() {
		return 0
	}
	n := int(value.Mul(decimal.NewFromInt(int64(width))).Div(peak).Round(0).IntPart())
	return max(1, min(n, width))
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
