package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finplan/internal/cli"
	"github.com/theirongolddev/finplan/internal/tui/components"
	"github.com/theirongolddev/finplan/internal/tui/theme"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	s := a.snap.Summary
	p := a.policy

	balanceColor := t.Income
	if s.Balance.IsNegative() {
		balanceColor = t.Expense
	}

	metrics := []components.Metric{
		{Label: "Receita total", Value: p.Currency(s.TotalIncome), Color: t.Income,
			Note: fmt.Sprintf("%d receitas", len(a.incomes))},
		{Label: "Despesas", Value: p.Currency(s.TotalExpenses), Color: t.Expense,
			Note: fmt.Sprintf("%d despesas", len(a.expenses))},
		{Label: "Saldo", Value: cli.FormatBalance(p, s.Balance), Color: balanceColor},
		{Label: "Taxa de poupança", Value: p.WholePercent(s.SavingsRate), Color: components.ColorForRate(s.SavingsRate)},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var gauge strings.Builder
	gauge.WriteString(components.SavingsGauge("Poupança", s.SavingsRate, p, 10, max(innerW-20, 10)))
	gauge.WriteString("\n")
	gauge.WriteString(labelStyle.Render("Equivalente mensal da receita: "))
	gauge.WriteString(valueStyle.Render(p.Currency(a.snap.MonthlyIncome)))
	b.WriteString(components.ContentCard("Resumo", gauge.String(), cw))
	b.WriteString("\n")

	widths := components.LayoutRow(cw, 3)
	chartW := widths[0] + widths[1]
	catW := widths[2]

	var chart strings.Builder
	chart.WriteString(components.ShareStrip(a.snap.Series, components.CardInnerWidth(chartW)))
	chart.WriteString("\n\n")
	chart.WriteString(components.BarChart(a.snap.Series, p, components.CardInnerWidth(chartW)))

	var cats strings.Builder
	for i, c := range a.snap.Categories {
		cats.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", c.Category.Label())))
		cats.WriteString(valueStyle.Render(p.Currency(c.Total)))
		cats.WriteString(labelStyle.Render(fmt.Sprintf("  (%d)", c.Count)))
		if i < len(a.snap.Categories)-1 {
			cats.WriteString("\n")
		}
	}

	b.WriteString(components.CardRow([]string{
		components.ContentCard("Despesas por item", chart.String(), chartW),
		components.ContentCard("Por categoria", cats.String(), catW),
	}))

	return b.String()
}
