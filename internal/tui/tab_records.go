package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/finplan/internal/budget"
	"github.com/theirongolddev/finplan/internal/cli"
	"github.com/theirongolddev/finplan/internal/tui/components"
	"github.com/theirongolddev/finplan/internal/tui/theme"
)

type recordKind int

const (
	kindIncome recordKind = iota
	kindExpense
)

// recordsState tracks the list cursor of a records tab.
type recordsState struct {
	cursor int
	offset int
}

func (rs *recordsState) clamp(n int) {
	if rs.cursor >= n {
		rs.cursor = n - 1
	}
	if rs.cursor < 0 {
		rs.cursor = 0
	}
	if rs.offset > rs.cursor {
		rs.offset = rs.cursor
	}
}

func (rs *recordsState) move(delta, n int) {
	rs.cursor += delta
	rs.clamp(n)
}

// scroll keeps the cursor inside a window of visible rows.
func (rs *recordsState) scroll(visible int) {
	if visible < 1 {
		visible = 1
	}
	if rs.cursor < rs.offset {
		rs.offset = rs.cursor
	}
	if rs.cursor >= rs.offset+visible {
		rs.offset = rs.cursor - visible + 1
	}
}

func (a *App) activeRecords() *recordsState {
	switch a.activeTab {
	case tabIncomes:
		return &a.records[0]
	case tabExpenses:
		return &a.records[1]
	}
	return nil
}

func (a App) activeKind() recordKind {
	if a.activeTab == tabIncomes {
		return kindIncome
	}
	return kindExpense
}

func (a App) recordCount() int {
	if a.activeTab == tabIncomes {
		return len(a.incomes)
	}
	return len(a.expenses)
}

// updateRecordsKey handles list keys on the income and expense tabs. ok is
// false when the key was not consumed.
func (a App) updateRecordsKey(key string) (tea.Model, tea.Cmd, bool) {
	rs := a.activeRecords()
	n := a.recordCount()
	kind := a.activeKind()

	switch key {
	case "j", "down":
		rs.move(1, n)
	case "k", "up":
		rs.move(-1, n)
	case "g", "home":
		rs.cursor = 0
		rs.offset = 0
	case "G", "end":
		rs.move(n, n)
	case "a":
		return a.openEditor(kind, -1)
	case "enter", "e":
		if n == 0 {
			return a, nil, true
		}
		return a.openEditor(kind, rs.cursor)
	case "D", "delete":
		if n == 0 {
			return a, nil, true
		}
		var id int64
		if kind == kindIncome {
			id = a.incomes[rs.cursor].ID
		} else {
			id = a.expenses[rs.cursor].ID
		}
		return a, deleteRecordCmd(a.store, a.plan, kind, id), true
	default:
		return a, nil, false
	}
	rs.scroll(a.visibleRows())
	return a, nil, true
}

// visibleRows is the number of list rows that fit below the card chrome.
func (a App) visibleRows() int {
	return a.height - 10
}

func (a App) renderIncomesTab(cw, h int) string {
	rows := make([][]string, len(a.snap.Incomes))
	for i, r := range a.snap.Incomes {
		rows[i] = []string{
			r.Record.Source,
			r.Record.Frequency.Label(),
			a.policy.Currency(r.Record.Amount),
			cli.FormatShare(a.policy, r.Share, r.Explicit),
		}
	}
	footer := fmt.Sprintf("Total %s  ·  equivalente mensal %s",
		a.policy.Currency(a.snap.Summary.TotalIncome),
		a.policy.Currency(a.snap.MonthlyIncome))

	return a.renderRecordList("Receitas", []string{"Fonte", "Frequência", "Valor", "Participação"},
		rows, a.records[0], footer, cw, h)
}

func (a App) renderExpensesTab(cw, h int) string {
	rows := make([][]string, len(a.snap.Expenses))
	for i, r := range a.snap.Expenses {
		rows[i] = []string{
			r.Record.Description,
			r.Record.Category.Label(),
			a.policy.Currency(r.Record.Amount),
			cli.FormatShare(a.policy, r.Share, r.Explicit),
		}
	}
	footer := fmt.Sprintf("Total %s", a.policy.Currency(a.snap.Summary.TotalExpenses))
	for _, c := range budget.ByCategory(a.expenses) {
		footer += fmt.Sprintf("  ·  %s %s", c.Category.Label(), a.policy.Currency(c.Total))
	}

	return a.renderRecordList("Despesas", []string{"Descrição", "Categoria", "Valor", "Participação"},
		rows, a.records[1], footer, cw, h)
}

// renderRecordList draws a selectable table inside a content card. The first
// column takes the remaining width, the others fit their content.
func (a App) renderRecordList(title string, headers []string, rows [][]string, rs recordsState, footer string, cw, h int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	widths := make([]int, len(headers))
	for i, hd := range headers {
		widths[i] = lipgloss.Width(hd)
	}
	for _, r := range rows {
		for i, c := range r {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}
	rest := 0
	for _, w := range widths[1:] {
		rest += w + 2
	}
	widths[0] = max(innerW-rest-2, 8)

	line := func(cells []string) string {
		var b strings.Builder
		b.WriteString("  ")
		for i, c := range cells {
			if i == 0 {
				c = cli.Truncate(c, widths[0])
				b.WriteString(c + strings.Repeat(" ", widths[0]-lipgloss.Width(c)))
				continue
			}
			b.WriteString("  " + strings.Repeat(" ", widths[i]-lipgloss.Width(c)) + c)
		}
		return b.String()
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(line(headers)))
	body.WriteString("\n")

	if len(rows) == 0 {
		body.WriteString(dimStyle.Render("  Nenhum registro. Pressione [a] para adicionar."))
		body.WriteString("\n")
	}

	visible := h - 8
	view := rs
	view.scroll(visible)
	end := min(view.offset+max(visible, 1), len(rows))
	for i := view.offset; i < end; i++ {
		l := line(rows[i])
		if i == rs.cursor {
			l = "▸" + l[1:]
			body.WriteString(selStyle.Render(l + strings.Repeat(" ", max(innerW-lipgloss.Width(l), 0))))
		} else {
			body.WriteString(rowStyle.Render(l))
		}
		body.WriteString("\n")
	}
	if end < len(rows) || view.offset > 0 {
		body.WriteString(dimStyle.Render(fmt.Sprintf("  %d–%d de %d", view.offset+1, end, len(rows))))
		body.WriteString("\n")
	}

	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(footer))
	body.WriteString("\n")
	body.WriteString(dimStyle.Render("[a] adicionar  [Enter] editar  [D] remover  [j/k] navegar"))

	return components.ContentCard(title, body.String(), cw)
}
