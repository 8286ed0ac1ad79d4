package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finplan/internal/editfield"
	"github.com/theirongolddev/finplan/internal/model"
	"github.com/theirongolddev/finplan/internal/tui/components"
	"github.com/theirongolddev/finplan/internal/tui/theme"
)

const (
	fieldLabel = iota
	fieldAmount
	fieldPercent
	fieldClass
	fieldCount // sentinel
)

// editorState is the add/edit form of one income or expense.
type editorState struct {
	kind    recordKind
	id      int64 // zero for a new record
	label   textinput.Model
	amount  components.NumInput
	percent components.NumInput
	class   int // index into the frequency or category options
	focus   int
	err     string
}

var (
	frequencyOptions = []model.Frequency{model.Monthly, model.Annual}
	categoryOptions  = []model.Category{model.Fixed, model.Variable}
)

// openEditor starts the editor for record idx of kind, or a blank record
// when idx is negative.
func (a App) openEditor(kind recordKind, idx int) (tea.Model, tea.Cmd, bool) {
	fmtCfg := a.cfg.Formatting
	ed := &editorState{kind: kind}

	var (
		label   string
		amount  decimal.NullDecimal
		percent decimal.NullDecimal
	)
	switch {
	case kind == kindIncome && idx >= 0:
		r := a.incomes[idx]
		ed.id, label, amount, percent = r.ID, r.Source, decimal.NewNullDecimal(r.Amount), r.Percentage
		if r.Frequency == model.Annual {
			ed.class = 1
		}
	case kind == kindExpense && idx >= 0:
		r := a.expenses[idx]
		ed.id, label, amount, percent = r.ID, r.Description, decimal.NewNullDecimal(r.Amount), r.Percentage
		if r.Category == model.Variable {
			ed.class = 1
		}
	}

	ed.label = textinput.New()
	ed.label.Prompt = ""
	ed.label.CharLimit = 80
	ed.label.Width = 40
	ed.label.SetValue(label)
	ed.label.Placeholder = "Salário, Aluguel..."

	ed.amount = components.NewCurrencyInput(a.policy, amount, editfield.Options{Placeholder: fmtCfg.CurrencyPlaceholder})
	ed.percent = components.NewPercentInput(a.policy, percent, editfield.Options{Placeholder: fmtCfg.PercentPlaceholder})

	a.editor = ed
	return a, ed.setFocus(fieldLabel), true
}

// setFocus blurs the current field and focuses field f.
func (ed *editorState) setFocus(f int) tea.Cmd {
	switch ed.focus {
	case fieldLabel:
		ed.label.Blur()
	case fieldAmount:
		ed.amount.Blur()
	case fieldPercent:
		ed.percent.Blur()
	}

	ed.focus = (f + fieldCount) % fieldCount
	switch ed.focus {
	case fieldLabel:
		return ed.label.Focus()
	case fieldAmount:
		return ed.amount.Focus()
	case fieldPercent:
		return ed.percent.Focus()
	}
	return nil
}

// update forwards msg to the focused input.
func (ed *editorState) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch ed.focus {
	case fieldLabel:
		ed.label, cmd = ed.label.Update(msg)
	case fieldAmount:
		ed.amount, cmd = ed.amount.Update(msg)
	case fieldPercent:
		ed.percent, cmd = ed.percent.Update(msg)
	}
	return cmd
}

// share returns the percentage to store: absent when left empty or zero.
func (ed *editorState) share() decimal.NullDecimal {
	v := ed.percent.Value()
	if !v.Valid || v.Decimal.IsZero() {
		return decimal.NullDecimal{}
	}
	return v
}

func (ed *editorState) incomeRecord() model.IncomeRecord {
	return model.IncomeRecord{
		ID:         ed.id,
		Source:     strings.TrimSpace(ed.label.Value()),
		Amount:     ed.amountValue(),
		Frequency:  frequencyOptions[ed.class],
		Percentage: ed.share(),
	}
}

func (ed *editorState) expenseRecord() model.ExpenseRecord {
	return model.ExpenseRecord{
		ID:          ed.id,
		Description: strings.TrimSpace(ed.label.Value()),
		Amount:      ed.amountValue(),
		Category:    categoryOptions[ed.class],
		Percentage:  ed.share(),
	}
}

// amountValue returns the typed amount, zero when nothing was typed.
func (ed *editorState) amountValue() decimal.Decimal {
	if v := ed.amount.Value(); v.Valid {
		return v.Decimal
	}
	return decimal.Zero
}

func (a App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := a.editor

	switch msg.String() {
	case "esc":
		a.editor = nil
		return a, nil
	case "tab", "down":
		return a, ed.setFocus(ed.focus + 1)
	case "shift+tab", "up":
		return a, ed.setFocus(ed.focus - 1)
	case "enter":
		if strings.TrimSpace(ed.label.Value()) == "" {
			ed.err = "Informe uma descrição"
			return a, ed.setFocus(fieldLabel)
		}
		ed.setFocus(fieldClass) // blur numeric inputs into display form
		a.editor = nil
		if ed.kind == kindIncome {
			return a, saveIncomeCmd(a.store, a.plan, ed.incomeRecord())
		}
		return a, saveExpenseCmd(a.store, a.plan, ed.expenseRecord())
	}

	if ed.focus == fieldClass {
		switch msg.String() {
		case "left", "right", " ", "h", "l":
			ed.class = 1 - ed.class
		}
		return a, nil
	}

	ed.err = ""
	return a, ed.update(msg)
}

func (a App) renderEditor(cw int) string {
	t := theme.Active
	ed := a.editor

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	activeLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	errStyle := lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface)

	title, labelName, className := "Nova receita", "Fonte", "Frequência"
	var options []string
	if ed.kind == kindIncome {
		for _, f := range frequencyOptions {
			options = append(options, f.Label())
		}
	} else {
		title, labelName, className = "Nova despesa", "Descrição", "Categoria"
		for _, c := range categoryOptions {
			options = append(options, c.Label())
		}
	}
	if ed.id != 0 {
		title = strings.Replace(title, "Nova", "Editar", 1)
	}

	var choice strings.Builder
	for i, o := range options {
		if i == ed.class {
			choice.WriteString(activeLabelStyle.Render("(•) " + o))
		} else {
			choice.WriteString(labelStyle.Render("( ) " + o))
		}
		choice.WriteString(labelStyle.Render("  "))
	}

	rows := []struct {
		name string
		view string
	}{
		{labelName, ed.label.View()},
		{"Valor", ed.amount.View()},
		{"Participação", ed.percent.View()},
		{className, choice.String()},
	}

	var body strings.Builder
	for i, r := range rows {
		if i == ed.focus {
			body.WriteString(markerStyle.Render("▸ "))
			body.WriteString(activeLabelStyle.Render(fmt.Sprintf("%-14s", r.name)))
		} else {
			body.WriteString(labelStyle.Render("  "))
			body.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", r.name)))
		}
		body.WriteString(valueStyle.Render(r.view))
		body.WriteString("\n")
	}
	if ed.err != "" {
		body.WriteString("\n")
		body.WriteString(errStyle.Render(ed.err))
		body.WriteString("\n")
	}
	body.WriteString("\n")
	body.WriteString(dimStyle.Render("Valores são digitados a partir dos centavos. Participação vazia é calculada."))
	body.WriteString("\n")
	body.WriteString(dimStyle.Render("[Tab] próximo campo  [←/→] alternar  [Enter] salvar  [Esc] cancelar"))

	return components.ContentCard(title, body.String(), cw)
}
