package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/finplan/internal/config"
	"github.com/theirongolddev/finplan/internal/model"
	"github.com/theirongolddev/finplan/internal/tui/components"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.DefaultConfig()
	require.NoError(t, config.Save(cfg))

	a := NewApp(nil, cfg, config.DefaultPlan)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = m.Update(scenarioMsg())
	return m.(App)
}

func scenarioMsg() PlanLoadedMsg {
	return PlanLoadedMsg{
		Incomes: []model.IncomeRecord{
			{ID: 1, Source: "Salário", Amount: decimal.NewFromInt(5000), Frequency: model.Monthly},
		},
		Expenses: []model.ExpenseRecord{
			{ID: 1, Description: "Aluguel", Amount: decimal.NewFromInt(1500), Category: model.Fixed},
			{ID: 2, Description: "Alimentação", Amount: decimal.NewFromInt(800), Category: model.Variable},
		},
	}
}

func press(t *testing.T, a App, keys ...tea.KeyMsg) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	var m tea.Model = a
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m.(App), cmd
}

func runes(s string) []tea.KeyMsg {
	var keys []tea.KeyMsg
	for _, r := range s {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return keys
}

func TestApp_PlanLoadedComputesSnapshot(t *testing.T) {
	a := newTestApp(t)

	require.True(t, a.loaded)
	assert.True(t, a.snap.Summary.Balance.Equal(decimal.NewFromInt(2700)))
	assert.True(t, a.snap.Summary.SavingsRate.Equal(decimal.NewFromInt(54)))
	require.Len(t, a.snap.Expenses, 2)
	assert.True(t, a.snap.Expenses[0].Share.Equal(decimal.NewFromInt(65)))

	assert.Contains(t, a.View(), "Painel")
}

func TestApp_ReloadReusesSnapshot(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(scenarioMsg())

	assert.Equal(t, 1, m.(App).memo.Hits())
}

func TestApp_TabKeys(t *testing.T) {
	a := newTestApp(t)

	a, _ = press(t, a, runes("d")...)
	assert.Equal(t, tabExpenses, a.activeTab)

	a, _ = press(t, a, runes("x")...)
	assert.Equal(t, tabSettings, a.activeTab)

	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, tabDashboard, a.activeTab)

	a, _ = press(t, a, runes("2")...)
	assert.Equal(t, tabIncomes, a.activeTab)
}

func TestApp_AddIncomeThroughEditor(t *testing.T) {
	a := newTestApp(t)
	a, _ = press(t, a, runes("ra")...)
	require.NotNil(t, a.editor)
	assert.Equal(t, kindIncome, a.editor.kind)

	a, _ = press(t, a, runes("Bônus")...)
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a, _ = press(t, a, runes("12345")...)
	assert.Equal(t, "R$ 123,45", a.editor.amount.Text())

	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a, _ = press(t, a, runes("12,5")...)
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyRight})

	rec := a.editor.incomeRecord()
	assert.Equal(t, "Bônus", rec.Source)
	assert.True(t, rec.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, model.Annual, rec.Frequency)
	require.True(t, rec.Percentage.Valid)
	assert.True(t, rec.Percentage.Decimal.Equal(decimal.RequireFromString("12.5")))

	a, cmd := press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, a.editor)
	assert.NotNil(t, cmd)
}

func TestApp_EditorRequiresLabel(t *testing.T) {
	a := newTestApp(t)
	a, _ = press(t, a, runes("da")...)
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, a.editor)
	assert.NotEmpty(t, a.editor.err)
}

func TestApp_EditExistingExpense(t *testing.T) {
	a := newTestApp(t)
	a, _ = press(t, a, runes("dj")...)
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, a.editor)
	rec := a.editor.expenseRecord()
	assert.Equal(t, int64(2), rec.ID)
	assert.Equal(t, "Alimentação", rec.Description)
	assert.Equal(t, model.Variable, rec.Category)
	assert.False(t, rec.Percentage.Valid)

	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, a.editor)
}

func TestApp_RecordsCursorClamped(t *testing.T) {
	a := newTestApp(t)
	a, _ = press(t, a, runes("djjjj")...)
	assert.Equal(t, 1, a.records[1].cursor)

	a, _ = press(t, a, runes("k")...)
	assert.Equal(t, 0, a.records[1].cursor)

	view := a.View()
	assert.True(t, strings.Contains(view, "Aluguel"))
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0
		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			if got := a.tabAtX(pos + w/2); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, pos+w/2, got, i)
			}
			pos += w + 1
		}
	}
	if got := (App{}).tabAtX(1000); got != -1 {
		t.Errorf("tabAtX past the bar = %d, want -1", got)
	}
}
