// Package tui provides the interactive Bubble Tea planner for finplan.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/finplan/internal/budget"
	"github.com/theirongolddev/finplan/internal/config"
	"github.com/theirongolddev/finplan/internal/model"
	"github.com/theirongolddev/finplan/internal/numfmt"
	"github.com/theirongolddev/finplan/internal/store"
	"github.com/theirongolddev/finplan/internal/tui/components"
	"github.com/theirongolddev/finplan/internal/tui/theme"
)

const (
	tabDashboard = iota
	tabIncomes
	tabExpenses
	tabSettings
)

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5
)

// PlanLoadedMsg is sent when the records of the current plan have been read.
type PlanLoadedMsg struct {
	Incomes  []model.IncomeRecord
	Expenses []model.ExpenseRecord
	LoadTime time.Duration
	Err      error
}

// SavedMsg is sent when a store mutation finishes.
type SavedMsg struct {
	Note string
	Err  error
}

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	cfg    config.Config
	plan   string
	policy numfmt.Policy

	// Data
	incomes  []model.IncomeRecord
	expenses []model.ExpenseRecord
	memo     *budget.Memo
	snap     budget.Snapshot
	loaded   bool
	loadTime time.Duration

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	status    string
	statusErr bool

	// Per-tab state
	records  [2]recordsState // incomes, expenses
	editor   *editorState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool

	spinner spinner.Model
}

// NewApp creates the TUI model for one plan of st.
func NewApp(st *store.Store, cfg config.Config, plan string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		store:     st,
		cfg:       cfg,
		plan:      plan,
		policy:    cfg.Policy(),
		memo:      &budget.Memo{},
		needSetup: !config.Exists(),
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadPlanCmd(a.store, a.plan),
		a.spinner.Tick,
	)
}

func (a *App) recompute() {
	a.snap = a.memo.Compute(a.incomes, a.expenses)
	a.records[0].clamp(len(a.incomes))
	a.records[1].clamp(len(a.expenses))
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.editor != nil || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)

	case PlanLoadedMsg:
		a.loaded = true
		if msg.Err != nil {
			a.setStatus(fmt.Sprintf("Falha ao carregar: %s", msg.Err), true)
			return a, nil
		}
		a.incomes = msg.Incomes
		a.expenses = msg.Expenses
		a.loadTime = msg.LoadTime
		a.recompute()
		log.WithFields(log.Fields{
			"plan":     a.plan,
			"incomes":  len(a.incomes),
			"expenses": len(a.expenses),
			"memoHits": a.memo.Hits(),
		}).Debug("plan loaded")

		if a.needSetup && a.setupForm == nil {
			a.setupVals = DefaultSetupValues(a.cfg)
			a.setupForm = NewSetupForm(&a.setupVals, len(a.incomes)+len(a.expenses))
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case SavedMsg:
		if msg.Err != nil {
			log.WithError(msg.Err).Warn("store update failed")
			a.setStatus(msg.Err.Error(), true)
			return a, nil
		}
		a.setStatus(msg.Note, false)
		return a, loadPlanCmd(a.store, a.plan)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks, etc.) to the active input
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.editor != nil {
		cmd := a.editor.update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.editor != nil {
		return a.updateEditor(msg)
	}
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch a.activeTab {
	case tabIncomes, tabExpenses:
		if m, cmd, ok := a.updateRecordsKey(key); ok {
			return m, cmd
		}
	case tabSettings:
		if m, cmd, ok := a.updateSettingsKey(key); ok {
			return m, cmd
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "ctrl+r":
		return a, loadPlanCmd(a.store, a.plan)
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case "1", "2", "3", "4":
		a.activeTab = int(key[0] - '1')
	default:
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if rs := a.activeRecords(); rs != nil {
			rs.move(-1, a.recordCount())
			rs.scroll(a.visibleRows())
		}
	case tea.MouseButtonWheelDown:
		if rs := a.activeRecords(); rs != nil {
			rs.move(1, a.recordCount())
			rs.scroll(a.visibleRows())
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.cfg = ApplySetup(a.cfg, a.setupVals)
		if err := config.Save(a.cfg); err != nil {
			a.setStatus(fmt.Sprintf("Falha ao salvar: %s", err), true)
		}
		theme.SetActive(a.cfg.Appearance.Theme)
		a.policy = a.cfg.Policy()
		a.needSetup = false
		a.setupForm = nil
		if a.cfg.General.Plan != a.plan {
			a.plan = a.cfg.General.Plan
			return a, loadPlanCmd(a.store, a.plan)
		}
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf("\n  Terminal estreito demais (%d colunas)\n\n  finplan precisa de pelo menos %d colunas.\n",
		a.width, minTerminalWidth)
	h := max(a.height, 5)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)
	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	body := logoStyle.Render("◈ finplan") + subtitleStyle.Render(" · Planejamento financeiro") + "\n\n" +
		a.spinner.View() + subtitleStyle.Render(" Carregando plano "+a.plan+"...")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Navegação", [][2]string{
			{"p r d x", "Ir para a aba"},
			{"← → 1-4", "Aba anterior / próxima"},
			{"j k", "Mover na lista"},
		}},
		{"Registros", [][2]string{
			{"a", "Adicionar"},
			{"Enter e", "Editar"},
			{"D", "Remover"},
			{"Tab", "Próximo campo"},
			{"Esc", "Cancelar"},
		}},
		{"Geral", [][2]string{
			{"^r", "Recarregar plano"},
			{"?", "Ajuda"},
			{"q", "Sair"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Atalhos"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, kb := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-10s", kb[0])), descStyle.Render(kb[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Qualquer tecla fecha"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.plan, a.status, a.statusErr)

	contentH := a.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.editor != nil:
		content = a.renderEditor(cw)
	case a.activeTab == tabDashboard:
		content = a.renderDashboardTab(cw)
	case a.activeTab == tabIncomes:
		content = a.renderIncomesTab(cw, contentH)
	case a.activeTab == tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case a.activeTab == tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, a.height, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Commands ───────────────────────────────────────────────────

func loadPlanCmd(st *store.Store, plan string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		incomes, err := st.ListIncomes(plan)
		if err != nil {
			return PlanLoadedMsg{Err: err}
		}
		expenses, err := st.ListExpenses(plan)
		if err != nil {
			return PlanLoadedMsg{Err: err}
		}
		return PlanLoadedMsg{Incomes: incomes, Expenses: expenses, LoadTime: time.Since(start)}
	}
}

func saveIncomeCmd(st *store.Store, plan string, r model.IncomeRecord) tea.Cmd {
	return func() tea.Msg {
		if r.ID == 0 {
			_, err := st.AddIncome(plan, r)
			return SavedMsg{Note: "Receita adicionada", Err: err}
		}
		return SavedMsg{Note: "Receita atualizada", Err: st.UpdateIncome(plan, r)}
	}
}

func saveExpenseCmd(st *store.Store, plan string, r model.ExpenseRecord) tea.Cmd {
	return func() tea.Msg {
		if r.ID == 0 {
			_, err := st.AddExpense(plan, r)
			return SavedMsg{Note: "Despesa adicionada", Err: err}
		}
		return SavedMsg{Note: "Despesa atualizada", Err: st.UpdateExpense(plan, r)}
	}
}

func deleteRecordCmd(st *store.Store, plan string, kind recordKind, id int64) tea.Cmd {
	return func() tea.Msg {
		if kind == kindIncome {
			return SavedMsg{Note: "Receita removida", Err: st.DeleteIncome(plan, id)}
		}
		return SavedMsg{Note: "Despesa removida", Err: st.DeleteExpense(plan, id)}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line, lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
