package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/finplan/internal/config"
	"github.com/theirongolddev/finplan/internal/tui/components"
	"github.com/theirongolddev/finplan/internal/tui/theme"
)

const (
	settingsFieldPlan = iota
	settingsFieldPrefix
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message
	saveErr error // non-nil if last save failed
}

func (a App) updateSettingsKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "enter":
		if a.settings.cursor == settingsFieldTheme {
			return a.cycleTheme(), nil, true
		}
		m, cmd := a.settingsStartEdit()
		return m, cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	switch a.settings.cursor {
	case settingsFieldPlan:
		ti.Placeholder = config.DefaultPlan
		ti.SetValue(a.plan)
	case settingsFieldPrefix:
		ti.Placeholder = "R$ "
		ti.SetValue(a.cfg.Formatting.CurrencyPrefix)
	}
	ti.CursorEnd()

	cmd := ti.Focus()
	a.settings.input = ti
	return a, cmd
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, cmd
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited value and persists the config. It returns a
// reload command when the plan changed.
func (a *App) settingsSave() tea.Cmd {
	val := a.settings.input.Value()
	var cmd tea.Cmd

	switch a.settings.cursor {
	case settingsFieldPlan:
		val = strings.TrimSpace(val)
		if val == "" || val == a.plan {
			return nil
		}
		a.cfg.General.Plan = val
		a.plan = val
		a.memo.Reset()
		cmd = loadPlanCmd(a.store, a.plan)
	case settingsFieldPrefix:
		a.cfg.Formatting.CurrencyPrefix = val
		a.policy = a.cfg.Policy()
	}

	a.settings.saveErr = config.Save(a.cfg)
	if a.settings.saveErr != nil {
		log.WithError(a.settings.saveErr).Warn("saving config")
	}
	return cmd
}

func (a App) cycleTheme() App {
	names := theme.Names()
	next := names[0]
	for i, n := range names {
		if n == theme.Active.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	theme.SetActive(next)
	a.cfg.Appearance.Theme = next
	a.settings.saveErr = config.Save(a.cfg)
	a.settings.saved = a.settings.saveErr == nil
	return a
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	okStyle := lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	fields := []struct{ label, value string }{
		{"Plano", a.plan},
		{"Prefixo monetário", fmt.Sprintf("%q", a.cfg.Formatting.CurrencyPrefix)},
		{"Tema", theme.Active.Name},
	}

	innerW := components.CardInnerWidth(cw)
	var form strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			form.WriteString(markerStyle.Render("▸ "))
			form.WriteString(accentStyle.Render(fmt.Sprintf("%-20s ", f.label)))
			form.WriteString(a.settings.input.View())
			form.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			line := markerStyle.Render("▸ ") +
				selectedLabelStyle.Render(fmt.Sprintf("%-20s ", f.label+":")) +
				selectedStyle.Render(f.value)
			form.WriteString(line)
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				form.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			form.WriteString(labelStyle.Render("  "))
			form.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", f.label+":")))
			form.WriteString(valueStyle.Render(f.value))
		}
		form.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		form.WriteString("\n")
		form.WriteString(lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface).
			Render(fmt.Sprintf("Falha ao salvar: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		form.WriteString("\n")
		form.WriteString(okStyle.Render("Salvo!"))
	}
	form.WriteString("\n")
	form.WriteString(labelStyle.Render("[j/k] navegar  [Enter] editar / trocar tema  [Esc] cancelar"))

	var info strings.Builder
	info.WriteString(labelStyle.Render("Arquivo de configuração: ") + valueStyle.Render(config.Path()) + "\n")
	info.WriteString(labelStyle.Render("Banco de dados:          ") + valueStyle.Render(config.DatabasePath(a.cfg)) + "\n")
	info.WriteString(labelStyle.Render("Registros carregados:    ") +
		valueStyle.Render(fmt.Sprintf("%d receitas, %d despesas", len(a.incomes), len(a.expenses))) + "\n")
	info.WriteString(labelStyle.Render("Tempo de carga:          ") + valueStyle.Render(a.loadTime.String()))

	return components.ContentCard("Ajustes", form.String(), cw) + "\n" +
		components.ContentCard("Geral", info.String(), cw)
}
