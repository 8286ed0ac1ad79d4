package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/finplan/internal/config"
	"github.com/theirongolddev/finplan/internal/tui/theme"
)

// SetupValues are the answers of the first-run form.
type SetupValues struct {
	Plan   string
	Prefix string
	Theme  string
}

// DefaultSetupValues prefills the form from cfg.
func DefaultSetupValues(cfg config.Config) SetupValues {
	return SetupValues{
		Plan:   cfg.General.Plan,
		Prefix: cfg.Formatting.CurrencyPrefix,
		Theme:  cfg.Appearance.Theme,
	}
}

// NewSetupForm builds the first-run form. records is the number of records
// already stored for the current plan.
func NewSetupForm(vals *SetupValues, records int) *huh.Form {
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	welcome := "Vamos configurar o finplan."
	if records > 0 {
		welcome = fmt.Sprintf("Encontramos %d registros no plano atual.", records)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Bem-vindo ao finplan").
				Description(welcome),
			huh.NewInput().
				Title("Plano").
				Description("Nome do conjunto de receitas e despesas (ex.: o cliente).").
				Value(&vals.Plan).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("informe um nome")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Prefixo monetário").
				Options(
					huh.NewOption("R$ 1.234,56", "R$ "),
					huh.NewOption("BRL 1.234,56", "BRL "),
					huh.NewOption("1.234,56", ""),
				).
				Value(&vals.Prefix),
			huh.NewSelect[string]().
				Title("Tema").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	).WithTheme(huh.ThemeCharm())
}

// ApplySetup returns cfg updated with the form answers.
func ApplySetup(cfg config.Config, vals SetupValues) config.Config {
	if p := strings.TrimSpace(vals.Plan); p != "" {
		cfg.General.Plan = p
	}
	cfg.Formatting.CurrencyPrefix = vals.Prefix
	if vals.Theme != "" {
		cfg.Appearance.Theme = vals.Theme
	}
	return cfg
}
