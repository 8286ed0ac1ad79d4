package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finplan/internal/cli"
	"github.com/theirongolddev/finplan/internal/model"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List stored plans",
	RunE:  runPlans,
}

func init() {
	rootCmd.AddCommand(plansCmd)
}

func runPlans(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	plans, err := st.Plans()
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Println("\n  No plans yet.")
		return nil
	}

	p := cfg.Policy()
	current := planName()
	rows := make([][]string, 0, len(plans)+2)
	for _, pl := range plans {
		name := pl.Name
		if name == current {
			name += " *"
		}
		rows = append(rows, []string{name, cli.FormatCount(p, pl.Incomes), cli.FormatCount(p, pl.Expenses)})
	}
	rows = append(rows, []string{"---"}, []string{"Total", "", cli.FormatCount(p, totalRecords(plans))})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Planos",
		Headers: []string{"Plano", "Receitas", "Despesas"},
		Rows:    rows,
	}))
	return nil
}

// totalRecords sums the record counts of a plan listing.
func totalRecords(plans []model.PlanInfo) int {
	n := 0
	for _, p := range plans {
		n += p.Incomes + p.Expenses
	}
	return n
}
