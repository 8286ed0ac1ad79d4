package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finplan/internal/budget"
	"github.com/theirongolddev/finplan/internal/cli"
	"github.com/theirongolddev/finplan/internal/model"
)

type planData struct {
	name     string
	incomes  []model.IncomeRecord
	expenses []model.ExpenseRecord
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Budget summary of the current plan",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	data, err := loadPlan(st)
	if err != nil {
		return err
	}

	if len(data.incomes) == 0 && len(data.expenses) == 0 {
		fmt.Printf("\n  Plan %q is empty.\n", data.name)
		fmt.Println("  Add records with `finplan add` or `finplan import`.")
		return nil
	}

	p := cfg.Policy()
	sum := budget.Summary(data.incomes, data.expenses)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RESUMO  %s", data.name)))
	fmt.Println()

	rows := [][]string{
		{"Receita total", p.Currency(sum.TotalIncome)},
		{"Despesas", p.Currency(sum.TotalExpenses)},
		{"Saldo", cli.FormatBalance(p, sum.Balance)},
		{"---"},
		{"Taxa de poupança", p.WholePercent(sum.SavingsRate) + "  " + cli.RenderRateBar(sum.SavingsRate, 20)},
		{"Equivalente mensal", p.Currency(budget.MonthlyEquivalent(data.incomes))},
		{"---"},
		{"Receitas", cli.FormatCount(p, len(data.incomes))},
		{"Despesas (itens)", cli.FormatCount(p, len(data.expenses))},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Métrica", "Valor"},
		Rows:    rows,
	}))
	return nil
}
