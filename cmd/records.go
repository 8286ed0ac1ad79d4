package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finplan/internal/budget"
	"github.com/theirongolddev/finplan/internal/cli"
)

var incomesCmd = &cobra.Command{
	Use:     "incomes",
	Aliases: []string{"receitas"},
	Short:   "List incomes with their share of total income",
	RunE:    runIncomes,
}

var expensesCmd = &cobra.Command{
	Use:     "expenses",
	Aliases: []string{"despesas"},
	Short:   "List expenses with their share of total expenses",
	RunE:    runExpenses,
}

func init() {
	rootCmd.AddCommand(incomesCmd, expensesCmd)
}

func runIncomes(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	data, err := loadPlan(st)
	if err != nil {
		return err
	}
	if len(data.incomes) == 0 {
		fmt.Printf("\n  No incomes in plan %q.\n", data.name)
		return nil
	}

	p := cfg.Policy()
	var rows [][]string
	for _, r := range budget.IncomeRows(data.incomes) {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Record.ID),
			cli.Truncate(r.Record.Source, 30),
			r.Record.Frequency.Label(),
			p.Currency(r.Record.Amount),
			cli.FormatShare(p, r.Share, r.Explicit),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"", "Total", "", p.Currency(budget.TotalOf(data.incomes)), ""},
		[]string{"", "Equivalente mensal", "", p.Currency(budget.MonthlyEquivalent(data.incomes)), ""},
	)

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Receitas  %s", data.name),
		Headers: []string{"ID", "Fonte", "Frequência", "Valor", "%"},
		Rows:    rows,
	}))
	return nil
}

func runExpenses(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	data, err := loadPlan(st)
	if err != nil {
		return err
	}
	if len(data.expenses) == 0 {
		fmt.Printf("\n  No expenses in plan %q.\n", data.name)
		return nil
	}

	p := cfg.Policy()
	var rows [][]string
	for _, r := range budget.ExpenseRows(data.expenses) {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Record.ID),
			cli.Truncate(r.Record.Description, 30),
			r.Record.Category.Label(),
			p.Currency(r.Record.Amount),
			cli.FormatShare(p, r.Share, r.Explicit),
		})
	}
	rows = append(rows, []string{"---"})
	for _, c := range budget.ByCategory(data.expenses) {
		rows = append(rows, []string{"", c.Category.Label(), cli.FormatCount(p, c.Count) + " itens", p.Currency(c.Total), ""})
	}
	rows = append(rows, []string{"", "Total", "", p.Currency(budget.TotalOf(data.expenses)), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Despesas  %s", data.name),
		Headers: []string{"ID", "Descrição", "Categoria", "Valor", "%"},
		Rows:    rows,
	}))
	return nil
}
