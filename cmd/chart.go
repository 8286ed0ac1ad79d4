package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finplan/internal/budget"
	"github.com/theirongolddev/finplan/internal/cli"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Expense breakdown as horizontal bars",
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	data, err := loadPlan(st)
	if err != nil {
		return err
	}

	series := budget.ChartSeries(data.expenses)
	if len(series) == 0 {
		fmt.Printf("\n  No expenses in plan %q.\n", data.name)
		return nil
	}

	maxValue := decimal.Zero
	for _, pt := range series {
		maxValue = decimal.Max(maxValue, pt.Value)
	}

	p := cfg.Policy()
	rows := make([][]string, 0, len(series))
	for _, pt := range series {
		rows = append(rows, []string{
			cli.Truncate(pt.Name, 24),
			cli.RenderHorizontalBar(pt.Value, maxValue, 30, pt.Color),
			p.Currency(pt.Value),
			p.WholePercent(pt.Percentage),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Despesas por item  %s", data.name),
		Headers: []string{"Item", "", "Valor", "%"},
		Rows:    rows,
	}))
	return nil
}
