package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finplan/internal/editfield"
	"github.com/theirongolddev/finplan/internal/model"
	"github.com/theirongolddev/finplan/internal/store"
)

var (
	flagIncomeSource     string
	flagIncomeAmount     string
	flagIncomePercentage string
	flagIncomeFrequency  string

	flagExpenseDescription string
	flagExpenseAmount      string
	flagExpensePercentage  string
	flagExpenseCategory    string

	flagEditLabel      string
	flagEditAmount     string
	flagEditPercentage string
	flagEditFrequency  string
	flagEditCategory   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an income or expense",
}

var addIncomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Add an income",
	Long: "Add an income. Amounts are typed cents-first like the dashboard fields:\n" +
		"only digits count, so \"5.000,00\" and \"500000\" are both R$ 5.000,00.",
	Args: cobra.NoArgs,
	RunE: runAddIncome,
}

var addExpenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Add an expense",
	Long: "Add an expense. Amounts are typed cents-first like the dashboard fields:\n" +
		"only digits count, so \"1.500,00\" and \"150000\" are both R$ 1.500,00.",
	Args: cobra.NoArgs,
	RunE: runAddExpense,
}

var editCmd = &cobra.Command{
	Use:       "edit income|expense ID",
	Short:     "Change fields of an income or expense",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"income", "expense"},
	RunE:      runEdit,
}

var rmCmd = &cobra.Command{
	Use:     "rm income|expense ID",
	Aliases: []string{"remove"},
	Short:   "Delete an income or expense",
	Args:    cobra.ExactArgs(2),
	RunE:    runRemove,
}

func init() {
	addIncomeCmd.Flags().StringVar(&flagIncomeSource, "source", "", "Income source, e.g. Salário")
	addIncomeCmd.Flags().StringVar(&flagIncomeAmount, "amount", "", "Amount, typed cents-first")
	addIncomeCmd.Flags().StringVar(&flagIncomePercentage, "percentage", "", "Explicit share, e.g. 12,5")
	addIncomeCmd.Flags().StringVar(&flagIncomeFrequency, "frequency", string(model.Monthly), "monthly or annual")

	addExpenseCmd.Flags().StringVar(&flagExpenseDescription, "description", "", "Expense description, e.g. Aluguel")
	addExpenseCmd.Flags().StringVar(&flagExpenseAmount, "amount", "", "Amount, typed cents-first")
	addExpenseCmd.Flags().StringVar(&flagExpensePercentage, "percentage", "", "Explicit share, e.g. 12,5")
	addExpenseCmd.Flags().StringVar(&flagExpenseCategory, "category", string(model.Fixed), "fixed or variable")

	_ = addIncomeCmd.MarkFlagRequired("amount")
	_ = addExpenseCmd.MarkFlagRequired("amount")
	_ = addIncomeCmd.MarkFlagRequired("source")
	_ = addExpenseCmd.MarkFlagRequired("description")
	addCmd.AddCommand(addIncomeCmd, addExpenseCmd)

	editCmd.Flags().StringVar(&flagEditLabel, "label", "", "New source or description")
	editCmd.Flags().StringVar(&flagEditAmount, "amount", "", "New amount, typed cents-first")
	editCmd.Flags().StringVar(&flagEditPercentage, "percentage", "", "New explicit share; 0 clears it")
	editCmd.Flags().StringVar(&flagEditFrequency, "frequency", "", "monthly or annual (incomes)")
	editCmd.Flags().StringVar(&flagEditCategory, "category", "", "fixed or variable (expenses)")

	rootCmd.AddCommand(addCmd, editCmd, rmCmd)
}

// parseAmount reads money text the way the currency field does.
func parseAmount(text string) decimal.Decimal {
	f := editfield.NewCurrency(cfg.Policy(), decimal.NullDecimal{}, editfield.Options{})
	f.Keystroke(text)
	return editfield.Amount(f)
}

// parseShare reads a percentage the way the percent field does. Zero means
// no explicit share.
func parseShare(text string) decimal.NullDecimal {
	if strings.TrimSpace(text) == "" {
		return decimal.NullDecimal{}
	}
	f := editfield.NewPercent(cfg.Policy(), decimal.NullDecimal{}, editfield.Options{})
	v := f.Keystroke(text).Value
	if !v.Valid || v.Decimal.IsZero() {
		return decimal.NullDecimal{}
	}
	return v
}

func runAddIncome(_ *cobra.Command, _ []string) error {
	freq, err := model.ParseFrequency(flagIncomeFrequency)
	if err != nil {
		return err
	}
	rec := model.IncomeRecord{
		Source:     strings.TrimSpace(flagIncomeSource),
		Amount:     parseAmount(flagIncomeAmount),
		Frequency:  freq,
		Percentage: parseShare(flagIncomePercentage),
	}
	if rec.Source == "" {
		return errors.New("source must not be empty")
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	rec, err = st.AddIncome(planName(), rec)
	if err != nil {
		return fmt.Errorf("adding income: %w", err)
	}
	fmt.Printf("  Added income #%d %s (%s)\n", rec.ID, rec.Source, cfg.Policy().Currency(rec.Amount))
	return nil
}

func runAddExpense(_ *cobra.Command, _ []string) error {
	cat, err := model.ParseCategory(flagExpenseCategory)
	if err != nil {
		return err
	}
	rec := model.ExpenseRecord{
		Description: strings.TrimSpace(flagExpenseDescription),
		Amount:      parseAmount(flagExpenseAmount),
		Category:    cat,
		Percentage:  parseShare(flagExpensePercentage),
	}
	if rec.Description == "" {
		return errors.New("description must not be empty")
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	rec, err = st.AddExpense(planName(), rec)
	if err != nil {
		return fmt.Errorf("adding expense: %w", err)
	}
	fmt.Printf("  Added expense #%d %s (%s)\n", rec.ID, rec.Description, cfg.Policy().Currency(rec.Amount))
	return nil
}

// recordArgs parses the "income|expense ID" arguments of edit and rm.
func recordArgs(args []string) (kind string, id int64, err error) {
	kind = args[0]
	if kind != "income" && kind != "expense" {
		return "", 0, fmt.Errorf("unknown record kind %q (want income or expense)", kind)
	}
	id, err = strconv.ParseInt(args[1], 10, 64)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("invalid record id %q", args[1])
	}
	return kind, id, nil
}

func runEdit(c *cobra.Command, args []string) error {
	kind, id, err := recordArgs(args)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	plan := planName()
	changed := c.Flags().Changed

	if kind == "income" {
		recs, err := st.ListIncomes(plan)
		if err != nil {
			return err
		}
		idx := findRecord(len(recs), func(i int) int64 { return recs[i].ID }, id)
		if idx < 0 {
			return fmt.Errorf("income %d: %w", id, store.ErrNotFound)
		}
		rec := recs[idx]
		if changed("label") {
			rec.Source = strings.TrimSpace(flagEditLabel)
		}
		if changed("amount") {
			rec.Amount = parseAmount(flagEditAmount)
		}
		if changed("percentage") {
			rec.Percentage = parseShare(flagEditPercentage)
		}
		if changed("frequency") {
			if rec.Frequency, err = model.ParseFrequency(flagEditFrequency); err != nil {
				return err
			}
		}
		if rec.Source == "" {
			return errors.New("source must not be empty")
		}
		if err := st.UpdateIncome(plan, rec); err != nil {
			return fmt.Errorf("updating income: %w", err)
		}
		fmt.Printf("  Updated income #%d %s\n", rec.ID, rec.Source)
		return nil
	}

	recs, err := st.ListExpenses(plan)
	if err != nil {
		return err
	}
	idx := findRecord(len(recs), func(i int) int64 { return recs[i].ID }, id)
	if idx < 0 {
		return fmt.Errorf("expense %d: %w", id, store.ErrNotFound)
	}
	rec := recs[idx]
	if changed("label") {
		rec.Description = strings.TrimSpace(flagEditLabel)
	}
	if changed("amount") {
		rec.Amount = parseAmount(flagEditAmount)
	}
	if changed("percentage") {
		rec.Percentage = parseShare(flagEditPercentage)
	}
	if changed("category") {
		if rec.Category, err = model.ParseCategory(flagEditCategory); err != nil {
			return err
		}
	}
	if rec.Description == "" {
		return errors.New("description must not be empty")
	}
	if err := st.UpdateExpense(plan, rec); err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}
	fmt.Printf("  Updated expense #%d %s\n", rec.ID, rec.Description)
	return nil
}

func findRecord(n int, idAt func(int) int64, id int64) int {
	for i := range n {
		if idAt(i) == id {
			return i
		}
	}
	return -1
}

func runRemove(_ *cobra.Command, args []string) error {
	kind, id, err := recordArgs(args)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if kind == "income" {
		err = st.DeleteIncome(planName(), id)
	} else {
		err = st.DeleteExpense(planName(), id)
	}
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no %s with id %d in plan %q", kind, id, planName())
	}
	if err != nil {
		return err
	}
	fmt.Printf("  Removed %s #%d\n", kind, id)
	return nil
}
