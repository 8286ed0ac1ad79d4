package model

import "github.com/shopspring/decimal"

// BudgetSummary holds the derived top-level figures of a plan. It is never
// persisted.
type BudgetSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
	SavingsRate   decimal.Decimal // whole percentage points
}

// ChartPoint is one slice of the expense chart.
type ChartPoint struct {
	Name       string
	Value      decimal.Decimal
	Percentage decimal.Decimal
	Color      string
}

// IncomeRow pairs an income with its share of total income.
type IncomeRow struct {
	Record IncomeRecord
	Share  decimal.Decimal
	// Explicit is true when Share came from the record, not the computation.
	Explicit bool
}

// ExpenseRow pairs an expense with its share of total expenses.
type ExpenseRow struct {
	Record   ExpenseRecord
	Share    decimal.Decimal
	Explicit bool
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category Category
	Total    decimal.Decimal
	Count    int
}
