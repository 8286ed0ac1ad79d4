// Package budget derives totals, per-item shares, the savings rate and chart
// data from a snapshot of plan records. Every function is pure: inputs are
// never modified and results are freshly allocated.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finplan/internal/model"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)
	twelve  = decimal.NewFromInt(12)
)

// Palette is the ordered color cycle for chart series.
var Palette = []string{
	"#0088FE",
	"#00C49F",
	"#FFBB28",
	"#FF8042",
	"#8884D8",
	"#82CA9D",
}

// TotalOf sums the amounts of records. An empty list totals zero.
func TotalOf[E model.Entry](records []E) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.AmountValue())
	}
	return total
}

// PercentageShare returns item's share of total in percent.
//
// A non-zero percentage stored on the item is returned unchanged. Otherwise
// the share is amount/total*100 rounded half-up to a whole point, or zero when
// total is not positive. Stored shares keep their decimals while computed ones
// are integers.
func PercentageShare(item model.Entry, total decimal.Decimal) decimal.Decimal {
	if explicitShare(item) {
		return item.Share().Decimal
	}
	if !total.IsPositive() {
		return decimal.Zero
	}
	return roundHalfUp(item.AmountValue().Mul(hundred).Div(total))
}

// Summary computes total income, total expenses, balance and savings rate.
// The savings rate is round(balance/totalIncome*100), or zero without income.
func Summary(incomes []model.IncomeRecord, expenses []model.ExpenseRecord) model.BudgetSummary {
	s := model.BudgetSummary{
		TotalIncome:   TotalOf(incomes),
		TotalExpenses: TotalOf(expenses),
		SavingsRate:   decimal.Zero,
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpenses)
	if s.TotalIncome.IsPositive() {
		s.SavingsRate = roundHalfUp(s.Balance.Mul(hundred).Div(s.TotalIncome))
	}
	return s
}

// ChartSeries maps expenses to chart points. Colors cycle through Palette by
// position, so the same list always gets the same colors.
func ChartSeries(expenses []model.ExpenseRecord) []model.ChartPoint {
	total := TotalOf(expenses)
	points := make([]model.ChartPoint, len(expenses))
	for i, e := range expenses {
		points[i] = model.ChartPoint{
			Name:       e.Description,
			Value:      e.Amount,
			Percentage: PercentageShare(e, total),
			Color:      Palette[i%len(Palette)],
		}
	}
	return points
}

// IncomeRows pairs each income with its share of total income.
func IncomeRows(incomes []model.IncomeRecord) []model.IncomeRow {
	total := TotalOf(incomes)
	rows := make([]model.IncomeRow, len(incomes))
	for i, r := range incomes {
		rows[i] = model.IncomeRow{
			Record:   r,
			Share:    PercentageShare(r, total),
			Explicit: explicitShare(r),
		}
	}
	return rows
}

// ExpenseRows pairs each expense with its share of total expenses.
func ExpenseRows(expenses []model.ExpenseRecord) []model.ExpenseRow {
	total := TotalOf(expenses)
	rows := make([]model.ExpenseRow, len(expenses))
	for i, r := range expenses {
		rows[i] = model.ExpenseRow{
			Record:   r,
			Share:    PercentageShare(r, total),
			Explicit: explicitShare(r),
		}
	}
	return rows
}

// ByCategory totals expenses per category, fixed first.
func ByCategory(expenses []model.ExpenseRecord) []model.CategoryTotal {
	totals := []model.CategoryTotal{
		{Category: model.Fixed, Total: decimal.Zero},
		{Category: model.Variable, Total: decimal.Zero},
	}
	for _, e := range expenses {
		idx := 0
		if e.Category == model.Variable {
			idx = 1
		}
		totals[idx].Total = totals[idx].Total.Add(e.Amount)
		totals[idx].Count++
	}
	return totals
}

// MonthlyEquivalent sums incomes with annual amounts spread over twelve
// months, rounded to the cent.
func MonthlyEquivalent(incomes []model.IncomeRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range incomes {
		amount := r.Amount
		if r.Frequency == model.Annual {
			amount = amount.Div(twelve)
		}
		total = total.Add(amount)
	}
	return total.Round(2)
}

func explicitShare(item model.Entry) bool {
	s := item.Share()
	return s.Valid && !s.Decimal.IsZero()
}

// roundHalfUp rounds to the nearest integer with ties toward positive infinity.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}
