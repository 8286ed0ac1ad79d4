package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/theirongolddev/finplan/internal/model"
)

func drawExpenses(t *rapid.T) []model.ExpenseRecord {
	cents := rapid.SliceOfN(rapid.Int64Range(1, 10_000_000), 1, 30).Draw(t, "cents")
	expenses := make([]model.ExpenseRecord, len(cents))
	for i, c := range cents {
		expenses[i] = model.ExpenseRecord{Amount: decimal.New(c, -2)}
	}
	return expenses
}

func TestProperty_DerivedSharesSumNear100(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		expenses := drawExpenses(t)
		total := TotalOf(expenses)

		sum := decimal.Zero
		for _, e := range expenses {
			sum = sum.Add(PercentageShare(e, total))
		}

		drift := sum.Sub(decimal.NewFromInt(100)).Abs()
		bound := decimal.NewFromInt(int64(len(expenses) - 1))
		if drift.GreaterThan(bound) {
			t.Fatalf("shares of %d items sum to %s", len(expenses), sum)
		}
	})
}

func TestProperty_SavingsRateIsWholeAndFinite(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		income := rapid.Int64Range(0, 100_000_000).Draw(t, "income")
		incomes := []model.IncomeRecord{{Amount: decimal.New(income, -2)}}
		s := Summary(incomes, drawExpenses(t))

		if !s.SavingsRate.Equal(s.SavingsRate.Truncate(0)) {
			t.Fatalf("savings rate %s is not whole", s.SavingsRate)
		}
		if income == 0 && !s.SavingsRate.IsZero() {
			t.Fatalf("savings rate %s without income", s.SavingsRate)
		}
	})
}

func TestProperty_MemoMatchesCompute(t *testing.T) {
	var m Memo
	rapid.Check(t, func(t *rapid.T) {
		expenses := drawExpenses(t)
		incomes := []model.IncomeRecord{{Amount: decimal.NewFromInt(rapid.Int64Range(0, 50_000).Draw(t, "income"))}}

		got := m.Compute(incomes, expenses)
		want := Compute(incomes, expenses)
		if !got.Summary.Balance.Equal(want.Summary.Balance) || len(got.Series) != len(want.Series) {
			t.Fatalf("memo returned a stale snapshot")
		}
	})
}
