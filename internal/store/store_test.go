package store

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/finplan/internal/model"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "plans.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestStore_IncomeRoundTrip(t *testing.T) {
	s := openTemp(t)

	added, err := s.AddIncome("default", model.IncomeRecord{
		Source:     "Salário",
		Amount:     dec("5000.00"),
		Frequency:  model.Annual,
		Percentage: decimal.NewNullDecimal(dec("12.5")),
	})
	require.NoError(t, err)
	assert.NotZero(t, added.ID)

	got, err := s.ListIncomes("default")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, added.ID, got[0].ID)
	assert.Equal(t, "Salário", got[0].Source)
	assert.True(t, got[0].Amount.Equal(dec("5000")))
	assert.Equal(t, model.Annual, got[0].Frequency)
	require.True(t, got[0].Percentage.Valid)
	assert.True(t, got[0].Percentage.Decimal.Equal(dec("12.5")))
}

func TestStore_ExpenseDefaultsAndOrder(t *testing.T) {
	s := openTemp(t)

	_, err := s.AddExpense("default", model.ExpenseRecord{Description: "Aluguel", Amount: dec("1500")})
	require.NoError(t, err)
	_, err = s.AddExpense("default", model.ExpenseRecord{Description: "Alimentação", Amount: dec("800"), Category: model.Variable})
	require.NoError(t, err)

	got, err := s.ListExpenses("default")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Aluguel", got[0].Description)
	assert.Equal(t, model.Fixed, got[0].Category)
	assert.False(t, got[0].Percentage.Valid)
	assert.Equal(t, model.Variable, got[1].Category)
}

func TestStore_PlansAreIsolated(t *testing.T) {
	s := openTemp(t)

	_, err := s.AddIncome("alice", model.IncomeRecord{Source: "A", Amount: dec("1")})
	require.NoError(t, err)
	_, err = s.AddExpense("bob", model.ExpenseRecord{Description: "B", Amount: dec("2")})
	require.NoError(t, err)

	inc, err := s.ListIncomes("bob")
	require.NoError(t, err)
	assert.Empty(t, inc)

	plans, err := s.Plans()
	require.NoError(t, err)
	assert.Equal(t, []model.PlanInfo{
		{Name: "alice", Incomes: 1, Expenses: 0},
		{Name: "bob", Incomes: 0, Expenses: 1},
	}, plans)
}

func TestStore_UpdateAndDelete(t *testing.T) {
	s := openTemp(t)

	e, err := s.AddExpense("default", model.ExpenseRecord{Description: "Luz", Amount: dec("120")})
	require.NoError(t, err)

	e.Amount = dec("135.40")
	e.Percentage = decimal.NewNullDecimal(dec("42"))
	require.NoError(t, s.UpdateExpense("default", e))

	got, err := s.ListExpenses("default")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(dec("135.4")))
	assert.True(t, got[0].Percentage.Decimal.Equal(dec("42")))

	require.NoError(t, s.DeleteExpense("default", e.ID))
	got, err = s.ListExpenses("default")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_NotFound(t *testing.T) {
	s := openTemp(t)

	assert.ErrorIs(t, s.DeleteIncome("default", 99), ErrNotFound)
	assert.ErrorIs(t, s.UpdateExpense("default", model.ExpenseRecord{ID: 99}), ErrNotFound)

	in, err := s.AddIncome("default", model.IncomeRecord{Source: "X", Amount: dec("1")})
	require.NoError(t, err)
	assert.ErrorIs(t, s.DeleteIncome("other", in.ID), ErrNotFound)
}

func TestStore_Import(t *testing.T) {
	s := openTemp(t)

	err := s.Import("default",
		[]model.IncomeRecord{{Source: "Salário", Amount: dec("5000")}},
		[]model.ExpenseRecord{
			{Description: "Aluguel", Amount: dec("1500")},
			{Description: "Alimentação", Amount: dec("800")},
		})
	require.NoError(t, err)

	inc, err := s.ListIncomes("default")
	require.NoError(t, err)
	exp, err := s.ListExpenses("default")
	require.NoError(t, err)
	assert.Len(t, inc, 1)
	assert.Len(t, exp, 2)
	assert.Equal(t, model.Monthly, inc[0].Frequency)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.AddIncome("default", model.IncomeRecord{Source: "S", Amount: dec("10")})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	inc, err := s.ListIncomes("default")
	require.NoError(t, err)
	assert.Len(t, inc, 1)
}
