package budget

import (
	"github.com/mitchellh/hashstructure/v2"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finplan/internal/model"
)

// Snapshot is everything a dashboard render needs, derived in one pass.
type Snapshot struct {
	Summary       model.BudgetSummary
	Incomes       []model.IncomeRow
	Expenses      []model.ExpenseRow
	Series        []model.ChartPoint
	Categories    []model.CategoryTotal
	MonthlyIncome decimal.Decimal
}

// Compute derives a Snapshot from the given records.
func Compute(incomes []model.IncomeRecord, expenses []model.ExpenseRecord) Snapshot {
	return Snapshot{
		Summary:       Summary(incomes, expenses),
		Incomes:       IncomeRows(incomes),
		Expenses:      ExpenseRows(expenses),
		Series:        ChartSeries(expenses),
		Categories:    ByCategory(expenses),
		MonthlyIncome: MonthlyEquivalent(incomes),
	}
}

// Memo remembers the last Snapshot and the content hash of the records it was
// computed from. Compute returns the cached Snapshot when the records hash the
// same. Callers must not modify the slices of a returned Snapshot.
// A Memo is owned by one goroutine.
type Memo struct {
	key   uint64
	snap  Snapshot
	valid bool
	hits  int
}

// Compute returns the Snapshot for the records, reusing the cached one when
// their content is unchanged.
func (m *Memo) Compute(incomes []model.IncomeRecord, expenses []model.ExpenseRecord) Snapshot {
	key, err := contentHash(incomes, expenses)
	if err == nil && m.valid && key == m.key {
		m.hits++
		return m.snap
	}

	snap := Compute(incomes, expenses)
	m.valid = err == nil
	m.key = key
	m.snap = snap
	return snap
}

// Hits reports how many calls were served from the cache.
func (m *Memo) Hits() int { return m.hits }

// Reset drops the cached Snapshot.
func (m *Memo) Reset() {
	*m = Memo{}
}

// recordKey is the hashable projection of a record. decimal.Decimal keeps its
// digits in unexported fields, so amounts are hashed through their strings.
type recordKey struct {
	ID         int64
	Label      string
	Class      string
	Amount     string
	Percentage string
}

type planKey struct {
	Incomes  []recordKey
	Expenses []recordKey
}

func contentHash(incomes []model.IncomeRecord, expenses []model.ExpenseRecord) (uint64, error) {
	k := planKey{
		Incomes:  make([]recordKey, len(incomes)),
		Expenses: make([]recordKey, len(expenses)),
	}
	for i, r := range incomes {
		k.Incomes[i] = recordKey{
			ID:         r.ID,
			Label:      r.Source,
			Class:      string(r.Frequency),
			Amount:     r.Amount.String(),
			Percentage: nullString(r.Percentage),
		}
	}
	for i, r := range expenses {
		k.Expenses[i] = recordKey{
			ID:         r.ID,
			Label:      r.Description,
			Class:      string(r.Category),
			Amount:     r.Amount.String(),
			Percentage: nullString(r.Percentage),
		}
	}
	return hashstructure.Hash(k, hashstructure.FormatV2, nil)
}

func nullString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
