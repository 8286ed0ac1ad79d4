// Package store persists plan records in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/finplan/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when an update or delete matches no record.
var ErrNotFound = errors.New("record not found")

// Store is a SQLite-backed set of named plans.
type Store struct {
	db *sql.DB
}

// Open opens or creates the plan database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening plan db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	log.WithField("path", dbPath).Debug("plan store opened")
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListIncomes returns the incomes of a plan in insertion order.
func (s *Store) ListIncomes(plan string) ([]model.IncomeRecord, error) {
	rows, err := s.db.Query(`SELECT id, source, amount, frequency, percentage
		FROM incomes WHERE plan = ? ORDER BY id`, plan)
	if err != nil {
		return nil, fmt.Errorf("listing incomes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.IncomeRecord
	for rows.Next() {
		var r model.IncomeRecord
		var amount, freq string
		var pct sql.NullString
		if err := rows.Scan(&r.ID, &r.Source, &amount, &freq, &pct); err != nil {
			return nil, err
		}
		if r.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("income %d amount: %w", r.ID, err)
		}
		if r.Percentage, err = scanShare(pct); err != nil {
			return nil, fmt.Errorf("income %d percentage: %w", r.ID, err)
		}
		r.Frequency, _ = model.ParseFrequency(freq)
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListExpenses returns the expenses of a plan in insertion order.
func (s *Store) ListExpenses(plan string) ([]model.ExpenseRecord, error) {
	rows, err := s.db.Query(`SELECT id, category, description, amount, percentage
		FROM expenses WHERE plan = ? ORDER BY id`, plan)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.ExpenseRecord
	for rows.Next() {
		var r model.ExpenseRecord
		var amount, cat string
		var pct sql.NullString
		if err := rows.Scan(&r.ID, &cat, &r.Description, &amount, &pct); err != nil {
			return nil, err
		}
		if r.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("expense %d amount: %w", r.ID, err)
		}
		if r.Percentage, err = scanShare(pct); err != nil {
			return nil, fmt.Errorf("expense %d percentage: %w", r.ID, err)
		}
		r.Category, _ = model.ParseCategory(cat)
		out = append(out, r)
	}
	return out, rows.Err()
}

// AddIncome inserts an income into plan and returns it with its new ID.
func (s *Store) AddIncome(plan string, r model.IncomeRecord) (model.IncomeRecord, error) {
	id, err := insertIncome(s.db, plan, r)
	if err != nil {
		return r, err
	}
	r.ID = id
	log.WithFields(log.Fields{"plan": plan, "id": id}).Debug("income added")
	return r, nil
}

// AddExpense inserts an expense into plan and returns it with its new ID.
func (s *Store) AddExpense(plan string, r model.ExpenseRecord) (model.ExpenseRecord, error) {
	id, err := insertExpense(s.db, plan, r)
	if err != nil {
		return r, err
	}
	r.ID = id
	log.WithFields(log.Fields{"plan": plan, "id": id}).Debug("expense added")
	return r, nil
}

// UpdateIncome overwrites the income with r.ID.
func (s *Store) UpdateIncome(plan string, r model.IncomeRecord) error {
	res, err := s.db.Exec(`UPDATE incomes SET source = ?, amount = ?, frequency = ?, percentage = ?
		WHERE plan = ? AND id = ?`,
		r.Source, r.Amount.String(), string(frequencyOrDefault(r.Frequency)), shareValue(r.Percentage), plan, r.ID)
	if err != nil {
		return fmt.Errorf("updating income %d: %w", r.ID, err)
	}
	return expectOne(res, "income", r.ID)
}

// UpdateExpense overwrites the expense with r.ID.
func (s *Store) UpdateExpense(plan string, r model.ExpenseRecord) error {
	res, err := s.db.Exec(`UPDATE expenses SET category = ?, description = ?, amount = ?, percentage = ?
		WHERE plan = ? AND id = ?`,
		string(categoryOrDefault(r.Category)), r.Description, r.Amount.String(), shareValue(r.Percentage), plan, r.ID)
	if err != nil {
		return fmt.Errorf("updating expense %d: %w", r.ID, err)
	}
	return expectOne(res, "expense", r.ID)
}

// DeleteIncome removes an income.
func (s *Store) DeleteIncome(plan string, id int64) error {
	res, err := s.db.Exec("DELETE FROM incomes WHERE plan = ? AND id = ?", plan, id)
	if err != nil {
		return fmt.Errorf("deleting income %d: %w", id, err)
	}
	return expectOne(res, "income", id)
}

// DeleteExpense removes an expense.
func (s *Store) DeleteExpense(plan string, id int64) error {
	res, err := s.db.Exec("DELETE FROM expenses WHERE plan = ? AND id = ?", plan, id)
	if err != nil {
		return fmt.Errorf("deleting expense %d: %w", id, err)
	}
	return expectOne(res, "expense", id)
}

// Import inserts a batch of records into plan in a single transaction.
func (s *Store) Import(plan string, incomes []model.IncomeRecord, expenses []model.ExpenseRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, r := range incomes {
		if _, err := insertIncome(tx, plan, r); err != nil {
			return err
		}
	}
	for _, r := range expenses {
		if _, err := insertExpense(tx, plan, r); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}

	log.WithFields(log.Fields{
		"plan":     plan,
		"incomes":  len(incomes),
		"expenses": len(expenses),
	}).Debug("records imported")
	return nil
}

// Plans lists every plan that has at least one record.
func (s *Store) Plans() ([]model.PlanInfo, error) {
	rows, err := s.db.Query(`SELECT plan, SUM(inc), SUM(exp) FROM (
			SELECT plan, 1 AS inc, 0 AS exp FROM incomes
			UNION ALL
			SELECT plan, 0, 1 FROM expenses
		) GROUP BY plan ORDER BY plan`)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.PlanInfo
	for rows.Next() {
		var p model.PlanInfo
		if err := rows.Scan(&p.Name, &p.Incomes, &p.Expenses); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertIncome(db execer, plan string, r model.IncomeRecord) (int64, error) {
	res, err := db.Exec(`INSERT INTO incomes (plan, source, amount, frequency, percentage, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		plan, r.Source, r.Amount.String(), string(frequencyOrDefault(r.Frequency)), shareValue(r.Percentage), now())
	if err != nil {
		return 0, fmt.Errorf("inserting income: %w", err)
	}
	return res.LastInsertId()
}

func insertExpense(db execer, plan string, r model.ExpenseRecord) (int64, error) {
	res, err := db.Exec(`INSERT INTO expenses (plan, category, description, amount, percentage, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		plan, string(categoryOrDefault(r.Category)), r.Description, r.Amount.String(), shareValue(r.Percentage), now())
	if err != nil {
		return 0, fmt.Errorf("inserting expense: %w", err)
	}
	return res.LastInsertId()
}

func expectOne(res sql.Result, kind string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return nil
}

func shareValue(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.String()
}

func scanShare(s sql.NullString) (decimal.NullDecimal, error) {
	if !s.Valid || s.String == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

func frequencyOrDefault(f model.Frequency) model.Frequency {
	if f == "" {
		return model.Monthly
	}
	return f
}

func categoryOrDefault(c model.Category) model.Category {
	if c == "" {
		return model.Fixed
	}
	return c
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
