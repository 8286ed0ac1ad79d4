// Package model defines the record and summary types of a financial plan.
package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Frequency is how often an income is received.
type Frequency string

const (
	Monthly Frequency = "monthly"
	Annual  Frequency = "annual"
)

// ParseFrequency accepts "monthly"/"annual" and their pt-BR labels.
func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case "", "monthly", "mensal":
		return Monthly, nil
	case "annual", "yearly", "anual":
		return Annual, nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// Label returns the pt-BR display label.
func (f Frequency) Label() string {
	if f == Annual {
		return "Anual"
	}
	return "Mensal"
}

// Category classifies an expense.
type Category string

const (
	Fixed    Category = "fixed"
	Variable Category = "variable"
)

// ParseCategory accepts "fixed"/"variable" and their pt-BR labels.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "", "fixed", "fixa", "fixo":
		return Fixed, nil
	case "variable", "variavel", "variável":
		return Variable, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Label returns the pt-BR display label.
func (c Category) Label() string {
	if c == Variable {
		return "Variável"
	}
	return "Fixa"
}

// Entry is the part of a record the budget aggregation reads.
type Entry interface {
	// AmountValue returns the monetary amount.
	AmountValue() decimal.Decimal
	// Share returns the user-supplied percentage, if any.
	Share() decimal.NullDecimal
}

// IncomeRecord is one source of income in a plan.
type IncomeRecord struct {
	ID         int64
	Source     string
	Amount     decimal.Decimal
	Frequency  Frequency
	Percentage decimal.NullDecimal
}

func (r IncomeRecord) AmountValue() decimal.Decimal { return r.Amount }
func (r IncomeRecord) Share() decimal.NullDecimal   { return r.Percentage }

// ExpenseRecord is one planned expense.
type ExpenseRecord struct {
	ID          int64
	Category    Category
	Description string
	Amount      decimal.Decimal
	Percentage  decimal.NullDecimal
}

func (r ExpenseRecord) AmountValue() decimal.Decimal { return r.Amount }
func (r ExpenseRecord) Share() decimal.NullDecimal   { return r.Percentage }

// PlanInfo describes a stored plan.
type PlanInfo struct {
	Name     string
	Incomes  int
	Expenses int
}
