package source

import "github.com/shopspring/decimal"

// RawRecord is a single line of a plan import file.
//
// Amounts and percentages accept JSON numbers or decimal strings.
type RawRecord struct {
	Kind        string              `json:"kind"`
	Source      string              `json:"source,omitempty"`
	Frequency   string              `json:"frequency,omitempty"`
	Category    string              `json:"category,omitempty"`
	Description string              `json:"description,omitempty"`
	Amount      *decimal.Decimal    `json:"amount"`
	Percentage  decimal.NullDecimal `json:"percentage"`
}

// DiscoveredFile is an import file found on disk.
type DiscoveredFile struct {
	Path string
	Plan string // file name without extension
}
