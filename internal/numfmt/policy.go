// Package numfmt formats and parses locale-aware currency and percentage text.
//
// All functions are pure. Formatting never loses precision because values are
// carried as decimal.Decimal; parsing never fails and degrades to zero instead.
package numfmt

// Policy holds the separators and currency prefix used to render numbers.
// It is passed explicitly to every formatter and edit field.
type Policy struct {
	CurrencyPrefix string
	Decimal        rune
	Thousands      rune
}

// BRL is the Brazilian Portuguese policy: "R$ 1.234,56" and "12,50%".
var BRL = Policy{
	CurrencyPrefix: "R$ ",
	Decimal:        ',',
	Thousands:      '.',
}

// WithPrefix returns a copy of p with the currency prefix replaced.
func (p Policy) WithPrefix(prefix string) Policy {
	p.CurrencyPrefix = prefix
	return p
}
