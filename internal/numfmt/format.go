package numfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Fixed formats d with exactly places fractional digits and a grouped integer
// part, e.g. 1234.5 -> "1.234,50" under BRL.
func (p Policy) Fixed(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(p.group(intPart))
	if places > 0 {
		b.WriteRune(p.Decimal)
		b.WriteString(frac)
	}
	return b.String()
}

// Currency formats d as money with the policy prefix: "R$ 1.234,56".
// Negative values carry the sign before the prefix: "-R$ 10,00".
func (p Policy) Currency(d decimal.Decimal) string {
	rounded := d.Round(2)
	if rounded.IsNegative() {
		return "-" + p.CurrencyPrefix + p.Fixed(rounded.Neg(), 2)
	}
	return p.CurrencyPrefix + p.Fixed(rounded, 2)
}

// Percent formats d in display form: two decimals and a trailing "%".
func (p Policy) Percent(d decimal.Decimal) string {
	return p.Fixed(d, 2) + "%"
}

// WholePercent formats an integral share without decimals: "65%".
func (p Policy) WholePercent(d decimal.Decimal) string {
	return p.Fixed(d, 0) + "%"
}

// EditPercent formats d in edit form: the shortest exact representation using
// the policy decimal separator, no grouping and no suffix. 12.5 -> "12,5", 0 -> "0".
func (p Policy) EditPercent(d decimal.Decimal) string {
	return strings.Replace(d.String(), ".", string(p.Decimal), 1)
}

// group inserts the thousands separator into a run of digits.
func (p Policy) group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	remainder := len(digits) % 3
	if remainder > 0 {
		b.WriteString(digits[:remainder])
	}
	for i := remainder; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune(p.Thousands)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
