package numfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Digits returns the ASCII decimal digits of s in order.
func Digits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// ParseCents reads s as cents-first currency text. Everything that is not a
// digit is dropped (signs, separators, prefix) and the remaining digits are an
// integer number of cents, so "1234" and "R$ 12,34" both give 12.34.
// Input without digits gives exactly zero.
func ParseCents(s string) decimal.Decimal {
	digits := Digits(s)
	if digits == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero
	}
	return d.Shift(-2)
}

// ParsePercent reads percentage text leniently. Only digits, the decimal
// separator and '-' are kept; the separator becomes '.', and the longest
// leading number is used. Anything unparseable gives zero.
func (p Policy) ParsePercent(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == p.Decimal:
			b.WriteByte('.')
		}
	}
	return parseLeadingNumber(b.String())
}

// parseLeadingNumber parses the leading "-?digits[.digits]" run of s.
// "12.5.3" -> 12.5, "7-2" -> 7, "-" -> 0, ".5" -> 0.5.
func parseLeadingNumber(s string) decimal.Decimal {
	i := 0
	neg := false
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[start:i]

	frac := ""
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		frac = s[i+1 : j]
	}

	if intPart == "" && frac == "" {
		return decimal.Zero
	}
	if intPart == "" {
		intPart = "0"
	}
	num := intPart
	if frac != "" {
		num += "." + frac
	}

	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero
	}
	if neg {
		d = d.Neg()
	}
	return d
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
