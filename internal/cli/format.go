// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finplan/internal/numfmt"
)

// FormatShare formats a per-item share. Shares stored on a record keep two
// decimals ("42,00%"); computed shares are whole points ("65%").
func FormatShare(p numfmt.Policy, share decimal.Decimal, explicit bool) string {
	if explicit {
		return p.Percent(share)
	}
	return p.WholePercent(share)
}

// FormatCount groups an integer with the policy thousands separator.
// e.g., 1234567 -> "1.234.567"
func FormatCount(p numfmt.Policy, n int) string {
	return p.Fixed(decimal.NewFromInt(int64(n)), 0)
}

// FormatBalance formats a balance with an explicit sign for non-zero values.
func FormatBalance(p numfmt.Policy, d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + p.Currency(d)
	}
	return p.Currency(d)
}

// Truncate shortens s to at most width display cells, ending with "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > width-1 {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + "…"
}
