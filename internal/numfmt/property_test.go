package numfmt

import (
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

func TestProperty_CurrencyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.Int64Range(0, 99_999_999_999).Draw(t, "cents")
		v := decimal.New(cents, -2)

		got := ParseCents(BRL.Currency(v))
		if !got.Equal(v) {
			t.Fatalf("round-trip failed: %s -> %q -> %s", v, BRL.Currency(v), got)
		}
	})
}

func TestProperty_PercentEditRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hundredths := rapid.Int64Range(-1_000_000, 1_000_000).Draw(t, "hundredths")
		v := decimal.New(hundredths, -2)

		if got := BRL.ParsePercent(BRL.EditPercent(v)); !got.Equal(v) {
			t.Fatalf("edit form %q parsed to %s, want %s", BRL.EditPercent(v), got, v)
		}
		if got := BRL.ParsePercent(BRL.Percent(v)); !got.Equal(v) {
			t.Fatalf("display form %q parsed to %s, want %s", BRL.Percent(v), got, v)
		}
	})
}
