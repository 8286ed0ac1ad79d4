package editfield

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/theirongolddev/finplan/internal/numfmt"
)

func some(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestCurrency_AbsentValueRendersEmpty(t *testing.T) {
	c := NewCurrency(numfmt.BRL, decimal.NullDecimal{}, Options{Placeholder: "R$ 0,00"})

	assert.Equal(t, "", c.Text())
	assert.Equal(t, "R$ 0,00", c.View())
	assert.False(t, c.Value().Valid)
}

func TestCurrency_TypingDigitByDigit(t *testing.T) {
	c := NewCurrency(numfmt.BRL, decimal.NullDecimal{}, Options{})

	want := []string{"R$ 0,01", "R$ 0,12", "R$ 1,23", "R$ 12,34", "R$ 123,45"}
	for i, d := range "12345" {
		res := c.Keystroke(c.Text() + string(d))
		assert.Equal(t, want[i], res.Text, "after keystroke %d", i)
	}

	require.True(t, c.Value().Valid)
	assert.True(t, c.Value().Decimal.Equal(decimal.RequireFromString("123.45")), "got %s", c.Value().Decimal)
}

func TestCurrency_RawDigitSequence(t *testing.T) {
	c := NewCurrency(numfmt.BRL, decimal.NullDecimal{}, Options{})
	res := c.Keystroke("12345")

	assert.Equal(t, "R$ 123,45", res.Text)
	assert.True(t, res.Value.Decimal.Equal(decimal.RequireFromString("123.45")))
}

func TestCurrency_BackspaceShiftsRight(t *testing.T) {
	c := NewCurrency(numfmt.BRL, some("12.34"), Options{})
	require.Equal(t, "R$ 12,34", c.Text())

	res := c.Keystroke("R$ 12,3")
	assert.Equal(t, "R$ 1,23", res.Text)
}

func TestCurrency_ClearingGivesZero(t *testing.T) {
	c := NewCurrency(numfmt.BRL, some("50"), Options{})
	res := c.Keystroke("")

	require.True(t, res.Value.Valid)
	assert.True(t, res.Value.Decimal.IsZero())
	assert.Equal(t, "R$ 0,00", res.Text)
}

func TestCurrency_JunkIsDiscarded(t *testing.T) {
	c := NewCurrency(numfmt.BRL, decimal.NullDecimal{}, Options{})
	res := c.Keystroke("-a1b0c0")

	assert.Equal(t, "R$ 1,00", res.Text)
}

func TestCurrency_GroupsThousands(t *testing.T) {
	c := NewCurrency(numfmt.BRL, some("1234567.8"), Options{})
	assert.Equal(t, "R$ 1.234.567,80", c.Text())
}

func TestCurrency_PrefixOverride(t *testing.T) {
	c := NewCurrency(numfmt.BRL, some("10"), Options{Prefix: "BRL "})
	assert.Equal(t, "BRL 10,00", c.Text())

	res := c.Keystroke("BRL 10,005")
	assert.Equal(t, "BRL 100,05", res.Text)
}

func TestCurrency_FocusBlurLeaveBufferAlone(t *testing.T) {
	c := NewCurrency(numfmt.BRL, some("7.5"), Options{})

	assert.Equal(t, "R$ 7,50", c.Focus())
	assert.Equal(t, Display, c.Mode())
	assert.Equal(t, "R$ 7,50", c.Blur())
}

func TestCurrency_Disabled(t *testing.T) {
	c := NewCurrency(numfmt.BRL, some("7.5"), Options{Disabled: true})
	res := c.Keystroke("999")

	assert.Equal(t, "R$ 7,50", res.Text)
	assert.True(t, res.Value.Decimal.Equal(decimal.RequireFromString("7.5")))
	assert.True(t, c.Disabled())
}

func TestCurrency_SetValueInvalidatesBuffer(t *testing.T) {
	c := NewCurrency(numfmt.BRL, some("1"), Options{})
	c.SetValue(some("2500"))
	assert.Equal(t, "R$ 2.500,00", c.Text())

	c.SetValue(decimal.NullDecimal{})
	assert.Equal(t, "", c.Text())
}

func TestCurrency_SetValueRoundsToCent(t *testing.T) {
	c := NewCurrency(numfmt.BRL, some("0.005"), Options{})
	assert.True(t, c.Value().Decimal.Equal(decimal.RequireFromString("0.01")))

	c.SetValue(some("1234.567"))
	assert.Equal(t, "R$ 1.234,57", c.Text())
	assert.True(t, c.Value().Decimal.Equal(c.Parse(c.Text())))
}

func TestProperty_CurrencyRenderParse(t *testing.T) {
	c := NewCurrency(numfmt.BRL, decimal.NullDecimal{}, Options{})
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.Int64Range(0, 1_000_000_000_00).Draw(t, "cents")
		v := decimal.New(cents, -2)

		text := c.Render(decimal.NewNullDecimal(v))
		if got := c.Parse(text); !got.Equal(v) {
			t.Fatalf("Parse(Render(%s)) = %s (text %q)", v, got, text)
		}
	})
}
