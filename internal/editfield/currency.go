package editfield

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finplan/internal/numfmt"
)

// Currency is a cents-first money field. Every keystroke re-parses the whole
// buffer and re-renders it, so the buffer is always a normalized currency
// string: typing "1", "2", "3", "4" shows "R$ 0,01" ... "R$ 12,34".
type Currency struct {
	policy numfmt.Policy
	opts   Options
	value  decimal.NullDecimal
	text   string
}

// NewCurrency returns a currency field holding value.
func NewCurrency(policy numfmt.Policy, value decimal.NullDecimal, opts Options) *Currency {
	if opts.Prefix != "" {
		policy = policy.WithPrefix(opts.Prefix)
	}
	c := &Currency{policy: policy, opts: opts}
	c.SetValue(value)
	return c
}

// Render formats v for the buffer. An absent value renders as "".
func (c *Currency) Render(v decimal.NullDecimal) string {
	if !v.Valid {
		return ""
	}
	return c.policy.Currency(v.Decimal)
}

// Parse converts buffer text to a canonical amount.
func (c *Currency) Parse(text string) decimal.Decimal {
	return numfmt.ParseCents(text)
}

// Keystroke replaces the buffer with raw, as edited by the user.
func (c *Currency) Keystroke(raw string) Result {
	if c.opts.Disabled {
		return c.result()
	}
	c.value = decimal.NewNullDecimal(c.Parse(raw))
	c.text = c.Render(c.value)
	return c.result()
}

// Focus has no effect on a currency buffer.
func (c *Currency) Focus() string { return c.text }

// Blur has no effect on a currency buffer.
func (c *Currency) Blur() string { return c.text }

// SetValue replaces the canonical value, rounded to the cent, and re-renders
// the buffer.
func (c *Currency) SetValue(v decimal.NullDecimal) {
	if v.Valid {
		v.Decimal = v.Decimal.Round(2)
	}
	c.value = v
	c.text = c.Render(v)
}

func (c *Currency) Value() decimal.NullDecimal { return c.value }
func (c *Currency) Text() string               { return c.text }
func (c *Currency) View() string               { return view(c.text, c.opts.Placeholder) }
func (c *Currency) Mode() Mode                 { return Display }
func (c *Currency) Disabled() bool             { return c.opts.Disabled }

func (c *Currency) result() Result {
	return Result{Text: c.text, Value: c.value}
}
