package editfield

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finplan/internal/numfmt"
)

// Percent is a percentage field with two buffer forms. While focused the
// buffer holds what the user typed ("12,5"); on blur it is replaced by the
// display form ("12,50%"). The canonical value follows every keystroke.
type Percent struct {
	policy numfmt.Policy
	opts   Options
	mode   Mode
	value  decimal.NullDecimal
	text   string
}

// NewPercent returns a percentage field in Display mode holding value.
func NewPercent(policy numfmt.Policy, value decimal.NullDecimal, opts Options) *Percent {
	p := &Percent{policy: policy, opts: opts, mode: Display}
	p.SetValue(value)
	return p
}

// Render formats v for the given mode. In Edit mode an absent value renders
// as "0"; in Display mode it renders as "".
func (p *Percent) Render(v decimal.NullDecimal, m Mode) string {
	if m == Edit {
		if !v.Valid {
			return p.policy.EditPercent(decimal.Zero)
		}
		return p.policy.EditPercent(v.Decimal)
	}
	if !v.Valid {
		return ""
	}
	return p.policy.Percent(v.Decimal)
}

// Parse converts buffer text to a canonical percentage.
func (p *Percent) Parse(text string) decimal.Decimal {
	return p.policy.ParsePercent(text)
}

// Keystroke stores raw as the buffer and parses it into the value. A keystroke
// on an unfocused field enters Edit mode first.
func (p *Percent) Keystroke(raw string) Result {
	if p.opts.Disabled {
		return p.result()
	}
	p.mode = Next(p.mode, EventFocus)
	p.value = decimal.NewNullDecimal(p.Parse(raw))
	p.text = raw
	return p.result()
}

// Focus switches to the edit form.
func (p *Percent) Focus() string {
	return p.transition(EventFocus)
}

// Blur switches to the display form.
func (p *Percent) Blur() string {
	return p.transition(EventBlur)
}

// SetValue replaces the canonical value and re-renders the buffer for the
// current mode.
func (p *Percent) SetValue(v decimal.NullDecimal) {
	p.value = v
	p.text = p.Render(v, p.mode)
}

func (p *Percent) Value() decimal.NullDecimal { return p.value }
func (p *Percent) Text() string               { return p.text }
func (p *Percent) View() string               { return view(p.text, p.opts.Placeholder) }
func (p *Percent) Mode() Mode                 { return p.mode }
func (p *Percent) Disabled() bool             { return p.opts.Disabled }

func (p *Percent) transition(e Event) string {
	if p.opts.Disabled {
		return p.text
	}
	next := Next(p.mode, e)
	if next != p.mode {
		p.mode = next
		p.text = p.Render(p.value, p.mode)
	}
	return p.text
}

func (p *Percent) result() Result {
	return Result{Text: p.text, Value: p.value}
}
