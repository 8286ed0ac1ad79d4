// Package editfield keeps a user-edited text buffer in sync with a canonical
// decimal value owned by the caller.
//
// Two specializations share one contract: Currency (cents-first typing, always
// in display form) and Percent (edit form while focused, display form
// otherwise). Malformed text never produces an error; it degrades to zero.
package editfield

import "github.com/shopspring/decimal"

// Mode is the textual form the buffer is currently in.
type Mode int

const (
	// Display shows the fully formatted value ("12,50%").
	Display Mode = iota
	// Edit shows the raw editable value ("12,5").
	Edit
)

func (m Mode) String() string {
	if m == Edit {
		return "edit"
	}
	return "display"
}

// Event is a focus transition delivered by the host UI.
type Event int

const (
	EventFocus Event = iota
	EventBlur
)

// Next returns the mode reached from m after e.
func Next(m Mode, e Event) Mode {
	switch e {
	case EventFocus:
		return Edit
	case EventBlur:
		return Display
	}
	return m
}

// Options are per-field settings.
type Options struct {
	// Prefix replaces the policy currency prefix when non-empty.
	Prefix string
	// Placeholder is shown by View while the buffer is empty.
	Placeholder string
	// Disabled turns keystrokes, focus and blur into no-ops.
	Disabled bool
}

// Result is the field state after a keystroke.
type Result struct {
	Text  string
	Value decimal.NullDecimal
}

// Field is the contract shared by Currency and Percent.
type Field interface {
	Keystroke(raw string) Result
	Focus() string
	Blur() string
	SetValue(v decimal.NullDecimal)
	Value() decimal.NullDecimal
	Text() string
	View() string
	Mode() Mode
	Disabled() bool
}

var (
	_ Field = (*Currency)(nil)
	_ Field = (*Percent)(nil)
)

// Amount returns the value of f, treating an absent value as zero.
func Amount(f Field) decimal.Decimal {
	v := f.Value()
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

func view(text, placeholder string) string {
	if text == "" {
		return placeholder
	}
	return text
}
