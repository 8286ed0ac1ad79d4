package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finplan/internal/editfield"
	"github.com/theirongolddev/finplan/internal/numfmt"
)

// NumInput is a text input whose buffer is normalized by an edit field after
// every change. Focus and blur are forwarded so percentage fields switch
// between their edit and display forms.
type NumInput struct {
	input textinput.Model
	field editfield.Field
}

// NewCurrencyInput returns a cents-first money input.
func NewCurrencyInput(p numfmt.Policy, value decimal.NullDecimal, opts editfield.Options) NumInput {
	return newNumInput(editfield.NewCurrency(p, value, opts), opts)
}

// NewPercentInput returns a percentage input.
func NewPercentInput(p numfmt.Policy, value decimal.NullDecimal, opts editfield.Options) NumInput {
	return newNumInput(editfield.NewPercent(p, value, opts), opts)
}

func newNumInput(f editfield.Field, opts editfield.Options) NumInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = 32
	ti.Width = 20
	ti.SetValue(f.Text())
	return NumInput{input: ti, field: f}
}

// Update handles key messages while focused.
func (n NumInput) Update(msg tea.Msg) (NumInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && n.field.Disabled() {
		return n, nil
	}

	before := n.input.Value()
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	if after := n.input.Value(); after != before {
		res := n.field.Keystroke(after)
		n.input.SetValue(res.Text)
		n.input.CursorEnd()
	}
	return n, cmd
}

// Focus puts the field in edit form and focuses the text input.
func (n *NumInput) Focus() tea.Cmd {
	if n.field.Disabled() {
		return nil
	}
	n.input.SetValue(n.field.Focus())
	n.input.CursorEnd()
	return n.input.Focus()
}

// Blur returns the field to display form.
func (n *NumInput) Blur() {
	n.input.SetValue(n.field.Blur())
	n.input.Blur()
}

// SetValue replaces the value from outside the input.
func (n *NumInput) SetValue(v decimal.NullDecimal) {
	n.field.SetValue(v)
	n.input.SetValue(n.field.Text())
	n.input.CursorEnd()
}

// Value returns the canonical value.
func (n NumInput) Value() decimal.NullDecimal { return n.field.Value() }

// Text returns the current buffer.
func (n NumInput) Text() string { return n.field.Text() }

// Focused reports whether the input has focus.
func (n NumInput) Focused() bool { return n.input.Focused() }

// SetWidth sets the visible width of the input.
func (n *NumInput) SetWidth(w int) { n.input.Width = w }

// View renders the input.
func (n NumInput) View() string {
	if !n.input.Focused() {
		return n.field.View()
	}
	return n.input.View()
}
