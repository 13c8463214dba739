package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/molemath/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for entering a whole number in
// [Min, Max]. Non-digit keys are swallowed.
type NumberInput struct {
	Model    textinput.Model
	Min      int
	Max      int
	rejected bool
}

// NewNumberInput creates a blurred number input.
func NewNumberInput(placeholder string, minValue, maxValue int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = len(strconv.Itoa(maxValue))

	return NumberInput{
		Model: ti,
		Min:   minValue,
		Max:   maxValue,
	}
}

// Focus clears the input and gives it the cursor.
func (n NumberInput) Focus() (NumberInput, tea.Cmd) {
	n.Model.Reset()
	n.rejected = false
	return n, n.Model.Focus()
}

// Blur removes the cursor.
func (n NumberInput) Blur() NumberInput {
	n.Model.Blur()
	return n
}

// Focused reports whether the input has the cursor.
func (n NumberInput) Focused() bool {
	return n.Model.Focused()
}

// Update handles messages.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
		n.rejected = false
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// Submit parses the value. ok is false for an empty or out-of-range value,
// which is then flagged in the view.
func (n *NumberInput) Submit() (value int, ok bool) {
	v, err := strconv.Atoi(n.Model.Value())
	if err != nil || v < n.Min || v > n.Max {
		n.rejected = true
		return 0, false
	}
	return v, true
}

// View renders the input.
func (n NumberInput) View() string {
	view := n.Model.View()
	if n.rejected {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}
