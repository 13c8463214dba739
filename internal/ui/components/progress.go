package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/molemath/internal/ui/theme"
)

// lowTimeSeconds turns the bar red.
const lowTimeSeconds = 10

// TimeBar displays the remaining session time as a draining bar.
type TimeBar struct {
	Remaining int
	Total     int
	Width     int
}

// NewTimeBar creates a new time bar.
func NewTimeBar(remaining, total, width int) TimeBar {
	return TimeBar{
		Remaining: remaining,
		Total:     total,
		Width:     width,
	}
}

// Percent returns the remaining fraction in [0, 1].
func (b TimeBar) Percent() float64 {
	if b.Total <= 0 {
		return 0
	}
	return min(max(float64(b.Remaining)/float64(b.Total), 0), 1)
}

// View renders the bar followed by the remaining seconds.
func (b TimeBar) View() string {
	label := fmt.Sprintf(" %3ds", max(b.Remaining, 0))
	barWidth := max(b.Width-lipgloss.Width(label), 4)

	filled := int(float64(barWidth) * b.Percent())
	fill := theme.Secondary
	if b.Remaining <= lowTimeSeconds {
		fill = theme.Error
	}

	return lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(label)
}
