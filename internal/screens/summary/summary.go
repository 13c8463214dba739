// Package summary renders the game-over card shown over the board.
package summary

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/molemath/internal/session"
	"github.com/abhisek/molemath/internal/ui/components"
	"github.com/abhisek/molemath/internal/ui/theme"
)

// Render returns the summary card for sum, centered in width columns.
func Render(sum session.Summary, width int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder

	title := "Time's up!"
	if sum.EndedEarly {
		title = "Game over!"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Score %d", sum.Score)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(cw-8, 4)))
	b.WriteString(divider)
	b.WriteString("\n")

	rows := [][2]string{
		{"Correct", fmt.Sprintf("%d", sum.CorrectCount)},
		{"Wrong", fmt.Sprintf("%d", sum.WrongCount)},
		{"Accuracy", fmt.Sprintf("%.0f%%", sum.Accuracy*100)},
		{"Best combo", fmt.Sprintf("%d", sum.MaxCombo)},
		{"Played", formatSeconds(sum.PlayedSeconds)},
		{"Difficulty", string(sum.Difficulty)},
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(12)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(8).Align(lipgloss.Right)
	for _, r := range rows {
		b.WriteString(label.Render(r[0]) + value.Render(r[1]))
		b.WriteString("\n")
	}
	b.WriteString(divider)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("Press S to play again"))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ArcadeCard(b.String(), cw))
}

func formatSeconds(s int) string {
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
