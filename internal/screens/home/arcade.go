package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/molemath/internal/screens/welcome"
	"github.com/abhisek/molemath/internal/session"
	"github.com/abhisek/molemath/internal/ui/theme"
)

// renderTitle returns the banner centered in cw columns. The block banner is
// wider than cw and is sized against the frame instead.
func renderTitle(width, cw int) string {
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, welcome.RenderBanner(width-6))
}

// renderStatsBar shows the settings the next game starts with and the best
// score of this run.
func renderStatsBar(cfg session.Config, music bool, best, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	timeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	musicText := dimStyle.Render("♪ OFF")
	if music {
		musicText = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("♪ ON")
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s %s",
			levelStyle.Render(string(cfg.Difficulty)),
			timeStyle.Render(fmt.Sprintf("%ds", cfg.DurationSeconds)),
			bestStyle.Render(fmt.Sprintf("★%d", best)),
			musicText,
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s  %s",
			levelStyle.Render("LEVEL "+string(cfg.Difficulty)),
			timeStyle.Render(fmt.Sprintf("⏱ %ds", cfg.DurationSeconds)),
			bestStyle.Render(fmt.Sprintf("★ BEST %d", best)),
			musicText,
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMascotBox renders the mascot centered in cw columns.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
