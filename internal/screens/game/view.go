package game

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/molemath/internal/screens/summary"
	"github.com/abhisek/molemath/internal/session"
	"github.com/abhisek/molemath/internal/ui/components"
	"github.com/abhisek/molemath/internal/ui/theme"
)

const (
	boardColumns = 3
	holeWidth    = 9
)

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		s.renderStats(cw),
		components.NewTimeBar(s.timeRemaining, s.ctrl.State().DurationSeconds, cw).View(),
		"",
	}

	switch {
	case s.summary != nil:
		sections = append(sections, summary.Render(*s.summary, width))
	case s.confirmQuit:
		sections = append(sections, renderQuitConfirm(cw))
	default:
		sections = append(sections,
			s.renderProblem(),
			s.renderMessage(),
			"",
			s.renderBoard(),
		)
	}

	sections = append(sections, "", s.renderControls())
	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *Screen) renderStats(cw int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("SCORE %d", s.score))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  best %d   %s %d",
			lipgloss.NewStyle().Foreground(theme.Accent).Render("combo"),
			s.combo, s.maxCombo,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.correct,
		))

	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (s *Screen) renderProblem() string {
	text := s.problem
	if text == "" {
		text = " "
	}
	return lipgloss.NewStyle().
		Foreground(theme.ArcadeCyan).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Render(text)
}

func (s *Screen) renderMessage() string {
	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch s.msgKind {
	case session.MessageCorrect:
		style = theme.Correct
	case session.MessageWrong:
		style = theme.Incorrect
	case session.MessageGameOver:
		style = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	case session.MessageReady, session.MessageKeepLooking:
		style = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	return style.Render(s.msgText)
}

func (s *Screen) renderBoard() string {
	var rows []string
	for start := 0; start < len(s.slots); start += boardColumns {
		var cells []string
		for i := start; i < min(start+boardColumns, len(s.slots)); i++ {
			if i > start {
				cells = append(cells, " ")
			}
			cells = append(cells, s.renderHole(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (s *Screen) renderHole(i int) string {
	v := s.slots[i]

	var hole string
	switch {
	case s.celebrate == i:
		hole = theme.HoleHit.Width(holeWidth).Render("★ " + strconv.Itoa(v.value) + " ★")
	case v.errored:
		hole = theme.HoleError.Width(holeWidth).Render("✗ " + strconv.Itoa(v.value))
	case v.occupied && v.selectable:
		hole = theme.HoleMole.Width(holeWidth).Render(strconv.Itoa(v.value))
	case v.occupied:
		hole = theme.HoleMole.Width(holeWidth).Faint(true).Render(strconv.Itoa(v.value))
	default:
		hole = theme.HoleEmpty.Width(holeWidth).Render("·")
	}

	label := theme.Hint.Render(strconv.Itoa(i + 1))
	return lipgloss.JoinVertical(lipgloss.Center, hole, label)
}

func (s *Screen) renderControls() string {
	cfg := s.ctrl.Config()

	duration := components.NewButton("+/-", fmt.Sprintf("Time %ds", cfg.DurationSeconds), s.controlsEnabled).View()
	if s.editing {
		duration = lipgloss.NewStyle().Foreground(theme.Text).Render("Seconds: ") + s.durationInput.View()
	}

	music := "off"
	switch {
	case s.musicPlaying:
		music = "playing"
	case s.ctrl.MusicEnabled():
		music = "on"
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		components.NewButton("D", "Level "+string(cfg.Difficulty), s.controlsEnabled).View(),
		" ",
		duration,
		" ",
		components.NewButton("M", "Music "+music, true).View(),
	)
}

func renderQuitConfirm(cw int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("End this game?") +
		"\n\n" +
		theme.Hint.Render("Y to end, N to keep playing")
	return components.ArcadeCard(body, cw)
}
