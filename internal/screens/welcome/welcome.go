// Package welcome shows the splash animation: a mole climbing out of its
// hole, then the banner.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/molemath/internal/router"
	"github.com/abhisek/molemath/internal/screen"
	"github.com/abhisek/molemath/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	peekAt       = 500 * time.Millisecond
	upAt         = 1000 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

const holeArt = `

   .-"""""-.
  (_________)`

const molePeekArt = `
    .---.
   ( o o )
  (___^___)`

const moleUpArt = `    .---.
   ( ^ ^ )
   (  w  )
  (__|_|__)`

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// The first key during the animation skips to its end.
		if w.elapsed < totalDur {
			w.elapsed = totalDur
			return w, nil
		}
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	moleStyle := lipgloss.NewStyle().Foreground(theme.Mole)
	soilStyle := lipgloss.NewStyle().Foreground(theme.Soil)

	var rendered string
	switch {
	case w.elapsed < peekAt:
		rendered = soilStyle.Render(holeArt)
	case w.elapsed < upAt:
		rendered = moleStyle.Render(molePeekArt)
	default:
		rendered = moleStyle.Render(moleUpArt)

		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		s1 := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(sparkle)

		lines := strings.Split(rendered, "\n")
		lines[0] = s1 + "  " + lines[0] + "  " + s2
		lines[len(lines)-1] = s2 + "  " + lines[len(lines)-1] + "  " + s1
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	if w.elapsed >= bannerAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render("Whack the mole with the right answer!"),
			"",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("press any key to continue"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
