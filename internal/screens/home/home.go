// Package home implements the arcade menu shown after the splash.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/molemath/internal/router"
	"github.com/abhisek/molemath/internal/screen"
	"github.com/abhisek/molemath/internal/session"
	"github.com/abhisek/molemath/internal/ui/components"
	"github.com/abhisek/molemath/internal/ui/layout"
)

// Game is the game screen as seen from the menu.
type Game interface {
	screen.Screen
	Config() session.Config
	MusicEnabled() bool
	BestScore() int
}

// HomeScreen is the main menu.
type HomeScreen struct {
	game Game
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen whose PLAY entry opens game.
func New(game Game) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PLAY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: game}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		game: game,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	sections := []string{renderTitle(width, cw)}

	best := h.game.BestScore()
	if !compact {
		variant := MascotIdle
		if best > 0 {
			variant = MascotCelebrating
		}
		sections = append(sections, renderMascotBox(variant, cw))
	}

	sections = append(sections,
		renderStatsBar(h.game.Config(), h.game.MusicEnabled(), best, cw, compact),
		h.menu.View(cw),
	)

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
