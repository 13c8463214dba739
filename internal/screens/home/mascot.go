package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/molemath/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Waiting for the first game
	MascotCelebrating                      // A game with a score was played
)

const mascotIdle = `   .---.
  ( o o )
  (  -  )
 (__|_|__)`

const mascotCelebrating = ` \ .---. /
  ( ^ ^ )
  (  w  )
 (__|_|__)`

// RenderMascot returns the mole art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Mole
	if v == MascotCelebrating {
		art, fg = mascotCelebrating, theme.ArcadeYellow
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
