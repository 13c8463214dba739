package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: night-time meadow with bright arcade accents
var (
	Primary      = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15") // Marquee Yellow
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Neon Cyan
	Soil         = lipgloss.Color("#78350F") // Hole rim brown
	Mole         = lipgloss.Color("#A16207") // Mole fur
)

// Typography
var (
	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Board
var (
	HoleEmpty = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Soil).
			Foreground(TextDim).
			Align(lipgloss.Center)

	HoleMole = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Mole).
			Foreground(Text).
			Bold(true).
			Align(lipgloss.Center)

	HoleError = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(Error).
			Foreground(Error).
			Bold(true).
			Align(lipgloss.Center)

	HoleHit = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ArcadeYellow).
		Foreground(ArcadeYellow).
		Bold(true).
		Align(lipgloss.Center)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
