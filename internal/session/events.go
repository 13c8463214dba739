package session

import (
	"github.com/abhisek/molemath/internal/problemgen"
	"github.com/abhisek/molemath/internal/round"
)

// Event is emitted by the controller after every state change.
type Event interface {
	event()
}

// Listener receives events synchronously on the controller's goroutine.
type Listener func(Event)

type ScoreChanged struct{ Score int }

type ComboChanged struct{ Combo, MaxCombo int }

type CorrectCountChanged struct{ CorrectCount int }

type TimeChanged struct{ TimeRemaining int }

// RoundStarted is emitted when a new problem is put on the board.
type RoundStarted struct {
	Seq        int
	Problem    problemgen.Problem
	Placements []round.Placement
}

// SlotsRefreshed is emitted when the refresh cadence re-randomizes the board.
type SlotsRefreshed struct {
	Seq        int
	Placements []round.Placement
}

// AnswerResult reports the outcome of a hit.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer int
	Slot          int
	Value         int
}

// MusicChanged reports the music preference and whether music is playing.
type MusicChanged struct{ Enabled, Playing bool }

// SessionEnded carries the final counters.
type SessionEnded struct{ Summary Summary }

func (ScoreChanged) event()        {}
func (ComboChanged) event()        {}
func (CorrectCountChanged) event() {}
func (TimeChanged) event()         {}
func (RoundStarted) event()        {}
func (SlotsRefreshed) event()      {}
func (AnswerResult) event()        {}
func (MusicChanged) event()        {}
func (SessionEnded) event()        {}
