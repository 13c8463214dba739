package session

import "github.com/abhisek/molemath/internal/problemgen"

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseIdle    Phase = iota // No session started yet
	PhaseRunning              // Timer running, rounds being served
	PhaseEnded                // Time expired or ended early
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session counters. The controller owns the live
// copy; callers only ever see values returned by Controller.State.
type State struct {
	// SessionID is the UUID for this session. Empty before the first start.
	SessionID string

	// Score never drops below zero.
	Score int

	// DurationSeconds is the configured length of the session.
	DurationSeconds int

	// TimeRemaining counts down once per tick.
	TimeRemaining int

	// Combo is the current run of consecutive correct hits.
	Combo int

	// MaxCombo is the best combo of the session.
	MaxCombo int

	// CorrectCount is the number of solved rounds.
	CorrectCount int

	// WrongCount is the number of wrong hits.
	WrongCount int

	Difficulty problemgen.Difficulty
	Phase      Phase
}
