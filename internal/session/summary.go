package session

import "github.com/abhisek/molemath/internal/problemgen"

// Summary holds the data displayed on the game-over overlay.
type Summary struct {
	SessionID    string
	Difficulty   problemgen.Difficulty
	Score        int
	CorrectCount int
	WrongCount   int
	MaxCombo     int

	// Accuracy is correct hits over all hits, 0 when nothing was hit.
	Accuracy float64

	// PlayedSeconds is how long the session ran.
	PlayedSeconds int

	// EndedEarly is true when the player quit before the timer ran out.
	EndedEarly bool
}

// BuildSummary creates a Summary from the final session state.
func BuildSummary(state State, endedEarly bool) Summary {
	var accuracy float64
	if hits := state.CorrectCount + state.WrongCount; hits > 0 {
		accuracy = float64(state.CorrectCount) / float64(hits)
	}

	return Summary{
		SessionID:     state.SessionID,
		Difficulty:    state.Difficulty,
		Score:         state.Score,
		CorrectCount:  state.CorrectCount,
		WrongCount:    state.WrongCount,
		MaxCombo:      state.MaxCombo,
		Accuracy:      accuracy,
		PlayedSeconds: max(0, state.DurationSeconds-state.TimeRemaining),
		EndedEarly:    endedEarly,
	}
}
