package problemgen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned when a difficulty name is not recognised.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects the operand ranges, result bound and scoring of a session.
type Difficulty string

const (
	DifficultySimple Difficulty = "simple"
	DifficultyNormal Difficulty = "normal"
)

// Difficulties lists the selectable difficulties in menu order.
var Difficulties = []Difficulty{DifficultySimple, DifficultyNormal}

// ParseDifficulty parses a difficulty name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultySimple:
		return DifficultySimple, nil
	case DifficultyNormal:
		return DifficultyNormal, nil
	}
	return "", fmt.Errorf("%w %q: must be simple or normal", ErrUnknownDifficulty, s)
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	return d == DifficultySimple || d == DifficultyNormal
}

// Next returns the difficulty that follows d in menu order, wrapping around.
func (d Difficulty) Next() Difficulty {
	for i, c := range Difficulties {
		if c == d {
			return Difficulties[(i+1)%len(Difficulties)]
		}
	}
	return DifficultyNormal
}

// Profile holds the per-difficulty policy values.
type Profile struct {
	Difficulty Difficulty

	// CorrectPoints is added to the score for a correct hit.
	CorrectPoints int

	// WrongPenalty is subtracted (floored at zero) for a wrong hit.
	WrongPenalty int

	// DistractorSpread is the maximum offset of a distractor from the answer.
	DistractorSpread int

	// Bounded is true when answers and distractors must stay within [0, MaxValue].
	Bounded  bool
	MaxValue int
}

// Profile returns the policy for d. Unknown difficulties get the normal profile.
func (d Difficulty) Profile() Profile {
	if d == DifficultySimple {
		return Profile{
			Difficulty:       DifficultySimple,
			CorrectPoints:    5,
			WrongPenalty:     1,
			DistractorSpread: 10,
			Bounded:          true,
			MaxValue:         SimpleMax,
		}
	}
	return Profile{
		Difficulty:       DifficultyNormal,
		CorrectPoints:    10,
		WrongPenalty:     2,
		DistractorSpread: 15,
	}
}
