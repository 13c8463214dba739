package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/molemath/internal/problemgen"
)

// Timing of the session. CelebrationDelay covers the longest celebration
// animation (1.1s) plus a short buffer.
const (
	TickInterval      = time.Second
	StartDelay        = time.Second
	CelebrationDelay  = 1250 * time.Millisecond
	ErrorDisplayDelay = 1200 * time.Millisecond
)

// DefaultDurationSeconds is the session length used when none is configured.
const DefaultDurationSeconds = 60

var (
	// ErrInvalidDuration is returned for a non-positive session duration.
	ErrInvalidDuration = errors.New("duration must be a positive number of seconds")

	// ErrSessionRunning is returned when a setting is changed or a session
	// started while another session is running.
	ErrSessionRunning = errors.New("session is running")
)

// Config is the configuration accepted at session start.
type Config struct {
	DurationSeconds int
	Difficulty      problemgen.Difficulty
}

// DefaultConfig returns a 60 second normal session.
func DefaultConfig() Config {
	return Config{
		DurationSeconds: DefaultDurationSeconds,
		Difficulty:      problemgen.DifficultyNormal,
	}
}

// Validate rejects a non-positive duration or an unknown difficulty.
func (c Config) Validate() error {
	if c.DurationSeconds <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, c.DurationSeconds)
	}
	if !c.Difficulty.Valid() {
		return fmt.Errorf("%w %q", problemgen.ErrUnknownDifficulty, c.Difficulty)
	}
	return nil
}
