package problemgen

// SimpleMax is the largest answer (and distractor) allowed under simple difficulty.
const SimpleMax = 99

// Config controls the bounded sampling loops of the generator.
type Config struct {
	// MaxAttempts is the number of draws the rejection loops make before
	// switching to their fallback branch.
	MaxAttempts int

	// SimpleMax overrides the simple-difficulty upper bound. Tests shrink it
	// to force the fallback branches.
	SimpleMax int

	// FallbackSpread is the half-width of the distractor fallback range
	// around the answer under normal difficulty.
	FallbackSpread int

	// FallbackAttempts caps the distractor fallback loop before the
	// deterministic sweep fills the remainder.
	FallbackAttempts int
}

// DefaultConfig returns the standard sampling limits.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:      50,
		SimpleMax:        SimpleMax,
		FallbackSpread:   20,
		FallbackAttempts: 200,
	}
}
