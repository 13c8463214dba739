package problemgen

import (
	"math/rand/v2"
	"time"
)

// Generator produces arithmetic problems.
type Generator interface {
	// Generate returns a problem whose answer satisfies the operator invariant.
	// Under simple difficulty the answer is within [0, SimpleMax] unless the
	// fallback branch was taken.
	Generate(d Difficulty) Problem
}

// DistractorSource produces wrong answers for a round.
type DistractorSource interface {
	Distractors(answer int, d Difficulty, count int) []int
}

// RandomGenerator draws problems and distractors from a seeded random source.
// It is not safe for concurrent use.
type RandomGenerator struct {
	cfg Config
	rnd *rand.Rand
}

var (
	_ Generator        = (*RandomGenerator)(nil)
	_ DistractorSource = (*RandomGenerator)(nil)
)

// New creates a RandomGenerator using rnd. A nil rnd is seeded from the clock.
func New(rnd *rand.Rand, cfg Config) *RandomGenerator {
	if rnd == nil {
		now := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(now, now>>1|1))
	}
	def := DefaultConfig()
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.SimpleMax <= 0 {
		cfg.SimpleMax = def.SimpleMax
	}
	if cfg.FallbackSpread <= 0 {
		cfg.FallbackSpread = def.FallbackSpread
	}
	if cfg.FallbackAttempts <= 0 {
		cfg.FallbackAttempts = def.FallbackAttempts
	}
	return &RandomGenerator{cfg: cfg, rnd: rnd}
}

// NewSeeded creates a RandomGenerator with a deterministic PCG source.
func NewSeeded(seed uint64) *RandomGenerator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), DefaultConfig())
}

// Rand exposes the underlying random source so collaborators (the round
// presenter) can share one seed.
func (g *RandomGenerator) Rand() *rand.Rand {
	return g.rnd
}

// Generate picks an operator uniformly, then draws operands until the result
// fits the difficulty's bound or MaxAttempts draws have been rejected.
func (g *RandomGenerator) Generate(d Difficulty) Problem {
	op := Operators[g.rnd.IntN(len(Operators))]
	return g.generateFor(op, d)
}

func (g *RandomGenerator) generateFor(op Operator, d Difficulty) Problem {
	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		p := g.draw(op, d)
		if g.withinBound(p.Answer, d) {
			return p
		}
	}
	return g.fallback(op)
}

// withinBound reports whether an answer is acceptable for d.
func (g *RandomGenerator) withinBound(v int, d Difficulty) bool {
	if !d.Profile().Bounded {
		return true
	}
	return v >= 0 && v <= g.cfg.SimpleMax
}

// fallback draws from a deliberately small range so the loop always
// terminates. The result is not re-validated against the difficulty bound.
func (g *RandomGenerator) fallback(op Operator) Problem {
	a := intIn(g.rnd, 1, 5)
	b := intIn(g.rnd, 1, 5)
	if op == OpDiv {
		a *= b
	}
	answer, _ := op.Apply(a, b)
	return Problem{Operand1: a, Operand2: b, Operator: op, Answer: answer, Fallback: true}
}

// intIn returns a uniform integer in [lo, hi]. When hi < lo it returns lo.
func intIn(rnd *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rnd.IntN(hi-lo+1)
}
