package problemgen

// Distractors returns exactly count distinct non-negative values, none equal
// to answer. Values near the answer are preferred; the result keeps draw order.
func (g *RandomGenerator) Distractors(answer int, d Difficulty, count int) []int {
	out, _ := g.distractors(answer, d, count)
	return out
}

// distractors also reports how many loop iterations were spent, so tests can
// check the termination bound.
func (g *RandomGenerator) distractors(answer int, d Difficulty, count int) ([]int, int) {
	if count <= 0 {
		return []int{}, 0
	}

	profile := d.Profile()
	set := newIntSet(count)
	iterations := 0

	// Offsets around the answer.
	for attempt := 0; set.Len() < count && attempt < g.cfg.MaxAttempts; attempt++ {
		iterations++
		candidate := answer + intIn(g.rnd, 1, profile.DistractorSpread)*g.sign()
		if candidate < 0 {
			continue
		}
		if profile.Bounded && candidate > g.cfg.SimpleMax {
			candidate = intIn(g.rnd, 0, g.cfg.SimpleMax)
			if candidate == answer {
				continue
			}
		}
		set.Add(candidate)
	}

	// Flat draws from a wider window.
	lo, hi := max(0, answer-g.cfg.FallbackSpread), answer+g.cfg.FallbackSpread
	if profile.Bounded {
		lo, hi = 0, g.cfg.SimpleMax
	}
	for attempt := 0; set.Len() < count && attempt < g.cfg.FallbackAttempts; attempt++ {
		iterations++
		candidate := intIn(g.rnd, lo, hi)
		if candidate != answer && candidate >= 0 {
			set.Add(candidate)
		}
	}

	// Deterministic sweep for ranges too small to fill by sampling.
	for candidate := 0; set.Len() < count; candidate++ {
		iterations++
		if candidate != answer {
			set.Add(candidate)
		}
	}

	return set.Values(), iterations
}

func (g *RandomGenerator) sign() int {
	if g.rnd.IntN(2) == 0 {
		return -1
	}
	return 1
}

// intSet is an insertion-ordered set of ints.
type intSet struct {
	seen   map[int]struct{}
	values []int
}

func newIntSet(capacity int) *intSet {
	return &intSet{
		seen:   make(map[int]struct{}, capacity),
		values: make([]int, 0, capacity),
	}
}

func (s *intSet) Add(v int) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}

func (s *intSet) Len() int { return len(s.values) }

func (s *intSet) Values() []int { return s.values }
