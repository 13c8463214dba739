package problemgen

import "testing"

func checkDistractors(t *testing.T, got []int, answer, count, upper int) {
	t.Helper()
	if len(got) != count {
		t.Fatalf("len = %d, want %d (%v)", len(got), count, got)
	}
	seen := make(map[int]bool, len(got))
	for _, v := range got {
		if v == answer {
			t.Fatalf("distractor equals answer %d: %v", answer, got)
		}
		if v < 0 {
			t.Fatalf("negative distractor %d: %v", v, got)
		}
		if upper >= 0 && v > upper {
			t.Fatalf("distractor %d above %d: %v", v, upper, got)
		}
		if seen[v] {
			t.Fatalf("duplicate distractor %d: %v", v, got)
		}
		seen[v] = true
	}
}

func TestDistractors_Normal(t *testing.T) {
	g := NewSeeded(11)
	for i := 0; i < samples; i++ {
		p := g.Generate(DifficultyNormal)
		got, iterations := g.distractors(p.Answer, DifficultyNormal, 3)
		checkDistractors(t, got, p.Answer, 3, -1)
		if iterations >= 1000 {
			t.Fatalf("answer %d: %d iterations", p.Answer, iterations)
		}
	}
}

func TestDistractors_SimpleBounded(t *testing.T) {
	g := NewSeeded(12)
	for i := 0; i < samples; i++ {
		p := g.Generate(DifficultySimple)
		got, iterations := g.distractors(p.Answer, DifficultySimple, 3)
		checkDistractors(t, got, p.Answer, 3, SimpleMax)
		if iterations >= 1000 {
			t.Fatalf("answer %d: %d iterations", p.Answer, iterations)
		}
	}
}

func TestDistractors_EdgeAnswers(t *testing.T) {
	tests := []struct {
		name       string
		answer     int
		difficulty Difficulty
		upper      int
	}{
		{"zero normal", 0, DifficultyNormal, -1},
		{"zero simple", 0, DifficultySimple, SimpleMax},
		{"one simple", 1, DifficultySimple, SimpleMax},
		{"at simple bound", SimpleMax, DifficultySimple, SimpleMax},
		{"large normal", 2250, DifficultyNormal, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSeeded(13)
			for i := 0; i < 200; i++ {
				got := g.Distractors(tt.answer, tt.difficulty, 3)
				checkDistractors(t, got, tt.answer, 3, tt.upper)
			}
		})
	}
}

func TestDistractors_ZeroCount(t *testing.T) {
	g := NewSeeded(14)
	got, iterations := g.distractors(42, DifficultyNormal, 0)
	if len(got) != 0 {
		t.Errorf("Distractors(count=0) = %v, want empty", got)
	}
	if iterations != 0 {
		t.Errorf("iterations = %d, want 0", iterations)
	}
}

func TestDistractors_TinyRangeUsesSweep(t *testing.T) {
	// Bound of 2 leaves only two candidates besides answer 1; the sweep has to
	// step past the bound to reach the count.
	g := seeded(15, Config{MaxAttempts: 3, SimpleMax: 2, FallbackAttempts: 3})
	got := g.Distractors(1, DifficultySimple, 3)
	checkDistractors(t, got, 1, 3, -1)
}
