// Package round places the answer and its distractors on the board.
package round

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/abhisek/molemath/internal/problemgen"
)

const (
	// NumDisplayValues is the number of values shown at once: the answer plus
	// NumDisplayValues-1 distractors.
	NumDisplayValues = 4

	// RefreshInterval is how often an unsolved round is re-randomized.
	RefreshInterval = 1500 * time.Millisecond
)

// Placement is one value assigned to one slot.
type Placement struct {
	Slot  int
	Value int
}

// State is the state of the round in progress.
type State struct {
	Problem problemgen.Problem
	Solved  bool

	// Values are the values currently on the board, in slot order.
	Values []int

	// Seq numbers the rounds of a session, starting at 1.
	Seq int
}

// Presenter assigns the answer and fresh distractors to random slots.
type Presenter struct {
	distractors problemgen.DistractorSource
	rnd         *rand.Rand
}

// NewPresenter creates a Presenter. The random source is usually shared with
// the problem generator so one seed reproduces a whole session.
func NewPresenter(distractors problemgen.DistractorSource, rnd *rand.Rand) *Presenter {
	if rnd == nil {
		now := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(now, now>>1|1))
	}
	return &Presenter{distractors: distractors, rnd: rnd}
}

// Capacity returns how many values a board of n slots shows at once.
func Capacity(n int) int {
	return min(NumDisplayValues, max(n, 0))
}

// Present clears the board and places the answer plus Capacity-1 distractors
// into distinct random slots. Placements are returned in slot order.
func (p *Presenter) Present(b *Board, answer int, d problemgen.Difficulty) []Placement {
	b.Clear()
	k := Capacity(b.Len())
	if k == 0 {
		return nil
	}

	values := append([]int{answer}, p.distractors.Distractors(answer, d, k-1)...)
	p.rnd.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	slots := p.rnd.Perm(b.Len())[:k]
	placements := make([]Placement, 0, k)
	for i, slot := range slots {
		b.Place(slot, values[i])
		placements = append(placements, Placement{Slot: slot, Value: values[i]})
	}
	sort.Slice(placements, func(i, j int) bool { return placements[i].Slot < placements[j].Slot })
	return placements
}

// Values returns the values of placements in order.
func Values(placements []Placement) []int {
	out := make([]int, len(placements))
	for i, pl := range placements {
		out[i] = pl.Value
	}
	return out
}
