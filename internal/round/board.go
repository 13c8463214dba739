package round

// NumSlots is the number of holes on the board (a 3x3 grid).
const NumSlots = 9

// Slot is one hole on the board.
type Slot struct {
	Value      int
	Occupied   bool
	Selectable bool

	// Error marks a wrong hit until the error display delay elapses.
	Error bool
}

// Board holds the slots of one game board. Each Clear bumps the generation so
// deferred callbacks can tell whether the board was re-populated since they
// were scheduled.
type Board struct {
	slots      []Slot
	generation int
}

// NewBoard returns an empty board with n slots.
func NewBoard(n int) *Board {
	return &Board{slots: make([]Slot, max(n, 0))}
}

func (b *Board) Len() int { return len(b.slots) }

// Generation counts how many times the board has been cleared.
func (b *Board) Generation() int { return b.generation }

// Slot returns the slot at i. ok is false when i is out of range.
func (b *Board) Slot(i int) (s Slot, ok bool) {
	if i < 0 || i >= len(b.slots) {
		return Slot{}, false
	}
	return b.slots[i], true
}

// Slots returns a copy of every slot.
func (b *Board) Slots() []Slot {
	out := make([]Slot, len(b.slots))
	copy(out, b.slots)
	return out
}

// Occupied returns the number of occupied slots.
func (b *Board) Occupied() int {
	n := 0
	for _, s := range b.slots {
		if s.Occupied {
			n++
		}
	}
	return n
}

// Clear empties every slot.
func (b *Board) Clear() {
	for i := range b.slots {
		b.slots[i] = Slot{}
	}
	b.generation++
}

// Place puts value into slot i and makes it selectable.
func (b *Board) Place(i, value int) {
	if i < 0 || i >= len(b.slots) {
		return
	}
	b.slots[i] = Slot{Value: value, Occupied: true, Selectable: true}
}

// Empty clears a single slot without bumping the generation.
func (b *Board) Empty(i int) {
	if i < 0 || i >= len(b.slots) {
		return
	}
	b.slots[i] = Slot{}
}

func (b *Board) SetSelectable(i int, selectable bool) {
	if i < 0 || i >= len(b.slots) {
		return
	}
	b.slots[i].Selectable = selectable
}

func (b *Board) SetError(i int, marked bool) {
	if i < 0 || i >= len(b.slots) {
		return
	}
	b.slots[i].Error = marked
}
