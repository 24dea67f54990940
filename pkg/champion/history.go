package champion

import "github.com/IlikeChooros/go-champion/pkg/rps"

// A history slot, either a concrete move or Unknown
type Slot int8

const Unknown Slot = -1

// Index of the generalized child, every internal node has NMoves concrete
// children followed by the wildcard
const Wildcard = rps.NMoves

const branching = rps.NMoves + 1

func SlotOf(m rps.Move) Slot {
	return Slot(m)
}

func (s Slot) Known() bool {
	return s >= 0 && s < rps.NMoves
}

func (s Slot) String() string {
	if s.Known() {
		return rps.Move(s).String()
	}
	return "?"
}

// Ring buffer of the last 'lookback' rounds, most recent first.
// Slots alternate: opponent's move, own move, previous opponent's move, ...
type History struct {
	slots  []Slot
	cursor int
}

func newHistory(lookback int) *History {
	h := &History{slots: make([]Slot, 2*lookback)}
	for i := range h.slots {
		h.slots[i] = Unknown
	}
	return h
}

// Number of slots (2 * lookback)
func (h *History) Len() int {
	return len(h.slots)
}

// i-th most recent slot
func (h *History) At(i int) Slot {
	return h.slots[(h.cursor+i)%len(h.slots)]
}

// Shift in a new round at the front, retiring the oldest pair
func (h *History) Push(own, opponent rps.Move) {
	n := len(h.slots)
	if n == 0 {
		return
	}

	// n is even and the cursor always lands on an even index,
	// so cursor+1 never wraps
	h.cursor = (h.cursor - 2 + n) % n
	h.slots[h.cursor] = SlotOf(opponent)
	h.slots[h.cursor+1] = SlotOf(own)
}

// Copy of the slots, most recent first
func (h *History) Slots() []Slot {
	out := make([]Slot, len(h.slots))
	for i := range out {
		out[i] = h.At(i)
	}
	return out
}
