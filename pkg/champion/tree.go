package champion

import (
	"fmt"
	"unsafe"

	"github.com/IlikeChooros/go-champion/pkg/rps"
)

// Terminal node of the context tree: win-rate estimate of every candidate
// move in one context, plus the cached entropy of those estimates
type LeafGroup struct {
	Rates   [rps.NMoves]float64
	Entropy float64
}

func newLeafGroup() LeafGroup {
	return LeafGroup{
		Rates:   [rps.NMoves]float64{uniformRate, uniformRate, uniformRate},
		Entropy: uniformEntropy,
	}
}

// Add confidence-weighted rates to 'acc'
func (g *LeafGroup) accumulate(acc *[rps.NMoves]float64) {
	w := ConfidenceWeight(g.Entropy)
	for i := range acc {
		acc[i] += w * g.Rates[i]
	}
}

// Exponential moving average towards the outcome each candidate would have
// had against 'opponent'. Larger 'mult' learns faster
func (g *LeafGroup) learn(opponent rps.Move, mult float64) {
	decay := max(1, BaseDecay/mult)

	for i := range g.Rates {
		var target float64
		switch rps.Winner(rps.Move(i), opponent) {
		case rps.FirstWins:
			target = 1
		case rps.SecondWins:
			target = 0
		default:
			target = TieTarget
		}
		g.Rates[i] = ((decay-1)*g.Rates[i] + target) / decay
	}

	g.refreshEntropy()
}

func (g *LeafGroup) refreshEntropy() {
	work := g.Rates
	NormalizeL1(&work)
	g.Entropy = Entropy(work)
}

// Complete 4-ary tree of fixed depth, stored as a flat arena of leaf groups.
// A node at depth d is identified by its base-4 path index, the child
// through slot s is 4*index + s. Only the leaves hold data
type Tree struct {
	depth  int
	leaves []LeafGroup
}

// Number of leaf groups of a tree with given depth, or -1 if it would overflow
func leafCount(depth int) int64 {
	if depth < 0 || depth > 2*MaxLookback {
		return -1
	}
	return int64(1) << (2 * depth)
}

func leafBytes(depth int) int64 {
	return leafCount(depth) * int64(unsafe.Sizeof(LeafGroup{}))
}

func newTree(depth int) *Tree {
	t := &Tree{
		depth:  depth,
		leaves: make([]LeafGroup, leafCount(depth)),
	}
	for i := range t.leaves {
		t.leaves[i] = newLeafGroup()
	}
	return t
}

// Path length from the root to every leaf
func (t *Tree) Depth() int {
	return t.depth
}

func (t *Tree) Len() int {
	return len(t.leaves)
}

func (t *Tree) child(index, slot int) int {
	return index*branching + slot
}

// Leaf index of a full context path, Unknown slots map to the wildcard
func (t *Tree) leafIndex(path []Slot) int {
	if len(path) != t.depth {
		panic(fmt.Sprintf("[champion] context path of length %d, tree depth is %d", len(path), t.depth))
	}
	index := 0
	for _, s := range path {
		slot := Wildcard
		if s.Known() {
			slot = int(s)
		}
		index = t.child(index, slot)
	}
	return index
}

// Recompute every cached entropy from the current rates
func (t *Tree) RefreshEntropy() {
	for i := range t.leaves {
		t.leaves[i].refreshEntropy()
	}
}

func (t *Tree) snapshot() []LeafGroup {
	out := make([]LeafGroup, len(t.leaves))
	copy(out, t.leaves)
	return out
}

func (t *Tree) SizeBytes() uint64 {
	return uint64(len(t.leaves)) * uint64(unsafe.Sizeof(LeafGroup{}))
}
