package champion

import "github.com/IlikeChooros/go-champion/pkg/rps"

// Predict phase: sum of confidence-weighted rates over every context that
// generalizes the current history. At each depth both the concrete child
// (if the slot is known) and the wildcard child are followed, so every
// generalization from fully specific to fully wildcarded is visited
func (c *Champion) aggregate(index, depth int, acc *[rps.NMoves]float64) {
	if depth == c.tree.depth {
		c.tree.leaves[index].accumulate(acc)
		return
	}

	if slot := c.history.At(depth); slot.Known() {
		c.aggregate(c.tree.child(index, int(slot)), depth+1, acc)
	}
	c.aggregate(c.tree.child(index, Wildcard), depth+1, acc)
}

// Learning phase: pushes the observed opponent's move into every context
// consistent with the history. Concrete matches amplify 'mult', so longer
// matched contexts learn faster. Returns the number of leaf groups updated
func (c *Champion) update(index, depth int, opponent rps.Move, mult float64) int {
	if depth == c.tree.depth {
		c.tree.leaves[index].learn(opponent, mult)
		return 1
	}

	updated := 0
	if slot := c.history.At(depth); slot.Known() {
		updated += c.update(c.tree.child(index, int(slot)), depth+1, opponent, mult*SpecificityGain)
	}
	updated += c.update(c.tree.child(index, Wildcard), depth+1, opponent, mult)
	return updated
}
