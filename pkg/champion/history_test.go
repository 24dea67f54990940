package champion

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-champion/pkg/rps"
)

func TestHistoryRing(t *testing.T) {
	h := newHistory(2)
	require.Equal(t, 4, h.Len())
	require.Equal(t, []Slot{Unknown, Unknown, Unknown, Unknown}, h.Slots())

	h.Push(rps.Rock, rps.Paper)
	require.Equal(t, []Slot{SlotOf(rps.Paper), SlotOf(rps.Rock), Unknown, Unknown}, h.Slots())

	h.Push(rps.Scissors, rps.Rock)
	require.Equal(t, []Slot{SlotOf(rps.Rock), SlotOf(rps.Scissors), SlotOf(rps.Paper), SlotOf(rps.Rock)}, h.Slots())

	// oldest pair retired
	h.Push(rps.Paper, rps.Paper)
	require.Equal(t, []Slot{SlotOf(rps.Paper), SlotOf(rps.Paper), SlotOf(rps.Rock), SlotOf(rps.Scissors)}, h.Slots())
}

func TestHistoryEmpty(t *testing.T) {
	h := newHistory(0)
	h.Push(rps.Rock, rps.Rock)
	require.Equal(t, 0, h.Len())
	require.Empty(t, h.Slots())
}

func TestLeafIndex(t *testing.T) {
	tree := newTree(2)
	require.Equal(t, 16, tree.Len())
	require.Equal(t, 15, tree.leafIndex([]Slot{Unknown, Unknown}))
	require.Equal(t, 0, tree.leafIndex([]Slot{SlotOf(rps.Rock), SlotOf(rps.Rock)}))
	require.Equal(t, 1*4+2, tree.leafIndex([]Slot{SlotOf(rps.Paper), SlotOf(rps.Scissors)}))
	require.Panics(t, func() { tree.leafIndex([]Slot{Unknown}) })
}
