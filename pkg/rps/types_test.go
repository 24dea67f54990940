package rps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWinner(t *testing.T) {
	tests := []struct {
		a, b Move
		want Outcome
	}{
		{Rock, Scissors, FirstWins},
		{Paper, Rock, FirstWins},
		{Scissors, Paper, FirstWins},
		{Scissors, Rock, SecondWins},
		{Rock, Paper, SecondWins},
		{Paper, Scissors, SecondWins},
		{Rock, Rock, Tie},
		{Paper, Paper, Tie},
		{Scissors, Scissors, Tie},
	}

	for _, tt := range tests {
		if got := Winner(tt.a, tt.b); got != tt.want {
			t.Errorf("Winner(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEveryMoveBeatsExactlyOne(t *testing.T) {
	for a := Move(0); a < NMoves; a++ {
		wins, losses := 0, 0
		for b := Move(0); b < NMoves; b++ {
			switch Winner(a, b) {
			case FirstWins:
				wins++
			case SecondWins:
				losses++
			}
		}
		require.Equal(t, 1, wins, "move %v", a)
		require.Equal(t, 1, losses, "move %v", a)
		require.True(t, Beats(Counter(a), a), "counter of %v", a)
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove(" Paper ")
	require.NoError(t, err)
	require.Equal(t, Paper, m)

	m, err = ParseMove("s")
	require.NoError(t, err)
	require.Equal(t, Scissors, m)

	_, err = ParseMove("lizard")
	require.True(t, errors.Is(err, ErrInvalidMove))

	moves, err := ParseMoves("rock,p,scissors")
	require.NoError(t, err)
	require.Equal(t, []Move{Rock, Paper, Scissors}, moves)

	_, err = ParseMoves("rock,,paper")
	require.Error(t, err)
}
