package strategies

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-champion/pkg/champion"
	"github.com/IlikeChooros/go-champion/pkg/rps"
)

func TestNames(t *testing.T) {
	require.Equal(t, []string{"beatlast", "champion", "constant", "cycle", "frequency", "random"}, Names())
}

func TestUnknownStrategy(t *testing.T) {
	_, err := New("lizard", nil)
	require.True(t, errors.Is(err, ErrUnknownStrategy))
}

func TestChampionArgs(t *testing.T) {
	s, err := New("champion", nil)
	require.NoError(t, err)
	require.Equal(t, champion.DefaultLookback, s.(*champion.Champion).Lookback())

	s, err = New("Champion", []string{"-lkbk", "1"})
	require.NoError(t, err)
	require.Equal(t, 1, s.(*champion.Champion).Lookback())

	_, err = New("champion", []string{"-lkbk", "-1"})
	require.ErrorIs(t, err, ErrInvalidArgs)

	_, err = New("champion", []string{"-lkbk", "two"})
	require.ErrorIs(t, err, ErrInvalidArgs)

	_, err = New("champion", []string{"-depth", "2"})
	require.ErrorIs(t, err, ErrInvalidArgs)

	_, err = New("champion", []string{"3"})
	require.ErrorIs(t, err, ErrInvalidArgs)

	// Parses fine but does not fit the memory budget
	s, err = New("champion", []string{"-lkbk", "7"})
	require.ErrorIs(t, err, champion.ErrInvalidConfig)
	require.True(t, s == nil, "failed construction returned %T", s)

	// Same seed, same throws
	a, err := New("champion", []string{"-lkbk", "1", "-seed", "5"})
	require.NoError(t, err)
	b, err := New("champion", []string{"-seed", "5", "-lkbk", "1"})
	require.NoError(t, err)
	for range 20 {
		ma, mb := a.SelectMove(), b.SelectMove()
		require.Equal(t, ma, mb)
		a.Observe(ma, rps.Rock)
		b.Observe(mb, rps.Rock)
	}
}

func TestOpponents(t *testing.T) {
	s, err := New("constant", []string{"-move", "paper"})
	require.NoError(t, err)
	require.Equal(t, rps.Paper, s.SelectMove())
	require.Equal(t, "constant(paper)", rps.NameOf(s, ""))

	_, err = New("constant", []string{"-move", "spock"})
	require.ErrorIs(t, err, rps.ErrInvalidMove)

	s, err = New("cycle", []string{"-seq", "r,s"})
	require.NoError(t, err)
	var got []rps.Move
	for range 4 {
		m := s.SelectMove()
		got = append(got, m)
		s.Observe(m, rps.Rock)
	}
	require.Equal(t, []rps.Move{rps.Rock, rps.Scissors, rps.Rock, rps.Scissors}, got)

	s, err = New("frequency", nil)
	require.NoError(t, err)
	s.Observe(rps.Rock, rps.Scissors)
	s.Observe(rps.Rock, rps.Scissors)
	s.Observe(rps.Rock, rps.Paper)
	require.Equal(t, rps.Rock, s.SelectMove())

	s, err = New("beatlast", nil)
	require.NoError(t, err)
	require.Equal(t, rps.Rock, s.SelectMove())
	s.Observe(rps.Rock, rps.Paper)
	require.Equal(t, rps.Scissors, s.SelectMove())

	_, err = New("beatlast", []string{"-x"})
	require.ErrorIs(t, err, ErrInvalidArgs)
}

func TestRandomSeeded(t *testing.T) {
	a, b := NewRandom(5), NewRandom(5)
	seen := map[rps.Move]bool{}
	for range 100 {
		m := a.SelectMove()
		require.Equal(t, m, b.SelectMove())
		seen[m] = true
	}
	require.Len(t, seen, rps.NMoves)
}

func TestRegisterCustom(t *testing.T) {
	Register("always-scissors", func(args []string) (rps.Strategy, error) {
		return &Constant{Move: rps.Scissors}, nil
	})
	defer func() {
		mu.Lock()
		delete(registry, "always-scissors")
		mu.Unlock()
	}()

	s, err := New("always-scissors", nil)
	require.NoError(t, err)
	require.Equal(t, rps.Scissors, s.SelectMove())
	require.Panics(t, func() { Register("nil", nil) })
}
