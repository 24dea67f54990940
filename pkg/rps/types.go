package rps

import (
	"errors"
	"fmt"
	"strings"
)

// One of the three throws, the encoding matters: every move beats the one
// right before it (mod 3), see Winner
type Move uint8

// Result of a single round, from the first player's perspective
type Outcome int

const (
	Rock Move = iota
	Paper
	Scissors

	// Number of distinct moves
	NMoves = 3
)

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

var ErrInvalidMove = errors.New("invalid move")

var moveNames = [NMoves]string{"rock", "paper", "scissors"}

func (m Move) String() string {
	if m.Valid() {
		return moveNames[m]
	}
	return fmt.Sprintf("Move(%d)", uint8(m))
}

func (m Move) Valid() bool {
	return m < NMoves
}

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Parse move name, accepts full names and the first letter, case insensitive
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range moveNames {
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return Move(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}

// Parse comma separated list of moves, e.g. "rock,paper,p"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Split(s, ",")
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Reports whether 'a' beats 'b' under the usual rules: paper covers rock,
// scissors cut paper, rock blunts scissors. With Rock=0, Paper=1, Scissors=2
// that is (3+a-b) mod 3 == 1
func Beats(a, b Move) bool {
	return (NMoves+int(a)-int(b))%NMoves == 1
}

// Decide the round where the first player throws 'a' and the second 'b'
func Winner(a, b Move) Outcome {
	if Beats(a, b) {
		return FirstWins
	}
	if Beats(b, a) {
		return SecondWins
	}
	return Tie
}

// The move that beats 'm'
func Counter(m Move) Move {
	return (m + 1) % NMoves
}
