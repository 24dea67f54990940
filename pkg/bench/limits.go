package bench

import (
	"encoding/json"
	"strings"
)

type Limits struct {
	Games    int
	Rounds   int
	NThreads int
	Movetime int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultGamesLimit    int = 100
	DefaultRoundsLimit   int = 1000
	DefaultMovetimeLimit int = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Games:    DefaultGamesLimit,
		Rounds:   DefaultRoundsLimit,
		NThreads: 1,
		Movetime: DefaultMovetimeLimit,
	}
}

// Set the number of games to play
func (l *Limits) SetGames(games int) *Limits {
	l.Games = max(games, 0)
	return l
}

// Set the number of rounds in every game
func (l *Limits) SetRounds(rounds int) *Limits {
	l.Rounds = max(rounds, 1)
	return l
}

func (l *Limits) SetThreads(threads int) *Limits {
	l.NThreads = max(threads, 1)
	return l
}

// Set the time budget of the whole run in milliseconds, negative means no limit
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	return l
}
