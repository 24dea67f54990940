package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/IlikeChooros/go-champion/pkg/rps"
)

const maxRecent = 10

// The engine side of the game
type opponent interface {
	rps.Strategy
	Distribution() [rps.NMoves]float64
	Lookback() int
}

type round struct {
	human, engine rps.Move
	outcome       rps.Outcome
}

type model struct {
	engine opponent
	recent []round

	humanWins  int
	engineWins int
	ties       int
}

func newModel(engine opponent) model {
	return model{engine: engine, recent: make([]round, 0, maxRecent)}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "r", "p", "s":
		human, _ := rps.ParseMove(key.String())
		return m.play(human), nil
	}
	return m, nil
}

// Engine commits to its move before seeing the human's
func (m model) play(human rps.Move) model {
	engine := m.engine.SelectMove()
	m.engine.Observe(engine, human)

	r := round{human: human, engine: engine, outcome: rps.Winner(human, engine)}
	switch r.outcome {
	case rps.FirstWins:
		m.humanWins++
	case rps.SecondWins:
		m.engineWins++
	default:
		m.ties++
	}

	recent := make([]round, 0, maxRecent)
	recent = append(recent, r)
	if len(m.recent) == maxRecent {
		recent = append(recent, m.recent[:maxRecent-1]...)
	} else {
		recent = append(recent, m.recent...)
	}
	m.recent = recent
	return m
}

func (m model) rounds() int {
	return m.humanWins + m.engineWins + m.ties
}

func (m model) View() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "Rock-paper-scissors against the champion (lookback %d)\n\n", m.engine.Lookback())
	fmt.Fprintf(&b, "  you %d   engine %d   ties %d   rounds %d\n\n",
		m.humanWins, m.engineWins, m.ties, m.rounds())

	dist := m.engine.Distribution()
	b.WriteString("  engine leaning:")
	for mv := rps.Rock; mv <= rps.Scissors; mv++ {
		fmt.Fprintf(&b, "  %s %4.1f%%", mv, 100*dist[mv])
	}
	b.WriteString("\n\n")

	for _, r := range m.recent {
		result := "tie"
		switch r.outcome {
		case rps.FirstWins:
			result = "you win"
		case rps.SecondWins:
			result = "engine wins"
		}
		fmt.Fprintf(&b, "  %-8s vs %-8s  %s\n", r.human, r.engine, result)
	}

	b.WriteString("\n  [r]ock  [p]aper  [s]cissors  [q]uit\n")
	return b.String()
}
