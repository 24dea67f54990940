package champion

import "github.com/IlikeChooros/go-champion/pkg/rps"

type SelectStats struct {
	Round int
	// Raw confidence-weighted sum, before normalization
	Aggregate    [rps.NMoves]float64
	Distribution [rps.NMoves]float64
	Entropy      float64
	Temperature  float64
	Move         rps.Move
}

type ObserveStats struct {
	Round    int
	Own      rps.Move
	Opponent rps.Move
	Outcome  rps.Outcome
	// Number of leaf groups touched by the update
	Updated int
}

type StatsListener struct {
	// called after every move selection
	onSelect func(SelectStats)

	// called after the tree was updated
	onObserve func(ObserveStats)

	nRounds int // call the listeners every N rounds
}

func NewStatsListener() StatsListener {
	return StatsListener{nRounds: 1}
}

func (listener *StatsListener) OnSelect(onSelect func(SelectStats)) *StatsListener {
	listener.onSelect = onSelect
	return listener
}

func (listener *StatsListener) OnObserve(onObserve func(ObserveStats)) *StatsListener {
	listener.onObserve = onObserve
	return listener
}

func (listener *StatsListener) SetRoundInterval(n int) *StatsListener {
	if n < 1 {
		n = 1
	}
	listener.nRounds = n
	return listener
}

func (listener *StatsListener) due(round int) bool {
	return listener.nRounds <= 1 || round%listener.nRounds == 0
}

func (listener *StatsListener) invokeSelect(stats SelectStats) {
	if listener.onSelect != nil && listener.due(stats.Round) {
		listener.onSelect(stats)
	}
}

func (listener *StatsListener) invokeObserve(stats ObserveStats) {
	if listener.onObserve != nil && listener.due(stats.Round) {
		listener.onObserve(stats)
	}
}
