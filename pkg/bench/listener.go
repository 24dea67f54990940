package bench

import (
	"github.com/rs/zerolog"
)

// Receives arena progress. Methods are called from the worker goroutines,
// so implementations must be safe for concurrent use.
type ListenerLike interface {
	OnGameStart(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
}

type DefaultListener struct{}

func (DefaultListener) OnGameStart(VersusWorkerInfo)    {}
func (DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo)       {}

// Writes arena progress to a zerolog logger, finished games at debug level
type LogListener struct {
	logger zerolog.Logger
}

func NewLogListener(logger zerolog.Logger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) OnGameStart(info VersusWorkerInfo) {
	l.logger.Trace().
		Int("worker", info.WorkerID).
		Str("game", info.GameID).
		Msg("game started")
}

func (l *LogListener) OnFinishedGame(info VersusWorkerInfo) {
	l.logger.Debug().
		Int("worker", info.WorkerID).
		Str("game", info.GameID).
		Int("finished", info.FinishedGames).
		Int("of", info.NGames).
		Stringer("winner", info.Result).
		Int("p1_rounds", info.P1RoundWins).
		Int("p2_rounds", info.P2RoundWins).
		Int("draw_rounds", info.RoundDraws).
		Msg("game finished")
}

func (l *LogListener) OnFinishedWork(info VersusWorkerInfo) {
	l.logger.Debug().
		Int("worker", info.WorkerID).
		Int("games", info.FinishedGames).
		Int("p1_wins", info.P1Wins).
		Int("p2_wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("worker done")
}

func (l *LogListener) Summary(s VersusSummaryInfo) {
	l.logger.Info().
		Str("arena", s.ArenaID).
		Str("p1", s.P1Name).
		Str("p2", s.P2Name).
		Int("games", s.TotalGames).
		Int("p1_wins", s.P1Wins).
		Int("p2_wins", s.P2Wins).
		Int("draws", s.Draws).
		Float64("p1_score", s.P1Score()).
		Str("stop", s.StopReason).
		Int("elapsed_ms", s.ElapsedMs).
		Msg("arena finished")
}
