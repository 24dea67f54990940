package bench

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-champion/pkg/rps"
	"github.com/IlikeChooros/go-champion/pkg/store"
)

/*
Arena benchmark subpackage, plays a series of rock-paper-scissors games between
two registered strategies. Every game starts from fresh strategy instances and
lasts Limits.Rounds rounds, the game goes to the player with more round wins.
*/

// Destination of the played rounds, one call per finished game
type RoundSink interface {
	WriteRows(rows []store.RoundRow) error
}

type VersusArena struct {
	VersusArenaStats
	Player1 Player
	Player2 Player
	Limits  *Limits
	limiter *Limiter
	id      string
	logger  zerolog.Logger
	archive RoundSink
}

func NewVersusArena(p1, p2 Player) *VersusArena {
	limits := DefaultLimits()
	return &VersusArena{
		Player1: p1,
		Player2: p2,
		Limits:  limits,
		limiter: NewLimiter(limits),
		id:      uuid.NewString(),
		logger:  zerolog.Nop(),
	}
}

func (va *VersusArena) WithLogger(logger zerolog.Logger) *VersusArena {
	va.logger = logger.With().Str("arena", va.id).Logger()
	return va
}

// Write every finished game's rounds to 'sink'
func (va *VersusArena) WithArchive(sink RoundSink) *VersusArena {
	va.archive = sink
	return va
}

func (va *VersusArena) Setup(limits *Limits) {
	if limits == nil {
		limits = DefaultLimits()
	}
	va.Limits = limits
	va.limiter.SetLimits(limits)
}

func (va *VersusArena) ID() string {
	return va.id
}

func (va *VersusArena) StopReason() StopReason {
	return va.limiter.StopReason()
}

// Play all games, blocking until the limits are reached, the context is
// cancelled or a worker fails. The summary covers only the finished games.
func (va *VersusArena) Run(ctx context.Context, listener ListenerLike) (VersusSummaryInfo, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if listener == nil {
		listener = DefaultListener{}
	}

	// Fail early on bad players, instead of inside every worker
	for _, p := range []Player{va.Player1, va.Player2} {
		s, err := p.New()
		if err != nil {
			return VersusSummaryInfo{}, fmt.Errorf("player %q: %w", p.Name, err)
		}
		rps.Release(s)
	}

	va.reset()
	g, gctx := errgroup.WithContext(ctx)
	va.limiter.SetContext(gctx)
	va.limiter.Reset()

	// Equally distribute the games between the workers
	nThreads := max(va.Limits.NThreads, 1)
	nGames := va.Limits.Games / nThreads
	rest := va.Limits.Games % nThreads

	va.logger.Debug().
		Str("p1", va.Player1.String()).
		Str("p2", va.Player2.String()).
		Int("games", va.Limits.Games).
		Int("rounds", va.Limits.Rounds).
		Int("threads", nThreads).
		Msg("arena started")

	for i := range nThreads {
		n := nGames
		if i < rest {
			n++
		}
		id := i
		g.Go(func() error {
			return va.worker(id, n, listener)
		})
	}

	err := g.Wait()
	// Wait cancels the group context, evaluate against the caller's one
	va.limiter.SetContext(ctx)
	va.limiter.EvaluateStopReason(va.Total())

	summary := VersusSummaryInfo{
		ArenaID:     va.id,
		TotalGames:  va.Total(),
		P1Wins:      va.P1Wins(),
		P2Wins:      va.P2Wins(),
		Draws:       va.Draws(),
		Rounds:      va.Rounds(),
		P1RoundWins: va.P1RoundWins(),
		P2RoundWins: va.P2RoundWins(),
		RoundDraws:  va.RoundDraws(),
		Workers:     nThreads,
		P1Name:      va.Player1.String(),
		P2Name:      va.Player2.String(),
		StopReason:  va.limiter.StopReason().String(),
		ElapsedMs:   va.limiter.Elapsed(),
	}
	listener.Summary(summary)

	if err != nil {
		return summary, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return summary, ctxErr
	}
	return summary, nil
}

func (va *VersusArena) worker(id, nGames int, listener ListenerLike) error {
	local := VersusArenaStats{}
	finished := 0

	for range nGames {
		if !va.limiter.Ok(va.Total()) {
			break
		}

		info := VersusWorkerInfo{
			WorkerID:      id,
			GameID:        uuid.NewString(),
			NGames:        nGames,
			FinishedGames: finished,
		}
		listener.OnGameStart(info)

		tally, rows, ok, err := va.playGame(info.GameID)
		if err != nil {
			return fmt.Errorf("worker %d: %w", id, err)
		}
		if !ok {
			// Interrupted in the middle of the game, don't count it
			break
		}

		if va.archive != nil {
			if err := va.archive.WriteRows(rows); err != nil {
				return fmt.Errorf("worker %d: archive: %w", id, err)
			}
		}

		va.addGame(tally)
		local.addGame(tally)
		finished++

		info.FinishedGames = finished
		info.Rounds = tally.p1 + tally.p2 + tally.draws
		info.Result = tally.result()
		info.P1RoundWins = tally.p1
		info.P2RoundWins = tally.p2
		info.RoundDraws = tally.draws
		info.P1Wins = local.P1Wins()
		info.P2Wins = local.P2Wins()
		info.Draws = local.Draws()
		listener.OnFinishedGame(info)
	}

	listener.OnFinishedWork(VersusWorkerInfo{
		WorkerID:      id,
		NGames:        nGames,
		FinishedGames: finished,
		P1RoundWins:   local.P1RoundWins(),
		P2RoundWins:   local.P2RoundWins(),
		RoundDraws:    local.RoundDraws(),
		P1Wins:        local.P1Wins(),
		P2Wins:        local.P2Wins(),
		Draws:         local.Draws(),
	})
	return nil
}

// Play a single game between fresh instances of both players,
// 'ok' is false if the game was cut short by the limiter
func (va *VersusArena) playGame(gameID string) (tally gameTally, rows []store.RoundRow, ok bool, err error) {
	pl1, err := va.Player1.New()
	if err != nil {
		return tally, nil, false, err
	}
	defer rps.Release(pl1)

	pl2, err := va.Player2.New()
	if err != nil {
		return tally, nil, false, err
	}
	defer rps.Release(pl2)

	rounds := va.Limits.Rounds
	if va.archive != nil {
		rows = make([]store.RoundRow, 0, rounds)
	}

	for round := range rounds {
		if !va.limiter.Playing() {
			return tally, rows, false, nil
		}

		m1 := pl1.SelectMove()
		m2 := pl2.SelectMove()
		if !m1.Valid() || !m2.Valid() {
			return tally, rows, false, fmt.Errorf("%w: %d vs %d", rps.ErrInvalidMove, m1, m2)
		}

		pl1.Observe(m1, m2)
		pl2.Observe(m2, m1)

		outcome := rps.Winner(m1, m2)
		tally.add(outcome)

		if va.archive != nil {
			rows = append(rows, store.RoundRow{
				ArenaID: va.id,
				GameID:  gameID,
				Round:   int32(round),
				Player1: va.Player1.String(),
				Player2: va.Player2.String(),
				Move1:   int32(m1),
				Move2:   int32(m2),
				Outcome: int32(outcome),
			})
		}
	}

	return tally, rows, true, nil
}
