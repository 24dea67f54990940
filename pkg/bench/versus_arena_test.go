package bench

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-champion/pkg/champion"
	"github.com/IlikeChooros/go-champion/pkg/rps"
	"github.com/IlikeChooros/go-champion/pkg/store"
	"github.com/IlikeChooros/go-champion/pkg/strategies"
)

func TestMain(m *testing.M) {
	champion.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", champion.SeedGeneratorFn())

	os.Exit(m.Run())
}

type countingListener struct {
	DefaultListener
	started  atomic.Int32
	finished atomic.Int32
	workers  atomic.Int32
	summary  VersusSummaryInfo
}

func (c *countingListener) OnGameStart(VersusWorkerInfo)    { c.started.Add(1) }
func (c *countingListener) OnFinishedGame(VersusWorkerInfo) { c.finished.Add(1) }
func (c *countingListener) OnFinishedWork(VersusWorkerInfo) { c.workers.Add(1) }
func (c *countingListener) Summary(s VersusSummaryInfo)     { c.summary = s }

func TestChampionBeatsConstant(t *testing.T) {
	arena := NewVersusArena(
		Player{Name: "champion", Args: []string{"-lkbk", "1"}},
		Player{Name: "constant", Args: []string{"-move", "rock"}},
	)
	arena.Setup(DefaultLimits().SetGames(8).SetRounds(200).SetThreads(2))

	summary, err := arena.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 8, summary.TotalGames)
	require.Greater(t, summary.P1Wins, summary.P2Wins)
	require.Greater(t, summary.P1RoundWins, 2*summary.P2RoundWins)
	require.Greater(t, summary.P1Score(), 0.5)
}

func TestArenaAccounting(t *testing.T) {
	arena := NewVersusArena(
		Player{Name: "random", Args: []string{"-seed", "7"}},
		Player{Name: "cycle"},
	)
	arena.Setup(DefaultLimits().SetGames(10).SetRounds(25).SetThreads(3))

	listener := &countingListener{}
	summary, err := arena.Run(context.Background(), NewArenaListener(listener, nil))
	require.NoError(t, err)

	require.Equal(t, 10, summary.TotalGames)
	require.Equal(t, 10*25, summary.Rounds)
	require.Equal(t, summary.Rounds, summary.P1RoundWins+summary.P2RoundWins+summary.RoundDraws)
	require.Equal(t, summary.TotalGames, summary.P1Wins+summary.P2Wins+summary.Draws)
	require.Equal(t, 3, summary.Workers)
	require.Equal(t, arena.ID(), summary.ArenaID)
	require.Equal(t, "Games", summary.StopReason)
	require.Equal(t, StopReason(StopGames), arena.StopReason())

	require.EqualValues(t, 10, listener.started.Load())
	require.EqualValues(t, 10, listener.finished.Load())
	require.EqualValues(t, 3, listener.workers.Load())
	require.Equal(t, summary, listener.summary)
}

func TestArenaCancelled(t *testing.T) {
	arena := NewVersusArena(Player{Name: "champion"}, Player{Name: "beatlast"})
	arena.Setup(DefaultLimits().SetGames(50).SetRounds(100).SetThreads(2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := arena.Run(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, summary.TotalGames)
	require.Equal(t, "Interrupt", summary.StopReason)
}

func TestArenaMovetime(t *testing.T) {
	arena := NewVersusArena(Player{Name: "frequency"}, Player{Name: "beatlast"})
	arena.Setup(DefaultLimits().SetGames(5).SetMovetime(0))

	summary, err := arena.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 0, summary.TotalGames)
	require.Equal(t, "Movetime", summary.StopReason)
}

func TestArenaUnknownPlayer(t *testing.T) {
	arena := NewVersusArena(Player{Name: "champion"}, Player{Name: "nobody"})
	_, err := arena.Run(context.Background(), nil)
	require.True(t, errors.Is(err, strategies.ErrUnknownStrategy))

	arena = NewVersusArena(Player{Name: "champion", Args: []string{"-depth", "2"}}, Player{Name: "random"})
	_, err = arena.Run(context.Background(), nil)
	require.ErrorIs(t, err, strategies.ErrInvalidArgs)
}

func TestArenaArchive(t *testing.T) {
	writer, err := store.NewArchiveWriter(t.TempDir())
	require.NoError(t, err)

	p1 := Player{Name: "champion", Args: []string{"-lkbk", "2"}}
	p2 := Player{Name: "cycle", Args: []string{"-seq", "rock,rock,paper"}}
	arena := NewVersusArena(p1, p2).WithArchive(writer)
	arena.Setup(DefaultLimits().SetGames(4).SetRounds(10).SetThreads(2))

	summary, err := arena.Run(context.Background(), nil)
	require.NoError(t, err)

	path, rows, games, err := writer.Finalize()
	require.NoError(t, err)
	require.Equal(t, 40, rows)
	require.Equal(t, 4, games)

	archived, err := store.ReadArchive(path)
	require.NoError(t, err)
	require.Len(t, archived, 40)

	gameIDs := map[string]int{}
	p1Rounds := 0
	for _, row := range archived {
		require.Equal(t, arena.ID(), row.ArenaID)
		require.Equal(t, p1.String(), row.Player1)
		require.Equal(t, p2.String(), row.Player2)
		require.Less(t, row.Round, int32(10))

		outcome := rps.Winner(rps.Move(row.Move1), rps.Move(row.Move2))
		require.EqualValues(t, outcome, row.Outcome)
		if outcome == rps.FirstWins {
			p1Rounds++
		}
		gameIDs[row.GameID]++
	}
	require.Len(t, gameIDs, 4)
	for _, n := range gameIDs {
		require.Equal(t, 10, n)
	}
	require.Equal(t, summary.P1RoundWins, p1Rounds)
}

func TestTallyResult(t *testing.T) {
	tally := gameTally{}
	tally.add(rps.Winner(rps.Paper, rps.Rock))
	tally.add(rps.Winner(rps.Rock, rps.Paper))
	require.Equal(t, VersusDraw, tally.result())

	tally.add(rps.Winner(rps.Rock, rps.Rock))
	tally.add(rps.Winner(rps.Scissors, rps.Paper))
	require.Equal(t, VersusPl1Win, tally.result())
	require.Equal(t, gameTally{p1: 2, p2: 1, draws: 1}, tally)
}
