package bench

import (
	"encoding/json"
	"strings"
	"sync/atomic"

	"github.com/IlikeChooros/go-champion/pkg/rps"
	"github.com/IlikeChooros/go-champion/pkg/strategies"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	default:
		return "draw"
	}
}

// A strategy as named in the registry, with its arguments
type Player struct {
	Name string   `json:"name" yaml:"name"`
	Args []string `json:"args,omitempty" yaml:"args"`
}

// Build a fresh strategy instance for this player
func (p Player) New() (rps.Strategy, error) {
	return strategies.New(p.Name, p.Args)
}

func (p Player) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}
	return p.Name + " " + strings.Join(p.Args, " ")
}

type VersusArenaStats struct {
	p1Wins      uint32
	p2Wins      uint32
	draws       uint32
	p1RoundWins uint64
	p2RoundWins uint64
	roundDraws  uint64
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) P1RoundWins() int {
	return int(atomic.LoadUint64(&vas.p1RoundWins))
}

func (vas *VersusArenaStats) P2RoundWins() int {
	return int(atomic.LoadUint64(&vas.p2RoundWins))
}

func (vas *VersusArenaStats) RoundDraws() int {
	return int(atomic.LoadUint64(&vas.roundDraws))
}

func (vas *VersusArenaStats) Rounds() int {
	return vas.P1RoundWins() + vas.P2RoundWins() + vas.RoundDraws()
}

func (vas *VersusArenaStats) reset() {
	atomic.StoreUint32(&vas.p1Wins, 0)
	atomic.StoreUint32(&vas.p2Wins, 0)
	atomic.StoreUint32(&vas.draws, 0)
	atomic.StoreUint64(&vas.p1RoundWins, 0)
	atomic.StoreUint64(&vas.p2RoundWins, 0)
	atomic.StoreUint64(&vas.roundDraws, 0)
}

// Add the result of a single game
func (vas *VersusArenaStats) addGame(game gameTally) {
	atomic.AddUint64(&vas.p1RoundWins, uint64(game.p1))
	atomic.AddUint64(&vas.p2RoundWins, uint64(game.p2))
	atomic.AddUint64(&vas.roundDraws, uint64(game.draws))

	switch game.result() {
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	default:
		atomic.AddUint32(&vas.draws, 1)
	}
}

// Round counts of a single game
type gameTally struct {
	p1, p2, draws int
}

func (g *gameTally) add(o rps.Outcome) {
	switch o {
	case rps.FirstWins:
		g.p1++
	case rps.SecondWins:
		g.p2++
	default:
		g.draws++
	}
}

// The game goes to whoever won more rounds
func (g gameTally) result() VersusMatchResult {
	switch {
	case g.p1 > g.p2:
		return VersusPl1Win
	case g.p2 > g.p1:
		return VersusPl2Win
	default:
		return VersusDraw
	}
}

type VersusWorkerInfo struct {
	WorkerID      int
	GameID        string
	NGames        int
	FinishedGames int
	Rounds        int
	Result        VersusMatchResult
	P1RoundWins   int
	P2RoundWins   int
	RoundDraws    int
	P1Wins        int
	P2Wins        int
	Draws         int
}

type VersusSummaryInfo struct {
	ArenaID     string `json:"arena_id"`
	TotalGames  int    `json:"total_games"`
	P1Wins      int    `json:"player1_wins"`
	P2Wins      int    `json:"player2_wins"`
	Draws       int    `json:"draws"`
	Rounds      int    `json:"rounds"`
	P1RoundWins int    `json:"player1_round_wins"`
	P2RoundWins int    `json:"player2_round_wins"`
	RoundDraws  int    `json:"round_draws"`
	Workers     int    `json:"workers"`
	P1Name      string `json:"player1_name"`
	P2Name      string `json:"player2_name"`
	StopReason  string `json:"stop_reason"`
	ElapsedMs   int    `json:"elapsed_ms"`
}

// Player 1's game score, wins count 1 and draws 1/2
func (s VersusSummaryInfo) P1Score() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return (float64(s.P1Wins) + 0.5*float64(s.Draws)) / float64(s.TotalGames)
}

func (s VersusSummaryInfo) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(s)
	return builder.String()
}
