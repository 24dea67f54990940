package strategies

import (
	"encoding/binary"
	"flag"
	"time"

	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-champion/pkg/rps"
)

// Always throws the same move
type Constant struct {
	Move rps.Move
}

func (c *Constant) Name() string          { return "constant(" + c.Move.String() + ")" }
func (c *Constant) SelectMove() rps.Move  { return c.Move }
func (c *Constant) Observe(_, _ rps.Move) {}

func newConstant(args []string) (rps.Strategy, error) {
	fs := flag.NewFlagSet("constant", flag.ContinueOnError)
	name := fs.String("move", "rock", "move to throw")
	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	m, err := rps.ParseMove(*name)
	if err != nil {
		return nil, err
	}
	return &Constant{Move: m}, nil
}

// Repeats a fixed sequence of moves
type Cycle struct {
	Sequence []rps.Move
	index    int
}

func (c *Cycle) Name() string { return "cycle" }

func (c *Cycle) SelectMove() rps.Move {
	return c.Sequence[c.index%len(c.Sequence)]
}

func (c *Cycle) Observe(_, _ rps.Move) {
	c.index++
}

func newCycle(args []string) (rps.Strategy, error) {
	fs := flag.NewFlagSet("cycle", flag.ContinueOnError)
	seq := fs.String("seq", "rock,paper,scissors", "comma separated moves")
	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	moves, err := rps.ParseMoves(*seq)
	if err != nil {
		return nil, err
	}
	return &Cycle{Sequence: moves}, nil
}

// Uniformly random throws, the Nash equilibrium of the game
type Random struct {
	rng *frand.RNG
}

func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	return &Random{rng: frand.NewCustom(key[:], 256, 12)}
}

func (r *Random) Name() string          { return "random" }
func (r *Random) SelectMove() rps.Move  { return rps.Move(r.rng.Intn(rps.NMoves)) }
func (r *Random) Observe(_, _ rps.Move) {}

func newRandom(args []string) (rps.Strategy, error) {
	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	seed := fs.Int64("seed", 0, "random seed, 0 picks one")
	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	return NewRandom(*seed), nil
}

// Counters the opponent's most frequent move so far
type Frequency struct {
	counts [rps.NMoves]int
}

func (f *Frequency) Name() string { return "frequency" }

func (f *Frequency) SelectMove() rps.Move {
	best := rps.Rock
	for m := rps.Move(1); m < rps.NMoves; m++ {
		if f.counts[m] > f.counts[best] {
			best = m
		}
	}
	return rps.Counter(best)
}

func (f *Frequency) Observe(_, opponent rps.Move) {
	f.counts[opponent]++
}

func newFrequency(args []string) (rps.Strategy, error) {
	if err := parseArgs(flag.NewFlagSet("frequency", flag.ContinueOnError), args); err != nil {
		return nil, err
	}
	return &Frequency{}, nil
}

// Throws whatever beats the opponent's previous move
type BeatLast struct {
	last rps.Move
	seen bool
}

func (b *BeatLast) Name() string { return "beatlast" }

func (b *BeatLast) SelectMove() rps.Move {
	if !b.seen {
		return rps.Rock
	}
	return rps.Counter(b.last)
}

func (b *BeatLast) Observe(_, opponent rps.Move) {
	b.last = opponent
	b.seen = true
}

func newBeatLast(args []string) (rps.Strategy, error) {
	if err := parseArgs(flag.NewFlagSet("beatlast", flag.ContinueOnError), args); err != nil {
		return nil, err
	}
	return &BeatLast{}, nil
}
