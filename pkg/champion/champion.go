package champion

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-champion/pkg/rps"
)

var ErrInvalidConfig = errors.New("invalid champion config")

// Adaptive opponent-modeling player. Keeps win-rate estimates of every
// candidate move for every (partially wildcarded) context of the last
// 'lookback' rounds, and samples its throw from their confidence-weighted,
// temperature-adjusted aggregate.
//
// Not safe for concurrent use, one instance serves one game session.
type Champion struct {
	tree        *Tree
	history     *History
	rand        RandSource
	temperature TemperatureFnType
	listener    *StatsListener
	logger      zerolog.Logger
	lookback    int
	round       int
}

// Check lookback against hard limit and the memory budget
func validate(opts *Options) error {
	if opts.Lookback < 0 {
		return fmt.Errorf("%w: lookback must be nonnegative, got %d", ErrInvalidConfig, opts.Lookback)
	}
	if opts.Lookback > MaxLookback {
		return fmt.Errorf("%w: lookback %d exceeds maximum %d", ErrInvalidConfig, opts.Lookback, MaxLookback)
	}
	if opts.MaxBytes <= 0 {
		return fmt.Errorf("%w: memory budget must be positive, got %d", ErrInvalidConfig, opts.MaxBytes)
	}
	if need := leafBytes(2 * opts.Lookback); need > opts.MaxBytes {
		return fmt.Errorf("%w: lookback %d needs %d bytes, budget is %d", ErrInvalidConfig, opts.Lookback, need, opts.MaxBytes)
	}
	return nil
}

func newRand(seed int64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	return frand.NewCustom(key[:], 1024, 12)
}

// Build a fresh engine, the tree starts at the uniform prior
func New(opts *Options) (*Champion, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := validate(opts); err != nil {
		return nil, err
	}

	c := &Champion{
		tree:        newTree(2 * opts.Lookback),
		history:     newHistory(opts.Lookback),
		rand:        opts.Rand,
		temperature: opts.Temperature,
		listener:    &StatsListener{},
		logger:      opts.Logger,
		lookback:    opts.Lookback,
	}

	if c.temperature == nil {
		c.temperature = DefaultTemperature
	}

	if c.rand == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = SeedGeneratorFn()
		}
		c.rand = newRand(seed)
	}

	c.logger.Debug().
		Int("lookback", c.lookback).
		Int("leaves", c.tree.Len()).
		Uint64("bytes", c.tree.SizeBytes()).
		Msg("context tree allocated")

	return c, nil
}

// Shorthand for New(DefaultOptions().SetLookback(lookback))
func NewWithLookback(lookback int) (*Champion, error) {
	return New(DefaultOptions().SetLookback(lookback))
}

func (c *Champion) Name() string {
	return fmt.Sprintf("champion(%d)", c.lookback)
}

func (c *Champion) Lookback() int {
	return c.lookback
}

// Number of observed rounds
func (c *Champion) Round() int {
	return c.round
}

func (c *Champion) mustBeAlive() {
	if c.tree == nil {
		panic("[champion] engine used after Release")
	}
}

// Confidence-weighted win-rate vector of the current history
func (c *Champion) Aggregate() [rps.NMoves]float64 {
	c.mustBeAlive()
	var acc [rps.NMoves]float64
	c.aggregate(0, 0, &acc)
	return acc
}

// Probability of each throw for the next round
func (c *Champion) Distribution() [rps.NMoves]float64 {
	dist, _, _ := distribution(c.Aggregate(), c.temperature)
	return dist
}

// Choose the next throw, reads the tree but never modifies it
func (c *Champion) SelectMove() rps.Move {
	agg := c.Aggregate()
	dist, h, t := distribution(agg, c.temperature)
	move := sample(dist, c.rand.Float64())

	c.listener.invokeSelect(SelectStats{
		Round:        c.round,
		Aggregate:    agg,
		Distribution: dist,
		Entropy:      h,
		Temperature:  t,
		Move:         move,
	})
	return move
}

// Learn from the round just played, then advance the history
func (c *Champion) Observe(own, opponent rps.Move) {
	c.mustBeAlive()
	if !own.Valid() || !opponent.Valid() {
		panic(fmt.Sprintf("[champion] invalid moves observed: own=%v opponent=%v", own, opponent))
	}

	updated := c.update(0, 0, opponent, 1.0)
	c.history.Push(own, opponent)
	c.round++

	outcome := rps.Winner(own, opponent)
	c.logger.Trace().
		Int("round", c.round).
		Stringer("own", own).
		Stringer("opponent", opponent).
		Stringer("outcome", outcome).
		Int("updated", updated).
		Msg("observed")

	c.listener.invokeObserve(ObserveStats{
		Round:    c.round,
		Own:      own,
		Opponent: opponent,
		Outcome:  outcome,
		Updated:  updated,
	})
}

// Drop the tree and history, the engine must not be used afterwards
func (c *Champion) Release() {
	c.tree = nil
	c.history = nil
}

// Estimates of one context, 'path' has 2*lookback slots, most recent
// first (opponent, own, opponent, ...), Unknown meaning wildcard
func (c *Champion) Leaf(path ...Slot) LeafGroup {
	c.mustBeAlive()
	return c.tree.leaves[c.tree.leafIndex(path)]
}

// Copy of every leaf group, in arena order
func (c *Champion) Snapshot() []LeafGroup {
	c.mustBeAlive()
	return c.tree.snapshot()
}

// Current history, most recent first
func (c *Champion) History() []Slot {
	c.mustBeAlive()
	return c.history.Slots()
}

// Number of leaf groups in the tree
func (c *Champion) Size() int {
	if c.tree == nil {
		return 0
	}
	return c.tree.Len()
}

// Returns approximation of memory usage of the engine
func (c *Champion) MemoryUsage() uint64 {
	if c.tree == nil {
		return uint64(unsafe.Sizeof(Champion{}))
	}
	return c.tree.SizeBytes() + uint64(c.history.Len())*uint64(unsafe.Sizeof(Slot(0))) +
		uint64(unsafe.Sizeof(Champion{}))
}

func (c *Champion) StatsListener() *StatsListener {
	return c.listener
}

func (c *Champion) SetListener(listener StatsListener) {
	*c.listener = listener
}

func (c *Champion) ResetListener() {
	c.listener.OnSelect(nil).OnObserve(nil)
}

func (c *Champion) String() string {
	return fmt.Sprintf("Champion={Lookback=%d, Round=%d, Size=%d, MemoryUsage=%d}",
		c.lookback, c.round, c.Size(), c.MemoryUsage())
}
