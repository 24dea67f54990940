package strategies

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-champion/pkg/champion"
	"github.com/IlikeChooros/go-champion/pkg/rps"
)

// Logger handed to champions built through the registry
var ChampionLogger = zerolog.Nop()

// Accepts only '-lkbk n' (nonnegative lookback) and '-seed n'
func newChampion(args []string) (rps.Strategy, error) {
	fs := flag.NewFlagSet("champion", flag.ContinueOnError)
	lookback := fs.Int("lkbk", champion.DefaultLookback, "number of past rounds used as context")
	seed := fs.Int64("seed", 0, "random seed, 0 picks one")

	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	if *lookback < 0 {
		return nil, fmt.Errorf("%w: lookback must be a nonnegative integer, got %d", ErrInvalidArgs, *lookback)
	}

	c, err := champion.New(champion.DefaultOptions().
		SetLookback(*lookback).
		SetSeed(*seed).
		SetLogger(ChampionLogger))
	if err != nil {
		return nil, err
	}
	return c, nil
}
