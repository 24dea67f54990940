// Command rps-play is a terminal game of rock-paper-scissors against the
// champion engine.
//
//	rps-play -lkbk 3
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-champion/pkg/champion"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "rps-play:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("rps-play", flag.ContinueOnError)
	lookback := fs.Int("lkbk", champion.DefaultLookback, "number of past rounds the engine remembers")
	seed := fs.Int64("seed", 0, "engine random seed, 0 picks one")
	logPath := fs.String("log", "", "write debug logs to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := zerolog.Nop()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}

	engine, err := champion.New(champion.DefaultOptions().
		SetLookback(*lookback).
		SetSeed(*seed).
		SetLogger(logger))
	if err != nil {
		return err
	}
	defer engine.Release()

	_, err = tea.NewProgram(newModel(engine)).Run()
	return err
}
