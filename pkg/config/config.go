// Package config loads arena run files.
//
//	player1:
//	  name: champion
//	  args: ["-lkbk", "3"]
//	player2:
//	  name: frequency
//	games: 100
//	rounds: 1000
//	threads: 4
//	movetime_ms: -1
//	archive_dir: ./archive
//	log_level: info
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/IlikeChooros/go-champion/pkg/bench"
	"github.com/IlikeChooros/go-champion/pkg/rps"
	"github.com/IlikeChooros/go-champion/pkg/strategies"
)

var ErrInvalidConfig = errors.New("invalid arena config")

type ArenaConfig struct {
	Player1    bench.Player `yaml:"player1"`
	Player2    bench.Player `yaml:"player2"`
	Games      int          `yaml:"games"`
	Rounds     int          `yaml:"rounds"`
	Threads    int          `yaml:"threads"`
	MovetimeMs int          `yaml:"movetime_ms"`
	ArchiveDir string       `yaml:"archive_dir"`
	LogLevel   string       `yaml:"log_level"`
}

// Champion against the frequency counter, no archive
func Default() ArenaConfig {
	return ArenaConfig{
		Player1:    bench.Player{Name: "champion"},
		Player2:    bench.Player{Name: "frequency"},
		Games:      bench.DefaultGamesLimit,
		Rounds:     bench.DefaultRoundsLimit,
		Threads:    1,
		MovetimeMs: bench.DefaultMovetimeLimit,
		LogLevel:   zerolog.LevelInfoValue,
	}
}

// Read and validate a run file, missing fields keep their defaults
func Load(path string) (ArenaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ArenaConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (ArenaConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ArenaConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return ArenaConfig{}, err
	}
	return cfg, nil
}

func (c ArenaConfig) Validate() error {
	known := strategies.Names()
	for i, p := range []bench.Player{c.Player1, c.Player2} {
		if p.Name == "" {
			return fmt.Errorf("%w: player%d has no name", ErrInvalidConfig, i+1)
		}
		s, err := p.New()
		if err != nil {
			return fmt.Errorf("%w: player%d (known: %v): %v", ErrInvalidConfig, i+1, known, err)
		}
		rps.Release(s)
	}
	if c.Games < 0 {
		return fmt.Errorf("%w: games must be nonnegative, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, c.Rounds)
	}
	if c.Threads < 1 {
		return fmt.Errorf("%w: threads must be positive, got %d", ErrInvalidConfig, c.Threads)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Parsed log level, info if the value is not recognised
func (c ArenaConfig) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func (c ArenaConfig) Limits() *bench.Limits {
	return bench.DefaultLimits().
		SetGames(c.Games).
		SetRounds(c.Rounds).
		SetThreads(c.Threads).
		SetMovetime(c.MovetimeMs)
}
