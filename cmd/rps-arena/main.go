// Command rps-arena plays a series of rock-paper-scissors games between two
// registered strategies and prints the summary.
//
//	rps-arena -p1 "champion -lkbk 3" -p2 frequency -games 200 -threads 4
//	rps-arena -config arena.yaml -archive ./rounds
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-champion/pkg/bench"
	"github.com/IlikeChooros/go-champion/pkg/config"
	"github.com/IlikeChooros/go-champion/pkg/store"
	"github.com/IlikeChooros/go-champion/pkg/strategies"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "rps-arena:", err)
		os.Exit(1)
	}
}

// "champion -lkbk 3" -> Player{champion, [-lkbk 3]}
func parsePlayer(s string) bench.Player {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return bench.Player{}
	}
	return bench.Player{Name: fields[0], Args: fields[1:]}
}

func run() error {
	configPath := flag.String("config", "", "YAML run file")
	p1 := flag.String("p1", "", "player 1, strategy name followed by its arguments")
	p2 := flag.String("p2", "", "player 2, strategy name followed by its arguments")
	games := flag.Int("games", 0, "number of games")
	rounds := flag.Int("rounds", 0, "rounds per game")
	threads := flag.Int("threads", 0, "number of workers")
	movetime := flag.Int("movetime", 0, "time budget of the whole run in ms, negative means no limit")
	archive := flag.String("archive", "", "directory for the parquet round archive")
	verbose := flag.Bool("v", false, "debug logging")
	list := flag.Bool("list", false, "list the registered strategies and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(strategies.Names(), "\n"))
		return nil
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	// Flags given explicitly override the run file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p1":
			cfg.Player1 = parsePlayer(*p1)
		case "p2":
			cfg.Player2 = parsePlayer(*p2)
		case "games":
			cfg.Games = *games
		case "rounds":
			cfg.Rounds = *rounds
		case "threads":
			cfg.Threads = *threads
		case "movetime":
			cfg.MovetimeMs = *movetime
		case "archive":
			cfg.ArchiveDir = *archive
		}
	})
	if *verbose {
		cfg.LogLevel = zerolog.LevelDebugValue
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(cfg.Level()).
		With().Timestamp().Logger()
	strategies.ChampionLogger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	arena := bench.NewVersusArena(cfg.Player1, cfg.Player2).WithLogger(logger)
	arena.Setup(cfg.Limits())

	var writer *store.ArchiveWriter
	if cfg.ArchiveDir != "" {
		var err error
		if writer, err = store.NewArchiveWriter(cfg.ArchiveDir); err != nil {
			return err
		}
		arena.WithArchive(writer)
	}

	summary, runErr := arena.Run(ctx, bench.NewLogListener(logger))
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if writer != nil {
		path, rows, games, err := writer.Finalize()
		if err != nil {
			return err
		}
		logger.Info().Str("path", path).Int("rows", rows).Int("games", games).Msg("archive written")
	}

	printSummary(termenv.NewOutput(os.Stdout), summary)
	return nil
}

func printSummary(out *termenv.Output, s bench.VersusSummaryInfo) {
	green := out.Color("2")
	red := out.Color("1")
	yellow := out.Color("3")

	score := func(wins, losses int) termenv.Style {
		text := out.String(fmt.Sprint(wins))
		switch {
		case wins > losses:
			return text.Foreground(green).Bold()
		case wins < losses:
			return text.Foreground(red)
		default:
			return text.Foreground(yellow)
		}
	}

	fmt.Fprintf(out, "%s %s\n", out.String("arena").Bold(), s.ArenaID)
	fmt.Fprintf(out, "  %-28s games %s  rounds %s\n", s.P1Name,
		score(s.P1Wins, s.P2Wins), score(s.P1RoundWins, s.P2RoundWins))
	fmt.Fprintf(out, "  %-28s games %s  rounds %s\n", s.P2Name,
		score(s.P2Wins, s.P1Wins), score(s.P2RoundWins, s.P1RoundWins))
	fmt.Fprintf(out, "  %-28s games %d  rounds %d\n", "draws", s.Draws, s.RoundDraws)
	fmt.Fprintf(out, "  score %.3f  games %d  workers %d  stop %s  %dms\n",
		s.P1Score(), s.TotalGames, s.Workers, s.StopReason, s.ElapsedMs)
}
