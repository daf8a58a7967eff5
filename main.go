package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"arena/bot"
	"arena/chessrules"
	"arena/engine"
	"arena/game"
	"arena/metrics"
	"arena/tournament"
)

func main() {
	seed := flag.Uint64("seed", 1, "base random seed for the deterministic bots")
	plies := flag.Int("plies", engine.DefaultPlyLimit, "maximum plies per game before calling a draw")
	concurrency := flag.Int("concurrency", 1, "number of games to run in parallel")
	timeout := flag.Duration("timeout", engine.DefaultMoveTimeout, "per-move decision timeout")
	rounds := flag.Int("rounds", 1, "number of times the full pairing set is played")
	csvDir := flag.String("csv", "", "directory to write game and move records into")
	watch := flag.String("watch", "", "play a single game and print each move, e.g. -watch random:aggressive")
	botList := flag.String("bots", "", "comma-separated bot ids to include (default: all)")
	quiet := flag.Bool("quiet", false, "suppress per-game logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if *quiet {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	registry := bot.DefaultRegistry()
	rules := chessrules.New()

	var err error
	if *watch != "" {
		err = watchGame(registry, rules, *watch, *seed, *plies, *timeout)
	} else {
		err = runTournament(registry, rules, *botList, *seed, *plies, *concurrency, *timeout, *rounds, *csvDir)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runTournament(registry *bot.Registry, rules game.Rules, botList string, seed uint64, plies, concurrency int, timeout time.Duration, rounds int, csvDir string) error {
	options := []tournament.Option{
		tournament.WithSeed(seed),
		tournament.WithPlyLimit(plies),
		tournament.WithConcurrency(concurrency),
		tournament.WithMoveTimeout(timeout),
		tournament.WithRounds(rounds),
	}
	if botList != "" {
		options = append(options, tournament.WithBots(splitIDs(botList)...))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := tournament.New(registry, rules, options...).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(report.Standings)

	if csvDir != "" {
		writer, err := metrics.NewWriter(csvDir)
		if err != nil {
			return err
		}
		if err := writer.WriteGameRecords(report.Games); err != nil {
			return err
		}
		if err := writer.WriteMoveRecords(report.Moves); err != nil {
			return err
		}
		log.Info().Str("dir", writer.Dir()).Msg("stored game and move records")
	}
	return nil
}

func watchGame(registry *bot.Registry, rules game.Rules, pairing string, seed uint64, plies int, timeout time.Duration) error {
	whiteID, blackID, ok := strings.Cut(pairing, ":")
	if !ok {
		return fmt.Errorf("watch wants WHITE:BLACK, got %q", pairing)
	}
	white, err := registry.Create(whiteID, rules, seed)
	if err != nil {
		return err
	}
	black, err := registry.Create(blackID, rules, seed+1)
	if err != nil {
		return err
	}

	fmt.Printf("%s (white) vs %s (black)\n", white.Name(), black.Name())

	observer := func(after game.Position, mv game.Move, ply int) {
		fmt.Printf("ply %d: %s\n%s\n", ply, mv, chessrules.Render(after))
	}
	match := engine.NewMatch(rules, whiteID, white, blackID, black,
		engine.WithPlyLimit(plies),
		engine.WithMoveTimeout(timeout),
		engine.WithObserver(observer))
	result, _ := match.Run()

	fmt.Printf("result: %s (%s) after %d plies\n", result.Outcome, result.Termination, result.Plies)
	return nil
}

func splitIDs(list string) []string {
	var ids []string
	for _, id := range strings.Split(list, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
