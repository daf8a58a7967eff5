package tournament

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"arena/bot"
	"arena/engine"
	"arena/game"
	"arena/metrics"
)

var ErrTooFewBots = errors.New("tournament: need at least two bots")

// Report is everything one tournament run produced.
type Report struct {
	Standings *Standings
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
}

// Tournament runs the full round-robin among the selected bots: every
// unordered pair plays twice per round, once with each color.
type Tournament struct {
	registry    *bot.Registry
	rules       game.Rules
	ids         []string
	rounds      int
	seed        uint64
	concurrency int
	plyLimit    int
	moveTimeout time.Duration
	observer    game.Observer
}

type Option func(*Tournament)

// WithBots restricts the field to the given ids; the default is every
// registered bot.
func WithBots(ids ...string) Option {
	return func(t *Tournament) {
		if len(ids) > 0 {
			t.ids = ids
		}
	}
}

func WithRounds(rounds int) Option {
	return func(t *Tournament) {
		if rounds > 0 {
			t.rounds = rounds
		}
	}
}

// WithSeed sets the base seed the per-game bot seeds derive from.
func WithSeed(seed uint64) Option {
	return func(t *Tournament) {
		t.seed = seed
	}
}

// WithConcurrency bounds how many games run at once.
func WithConcurrency(n int) Option {
	return func(t *Tournament) {
		if n > 0 {
			t.concurrency = n
		}
	}
}

func WithPlyLimit(plies int) Option {
	return func(t *Tournament) {
		if plies > 0 {
			t.plyLimit = plies
		}
	}
}

func WithMoveTimeout(d time.Duration) Option {
	return func(t *Tournament) {
		if d > 0 {
			t.moveTimeout = d
		}
	}
}

// WithObserver forwards every move of every game to o. When concurrency is
// above one the callback is invoked from multiple match goroutines at once,
// so it must be safe for concurrent use.
func WithObserver(o game.Observer) Option {
	return func(t *Tournament) {
		t.observer = o
	}
}

func New(registry *bot.Registry, rules game.Rules, options ...Option) *Tournament {
	t := &Tournament{
		registry:    registry,
		rules:       rules,
		rounds:      1,
		seed:        1,
		concurrency: 1,
		plyLimit:    engine.DefaultPlyLimit,
		moveTimeout: engine.DefaultMoveTimeout,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Run executes every fixture and returns the final report. Fixtures run
// concurrently up to the configured limit; results are folded into the
// standings in completion order. Cancelling ctx abandons unfinished games
// without touching what is already recorded.
func (t *Tournament) Run(ctx context.Context) (*Report, error) {
	ids := t.ids
	if len(ids) == 0 {
		ids = t.registry.IDs()
	}
	if len(ids) < 2 {
		return nil, ErrTooFewBots
	}
	for _, id := range ids {
		if !t.registry.Has(id) {
			return nil, fmt.Errorf("%w: %q", bot.ErrUnknownID, id)
		}
	}

	var fixtures []Fixture
	for round := 1; round <= t.rounds; round++ {
		for _, fx := range Fixtures(ids) {
			fx.Round = round
			fixtures = append(fixtures, fx)
		}
	}

	report := &Report{Standings: NewStandings(ids)}
	var mu sync.Mutex // guards report.Games and report.Moves

	log.Info().Int("bots", len(ids)).Int("fixtures", len(fixtures)).Msg("starting tournament")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)
	for i, fx := range fixtures {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// Each fixture derives its own seeds so a rerun with the same
			// base seed replays identically, regardless of completion order.
			white, err := t.registry.Create(fx.White, t.rules, t.seed+uint64(2*i))
			if err != nil {
				return err
			}
			black, err := t.registry.Create(fx.Black, t.rules, t.seed+uint64(2*i+1))
			if err != nil {
				return err
			}

			log.Info().Int("round", fx.Round).Str("white", fx.White).Str("black", fx.Black).Msg("starting game")

			match := engine.NewMatch(t.rules, fx.White, white, fx.Black, black,
				engine.WithPlyLimit(t.plyLimit),
				engine.WithMoveTimeout(t.moveTimeout),
				engine.WithObserver(t.observer))
			start := time.Now()
			result, timings := match.Run()
			if err := ctx.Err(); err != nil {
				// Cancelled mid-tournament: drop this result whole.
				return err
			}

			report.Standings.Record(result)
			gameID := uuid.New()
			record := metrics.GameRecord{
				ID:          gameID,
				Round:       fx.Round,
				White:       fx.White,
				Black:       fx.Black,
				Winner:      result.Winner(),
				Outcome:     result.Outcome.String(),
				Termination: string(result.Termination),
				Plies:       result.Plies,
				StartTime:   start,
				EndTime:     time.Now(),
			}
			mu.Lock()
			report.Games = append(report.Games, record)
			for _, timing := range timings {
				report.Moves = append(report.Moves, metrics.MoveRecord{
					Game:     gameID,
					Ply:      timing.Ply,
					Bot:      timing.Bot,
					Move:     timing.Move,
					Duration: timing.Duration,
				})
			}
			mu.Unlock()

			log.Info().Str("white", fx.White).Str("black", fx.Black).
				Str("outcome", result.Outcome.String()).
				Str("termination", string(result.Termination)).
				Int("plies", result.Plies).Msg("game over")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	log.Info().Int("games", len(report.Games)).Msg("tournament complete")
	return report, nil
}
