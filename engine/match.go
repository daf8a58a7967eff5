package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"arena/bot"
	"arena/game"
)

const (
	DefaultPlyLimit    = 200
	DefaultMoveTimeout = 5 * time.Second
)

var errMoveTimeout = errors.New("engine: move timeout")

// MoveTiming records one decision: the move the bot played and how long it
// took. Move is empty when the decision faulted before producing one.
type MoveTiming struct {
	Ply      int
	Bot      string
	Move     string
	Duration time.Duration
}

// Match drives a single game between two bots to a terminal result. It
// enforces turn order, the ply ceiling and the per-move timeout, and
// converts every bot fault into a forfeit instead of letting it escape.
type Match struct {
	rules       game.Rules
	whiteID     string
	blackID     string
	white       bot.Bot
	black       bot.Bot
	plyLimit    int
	moveTimeout time.Duration
	observer    game.Observer
}

type Option func(*Match)

func WithPlyLimit(plies int) Option {
	return func(m *Match) {
		if plies > 0 {
			m.plyLimit = plies
		}
	}
}

func WithMoveTimeout(d time.Duration) Option {
	return func(m *Match) {
		if d > 0 {
			m.moveTimeout = d
		}
	}
}

func WithObserver(o game.Observer) Option {
	return func(m *Match) {
		m.observer = o
	}
}

func NewMatch(rules game.Rules, whiteID string, white bot.Bot, blackID string, black bot.Bot, options ...Option) *Match {
	m := &Match{
		rules:       rules,
		whiteID:     whiteID,
		blackID:     blackID,
		white:       white,
		black:       black,
		plyLimit:    DefaultPlyLimit,
		moveTimeout: DefaultMoveTimeout,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Run executes the game loop until checkmate, stalemate, the ply ceiling or
// a bot fault, and returns the result plus per-move timings.
func (m *Match) Run() (game.Result, []MoveTiming) {
	pos := m.rules.Initial()
	result := game.Result{White: m.whiteID, Black: m.blackID}
	var timings []MoveTiming

	for {
		if over, outcome, reason := m.rules.Terminal(pos); over {
			result.Outcome = outcome
			result.Termination = reason
			return result, timings
		}
		if result.Plies >= m.plyLimit {
			result.Outcome = game.Draw
			result.Termination = game.MoveLimit
			return result, timings
		}

		side := pos.Turn()
		active, id := m.white, m.whiteID
		if side == game.Black {
			active, id = m.black, m.blackID
		}

		legal := m.rules.LegalMoves(pos)
		if len(legal) == 0 {
			// The rules engine left a no-move position unclassified.
			result.Outcome = game.Draw
			result.Termination = game.Stalemate
			return result, timings
		}

		mv, elapsed, err := m.choose(active, pos, legal)
		played := ""
		if mv != nil {
			played = mv.String()
		}
		timings = append(timings, MoveTiming{Ply: result.Plies + 1, Bot: id, Move: played, Duration: elapsed})
		if err != nil {
			log.Warn().Str("bot", id).Err(err).Msg("bot fault")
			return forfeit(result, side, faultReason(err)), timings
		}
		if !member(legal, mv) {
			log.Warn().Str("bot", id).Str("move", fmt.Sprint(mv)).Msg("bot returned a move outside the legal set")
			return forfeit(result, side, game.IllegalMove), timings
		}

		next, err := m.rules.Apply(pos, mv)
		if err != nil {
			log.Warn().Str("bot", id).Err(err).Msg("rules engine rejected move")
			return forfeit(result, side, game.RulesError), timings
		}

		result.Moves = append(result.Moves, mv)
		result.Plies++
		if m.observer != nil {
			m.observer(next, mv, result.Plies)
		}
		pos = next
	}
}

// choose runs the bot's decision on its own goroutine so an unresponsive
// bot becomes a timeout fault rather than a hang.
func (m *Match) choose(b bot.Bot, pos game.Position, legal []game.Move) (game.Move, time.Duration, error) {
	type reply struct {
		mv  game.Move
		err error
	}
	start := time.Now()
	ch := make(chan reply, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- reply{err: fmt.Errorf("bot panicked: %v", r)}
			}
		}()
		mv, err := b.ChooseMove(pos, legal)
		ch <- reply{mv: mv, err: err}
	}()

	select {
	case rep := <-ch:
		return rep.mv, time.Since(start), rep.err
	case <-time.After(m.moveTimeout):
		return nil, time.Since(start), errMoveTimeout
	}
}

func forfeit(result game.Result, faulting game.Color, reason game.Termination) game.Result {
	if faulting == game.White {
		result.Outcome = game.BlackWins
	} else {
		result.Outcome = game.WhiteWins
	}
	result.Termination = reason
	return result
}

func faultReason(err error) game.Termination {
	if errors.Is(err, errMoveTimeout) {
		return game.Timeout
	}
	return game.BotError
}

func member(legal []game.Move, mv game.Move) bool {
	if mv == nil {
		return false
	}
	for _, lm := range legal {
		if lm == mv {
			return true
		}
	}
	return false
}
