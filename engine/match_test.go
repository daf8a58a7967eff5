package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"arena/bot"
	"arena/game"
)

type scriptMove string

func (m scriptMove) String() string { return string(m) }

type scriptPos struct {
	turn game.Color
	ply  int
}

func (p scriptPos) Turn() game.Color { return p.turn }

// scriptRules is a trivial two-move game that turns terminal after endAt
// plies with a fixed classification, or never when endAt is zero.
type scriptRules struct {
	endAt   int
	outcome game.Outcome
	reason  game.Termination
}

func (r scriptRules) Initial() game.Position { return scriptPos{turn: game.White} }

func (r scriptRules) LegalMoves(game.Position) []game.Move {
	return []game.Move{scriptMove("a"), scriptMove("b")}
}

func (r scriptRules) Apply(p game.Position, mv game.Move) (game.Position, error) {
	pos := p.(scriptPos)
	return scriptPos{turn: pos.turn.Other(), ply: pos.ply + 1}, nil
}

func (r scriptRules) Terminal(p game.Position) (bool, game.Outcome, game.Termination) {
	if r.endAt > 0 && p.(scriptPos).ply >= r.endAt {
		return true, r.outcome, r.reason
	}
	return false, game.Draw, ""
}

func (r scriptRules) IsCapture(game.Position, game.Move) bool    { return false }
func (r scriptRules) IsAttacked(game.Position, game.Square) bool { return false }
func (r scriptRules) Origin(game.Move) game.Square               { return 0 }
func (r scriptRules) Destination(game.Move) game.Square          { return 0 }
func (r scriptRules) PieceSquares(game.Position, game.Color) []game.Square {
	return nil
}

type firstBot struct{}

func (firstBot) Name() string { return "First" }
func (firstBot) ChooseMove(_ game.Position, legal []game.Move) (game.Move, error) {
	return legal[0], nil
}

// rogueBot returns a move that was never offered.
type rogueBot struct{}

func (rogueBot) Name() string { return "Rogue" }
func (rogueBot) ChooseMove(game.Position, []game.Move) (game.Move, error) {
	return scriptMove("zz"), nil
}

type failingBot struct{}

func (failingBot) Name() string { return "Failing" }
func (failingBot) ChooseMove(game.Position, []game.Move) (game.Move, error) {
	return nil, errors.New("boom")
}

type sleepyBot struct{ nap time.Duration }

func (b sleepyBot) Name() string { return "Sleepy" }
func (b sleepyBot) ChooseMove(_ game.Position, legal []game.Move) (game.Move, error) {
	time.Sleep(b.nap)
	return legal[0], nil
}

func TestMatchPlaysToNaturalTerminal(t *testing.T) {
	rules := scriptRules{endAt: 3, outcome: game.WhiteWins, reason: game.Checkmate}
	m := NewMatch(rules, "w", firstBot{}, "b", firstBot{})

	result, timings := m.Run()

	require.Equal(t, game.WhiteWins, result.Outcome)
	require.Equal(t, game.Checkmate, result.Termination)
	require.Equal(t, 3, result.Plies)
	require.Len(t, result.Moves, 3)
	require.Len(t, timings, 3, "every decision should be timed")
	for i, timing := range timings {
		require.Equal(t, result.Moves[i].String(), timing.Move, "timing %d must carry the played move", i)
	}
	require.Equal(t, "w", result.White)
	require.Equal(t, "b", result.Black)
}

func TestMatchPlyLimitForcesDraw(t *testing.T) {
	m := NewMatch(scriptRules{}, "w", firstBot{}, "b", firstBot{}, WithPlyLimit(10))

	result, _ := m.Run()

	require.Equal(t, game.Draw, result.Outcome)
	require.Equal(t, game.MoveLimit, result.Termination)
	require.Equal(t, 10, result.Plies, "ply count must equal the limit at a forced draw")
}

func TestMatchIllegalMoveForfeitsWhite(t *testing.T) {
	m := NewMatch(scriptRules{}, "w", rogueBot{}, "b", firstBot{}, WithPlyLimit(10))

	result, _ := m.Run()

	require.Equal(t, game.BlackWins, result.Outcome, "the opponent of the offender wins")
	require.Equal(t, game.IllegalMove, result.Termination)
	require.Equal(t, 0, result.Plies)
}

func TestMatchIllegalMoveForfeitsBlack(t *testing.T) {
	m := NewMatch(scriptRules{}, "w", firstBot{}, "b", rogueBot{}, WithPlyLimit(10))

	result, _ := m.Run()

	require.Equal(t, game.WhiteWins, result.Outcome)
	require.Equal(t, game.IllegalMove, result.Termination)
	require.Equal(t, 1, result.Plies, "white's move stands, black faulted on the reply")
}

func TestMatchBotErrorForfeits(t *testing.T) {
	m := NewMatch(scriptRules{}, "w", failingBot{}, "b", firstBot{}, WithPlyLimit(10))

	result, _ := m.Run()

	require.Equal(t, game.BlackWins, result.Outcome)
	require.Equal(t, game.BotError, result.Termination)
}

func TestMatchTimeoutForfeits(t *testing.T) {
	m := NewMatch(scriptRules{}, "w", sleepyBot{nap: 200 * time.Millisecond}, "b", firstBot{},
		WithPlyLimit(10), WithMoveTimeout(10*time.Millisecond))

	result, _ := m.Run()

	require.Equal(t, game.BlackWins, result.Outcome)
	require.Equal(t, game.Timeout, result.Termination)
}

func TestMatchObserverSeesEveryMove(t *testing.T) {
	var plies []int
	observer := func(after game.Position, mv game.Move, ply int) {
		require.NotNil(t, after)
		require.NotNil(t, mv)
		plies = append(plies, ply)
	}
	m := NewMatch(scriptRules{}, "w", firstBot{}, "b", firstBot{},
		WithPlyLimit(5), WithObserver(observer))

	m.Run()

	require.Equal(t, []int{1, 2, 3, 4, 5}, plies)
}

func TestMatchSeededRandomReplaysIdentically(t *testing.T) {
	rules := scriptRules{}
	replay := func() []string {
		m := NewMatch(rules, "w", bot.NewRandom(42), "b", bot.NewRandom(43), WithPlyLimit(30))
		result, _ := m.Run()
		history := make([]string, len(result.Moves))
		for i, mv := range result.Moves {
			history[i] = mv.String()
		}
		return history
	}

	require.Equal(t, replay(), replay(), "identical seeds must produce identical histories")
}
