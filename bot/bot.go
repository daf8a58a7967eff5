package bot

import (
	"arena/game"

	"golang.org/x/exp/rand"
)

// Bot chooses a move from the legal moves offered for the current position.
// The returned move must be an element of legal; anything else forfeits the
// game. Implementations may query the rules engine they were built with but
// never apply moves to the live game themselves.
type Bot interface {
	Name() string
	ChooseMove(pos game.Position, legal []game.Move) (game.Move, error)
}

// Factory builds a fresh bot instance for one game. seed makes the bot's
// tie-breaking reproducible; factories for wall-clock-driven bots ignore it.
type Factory func(rules game.Rules, seed uint64) Bot

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// pick chooses uniformly among moves. Every variant falls back to this when
// its heuristic leaves no preferred subset.
func pick(rng *rand.Rand, moves []game.Move) game.Move {
	return moves[rng.Intn(len(moves))]
}
