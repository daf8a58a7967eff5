package bot

import (
	"arena/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: newRand(seed)}
}

func (b *Random) Name() string { return "Random Bot" }

func (b *Random) ChooseMove(pos game.Position, legal []game.Move) (game.Move, error) {
	return pick(b.rng, legal), nil
}
