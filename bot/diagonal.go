package bot

import (
	"arena/game"

	"golang.org/x/exp/rand"
)

// Diagonal favors moves that displace a piece along a strict diagonal,
// whatever piece that happens to be.
type Diagonal struct {
	rules game.Rules
	rng   *rand.Rand
}

func NewDiagonal(rules game.Rules, seed uint64) *Diagonal {
	return &Diagonal{rules: rules, rng: newRand(seed)}
}

func (b *Diagonal) Name() string { return "Diagonal Bot" }

func (b *Diagonal) ChooseMove(pos game.Position, legal []game.Move) (game.Move, error) {
	var diagonals []game.Move
	for _, mv := range legal {
		from := b.rules.Origin(mv)
		to := b.rules.Destination(mv)
		df := abs(to.File() - from.File())
		dr := abs(to.Rank() - from.Rank())
		if df == dr && df > 0 {
			diagonals = append(diagonals, mv)
		}
	}
	if len(diagonals) > 0 {
		return pick(b.rng, diagonals), nil
	}
	return pick(b.rng, legal), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
