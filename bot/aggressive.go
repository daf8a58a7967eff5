package bot

import (
	"arena/game"

	"golang.org/x/exp/rand"
)

// Aggressive prefers moves that capture an opponent piece, picking uniformly
// among captures when any exist.
type Aggressive struct {
	rules game.Rules
	rng   *rand.Rand
}

func NewAggressive(rules game.Rules, seed uint64) *Aggressive {
	return &Aggressive{rules: rules, rng: newRand(seed)}
}

func (b *Aggressive) Name() string { return "Aggressive Bot" }

func (b *Aggressive) ChooseMove(pos game.Position, legal []game.Move) (game.Move, error) {
	var captures []game.Move
	for _, mv := range legal {
		if b.rules.IsCapture(pos, mv) {
			captures = append(captures, mv)
		}
	}
	if len(captures) > 0 {
		return pick(b.rng, captures), nil
	}
	return pick(b.rng, legal), nil
}
