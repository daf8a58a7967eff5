package bot

import (
	"arena/game"

	"golang.org/x/exp/rand"
)

// Defensive avoids moving a piece onto a square the opponent attacks. Moves
// whose destination would be safe are preferred; if every move exposes the
// piece it picks uniformly among all of them.
type Defensive struct {
	rules game.Rules
	rng   *rand.Rand
}

func NewDefensive(rules game.Rules, seed uint64) *Defensive {
	return &Defensive{rules: rules, rng: newRand(seed)}
}

func (b *Defensive) Name() string { return "Defensive Bot" }

func (b *Defensive) ChooseMove(pos game.Position, legal []game.Move) (game.Move, error) {
	var safe []game.Move
	for _, mv := range legal {
		after, err := b.rules.Apply(pos, mv)
		if err != nil {
			// Unanswerable moves count as risky.
			continue
		}
		if !b.rules.IsAttacked(after, b.rules.Destination(mv)) {
			safe = append(safe, mv)
		}
	}
	if len(safe) > 0 {
		return pick(b.rng, safe), nil
	}
	return pick(b.rng, legal), nil
}
