package bot

import (
	"arena/game"

	"golang.org/x/exp/rand"
)

// Paranoid keeps its pieces away from the opponent. Each move is scored by
// summing, over its own pieces in the resulting position, the distance to
// the nearest opponent piece; the highest total wins, ties broken uniformly.
type Paranoid struct {
	rules game.Rules
	rng   *rand.Rand
}

func NewParanoid(rules game.Rules, seed uint64) *Paranoid {
	return &Paranoid{rules: rules, rng: newRand(seed)}
}

func (b *Paranoid) Name() string { return "Paranoid Bot" }

func (b *Paranoid) ChooseMove(pos game.Position, legal []game.Move) (game.Move, error) {
	me := pos.Turn()
	best := -1
	var preferred []game.Move
	for _, mv := range legal {
		after, err := b.rules.Apply(pos, mv)
		if err != nil {
			continue
		}
		score := b.safety(after, me)
		switch {
		case score > best:
			best = score
			preferred = preferred[:0]
			preferred = append(preferred, mv)
		case score == best:
			preferred = append(preferred, mv)
		}
	}
	if len(preferred) > 0 {
		return pick(b.rng, preferred), nil
	}
	return pick(b.rng, legal), nil
}

func (b *Paranoid) safety(pos game.Position, me game.Color) int {
	own := b.rules.PieceSquares(pos, me)
	theirs := b.rules.PieceSquares(pos, me.Other())
	score := 0
	for _, sq := range own {
		nearest := 8 // wider than any board distance
		for _, opp := range theirs {
			if d := game.Distance(sq, opp); d < nearest {
				nearest = d
			}
		}
		score += nearest
	}
	return score
}
