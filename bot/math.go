package bot

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"arena/game"
)

const phi = 1.618033988749895 // golden ratio

// Math scores every legal move with a deliberately overwrought formula mixing
// the wall clock, board density and per-square trigonometry, then rolls a
// weighted roulette over the scores. Like Chaotic the clock is injected so
// tests can pin the formula down.
type Math struct {
	rules game.Rules
	rng   *rand.Rand
	now   func() time.Time
}

func NewMath(rules game.Rules, seed uint64, now func() time.Time) *Math {
	if now == nil {
		now = time.Now
	}
	return &Math{rules: rules, rng: newRand(seed), now: now}
}

func (b *Math) Name() string { return "Math Bot" }

func (b *Math) ChooseMove(pos game.Position, legal []game.Move) (game.Move, error) {
	t := b.now()
	hourFactor := float64(t.Hour()) / 12 * math.Pi
	minuteFactor := float64(t.Minute()) / 30 * math.E
	secondFactor := float64(t.Second()) / 30 * phi

	pieces := len(b.rules.PieceSquares(pos, game.White)) +
		len(b.rules.PieceSquares(pos, game.Black))
	boardFactor := float64(pieces) / 32 * math.E

	magic := math.Mod(math.Abs(
		math.Sin(hourFactor)*math.Cos(minuteFactor)*
			math.Tan(secondFactor+0.1)*boardFactor), 1)

	weights := make([]float64, len(legal))
	total := 0.0
	for i, mv := range legal {
		from := b.rules.Origin(mv)
		to := b.rules.Destination(mv)

		value := math.Sin(squareValue(from)*math.Pi) *
			math.Cos(squareValue(to)*math.Pi) *
			math.Exp(magic*math.E/10) *
			math.Log(boardFactor+1) *
			math.Pow(phi, float64(abs(int(from)-int(to))%8)) / 10
		if b.rules.IsCapture(pos, mv) {
			value *= 4
		}
		value += math.Sqrt(float64(int(from)*int(to))+1) / 64

		weights[i] = math.Abs(value)
		total += weights[i]
	}
	if total == 0 {
		return pick(b.rng, legal), nil
	}

	// Roulette: the score of a move is its share of the wheel.
	roll := b.rng.Float64() * total
	for i, w := range weights {
		roll -= w
		if roll <= 0 {
			return legal[i], nil
		}
	}
	return legal[len(legal)-1], nil
}

// squareValue maps a square to [0,1) through a golden-ratio spiral over its
// file and a sine over its rank.
func squareValue(sq game.Square) float64 {
	return math.Mod(math.Pow(phi, float64(sq.File()+1))*
		math.Sin(float64(sq.Rank())*math.Pi/4), 1)
}
