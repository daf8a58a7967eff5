package bot

import (
	"time"

	"arena/game"
)

// Chaotic indexes the legal moves by the wall-clock second at call time.
// It is the one variant that is deliberately not reproducible across runs;
// the clock is injected so tests can still pin it down.
type Chaotic struct {
	now func() time.Time
}

func NewChaotic(now func() time.Time) *Chaotic {
	if now == nil {
		now = time.Now
	}
	return &Chaotic{now: now}
}

func (b *Chaotic) Name() string { return "Chaotic Bot" }

func (b *Chaotic) ChooseMove(pos game.Position, legal []game.Move) (game.Move, error) {
	return legal[b.now().Second()%len(legal)], nil
}
