package metrics

import (
	"time"

	"github.com/google/uuid"
)

// GameRecord is the exportable summary of one completed game.
type GameRecord struct {
	ID          uuid.UUID
	Round       int
	White       string
	Black       string
	Winner      string // bot id, empty on a draw
	Outcome     string
	Termination string
	Plies       int
	StartTime   time.Time
	EndTime     time.Time
}

// MoveRecord is one move of a game's history with its decision timing, so
// the export preserves the full game record, not just the clock.
type MoveRecord struct {
	Game     uuid.UUID
	Ply      int
	Bot      string
	Move     string
	Duration time.Duration
}
