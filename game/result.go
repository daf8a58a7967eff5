package game

// Result is the immutable record of one completed game.
type Result struct {
	White       string // white bot id
	Black       string // black bot id
	Outcome     Outcome
	Termination Termination
	Plies       int
	Moves       []Move
}

// Winner returns the winning bot id, or "" on a draw.
func (r Result) Winner() string {
	switch r.Outcome {
	case WhiteWins:
		return r.White
	case BlackWins:
		return r.Black
	}
	return ""
}

// Loser returns the losing bot id, or "" on a draw.
func (r Result) Loser() string {
	switch r.Outcome {
	case WhiteWins:
		return r.Black
	case BlackWins:
		return r.White
	}
	return ""
}
