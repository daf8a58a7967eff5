package game

// Color identifies a side of the board.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Square is a board coordinate, file-major from a1 (0) to h8 (63).
type Square int

func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func (s Square) File() int { return int(s) % 8 }
func (s Square) Rank() int { return int(s) / 8 }

// Distance is the Chebyshev distance between two squares, the number of
// king steps from one to the other.
func Distance(a, b Square) int {
	df := a.File() - b.File()
	if df < 0 {
		df = -df
	}
	dr := a.Rank() - b.Rank()
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

type Outcome int

const (
	Draw Outcome = iota
	WhiteWins
	BlackWins
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	default:
		return "draw"
	}
}

// Termination records why a game ended.
type Termination string

const (
	Checkmate   Termination = "checkmate"
	Stalemate   Termination = "stalemate"
	MoveLimit   Termination = "move limit"
	Timeout     Termination = "timeout"
	IllegalMove Termination = "illegal move"
	BotError    Termination = "bot error"
	RulesError  Termination = "rules error"
)

// Position is an opaque board state owned by the rules engine. The core
// never inspects it beyond whose turn it is.
type Position interface {
	Turn() Color
}

// Move is an opaque move handle understood only by the rules engine.
type Move interface {
	String() string
}

// Rules is the capability contract of an external rules engine. The core
// consumes it for legality, position transitions and the board queries the
// bot heuristics need; it never assumes a board representation.
type Rules interface {
	// Initial returns the starting position of a fresh game.
	Initial() Position
	// LegalMoves returns every legal move at pos, in a stable order.
	LegalMoves(pos Position) []Move
	// Apply returns the successor position after mv. pos is not mutated.
	Apply(pos Position, mv Move) (Position, error)
	// Terminal classifies pos: whether the game is over and, if so, how.
	Terminal(pos Position) (over bool, outcome Outcome, reason Termination)
	// IsCapture reports whether mv takes an opponent piece.
	IsCapture(pos Position, mv Move) bool
	// IsAttacked reports whether sq is attacked by the side to move at pos.
	IsAttacked(pos Position, sq Square) bool
	// Origin and Destination expose the geometry of a move.
	Origin(mv Move) Square
	Destination(mv Move) Square
	// PieceSquares lists the squares occupied by c's pieces at pos.
	PieceSquares(pos Position, c Color) []Square
}

// Observer receives every applied move, for visualization or recording.
// The core makes no assumption about how or whether it renders.
type Observer func(after Position, mv Move, ply int)
