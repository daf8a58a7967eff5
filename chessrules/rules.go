// Package chessrules adapts github.com/notnil/chess to the game.Rules
// capability contract. All legality and position transitions come from the
// library; this package only translates handles and answers board queries.
package chessrules

import (
	"fmt"

	"github.com/notnil/chess"

	"arena/game"
)

type Engine struct{}

func New() Engine { return Engine{} }

type position struct {
	pos *chess.Position
}

func (p position) Turn() game.Color {
	if p.pos.Turn() == chess.White {
		return game.White
	}
	return game.Black
}

type move struct {
	mv *chess.Move
}

func (m move) String() string { return m.mv.String() }

func (Engine) Initial() game.Position {
	return position{pos: chess.StartingPosition()}
}

// FromFEN builds a position from a FEN string.
func FromFEN(fen string) (game.Position, error) {
	option, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("chessrules: parse fen: %w", err)
	}
	g := chess.NewGame(option)
	return position{pos: g.Position()}, nil
}

func (Engine) LegalMoves(p game.Position) []game.Move {
	pos, ok := p.(position)
	if !ok {
		return nil
	}
	valid := pos.pos.ValidMoves()
	moves := make([]game.Move, len(valid))
	for i, mv := range valid {
		moves[i] = move{mv: mv}
	}
	return moves
}

func (Engine) Apply(p game.Position, m game.Move) (game.Position, error) {
	pos, ok := p.(position)
	if !ok {
		return nil, fmt.Errorf("chessrules: foreign position %T", p)
	}
	mv, ok := m.(move)
	if !ok {
		return nil, fmt.Errorf("chessrules: foreign move %T", m)
	}
	return position{pos: pos.pos.Update(mv.mv)}, nil
}

func (Engine) Terminal(p game.Position) (bool, game.Outcome, game.Termination) {
	pos, ok := p.(position)
	if !ok {
		return false, game.Draw, ""
	}
	switch pos.pos.Status() {
	case chess.Checkmate:
		if pos.pos.Turn() == chess.White {
			return true, game.BlackWins, game.Checkmate
		}
		return true, game.WhiteWins, game.Checkmate
	case chess.Stalemate:
		return true, game.Draw, game.Stalemate
	}
	return false, game.Draw, ""
}

func (Engine) IsCapture(p game.Position, m game.Move) bool {
	mv, ok := m.(move)
	if !ok {
		return false
	}
	return mv.mv.HasTag(chess.Capture) || mv.mv.HasTag(chess.EnPassant)
}

func (Engine) Origin(m game.Move) game.Square {
	mv, ok := m.(move)
	if !ok {
		return 0
	}
	return game.Square(mv.mv.S1())
}

func (Engine) Destination(m game.Move) game.Square {
	mv, ok := m.(move)
	if !ok {
		return 0
	}
	return game.Square(mv.mv.S2())
}

func (Engine) PieceSquares(p game.Position, c game.Color) []game.Square {
	pos, ok := p.(position)
	if !ok {
		return nil
	}
	want := chess.White
	if c == game.Black {
		want = chess.Black
	}
	board := pos.pos.Board()
	var squares []game.Square
	for i := 0; i < 64; i++ {
		piece := board.Piece(chess.Square(i))
		if piece != chess.NoPiece && piece.Color() == want {
			squares = append(squares, game.Square(i))
		}
	}
	return squares
}

// Render draws the board for terminal display. Foreign positions render
// empty.
func Render(p game.Position) string {
	pos, ok := p.(position)
	if !ok {
		return ""
	}
	return pos.pos.Board().Draw()
}
