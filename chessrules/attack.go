package chessrules

import (
	"github.com/notnil/chess"

	"arena/game"
)

var (
	knightOffsets = [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	rookRays      = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopRays    = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// IsAttacked reports whether sq is attacked by the side to move at p. The
// library does not expose an attack query, so this scans the board itself:
// pawn, knight and king offsets plus sliding rays for bishops, rooks and
// queens.
func (Engine) IsAttacked(p game.Position, sq game.Square) bool {
	pos, ok := p.(position)
	if !ok {
		return false
	}
	board := pos.pos.Board()
	attacker := pos.pos.Turn()
	file, rank := sq.File(), sq.Rank()

	// Pawns attack diagonally toward the target, so look one rank back from
	// the attacker's direction of travel.
	pawnRank := rank - 1
	if attacker == chess.Black {
		pawnRank = rank + 1
	}
	for _, df := range []int{-1, 1} {
		if piece := pieceAt(board, file+df, pawnRank); piece.Color() == attacker && piece.Type() == chess.Pawn {
			return true
		}
	}

	for _, off := range knightOffsets {
		if piece := pieceAt(board, file+off[0], rank+off[1]); piece.Color() == attacker && piece.Type() == chess.Knight {
			return true
		}
	}

	for _, off := range kingOffsets {
		if piece := pieceAt(board, file+off[0], rank+off[1]); piece.Color() == attacker && piece.Type() == chess.King {
			return true
		}
	}

	if slides(board, file, rank, rookRays, attacker, chess.Rook) {
		return true
	}
	return slides(board, file, rank, bishopRays, attacker, chess.Bishop)
}

// slides walks each ray until it hits a piece and reports whether that piece
// is an attacker of the sliding type (or a queen).
func slides(board *chess.Board, file, rank int, rays [][2]int, attacker chess.Color, slider chess.PieceType) bool {
	for _, ray := range rays {
		f, r := file+ray[0], rank+ray[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			piece := board.Piece(chess.Square(r*8 + f))
			if piece != chess.NoPiece {
				if piece.Color() == attacker && (piece.Type() == slider || piece.Type() == chess.Queen) {
					return true
				}
				break
			}
			f += ray[0]
			r += ray[1]
		}
	}
	return false
}

func pieceAt(board *chess.Board, file, rank int) chess.Piece {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return chess.NoPiece
	}
	return board.Piece(chess.Square(rank*8 + file))
}
