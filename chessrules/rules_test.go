package chessrules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"arena/game"
)

func playMoves(t *testing.T, engine Engine, pos game.Position, moves ...string) game.Position {
	t.Helper()
	for _, want := range moves {
		var found game.Move
		for _, mv := range engine.LegalMoves(pos) {
			if mv.String() == want {
				found = mv
				break
			}
		}
		require.NotNil(t, found, "move %s should be legal", want)
		next, err := engine.Apply(pos, found)
		require.NoError(t, err)
		pos = next
	}
	return pos
}

func TestStartingPosition(t *testing.T) {
	engine := New()
	pos := engine.Initial()

	require.Equal(t, game.White, pos.Turn())
	require.Len(t, engine.LegalMoves(pos), 20)

	over, _, _ := engine.Terminal(pos)
	require.False(t, over)
}

func TestApplyAlternatesTurns(t *testing.T) {
	engine := New()
	pos := engine.Initial()

	pos = playMoves(t, engine, pos, "e2e4")
	require.Equal(t, game.Black, pos.Turn())

	pos = playMoves(t, engine, pos, "e7e5")
	require.Equal(t, game.White, pos.Turn())
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	engine := New()
	pos := engine.Initial()

	pos = playMoves(t, engine, pos, "f2f3", "e7e5", "g2g4", "d8h4")

	over, outcome, reason := engine.Terminal(pos)
	require.True(t, over)
	require.Equal(t, game.BlackWins, outcome)
	require.Equal(t, game.Checkmate, reason)
}

func TestIsCapture(t *testing.T) {
	engine := New()
	pos, err := FromFEN("rnbqkbnr/pppp1ppp/8/4p3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)

	captures := map[string]bool{}
	for _, mv := range engine.LegalMoves(pos) {
		captures[mv.String()] = engine.IsCapture(pos, mv)
	}
	require.True(t, captures["d4e5"], "pawn takes on e5 is a capture")
	require.False(t, captures["d4d5"], "pushing past is not")
}

func TestMoveGeometry(t *testing.T) {
	engine := New()
	pos := engine.Initial()

	for _, mv := range engine.LegalMoves(pos) {
		if mv.String() == "g1f3" {
			require.Equal(t, game.NewSquare(6, 0), engine.Origin(mv))
			require.Equal(t, game.NewSquare(5, 2), engine.Destination(mv))
			return
		}
	}
	t.Fatal("g1f3 not found among the legal moves")
}

func TestPieceSquares(t *testing.T) {
	engine := New()
	pos := engine.Initial()

	white := engine.PieceSquares(pos, game.White)
	black := engine.PieceSquares(pos, game.Black)
	require.Len(t, white, 16)
	require.Len(t, black, 16)
	for _, sq := range white {
		require.LessOrEqual(t, sq.Rank(), 1, "white starts on the first two ranks")
	}
	for _, sq := range black {
		require.GreaterOrEqual(t, sq.Rank(), 6)
	}
}

func TestIsAttackedStartingPosition(t *testing.T) {
	engine := New()
	pos := engine.Initial()

	// White to move: c3 is covered by the b1 knight and the b2/d2 pawns,
	// h3 by the g2 pawn. e5 is out of reach.
	require.True(t, engine.IsAttacked(pos, game.NewSquare(2, 2)))
	require.True(t, engine.IsAttacked(pos, game.NewSquare(7, 2)))
	require.False(t, engine.IsAttacked(pos, game.NewSquare(4, 4)))
}

func TestIsAttackedByBlackPawn(t *testing.T) {
	engine := New()
	pos := playMoves(t, engine, engine.Initial(), "e2e4")

	// Black to move: f6 is covered by the g7 pawn.
	require.True(t, engine.IsAttacked(pos, game.NewSquare(5, 5)))
}

func TestIsAttackedSlidingAndBlocking(t *testing.T) {
	engine := New()
	pos, err := FromFEN("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	require.NoError(t, err)

	// The a1 rook slides the whole empty a-file.
	require.True(t, engine.IsAttacked(pos, game.NewSquare(0, 7)))
	// Along the first rank its own king on e1 blocks the far side.
	require.True(t, engine.IsAttacked(pos, game.NewSquare(3, 0)))
	require.False(t, engine.IsAttacked(pos, game.NewSquare(7, 0)))
}

func TestIsAttackedByQueenDiagonal(t *testing.T) {
	engine := New()
	pos, err := FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)

	// The d1 queen covers the long diagonal out to h5, but not a2.
	require.True(t, engine.IsAttacked(pos, game.NewSquare(7, 4)))
	require.False(t, engine.IsAttacked(pos, game.NewSquare(0, 1)))
}

func TestRender(t *testing.T) {
	engine := New()
	require.NotEmpty(t, Render(engine.Initial()))
}

func TestFromFENRejectsGarbage(t *testing.T) {
	_, err := FromFEN("not a fen")
	require.Error(t, err)
}
