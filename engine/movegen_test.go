package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartPositionMoveCounts(t *testing.T) {
	pos := NewPosition()
	require.NoError(t, pos.Set(StartFEN, Normal))
	require.Equal(t, 20, countMoves(t, pos, NonEvasions|Legal))
	require.False(t, pos.InCheck())
}

func TestKiwipeteMoveCount(t *testing.T) {
	pos := NewPosition()
	require.NoError(t, pos.Set(kiwipeteFEN, Normal))
	require.Equal(t, 48, countMoves(t, pos, NonEvasions|Legal))
}

// TestFoolsMate plays 1.f3 e5 2.g4 Qh4#, reproducing §8's shortest
// forced-mate scenario: Black's queen delivers check and White has no
// legal reply.
func TestFoolsMate(t *testing.T) {
	pos := NewPosition()
	require.NoError(t, pos.Set(StartFEN, Normal))

	playBySquares(t, pos, SquareF2, SquareF3)
	playBySquares(t, pos, SquareE7, SquareE5)
	playBySquares(t, pos, SquareG2, SquareG4)
	playBySquares(t, pos, SquareD8, SquareH4)

	require.True(t, pos.InCheck())
	require.Equal(t, 0, countMoves(t, pos, NonEvasions|Legal))
}

// playBySquares finds the unique generated legal move between from and
// to and applies it, keeping tests free of any coordinate-move parser
// per the spec's notation non-goal.
func playBySquares(t *testing.T, pos *Position, from, to Square) {
	t.Helper()
	var ml MoveList
	GenerateMoves(pos, NonEvasions|Legal, &ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.From() == from && m.To() == to {
			pos.MakeMove(m)
			return
		}
	}
	t.Fatalf("no legal move %s-%s found", from, to)
}

func TestCastlingGeneratedWhenPathClear(t *testing.T) {
	pos := NewPosition()
	require.NoError(t, pos.Set("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", Normal))

	var ml MoveList
	GenerateMoves(pos, NonEvasions|Legal, &ml)
	found := map[string]bool{}
	for i := 0; i < ml.Len(); i++ {
		found[ml.At(i).String()] = true
	}
	require.True(t, found["e1g1"], "expected kingside castle to be generated")
	require.True(t, found["e1c1"], "expected queenside castle to be generated")
}

func TestCastlingExcludedThroughCheck(t *testing.T) {
	// The black rook on f8 attacks f1, which kingside castling must
	// cross. Nothing attacks e1, d1 or c1, so queenside castling stays
	// available and the king is not in check.
	pos := NewPosition()
	require.NoError(t, pos.Set("1k3r2/8/8/8/8/8/8/R3K2R w KQ - 0 1", Normal))
	require.False(t, pos.InCheck())

	var ml MoveList
	GenerateMoves(pos, NonEvasions|Legal, &ml)
	castles := map[string]bool{}
	for i := 0; i < ml.Len(); i++ {
		if m := ml.At(i); m.Kind() == Castling {
			castles[m.String()] = true
		}
	}
	require.False(t, castles["e1g1"], "must not castle through the attacked f1 square")
	require.True(t, castles["e1c1"], "queenside path is unattacked, castling must be generated")
}
