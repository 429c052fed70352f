package engine

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestMakeUnmakeRoundTrip plays every legal move from a handful of
// positions one ply deep and checks TakeMove restores the position
// byte-for-byte (§8 property 1).
func TestMakeUnmakeRoundTrip(t *testing.T) {
	for _, fen := range []string{StartFEN, kiwipeteFEN, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"} {
		pos := NewPosition()
		require.NoError(t, pos.Set(fen, Normal))

		before := snapshot(pos)

		var ml MoveList
		GenerateMoves(pos, NonEvasions|Legal, &ml)
		for i := 0; i < ml.Len(); i++ {
			m := ml.At(i)
			pos.MakeMove(m)
			pos.TakeMove(m)

			after := snapshot(pos)
			if diff := cmp.Diff(before, after); diff != "" {
				t.Fatalf("make/unmake of %s from %q changed position (-before +after):\n%s", m, fen, diff)
			}
		}
	}
}

// TestMakeUnmakeDeepRoundTrip descends three plies and unwinds them in
// reverse, checking the position returns to its starting snapshot.
func TestMakeUnmakeDeepRoundTrip(t *testing.T) {
	pos := NewPosition()
	require.NoError(t, pos.Set(kiwipeteFEN, Normal))
	before := snapshot(pos)

	var played []Move
	for depth := 0; depth < 3; depth++ {
		var ml MoveList
		GenerateMoves(pos, NonEvasions|Legal, &ml)
		require.Greater(t, ml.Len(), 0)
		m := ml.At(0)
		pos.MakeMove(m)
		played = append(played, m)
	}
	for i := len(played) - 1; i >= 0; i-- {
		pos.TakeMove(played[i])
	}

	require.Empty(t, cmp.Diff(before, snapshot(pos)))
}

// TestZobristIncrementalMatchesRecompute checks that the key
// maintained incrementally through MakeMove equals a from-scratch
// recomputation at every ply, for several plies from two positions
// (§8 property 2).
func TestZobristIncrementalMatchesRecompute(t *testing.T) {
	for _, fen := range []string{StartFEN, kiwipeteFEN} {
		pos := NewPosition()
		require.NoError(t, pos.Set(fen, Normal))
		walkAndCheckZobrist(t, pos, 3)
	}
}

func walkAndCheckZobrist(t *testing.T, pos *Position, depth int) {
	t.Helper()
	require.Equal(t, pos.recomputeZobrist(), pos.Zobrist())
	if depth == 0 {
		return
	}
	var ml MoveList
	GenerateMoves(pos, NonEvasions|Legal, &ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		pos.MakeMove(m)
		require.Equal(t, pos.recomputeZobrist(), pos.Zobrist(), "move %s", m)
		walkAndCheckZobrist(t, pos, depth-1)
		pos.TakeMove(m)
	}
}

// TestCheckersMatchesIsAttackedBy checks that Checkers() is exactly
// the set of enemy pieces attacking the side-to-move's king, for every
// position reached within two plies of two starting FENs (§8 property 3).
func TestCheckersMatchesIsAttackedBy(t *testing.T) {
	for _, fen := range []string{StartFEN, kiwipeteFEN} {
		pos := NewPosition()
		require.NoError(t, pos.Set(fen, Normal))
		walkAndCheckCheckers(t, pos, 2)
	}
}

func walkAndCheckCheckers(t *testing.T, pos *Position, depth int) {
	t.Helper()
	us := pos.SideToMove()
	king := pos.King(us)
	want := pos.AttackersTo(king, pos.Occupied()) & pos.ByColor(us.Other())
	require.Equal(t, want, pos.Checkers())
	require.Equal(t, want != 0, pos.InCheck())

	if depth == 0 {
		return
	}
	var ml MoveList
	GenerateMoves(pos, NonEvasions|Legal, &ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		pos.MakeMove(m)
		walkAndCheckCheckers(t, pos, depth-1)
		pos.TakeMove(m)
	}
}

func TestPackingSizeInvariants(t *testing.T) {
	require.Equal(t, uintptr(2), unsafe.Sizeof(Move(0)), "Move must pack into 2 bytes")
	require.Equal(t, uintptr(1), unsafe.Sizeof(Piece(0)), "Piece must pack into 1 byte")
}

type posSnapshot struct {
	Board       [64]Piece
	ByColor     [ColorCount]Bitboard
	ByType      [PieceTypeCount]Bitboard
	SideToMove  Color
	Castle      CastleRight
	EnPassant   Square
	Zobrist     HashKey
	PawnKey     HashKey
	MaterialKey HashKey
}

func snapshot(pos *Position) posSnapshot {
	return posSnapshot{
		Board:       pos.board,
		ByColor:     pos.byColor,
		ByType:      pos.byType,
		SideToMove:  pos.sideToMove,
		Castle:      pos.st.Castle,
		EnPassant:   pos.st.EnPassant,
		Zobrist:     pos.st.Zobrist,
		PawnKey:     pos.st.PawnKey,
		MaterialKey: pos.st.MaterialKey,
	}
}

// TestPawnAndMaterialKeysMatchRecompute checks the incrementally
// maintained pawn and material keys equal a from-scratch recompute at
// every ply, for several plies from two positions (§4.4).
func TestPawnAndMaterialKeysMatchRecompute(t *testing.T) {
	for _, fen := range []string{StartFEN, kiwipeteFEN} {
		pos := NewPosition()
		require.NoError(t, pos.Set(fen, Normal))
		walkAndCheckAuxKeys(t, pos, 3)
	}
}

func walkAndCheckAuxKeys(t *testing.T, pos *Position, depth int) {
	t.Helper()
	require.Equal(t, pos.recomputePawnKey(), pos.PawnKey())
	require.Equal(t, pos.recomputeMaterialKey(), pos.MaterialKey())
	if depth == 0 {
		return
	}
	var ml MoveList
	GenerateMoves(pos, NonEvasions|Legal, &ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		pos.MakeMove(m)
		require.Equal(t, pos.recomputePawnKey(), pos.PawnKey(), "move %s", m)
		require.Equal(t, pos.recomputeMaterialKey(), pos.MaterialKey(), "move %s", m)
		walkAndCheckAuxKeys(t, pos, depth-1)
		pos.TakeMove(m)
	}
}
