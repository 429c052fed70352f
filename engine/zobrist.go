package engine

import "math/rand"

// Zobrist key tables, process-wide and read-only after init, built
// with a PRNG seeded by a compiled-in constant so hashes are
// reproducible across runs (§4.3), grounded on the teacher's
// zobrist.go.
var (
	zobristPieceTbl    [16][64]uint64 // indexed by raw Piece value; 0 (EmptyPiece) unused
	zobristEnPassant   [8]uint64      // indexed by file
	zobristCastleTbl   [16]uint64     // indexed by CastleRight mask
	zobristSideToMove  uint64
	zobristMaterialTbl [16][16]uint64 // indexed by (piece, count-before-add/after-remove)
)

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func initZobrist() {
	r := rand.New(rand.NewSource(0xC0FFEE))

	pieces := []Piece{
		WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
		BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
	}
	for _, p := range pieces {
		for sq := SquareA1; sq < SquareNone; sq++ {
			zobristPieceTbl[p][sq] = rand64(r)
		}
	}
	for f := File(0); f < 8; f++ {
		zobristEnPassant[f] = rand64(r)
	}
	for c := 0; c <= int(AnyCastleRights); c++ {
		zobristCastleTbl[c] = rand64(r)
	}
	zobristSideToMove = rand64(r)
	for _, p := range pieces {
		for n := range zobristMaterialTbl[p] {
			zobristMaterialTbl[p][n] = rand64(r)
		}
	}
}

func init() {
	initZobrist()
}

// ZobristPiece exposes the per-(piece,square) key, used by Position
// and by tests asserting incremental updates match recomputation from
// scratch (§8 property 2).
func ZobristPiece(p Piece, sq Square) uint64 { return zobristPieceTbl[p][sq] }

// ZobristCastle exposes the per-castle-rights-mask key.
func ZobristCastle(c CastleRight) uint64 { return zobristCastleTbl[c] }

// ZobristEnPassantFile exposes the per-file en-passant key.
func ZobristEnPassantFile(f File) uint64 { return zobristEnPassant[f] }

// ZobristSideToMove exposes the single side-to-move key.
func ZobristSideToMove() uint64 { return zobristSideToMove }

// ZobristMaterial exposes the per-(piece,count) key used to maintain
// Position's material key: a hash of piece counts only, independent of
// square, folded in/out as each piece of that type is added/removed
// (§4.4's "material/pawn/position keys").
func ZobristMaterial(p Piece, count int) uint64 { return zobristMaterialTbl[p][count] }
