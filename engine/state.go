package engine

// MaxPly bounds the make/unmake state stack depth. Exceeding it is a
// fatal programmer error (§5), not a position that can legally arise.
const MaxPly = 256

// MaxMoves bounds MoveList capacity (§4.5, §5).
const MaxMoves = 256

// State is one ply's worth of information that MakeMove cannot derive
// by looking only at the Move value, and that TakeMove needs to
// restore exactly, per §3 and §4.6. States form an intrusive singly
// linked stack via Previous; Position owns the backing array and
// hands out pointers into it, so make/unmake never allocates on the
// hot path (§9 "stack-local move lists" applies equally to state).
type State struct {
	Previous *State

	Captured      Piece
	Castle        CastleRight
	EnPassant     Square // SquareNone when not available
	HalfmoveClock int
	PliesFromNull int

	Zobrist     HashKey
	PawnKey     HashKey
	MaterialKey HashKey

	Checkers        Bitboard
	BlockersForKing [ColorCount]Bitboard
	PinnersForKing  [ColorCount]Bitboard
	CheckSquares    [PieceTypeCount]Bitboard
}
