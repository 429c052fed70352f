package engine

// Position encodes a chess board: piece placement, side to move,
// castling rights, en-passant square, clocks, and the derived
// checkers/pin caches the legality filter needs. Position exclusively
// owns its state stack (§3, §5); it is constructed empty, populated
// by Set, mutated only by MakeMove/TakeMove, and freed when the
// caller drops it.
//
// Grounded on the teacher's engine.Position in src/zurichess/engine
// (ByFigure/ByColor bitboard split, Zobrist field, Put/Remove), with
// the board[64] mailbox, pinners/blockers/checkers cache and the
// separate State stack added per §3/§4.4 — the teacher instead folds
// SavedCastle/SavedEnpassant directly into a position-dependent Move,
// which §3's packed 2-byte Move rules out.
type Position struct {
	board [64]Piece

	byType  [PieceTypeCount]Bitboard // byType[NoPieceType] == all occupied squares
	byColor [ColorCount]Bitboard

	pieceCount [16]int8

	sideToMove Color

	mode ChessMode
	// rookFrom[color][side] stores the rook-origin square for castling,
	// populated from FEN in Normal mode and from the FEN's rook files
	// in Chess960 mode (§6).
	rookFrom [ColorCount][2]Square

	fullmoveNumber int

	ply    int
	states [MaxPly]State
	st     *State
}

// ChessMode selects how castling rights are interpreted (§6).
type ChessMode int

const (
	Normal ChessMode = iota
	Chess960
)

const (
	castleSideKing = 0
	castleSideQueen = 1
)

// NewPosition returns an empty position. Call Set before using it.
func NewPosition() *Position {
	pos := &Position{}
	pos.st = &pos.states[0]
	pos.st.EnPassant = SquareNone
	return pos
}

// SideToMove returns the color to move.
func (pos *Position) SideToMove() Color { return pos.sideToMove }

// Mode returns the position's castling mode.
func (pos *Position) Mode() ChessMode { return pos.mode }

// CastleRights returns the current castling-rights mask.
func (pos *Position) CastleRights() CastleRight { return pos.st.Castle }

// EnPassant returns the current en-passant target square, or
// SquareNone if none is available.
func (pos *Position) EnPassant() Square { return pos.st.EnPassant }

// HalfmoveClock returns the fifty-move-rule counter.
func (pos *Position) HalfmoveClock() int { return pos.st.HalfmoveClock }

// FullmoveNumber returns the full-move counter.
func (pos *Position) FullmoveNumber() int { return pos.fullmoveNumber }

// Zobrist returns the current position's Zobrist signature (§4.3).
func (pos *Position) Zobrist() HashKey { return pos.st.Zobrist }

// PawnKey returns the incremental hash of pawn placement only,
// unaffected by any move that doesn't add, remove, or relocate a
// pawn (§4.4).
func (pos *Position) PawnKey() HashKey { return pos.st.PawnKey }

// MaterialKey returns the incremental hash of piece counts, blind to
// square: it changes only on capture or promotion (§4.4).
func (pos *Position) MaterialKey() HashKey { return pos.st.MaterialKey }

// Checkers returns the bitboard of enemy pieces checking the side to
// move's king (§3, §4.4).
func (pos *Position) Checkers() Bitboard { return pos.st.Checkers }

// InCheck reports whether the side to move is in check.
func (pos *Position) InCheck() bool { return pos.st.Checkers != 0 }

// PieceAt returns the piece occupying sq, or EmptyPiece.
func (pos *Position) PieceAt(sq Square) Piece { return pos.board[sq] }

// ByColor returns the bitboard of all pieces of color c.
func (pos *Position) ByColor(c Color) Bitboard { return pos.byColor[c] }

// ByType returns the bitboard of all pieces of type pt, across both
// colors. ByType(NoPieceType) returns the occupancy of the whole
// board, per §3.
func (pos *Position) ByType(pt PieceType) Bitboard { return pos.byType[pt] }

// ByPiece is byColor&byType for one concrete (color, type) pair.
func (pos *Position) ByPiece(c Color, pt PieceType) Bitboard {
	return pos.byColor[c] & pos.byType[pt]
}

// Occupied returns the bitboard of every occupied square.
func (pos *Position) Occupied() Bitboard { return pos.byType[NoPieceType] }

// King returns the square of c's king.
func (pos *Position) King(c Color) Square {
	return pos.ByPiece(c, King).Lowest()
}

// put places pi on sq. Does not validate input or touch the Zobrist
// key of anything but the piece itself; callers are responsible for
// castle/en-passant/side keys (§4.4).
func (pos *Position) put(sq Square, pi Piece) {
	pos.board[sq] = pi
	bb := sq.Bitboard()
	pos.byColor[pi.Color()] |= bb
	pos.byType[pi.Type()] |= bb
	pos.byType[NoPieceType] |= bb
	pos.st.Zobrist ^= ZobristPiece(pi, sq)
	if pi.Type() == Pawn {
		pos.st.PawnKey ^= ZobristPiece(pi, sq)
	}
	// Material key is folded in using the count before this piece is
	// added, then the count is incremented; remove() does the mirror
	// image (decrement, then fold using the now-current count), so the
	// same index is XORed in and back out (§4.4).
	pos.st.MaterialKey ^= ZobristMaterial(pi, int(pos.pieceCount[pi]))
	pos.pieceCount[pi]++
}

// remove clears sq, which must currently hold pi.
func (pos *Position) remove(sq Square, pi Piece) {
	pos.board[sq] = EmptyPiece
	bb := ^sq.Bitboard()
	pos.byColor[pi.Color()] &= bb
	pos.byType[pi.Type()] &= bb
	pos.byType[NoPieceType] &= bb
	pos.st.Zobrist ^= ZobristPiece(pi, sq)
	if pi.Type() == Pawn {
		pos.st.PawnKey ^= ZobristPiece(pi, sq)
	}
	pos.pieceCount[pi]--
	pos.st.MaterialKey ^= ZobristMaterial(pi, int(pos.pieceCount[pi]))
}

// AttackersTo returns every piece of either color attacking sq, given
// board occupancy occ (§4.4).
func (pos *Position) AttackersTo(sq Square, occ Bitboard) Bitboard {
	return (PawnAttacks[Black][sq] & pos.ByPiece(White, Pawn)) |
		(PawnAttacks[White][sq] & pos.ByPiece(Black, Pawn)) |
		(Attacks(Knight, sq, occ) & pos.byType[Knight]) |
		(Attacks(Bishop, sq, occ) & (pos.byType[Bishop] | pos.byType[Queen])) |
		(Attacks(Rook, sq, occ) & (pos.byType[Rook] | pos.byType[Queen])) |
		(Attacks(King, sq, occ) & pos.byType[King])
}

// IsAttackedBy reports whether sq is attacked by any piece of color c.
func (pos *Position) IsAttackedBy(sq Square, c Color) bool {
	return pos.AttackersTo(sq, pos.Occupied())&pos.byColor[c] != 0
}

// SliderBlockers computes, for the king on target, the set of pieces
// (of either color) that block a would-be check from sliders, and the
// subset of sliders in `sliders` that are pinning one of them (§4.4).
// Standard ray-scan: find every slider that could see `target` if the
// board were otherwise empty, then check whether exactly one piece
// sits on the ray between them.
func (pos *Position) SliderBlockers(sliders Bitboard, target Square) (blockers, pinners Bitboard) {
	occ := pos.Occupied()
	snipers := sliders & ((PseudoAttacks[Bishop][target] & (pos.byType[Bishop] | pos.byType[Queen])) |
		(PseudoAttacks[Rook][target] & (pos.byType[Rook] | pos.byType[Queen])))

	for s := snipers; s != 0; {
		sniperSq := s.Pop()
		between := BetweenBB[target][sniperSq] & occ
		if between != 0 && (between&(between-1)) == 0 {
			// Exactly one piece between king and slider.
			blockers |= between
			if between&pos.byColor[pos.board[target].Color()] != 0 {
				pinners |= sniperSq.Bitboard()
			}
		}
	}
	return blockers, pinners
}

// IsLegal decides whether a pseudo-legal move leaves its own king in
// check, per §4.4. Handles king moves, en-passant discovered check,
// and pinned-piece moves explicitly; all other moves are legal iff the
// moving piece isn't pinned, or moves along the pin ray.
func (pos *Position) IsLegal(m Move) bool {
	us := pos.sideToMove
	from, to := m.From(), m.To()
	king := pos.King(us)

	if m.IsEnPassant() {
		capSq := RankFile(from.Rank(), to.File())
		occ := pos.Occupied() &^ from.Bitboard() &^ capSq.Bitboard() | to.Bitboard()
		return pos.AttackersTo(king, occ)&pos.byColor[us.Other()]&^capSq.Bitboard() == 0
	}

	if from == king {
		if m.IsCastling() {
			return true // legality of the path is verified during generation.
		}
		occ := pos.Occupied() &^ from.Bitboard() | to.Bitboard()
		return pos.AttackersTo(to, occ)&pos.byColor[us.Other()]&^to.Bitboard() == 0
	}

	// Not a king move: legal unless moving piece is pinned and the
	// destination leaves the king-pinner line.
	if pos.st.BlockersForKing[us]&from.Bitboard() == 0 {
		return true
	}
	return LineBB[king][from]&to.Bitboard() != 0
}

// recomputeCheckersAndPins refreshes the derived per-ply caches after
// a position mutation (§4.4 "key invariants re-established").
func (pos *Position) recomputeCheckersAndPins() {
	us := pos.sideToMove
	them := us.Other()
	king := pos.King(us)

	pos.st.Checkers = pos.AttackersTo(king, pos.Occupied()) & pos.byColor[them]

	pos.st.BlockersForKing[White], pos.st.PinnersForKing[White] =
		pos.SliderBlockers(pos.byColor[Black], pos.King(White))
	pos.st.BlockersForKing[Black], pos.st.PinnersForKing[Black] =
		pos.SliderBlockers(pos.byColor[White], pos.King(Black))

	enemyKing := pos.King(them)
	occ := pos.Occupied()
	pos.st.CheckSquares[Pawn] = PawnAttacks[them][enemyKing]
	pos.st.CheckSquares[Knight] = Attacks(Knight, enemyKing, occ)
	pos.st.CheckSquares[Bishop] = Attacks(Bishop, enemyKing, occ)
	pos.st.CheckSquares[Rook] = Attacks(Rook, enemyKing, occ)
	pos.st.CheckSquares[Queen] = pos.st.CheckSquares[Bishop] | pos.st.CheckSquares[Rook]
}

// recomputeZobrist rebuilds the Zobrist key from scratch, used to
// validate incremental updates (§4.3, §8 property 2) and by Set.
func (pos *Position) recomputeZobrist() HashKey {
	var key HashKey
	for sq := SquareA1; sq < SquareNone; sq++ {
		if pi := pos.board[sq]; pi != EmptyPiece {
			key ^= ZobristPiece(pi, sq)
		}
	}
	key ^= ZobristCastle(pos.st.Castle)
	if pos.st.EnPassant != SquareNone && pos.enPassantCaptureAvailable() {
		key ^= ZobristEnPassantFile(pos.st.EnPassant.File())
	}
	if pos.sideToMove == Black {
		key ^= ZobristSideToMove()
	}
	return key
}

// recomputePawnKey rebuilds the pawn-only key from scratch, the same
// validation the main Zobrist key gets (§4.4).
func (pos *Position) recomputePawnKey() HashKey {
	var key HashKey
	for c := White; c <= Black; c++ {
		for bb := pos.ByPiece(c, Pawn); bb != 0; {
			sq := bb.Pop()
			key ^= ZobristPiece(MakePiece(Pawn, c), sq)
		}
	}
	return key
}

// recomputeMaterialKey rebuilds the material key from scratch by
// folding in ZobristMaterial for every count from 0 up to each
// piece's current count, mirroring put's incremental scheme (§4.4).
func (pos *Position) recomputeMaterialKey() HashKey {
	var key HashKey
	for pi := Piece(0); pi < 16; pi++ {
		for n := 0; n < int(pos.pieceCount[pi]); n++ {
			key ^= ZobristMaterial(pi, n)
		}
	}
	return key
}

// enPassantCaptureAvailable reports whether the en-passant target
// square actually has a capturing pawn beside it, since the Zobrist
// key must only fold in the en-passant file when the capture is
// legally available (§4.3). Tests the current side to move as the
// capturer; see enPassantCaptureAvailableFor for the case where the
// capturer isn't (yet) pos.sideToMove.
func (pos *Position) enPassantCaptureAvailable() bool {
	return pos.enPassantCaptureAvailableFor(pos.sideToMove)
}

// enPassantCaptureAvailableFor reports whether capturer has a pawn
// beside the en-passant target square able to take it. Exposed
// separately from enPassantCaptureAvailable because MakeMove computes
// this for the opponent's upcoming turn before pos.sideToMove flips
// (§4.3, §4.6).
func (pos *Position) enPassantCaptureAvailableFor(capturer Color) bool {
	sq := pos.st.EnPassant
	if sq == SquareNone {
		return false
	}
	return PawnAttacks[capturer.Other()][sq]&pos.ByPiece(capturer, Pawn) != 0
}

func (pos *Position) String() string {
	out := ""
	for r := Rank(7); r >= 0; r-- {
		for f := File(0); f < 8; f++ {
			out += pos.board[RankFile(r, f)].String()
		}
		out += "\n"
	}
	return out
}

// Equal reports whether two positions have byte-equal board state,
// used by §8 property 1 (make/unmake round-trip).
func (pos *Position) Equal(other *Position) bool {
	if pos.board != other.board {
		return false
	}
	if pos.byType != other.byType || pos.byColor != other.byColor {
		return false
	}
	if pos.sideToMove != other.sideToMove {
		return false
	}
	if pos.st.Castle != other.st.Castle || pos.st.EnPassant != other.st.EnPassant {
		return false
	}
	return pos.st.Zobrist == other.st.Zobrist
}
