package engine

// GenType selects which pseudo-legal category GenerateMoves produces.
// Captures, Quiets, NonEvasions and Evasions are mutually exclusive
// pseudo-legal modes; QuietChecks is a specialization of Quiets that
// only keeps checking moves; Legal is a modifier that wraps any of the
// above with the IsLegal filter (§4.5).
type GenType uint8

const (
	Captures GenType = 1 << iota
	Quiets
	NonEvasions
	Evasions
	QuietChecks
	Legal
)

// GenerateMoves appends every move of the requested category to ml,
// in a fixed order that depends only on the position. Out of check the
// order is pawn pushes, pawn captures, then knight, bishop, rook, queen
// and king moves, then castling; in check it is king moves first, then
// pawn and piece moves onto the checking ray. Each group visits its
// pieces from-square ascending. This is not a strict (piece-type,
// from-square, to-square) sort: pawn pushes and pawn captures are two
// separate passes over the pawns, and a promotion's four moves come
// queen, rook, bishop, knight. Grounded on the teacher's staged
// MoveGenerator.Next in position.go, generalized to the spec's
// type-set flags and packed Move (§4.5).
func GenerateMoves(pos *Position, gt GenType, ml *MoveList) {
	base := gt &^ Legal
	filterLegal := gt&Legal != 0

	var appendMove func(m Move)
	if filterLegal {
		appendMove = func(m Move) {
			if pos.IsLegal(m) {
				ml.Append(m)
			}
		}
	} else {
		appendMove = ml.Append
	}

	if pos.InCheck() || base&Evasions != 0 {
		generateEvasions(pos, base, appendMove)
		return
	}
	if base&QuietChecks != 0 {
		generateQuietChecks(pos, appendMove)
		return
	}
	generateNormal(pos, base, appendMove)
}

// generateNormal handles the not-in-check staged generation of §4.5
// rule 2: pawns, then knight/bishop/rook/queen/king, then castling.
func generateNormal(pos *Position, base GenType, appendMove func(Move)) {
	us := pos.sideToMove
	occ := pos.Occupied()
	own := pos.byColor[us]
	enemy := pos.byColor[us.Other()]

	var target Bitboard
	switch {
	case base&Captures != 0 && base&Quiets == 0:
		target = enemy
	case base&Quiets != 0 && base&Captures == 0:
		target = ^occ
	default: // NonEvasions, or Captures|Quiets together.
		target = ^own
	}

	generatePawnMoves(pos, base, target, appendMove)
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		generatePieceMoves(pos, pt, target, appendMove)
	}
	generateKingMoves(pos, target, appendMove)

	if base&Captures == 0 {
		generateCastling(pos, appendMove)
	}
}

// generateEvasions implements §4.5 rule 1: king moves out of attack,
// plus, for a single checker, interpositions on BetweenBB and captures
// of the checker. Double check allows only king moves.
func generateEvasions(pos *Position, base GenType, appendMove func(Move)) {
	us := pos.sideToMove
	king := pos.King(us)
	checkers := pos.st.Checkers

	// King moves: anywhere not occupied by a friendly piece. IsLegal
	// (when requested) rejects squares still attacked after the king
	// steps away.
	kingTarget := ^pos.byColor[us]
	if base&Captures != 0 && base&Quiets == 0 {
		kingTarget &= pos.byColor[us.Other()]
	} else if base&Quiets != 0 && base&Captures == 0 {
		kingTarget &= ^pos.Occupied()
	}
	generateKingMoves(pos, kingTarget, appendMove)

	if checkers == 0 || checkers.Count() > 1 {
		// Not actually in check (Evasions requested explicitly), or a
		// double check: only king moves are legal either way.
		return
	}

	checkerSq := checkers.Lowest()
	blockTarget := BetweenBB[king][checkerSq] | checkers
	switch {
	case base&Captures != 0 && base&Quiets == 0:
		blockTarget &= pos.byColor[us.Other()]
	case base&Quiets != 0 && base&Captures == 0:
		blockTarget &= ^pos.Occupied()
	}

	generatePawnMoves(pos, base, blockTarget, appendMove)
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		generatePieceMoves(pos, pt, blockTarget, appendMove)
	}
}

// generateQuietChecks generates non-capturing moves that give check,
// restricted (as a documented simplification) to direct checks: a
// piece landing on one of the enemy king's CheckSquares. Discovered
// checks are not enumerated; QuietChecks is a minor specialization not
// exercised by perft (§8) and not relied on for legality elsewhere.
func generateQuietChecks(pos *Position, appendMove func(Move)) {
	empty := ^pos.Occupied()
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		generatePieceMoves(pos, pt, empty&pos.st.CheckSquares[pt], appendMove)
	}
}

func promotionTargets() []PieceType { return []PieceType{Queen, Rook, Bishop, Knight} }

func generatePawnMoves(pos *Position, base GenType, target Bitboard, appendMove func(Move)) {
	us := pos.sideToMove
	pawns := pos.ByPiece(us, Pawn)
	empty := ^pos.Occupied()
	enemy := pos.byColor[us.Other()]

	push, startRank, promoRank := North, Rank(1), Rank(7)
	if us == Black {
		push, startRank, promoRank = South, Rank(6), Rank(0)
	}

	emitTo := func(from, to Square) {
		if to.Rank() == promoRank {
			for _, pt := range promotionTargets() {
				appendMove(NewPromotion(from, to, pt))
			}
			return
		}
		appendMove(NewMove(from, to, NormalMove))
	}

	// Single and double pushes.
	for bb := pawns; bb != 0; {
		from := bb.Pop()
		to1 := from.Add(push)
		if !empty.Has(to1) {
			continue
		}
		if target.Has(to1) {
			emitTo(from, to1)
		}
		if from.Rank() == startRank {
			to2 := to1.Add(push)
			if empty.Has(to2) && target.Has(to2) {
				appendMove(NewMove(from, to2, NormalMove))
			}
		}
	}

	// Diagonal captures, including en passant.
	epBB := Bitboard(0)
	if pos.st.EnPassant != SquareNone {
		epBB = pos.st.EnPassant.Bitboard()
	}
	for bb := pawns; bb != 0; {
		from := bb.Pop()
		attacks := PawnAttacks[us][from]
		for dst := attacks & (enemy | epBB); dst != 0; {
			to := dst.Pop()
			if to.Bitboard()&epBB != 0 {
				// En passant is always a capture: never generate it
				// under pure Quiets-only mode, even though the empty
				// landing square can spuriously satisfy target.Has(to)
				// there (target = ^occ).
				if base&Quiets != 0 && base&Captures == 0 {
					continue
				}
				if target.Has(to) || target.Has(RankFile(from.Rank(), to.File())) {
					appendMove(NewMove(from, to, EnPassant))
				}
				continue
			}
			if target.Has(to) {
				emitTo(from, to)
			}
		}
	}
}

func generatePieceMoves(pos *Position, pt PieceType, target Bitboard, appendMove func(Move)) {
	us := pos.sideToMove
	occ := pos.Occupied()
	for bb := pos.ByPiece(us, pt); bb != 0; {
		from := bb.Pop()
		for dst := Attacks(pt, from, occ) & target; dst != 0; {
			to := dst.Pop()
			appendMove(NewMove(from, to, NormalMove))
		}
	}
}

func generateKingMoves(pos *Position, target Bitboard, appendMove func(Move)) {
	us := pos.sideToMove
	from := pos.King(us)
	for dst := PseudoAttacks[King][from] & target; dst != 0; {
		to := dst.Pop()
		appendMove(NewMove(from, to, NormalMove))
	}
}

// generateCastling emits a castling king move only when the right is
// present, the squares between king and rook are empty, and none of
// the squares the king traverses (origin, destination, and between)
// are attacked (§4.5 rule 3).
func generateCastling(pos *Position, appendMove func(Move)) {
	us := pos.sideToMove
	them := us.Other()
	occ := pos.Occupied()

	tryCastle := func(right CastleRight, rookFrom, kingTo, rookTo Square) {
		if pos.st.Castle&right == 0 {
			return
		}
		king := pos.King(us)
		// Squares that must be empty of any third piece: everything
		// between king and rook, plus both destination squares, minus
		// the king's and rook's own current squares (which the move
		// itself vacates and which would otherwise "block" themselves,
		// a real possibility in Chess960 where king and rook can start
		// adjacent to their destinations).
		mustBeEmpty := (BetweenBB[king][rookFrom] | BetweenBB[king][kingTo] | kingTo.Bitboard() | rookTo.Bitboard()) &^
			king.Bitboard() &^ rookFrom.Bitboard()
		occWithoutMovers := occ &^ king.Bitboard() &^ rookFrom.Bitboard()
		if mustBeEmpty&occWithoutMovers != 0 {
			return
		}
		path := BetweenBB[king][kingTo] | king.Bitboard() | kingTo.Bitboard()
		for p := path; p != 0; {
			sq := p.Pop()
			if pos.IsAttackedBy(sq, them) {
				return
			}
		}
		appendMove(NewMove(king, kingTo, Castling))
	}

	rank := Rank(0)
	if us == Black {
		rank = 7
	}
	kingSideRight, queenSideRight := WhiteKingSide, WhiteQueenSide
	if us == Black {
		kingSideRight, queenSideRight = BlackKingSide, BlackQueenSide
	}

	tryCastle(kingSideRight, pos.rookFrom[us][castleSideKing], RankFile(rank, FileG), RankFile(rank, FileF))
	tryCastle(queenSideRight, pos.rookFrom[us][castleSideQueen], RankFile(rank, FileC), RankFile(rank, FileD))
}
