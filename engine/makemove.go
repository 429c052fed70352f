package engine

// MakeMove applies m to pos, pushing a new State onto the position's
// internal stack (§4.6). m must be one of the pseudo-legal moves
// GenerateMoves produced for this exact position; MakeMove does not
// re-derive or re-check legality itself, mirroring the teacher's
// DoMove, which trusts its MoveGenerator.
//
// Grounded on the teacher's Position.DoMove in src/zurichess/engine,
// generalized from its position-dependent Move (which already carried
// SavedCastle/SavedEnpassant/Capture inline) to push/pop an explicit
// State record, since the packed 2-byte Move (§3) has nowhere to carry
// that information itself.
func (pos *Position) MakeMove(m Move) {
	if pos.ply+1 >= MaxPly {
		panicInvariant("MakeMove: state stack exhausted (MaxPly)")
	}

	prev := pos.st
	newSt := &pos.states[pos.ply+1]
	*newSt = State{
		Previous:      prev,
		Castle:        prev.Castle,
		EnPassant:     SquareNone,
		HalfmoveClock: prev.HalfmoveClock + 1,
		PliesFromNull: prev.PliesFromNull + 1,
		Zobrist:       prev.Zobrist,
		PawnKey:       prev.PawnKey,
		MaterialKey:   prev.MaterialKey,
	}
	if prev.EnPassant != SquareNone && pos.enPassantCaptureAvailable() {
		newSt.Zobrist ^= ZobristEnPassantFile(prev.EnPassant.File())
	}
	pos.st = newSt
	pos.ply++

	us := pos.sideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	moving := pos.board[from]
	pt := moving.Type()

	if m.IsCastling() {
		side := castleSideKing
		if to.File() == FileC {
			side = castleSideQueen
		}
		rookFrom := pos.rookFrom[us][side]
		rookTo := RankFile(from.Rank(), FileF)
		if side == castleSideQueen {
			rookTo = RankFile(from.Rank(), FileD)
		}
		rook := pos.board[rookFrom]
		pos.remove(from, moving)
		pos.remove(rookFrom, rook)
		pos.put(to, moving)
		pos.put(rookTo, rook)
		pos.st.Captured = EmptyPiece
	} else {
		capSq := to
		if m.IsEnPassant() {
			capSq = RankFile(from.Rank(), to.File())
		}
		if captured := pos.board[capSq]; captured != EmptyPiece {
			pos.remove(capSq, captured)
			pos.st.Captured = captured
			pos.st.HalfmoveClock = 0
		} else {
			pos.st.Captured = EmptyPiece
		}

		pos.remove(from, moving)
		placed := moving
		if m.IsPromotion() {
			placed = MakePiece(m.PromotionPiece(), us)
		}
		pos.put(to, placed)

		if pt == Pawn {
			pos.st.HalfmoveClock = 0
			if d := int(to) - int(from); d == int(NorthNorth) || d == int(SouthSouth) {
				pos.st.EnPassant = Square((int(from) + int(to)) / 2)
				// them, not pos.sideToMove (still us here, the flip
				// happens later), is the side that would capture on
				// its upcoming turn.
				if pos.enPassantCaptureAvailableFor(them) {
					pos.st.Zobrist ^= ZobristEnPassantFile(pos.st.EnPassant.File())
				}
			}
		}
	}

	lostRights := pos.st.Castle
	if pt == King {
		lostRights &^= sideRight(us, castleSideKing) | sideRight(us, castleSideQueen)
	}
	for _, c := range [2]Color{White, Black} {
		for _, side := range [2]int{castleSideKing, castleSideQueen} {
			origin := pos.rookFrom[c][side]
			if origin == from || origin == to {
				lostRights &^= sideRight(c, side)
			}
		}
	}
	if lostRights != pos.st.Castle {
		pos.st.Zobrist ^= ZobristCastle(pos.st.Castle) ^ ZobristCastle(lostRights)
		pos.st.Castle = lostRights
	}

	pos.sideToMove = them
	pos.st.Zobrist ^= ZobristSideToMove()
	if them == White {
		pos.fullmoveNumber++
	}

	pos.recomputeCheckersAndPins()
}

// TakeMove undoes the most recent MakeMove, which must have been m.
// Restores the board to byte-identical state, per §8 property 1.
func (pos *Position) TakeMove(m Move) {
	if pos.ply == 0 {
		panicInvariant("TakeMove: state stack already empty")
	}

	them := pos.sideToMove
	us := them.Other()
	pos.sideToMove = us
	if them == White {
		pos.fullmoveNumber--
	}

	from, to := m.From(), m.To()

	if m.IsCastling() {
		side := castleSideKing
		if to.File() == FileC {
			side = castleSideQueen
		}
		rookFrom := pos.rookFrom[us][side]
		rookTo := RankFile(from.Rank(), FileF)
		if side == castleSideQueen {
			rookTo = RankFile(from.Rank(), FileD)
		}
		king := pos.board[to]
		rook := pos.board[rookTo]
		pos.remove(to, king)
		pos.remove(rookTo, rook)
		pos.put(from, king)
		pos.put(rookFrom, rook)
	} else {
		placed := pos.board[to]
		origType := placed.Type()
		if m.IsPromotion() {
			origType = Pawn
		}
		pos.remove(to, placed)
		pos.put(from, MakePiece(origType, us))

		if captured := pos.st.Captured; captured != EmptyPiece {
			capSq := to
			if m.IsEnPassant() {
				capSq = RankFile(from.Rank(), to.File())
			}
			pos.put(capSq, captured)
		}
	}

	pos.st = pos.st.Previous
	pos.ply--
}
