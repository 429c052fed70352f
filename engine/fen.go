package engine

import (
	"strconv"
	"strings"
)

// StartFEN is the standard starting position (§8).
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieceSymbols = map[byte]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

// Set parses fen and resets pos to the position it describes, in the
// given castling mode (§4.4, §6). On error the position is left
// empty and the error is a *FenError carrying the byte offset into
// fen and a reason code.
func (pos *Position) Set(fen string, mode ChessMode) error {
	*pos = Position{mode: mode}
	pos.st = &pos.states[0]
	pos.st.EnPassant = SquareNone

	fields, offsets := splitFieldsWithOffsets(fen)
	if len(fields) < 4 {
		*pos = Position{}
		return &FenError{Offset: len(fen), Code: FenErrBadFieldCount}
	}

	if err := pos.parsePlacement(fields[0], offsets[0]); err != nil {
		*pos = Position{}
		return err
	}

	switch fields[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		*pos = Position{}
		return &FenError{Offset: offsets[1], Code: FenErrBadSideToMove}
	}

	if err := pos.parseCastling(fields[2], offsets[2]); err != nil {
		*pos = Position{}
		return err
	}

	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			*pos = Position{}
			return &FenError{Offset: offsets[3], Code: FenErrBadEnPassant}
		}
		pos.st.EnPassant = sq
	}

	pos.st.HalfmoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			*pos = Position{}
			return &FenError{Offset: offsets[4], Code: FenErrBadClock}
		}
		pos.st.HalfmoveClock = n
	}

	pos.fullmoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			*pos = Position{}
			return &FenError{Offset: offsets[5], Code: FenErrBadClock}
		}
		pos.fullmoveNumber = n
	}

	if pos.ByPiece(White, King).Count() != 1 || pos.ByPiece(Black, King).Count() != 1 {
		*pos = Position{}
		return &FenError{Offset: 0, Code: FenErrTwoKingsRequired}
	}

	pos.st.Zobrist = pos.recomputeZobrist()
	pos.st.PawnKey = pos.recomputePawnKey()
	pos.st.MaterialKey = pos.recomputeMaterialKey()
	pos.recomputeCheckersAndPins()
	return nil
}

func splitFieldsWithOffsets(s string) ([]string, []int) {
	var fields []string
	var offsets []int
	i := 0
	for i < len(s) {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		start := i
		for i < len(s) && s[i] != ' ' {
			i++
		}
		if i > start {
			fields = append(fields, s[start:i])
			offsets = append(offsets, start)
		}
	}
	return fields, offsets
}

func (pos *Position) parsePlacement(field string, fieldOffset int) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &FenError{Offset: fieldOffset, Code: FenErrBadRankCount}
	}

	offset := fieldOffset
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := File(0)
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				if f > 8 {
					return &FenError{Offset: offset + j, Code: FenErrBadPlacement}
				}
				continue
			}
			pi, ok := fenPieceSymbols[c]
			if !ok {
				return &FenError{Offset: offset + j, Code: FenErrBadPlacement}
			}
			if f > 7 {
				return &FenError{Offset: offset + j, Code: FenErrBadPlacement}
			}
			pos.put(RankFile(r, f), pi)
			f++
		}
		if f != 8 {
			return &FenError{Offset: offset, Code: FenErrBadPlacement}
		}
		offset += len(rankStr) + 1
	}
	return nil
}

func (pos *Position) parseCastling(field string, fieldOffset int) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			pos.st.Castle |= WhiteKingSide
			pos.rookFrom[White][castleSideKing] = SquareH1
		case 'Q':
			pos.st.Castle |= WhiteQueenSide
			pos.rookFrom[White][castleSideQueen] = SquareA1
		case 'k':
			pos.st.Castle |= BlackKingSide
			pos.rookFrom[Black][castleSideKing] = SquareH8
		case 'q':
			pos.st.Castle |= BlackQueenSide
			pos.rookFrom[Black][castleSideQueen] = SquareA8
		default:
			if pos.mode != Chess960 {
				return &FenError{Offset: fieldOffset + i, Code: FenErrBadCastling}
			}
			if err := pos.parseChess960CastleFile(field[i], fieldOffset+i); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseChess960CastleFile handles the Chess960 FEN convention of
// naming the castling rook by its file letter instead of K/Q/k/q
// (§6). Upper-case letters are White's rooks, lower-case Black's; the
// side (king/queen) is inferred from whether the file is left or
// right of the king's starting file.
func (pos *Position) parseChess960CastleFile(c byte, offset int) error {
	var color Color
	var file File
	switch {
	case c >= 'A' && c <= 'H':
		color, file = White, File(c-'A')
	case c >= 'a' && c <= 'h':
		color, file = Black, File(c-'a')
	default:
		return &FenError{Offset: offset, Code: FenErrBadCastling}
	}
	king := pos.King(color)
	rank := Rank(0)
	if color == Black {
		rank = 7
	}
	rookSq := RankFile(rank, file)
	if file < king.File() {
		pos.st.Castle |= sideRight(color, castleSideQueen)
		pos.rookFrom[color][castleSideQueen] = rookSq
	} else {
		pos.st.Castle |= sideRight(color, castleSideKing)
		pos.rookFrom[color][castleSideKing] = rookSq
	}
	return nil
}

func sideRight(c Color, side int) CastleRight {
	switch {
	case c == White && side == castleSideKing:
		return WhiteKingSide
	case c == White && side == castleSideQueen:
		return WhiteQueenSide
	case c == Black && side == castleSideKing:
		return BlackKingSide
	default:
		return BlackQueenSide
	}
}

// Fen emits the canonical FEN of the current position (§4.4, §8
// property 5).
func (pos *Position) Fen() string {
	var b strings.Builder
	for r := Rank(7); r >= 0; r-- {
		empty := 0
		for f := File(0); f < 8; f++ {
			pi := pos.board[RankFile(r, f)]
			if pi == EmptyPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteString(pi.String())
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if r != 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	b.WriteString(pos.sideToMove.String())

	b.WriteByte(' ')
	b.WriteString(pos.st.Castle.String())

	b.WriteByte(' ')
	if pos.st.EnPassant == SquareNone || !pos.enPassantCaptureAvailable() {
		b.WriteByte('-')
	} else {
		b.WriteString(pos.st.EnPassant.String())
	}

	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(pos.st.HalfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(pos.fullmoveNumber))

	return b.String()
}
