package engine

import "fmt"

// ErrInvalidEncoding is returned by SquareFromString for a malformed or
// out-of-range square string. The integer-based constructors (RankFile,
// MakePiece, NewMove, NewPromotion) do not check their input and never
// return it.
var ErrInvalidEncoding = fmt.Errorf("chesscore: invalid encoding")

// FenErrorCode classifies why Position.Set rejected a FEN string.
type FenErrorCode int

const (
	FenErrBadFieldCount FenErrorCode = iota
	FenErrBadRankCount
	FenErrBadPlacement
	FenErrBadSideToMove
	FenErrBadCastling
	FenErrBadEnPassant
	FenErrBadClock
	FenErrTwoKingsRequired
)

func (c FenErrorCode) String() string {
	switch c {
	case FenErrBadFieldCount:
		return "expected at least 4 space-separated fields"
	case FenErrBadRankCount:
		return "expected 8 ranks separated by '/'"
	case FenErrBadPlacement:
		return "unrecognized piece-placement character"
	case FenErrBadSideToMove:
		return "side to move must be 'w' or 'b'"
	case FenErrBadCastling:
		return "malformed castling-availability field"
	case FenErrBadEnPassant:
		return "malformed en-passant target square"
	case FenErrBadClock:
		return "malformed halfmove/fullmove clock"
	case FenErrTwoKingsRequired:
		return "each side must have exactly one king"
	default:
		return "unknown FEN error"
	}
}

// FenError carries the byte offset into the source FEN string and a
// reason code, per §6/§7. The position is left empty on error.
type FenError struct {
	Offset int
	Code   FenErrorCode
}

func (e *FenError) Error() string {
	return fmt.Sprintf("fen: at offset %d: %s", e.Offset, e.Code)
}

// InitializationError reports that process-wide static tables (magic
// bitboards, attack tables) failed their self-check, per §4.2/§7.
// This is unrecoverable: callers should treat it as a startup fault.
type InitializationError struct {
	Table  string
	Reason string
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("chesscore: failed to initialize %s: %s", e.Table, e.Reason)
}

// InvariantViolation signals a programmer error: move-list overflow,
// unbalanced MakeMove/TakeMove, or state-stack overflow (§5, §7).
// Callers should not attempt to recover; it indicates a defect in the
// caller, not bad input.
type InvariantViolation struct {
	What string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("chesscore: invariant violation: %s", e.What)
}

func panicInvariant(what string) {
	panic(&InvariantViolation{What: what})
}
