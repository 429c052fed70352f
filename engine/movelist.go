package engine

// ExtMove pairs a move with a scratch score slot, mirroring the
// teacher's ExtMove/Move split so move-ordering heuristics (outside
// this core) have somewhere to write without re-walking the list.
type ExtMove struct {
	Move  Move
	Score int32
}

// MoveList is a bounded, stack-local container of at most MaxMoves
// entries (§4.5, §9): an inline array avoids heap traffic on the
// move-generation hot path. Overflowing it is a fatal invariant
// violation, not a recoverable error.
type MoveList struct {
	items [MaxMoves]ExtMove
	n     int
}

// Len returns the number of moves currently in the list.
func (ml *MoveList) Len() int { return ml.n }

// At returns the move at index i.
func (ml *MoveList) At(i int) Move { return ml.items[i].Move }

// Slice returns the populated prefix of the backing array. The slice
// aliases MoveList's storage and must not outlive it.
func (ml *MoveList) Slice() []ExtMove { return ml.items[:ml.n] }

// Reset empties the list for reuse, avoiding repeated allocation
// across perft recursion levels.
func (ml *MoveList) Reset() { ml.n = 0 }

// Append adds m to the list, panicking with an InvariantViolation if
// the list is already at capacity (§4.5, §5).
func (ml *MoveList) Append(m Move) {
	if ml.n >= MaxMoves {
		panicInvariant("MoveList overflow: more than MaxMoves pseudo-legal moves generated")
	}
	ml.items[ml.n] = ExtMove{Move: m}
	ml.n++
}
