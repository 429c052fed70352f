package engine

import (
	"math/rand"

	"github.com/corvidae/chesscore/internal/logging"
)

// Magic bitboards for sliding pieces, grounded on the teacher's
// wizard/magicInfo machinery in attack.go: a magic multiplier and
// shift per square that perfect-hashes the relevant occupancy subset
// into a precomputed attack table (§4.2).
type magicEntry struct {
	table []Bitboard
	mask  Bitboard
	magic uint64
	shift uint
}

func (m *magicEntry) attacks(occupancy Bitboard) Bitboard {
	idx := uint64(occupancy&m.mask) * m.magic >> m.shift
	return m.table[idx]
}

var (
	bishopMagics [64]magicEntry
	rookMagics   [64]magicEntry
)

// Attacks returns the set of squares a knight, bishop, rook, queen or
// king on sq attacks given the board occupancy occ. Pawn attacks depend
// on color and live in PawnAttacks, so Pawn (like NoPieceType) yields
// BbEmpty here. Referentially transparent: depends only on its inputs,
// per §4.2's contract.
func Attacks(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Knight, King:
		return PseudoAttacks[pt][sq]
	case Bishop:
		return bishopMagics[sq].attacks(occ)
	case Rook:
		return rookMagics[sq].attacks(occ)
	case Queen:
		return bishopMagics[sq].attacks(occ) | rookMagics[sq].attacks(occ)
	default:
		return BbEmpty
	}
}

// magicWizard searches for a collision-free magic multiplier for each
// square, exactly as the teacher's wizard type does: enumerate every
// occupancy subset of the relevant mask (Carry-Rippler trick) and
// reject any magic whose hash collides two different occupancies onto
// different attack sets.
type magicWizard struct {
	deltas   [4][2]int
	rng      *rand.Rand
	occupied []Bitboard
	attack   []Bitboard
	scratch  []Bitboard
}

func newMagicWizard(deltas [4][2]int, seed int64) *magicWizard {
	return &magicWizard{deltas: deltas, rng: rand.New(rand.NewSource(seed))}
}

func (w *magicWizard) randomMagic() uint64 {
	r := w.rng.Uint64() & w.rng.Uint64() & w.rng.Uint64()
	return r
}

func edgeMask(sq Square) Bitboard {
	border := (BbRank1 | BbRank8) &^ RankBb(sq.Rank())
	border |= (BbFileA | BbFileH) &^ FileBb(sq.File())
	return border
}

func (w *magicWizard) search(sq Square) magicEntry {
	mask := slidingAttack(sq, w.deltas, BbEmpty) &^ edgeMask(sq)
	bits := mask.Count()

	w.occupied = w.occupied[:0]
	w.attack = w.attack[:0]
	for subset := Bitboard(0); ; {
		w.occupied = append(w.occupied, subset)
		w.attack = append(w.attack, slidingAttack(sq, w.deltas, subset))
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}

	shift := uint(64 - bits)
	size := 1 << uint(bits)
	if cap(w.scratch) < size {
		w.scratch = make([]Bitboard, size)
	}
	scratch := w.scratch[:size]

	for attempt := 0; ; attempt++ {
		magic := w.randomMagic()
		if Bitboard(uint64(mask)*magic).Count() < 6 {
			continue
		}
		for i := range scratch {
			scratch[i] = 0
		}
		ok := true
		for i, occ := range w.occupied {
			idx := uint64(occ) * magic >> shift
			if scratch[idx] != 0 && scratch[idx] != w.attack[i] {
				ok = false
				break
			}
			scratch[idx] = w.attack[i]
		}
		if !ok {
			if attempt > 1_000_000 {
				panic(&InitializationError{Table: "magic bitboards", Reason: "no collision-free magic found after 1,000,000 attempts"})
			}
			continue
		}

		table := make([]Bitboard, size)
		copy(table, scratch)
		return magicEntry{table: table, mask: mask, magic: magic, shift: shift}
	}
}

func initMagics() {
	// Seeds are compiled-in constants: deterministic across runs and
	// processes, like the teacher's rand.Seed(5) in attack.go.
	rookWizard := newMagicWizard(rookDeltas, 1)
	for sq := SquareA1; sq < SquareNone; sq++ {
		rookMagics[sq] = rookWizard.search(sq)
	}
	bishopWizard := newMagicWizard(bishopDeltas, 2)
	for sq := SquareA1; sq < SquareNone; sq++ {
		bishopMagics[sq] = bishopWizard.search(sq)
	}
	validateMagics()
	logging.Infof("magic bitboards initialized (rook + bishop, 64 squares each)")
}

// validateMagics re-derives every attack set the slow way and compares
// it against what the magic tables report, catching any init-time
// collision per §4.2's fatal InitializationError contract.
func validateMagics() {
	for sq := SquareA1; sq < SquareNone; sq++ {
		mask := rookMagics[sq].mask
		for subset := Bitboard(0); ; {
			want := slidingAttack(sq, rookDeltas, subset)
			got := rookMagics[sq].attacks(subset)
			if want != got {
				panic(&InitializationError{Table: "rook magic", Reason: "attack mismatch at " + sq.String()})
			}
			subset = (subset - mask) & mask
			if subset == 0 {
				break
			}
		}
		mask = bishopMagics[sq].mask
		for subset := Bitboard(0); ; {
			want := slidingAttack(sq, bishopDeltas, subset)
			got := bishopMagics[sq].attacks(subset)
			if want != got {
				panic(&InitializationError{Table: "bishop magic", Reason: "attack mismatch at " + sq.String()})
			}
			subset = (subset - mask) & mask
			if subset == 0 {
				break
			}
		}
	}
}

func init() {
	initMagics()
}
