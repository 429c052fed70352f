package perft

import "github.com/corvidae/chesscore/engine"

// Perft counts the number of leaf positions reachable from pos after
// exactly depth plies of fully legal play (§4.7). depth 0 always
// counts 1 (the position itself).
func Perft(pos *engine.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var ml engine.MoveList
	engine.GenerateMoves(pos, engine.NonEvasions|engine.Legal, &ml)

	if depth == 1 {
		return uint64(ml.Len())
	}

	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		pos.MakeMove(m)
		nodes += Perft(pos, depth-1)
		pos.TakeMove(m)
	}
	return nodes
}

// PerftMemo is Perft memoized in tbl, keyed on (Zobrist key, depth).
// Every recursive call probes before generating moves and stores
// before returning; §8 property 6 requires this to equal Perft exactly
// at every depth, since perft leaf counts never depend on move order.
func PerftMemo(pos *engine.Position, depth int, tbl *Table) uint64 {
	if depth == 0 {
		return 1
	}
	if n, ok := tbl.Probe(pos.Zobrist(), depth); ok {
		return n
	}

	var ml engine.MoveList
	engine.GenerateMoves(pos, engine.NonEvasions|engine.Legal, &ml)

	var nodes uint64
	if depth == 1 {
		nodes = uint64(ml.Len())
	} else {
		for i := 0; i < ml.Len(); i++ {
			m := ml.At(i)
			pos.MakeMove(m)
			nodes += PerftMemo(pos, depth-1, tbl)
			pos.TakeMove(m)
		}
	}

	tbl.Store(pos.Zobrist(), depth, nodes)
	return nodes
}

// Counters breaks a leaf count down by move category, grounded on the
// teacher's counters struct in perft/perft.go. Unlike Perft/PerftMemo,
// Detailed is never memoized: the table's 24-byte entry (§4.7) only
// has room for a node count, not a full breakdown.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

func (c *Counters) add(o Counters) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassant += o.EnPassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
}

// Detailed counts leaves at depth like Perft, additionally classifying
// every move made at the final ply by category.
func Detailed(pos *engine.Position, depth int) Counters {
	if depth == 0 {
		return Counters{Nodes: 1}
	}

	var ml engine.MoveList
	engine.GenerateMoves(pos, engine.NonEvasions|engine.Legal, &ml)

	var c Counters
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if depth == 1 {
			switch {
			case m.IsEnPassant():
				c.EnPassant++
				c.Captures++
			case m.IsCastling():
				c.Castles++
			default:
				if pos.PieceAt(m.To()) != engine.EmptyPiece {
					c.Captures++
				}
			}
			if m.IsPromotion() {
				c.Promotions++
			}
		}

		pos.MakeMove(m)
		c.add(Detailed(pos, depth-1))
		pos.TakeMove(m)
	}
	if depth == 1 {
		c.Nodes = uint64(ml.Len())
	}
	return c
}

// DivideResult is one top-level move and the leaf count of the subtree
// under it, the standard "divide" debugging aid (§4.7, §4.11).
type DivideResult struct {
	Move  engine.Move
	Nodes uint64
}

// Divide generates every legal move from pos, then runs Perft(depth-1)
// under each, grounded on the teacher's split function in
// perft/perft.go. depth must be at least 1.
func Divide(pos *engine.Position, depth int) []DivideResult {
	var ml engine.MoveList
	engine.GenerateMoves(pos, engine.NonEvasions|engine.Legal, &ml)

	results := make([]DivideResult, 0, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		pos.MakeMove(m)
		nodes := Perft(pos, depth-1)
		pos.TakeMove(m)
		results = append(results, DivideResult{Move: m, Nodes: nodes})
	}
	return results
}
