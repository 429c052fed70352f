package perft

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidae/chesscore/engine"
)

const (
	startposFEN = engine.StartFEN
	kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	duplainFEN  = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

// expected node counts per depth (index 0 is depth 0, trivially 1),
// grounded on the teacher's perft/perft.go `data` table (§8).
var startposNodes = []uint64{1, 20, 400, 8902, 197281, 4865609}
var kiwipeteNodes = []uint64{1, 48, 2039, 97862, 4085603}
var duplainNodes = []uint64{1, 14, 191, 2812, 43238, 674624, 11030083}

func newPos(t *testing.T, fen string) *engine.Position {
	t.Helper()
	pos := engine.NewPosition()
	require.NoError(t, pos.Set(fen, engine.Normal))
	return pos
}

func TestPerftStartPosition(t *testing.T) {
	pos := newPos(t, startposFEN)
	for depth, want := range startposNodes {
		require.Equal(t, want, Perft(pos, depth), "depth %d", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos := newPos(t, kiwipeteFEN)
	for depth, want := range kiwipeteNodes {
		require.Equal(t, want, Perft(pos, depth), "depth %d", depth)
	}
}

func TestPerftDuplain(t *testing.T) {
	pos := newPos(t, duplainFEN)
	for depth, want := range duplainNodes {
		require.Equal(t, want, Perft(pos, depth), "depth %d", depth)
	}
}

// TestPerftMemoMatchesPerft checks the table-memoized path agrees with
// the plain recursive one at every depth (§8 property 6): memoization
// must never change what gets counted.
func TestPerftMemoMatchesPerft(t *testing.T) {
	for _, fen := range []string{startposFEN, kiwipeteFEN, duplainFEN} {
		pos := newPos(t, fen)
		tbl := NewTable(16)
		for depth := 0; depth <= 4; depth++ {
			want := Perft(pos, depth)
			got := PerftMemo(pos, depth, tbl)
			require.Equal(t, want, got, "fen %q depth %d", fen, depth)
		}
	}
}

func TestPerftMemoReusesTableAcrossRuns(t *testing.T) {
	pos := newPos(t, startposFEN)
	tbl := NewTable(16)
	first := PerftMemo(pos, 4, tbl)
	second := PerftMemo(pos, 4, tbl)
	require.Equal(t, first, second)
	require.Equal(t, startposNodes[4], first)
}

func TestDetailedMatchesKnownBreakdown(t *testing.T) {
	pos := newPos(t, startposFEN)
	c := Detailed(pos, 4)
	require.Equal(t, uint64(197281), c.Nodes)
	require.Equal(t, uint64(1576), c.Captures)
	require.Equal(t, uint64(0), c.EnPassant)
	require.Equal(t, uint64(0), c.Castles)
	require.Equal(t, uint64(0), c.Promotions)
}

func TestDivideSumsToPerft(t *testing.T) {
	pos := newPos(t, kiwipeteFEN)
	results := Divide(pos, 3)

	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	require.Equal(t, kiwipeteNodes[3], total)
	require.Len(t, results, int(kiwipeteNodes[1]))
}

func TestTableSizing(t *testing.T) {
	tbl := NewTable(1)
	require.True(t, tbl.Len() > 0)
	require.Equal(t, 0, tbl.Len()&(tbl.Len()-1), "table length must be a power of two")
}
