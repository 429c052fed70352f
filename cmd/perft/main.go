// Command perft is a thin CLI driver around package perft, grounded on
// the teacher's own perft/perft.go main() (§4.11). It is the one piece
// of the teacher's CLI surface kept in scope, since perft itself, not
// general engine UCI/CLI handling, is this module's headline workload.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/corvidae/chesscore/engine"
	"github.com/corvidae/chesscore/internal/config"
	"github.com/corvidae/chesscore/internal/diagram"
	"github.com/corvidae/chesscore/internal/logging"
	"github.com/corvidae/chesscore/perft"
)

var (
	fenFlag    = flag.String("fen", "startpos", "FEN to search, or one of startpos/kiwipete/duplain")
	depthFlag  = flag.Int("depth", 5, "search depth")
	divideFlag = flag.Bool("divide", false, "print a one-ply divide breakdown instead of aggregate counts")
	configFlag = flag.String("config", "", "path to a TOML config file (default: built-in defaults)")
	svgDirFlag = flag.String("divide-svg-dir", "", "if set with -divide, write one SVG per child position here")
)

var knownFens = map[string]string{
	"startpos": engine.StartFEN,
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"duplain":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		logging.Fatalf("loading config: %v", err)
	}

	mode := engine.Normal
	if cfg.Engine.Mode == "chess960" {
		mode = engine.Chess960
	}

	fen := *fenFlag
	if known, ok := knownFens[fen]; ok {
		fen = known
	}

	pos := engine.NewPosition()
	if err := pos.Set(fen, mode); err != nil {
		logging.Fatalf("parsing -fen %q: %v", *fenFlag, err)
	}

	if *divideFlag {
		runDivide(pos, *depthFlag)
		return
	}

	var tbl *perft.Table
	if cfg.Perft.Enabled {
		tbl = perft.NewTable(cfg.Perft.TableSizeMB)
	}

	fmt.Printf("Searching FEN %q\n", fen)
	fmt.Println("depth        nodes   captures  enpassant   castles promotions  elapsed         KNps")
	fmt.Println("-----+------------+----------+-----------+--------+----------+----------+-----------")

	for d := 1; d <= *depthFlag; d++ {
		start := time.Now()
		var nodes uint64
		if tbl != nil {
			nodes = perft.PerftMemo(pos, d, tbl)
		} else {
			nodes = perft.Perft(pos, d)
		}
		elapsed := time.Since(start)

		c := perft.Detailed(pos, d)
		knps := float64(nodes) / elapsed.Seconds() / 1e3
		fmt.Printf("%5d %12d %10d %11d %8d %10d %10v %10.0f\n",
			d, nodes, c.Captures, c.EnPassant, c.Castles, c.Promotions, elapsed, knps)
	}
}

func runDivide(pos *engine.Position, depth int) {
	if depth < 1 {
		logging.Fatalf("-divide requires -depth >= 1, got %d", depth)
	}
	results := perft.Divide(pos, depth)

	var total uint64
	for i, r := range results {
		fmt.Printf("%s: %d\n", r.Move.String(), r.Nodes)
		total += r.Nodes

		if *svgDirFlag != "" {
			pos.MakeMove(r.Move)
			writeDivideSVG(pos, i, r)
			pos.TakeMove(r.Move)
		}
	}
	fmt.Printf("\nMoves: %d  Total nodes: %d\n", len(results), total)
}

func writeDivideSVG(pos *engine.Position, index int, r perft.DivideResult) {
	path := fmt.Sprintf("%s/%02d-%s.svg", *svgDirFlag, index, r.Move.String())
	f, err := os.Create(path)
	if err != nil {
		logging.Warningf("divide-svg: %v", err)
		return
	}
	defer f.Close()
	diagram.Annotate(f, pos, fmt.Sprintf("%s (%d nodes)", r.Move.String(), r.Nodes))
}
