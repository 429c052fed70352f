// Package diagram renders a board position to SVG for debugging perft
// divergences (§4.10, supplemented feature). It is purely additive:
// nothing in engine or perft imports it, and it is not a notation
// formatter — it draws squares and piece letters, nothing else.
package diagram

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/corvidae/chesscore/engine"
)

const (
	squareSize = 48
	boardSize  = squareSize * 8
)

var lightColor, darkColor = "#EEEED2", "#769656"

// Render draws pos as an 8x8 SVG board to w, one square per board
// square, with a piece's FEN letter centered on any occupied square.
// rank 8 is drawn at the top, matching how a human reads a board.
func Render(w io.Writer, pos *engine.Position) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)
	defer canvas.End()

	for r := engine.Rank(7); r >= 0; r-- {
		for f := engine.File(0); f < 8; f++ {
			sq := engine.RankFile(r, f)
			x := int(f) * squareSize
			y := (7 - int(r)) * squareSize

			color := lightColor
			if (int(r)+int(f))%2 == 0 {
				color = darkColor
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+color)

			if pi := pos.PieceAt(sq); pi != engine.EmptyPiece {
				canvas.Text(x+squareSize/2, y+squareSize/2+6, pi.String(),
					"text-anchor:middle;font-size:24px;font-family:monospace")
			}
		}
	}
}

// Annotate renders pos like Render, with a caption (e.g. a FEN string
// or the diverging move) written below the board. Used by
// cmd/perft -divide when visualizing a failing subtree.
func Annotate(w io.Writer, pos *engine.Position, caption string) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize+24)
	defer canvas.End()

	for r := engine.Rank(7); r >= 0; r-- {
		for f := engine.File(0); f < 8; f++ {
			sq := engine.RankFile(r, f)
			x := int(f) * squareSize
			y := (7 - int(r)) * squareSize

			color := lightColor
			if (int(r)+int(f))%2 == 0 {
				color = darkColor
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+color)

			if pi := pos.PieceAt(sq); pi != engine.EmptyPiece {
				canvas.Text(x+squareSize/2, y+squareSize/2+6, pi.String(),
					"text-anchor:middle;font-size:24px;font-family:monospace")
			}
		}
	}
	canvas.Text(boardSize/2, boardSize+16, caption, "text-anchor:middle;font-size:14px;font-family:monospace")
}
