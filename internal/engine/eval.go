// Package engine implements the chess AI: a material plus piece-square
// evaluator and a fixed-depth alpha-beta search.
package engine

import (
	"github.com/quadkey/quadchess/internal/board"
)

// checkPenalty nudges the evaluation against the side whose king is
// currently attacked.
const checkPenalty = 30

// Piece-square tables in centipawns, indexed A1=0..H8=63 from white's
// perspective; black squares are mirrored vertically. Coarse and
// midgame-oriented: center pawns are pushed out, knights and bishops
// centralized, rooks drawn to the seventh rank, the king kept home.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 5, 5, -5, -5, 5, 5, 5,
	2, 2, 2, 2, 2, 2, 2, 2,
	1, 1, 2, 3, 3, 2, 1, 1,
	1, 1, 1, 2, 2, 1, 1, 1,
	0, 0, 0, 1, 1, 0, 0, 0,
	0, -1, -1, 0, 0, -1, -1, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-5, -4, -3, -3, -3, -3, -4, -5,
	-4, -2, 0, 0, 0, 0, -2, -4,
	-3, 0, 1, 1, 1, 1, 0, -3,
	-3, 0, 2, 3, 3, 2, 0, -3,
	-3, 0, 2, 3, 3, 2, 0, -3,
	-3, 0, 1, 2, 2, 1, 0, -3,
	-4, -2, 0, 0, 0, 0, -2, -4,
	-5, -4, -3, -3, -3, -3, -4, -5,
}

var bishopPST = [64]int{
	-2, -1, -1, -1, -1, -1, -1, -2,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-1, 0, 1, 1, 1, 1, 0, -1,
	-1, 1, 1, 1, 1, 1, 1, -1,
	-1, 0, 1, 1, 1, 1, 0, -1,
	-1, 0, 0, 1, 1, 0, 0, -1,
	-2, -1, -1, -1, -1, -1, -1, -2,
	-2, -1, -1, -1, -1, -1, -1, -2,
}

var rookPST = [64]int{
	0, 0, 1, 2, 2, 1, 0, 0,
	-2, -2, -2, -2, -2, -2, -2, -2,
	-1, -1, 0, 0, 0, 0, -1, -1,
	-1, -1, 0, 0, 0, 0, -1, -1,
	-1, -1, 0, 0, 0, 0, -1, -1,
	-1, -1, 0, 1, 1, 0, -1, -1,
	-1, -1, 2, 2, 2, 2, -1, -1,
	0, 0, 0, 0, 2, 2, 0, 0,
}

var queenPST = [64]int{
	-4, -2, -2, -1, -1, -2, -2, -4,
	-2, 0, 0, 0, 0, 0, 0, -2,
	-2, 0, 1, 1, 1, 1, 0, -2,
	-1, 0, 1, 1, 1, 1, 0, -1,
	0, 0, 1, 1, 1, 1, 0, -1,
	-1, 0, 1, 1, 1, 1, 0, -1,
	-2, -2, 0, 0, 0, 0, -2, -2,
	-4, -2, -2, -1, -1, -2, -2, -4,
}

var kingPST = [64]int{
	2, 3, 1, 0, 0, 1, 3, 2,
	2, 2, 0, 0, 0, 0, 2, 2,
	-1, -2, -2, -2, -2, -2, -2, -1,
	-2, -3, -3, -4, -4, -3, -3, -2,
	-3, -4, -4, -5, -5, -4, -4, -3,
	-3, -4, -4, -5, -5, -4, -4, -3,
	-3, -4, -4, -5, -5, -4, -4, -3,
	-3, -4, -4, -5, -5, -4, -4, -3,
}

var pstByType = [6]*[64]int{
	&pawnPST, &knightPST, &bishopPST, &rookPST, &queenPST, &kingPST,
}

// pieceSquareBonus returns the placement bonus for a piece on sq.
func pieceSquareBonus(piece board.Piece, sq board.Square) int {
	idx := sq
	if piece.Color() == board.Black {
		idx = sq.Mirror()
	}
	return pstByType[piece.Type()][idx]
}

// Evaluate scores the position in centipawns from the perspective of the
// side to move: material plus piece-square placement plus a small penalty
// when the mover's own king is in check. Positive means the side to move
// is better.
func Evaluate(p *board.Position) int {
	score := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		piece := p.Squares[sq]
		if piece == board.NoPiece {
			continue
		}
		v := piece.Value() + pieceSquareBonus(piece, sq)
		if piece.Color() == board.White {
			score += v
		} else {
			score -= v
		}
	}

	if p.InCheck() {
		if p.SideToMove == board.White {
			score -= checkPenalty
		} else {
			score += checkPenalty
		}
	}

	if p.SideToMove == board.Black {
		return -score
	}
	return score
}
