package board

// Offset tables for the mailbox representation. Each entry is a square-index
// delta; file-distance guards reject steps that would wrap around the board
// edge.
var (
	knightOffsets = [8]int{17, 15, 10, 6, -17, -15, -10, -6}
	kingOffsets   = [8]int{1, -1, 8, -8, 9, 7, -7, -9}
	rookDirs      = [4]int{8, -8, 1, -1}
	bishopDirs    = [4]int{9, 7, -9, -7}
	queenDirs     = [8]int{8, -8, 1, -1, 9, 7, -9, -7}
)

// offsetSquare returns the square at sq+delta, or NoSquare if the step
// leaves the board vertically.
func offsetSquare(sq Square, delta int) Square {
	t := int(sq) + delta
	if t < 0 || t > 63 {
		return NoSquare
	}
	return Square(t)
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
// It ignores whose turn it is and whether the attacker's own king would be
// exposed: pawns count diagonally, kings count adjacent squares. The scan
// probes outward from sq with early exit, so cost is bounded by the number
// of occupied rays rather than full move generation.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	// Pawns attack diagonally toward their movement direction, so a pawn
	// attacking sq sits one rank behind it from the attacker's perspective.
	pawn := NewPiece(Pawn, by)
	dir := by.PawnDirection()
	for _, side := range [2]int{-1, 1} {
		from := offsetSquare(sq, -dir+side)
		if from != NoSquare && fileDistance(sq, from) == 1 && p.Squares[from] == pawn {
			return true
		}
	}

	// Knights
	knight := NewPiece(Knight, by)
	for _, delta := range knightOffsets {
		from := offsetSquare(sq, delta)
		if from != NoSquare && fileDistance(sq, from)*rankDistance(sq, from) == 2 && p.Squares[from] == knight {
			return true
		}
	}

	// Sliders: walk each ray until the first occupied square.
	if p.rayAttacked(sq, by, rookDirs[:], Rook) {
		return true
	}
	if p.rayAttacked(sq, by, bishopDirs[:], Bishop) {
		return true
	}

	// Enemy king
	king := NewPiece(King, by)
	for _, delta := range kingOffsets {
		from := offsetSquare(sq, delta)
		if from != NoSquare && fileDistance(sq, from) <= 1 && p.Squares[from] == king {
			return true
		}
	}

	return false
}

// rayAttacked walks the given ray directions from sq and reports whether the
// first blocker on any ray is a slider of color by matching the base type
// (rook rays hit rooks and queens, bishop rays hit bishops and queens).
func (p *Position) rayAttacked(sq Square, by Color, dirs []int, base PieceType) bool {
	for _, dir := range dirs {
		prev := sq
		for {
			cur := offsetSquare(prev, dir)
			if cur == NoSquare || fileDistance(prev, cur) > 1 {
				break
			}
			piece := p.Squares[cur]
			if piece != NoPiece {
				if piece.Color() == by {
					pt := piece.Type()
					if pt == Queen || pt == base {
						return true
					}
				}
				break
			}
			prev = cur
		}
	}
	return false
}

// IsInCheck returns true if the king of the given color is attacked.
func (p *Position) IsInCheck(c Color) bool {
	ksq := p.KingSquare[c]
	if ksq == NoSquare {
		return false
	}
	return p.IsSquareAttacked(ksq, c.Other())
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsInCheck(p.SideToMove)
}
