package board

// GenerateLegalMoves generates all legal moves for the side to move.
// Order is deterministic: squares ascending, fixed offset tables, promotions
// expanded Queen, Rook, Bishop, Knight.
func (p *Position) GenerateLegalMoves() *MoveList {
	ml := &MoveList{}
	p.generateAllMoves(ml)
	p.filterLegalMoves(ml)
	return ml
}

// GeneratePseudoLegalMoves generates all pseudo-legal moves (may leave the
// mover's own king in check).
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := &MoveList{}
	p.generateAllMoves(ml)
	return ml
}

// filterLegalMoves discards pseudo-legal moves that leave the mover's king
// attacked, by applying each move and probing the attack detector. This
// simulate-and-check policy is the contract baseline; with chess's small
// branching factor it stays well within budget on one core.
func (p *Position) filterLegalMoves(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	ml.retain(func(m Move) bool {
		undo := p.MakeMove(m)
		legal := !p.IsSquareAttacked(p.KingSquare[us], them)
		p.UnmakeMove(m, undo)
		return legal
	})
}

// generateAllMoves emits all pseudo-legal moves for the side to move.
func (p *Position) generateAllMoves(ml *MoveList) {
	us := p.SideToMove
	for sq := A1; sq <= H8; sq++ {
		piece := p.Squares[sq]
		if piece == NoPiece || piece.Color() != us {
			continue
		}
		switch piece.Type() {
		case Pawn:
			p.generatePawnMoves(ml, sq, us)
		case Knight:
			p.generateStepMoves(ml, sq, us, knightOffsets[:], 2)
		case Bishop:
			p.generateSliderMoves(ml, sq, us, bishopDirs[:])
		case Rook:
			p.generateSliderMoves(ml, sq, us, rookDirs[:])
		case Queen:
			p.generateSliderMoves(ml, sq, us, queenDirs[:])
		case King:
			p.generateStepMoves(ml, sq, us, kingOffsets[:], 1)
			p.generateCastlingMoves(ml, sq, us)
		}
	}
}

// generatePawnMoves emits pushes, captures, en passant and promotions for
// the pawn on sq.
func (p *Position) generatePawnMoves(ml *MoveList, sq Square, us Color) {
	dir := us.PawnDirection()

	// Single and double push.
	if fwd := offsetSquare(sq, dir); fwd != NoSquare && p.Squares[fwd] == NoPiece {
		p.addPawnAdvance(ml, sq, fwd, us, false)
		if sq.Rank() == us.HomeRank() {
			if dbl := offsetSquare(sq, 2*dir); dbl != NoSquare && p.Squares[dbl] == NoPiece {
				ml.Add(NewMove(sq, dbl, DoublePawnPush))
			}
		}
	}

	// Diagonal captures and en passant.
	for _, side := range [2]int{-1, 1} {
		to := offsetSquare(sq, dir+side)
		if to == NoSquare || fileDistance(sq, to) != 1 {
			continue
		}
		target := p.Squares[to]
		if target != NoPiece && target.Color() != us {
			p.addPawnAdvance(ml, sq, to, us, true)
		} else if target == NoPiece && to == p.EnPassant {
			ml.Add(NewMove(sq, to, EnPassant))
		}
	}
}

// addPawnAdvance adds a pawn push or capture, expanding to the four
// promotion moves when the destination is the last rank.
func (p *Position) addPawnAdvance(ml *MoveList, from, to Square, us Color, capture bool) {
	if to.Rank() != us.PromotionRank() {
		kind := Quiet
		if capture {
			kind = Capture
		}
		ml.Add(NewMove(from, to, kind))
		return
	}
	for _, promo := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		ml.Add(NewPromotion(from, to, promo, capture))
	}
}

// generateStepMoves emits single-step moves for knights (maxFileDist 2) and
// kings (maxFileDist 1).
func (p *Position) generateStepMoves(ml *MoveList, sq Square, us Color, offsets []int, maxFileDist int) {
	for _, delta := range offsets {
		to := offsetSquare(sq, delta)
		if to == NoSquare || fileDistance(sq, to) > maxFileDist {
			continue
		}
		target := p.Squares[to]
		if target == NoPiece {
			ml.Add(NewMove(sq, to, Quiet))
		} else if target.Color() != us {
			ml.Add(NewMove(sq, to, Capture))
		}
	}
}

// generateSliderMoves walks each ray until the first blocker, capturing
// enemy blockers.
func (p *Position) generateSliderMoves(ml *MoveList, sq Square, us Color, dirs []int) {
	for _, dir := range dirs {
		prev := sq
		for {
			to := offsetSquare(prev, dir)
			if to == NoSquare || fileDistance(prev, to) > 1 {
				break
			}
			target := p.Squares[to]
			if target == NoPiece {
				ml.Add(NewMove(sq, to, Quiet))
				prev = to
				continue
			}
			if target.Color() != us {
				ml.Add(NewMove(sq, to, Capture))
			}
			break
		}
	}
}

// generateCastlingMoves emits castling when the rights survive, the squares
// between king and rook are empty, and the king's start, transit and end
// squares are unattacked.
func (p *Position) generateCastlingMoves(ml *MoveList, sq Square, us Color) {
	them := us.Other()

	kingStart := E1
	if us == Black {
		kingStart = E8
	}
	if sq != kingStart || p.IsSquareAttacked(kingStart, them) {
		return
	}

	if p.CastlingRights.CanCastle(us, true) {
		f := kingStart + 1
		g := kingStart + 2
		if p.Squares[f] == NoPiece && p.Squares[g] == NoPiece &&
			!p.IsSquareAttacked(f, them) && !p.IsSquareAttacked(g, them) {
			ml.Add(NewMove(kingStart, g, CastleKingSide))
		}
	}

	if p.CastlingRights.CanCastle(us, false) {
		d := kingStart - 1
		c := kingStart - 2
		b := kingStart - 3
		if p.Squares[d] == NoPiece && p.Squares[c] == NoPiece && p.Squares[b] == NoPiece &&
			!p.IsSquareAttacked(d, them) && !p.IsSquareAttacked(c, them) {
			ml.Add(NewMove(kingStart, c, CastleQueenSide))
		}
	}
}

// HasLegalMoves returns true if the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	return p.GenerateLegalMoves().Len() > 0
}

// Status classifies the position for the side to move.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "InProgress"
	case StatusCheck:
		return "Check"
	case StatusCheckmate:
		return "Checkmate"
	case StatusStalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// Terminal returns true if no further moves are possible.
func (s Status) Terminal() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// Classify returns the terminal classification of the position: an empty
// legal move set means Checkmate when in check and Stalemate otherwise;
// with legal replies the position is Check or InProgress.
func (p *Position) Classify() Status {
	inCheck := p.InCheck()
	if !p.HasLegalMoves() {
		if inCheck {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if inCheck {
		return StatusCheck
	}
	return StatusInProgress
}

// IsCheckmate returns true if the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
