package board

// MakeMove applies a move to the position and returns the undo record.
// The move must be pseudo-legal for the current position; the caller (move
// generator, search, controller) only ever feeds moves drawn from the
// generator's own output, so no validation happens here.
func (p *Position) MakeMove(m Move) UndoInfo {
	undo := UndoInfo{
		Captured:       NoPiece,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
	}

	us := p.SideToMove
	from := m.From()
	to := m.To()
	piece := p.Squares[from]
	pt := piece.Type()

	// The en passant window lasts exactly one ply.
	p.EnPassant = NoSquare

	switch m.Kind() {
	case EnPassant:
		// The captured pawn sits behind the destination square.
		capSq := offsetSquare(to, -us.PawnDirection())
		undo.Captured = p.removePiece(capSq)
	default:
		if p.Squares[to] != NoPiece {
			undo.Captured = p.removePiece(to)
		}
	}

	p.movePiece(from, to)

	switch m.Kind() {
	case PromotionQuiet, PromotionCapture:
		p.setPiece(NewPiece(m.Promotion(), us), to)
	case CastleKingSide:
		p.movePiece(NewSquare(7, from.Rank()), NewSquare(5, from.Rank()))
	case CastleQueenSide:
		p.movePiece(NewSquare(0, from.Rank()), NewSquare(3, from.Rank()))
	case DoublePawnPush:
		p.EnPassant = Square((int(from) + int(to)) / 2)
	}

	// Castling rights are revoked the moment the king or rook moves, or a
	// rook is captured on its home square.
	if pt == King {
		if us == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	if from == A1 || to == A1 {
		p.CastlingRights &^= WhiteQueenSideCastle
	}
	if from == H1 || to == H1 {
		p.CastlingRights &^= WhiteKingSideCastle
	}
	if from == A8 || to == A8 {
		p.CastlingRights &^= BlackQueenSideCastle
	}
	if from == H8 || to == H8 {
		p.CastlingRights &^= BlackKingSideCastle
	}

	if pt == Pawn || undo.Captured != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if us == Black {
		p.FullMoveNumber++
	}
	p.SideToMove = us.Other()

	return undo
}

// UnmakeMove is the exact inverse of MakeMove given the undo record it
// returned. The search relies on this pair to explore the tree in place
// without allocating a position per node.
func (p *Position) UnmakeMove(m Move, undo UndoInfo) {
	us := p.SideToMove.Other()
	from := m.From()
	to := m.To()

	p.SideToMove = us
	if us == Black {
		p.FullMoveNumber--
	}
	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.HalfMoveClock = undo.HalfMoveClock

	if m.IsPromotion() {
		// The promoted piece reverts to the pawn that made the move.
		p.removePiece(to)
		p.setPiece(NewPiece(Pawn, us), from)
	} else {
		p.movePiece(to, from)
	}

	switch m.Kind() {
	case EnPassant:
		capSq := offsetSquare(to, -us.PawnDirection())
		p.setPiece(undo.Captured, capSq)
	case CastleKingSide:
		p.movePiece(NewSquare(5, from.Rank()), NewSquare(7, from.Rank()))
	case CastleQueenSide:
		p.movePiece(NewSquare(3, from.Rank()), NewSquare(0, from.Rank()))
	default:
		if undo.Captured != NoPiece {
			p.setPiece(undo.Captured, to)
		}
	}
}
