package board

import "testing"

// walkAndRestore applies every legal move to depth levels deep, unmaking each
// one and checking that the position is restored exactly. Position is a value
// type, so == compares every field including clocks and king caches.
func walkAndRestore(t *testing.T, p *Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}
	before := *p
	moves := p.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := p.MakeMove(m)
		walkAndRestore(t, p, depth-1)
		p.UnmakeMove(m, undo)
		if *p != before {
			t.Fatalf("position not restored after %v:\nbefore: %safter: %s", m, before.String(), p.String())
		}
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
		"8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		walkAndRestore(t, pos, 3)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1",
		"7k/5K2/6Q1/8/8/8/8/8 b - - 12 47",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("ToFEN() = %q, want %q", got, fen)
		}
	}
}

func TestEnPassantCapture(t *testing.T) {
	// After 1. e4 ... 2. e5 d5, white can capture en passant on d6.
	pos, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	moves := pos.GenerateLegalMoves()
	var ep Move
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.Kind() == EnPassant {
			ep = m
		}
	}
	if ep == NoMove {
		t.Fatal("expected an en passant capture to be legal")
	}
	if ep.From() != E5 || ep.To() != D6 {
		t.Fatalf("en passant = %v, want e5d6", ep)
	}

	undo := pos.MakeMove(ep)
	if pos.Squares[D5] != NoPiece {
		t.Error("captured pawn still on d5 after en passant")
	}
	if pos.Squares[D6] != WhitePawn {
		t.Error("capturing pawn missing from d6")
	}
	if undo.Captured != BlackPawn {
		t.Errorf("undo.Captured = %v, want black pawn", undo.Captured)
	}

	pos.UnmakeMove(ep, undo)
	if pos.Squares[D5] != BlackPawn || pos.Squares[E5] != WhitePawn || pos.Squares[D6] != NoPiece {
		t.Error("en passant not reverted exactly")
	}
}

func TestCastlingApplication(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	moves := pos.GenerateLegalMoves()
	var kingSide, queenSide Move
	for i := 0; i < moves.Len(); i++ {
		switch m := moves.Get(i); m.Kind() {
		case CastleKingSide:
			kingSide = m
		case CastleQueenSide:
			queenSide = m
		}
	}
	if kingSide == NoMove || queenSide == NoMove {
		t.Fatal("expected both castling moves to be legal")
	}

	undo := pos.MakeMove(kingSide)
	if pos.Squares[G1] != WhiteKing || pos.Squares[F1] != WhiteRook {
		t.Error("king-side castle did not place king on g1 and rook on f1")
	}
	if pos.CastlingRights.CanCastle(White, true) || pos.CastlingRights.CanCastle(White, false) {
		t.Error("white castling rights must be revoked after castling")
	}
	if !pos.CastlingRights.CanCastle(Black, true) || !pos.CastlingRights.CanCastle(Black, false) {
		t.Error("black castling rights must survive white's castle")
	}
	pos.UnmakeMove(kingSide, undo)

	undo = pos.MakeMove(queenSide)
	if pos.Squares[C1] != WhiteKing || pos.Squares[D1] != WhiteRook {
		t.Error("queen-side castle did not place king on c1 and rook on d1")
	}
	pos.UnmakeMove(queenSide, undo)

	if pos.ToFEN() != "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1" {
		t.Errorf("position drifted after castle round trips: %s", pos.ToFEN())
	}
}

func TestRookMoveRevokesCastlingRights(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	// a1 rook moves: white loses queen-side rights only.
	pos.MakeMove(NewMove(A1, A4, Quiet))
	if pos.CastlingRights.CanCastle(White, false) {
		t.Error("a1 rook move must revoke white queen-side castling")
	}
	if !pos.CastlingRights.CanCastle(White, true) {
		t.Error("a1 rook move must not touch white king-side castling")
	}

	// h8 rook captured on its home square: black loses king-side rights.
	pos2, _ := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2Q w KQkq - 0 1")
	pos2.MakeMove(NewMove(H1, H8, Capture))
	if pos2.CastlingRights.CanCastle(Black, true) {
		t.Error("capture on h8 must revoke black king-side castling")
	}
}

func TestPromotionApplication(t *testing.T) {
	pos, err := ParseFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	moves := pos.GenerateLegalMoves()
	want := map[PieceType]bool{Queen: false, Rook: false, Bishop: false, Knight: false}
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.IsPromotion() && m.From() == A7 && m.To() == A8 {
			want[m.Promotion()] = true
		}
	}
	for pt, seen := range want {
		if !seen {
			t.Errorf("missing promotion to %v", pt)
		}
	}

	before := *pos
	promo := NewPromotion(A7, A8, Knight, false)
	undo := pos.MakeMove(promo)
	if pos.Squares[A8] != WhiteKnight {
		t.Errorf("a8 = %v after underpromotion, want white knight", pos.Squares[A8])
	}
	if pos.Squares[A7] != NoPiece {
		t.Error("pawn still on a7 after promotion")
	}
	pos.UnmakeMove(promo, undo)
	if *pos != before {
		t.Error("promotion not reverted exactly")
	}
}

func TestHalfMoveClock(t *testing.T) {
	pos := NewPosition()

	// Knight development does not reset the clock.
	undo := pos.MakeMove(NewMove(G1, F3, Quiet))
	if pos.HalfMoveClock != 1 {
		t.Errorf("HalfMoveClock = %d after knight move, want 1", pos.HalfMoveClock)
	}
	pos.UnmakeMove(NewMove(G1, F3, Quiet), undo)

	// Pawn moves reset it.
	pos.MakeMove(NewMove(E2, E4, DoublePawnPush))
	if pos.HalfMoveClock != 0 {
		t.Errorf("HalfMoveClock = %d after pawn move, want 0", pos.HalfMoveClock)
	}
	if pos.EnPassant != E3 {
		t.Errorf("EnPassant = %v after double push, want e3", pos.EnPassant)
	}
	if pos.FullMoveNumber != 1 {
		t.Errorf("FullMoveNumber = %d after white's move, want 1", pos.FullMoveNumber)
	}

	pos.MakeMove(NewMove(G8, F6, Quiet))
	if pos.EnPassant != NoSquare {
		t.Error("en passant window must close after one ply")
	}
	if pos.FullMoveNumber != 2 {
		t.Errorf("FullMoveNumber = %d after black's move, want 2", pos.FullMoveNumber)
	}
}

func TestValidate(t *testing.T) {
	pos := NewPosition()
	if err := pos.Validate(); err != nil {
		t.Errorf("starting position must validate: %v", err)
	}

	noKing, _ := ParseFEN("8/8/8/8/8/8/8/K7 w - - 0 1")
	if err := noKing.Validate(); err == nil {
		t.Error("position without a black king must not validate")
	}

	backRankPawn, _ := ParseFEN("P6k/8/8/8/8/8/8/K7 w - - 0 1")
	if err := backRankPawn.Validate(); err == nil {
		t.Error("pawn on the eighth rank must not validate")
	}
}
