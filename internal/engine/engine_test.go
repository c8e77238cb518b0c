package engine

import (
	"testing"

	"github.com/quadkey/quadchess/internal/board"
)

func TestSearchReturnsLegalMove(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	}

	s := NewSearcher()
	for _, fen := range fens {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		result := s.Search(pos, SearchLimits{Depth: 3})
		if result.Move == board.NoMove {
			t.Fatalf("no move returned for %q", fen)
		}
		if !pos.GenerateLegalMoves().Contains(result.Move) {
			t.Errorf("move %v is not legal in %q", result.Move, fen)
		}
	}
}

func TestSearchRestoresPosition(t *testing.T) {
	pos := board.NewPosition()
	before := *pos

	s := NewSearcher()
	s.Search(pos, SearchLimits{Depth: 3})

	if *pos != before {
		t.Error("search mutated the position it was given")
	}
}

func TestSearchDeterminism(t *testing.T) {
	pos, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatal(err)
	}

	limits := SearchLimits{Depth: 3, Nodes: 50_000}
	first := NewSearcher().Search(pos, limits)
	for i := 0; i < 3; i++ {
		again := NewSearcher().Search(pos, limits)
		if again.Move != first.Move || again.Score != first.Score || again.Nodes != first.Nodes {
			t.Fatalf("run %d diverged: %v/%d/%d vs %v/%d/%d",
				i, again.Move, again.Score, again.Nodes, first.Move, first.Score, first.Nodes)
		}
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Back rank mate: Rd8 checks along the eighth rank and the pawns on
	// f7/g7/h7 block every flight square.
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	s := NewSearcher()
	result := s.Search(pos, SearchLimits{Depth: 2})

	want := board.NewMove(board.D1, board.D8, board.Quiet)
	if result.Move != want {
		t.Errorf("Search() = %v, want back rank mate d1d8", result.Move)
	}
	if !IsMateScore(result.Score) {
		t.Errorf("score %d should encode mate", result.Score)
	}
	if MateDistance(result.Score) != 1 {
		t.Errorf("MateDistance(%d) = %d, want 1", result.Score, MateDistance(result.Score))
	}
}

func TestSearchPrefersFasterMate(t *testing.T) {
	// White mates in one with Qb7; deeper mates exist but score lower.
	pos, err := board.ParseFEN("k7/8/1KQ5/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	s := NewSearcher()
	result := s.Search(pos, SearchLimits{Depth: 4})

	undo := pos.MakeMove(result.Move)
	mated := pos.IsCheckmate()
	pos.UnmakeMove(result.Move, undo)
	if !mated {
		t.Errorf("move %v does not mate immediately", result.Move)
	}
}

func TestSearchTerminalPositions(t *testing.T) {
	s := NewSearcher()

	mate, err := board.ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	result := s.Search(mate, SearchLimits{Depth: 3})
	if result.Move != board.NoMove {
		t.Errorf("checkmated side returned move %v", result.Move)
	}
	if result.Score != -MateScore {
		t.Errorf("checkmate score = %d, want %d", result.Score, -MateScore)
	}

	stale, err := board.ParseFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	result = s.Search(stale, SearchLimits{Depth: 3})
	if result.Move != board.NoMove || result.Score != 0 {
		t.Errorf("stalemate = (%v, %d), want (no move, 0)", result.Move, result.Score)
	}
}

func TestSearchNodeBudget(t *testing.T) {
	pos := board.NewPosition()

	s := NewSearcher()
	// A budget of 1 node still searches the first root move to full depth.
	result := s.Search(pos, SearchLimits{Depth: 3, Nodes: 1})
	if result.Move == board.NoMove {
		t.Fatal("budgeted search must still return a move")
	}
	if !pos.GenerateLegalMoves().Contains(result.Move) {
		t.Errorf("budgeted move %v is not legal", result.Move)
	}

	unbounded := NewSearcher().Search(pos, SearchLimits{Depth: 3})
	if result.Nodes >= unbounded.Nodes {
		t.Errorf("budgeted search used %d nodes, unbounded used %d", result.Nodes, unbounded.Nodes)
	}
}

func TestEvaluateSymmetry(t *testing.T) {
	// The starting position is symmetric: both perspectives score zero.
	pos := board.NewPosition()
	if got := Evaluate(pos); got != 0 {
		t.Errorf("Evaluate(start) = %d, want 0", got)
	}

	pos.SideToMove = board.Black
	if got := Evaluate(pos); got != 0 {
		t.Errorf("Evaluate(start, black to move) = %d, want 0", got)
	}
}

func TestEvaluateMaterial(t *testing.T) {
	// White is up a queen for a rook.
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/QR2K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	white := Evaluate(pos)
	if white <= 0 {
		t.Errorf("Evaluate = %d, want positive for the side up material", white)
	}

	pos.SideToMove = board.Black
	black := Evaluate(pos)
	if black != -white {
		t.Errorf("perspectives disagree: white %d, black %d", white, black)
	}
}

func TestEngineDifficulty(t *testing.T) {
	e := NewEngine()
	if e.Difficulty() != Medium {
		t.Errorf("default difficulty = %v, want Medium", e.Difficulty())
	}

	e.SetDifficulty(Hard)
	if e.Difficulty() != Hard {
		t.Errorf("difficulty = %v after SetDifficulty(Hard)", e.Difficulty())
	}

	e.SetDifficulty(Difficulty(99))
	if e.Difficulty() != Hard {
		t.Error("unknown difficulty must be ignored")
	}

	pos := board.NewPosition()
	before := *pos
	result := e.BestMove(pos)
	if result.Move == board.NoMove {
		t.Fatal("engine returned no move from the starting position")
	}
	if *pos != before {
		t.Error("BestMove mutated the caller's position")
	}
}
