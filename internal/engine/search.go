package engine

import (
	"github.com/quadkey/quadchess/internal/board"
)

// Search constants
const (
	Infinity  = 30000
	MateScore = 29000
	MaxDepth  = 32
)

// SearchLimits specifies constraints on the search.
type SearchLimits struct {
	Depth int   // Search depth in plies (clamped to 1..MaxDepth)
	Nodes int64 // Node budget, checked between root moves (0 = no limit)
}

// SearchResult reports the chosen move and the statistics of the search
// that produced it.
type SearchResult struct {
	Move  board.Move
	Score int
	Depth int
	Nodes int64
}

// Searcher performs a fixed-depth negamax alpha-beta search. It is
// deterministic: moves are examined in generation order and ties are broken
// toward the first best move found, so identical positions with identical
// limits always yield the same move.
type Searcher struct {
	nodes int64
}

// NewSearcher creates a new searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Nodes returns the node count of the last search.
func (s *Searcher) Nodes() int64 {
	return s.nodes
}

// Search finds the best move within the given limits. The position is
// mutated during the search and restored before returning; callers who need
// the original untouched should pass a copy.
//
// The node budget is only consulted between root moves: every root move that
// starts searching is searched to full depth, and the budget cuts off before
// the next one begins. The result is therefore always the best fully
// searched root move, never a partial line.
func (s *Searcher) Search(p *board.Position, limits SearchLimits) SearchResult {
	depth := limits.Depth
	if depth < 1 {
		depth = 1
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}

	s.nodes = 0

	moves := p.GenerateLegalMoves()
	result := SearchResult{Move: board.NoMove, Depth: depth}
	if moves.Len() == 0 {
		if p.InCheck() {
			result.Score = -MateScore
		}
		return result
	}

	alpha, beta := -Infinity, Infinity
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := p.MakeMove(m)
		score := -s.negamax(p, depth-1, 1, -beta, -alpha)
		p.UnmakeMove(m, undo)

		if result.Move == board.NoMove || score > alpha {
			alpha = score
			result.Move = m
			result.Score = score
		}

		if limits.Nodes > 0 && s.nodes >= limits.Nodes {
			break
		}
	}

	result.Nodes = s.nodes
	return result
}

// negamax searches to the given remaining depth. Scores are relative to the
// side to move at each node; mate scores are offset by ply so that faster
// mates score higher.
func (s *Searcher) negamax(p *board.Position, depth, ply, alpha, beta int) int {
	s.nodes++

	moves := p.GenerateLegalMoves()
	if moves.Len() == 0 {
		if p.InCheck() {
			return -(MateScore - ply)
		}
		return 0
	}

	if depth == 0 {
		return Evaluate(p)
	}

	best := -Infinity
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := p.MakeMove(m)
		score := -s.negamax(p, depth-1, ply+1, -beta, -alpha)
		p.UnmakeMove(m, undo)

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// IsMateScore reports whether score encodes a forced mate.
func IsMateScore(score int) bool {
	if score < 0 {
		score = -score
	}
	return score > MateScore-MaxDepth
}

// MateDistance returns the number of plies to mate encoded in score.
// Only meaningful when IsMateScore(score) is true.
func MateDistance(score int) int {
	if score < 0 {
		score = -score
	}
	return MateScore - score
}
