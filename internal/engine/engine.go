package engine

import (
	"github.com/quadkey/quadchess/internal/board"
)

// Difficulty represents the AI difficulty level.
type Difficulty int

const (
	Easy   Difficulty = iota // shallow and budget-capped
	Medium                   // default
	Hard                     // full depth, generous budget
)

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// DifficultySettings maps difficulty to search limits.
var DifficultySettings = map[Difficulty]SearchLimits{
	Easy:   {Depth: 2, Nodes: 5_000},
	Medium: {Depth: 3, Nodes: 20_000},
	Hard:   {Depth: 4, Nodes: 200_000},
}

// Engine is the chess AI engine.
type Engine struct {
	searcher   *Searcher
	difficulty Difficulty
}

// NewEngine creates a new engine at Medium difficulty.
func NewEngine() *Engine {
	return &Engine{
		searcher:   NewSearcher(),
		difficulty: Medium,
	}
}

// SetDifficulty sets the engine difficulty.
func (e *Engine) SetDifficulty(d Difficulty) {
	if _, ok := DifficultySettings[d]; ok {
		e.difficulty = d
	}
}

// Difficulty returns the current difficulty.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// BestMove finds the best move for the given position at the current
// difficulty. The position is searched on a private copy and never mutated.
func (e *Engine) BestMove(pos *board.Position) SearchResult {
	return e.BestMoveWithLimits(pos, DifficultySettings[e.difficulty])
}

// BestMoveWithLimits finds the best move with explicit search limits.
func (e *Engine) BestMoveWithLimits(pos *board.Position, limits SearchLimits) SearchResult {
	snapshot := *pos
	return e.searcher.Search(&snapshot, limits)
}

// Evaluate returns the static evaluation of a position from the side to
// move's perspective.
func (e *Engine) Evaluate(pos *board.Position) int {
	return Evaluate(pos)
}
