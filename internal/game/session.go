package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/quadkey/quadchess/internal/board"
	"github.com/quadkey/quadchess/internal/engine"
)

// Mode selects who controls each side.
type Mode uint8

const (
	HumanVsHuman Mode = iota
	HumanVsComputer
	ComputerVsHuman
	ComputerVsComputer
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case HumanVsHuman:
		return "HumanVsHuman"
	case HumanVsComputer:
		return "HumanVsComputer"
	case ComputerVsHuman:
		return "ComputerVsHuman"
	case ComputerVsComputer:
		return "ComputerVsComputer"
	default:
		return "Unknown"
	}
}

// aiSides returns which colors the AI controls, indexed by Color.
func (m Mode) aiSides() [2]bool {
	switch m {
	case HumanVsComputer:
		return [2]bool{board.White: false, board.Black: true}
	case ComputerVsHuman:
		return [2]bool{board.White: true, board.Black: false}
	case ComputerVsComputer:
		return [2]bool{true, true}
	default:
		return [2]bool{false, false}
	}
}

// HumanSide returns the single human color for the mixed modes, and ok=false
// for the symmetric ones.
func (m Mode) HumanSide() (board.Color, bool) {
	switch m {
	case HumanVsComputer:
		return board.White, true
	case ComputerVsHuman:
		return board.Black, true
	default:
		return board.White, false
	}
}

// AIConfig configures the computer player.
type AIConfig struct {
	// Difficulty selects the engine's depth and node budget preset.
	Difficulty engine.Difficulty

	// MoveDelay is the minimum time between an AI turn starting and its
	// move being played, so moves stay followable on screen.
	MoveDelay time.Duration
}

// DefaultAIConfig mirrors the stock device settings: medium strength with a
// one second pause before each AI move.
func DefaultAIConfig() AIConfig {
	return AIConfig{
		Difficulty: engine.Medium,
		MoveDelay:  time.Second,
	}
}

// HistoryEntry records one applied ply with enough information to describe
// it after the fact.
type HistoryEntry struct {
	Move   board.Move
	Mover  board.Color
	ByAI   bool
	Status board.Status // classification after the move
}

// Session is one game from the starting position: identity, live position,
// and the applied move history.
type Session struct {
	ID      uuid.UUID
	Mode    Mode
	Started time.Time

	Position *board.Position
	History  []HistoryEntry
	Status   board.Status
}

// NewSession starts a session from the standard starting position.
func NewSession(mode Mode, started time.Time) *Session {
	s, _ := NewSessionFrom(mode, board.NewPosition(), started)
	return s
}

// NewSessionFrom starts a session from a custom position. The position must
// satisfy the board invariants or the session cannot start.
func NewSessionFrom(mode Mode, pos *board.Position, started time.Time) (*Session, error) {
	if err := pos.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		ID:       uuid.New(),
		Mode:     mode,
		Started:  started,
		Position: pos,
		Status:   pos.Classify(),
	}, nil
}

// apply plays the move, reclassifies the position and appends to history.
// The move must come from the current legal set.
func (s *Session) apply(m board.Move, byAI bool) HistoryEntry {
	mover := s.Position.SideToMove
	s.Position.MakeMove(m)
	s.Status = s.Position.Classify()

	entry := HistoryEntry{
		Move:   m,
		Mover:  mover,
		ByAI:   byAI,
		Status: s.Status,
	}
	s.History = append(s.History, entry)
	return entry
}

// LastMove returns the most recently applied move, or NoMove for a fresh
// session.
func (s *Session) LastMove() board.Move {
	if len(s.History) == 0 {
		return board.NoMove
	}
	return s.History[len(s.History)-1].Move
}

// Winner returns the winning color when the session ended in checkmate.
// ok is false while the game runs or after a stalemate.
func (s *Session) Winner() (board.Color, bool) {
	if s.Status != board.StatusCheckmate {
		return board.White, false
	}
	// The side to move is the one that got mated.
	return s.Position.SideToMove.Other(), true
}
