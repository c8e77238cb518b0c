package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/quadkey/quadchess/internal/board"
	"github.com/quadkey/quadchess/internal/engine"
)

// State is the controller phase.
type State uint8

const (
	// StateAwaitingInput means the side to move is human and the controller
	// waits for SubmitMove.
	StateAwaitingInput State = iota

	// StateComputingAI means the side to move is the computer; the next
	// Step after the configured delay runs the search.
	StateComputingAI

	// StateApplyingMove means a move has been chosen and the next Step
	// applies it.
	StateApplyingMove

	// StateGameOver means the session reached checkmate or stalemate.
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "AwaitingInput"
	case StateComputingAI:
		return "ComputingAI"
	case StateApplyingMove:
		return "ApplyingMove"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Controller drives one session through its turns. It is single-threaded:
// the owner calls Step on every tick, and Step does at most one transition
// per call so the UI can redraw between phases.
type Controller struct {
	session *Session
	eng     *engine.Engine
	cfg     AIConfig
	aiSides [2]bool
	log     *zap.Logger

	state     State
	pending   board.Move
	pendingAI bool
	aiReadyAt time.Time

	// now is the clock; swapped in tests to drive the AI delay.
	now func() time.Time
}

// NewController starts a fresh session in the given mode.
func NewController(mode Mode, cfg AIConfig, log *zap.Logger) *Controller {
	c, _ := NewControllerFrom(mode, board.NewPosition(), cfg, log)
	return c
}

// NewControllerFrom starts a session from a custom position. It fails when
// the position violates the board invariants.
func NewControllerFrom(mode Mode, pos *board.Position, cfg AIConfig, log *zap.Logger) (*Controller, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{
		eng:     engine.NewEngine(),
		cfg:     cfg,
		aiSides: mode.aiSides(),
		log:     log,
		now:     time.Now,
	}
	c.eng.SetDifficulty(cfg.Difficulty)

	session, err := NewSessionFrom(mode, pos, c.now())
	if err != nil {
		return nil, err
	}
	c.session = session
	c.enterTurn()

	c.log.Info("session started",
		zap.String("session_id", c.session.ID.String()),
		zap.String("mode", mode.String()),
		zap.String("difficulty", cfg.Difficulty.String()),
	)
	return c, nil
}

// Session returns the live session.
func (c *Controller) Session() *Session {
	return c.session
}

// Position returns the live position.
func (c *Controller) Position() *board.Position {
	return c.session.Position
}

// State returns the controller phase.
func (c *Controller) State() State {
	return c.state
}

// IsAITurn reports whether the side to move is computer-controlled.
func (c *Controller) IsAITurn() bool {
	return c.aiSides[c.session.Position.SideToMove]
}

// enterTurn sets the phase for the side now to move.
func (c *Controller) enterTurn() {
	if c.session.Status.Terminal() {
		c.state = StateGameOver
		return
	}
	if c.IsAITurn() {
		c.state = StateComputingAI
		c.aiReadyAt = c.now().Add(c.cfg.MoveDelay)
		return
	}
	c.state = StateAwaitingInput
}

// SubmitMove submits a human move as a from/to pair plus a promotion choice.
// promo is ignored unless the move promotes; a promoting move submitted with
// NoPieceType is rejected with ErrPromotionChoice so the caller can ask.
// Any rejection leaves the session untouched.
func (c *Controller) SubmitMove(from, to board.Square, promo board.PieceType) error {
	if c.state == StateGameOver {
		return ErrGameOver
	}
	if c.state != StateAwaitingInput {
		return ErrNotHumanTurn
	}

	legal := c.session.Position.GenerateLegalMoves()
	var plain, promoting board.Move
	promotionSeen := false
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			promotionSeen = true
			if m.Promotion() == promo {
				promoting = m
			}
		} else {
			plain = m
		}
	}

	switch {
	case plain != board.NoMove:
		c.pending = plain
	case promoting != board.NoMove:
		c.pending = promoting
	case promotionSeen:
		return ErrPromotionChoice
	default:
		c.log.Debug("illegal move rejected",
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
		return ErrIllegalMove
	}

	c.pendingAI = false
	c.state = StateApplyingMove
	return nil
}

// PromotionChoices returns the promotion piece types available for a from/to
// pair, in generation order. Empty when the pair is not a promoting move.
func (c *Controller) PromotionChoices(from, to board.Square) []board.PieceType {
	var choices []board.PieceType
	legal := c.session.Position.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.From() == from && m.To() == to && m.IsPromotion() {
			choices = append(choices, m.Promotion())
		}
	}
	return choices
}

// LegalMoves returns the legal move set for the current position.
func (c *Controller) LegalMoves() *board.MoveList {
	return c.session.Position.GenerateLegalMoves()
}

// Step advances the controller by at most one transition. It returns true
// when something changed and the caller should redraw.
func (c *Controller) Step() bool {
	switch c.state {
	case StateComputingAI:
		if c.now().Before(c.aiReadyAt) {
			return false
		}
		result := c.eng.BestMove(c.session.Position)
		if result.Move == board.NoMove {
			// No legal moves: the position was already terminal.
			c.state = StateGameOver
			return true
		}
		c.pending = result.Move
		c.pendingAI = true
		c.state = StateApplyingMove
		c.log.Debug("ai move chosen",
			zap.String("move", result.Move.String()),
			zap.Int("score", result.Score),
			zap.Int64("nodes", result.Nodes),
		)
		return true

	case StateApplyingMove:
		entry := c.session.apply(c.pending, c.pendingAI)
		c.pending = board.NoMove
		c.log.Info("move applied",
			zap.String("move", entry.Move.String()),
			zap.String("mover", entry.Mover.String()),
			zap.Bool("by_ai", entry.ByAI),
			zap.String("status", entry.Status.String()),
			zap.Int("ply", len(c.session.History)),
		)
		c.enterTurn()
		if c.state == StateGameOver {
			c.logGameOver()
		}
		return true
	}
	return false
}

func (c *Controller) logGameOver() {
	fields := []zap.Field{
		zap.String("session_id", c.session.ID.String()),
		zap.String("status", c.session.Status.String()),
		zap.Int("plies", len(c.session.History)),
	}
	if winner, ok := c.session.Winner(); ok {
		fields = append(fields, zap.String("winner", winner.String()))
	}
	c.log.Info("game over", fields...)
}
