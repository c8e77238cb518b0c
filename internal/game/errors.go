// Package game implements the turn controller: a small state machine that
// alternates human input and AI computation over a single chess session.
package game

import "errors"

var (
	// ErrIllegalMove reports a submitted move that is not in the legal set
	// for the current position. The session state is unchanged.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNotHumanTurn reports input arriving while the controller is not
	// awaiting it (AI thinking, move pending, or game over).
	ErrNotHumanTurn = errors.New("not awaiting human input")

	// ErrPromotionChoice reports a pawn move to the last rank submitted
	// without a promotion piece. The caller must resubmit with one.
	ErrPromotionChoice = errors.New("promotion choice required")

	// ErrGameOver reports an operation on a finished session.
	ErrGameOver = errors.New("game over")
)
