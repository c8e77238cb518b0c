package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/quadkey/quadchess/internal/board"
)

// Action is one logical input derived from the four keys.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionToggleSelect
	ActionSubmitMove
)

// PressKind distinguishes a tap from a hold.
type PressKind uint8

const (
	PressNone PressKind = iota
	PressShort
	PressLong
)

// longPressTicks is the hold threshold in update ticks (60 per second).
const longPressTicks = 30

// KeyPoller reads the four logical keys and classifies each press as short
// or long. The mapping follows the device layout:
//
//	KEY1 short: cursor left    long: select / deselect
//	KEY2 short: cursor down    long: submit move
//	KEY3 short: cursor up
//	KEY4 short: cursor right
//
// During promotion a short KEY1..KEY4 picks rook, knight, bishop, queen.
type KeyPoller struct {
	bindings  [4]ebiten.Key
	longFired [4]bool
}

// NewKeyPoller binds the logical keys to the 1..4 digit row.
func NewKeyPoller() *KeyPoller {
	return &KeyPoller{
		bindings: [4]ebiten.Key{
			ebiten.KeyDigit1,
			ebiten.KeyDigit2,
			ebiten.KeyDigit3,
			ebiten.KeyDigit4,
		},
	}
}

// press classifies the state of logical key i this tick. A long press fires
// exactly once while held; a short press fires on release if no long press
// fired during the hold.
func (kp *KeyPoller) press(i int) PressKind {
	key := kp.bindings[i]

	if inpututil.KeyPressDuration(key) >= longPressTicks {
		if kp.longFired[i] {
			return PressNone
		}
		kp.longFired[i] = true
		return PressLong
	}

	if inpututil.IsKeyJustReleased(key) {
		fired := kp.longFired[i]
		kp.longFired[i] = false
		if !fired {
			return PressShort
		}
	}
	return PressNone
}

// PollAction returns at most one action per tick, keys checked in order.
func (kp *KeyPoller) PollAction() Action {
	switch kp.press(0) {
	case PressShort:
		return ActionMoveLeft
	case PressLong:
		return ActionToggleSelect
	}
	switch kp.press(1) {
	case PressShort:
		return ActionMoveDown
	case PressLong:
		return ActionSubmitMove
	}
	if kp.press(2) == PressShort {
		return ActionMoveUp
	}
	if kp.press(3) == PressShort {
		return ActionMoveRight
	}
	return ActionNone
}

// promotionOrder maps KEY1..KEY4 to promotion pieces.
var promotionOrder = [4]board.PieceType{
	board.Rook, board.Knight, board.Bishop, board.Queen,
}

// PollPromotion returns the promotion piece picked this tick, or
// NoPieceType when none of the keys was tapped.
func (kp *KeyPoller) PollPromotion() board.PieceType {
	for i, pt := range promotionOrder {
		if kp.press(i) == PressShort {
			return pt
		}
	}
	return board.NoPieceType
}
