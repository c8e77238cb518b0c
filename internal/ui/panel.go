package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/quadkey/quadchess/internal/board"
	"github.com/quadkey/quadchess/internal/game"
)

// PanelWidth is the width of the side panel in pixels.
const PanelWidth = 220

// Panel draws the status column to the right of the board.
type Panel struct {
	theme *Theme
	x     int // left edge in pixels
}

// NewPanel creates a panel anchored at x.
func NewPanel(theme *Theme, x int) *Panel {
	return &Panel{theme: theme, x: x}
}

// promotionPrompt is what the panel needs to render the promotion menu.
type promotionPrompt struct {
	active  bool
	choices []board.PieceType
}

// Draw renders the panel for the current controller state.
func (p *Panel) Draw(screen *ebiten.Image, ctrl *game.Controller, promo promotionPrompt) {
	h := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, float32(p.x), 0, PanelWidth, float32(h), p.theme.PanelBG, false)

	x := float64(p.x + 16)
	y := 28.0

	session := ctrl.Session()
	p.text(screen, "quadchess", x, y, p.theme.AccentColor, GetBoldFace())
	y += 34

	p.text(screen, session.Mode.String(), x, y, p.theme.TextColor, GetRegularFace())
	y += 22

	pos := ctrl.Position()
	p.text(screen, fmt.Sprintf("Turn: %s", pos.SideToMove), x, y, p.theme.TextColor, GetRegularFace())
	y += 22

	p.text(screen, materialLabel(pos), x, y, p.theme.TextColor, GetRegularFace())
	y += 22

	if last := session.LastMove(); last != board.NoMove {
		p.text(screen, fmt.Sprintf("Last: %s", last), x, y, p.theme.TextColor, GetRegularFace())
	}
	y += 30

	y = p.drawBanner(screen, ctrl, x, y)

	if promo.active {
		p.drawPromotionMenu(screen, promo.choices, x, y)
		return
	}

	p.drawLegend(screen, ctrl, x, float64(h)-110)
}

// drawBanner renders the check / game over line.
func (p *Panel) drawBanner(screen *ebiten.Image, ctrl *game.Controller, x, y float64) float64 {
	session := ctrl.Session()
	switch session.Status {
	case board.StatusCheck:
		p.text(screen, "Check!", x, y, p.theme.AlertColor, GetBoldFace())
		return y + 34
	case board.StatusCheckmate:
		p.text(screen, "Checkmate", x, y, p.theme.AlertColor, GetBoldFace())
		y += 28
		if winner, ok := session.Winner(); ok {
			p.text(screen, fmt.Sprintf("%s wins", winner), x, y, p.theme.TextColor, GetRegularFace())
		}
		return y + 28
	case board.StatusStalemate:
		p.text(screen, "Stalemate", x, y, p.theme.AlertColor, GetBoldFace())
		y += 28
		p.text(screen, "Draw", x, y, p.theme.TextColor, GetRegularFace())
		return y + 28
	}

	if ctrl.State() == game.StateComputingAI {
		p.text(screen, "Thinking...", x, y, p.theme.AccentColor, GetRegularFace())
		return y + 28
	}
	return y
}

// drawPromotionMenu lists the promotion choices against their keys.
func (p *Panel) drawPromotionMenu(screen *ebiten.Image, choices []board.PieceType, x, y float64) {
	p.text(screen, "Promote to:", x, y, p.theme.AccentColor, GetBoldFace())
	y += 30
	for i, pt := range promotionOrder {
		if !containsType(choices, pt) {
			continue
		}
		p.text(screen, fmt.Sprintf("KEY%d  %s", i+1, pt), x, y, p.theme.TextColor, GetRegularFace())
		y += 22
	}
}

// drawLegend shows the key bindings for the current phase.
func (p *Panel) drawLegend(screen *ebiten.Image, ctrl *game.Controller, x, y float64) {
	if ctrl.State() != game.StateAwaitingInput {
		return
	}
	small := GetFaceWithSize(12)
	lines := []string{
		"KEY1 left   hold: select",
		"KEY2 down   hold: submit",
		"KEY3 up",
		"KEY4 right",
	}
	for _, line := range lines {
		p.text(screen, line, x, y, p.theme.TextColor, small)
		y += 18
	}
}

func (p *Panel) text(screen *ebiten.Image, s string, x, y float64, c color.RGBA, face *text.GoTextFace) {
	drawText(screen, s, x, y, c, face)
}

// materialLabel formats the material balance for display, e.g. "+3.2 White".
func materialLabel(pos *board.Position) string {
	cp := pos.Material()
	switch {
	case cp > 0:
		return fmt.Sprintf("Material: +%.1f White", float64(cp)/100)
	case cp < 0:
		return fmt.Sprintf("Material: +%.1f Black", float64(-cp)/100)
	default:
		return "Material: even"
	}
}

func containsType(list []board.PieceType, pt board.PieceType) bool {
	for _, t := range list {
		if t == pt {
			return true
		}
	}
	return false
}
