package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/quadkey/quadchess/internal/engine"
	"github.com/quadkey/quadchess/internal/game"
)

// menuModes lists the selectable modes in display order.
var menuModes = [4]game.Mode{
	game.HumanVsHuman,
	game.HumanVsComputer,
	game.ComputerVsHuman,
	game.ComputerVsComputer,
}

var menuLabels = [4]string{
	"Human vs Human",
	"Human vs Computer",
	"Computer vs Human",
	"Computer vs Computer",
}

// StartMenu is the mode/difficulty picker shown before a game.
// KEY2/KEY3 move the selection, KEY4 cycles difficulty, KEY1 starts.
type StartMenu struct {
	theme      *Theme
	selected   int
	difficulty engine.Difficulty
}

// NewStartMenu creates a menu seeded with the last-used settings.
func NewStartMenu(theme *Theme, mode game.Mode, difficulty engine.Difficulty) *StartMenu {
	selected := 1
	for i, m := range menuModes {
		if m == mode {
			selected = i
		}
	}
	return &StartMenu{
		theme:      theme,
		selected:   selected,
		difficulty: difficulty,
	}
}

// Mode returns the selected mode.
func (m *StartMenu) Mode() game.Mode {
	return menuModes[m.selected]
}

// Difficulty returns the selected difficulty.
func (m *StartMenu) Difficulty() engine.Difficulty {
	return m.difficulty
}

// Update handles one tick of input. It returns true when the user starts
// the game.
func (m *StartMenu) Update(kp *KeyPoller) bool {
	switch kp.PollAction() {
	case ActionMoveLeft: // KEY1 short
		return true
	case ActionMoveDown: // KEY2 short
		if m.selected < len(menuModes)-1 {
			m.selected++
		}
	case ActionMoveUp: // KEY3 short
		if m.selected > 0 {
			m.selected--
		}
	case ActionMoveRight: // KEY4 short
		m.difficulty = (m.difficulty + 1) % 3
	}
	return false
}

// Draw renders the menu.
func (m *StartMenu) Draw(screen *ebiten.Image) {
	screen.Fill(m.theme.Background)

	x := 60.0
	y := 70.0

	drawText(screen, "quadchess", x, y, m.theme.AccentColor, GetFaceWithSize(28))
	y += 60

	drawText(screen, "Mode", x, y, m.theme.TextColor, GetBoldFace())
	y += 32

	for i, label := range menuLabels {
		c := m.theme.TextColor
		prefix := "  "
		if i == m.selected {
			c = m.theme.AccentColor
			prefix = "> "
		}
		drawText(screen, prefix+label, x, y, c, GetRegularFace())
		y += 26
	}
	y += 24

	drawText(screen, fmt.Sprintf("Difficulty: %s", m.difficulty), x, y, m.theme.TextColor, GetRegularFace())
	y += 44

	small := GetFaceWithSize(12)
	drawText(screen, "KEY3 up   KEY2 down   KEY4 difficulty", x, y, m.theme.TextColor, small)
	y += 20
	drawText(screen, "KEY1 start", x, y, m.theme.TextColor, small)
}
