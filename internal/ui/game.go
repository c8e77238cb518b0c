package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/quadkey/quadchess/internal/board"
	"github.com/quadkey/quadchess/internal/game"
	"github.com/quadkey/quadchess/internal/storage"
)

type screenID uint8

const (
	screenMenu screenID = iota
	screenPlay
)

// pendingPromotion holds the move waiting on a promotion choice.
type pendingPromotion struct {
	from, to board.Square
	choices  []board.PieceType
}

// App is the Ebitengine front end. It owns the start menu, the live game
// controller and the cursor/selection state the four keys drive.
type App struct {
	log   *zap.Logger
	store *storage.Storage // nil when persistence is unavailable
	aiCfg game.AIConfig

	keys     *KeyPoller
	renderer *Renderer
	panel    *Panel
	menu     *StartMenu

	screen   screenID
	ctrl     *game.Controller
	cursor   board.Square
	selected board.Square
	promo    *pendingPromotion

	gameStart time.Time
	recorded  bool
}

// NewApp builds the front end. store may be nil; the menu then starts from
// the given defaults instead of saved preferences.
func NewApp(aiCfg game.AIConfig, defaultMode game.Mode, store *storage.Storage, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}

	renderer := NewRenderer(64)

	mode := defaultMode
	difficulty := aiCfg.Difficulty
	if store != nil {
		if prefs, err := store.LoadPreferences(); err == nil {
			mode = prefs.Mode
			difficulty = prefs.Difficulty
		} else {
			log.Warn("loading preferences failed", zap.Error(err))
		}
	}

	return &App{
		log:      log,
		store:    store,
		aiCfg:    aiCfg,
		keys:     NewKeyPoller(),
		renderer: renderer,
		panel:    NewPanel(renderer.Theme(), renderer.BoardSize()),
		menu:     NewStartMenu(renderer.Theme(), mode, difficulty),
		selected: board.NoSquare,
		cursor:   board.A1,
	}
}

// Layout reports the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.renderer.BoardSize() + PanelWidth, a.renderer.BoardSize()
}

// Update advances the app by one tick.
func (a *App) Update() error {
	switch a.screen {
	case screenMenu:
		a.updateMenu()
	case screenPlay:
		a.updatePlay()
	}
	return nil
}

func (a *App) updateMenu() {
	if !a.menu.Update(a.keys) {
		return
	}

	cfg := a.aiCfg
	cfg.Difficulty = a.menu.Difficulty()
	a.ctrl = game.NewController(a.menu.Mode(), cfg, a.log)
	a.cursor = board.A1
	a.selected = board.NoSquare
	a.promo = nil
	a.recorded = false
	a.gameStart = time.Now()
	a.screen = screenPlay

	a.savePreferences()
}

func (a *App) updatePlay() {
	if a.ctrl.State() == game.StateGameOver {
		a.recordGame()
		// Short KEY1 returns to the menu.
		if a.keys.PollAction() == ActionMoveLeft {
			a.screen = screenMenu
		}
		return
	}

	if a.promo != nil {
		a.updatePromotion()
	} else if a.ctrl.State() == game.StateAwaitingInput {
		a.handleAction(a.keys.PollAction())
	}

	a.ctrl.Step()
}

func (a *App) updatePromotion() {
	pt := a.keys.PollPromotion()
	if pt == board.NoPieceType || !containsType(a.promo.choices, pt) {
		return
	}
	if err := a.ctrl.SubmitMove(a.promo.from, a.promo.to, pt); err != nil {
		a.log.Warn("promotion submit failed", zap.Error(err))
	}
	a.promo = nil
	a.selected = board.NoSquare
}

func (a *App) handleAction(action Action) {
	file, rank := a.cursor.File(), a.cursor.Rank()

	switch action {
	case ActionMoveLeft:
		if file > 0 {
			file--
		}
	case ActionMoveRight:
		if file < 7 {
			file++
		}
	case ActionMoveUp:
		if rank < 7 {
			rank++
		}
	case ActionMoveDown:
		if rank > 0 {
			rank--
		}
	case ActionToggleSelect:
		a.toggleSelect()
		return
	case ActionSubmitMove:
		a.submitMove()
		return
	default:
		return
	}
	a.cursor = board.NewSquare(file, rank)
}

func (a *App) toggleSelect() {
	if a.selected == a.cursor {
		a.selected = board.NoSquare
		return
	}
	if !a.ctrl.Position().IsEmpty(a.cursor) {
		a.selected = a.cursor
	}
}

func (a *App) submitMove() {
	if a.selected == board.NoSquare || a.selected == a.cursor {
		return
	}

	err := a.ctrl.SubmitMove(a.selected, a.cursor, board.NoPieceType)
	switch err {
	case nil:
		a.selected = board.NoSquare
	case game.ErrPromotionChoice:
		a.promo = &pendingPromotion{
			from:    a.selected,
			to:      a.cursor,
			choices: a.ctrl.PromotionChoices(a.selected, a.cursor),
		}
	case game.ErrIllegalMove:
		a.log.Debug("illegal move ignored",
			zap.String("from", a.selected.String()),
			zap.String("to", a.cursor.String()),
		)
	default:
		a.log.Warn("submit failed", zap.Error(err))
	}
}

func (a *App) savePreferences() {
	if a.store == nil {
		return
	}
	prefs := &storage.Preferences{
		Mode:        a.menu.Mode(),
		Difficulty:  a.menu.Difficulty(),
		MoveDelayMS: int(a.aiCfg.MoveDelay / time.Millisecond),
	}
	if err := a.store.SavePreferences(prefs); err != nil {
		a.log.Warn("saving preferences failed", zap.Error(err))
	}
}

func (a *App) recordGame() {
	if a.recorded || a.store == nil {
		return
	}
	a.recorded = true

	session := a.ctrl.Session()
	result := storage.GameResult{
		Mode:     session.Mode,
		Status:   session.Status,
		Duration: time.Since(a.gameStart),
	}
	if winner, ok := session.Winner(); ok {
		result.Winner = winner
	}
	if err := a.store.RecordGame(result); err != nil {
		a.log.Warn("recording game failed", zap.Error(err))
	}
}

// Draw renders the current screen.
func (a *App) Draw(screen *ebiten.Image) {
	if a.screen == screenMenu {
		a.menu.Draw(screen)
		return
	}

	screen.Fill(a.renderer.Theme().Background)
	a.renderer.DrawBoard(screen)

	cursor := a.cursor
	if a.ctrl.State() != game.StateAwaitingInput {
		cursor = board.NoSquare
	}
	a.renderer.DrawHighlights(screen, a.ctrl.Position(), cursor, a.selected, a.ctrl.Session().LastMove())
	a.renderer.DrawPieces(screen, a.ctrl.Position())

	prompt := promotionPrompt{}
	if a.promo != nil {
		prompt = promotionPrompt{active: true, choices: a.promo.choices}
	}
	a.panel.Draw(screen, a.ctrl, prompt)
}
