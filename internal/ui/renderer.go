package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/quadkey/quadchess/internal/board"
)

// Theme defines the color scheme.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	CursorColor    color.RGBA
	SelectedSquare color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	PanelBG        color.RGBA
	TextColor      color.RGBA
	AccentColor    color.RGBA
	AlertColor     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		CursorColor:    color.RGBA{90, 150, 220, 160},  // Blue
		SelectedSquare: color.RGBA{220, 60, 60, 150},   // Red, as on the device
		LastMoveColor:  color.RGBA{230, 160, 60, 110},  // Soft orange
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
		PanelBG:        color.RGBA{30, 33, 40, 255},
		TextColor:      color.RGBA{220, 220, 220, 255},
		AccentColor:    color.RGBA{230, 160, 60, 255},
		AlertColor:     color.RGBA{240, 80, 80, 255},
	}
}

// Renderer draws the board, highlights and pieces.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	squareSize int
}

// NewRenderer creates a renderer with the given square size in pixels.
func NewRenderer(squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		squareSize: squareSize,
	}
}

// BoardSize returns the board edge length in pixels.
func (r *Renderer) BoardSize() int {
	return r.squareSize * 8
}

// SquareSize returns the size of one square in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// SquareToScreen converts a board square to pixel coordinates. Rank 1 is at
// the bottom.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	x := sq.File() * r.squareSize
	y := (7 - sq.Rank()) * r.squareSize
	return x, y
}

// DrawBoard draws the checkered squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := float32(file * r.squareSize)
			y := float32((7 - rank) * r.squareSize)

			c := r.theme.LightSquare
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, x, y, float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
}

// DrawHighlights overlays last move, check, selection and the cursor, in
// that order so the cursor stays visible on top.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, pos *board.Position, cursor, selected board.Square, lastMove board.Move) {
	if lastMove != board.NoMove {
		r.highlightSquare(screen, lastMove.From(), r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To(), r.theme.LastMoveColor)
	}

	if pos.InCheck() {
		r.highlightSquare(screen, pos.KingSquare[pos.SideToMove], r.theme.CheckColor)
	}

	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	r.drawCursor(screen, cursor)
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.squareSize), float32(r.squareSize), c, false)
}

// drawCursor draws the cursor as a thick square outline.
func (r *Renderer) drawCursor(screen *ebiten.Image, sq board.Square) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	const border = 3
	vector.StrokeRect(screen,
		float32(x)+border/2, float32(y)+border/2,
		float32(r.squareSize)-border, float32(r.squareSize)-border,
		border, r.theme.CursorColor, false)
}

// DrawPieces draws all pieces on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, pos *board.Position) {
	for sq := board.A1; sq <= board.H8; sq++ {
		piece := pos.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}
		x, y := r.SquareToScreen(sq)
		r.sprites.DrawPieceAt(screen, piece, x, y)
	}
}
