package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/othelloplay/internal/board"
	"github.com/hailam/othelloplay/internal/config"
)

// Theme defines the color scheme for the board.
type Theme struct {
	Felt          color.RGBA
	GridLine      color.RGBA
	HoverColor    color.RGBA
	LastMoveColor color.RGBA
	Background    color.RGBA
	CoordColor    color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		Felt:          color.RGBA{34, 110, 64, 255},   // Table green
		GridLine:      color.RGBA{20, 70, 40, 255},    // Darker green
		HoverColor:    color.RGBA{255, 255, 255, 40},  // Faint white
		LastMoveColor: color.RGBA{247, 247, 105, 70},  // Soft yellow
		Background:    color.RGBA{40, 44, 52, 255},    // Dark gray
		CoordColor:    color.RGBA{150, 200, 165, 200}, // Pale green
	}
}

// Renderer handles all drawing operations for the board.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int, icons config.Icons) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize, icons),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// DrawBoard draws the felt and the grid.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := float32(r.boardSize)
	vector.DrawFilledRect(screen, 0, 0, size, size, r.theme.Felt, false)

	for i := 0; i <= board.NumCols; i++ {
		p := float32(i * r.squareSize)
		vector.StrokeLine(screen, p, 0, p, size, 1.5, r.theme.GridLine, false)
		vector.StrokeLine(screen, 0, p, size, p, 1.5, r.theme.GridLine, false)
	}

	r.drawCoordinates(screen)
}

// drawCoordinates labels the first column with row numbers and the last row
// with column letters.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	for i := 0; i < board.NumRows; i++ {
		sq := board.NewSquare(i, i)
		name := sq.String()
		drawText(screen, name[1:], face, 3, float64(i*r.squareSize+2), r.theme.CoordColor)
		drawText(screen, name[:1], face, float64((i+1)*r.squareSize-10), float64(r.boardSize-18), r.theme.CoordColor)
	}
}

// DrawHighlights marks the last move and the square under the cursor.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, lastMove, hover board.Square) {
	r.highlightSquare(screen, lastMove, r.theme.LastMoveColor)
	r.highlightSquare(screen, hover, r.theme.HoverColor)
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	size := float32(r.squareSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}

// DrawIndicators draws the legal-destination marker on every indicator square.
func (r *Renderer) DrawIndicators(screen *ebiten.Image, indicators board.Bitboard) {
	indicators.ForEach(func(sq board.Square) {
		x, y := r.SquareToScreen(sq)
		r.sprites.DrawAt(screen, SpriteIndicator, float64(x), float64(y), r.squareSize, 1)
	})
}

// DrawDiscs draws every disc, applying shake offsets from anims when given.
func (r *Renderer) DrawDiscs(screen *ebiten.Image, b board.Board, anims *AnimationManager) {
	inset := r.squareSize / 14
	discSize := r.squareSize - 2*inset

	for _, p := range []board.Player{board.Player1, board.Player2} {
		b.Discs[p].ForEach(func(sq board.Square) {
			x, y := r.SquareToScreen(sq)
			fx, fy := float64(x+inset), float64(y+inset)
			if anims != nil {
				dx, dy := anims.GetShakeOffset(sq)
				fx += dx
				fy += dy
			}
			r.sprites.DrawAt(screen, discSprite(p), fx, fy, discSize, 1)
		})
	}
}

// DrawGhost draws a faded disc of player p on sq as a placement preview.
func (r *Renderer) DrawGhost(screen *ebiten.Image, sq board.Square, p board.Player) {
	if !sq.IsValid() {
		return
	}
	inset := r.squareSize / 14
	x, y := r.SquareToScreen(sq)
	r.sprites.DrawAt(screen, discSprite(p), float64(x+inset), float64(y+inset), r.squareSize-2*inset, 0.35)
}

// SquareToScreen converts a board square to the pixel position of its
// top-left corner. Row 0 is drawn at the top.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	return sq.Col() * r.squareSize, sq.Row() * r.squareSize
}

// ScreenToSquare converts screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	return board.NewSquare(y/r.squareSize, x/r.squareSize)
}

// BoardSize returns the board size in pixels.
func (r *Renderer) BoardSize() int {
	return r.boardSize
}

// SquareSize returns the size of one square in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}
