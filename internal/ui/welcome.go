package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/othelloplay/internal/board"
)

// Welcome screen dimensions
const (
	WelcomeWidth  = 400
	WelcomeHeight = 360
	WelcomePadX   = 32
	WelcomePadY   = 24
)

// Modal colors
var (
	modalOverlay = color.RGBA{0, 0, 0, 180}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
)

// maxNameLength bounds the player names typed on the welcome screen.
const maxNameLength = 16

// WelcomeScreen is shown on first launch and asks for both player names.
type WelcomeScreen struct {
	visible bool

	// Position (centered on screen)
	x, y int

	// Widgets
	nameInputs [board.NumPlayers]*TextInput
	startBtn   *ModalButton

	// Callback
	onComplete func(names [board.NumPlayers]string)
}

// NewWelcomeScreen creates a new welcome screen.
func NewWelcomeScreen() *WelcomeScreen {
	ws := &WelcomeScreen{
		x: (ScreenWidth - WelcomeWidth) / 2,
		y: (ScreenHeight - WelcomeHeight) / 2,
	}
	ws.createWidgets()
	return ws
}

// createWidgets initializes all welcome screen widgets.
func (ws *WelcomeScreen) createWidgets() {
	contentX := ws.x + WelcomePadX
	contentW := WelcomeWidth - WelcomePadX*2

	inputY := ws.y + 136
	for p := range ws.nameInputs {
		placeholder := board.Player(p).String()
		ws.nameInputs[p] = NewTextInput(contentX, inputY+p*76, contentW, 40, placeholder, maxNameLength)
	}

	btnW := 160
	btnH := 44
	btnX := ws.x + (WelcomeWidth-btnW)/2
	btnY := ws.y + WelcomeHeight - WelcomePadY - btnH
	ws.startBtn = NewModalButton(btnX, btnY, btnW, btnH, "Start Playing", true, nil)
}

// Show displays the welcome screen with the current names prefilled.
func (ws *WelcomeScreen) Show(names [board.NumPlayers]string, onComplete func(names [board.NumPlayers]string)) {
	ws.visible = true
	ws.onComplete = onComplete
	for p, in := range ws.nameInputs {
		in.Value = names[p]
		in.SetFocused(p == 0)
	}
	ws.startBtn.OnClick = ws.handleStart
}

// Hide closes the welcome screen.
func (ws *WelcomeScreen) Hide() {
	ws.visible = false
	for _, in := range ws.nameInputs {
		in.SetFocused(false)
	}
}

// IsVisible returns true if the screen is visible.
func (ws *WelcomeScreen) IsVisible() bool {
	return ws.visible
}

// handleStart hands the entered names to the callback. A blank name falls
// back to the player's default name.
func (ws *WelcomeScreen) handleStart() {
	var names [board.NumPlayers]string
	for p, in := range ws.nameInputs {
		names[p] = strings.TrimSpace(in.Value)
		if names[p] == "" {
			names[p] = board.Player(p).String()
		}
	}

	if ws.onComplete != nil {
		ws.onComplete(names)
	}
	ws.Hide()
}

// Update handles input for the welcome screen. It consumes all input while visible.
func (ws *WelcomeScreen) Update(input *InputHandler) bool {
	if !ws.visible {
		return false
	}

	if IsKeyJustPressed(ebiten.KeyEnter) {
		ws.handleStart()
		return true
	}

	// Tab moves focus to the other name field
	if IsKeyJustPressed(ebiten.KeyTab) {
		first := ws.nameInputs[0].IsFocused()
		ws.nameInputs[0].SetFocused(!first)
		ws.nameInputs[1].SetFocused(first)
	}

	for _, in := range ws.nameInputs {
		in.Update(input)
	}
	ws.startBtn.Update(input)

	return true
}

// AnyButtonHovered returns true if any button in the screen is hovered.
func (ws *WelcomeScreen) AnyButtonHovered() bool {
	return ws.visible && ws.startBtn.IsHovered()
}

// Draw renders the welcome screen.
func (ws *WelcomeScreen) Draw(screen *ebiten.Image, sprites *SpriteManager) {
	if !ws.visible {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, modalOverlay, false)
	vector.DrawFilledRect(screen, float32(ws.x), float32(ws.y), WelcomeWidth, WelcomeHeight, modalBg, false)
	vector.StrokeRect(screen, float32(ws.x), float32(ws.y), WelcomeWidth, WelcomeHeight, 2, modalBorder, false)

	// Two overlapping discs as the logo
	const logo = 36
	centerX := float64(ws.x + WelcomeWidth/2)
	sprites.DrawAt(screen, SpritePlayer1, centerX-logo+6, float64(ws.y+18), logo, 1)
	sprites.DrawAt(screen, SpritePlayer2, centerX-6, float64(ws.y+18), logo, 1)

	drawTextCentered(screen, "OTHELLOPLAY", GetTitleFace(), centerX, float64(ws.y+76), textPrimary)
	drawTextCentered(screen, "Welcome! Who is playing?", GetRegularFace(), centerX, float64(ws.y+104), textSecondary)

	contentX := ws.x + WelcomePadX
	for p, in := range ws.nameInputs {
		DrawSectionHeader(screen, board.Player(p).String()+" name", contentX, in.Y-12)
		in.Draw(screen)
	}
	ws.startBtn.Draw(screen)
}
