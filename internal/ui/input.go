package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a command bound to a keyboard shortcut.
type Action int

const (
	ActionNone Action = iota
	ActionNewMatch
	ActionComputerEasy
	ActionComputerHard
	ActionToggleMode
	ActionToggleSound
)

// shortcuts maps keys to actions.
var shortcuts = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyN, ActionNewMatch},
	{ebiten.KeyC, ActionComputerEasy},
	{ebiten.KeyH, ActionComputerHard},
	{ebiten.KeyM, ActionToggleMode},
	{ebiten.KeyS, ActionToggleSound},
}

// InputHandler manages mouse and keyboard input.
type InputHandler struct {
	mouseX, mouseY   int
	leftPressed      bool
	leftJustPressed  bool
	leftJustReleased bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update updates the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	// Layout returns a fixed logical size, so the cursor is already in board pixels
	ih.mouseX, ih.mouseY = ebiten.CursorPosition()

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.leftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	ih.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// MousePosition returns the current mouse position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsLeftJustReleased returns true if the left mouse button was just released.
func (ih *InputHandler) IsLeftJustReleased() bool {
	return ih.leftJustReleased
}

// IsLeftPressed returns true if the left mouse button is currently pressed.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.leftPressed
}

// IsInBounds returns true if the mouse is within the given rectangle.
func (ih *InputHandler) IsInBounds(x, y, w, h int) bool {
	return inside(ih.mouseX, ih.mouseY, x, y, w, h)
}

// ClickedInBounds returns true if the mouse was just clicked within the given rectangle.
func (ih *InputHandler) ClickedInBounds(x, y, w, h int) bool {
	return ih.leftJustPressed && ih.IsInBounds(x, y, w, h)
}

// Shortcut returns the action whose key was pressed this frame, if any.
func (ih *InputHandler) Shortcut() Action {
	for _, s := range shortcuts {
		if inpututil.IsKeyJustPressed(s.key) {
			return s.action
		}
	}
	return ActionNone
}

// IsKeyJustPressed returns true if the specified key was just pressed.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
