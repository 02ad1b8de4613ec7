package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/othelloplay/internal/board"
	"github.com/hailam/othelloplay/internal/game"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{
		maxStack: 3,
	}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// toastColors returns the background and text colors for a toast type.
func toastColors(tt ToastType, alpha float64) (bg, fg color.RGBA) {
	fg = color.RGBA{255, 255, 255, uint8(255 * alpha)}
	switch tt {
	case ToastWarning:
		return color.RGBA{180, 140, 20, uint8(220 * alpha)}, color.RGBA{40, 30, 0, uint8(255 * alpha)}
	case ToastError:
		return color.RGBA{180, 50, 50, uint8(220 * alpha)}, fg
	case ToastSuccess:
		return color.RGBA{50, 150, 50, uint8(220 * alpha)}, fg
	default: // ToastInfo
		return color.RGBA{50, 100, 150, uint8(220 * alpha)}, fg
	}
}

// Draw renders all active toasts stacked over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	y := 50.0
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		// Fade in/out
		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = math.Max(0, (duration-elapsed)/fadeTime)
		}
		bg, fg := toastColors(t.Type, alpha)

		w, h := MeasureText(t.Message, face)
		padding := 12.0
		boxW := w + padding*2
		boxH := h + padding*2

		// Center horizontally on the board
		x := float64(BoardSize)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)
		drawText(screen, t.Message, face, x+padding, y+padding, fg)

		y += boxH + 8
	}
}

// ShakeAnimation represents a disc shake effect.
type ShakeAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Intensity float64
}

// FlashAnimation represents a square flash effect.
type FlashAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// AnimationManager manages visual animations.
type AnimationManager struct {
	shakes  []*ShakeAnimation
	flashes []*FlashAnimation
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// StartShake begins a shake animation on a square.
func (am *AnimationManager) StartShake(sq board.Square) {
	am.shakes = append(am.shakes, &ShakeAnimation{
		Square:    sq,
		StartTime: time.Now(),
		Duration:  300 * time.Millisecond,
		Intensity: 8.0,
	})
}

// StartFlash begins a flash animation on a square.
func (am *AnimationManager) StartFlash(sq board.Square, c color.RGBA) {
	am.flashes = append(am.flashes, &FlashAnimation{
		Square:    sq,
		StartTime: time.Now(),
		Duration:  400 * time.Millisecond,
		Color:     c,
	})
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	now := time.Now()

	activeShakes := am.shakes[:0]
	for _, s := range am.shakes {
		if now.Sub(s.StartTime) < s.Duration {
			activeShakes = append(activeShakes, s)
		}
	}
	am.shakes = activeShakes

	activeFlashes := am.flashes[:0]
	for _, f := range am.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			activeFlashes = append(activeFlashes, f)
		}
	}
	am.flashes = activeFlashes
}

// GetShakeOffset returns the current shake offset for a square.
func (am *AnimationManager) GetShakeOffset(sq board.Square) (float64, float64) {
	for _, s := range am.shakes {
		if s.Square != sq {
			continue
		}
		progress := time.Since(s.StartTime).Seconds() / s.Duration.Seconds()
		if progress >= 1.0 {
			return 0, 0
		}
		// Damped sine wave oscillation
		decay := 5.0
		freq := 40.0
		amplitude := s.Intensity * math.Exp(-decay*progress)
		return amplitude * math.Sin(freq*progress), 0
	}
	return 0, 0
}

// DrawFlashes renders all active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, renderer *Renderer) {
	for _, f := range am.flashes {
		progress := time.Since(f.StartTime).Seconds() / f.Duration.Seconds()
		if progress >= 1.0 {
			continue
		}

		// Fade out
		alpha := 1.0 - progress
		c := color.RGBA{f.Color.R, f.Color.G, f.Color.B, uint8(float64(f.Color.A) * alpha)}

		x, y := renderer.SquareToScreen(f.Square)
		size := float32(renderer.SquareSize())
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
	}
}

var (
	invalidFlash = color.RGBA{255, 80, 80, 150}
	flipFlash    = color.RGBA{250, 220, 90, 140}
)

// FeedbackManager coordinates all feedback systems. It receives match events
// as a game.Notifier and turns them into toasts, animations and sounds.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager

	// names resolves a player to the display name used in messages.
	names func(board.Player) string
}

var _ game.Notifier = (*FeedbackManager)(nil)

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager(names func(board.Player) string) *FeedbackManager {
	if names == nil {
		names = board.Player.String
	}
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      NewAudioManager(),
		names:      names,
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, renderer *Renderer) {
	fm.animations.DrawFlashes(screen, renderer)
	fm.toasts.Draw(screen)
}

// Animations returns the animation manager for renderer integration.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// Toasts returns the toast manager.
func (fm *FeedbackManager) Toasts() *ToastManager {
	return fm.toasts
}

// Audio returns the audio manager for settings access.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}

// OnMovePlayed flashes the discs a move turned over.
func (fm *FeedbackManager) OnMovePlayed(sq board.Square, flipped board.Bitboard) {
	flipped.ForEach(func(s board.Square) {
		fm.animations.StartFlash(s, flipFlash)
	})
	if flipped == 0 {
		fm.audio.Play(SoundPlace)
	}
}

// InvalidMove handles a rejected destination.
func (fm *FeedbackManager) InvalidMove(sq board.Square) {
	fm.toasts.Show(fmt.Sprintf("Can't play %s", sq), ToastWarning, 2*time.Second)
	fm.animations.StartShake(sq)
	if sq.IsValid() {
		fm.animations.StartFlash(sq, invalidFlash)
	}
	fm.audio.Play(SoundInvalid)
}

// Outflanked handles discs turned over by a move.
func (fm *FeedbackManager) Outflanked(p board.Player, n int) {
	noun := "discs"
	if n == 1 {
		noun = "disc"
	}
	fm.toasts.Show(fmt.Sprintf("%s outflanked %d %s", fm.names(p), n, noun), ToastInfo, 1500*time.Millisecond)
	fm.audio.Play(SoundFlip)
}

// GameTied handles a drawn game.
func (fm *FeedbackManager) GameTied() {
	fm.toasts.Show("Game tied", ToastInfo, 4*time.Second)
	fm.audio.Play(SoundGameEnd)
}

// GameWon handles a game win.
func (fm *FeedbackManager) GameWon(p board.Player) {
	fm.toasts.Show(fm.names(p)+" wins the game!", ToastSuccess, 4*time.Second)
	fm.audio.Play(SoundGameEnd)
}

// MatchWon handles a match win.
func (fm *FeedbackManager) MatchWon(p board.Player) {
	fm.toasts.Show(fm.names(p)+" wins the match!", ToastSuccess, 6*time.Second)
	fm.audio.Play(SoundMatchEnd)
}
