package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/othelloplay/internal/board"
	"github.com/hailam/othelloplay/internal/engine"
	"github.com/hailam/othelloplay/internal/storage"
)

// Panel dimensions
const (
	PanelPadding   = 20
	SectionSpacing = 16
	ButtonHeight   = 40
	TabHeight      = 30
	SectionLabelH  = 20
	PlayerCardH    = 52
	ComputerBtnH   = 56
	StatusBarH     = 64
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}    // Dark background
	sectionBg       = color.RGBA{48, 52, 58, 255}    // Slightly lighter section
	tabActiveBg     = color.RGBA{76, 132, 96, 255}   // Green for active tab
	tabInactiveBg   = color.RGBA{50, 54, 60, 255}    // Darker gray for inactive
	tabHoverBg      = color.RGBA{65, 70, 78, 255}    // Visible hover state
	buttonBg        = color.RGBA{50, 54, 60, 255}    // Button background (darker)
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}    // Button hover (brighter)
	buttonPressedBg = color.RGBA{40, 44, 50, 255}    // Button pressed (darker)
	buttonBorder    = color.RGBA{70, 75, 82, 255}    // Subtle button border
	accentColor     = color.RGBA{76, 175, 120, 255}  // Green accent
	accentHover     = color.RGBA{96, 195, 140, 255}  // Lighter green on hover
	accentPressed   = color.RGBA{56, 155, 100, 255}  // Darker green on press
	textPrimary     = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary   = color.RGBA{160, 165, 175, 255} // Secondary text
	textMuted       = color.RGBA{120, 125, 135, 255} // Muted text
	dividerColor    = color.RGBA{60, 65, 72, 255}    // Divider line
	statusThinking  = color.RGBA{100, 180, 255, 255} // Blue for thinking
	statusGameOver  = color.RGBA{255, 200, 80, 255}  // Yellow for game over
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	Icon       Sprite // drawn instead of the label when HasIcon is set
	HasIcon    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

func (b *Button) update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	b.hovered = inside(mx, my, b.X, b.Y, b.W, b.H)
	b.pressed = input.IsLeftPressed() && b.hovered
	if input.IsLeftJustPressed() && b.hovered && b.OnClick != nil {
		b.OnClick()
		return true
	}
	return false
}

// Panel is the side panel with match controls, the scoreboard and the status bar.
type Panel struct {
	game *Game

	newMatchBtn  *Button
	computerBtns [2]*Button // [0] = easy, [1] = hard
	modeTabs     *ButtonGroup
	diffTabs     *ButtonGroup
	sideBox      *Checkbox
	soundBox     *Checkbox

	cardsY int
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createWidgets()
	return p
}

// createWidgets lays the panel out top to bottom.
func (p *Panel) createWidgets() {
	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2
	y := PanelPadding

	p.newMatchBtn = &Button{
		X: contentX, Y: y, W: contentW, H: ButtonHeight,
		Label:   "New Match",
		OnClick: p.game.NewMatchAction,
	}
	y += ButtonHeight + SectionSpacing + SectionLabelH

	p.modeTabs = NewButtonGroup(contentX, y, []string{"Two Players", "vs Computer"},
		int(p.game.GameMode()), contentW/2, TabHeight,
		func(i int) { p.game.SetGameMode(storage.GameMode(i)) })
	y += TabHeight + SectionSpacing + SectionLabelH

	p.diffTabs = NewButtonGroup(contentX, y, []string{"Easy", "Medium", "Hard"},
		int(p.game.Difficulty()), contentW/3, TabHeight,
		func(i int) { p.game.SetDifficulty(engine.Difficulty(i)) })
	y += TabHeight + 8

	p.sideBox = NewCheckbox(contentX, y, "Computer plays "+board.Player1.String(),
		p.game.HumanSide() == board.Player2,
		func(checked bool) {
			side := board.Player1
			if checked {
				side = board.Player2
			}
			p.game.SetHumanSide(side)
		})
	y += 24 + SectionSpacing

	p.cardsY = y
	y += 2*PlayerCardH + SectionSpacing + SectionLabelH

	btnW := (contentW - 8) / 2
	computers := []struct {
		label string
		icon  Sprite
		d     engine.Difficulty
	}{
		{"Easy", SpriteComputer, engine.Easy},
		{"Hard", SpriteComputerHard, engine.Hard},
	}
	for i, c := range computers {
		d := c.d
		p.computerBtns[i] = &Button{
			X: contentX + i*(btnW+8), Y: y, W: btnW, H: ComputerBtnH,
			Label:   c.label,
			Icon:    c.icon,
			HasIcon: true,
			OnClick: func() { p.game.ComputerMoveAction(d) },
		}
	}
	y += ComputerBtnH + 10

	p.soundBox = NewCheckbox(contentX, y, "Sound", p.game.SoundEnabled(), p.game.SetSoundEnabled)
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	// Keep widget state in sync with keyboard shortcuts
	p.modeTabs.Selected = int(p.game.GameMode())
	p.diffTabs.Selected = int(p.game.Difficulty())
	p.soundBox.Checked = p.game.SoundEnabled()
	p.sideBox.Checked = p.game.HumanSide() == board.Player2

	handled := p.newMatchBtn.update(input)
	handled = p.modeTabs.Update(input) || handled
	if p.game.GameMode() == storage.ModeHumanVsComputer {
		handled = p.diffTabs.Update(input) || handled
		handled = p.sideBox.Update(input) || handled
	}
	for _, btn := range p.computerBtns {
		handled = btn.update(input) || handled
	}
	handled = p.soundBox.Update(input) || handled
	return handled
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	if p.newMatchBtn.hovered || p.modeTabs.IsHovered() || p.soundBox.IsHovered() {
		return true
	}
	if p.game.GameMode() == storage.ModeHumanVsComputer && (p.diffTabs.IsHovered() || p.sideBox.IsHovered()) {
		return true
	}
	for _, btn := range p.computerBtns {
		if btn.hovered {
			return true
		}
	}
	return false
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image, r *Renderer) {
	vector.DrawFilledRect(screen, BoardSize, 0, PanelWidth, ScreenHeight, panelBg, false)

	contentX := BoardSize + PanelPadding

	p.drawButton(screen, r, p.newMatchBtn, true)

	DrawSectionHeader(screen, "Game Mode", contentX, p.modeTabs.Y-SectionLabelH/2)
	p.modeTabs.Draw(screen)

	if p.game.GameMode() == storage.ModeHumanVsComputer {
		DrawSectionHeader(screen, "Difficulty", contentX, p.diffTabs.Y-SectionLabelH/2)
		p.diffTabs.Draw(screen)
		p.sideBox.Draw(screen)
	}

	p.drawPlayerCards(screen, r)

	DrawSectionHeader(screen, "Computer plays this turn", contentX, p.computerBtns[0].Y-SectionLabelH/2)
	for _, btn := range p.computerBtns {
		p.drawButton(screen, r, btn, false)
	}
	p.soundBox.Draw(screen)

	p.drawStatusBar(screen)
}

// drawPlayerCards draws one row per player: disc, name, points and games won.
func (p *Panel) drawPlayerCards(screen *ebiten.Image, r *Renderer) {
	match := p.game.Match()
	points := match.Points()
	score := match.Score()
	toMove := match.CurrentPlayer()

	x := BoardSize + PanelPadding
	w := PanelWidth - PanelPadding*2
	face := GetRegularFace()
	bold := GetBoldFace()

	for i, pl := range []board.Player{board.Player1, board.Player2} {
		y := p.cardsY + i*PlayerCardH

		bg := sectionBg
		if pl == toMove {
			bg = tabActiveBg
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), PlayerCardH-6, bg, false)

		r.Sprites().DrawAt(screen, discSprite(pl), float64(x+6), float64(y+5), 36, 1)

		name := p.game.PlayerName(pl)
		if len(name) > 14 {
			name = name[:14] + "..."
		}
		drawText(screen, name, bold, float64(x+50), float64(y+6), textPrimary)
		drawText(screen, fmt.Sprintf("%d discs", points[pl]), face, float64(x+50), float64(y+26), textSecondary)

		wins := fmt.Sprintf("%d", score[pl])
		ww, _ := MeasureText(wins, bold)
		drawText(screen, wins, bold, float64(x+w-10)-ww, float64(y+14), textPrimary)
	}

	target := fmt.Sprintf("First to %d wins - game %d", match.MatchTarget(), match.GamesPlayed()+1)
	DrawSectionHeader(screen, target, x, p.cardsY+2*PlayerCardH+4)
}

// drawButton draws a primary or secondary button, with its icon when set.
func (p *Panel) drawButton(screen *ebiten.Image, r *Renderer, btn *Button, primary bool) {
	bgColor, borderC := buttonBg, buttonBorder
	if primary {
		bgColor, borderC = accentColor, accentPressed
	}
	switch {
	case btn.pressed && primary:
		bgColor = accentPressed
	case btn.pressed:
		bgColor = buttonPressedBg
	case btn.hovered && primary:
		bgColor = accentHover
	case btn.hovered:
		bgColor = buttonHoverBg
		borderC = accentColor
	}

	disabled := !primary && p.game.IsAIThinking()
	if disabled {
		bgColor = buttonPressedBg
	}

	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bgColor, false)
	vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 1, borderC, false)

	cx := float64(btn.X) + float64(btn.W)/2
	if !btn.HasIcon {
		drawTextCentered(screen, btn.Label, GetRegularFace(), cx, float64(btn.Y)+float64(btn.H)/2, textPrimary)
		return
	}

	alpha := float32(1)
	if disabled {
		alpha = 0.4
	}
	const iconSize = 34
	r.Sprites().DrawAt(screen, btn.Icon, cx-iconSize-4, float64(btn.Y+(btn.H-iconSize)/2), iconSize, alpha)
	drawText(screen, btn.Label, GetRegularFace(), cx+2, float64(btn.Y+btn.H/2-8), textSecondary)
}

// drawStatusBar shows whose turn it is, the last result and lifetime statistics.
func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - StatusBarH
	x := BoardSize + PanelPadding
	DrawDivider(screen, x, statusY-8, PanelWidth-PanelPadding*2)

	face := GetRegularFace()

	var statusText string
	statusColor := textPrimary
	switch {
	case p.game.IsAIThinking():
		statusText = "Computer thinking..."
		statusColor = statusThinking
	case p.game.Status() != "" && p.game.Match().Board().Occupied().PopCount() == len(board.StartSeeds):
		statusText = p.game.Status()
		statusColor = statusGameOver
	default:
		statusText = p.game.PlayerName(p.game.Match().CurrentPlayer()) + " to move"
	}
	drawText(screen, statusText, face, float64(x), float64(statusY), statusColor)

	stats := p.game.Stats()
	line := fmt.Sprintf("Played %d  Ties %d", stats.GamesPlayed, stats.Ties)
	if nodes, took := p.game.LastSearch(); nodes > 0 {
		line += fmt.Sprintf("  Last %dn/%dms", nodes, took.Milliseconds())
	}
	drawText(screen, line, face, float64(x), float64(statusY+22), textMuted)
}
