package ui

import (
	"bytes"
	"embed"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/othelloplay/internal/board"
	"github.com/hailam/othelloplay/internal/config"
)

//go:embed assets/discs/*.svg
var discAssets embed.FS

// Sprite identifies one of the images drawn on the board or the panel.
type Sprite int

const (
	SpritePlayer1 Sprite = iota
	SpritePlayer2
	SpriteIndicator
	SpriteComputer
	SpriteComputerHard
	numSprites
)

// spriteFiles maps sprites to their built-in asset file paths.
var spriteFiles = [numSprites]string{
	SpritePlayer1:      "assets/discs/player1.svg",
	SpritePlayer2:      "assets/discs/player2.svg",
	SpriteIndicator:    "assets/discs/indicator.svg",
	SpriteComputer:     "assets/discs/computer.svg",
	SpriteComputerHard: "assets/discs/computer_hard.svg",
}

// SpriteManager manages disc and button sprites.
type SpriteManager struct {
	sprites     [numSprites]*ebiten.Image
	size        int     // Display size (e.g., 70)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager creates a sprite manager with sprites of the given size.
// Non-empty icon paths replace the built-in artwork; a file that cannot be
// loaded falls back to the built-in image.
func NewSpriteManager(size int, icons config.Icons) *SpriteManager {
	sm := &SpriteManager{
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	overrides := [numSprites]string{
		SpritePlayer1:      icons.Player1,
		SpritePlayer2:      icons.Player2,
		SpriteIndicator:    icons.Indicator,
		SpriteComputer:     icons.Computer,
		SpriteComputerHard: icons.ComputerHard,
	}
	sm.loadSprites(overrides)
	return sm
}

// Get returns the image for a sprite.
func (sm *SpriteManager) Get(s Sprite) *ebiten.Image {
	if s < 0 || s >= numSprites {
		return nil
	}
	return sm.sprites[s]
}

// loadSprites rasterizes every sprite, preferring the override files.
func (sm *SpriteManager) loadSprites(overrides [numSprites]string) {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for s := Sprite(0); s < numSprites; s++ {
		if path := overrides[s]; path != "" {
			img, err := loadSVGFile(path, renderSize)
			if err == nil {
				sm.sprites[s] = img
				continue
			}
			log.Warn().Err(err).Str("path", path).Msg("custom icon unusable, using built-in")
		}

		data, err := discAssets.ReadFile(spriteFiles[s])
		if err != nil {
			log.Error().Err(err).Str("path", spriteFiles[s]).Msg("failed to read sprite asset")
			continue
		}
		img, err := rasterizeSVG(data, renderSize)
		if err != nil {
			log.Error().Err(err).Str("path", spriteFiles[s]).Msg("failed to parse sprite asset")
			continue
		}
		sm.sprites[s] = img
	}
}

// loadSVGFile rasterizes an SVG file from disk.
func loadSVGFile(path string, size int) (*ebiten.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read icon %s", path)
	}
	return rasterizeSVG(data, size)
}

// rasterizeSVG renders SVG data into a square image with anti-aliasing.
func rasterizeSVG(data []byte, size int) (*ebiten.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return ebiten.NewImageFromImage(rgba), nil
}

// DrawAt draws a sprite scaled to dst pixels with its top-left at (x, y).
// alpha fades the sprite; 1 draws it opaque.
func (sm *SpriteManager) DrawAt(screen *ebiten.Image, s Sprite, x, y float64, dst int, alpha float32) {
	sprite := sm.Get(s)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := float64(dst) / float64(sprite.Bounds().Dx())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(alpha)
	// Use linear filtering for smooth scaling
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the display size of sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}

// discSprite returns the sprite for a player's disc.
func discSprite(p board.Player) Sprite {
	if p == board.Player2 {
		return SpritePlayer2
	}
	return SpritePlayer1
}
