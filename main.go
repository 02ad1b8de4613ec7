// OthelloPlay - an adjacency-rule Othello game built with Ebitengine
package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/hailam/othelloplay/internal/config"
	"github.com/hailam/othelloplay/internal/storage"
	"github.com/hailam/othelloplay/internal/ui"
)

func main() {
	cfg := loadConfig()
	config.SetupLogger(os.Stderr, cfg)

	game := ui.NewGame(cfg)
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("OthelloPlay")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// loadConfig reads the config file next to the database, or the file named by
// OTHELLOPLAY_CONFIG. Problems are logged and the defaults are used.
func loadConfig() config.Config {
	path := os.Getenv("OTHELLOPLAY_CONFIG")
	if path == "" {
		var err error
		path, err = storage.GetConfigPath()
		if err != nil {
			log.Warn().Err(err).Msg("no config directory, using defaults")
			return config.Default()
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Warn().Err(err).Msg("config ignored, using defaults")
	}
	return cfg
}
