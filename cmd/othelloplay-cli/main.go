// Command othelloplay-cli speaks the text protocol on stdin and stdout.
package main

import (
	"flag"
	"os"
	"runtime/pprof"

	"github.com/rs/zerolog/log"

	"github.com/hailam/othelloplay/internal/config"
	"github.com/hailam/othelloplay/internal/engine"
	"github.com/hailam/othelloplay/internal/protocol"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	configPath = flag.String("config", "", "YAML config file (search depths, log level)")
	verbose    = flag.Bool("v", false, "log search details to stderr")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	var cfgErr error
	if *configPath != "" {
		cfg, cfgErr = config.Load(*configPath)
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	config.SetupLogger(os.Stderr, cfg)
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("config ignored, using defaults")
	}

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
		log.Info().Str("path", profilePath).Msg("CPU profiling enabled")
	}

	eng := engine.NewEngine()
	eng.SetDepth(engine.Easy, cfg.Bot.EasyDepth)
	eng.SetDepth(engine.Medium, cfg.Bot.MediumDepth)
	eng.SetDepth(engine.Hard, cfg.Bot.HardDepth)

	if err := protocol.New(eng, os.Stdout).Run(os.Stdin); err != nil {
		log.Error().Err(err).Msg("protocol stopped")
	}
}
