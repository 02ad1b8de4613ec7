// Command othelloplay-arena plays bot-versus-bot matches and prints the tally.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hailam/othelloplay/internal/arena"
	"github.com/hailam/othelloplay/internal/config"
	"github.com/hailam/othelloplay/internal/game"
)

var (
	depth1   = flag.Int("depth1", 2, "search depth of the first bot; 0 plays random moves")
	depth2   = flag.Int("depth2", 4, "search depth of the second bot; 0 plays random moves")
	seed     = flag.Uint64("seed", 1, "seed for random bots")
	target   = flag.Int("target", game.DefaultMatchTarget, "game wins needed to take the match")
	maxGames = flag.Int("games", arena.DefaultMaxGames, "stop after this many games")
	verbose  = flag.Bool("v", false, "log every game event")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *verbose {
		cfg.Log.Level = "debug"
	}
	config.SetupLogger(os.Stderr, cfg)

	a := arena.New(agent("bot1", *depth1, *seed), agent("bot2", *depth2, *seed+1), *target, *maxGames)
	res, err := a.Play()
	if err != nil {
		log.Fatal().Err(err).Msg("arena stopped")
	}

	fmt.Printf("games: %d  time: %s\n", res.Games, res.Duration)
	for _, r := range res.Records {
		fmt.Printf("%-12s W %3d  L %3d  D %3d\n", r.Name, r.Wins, r.Loss, r.Draw)
	}
	if res.Winner.IsValid() {
		fmt.Printf("match winner: %s\n", res.Records[res.Winner].Name)
	} else {
		fmt.Println("no match winner")
	}
}

func agent(name string, depth int, seed uint64) arena.Agent {
	if depth <= 0 {
		return arena.NewRandomAgent(name+"-random", seed)
	}
	return arena.NewEngineAgent(fmt.Sprintf("%s-d%d", name, depth), depth)
}
