// Package arena plays unattended matches between agents through the live
// game controller.
package arena

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/hailam/othelloplay/internal/board"
	"github.com/hailam/othelloplay/internal/game"
)

// DefaultMaxGames caps a match so that a run of ties cannot go on forever.
const DefaultMaxGames = 50

// Record is the tally of one agent.
type Record struct {
	Name string
	Wins int
	Loss int
	Draw int
}

// Result summarises a finished match.
type Result struct {
	Games    int
	Records  [board.NumPlayers]Record
	Winner   board.Player // NoPlayer when the game cap was hit first
	Duration time.Duration
}

// Arena seats one agent per player and runs a match between them.
// Arena fulfils game.Notifier to follow the match.
type Arena struct {
	agents   [board.NumPlayers]Agent
	game     *game.Game
	maxGames int

	records [board.NumPlayers]Record
	games   int
	winner  board.Player
	over    bool
}

// New creates an arena for a match to target wins. Agent a plays Player1.
func New(a, b Agent, target, maxGames int) *Arena {
	if maxGames < 1 {
		maxGames = DefaultMaxGames
	}
	ar := &Arena{
		agents:   [board.NumPlayers]Agent{a, b},
		maxGames: maxGames,
		winner:   board.NoPlayer,
	}
	ar.records[board.Player1].Name = a.Name()
	ar.records[board.Player2].Name = b.Name()
	ar.game = game.New(target, ar)
	return ar
}

// Play runs the match until a player takes it or the game cap is reached.
func (a *Arena) Play() (Result, error) {
	start := time.Now()

	for !a.over && a.games < a.maxGames {
		p := a.game.CurrentPlayer()
		agent := a.agents[p]

		move, err := agent.ChooseMove(a.game.Board(), p)
		if err != nil {
			return a.result(start), errors.Wrapf(err, "%s (%s) failed to move", agent.Name(), p)
		}
		if err := a.game.Play(move); err != nil {
			return a.result(start), errors.Wrapf(err, "%s (%s)", agent.Name(), p)
		}
	}

	res := a.result(start)
	log.Info().
		Int("games", res.Games).
		Str("winner", a.winnerName()).
		Dur("elapsed", res.Duration).
		Msg("match finished")
	return res, nil
}

func (a *Arena) result(start time.Time) Result {
	return Result{
		Games:    a.games,
		Records:  a.records,
		Winner:   a.winner,
		Duration: time.Since(start),
	}
}

func (a *Arena) winnerName() string {
	if a.winner == board.NoPlayer {
		return "none"
	}
	return a.agents[a.winner].Name()
}

func (a *Arena) InvalidMove(sq board.Square) {
	log.Warn().Str("square", sq.String()).Msg("agent chose an illegal move")
}

func (a *Arena) Outflanked(board.Player, int) {}

func (a *Arena) GameTied() {
	a.games++
	a.records[board.Player1].Draw++
	a.records[board.Player2].Draw++
	log.Debug().Int("game", a.games).Msg("tie")
}

func (a *Arena) GameWon(p board.Player) {
	a.games++
	a.records[p].Wins++
	a.records[p.Other()].Loss++
	log.Debug().Int("game", a.games).Str("winner", a.agents[p].Name()).Msg("game won")
}

func (a *Arena) MatchWon(p board.Player) {
	a.winner = p
	a.over = true
}
