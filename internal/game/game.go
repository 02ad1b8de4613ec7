// Package game runs a live match: it owns the board, validates and applies
// moves, tracks points and match score, and reports events to a Notifier.
package game

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/hailam/othelloplay/internal/board"
)

// DefaultMatchTarget is the number of game wins that takes a match.
const DefaultMatchTarget = 3

// Game is the live match state. It is not safe for concurrent use; the owner
// serialises calls to Play.
type Game struct {
	board       board.Board
	current     board.Player
	points      [board.NumPlayers]int // discs on the board
	score       [board.NumPlayers]int // games won in this match
	matchTarget int
	games       int

	// indicators is kept up to date move by move and always equals
	// board.Indicators().
	indicators board.Bitboard

	notifier Notifier
}

// New starts a match that ends when a player wins matchTarget games.
// A target below 1 is raised to 1. A nil notifier discards events.
func New(matchTarget int, notifier Notifier) *Game {
	if matchTarget < 1 {
		matchTarget = 1
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	g := &Game{
		matchTarget: matchTarget,
		notifier:    notifier,
	}
	g.NewMatch()
	return g
}

// SetNotifier replaces the event receiver.
func (g *Game) SetNotifier(n Notifier) {
	if n == nil {
		n = NopNotifier{}
	}
	g.notifier = n
}

// NewMatch zeroes the match score and starts a new game.
func (g *Game) NewMatch() {
	g.score = [board.NumPlayers]int{}
	g.games = 0
	g.newGame()
}

// newGame resets the board, the points and the turn. Player1 moves first.
func (g *Game) newGame() {
	g.board = board.Board{}
	g.indicators = 0
	g.current = board.Player1
	g.points = [board.NumPlayers]int{}

	for _, s := range board.StartSeeds {
		g.board.Place(s.Square, s.Player)
		g.points[s.Player]++
		g.updateIndicators(s.Square)
	}

	log.Debug().Int("game", g.games+1).Msg("new game")
}

// updateIndicators marks the empty neighbours of a freshly placed disc and
// clears the disc's own square.
func (g *Game) updateIndicators(sq board.Square) {
	g.indicators = g.indicators.Clear(sq) | (board.Neighbours(sq) & g.board.EmptySquares())
}

// Play makes a move for the current player. An illegal destination is reported
// to the notifier and returned as board.ErrIllegalMove; nothing changes.
func (g *Game) Play(sq board.Square) error {
	if !sq.IsValid() || !g.indicators.IsSet(sq) {
		g.notifier.InvalidMove(sq)
		return errors.Wrapf(board.ErrIllegalMove, "%s cannot play %s", g.current, sq)
	}

	next, flips, err := board.ApplyMove(g.board, g.current, sq)
	if err != nil {
		g.notifier.InvalidMove(sq)
		return err
	}

	mover := g.current
	g.board = next
	g.updateIndicators(sq)
	if flips > 0 {
		g.notifier.Outflanked(mover, flips)
	}
	g.points[mover] += flips + 1
	g.points[mover.Other()] -= flips

	log.Debug().
		Str("player", mover.String()).
		Str("square", sq.String()).
		Int("flips", flips).
		Msg("move played")

	g.current = mover.Other()
	g.checkTermination()
	return nil
}

// checkTermination settles a full board: it scores the game, ends the match
// when the target is reached and starts the next game.
func (g *Game) checkTermination() {
	if g.points[board.Player1]+g.points[board.Player2] < board.NumSquares {
		return
	}

	outcome := g.board.Outcome()
	g.games++
	log.Debug().Str("outcome", outcome.String()).Int("game", g.games).Msg("game over")

	if outcome.Tie {
		g.notifier.GameTied()
		g.newGame()
		return
	}

	w := outcome.Winner
	g.score[w]++
	g.notifier.GameWon(w)

	if g.score[w] == g.matchTarget {
		g.notifier.MatchWon(w)
		log.Debug().Str("winner", w.String()).Int("games", g.games).Msg("match over")
		g.NewMatch()
		return
	}

	g.newGame()
}

// Board returns a copy of the current board.
func (g *Game) Board() board.Board {
	return g.board
}

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() board.Player {
	return g.current
}

// Points returns the disc count of each player in the current game.
func (g *Game) Points() [board.NumPlayers]int {
	return g.points
}

// Score returns the games won by each player in the current match.
func (g *Game) Score() [board.NumPlayers]int {
	return g.score
}

// Indicators returns the current legal destinations.
func (g *Game) Indicators() board.Bitboard {
	return g.indicators
}

// MatchTarget returns the number of game wins that takes the match.
func (g *Game) MatchTarget() int {
	return g.matchTarget
}

// GamesPlayed returns the number of games finished in the current match.
func (g *Game) GamesPlayed() int {
	return g.games
}
