package game

import (
	"github.com/rs/zerolog"

	"github.com/hailam/othelloplay/internal/board"
)

// Notifier receives the events of a live match. Calls are notifications only;
// the game never waits on or reads anything back from them.
type Notifier interface {
	InvalidMove(sq board.Square)
	Outflanked(p board.Player, n int)
	GameTied()
	GameWon(p board.Player)
	MatchWon(p board.Player)
}

// NopNotifier ignores every event.
type NopNotifier struct{}

func (NopNotifier) InvalidMove(board.Square)      {}
func (NopNotifier) Outflanked(board.Player, int) {}
func (NopNotifier) GameTied()                     {}
func (NopNotifier) GameWon(board.Player)          {}
func (NopNotifier) MatchWon(board.Player)         {}

// LogNotifier writes every event to a zerolog logger.
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) InvalidMove(sq board.Square) {
	n.Logger.Info().Str("square", sq.String()).Msg("invalid move")
}

func (n LogNotifier) Outflanked(p board.Player, count int) {
	n.Logger.Info().Str("player", p.String()).Int("pieces", count).Msg("outflanked")
}

func (n LogNotifier) GameTied() {
	n.Logger.Info().Msg("game tied")
}

func (n LogNotifier) GameWon(p board.Player) {
	n.Logger.Info().Str("player", p.String()).Msg("game won")
}

func (n LogNotifier) MatchWon(p board.Player) {
	n.Logger.Info().Str("player", p.String()).Msg("match won")
}

// multiNotifier fans every event out in order.
type multiNotifier []Notifier

// Notifiers returns a Notifier that forwards each event to all of ns in order.
// Nil entries are skipped.
func Notifiers(ns ...Notifier) Notifier {
	var m multiNotifier
	for _, n := range ns {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}

func (m multiNotifier) InvalidMove(sq board.Square) {
	for _, n := range m {
		n.InvalidMove(sq)
	}
}

func (m multiNotifier) Outflanked(p board.Player, count int) {
	for _, n := range m {
		n.Outflanked(p, count)
	}
}

func (m multiNotifier) GameTied() {
	for _, n := range m {
		n.GameTied()
	}
}

func (m multiNotifier) GameWon(p board.Player) {
	for _, n := range m {
		n.GameWon(p)
	}
}

func (m multiNotifier) MatchWon(p board.Player) {
	for _, n := range m {
		n.MatchWon(p)
	}
}
