package engine

import (
	"github.com/pkg/errors"

	"github.com/hailam/othelloplay/internal/board"
)

// Search constants
const (
	Infinity = 1 << 20
	MaxDepth = board.NumSquares
)

// ErrNoLegalMoves is returned when the root position has no candidate move.
var ErrNoLegalMoves = errors.New("no legal moves")

// Result is the outcome of one top-level search.
type Result struct {
	Move  board.Square
	Score int
	Nodes uint64
}

// Searcher performs the alpha-beta search. The zero value is ready to use;
// its node counter is reset at the start of every call.
type Searcher struct {
	nodes uint64
}

// Nodes returns the number of nodes visited by the last search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// ChooseMove returns the move that maximizes player's outcome under depth plies
// of lookahead. Among equal scores the first move in row-major order wins.
// A depth below 1 searches one ply.
func ChooseMove(b board.Board, player board.Player, depth int) (Result, error) {
	var s Searcher
	return s.ChooseMove(b, player, depth)
}

// ChooseMove is the method form of the package-level ChooseMove.
func (s *Searcher) ChooseMove(b board.Board, player board.Player, depth int) (Result, error) {
	s.nodes = 0

	moves := b.LegalMovesFor(player)
	if len(moves) == 0 {
		return Result{Move: board.NoSquare}, errors.Wrapf(ErrNoLegalMoves, "%s to move", player)
	}
	if depth < 1 {
		depth = 1
	}

	s.nodes++
	best := Result{Move: board.NoSquare, Score: -Infinity}
	for _, sq := range moves {
		child, _, err := board.ApplyMove(b, player, sq)
		if err != nil {
			return Result{Move: board.NoSquare}, err
		}

		// Each root child gets a full window.
		score := s.minimax(child, depth-1, -Infinity, Infinity, false, player, player.Other())
		if score > best.Score {
			best.Move = sq
			best.Score = score
		}
	}

	best.Nodes = s.nodes
	return best, nil
}

// minimax searches b with toMove to play. maximizing tells whether toMove is the
// maximizer, whose point of view every score is given from.
func (s *Searcher) minimax(b board.Board, depth, alpha, beta int, maximizing bool, maximizer, toMove board.Player) int {
	s.nodes++

	if depth == 0 {
		return Evaluate(b, maximizer)
	}

	moves := b.LegalMovesFor(toMove)
	if len(moves) == 0 {
		return Evaluate(b, maximizer)
	}

	if maximizing {
		value := -Infinity
		for _, sq := range moves {
			child, _, err := board.ApplyMove(b, toMove, sq)
			if err != nil {
				continue
			}
			value = max(value, s.minimax(child, depth-1, alpha, beta, false, maximizer, toMove.Other()))
			alpha = max(alpha, value)
			if beta <= alpha {
				break
			}
		}
		return value
	}

	value := Infinity
	for _, sq := range moves {
		child, _, err := board.ApplyMove(b, toMove, sq)
		if err != nil {
			continue
		}
		value = min(value, s.minimax(child, depth-1, alpha, beta, true, maximizer, toMove.Other()))
		beta = min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value
}

// ClampDepth limits a ply budget to the number of empty squares left. The
// result is never below one ply.
func ClampDepth(depth, empties int) int {
	if depth > empties {
		depth = empties
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}
	if depth < 1 {
		depth = 1
	}
	return depth
}
