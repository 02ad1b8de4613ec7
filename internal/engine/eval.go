// Package engine implements the game-tree search bot.
package engine

import (
	"github.com/hailam/othelloplay/internal/board"
)

// positionalWeights rewards corners and edges and penalises the squares that
// hand a corner to the opponent. Row 0 is the first row, indexed by board.Square.
var positionalWeights = [board.NumSquares]int{
	15, -4, 3, 2, 2, 3, -4, 15,
	-4, -8, 0, 0, 0, 0, -8, -4,
	3, 0, 1, 0, 0, 1, 0, 3,
	2, 0, 0, 0, 0, 0, 0, 2,
	2, 0, 0, 0, 0, 0, 0, 2,
	3, 0, 1, 0, 0, 1, 0, 3,
	-4, -8, 0, 0, 0, 0, -8, -4,
	15, -4, 3, 2, 2, 3, -4, 15,
}

// cornerBlocks[i] is the 3x3 block around Corners[i], corner excluded.
var cornerBlocks [len(board.Corners)]board.Bitboard

func init() {
	for i, corner := range board.Corners {
		var block board.Bitboard
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				row, col := corner.Row()+dr, corner.Col()+dc
				if (dr == 0 && dc == 0) || !board.InBounds(row, col) {
					continue
				}
				block = block.Set(board.NewSquare(row, col))
			}
		}
		cornerBlocks[i] = block
	}
}

// CornerBlock returns the squares whose weight is dropped once corner i of board.Corners is taken.
func CornerBlock(i int) board.Bitboard {
	return cornerBlocks[i]
}

// Weight returns the base positional weight of sq.
func Weight(sq board.Square) int {
	return positionalWeights[sq]
}

// PositionalWeights returns the weight table in effect for b: the base table
// with the block around every occupied corner zeroed. It is recomputed from b on
// every call.
func PositionalWeights(b board.Board) [board.NumSquares]int {
	weights := positionalWeights
	occupied := b.Occupied()
	for i, corner := range board.Corners {
		if !occupied.IsSet(corner) {
			continue
		}
		cornerBlocks[i].ForEach(func(sq board.Square) {
			weights[sq] = 0
		})
	}
	return weights
}

// Evaluate returns the static evaluation of b from the maximizer's point of view:
// disc-count difference plus positional-weight difference.
func Evaluate(b board.Board, maximizer board.Player) int {
	minimizer := maximizer.Other()
	weights := PositionalWeights(b)

	score := b.Count(maximizer) - b.Count(minimizer)
	b.Discs[maximizer].ForEach(func(sq board.Square) {
		score += weights[sq]
	})
	b.Discs[minimizer].ForEach(func(sq board.Square) {
		score -= weights[sq]
	})
	return score
}
