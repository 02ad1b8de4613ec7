package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hailam/othelloplay/internal/board"
)

func TestCornerBlocksCarrySixWeights(t *testing.T) {
	for i, corner := range board.Corners {
		block := CornerBlock(i)
		require.Equal(t, 8, block.PopCount(), "corner %s", corner)
		require.False(t, block.IsSet(corner))

		nonZero := 0
		block.ForEach(func(sq board.Square) {
			if Weight(sq) != 0 {
				nonZero++
			}
		})
		require.Equal(t, 6, nonZero, "corner %s", corner)
		require.Equal(t, 15, Weight(corner))
	}
}

func TestCornerWeightZeroing(t *testing.T) {
	var b board.Board
	b.Place(board.A1, board.Player1)

	weights := PositionalWeights(b)
	for i := range board.Corners {
		CornerBlock(i).ForEach(func(sq board.Square) {
			if i == 0 {
				require.Zero(t, weights[sq], "square %s next to the taken corner", sq)
			} else {
				require.Equal(t, Weight(sq), weights[sq], "square %s next to a free corner", sq)
			}
		})
	}
	require.Equal(t, 15, weights[board.A1])

	// Zeroing is recomputed per call: a board without the corner sees the base table.
	fresh := PositionalWeights(board.NewBoard())
	require.Equal(t, -8, fresh[board.NewSquare(1, 1)])
}

func TestEvaluate(t *testing.T) {
	var b board.Board
	b.Place(board.A1, board.Player1)
	b.Place(board.NewSquare(1, 1), board.Player1) // zeroed by the a1 corner
	b.Place(board.NewSquare(1, 6), board.Player2) // -8, h1 still free
	b.Place(board.NewSquare(3, 3), board.Player2)

	require.Equal(t, 23, Evaluate(b, board.Player1))
	require.Equal(t, -23, Evaluate(b, board.Player2))

	start := board.NewBoard()
	require.Zero(t, Evaluate(start, board.Player1))
	require.Zero(t, Evaluate(start, board.Player2))
}
