package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/othelloplay/internal/board"
)

func TestSearchBasic(t *testing.T) {
	b := board.NewBoard()
	eng := NewEngine()
	eng.SetDifficulty(Easy)

	var infos []SearchInfo
	eng.OnInfo = func(info SearchInfo) {
		infos = append(infos, info)
	}

	move, err := eng.Search(b, board.Player1)
	require.NoError(t, err)
	require.True(t, b.IsLegal(move), "move %s", move)

	require.Len(t, infos, 1)
	assert.Equal(t, 2, infos[0].Depth)
	assert.Equal(t, move, infos[0].Move)
	assert.Equal(t, eng.Nodes(), infos[0].Nodes)

	want, err := ChooseMove(b, board.Player1, 2)
	require.NoError(t, err)
	assert.Equal(t, want.Move, move)
}

func TestSearchClampsToEmptySquares(t *testing.T) {
	// One empty square left.
	last := board.NewSquare(5, 2)
	b := board.Board{Discs: [board.NumPlayers]board.Bitboard{board.Universe.Clear(last), 0}}

	eng := NewEngine()
	eng.SetDifficulty(Hard)
	var depth int
	eng.OnInfo = func(info SearchInfo) { depth = info.Depth }

	move, err := eng.Search(b, board.Player2)
	require.NoError(t, err)
	require.Equal(t, last, move)
	require.Equal(t, 1, depth)
}

func TestSearchFullBoard(t *testing.T) {
	b := board.Board{Discs: [board.NumPlayers]board.Bitboard{board.Universe, 0}}
	move, err := NewEngine().Search(b, board.Player1)
	require.ErrorIs(t, err, ErrNoLegalMoves)
	require.Equal(t, board.NoSquare, move)
}

func TestDifficultyDepths(t *testing.T) {
	eng := NewEngine()
	require.Equal(t, Medium, eng.Difficulty())

	tests := []struct {
		d    Difficulty
		want int
	}{
		{Easy, 2},
		{Medium, 3},
		{Hard, 4},
	}
	for _, tc := range tests {
		eng.SetDifficulty(tc.d)
		require.Equal(t, tc.want, eng.Depth(), "difficulty %s", tc.d)
	}

	eng.SetDifficulty(Easy)
	eng.SetDepth(Hard, 6)
	require.Equal(t, 2, eng.Depth(), "only the Hard budget changes")
	eng.SetDifficulty(Hard)
	require.Equal(t, 6, eng.Depth())
	require.Equal(t, 4, DifficultySettings[Hard].Depth, "overrides stay local to the engine")
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		got, ok := ParseDifficulty(d.String())
		require.True(t, ok)
		require.Equal(t, d, got)
	}
	_, ok := ParseDifficulty("impossible")
	require.False(t, ok)
}
