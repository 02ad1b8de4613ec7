package engine

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/hailam/othelloplay/internal/board"
)

// fullWidth is an unpruned minimax over the same tree ChooseMove searches.
func fullWidth(b board.Board, depth int, maximizing bool, maximizer, toMove board.Player, nodes *uint64) int {
	*nodes++
	moves := b.LegalMoves()
	if depth == 0 || len(moves) == 0 {
		return Evaluate(b, maximizer)
	}

	best := Infinity
	if maximizing {
		best = -Infinity
	}
	for _, sq := range moves {
		child, _, err := board.ApplyMove(b, toMove, sq)
		if err != nil {
			panic(err)
		}
		v := fullWidth(child, depth-1, !maximizing, maximizer, toMove.Other(), nodes)
		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}

// referenceChoose mirrors the root loop of ChooseMove without pruning.
func referenceChoose(b board.Board, p board.Player, depth int) (board.Square, int, uint64) {
	var nodes uint64 = 1
	move, score := board.NoSquare, -Infinity
	for _, sq := range b.LegalMoves() {
		child, _, _ := board.ApplyMove(b, p, sq)
		v := fullWidth(child, depth-1, false, p, p.Other(), &nodes)
		if v > score {
			move, score = sq, v
		}
	}
	return move, score, nodes
}

// midgame plays n plies from the start with a fixed selection rule.
func midgame(t *testing.T, n int) (board.Board, board.Player) {
	t.Helper()
	b, p := board.NewBoard(), board.Player1
	for ply := 0; ply < n; ply++ {
		moves := b.LegalMoves()
		next, _, err := board.ApplyMove(b, p, moves[(ply*5+3)%len(moves)])
		require.NoError(t, err)
		b, p = next, p.Other()
	}
	return b, p
}

func TestChooseMoveMatchesFullWidthMinimax(t *testing.T) {
	positions := []struct {
		name  string
		plies int
	}{
		{"start", 0},
		{"early", 6},
		{"middle", 24},
		{"late", 54},
	}

	for _, pos := range positions {
		b, p := midgame(t, pos.plies)
		for depth := 1; depth <= 3; depth++ {
			d := ClampDepth(depth, b.Empties())
			res, err := ChooseMove(b, p, d)
			require.NoError(t, err)

			move, score, nodes := referenceChoose(b, p, d)
			require.Equal(t, score, res.Score, "%s depth %d", pos.name, d)
			require.Equal(t, move, res.Move, "%s depth %d", pos.name, d)
			require.LessOrEqual(t, res.Nodes, nodes, "%s depth %d", pos.name, d)
		}
	}
}

func TestChooseMoveIsDeterministic(t *testing.T) {
	b, p := midgame(t, 10)

	first, err := ChooseMove(b, p, 3)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ChooseMove(b, p, 3)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestStartPositionDepthOne(t *testing.T) {
	b := board.NewBoard()
	res, err := ChooseMove(b, board.Player1, 1)
	require.NoError(t, err)

	require.True(t, b.IsLegal(res.Move))

	best := -Infinity
	var first board.Square = board.NoSquare
	for _, sq := range b.LegalMoves() {
		child, _, err := board.ApplyMove(b, board.Player1, sq)
		require.NoError(t, err)
		if v := Evaluate(child, board.Player1); v > best {
			best, first = v, sq
		}
	}
	require.Equal(t, best, res.Score)
	require.Equal(t, first, res.Move, "ties keep the first move in row-major order")
	require.Equal(t, uint64(1+len(b.LegalMoves())), res.Nodes)
}

func TestChooseMoveNoLegalMoves(t *testing.T) {
	full := board.Board{Discs: [board.NumPlayers]board.Bitboard{board.Universe, 0}}

	for _, b := range []board.Board{{}, full} {
		res, err := ChooseMove(b, board.Player1, 2)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrNoLegalMoves))
		require.Equal(t, board.NoSquare, res.Move)
	}
}

func TestChooseMoveClampsLowDepth(t *testing.T) {
	b := board.NewBoard()
	one, err := ChooseMove(b, board.Player1, 1)
	require.NoError(t, err)

	for _, depth := range []int{0, -3} {
		res, err := ChooseMove(b, board.Player1, depth)
		require.NoError(t, err)
		require.Equal(t, one, res)
	}
}

func TestSearcherResetsNodes(t *testing.T) {
	var s Searcher
	b := board.NewBoard()

	first, err := s.ChooseMove(b, board.Player1, 2)
	require.NoError(t, err)
	second, err := s.ChooseMove(b, board.Player1, 2)
	require.NoError(t, err)

	require.Equal(t, first.Nodes, second.Nodes)
	require.Equal(t, second.Nodes, s.Nodes())
}

func TestClampDepth(t *testing.T) {
	tests := []struct {
		depth, empties, want int
	}{
		{4, 60, 4},
		{4, 3, 3},
		{2, 2, 2},
		{4, 0, 1},
		{0, 60, 1},
		{-2, 60, 1},
		{100, 64, MaxDepth},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, ClampDepth(tc.depth, tc.empties), "ClampDepth(%d, %d)", tc.depth, tc.empties)
	}
}
