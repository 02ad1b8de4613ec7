package arena

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/hailam/othelloplay/internal/board"
)

func checkTally(t *testing.T, res Result, target int) {
	t.Helper()
	p1, p2 := res.Records[board.Player1], res.Records[board.Player2]
	require.Equal(t, res.Games, p1.Wins+p2.Wins+p1.Draw)
	require.Equal(t, p1.Draw, p2.Draw)
	require.Equal(t, p1.Wins, p2.Loss)
	require.Equal(t, p2.Wins, p1.Loss)
	if res.Winner != board.NoPlayer {
		require.Equal(t, target, res.Records[res.Winner].Wins)
	}
}

func TestRandomMatch(t *testing.T) {
	ar := New(NewRandomAgent("alice", 1), NewRandomAgent("bob", 2), 2, 20)
	res, err := ar.Play()
	require.NoError(t, err)
	require.Equal(t, "alice", res.Records[board.Player1].Name)
	require.Equal(t, "bob", res.Records[board.Player2].Name)
	require.LessOrEqual(t, res.Games, 20)
	checkTally(t, res, 2)
}

func TestSeededMatchesRepeat(t *testing.T) {
	play := func() Result {
		res, err := New(NewRandomAgent("a", 7), NewRandomAgent("b", 8), 3, 10).Play()
		require.NoError(t, err)
		res.Duration = 0
		return res
	}
	require.Equal(t, play(), play())
}

func TestEngineAgainstRandom(t *testing.T) {
	ar := New(NewEngineAgent("engine", 1), NewRandomAgent("random", 3), 1, 5)
	res, err := ar.Play()
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Games, 1)
	checkTally(t, res, 1)
}

func TestGameCap(t *testing.T) {
	res, err := New(NewRandomAgent("a", 1), NewRandomAgent("b", 1), 5, 1).Play()
	require.NoError(t, err)
	require.Equal(t, 1, res.Games)
	require.Equal(t, board.NoPlayer, res.Winner)
}

// cornerAgent always tries a1, which is never legal from the start.
type cornerAgent struct{}

func (cornerAgent) Name() string { return "corner" }

func (cornerAgent) ChooseMove(board.Board, board.Player) (board.Square, error) {
	return board.A1, nil
}

func TestIllegalAgentMoveStopsMatch(t *testing.T) {
	_, err := New(cornerAgent{}, NewRandomAgent("b", 1), 1, 1).Play()
	require.Error(t, err)
	require.True(t, errors.Is(err, board.ErrIllegalMove))
}
