package game

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/othelloplay/internal/board"
)

// recorder keeps every notification as a string.
type recorder struct {
	events []string
}

func (r *recorder) InvalidMove(sq board.Square) {
	r.events = append(r.events, "invalid "+sq.String())
}

func (r *recorder) Outflanked(p board.Player, n int) {
	r.events = append(r.events, fmt.Sprintf("outflanked %s %d", p, n))
}

func (r *recorder) GameTied() {
	r.events = append(r.events, "tied")
}

func (r *recorder) GameWon(p board.Player) {
	r.events = append(r.events, "won "+p.String())
}

func (r *recorder) MatchWon(p board.Player) {
	r.events = append(r.events, "match "+p.String())
}

// load puts g in the given position with p to move.
func load(g *Game, b board.Board, p board.Player) {
	g.board = b
	g.current = p
	g.indicators = b.Indicators()
	g.points = [board.NumPlayers]int{b.Count(board.Player1), b.Count(board.Player2)}
}

func requireFreshGame(t *testing.T, g *Game) {
	t.Helper()
	require.Equal(t, board.NewBoard(), g.Board())
	require.Equal(t, board.Player1, g.CurrentPlayer())
	require.Equal(t, [board.NumPlayers]int{2, 2}, g.Points())
	require.Equal(t, g.Board().Indicators(), g.Indicators())
}

func TestNewGame(t *testing.T) {
	g := New(3, nil)
	requireFreshGame(t, g)
	require.Equal(t, [board.NumPlayers]int{}, g.Score())
	require.Equal(t, 3, g.MatchTarget())
	require.Equal(t, 12, g.Indicators().PopCount())

	require.Equal(t, 1, New(0, nil).MatchTarget())
}

func TestPlayInvalidMove(t *testing.T) {
	rec := &recorder{}
	g := New(3, rec)

	for _, sq := range []board.Square{board.A1, board.NewSquare(3, 3), board.NoSquare} {
		err := g.Play(sq)
		require.Error(t, err)
		require.True(t, errors.Is(err, board.ErrIllegalMove))
	}

	require.Equal(t, []string{"invalid a1", "invalid d4", "invalid " + board.NoSquare.String()}, rec.events)
	requireFreshGame(t, g)
}

func TestPlayOutflank(t *testing.T) {
	rec := &recorder{}
	g := New(3, rec)

	// c5 (4,2) captures d5, bounded by e5.
	require.NoError(t, g.Play(board.NewSquare(4, 2)))
	require.Equal(t, []string{"outflanked Player 1 1"}, rec.events)
	require.Equal(t, [board.NumPlayers]int{4, 1}, g.Points())
	require.Equal(t, board.Player2, g.CurrentPlayer())
	require.Equal(t, g.Board().Indicators(), g.Indicators())

	// A move without captures sends no outflank event but still passes the turn.
	rec.events = nil
	require.NoError(t, g.Play(board.NewSquare(2, 2)))
	assert.Empty(t, rec.events)
	require.Equal(t, board.Player1, g.CurrentPlayer())
	require.Equal(t, [board.NumPlayers]int{4, 2}, g.Points())
}

func TestGameWonAndMatchWon(t *testing.T) {
	// Player2 holds a1, Player1 everything else except h8.
	var b board.Board
	b.Discs[board.Player1] = board.Universe.Clear(board.A1).Clear(board.H8)
	b.Discs[board.Player2] = board.SquareBB(board.A1)

	t.Run("game won", func(t *testing.T) {
		rec := &recorder{}
		g := New(2, rec)
		load(g, b, board.Player1)

		require.NoError(t, g.Play(board.H8))
		require.Equal(t, []string{"won Player 1"}, rec.events)
		require.Equal(t, [board.NumPlayers]int{1, 0}, g.Score())
		require.Equal(t, 1, g.GamesPlayed())
		requireFreshGame(t, g)
	})

	t.Run("match won", func(t *testing.T) {
		rec := &recorder{}
		g := New(2, rec)
		g.score[board.Player1] = 1
		load(g, b, board.Player1)

		require.NoError(t, g.Play(board.H8))
		require.Equal(t, []string{"won Player 1", "match Player 1"}, rec.events)
		require.Equal(t, [board.NumPlayers]int{}, g.Score(), "a won match restarts")
		require.Zero(t, g.GamesPlayed())
		requireFreshGame(t, g)
	})
}

func TestGameTied(t *testing.T) {
	// Player1 fills rows 0-3 except h4, Player2 fills rows 4-7.
	last := board.NewSquare(3, 7)
	var b board.Board
	b.Discs[board.Player1] = board.Bitboard(0x00000000FFFFFFFF).Clear(last)
	b.Discs[board.Player2] = board.Bitboard(0xFFFFFFFF00000000)

	rec := &recorder{}
	g := New(1, rec)
	load(g, b, board.Player1)

	require.NoError(t, g.Play(last))
	require.Equal(t, []string{"tied"}, rec.events)
	require.Equal(t, [board.NumPlayers]int{}, g.Score())
	requireFreshGame(t, g)
}

func TestFullGameThroughPlay(t *testing.T) {
	rec := &recorder{}
	g := New(5, rec)

	for ply := 0; ply < 60; ply++ {
		require.Equal(t, g.Board().Indicators(), g.Indicators(), "ply %d", ply)
		b := g.Board()
		require.Equal(t, b.Count(board.Player1), g.Points()[board.Player1])
		require.Equal(t, b.Count(board.Player2), g.Points()[board.Player2])

		moves := b.LegalMoves()
		require.NotEmpty(t, moves)
		require.NoError(t, g.Play(moves[(ply*11)%len(moves)]))
	}

	results := 0
	for _, e := range rec.events {
		if e == "tied" || e == "won Player 1" || e == "won Player 2" {
			results++
		}
	}
	require.Equal(t, 1, results)
	require.Equal(t, 1, g.GamesPlayed())
	requireFreshGame(t, g)
}

func TestNotifiersFanOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	n := Notifiers(a, nil, b, NopNotifier{})

	n.InvalidMove(board.A1)
	n.Outflanked(board.Player2, 3)
	n.GameTied()
	n.GameWon(board.Player1)
	n.MatchWon(board.Player1)

	want := []string{"invalid a1", "outflanked Player 2 3", "tied", "won Player 1", "match Player 1"}
	require.Equal(t, want, a.events)
	require.Equal(t, want, b.events)
}
