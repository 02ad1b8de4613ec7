package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// referenceFlips recomputes outflanked discs with plain row/column walking.
func referenceFlips(b Board, sq Square, mover Player) Bitboard {
	var flips Bitboard
	for _, d := range Directions {
		var run Bitboard
		row, col := sq.Row()+d.DRow, sq.Col()+d.DCol
		for InBounds(row, col) && b.SlotAt(NewSquare(row, col)) == OccupiedBy(mover.Other()) {
			run = run.Set(NewSquare(row, col))
			row += d.DRow
			col += d.DCol
		}
		if InBounds(row, col) && b.SlotAt(NewSquare(row, col)) == OccupiedBy(mover) {
			flips |= run
		}
	}
	return flips
}

func TestScanCaptureRun(t *testing.T) {
	right := Direction{0, 1}
	left := Direction{0, -1}

	t.Run("bounded run", func(t *testing.T) {
		b, _ := mustLayout(t, "8/8/8/1xoo4/8/8/8/8 x")
		n, ok := ScanCaptureRun(b, NewSquare(3, 4), left, Player1)
		require.True(t, ok)
		require.Equal(t, 2, n)
	})

	t.Run("run reaching the edge", func(t *testing.T) {
		b, _ := mustLayout(t, "8/8/8/5ooo/8/8/8/8 x")
		n, ok := ScanCaptureRun(b, NewSquare(3, 4), right, Player1)
		require.False(t, ok)
		require.Equal(t, 0, n)
	})

	t.Run("run followed by a gap", func(t *testing.T) {
		b, _ := mustLayout(t, "8/8/8/4o1x1/8/8/8/8 x")
		_, ok := ScanCaptureRun(b, NewSquare(3, 3), right, Player1)
		require.False(t, ok)
	})

	t.Run("adjacent own disc is not a capture", func(t *testing.T) {
		b, _ := mustLayout(t, "8/8/8/4x3/8/8/8/8 x")
		_, ok := ScanCaptureRun(b, NewSquare(3, 3), right, Player1)
		require.False(t, ok)
	})

	t.Run("corner origin scans outward only", func(t *testing.T) {
		b, _ := mustLayout(t, "1o6/o7/8/8/8/8/8/8 x")
		for _, d := range Directions {
			_, ok := ScanCaptureRun(b, A1, d, Player1)
			require.False(t, ok, "direction %+v", d)
		}
	})
}

func TestApplyMoveSingleRun(t *testing.T) {
	// P1 at b4, P2 at c4 d4, empty e4, P2 at f4.
	b, _ := mustLayout(t, "8/8/8/1xoo1o2/8/8/8/8 x")
	sq := NewSquare(3, 4)

	next, flips, err := ApplyMove(b, Player1, sq)
	require.NoError(t, err)
	require.Equal(t, 2, flips)
	require.Equal(t, SlotPlayer1, next.SlotAt(sq))
	require.Equal(t, SlotPlayer1, next.SlotAt(NewSquare(3, 2)))
	require.Equal(t, SlotPlayer1, next.SlotAt(NewSquare(3, 3)))
	require.Equal(t, SlotPlayer2, next.SlotAt(NewSquare(3, 5)), "disc beyond the move is not part of the run")

	// Input board is a value and stays untouched.
	require.Equal(t, SlotPlayer2, b.SlotAt(NewSquare(3, 3)))
}

func TestApplyMoveMultipleDirections(t *testing.T) {
	// Move at d4 (3,3) outflanks left, up and up-left simultaneously.
	b, _ := mustLayout(t, "x2x4/1o1o4/2oo4/xo6/8/8/8/8 x")
	next, flips, err := ApplyMove(b, Player1, NewSquare(3, 3))
	require.NoError(t, err)

	// up: (2,3),(1,3) bounded by (0,3); up-left: (2,2),(1,1) bounded by (0,0);
	// left: (3,2) is empty so no capture there.
	require.Equal(t, 4, flips)
	for _, sq := range []Square{NewSquare(2, 3), NewSquare(1, 3), NewSquare(2, 2), NewSquare(1, 1)} {
		require.Equal(t, SlotPlayer1, next.SlotAt(sq), "square %s", sq)
	}
	require.Equal(t, SlotPlayer2, next.SlotAt(NewSquare(3, 1)))
}

func TestCornerMoves(t *testing.T) {
	t.Run("no capture out of the grid", func(t *testing.T) {
		b, _ := mustLayout(t, "1o6/oo6/8/8/8/8/8/8 x")
		next, flips, err := ApplyMove(b, Player1, A1)
		require.NoError(t, err)
		require.Equal(t, 0, flips)
		require.Equal(t, 1, next.Count(Player1))
		require.Equal(t, 3, next.Count(Player2))
	})

	t.Run("capture along the edge", func(t *testing.T) {
		b, _ := mustLayout(t, "6ox/8/8/8/8/8/8/8 o")
		next, flips, err := ApplyMove(b, Player1, NewSquare(0, 5))
		require.NoError(t, err)
		require.Equal(t, 1, flips)
		require.Equal(t, SlotPlayer1, next.SlotAt(NewSquare(0, 6)))
	})

	t.Run("every corner", func(t *testing.T) {
		for _, corner := range Corners {
			var b Board
			for _, n := range Neighbours(corner).Squares() {
				b.Place(n, Player2)
			}
			next, flips, err := ApplyMove(b, Player1, corner)
			require.NoError(t, err)
			require.Equal(t, 0, flips, "corner %s", corner)
			require.Equal(t, SlotPlayer1, next.SlotAt(corner))
		}
	})
}

// TestPlayoutInvariants plays complete games with a fixed move-selection rule and
// checks every move against the reference capture rule and the count invariants.
func TestPlayoutInvariants(t *testing.T) {
	for seed := 0; seed < 8; seed++ {
		b := NewBoard()
		p := Player1
		ply := 0

		for !b.IsTerminal() {
			moves := b.LegalMoves()
			require.NotEmpty(t, moves, "non-full board with discs must have a legal move")
			sq := moves[(seed*7+ply*13)%len(moves)]

			want := referenceFlips(b, sq, p)
			require.Equal(t, want, b.Flips(sq, p))

			next, flips, err := ApplyMove(b, p, sq)
			require.NoError(t, err)
			require.Equal(t, want.PopCount(), flips)

			require.Equal(t, b.Count(p)+flips+1, next.Count(p))
			require.Equal(t, b.Count(p.Other())-flips, next.Count(p.Other()))
			require.Equal(t, b.Occupied().PopCount()+1, next.Occupied().PopCount())
			require.Zero(t, next.Discs[Player1]&next.Discs[Player2])

			b = next
			p = p.Other()
			ply++
		}

		require.Equal(t, 60, ply)
		require.Empty(t, b.LegalMoves())
	}
}
