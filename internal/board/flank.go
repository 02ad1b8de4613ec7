package board

import (
	"github.com/pkg/errors"
)

// ErrIllegalMove is returned when the destination is not currently a legal move.
var ErrIllegalMove = errors.New("illegal move")

// ScanCaptureRun walks from origin in direction dir collecting the maximal
// contiguous run of opponent discs. It returns the run length and true only if
// the run is non-empty and immediately followed, before the edge, by a disc of
// mover. The origin itself is never inspected.
func ScanCaptureRun(b Board, origin Square, dir Direction, mover Player) (int, bool) {
	run := captureRun(b, origin, dir, mover)
	if run == 0 {
		return 0, false
	}
	return run.PopCount(), true
}

// captureRun returns the squares ScanCaptureRun would flip, or 0.
func captureRun(b Board, origin Square, dir Direction, mover Player) Bitboard {
	opponent := b.Discs[mover.Other()]
	own := b.Discs[mover]

	var run Bitboard
	sq, ok := dir.Step(origin)
	for ok && opponent.IsSet(sq) {
		run = run.Set(sq)
		sq, ok = dir.Step(sq)
	}
	if !ok || !own.IsSet(sq) {
		return 0
	}
	return run
}

// Flips returns every opponent disc that a mover disc placed on sq would outflank.
// Directions are independent; their runs are disjoint rays from sq.
func (b Board) Flips(sq Square, mover Player) Bitboard {
	var flips Bitboard
	for _, dir := range Directions {
		flips |= captureRun(b, sq, dir, mover)
	}
	return flips
}

// ApplyMove places a disc of p on sq and flips every outflanked run.
// The input board is not modified; the new board and the number of flipped
// discs are returned. The mover gains flips+1 discs and the opponent loses flips.
func ApplyMove(b Board, p Player, sq Square) (Board, int, error) {
	if !b.IsLegal(sq) {
		return b, 0, errors.Wrapf(ErrIllegalMove, "%s cannot play %s", p, sq)
	}

	flips := b.Flips(sq, p)
	b.Discs[p] |= flips | SquareBB(sq)
	b.Discs[p.Other()] &^= flips

	return b, flips.PopCount(), nil
}
