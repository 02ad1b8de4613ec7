// Package board implements the 8x8 capture-board representation, move legality
// and outflank resolution using bitboards.
package board

import (
	"fmt"

	"github.com/pkg/errors"
)

// Board dimensions.
const (
	NumRows    = 8
	NumCols    = 8
	NumSquares = NumRows * NumCols
)

// Square represents a slot on the board (0-63).
// Uses row-major mapping: a1 (row 0, col 0) = 0, h1 = 7, a8 (row 7, col 0) = 56, h8 = 63.
// Ascending square order is therefore the row-major scan order used for move enumeration.
type Square uint8

// Corner squares.
const (
	A1 Square = 0
	H1 Square = 7
	A8 Square = 56
	H8 Square = 63

	NoSquare Square = 64
)

// Corners lists the four corner squares in scan order.
var Corners = [4]Square{A1, H1, A8, H8}

// NewSquare creates a square from row and column (0-indexed).
func NewSquare(row, col int) Square {
	return Square(row*NumCols + col)
}

// Row returns the row of the square (0-7).
func (sq Square) Row() int {
	return int(sq) >> 3
}

// Col returns the column of the square (0-7).
func (sq Square) Col() int {
	return int(sq) & 7
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the notation for the square: column letter then 1-based row (e.g. "e4" is row 3, col 4).
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col(), '1'+sq.Row())
}

// ParseSquare parses square notation (e.g. "d3") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.Errorf("invalid square: %q", s)
	}

	col := int(s[0] - 'a')
	row := int(s[1] - '1')

	if col < 0 || col >= NumCols || row < 0 || row >= NumRows {
		return NoSquare, errors.Errorf("invalid square: %q", s)
	}

	return NewSquare(row, col), nil
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < NumRows && col >= 0 && col < NumCols
}

// Direction is a unit step on the grid.
type Direction struct {
	DRow int
	DCol int
}

// Directions holds the eight compass directions.
var Directions = [8]Direction{
	{0, 1},   // right
	{0, -1},  // left
	{1, 0},   // down
	{-1, 0},  // up
	{-1, -1}, // up-left
	{-1, 1},  // up-right
	{1, -1},  // down-left
	{1, 1},   // down-right
}

// Step returns the square one step from sq in direction d, and false if that leaves the board.
func (d Direction) Step(sq Square) (Square, bool) {
	row, col := sq.Row()+d.DRow, sq.Col()+d.DCol
	if !InBounds(row, col) {
		return NoSquare, false
	}
	return NewSquare(row, col), true
}
