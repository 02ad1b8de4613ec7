package board

import (
	"strings"
)

// Board holds the discs of both players. It is a small value type: assigning or
// passing a Board copies the whole position, so every holder owns its snapshot.
type Board struct {
	// Discs: [Player]
	Discs [NumPlayers]Bitboard
}

// Seed describes one of the pieces placed before the first move.
type Seed struct {
	Square Square
	Player Player
}

// StartSeeds are the four centre pieces of every new game.
var StartSeeds = [4]Seed{
	{NewSquare(3, 3), Player1},
	{NewSquare(4, 4), Player1},
	{NewSquare(3, 4), Player2},
	{NewSquare(4, 3), Player2},
}

// NewBoard creates the starting position.
func NewBoard() Board {
	var b Board
	for _, s := range StartSeeds {
		b.Place(s.Square, s.Player)
	}
	return b
}

// Place puts a disc of player p on sq, replacing whatever was there.
// No captures are resolved; use ApplyMove for a game move.
func (b *Board) Place(sq Square, p Player) {
	bb := SquareBB(sq)
	b.Discs[p.Other()] &^= bb
	b.Discs[p] |= bb
}

// Remove empties sq.
func (b *Board) Remove(sq Square) {
	bb := SquareBB(sq)
	b.Discs[Player1] &^= bb
	b.Discs[Player2] &^= bb
}

// Occupied returns every square holding a disc.
func (b Board) Occupied() Bitboard {
	return b.Discs[Player1] | b.Discs[Player2]
}

// EmptySquares returns every square without a disc.
func (b Board) EmptySquares() Bitboard {
	return ^b.Occupied()
}

// Indicators returns the legal destinations: empty squares adjacent to any disc.
// This is derived from occupancy on every call and never stored.
func (b Board) Indicators() Bitboard {
	return b.EmptySquares() & b.Occupied().Dilate()
}

// IsLegal reports whether sq is a legal destination.
func (b Board) IsLegal(sq Square) bool {
	return sq.IsValid() && b.Indicators().IsSet(sq)
}

// LegalMoves returns the legal destinations in row-major order.
// Legality does not depend on the player to move.
func (b Board) LegalMoves() []Square {
	return b.Indicators().Squares()
}

// LegalMovesFor returns the legal destinations for a player. The adjacency rule
// makes them identical for both sides.
func (b Board) LegalMovesFor(Player) []Square {
	return b.LegalMoves()
}

// SlotAt returns the status of sq.
func (b Board) SlotAt(sq Square) Slot {
	bb := SquareBB(sq)
	switch {
	case b.Discs[Player1]&bb != 0:
		return SlotPlayer1
	case b.Discs[Player2]&bb != 0:
		return SlotPlayer2
	case b.Indicators()&bb != 0:
		return SlotIndicator
	default:
		return SlotEmpty
	}
}

// Count returns the number of discs owned by p.
func (b Board) Count(p Player) int {
	return b.Discs[p].PopCount()
}

// Empties returns the number of empty squares.
func (b Board) Empties() int {
	return NumSquares - b.Occupied().PopCount()
}

// IsTerminal returns true once every slot is occupied.
func (b Board) IsTerminal() bool {
	return b.Occupied() == Universe
}

// Outcome is the result of a finished game.
type Outcome struct {
	Winner Player // NoPlayer on a tie
	Tie    bool
}

// String returns a human-readable result.
func (o Outcome) String() string {
	if o.Tie {
		return "Tie"
	}
	return o.Winner.String() + " wins"
}

// Outcome compares disc counts: the higher count wins, equal counts tie.
func (b Board) Outcome() Outcome {
	c1, c2 := b.Count(Player1), b.Count(Player2)
	switch {
	case c1 > c2:
		return Outcome{Winner: Player1}
	case c2 > c1:
		return Outcome{Winner: Player2}
	default:
		return Outcome{Winner: NoPlayer, Tie: true}
	}
}

// String returns an ASCII diagram of the board, row 0 at the top.
// Discs are x and o, legal destinations are '*'.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < NumRows; row++ {
		sb.WriteByte(byte('1' + row))
		sb.WriteByte(' ')
		for col := 0; col < NumCols; col++ {
			switch b.SlotAt(NewSquare(row, col)) {
			case SlotPlayer1:
				sb.WriteByte(Player1.Symbol())
			case SlotPlayer2:
				sb.WriteByte(Player2.Symbol())
			case SlotIndicator:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
