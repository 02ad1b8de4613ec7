package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = a1 (row 0, col 0), bit 7 = h1, bit 56 = a8, bit 63 = h8.
type Bitboard uint64

// Column masks
const (
	ColA Bitboard = 0x0101010101010101
	ColH Bitboard = 0x8080808080808080
)

// Special masks
const (
	EmptyBB  Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	NotColA Bitboard = ^ColA
	NotColH Bitboard = ^ColH
)

// neighbours[sq] holds the up-to-eight squares adjacent to sq.
var neighbours [NumSquares]Bitboard

func init() {
	for sq := Square(0); sq < NoSquare; sq++ {
		bb := SquareBB(sq)
		attacks := bb.Up() | bb.Down()
		attacks |= bb.Left() | bb.Right()
		attacks |= bb.UpLeft() | bb.UpRight() | bb.DownLeft() | bb.DownRight()
		neighbours[sq] = attacks
	}
}

// Neighbours returns the squares adjacent to sq.
func Neighbours(sq Square) Bitboard {
	return neighbours[sq]
}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << sq)
}

// Clear clears a bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return sq.IsValid() && b&(1<<sq) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Shift operations. Rows grow downward, so Up moves toward row 0.

// Up shifts the bitboard one row toward row 0.
func (b Bitboard) Up() Bitboard {
	return b >> 8
}

// Down shifts the bitboard one row toward row 7.
func (b Bitboard) Down() Bitboard {
	return b << 8
}

// Right shifts the bitboard one column toward column h.
func (b Bitboard) Right() Bitboard {
	return (b << 1) & NotColA
}

// Left shifts the bitboard one column toward column a.
func (b Bitboard) Left() Bitboard {
	return (b >> 1) & NotColH
}

// UpLeft shifts the bitboard one square toward a1.
func (b Bitboard) UpLeft() Bitboard {
	return (b >> 9) & NotColH
}

// UpRight shifts the bitboard one square toward h1.
func (b Bitboard) UpRight() Bitboard {
	return (b >> 7) & NotColA
}

// DownLeft shifts the bitboard one square toward a8.
func (b Bitboard) DownLeft() Bitboard {
	return (b << 7) & NotColH
}

// DownRight shifts the bitboard one square toward h8.
func (b Bitboard) DownRight() Bitboard {
	return (b << 9) & NotColA
}

// Dilate returns every square adjacent to at least one set square.
// The set squares themselves are only included if they neighbour another set square.
func (b Bitboard) Dilate() Bitboard {
	return b.Up() | b.Down() | b.Left() | b.Right() |
		b.UpLeft() | b.UpRight() | b.DownLeft() | b.DownRight()
}

// String returns a visual representation of the bitboard, row 0 at the top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for row := 0; row < NumRows; row++ {
		sb.WriteByte(byte('1' + row))
		sb.WriteByte(' ')
		for col := 0; col < NumCols; col++ {
			if b.IsSet(NewSquare(row, col)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// ForEach calls the function for each set square in ascending order.
func (b Bitboard) ForEach(f func(Square)) {
	for b != 0 {
		f(b.PopLSB())
	}
}

// Squares returns a slice of all squares that are set, in ascending order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}
