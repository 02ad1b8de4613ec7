package board

import (
	"strings"

	"github.com/pkg/errors"
)

// StartLayout is the layout string for the starting position with Player1 to move.
const StartLayout = "8/8/8/3xo3/3ox3/8/8/8 x"

// ParseLayout parses a layout string and returns the board and the player to move.
//
// The first field lists the rows from row 0 to row 7 separated by '/'. Within a
// row, 'x' is a Player1 disc, 'o' a Player2 disc and a digit 1-8 a run of empty
// squares. The optional second field names the player to move ("x" or "o"),
// defaulting to Player1.
func ParseLayout(layout string) (Board, Player, error) {
	var b Board

	parts := strings.Fields(layout)
	if len(parts) == 0 || len(parts) > 2 {
		return b, NoPlayer, errors.Errorf("invalid layout: need 1 or 2 fields, got %d", len(parts))
	}

	if err := parsePlacement(&b, parts[0]); err != nil {
		return Board{}, NoPlayer, err
	}

	toMove := Player1
	if len(parts) == 2 {
		switch parts[1] {
		case "x":
			toMove = Player1
		case "o":
			toMove = Player2
		default:
			return Board{}, NoPlayer, errors.Errorf("invalid side to move: %q", parts[1])
		}
	}

	return b, toMove, nil
}

// parsePlacement parses the disc placement field.
func parsePlacement(b *Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != NumRows {
		return errors.Errorf("invalid layout: need %d rows, got %d", NumRows, len(rows))
	}

	for row, text := range rows {
		col := 0
		for _, c := range text {
			if col >= NumCols {
				return errors.Errorf("invalid layout: row %d too long", row+1)
			}
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case c == 'x':
				b.Place(NewSquare(row, col), Player1)
				col++
			case c == 'o':
				b.Place(NewSquare(row, col), Player2)
				col++
			default:
				return errors.Errorf("invalid layout character %q in row %d", c, row+1)
			}
		}
		if col != NumCols {
			return errors.Errorf("invalid layout: row %d has %d columns", row+1, col)
		}
	}

	return nil
}

// Layout returns the layout string for the board with p to move.
func (b Board) Layout(toMove Player) string {
	var sb strings.Builder

	for row := 0; row < NumRows; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < NumCols; col++ {
			slot := b.SlotAt(NewSquare(row, col))
			p, ok := slot.Player()
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	sb.WriteByte(' ')
	sb.WriteByte(toMove.Symbol())
	return sb.String()
}
