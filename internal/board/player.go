package board

// Player identifies one of the two sides.
type Player uint8

const (
	Player1 Player = iota
	Player2
	NoPlayer Player = 2
)

// NumPlayers is the number of sides; the data model is fixed to two.
const NumPlayers = 2

// Other returns the opposing player.
func (p Player) Other() Player {
	return p ^ 1
}

// IsValid returns true for Player1 and Player2.
func (p Player) IsValid() bool {
	return p < NoPlayer
}

// String returns the player name.
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "NoPlayer"
	}
}

// Symbol returns the layout character for the player.
func (p Player) Symbol() byte {
	switch p {
	case Player1:
		return 'x'
	case Player2:
		return 'o'
	default:
		return '?'
	}
}

// Slot is the observable status of one square.
type Slot uint8

const (
	SlotEmpty     Slot = iota
	SlotIndicator      // empty and adjacent to a disc: a legal destination
	SlotPlayer1
	SlotPlayer2
)

// OccupiedBy returns the slot value for a disc of player p.
func OccupiedBy(p Player) Slot {
	if p == Player2 {
		return SlotPlayer2
	}
	return SlotPlayer1
}

// Player returns the owner of an occupied slot.
func (s Slot) Player() (Player, bool) {
	switch s {
	case SlotPlayer1:
		return Player1, true
	case SlotPlayer2:
		return Player2, true
	default:
		return NoPlayer, false
	}
}

// IsOccupied returns true if a disc sits in the slot.
func (s Slot) IsOccupied() bool {
	return s == SlotPlayer1 || s == SlotPlayer2
}

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotEmpty:
		return "Empty"
	case SlotIndicator:
		return "Indicator"
	case SlotPlayer1:
		return "Player 1"
	case SlotPlayer2:
		return "Player 2"
	default:
		return "Unknown"
	}
}
