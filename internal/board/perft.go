package board

// Perft counts the leaf nodes of the legal-move tree at the given depth.
// It is the standard way to verify move generation. A depth below 1 counts
// the root alone.
func Perft(b Board, toMove Player, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, sq := range moves {
		child, _, err := ApplyMove(b, toMove, sq)
		if err != nil {
			continue
		}
		nodes += Perft(child, toMove.Other(), depth-1)
	}
	return nodes
}
