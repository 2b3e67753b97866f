package engine

// Perft counts the leaf nodes of the legal move tree to the given depth.
// It generates pseudo-legal moves without memoisation and skips those
// leaving the mover in check.
func (p *Position) Perft(depth int) int64 {
	if depth <= 0 {
		return 1
	}

	us := p.turn
	var nodes int64
	for _, m := range p.generateMoves(PseudoLegalMoves) {
		p.makeMove(m)
		if !p.kingAttacked(us) {
			if depth-1 > 0 {
				nodes += p.Perft(depth - 1)
			} else {
				nodes++
			}
		}
		p.undoMove()
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by SAN.
func (p *Position) Divide(depth int) map[string]int64 {
	counts := make(map[string]int64)
	if depth <= 0 {
		return counts
	}
	for _, m := range p.Moves() {
		san := m.SAN
		p.makeMove(m)
		counts[san] = p.Perft(depth - 1)
		p.undoMove()
	}
	return counts
}
