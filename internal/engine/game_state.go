package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// InCheckmate returns true if the side to move is in check with no legal move.
func (p *Position) InCheckmate() bool {
	return p.InCheck() && len(p.GenerateMoves(AllMoves)) == 0
}

// InStalemate returns true if the side to move is not in check and has no legal move.
func (p *Position) InStalemate() bool {
	return !p.InCheck() && len(p.GenerateMoves(AllMoves)) == 0
}

// Result returns the PGN result of a finished game, or "*" while play can
// continue.
func (p *Position) Result() string {
	switch {
	case p.InCheckmate():
		if p.turn == chess.Black {
			return "1-0"
		}
		return "0-1"
	case p.InDraw():
		return "1/2-1/2"
	}
	return "*"
}
