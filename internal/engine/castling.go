package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// generateCastlingMoves adds the castling moves allowed by the current
// rights. The squares between king and rook must be empty, and the king's
// square, the square it crosses and its destination must not be attacked.
// A failed condition skips the move without touching the rights.
func (p *Position) generateCastlingMoves(moves []*chess.Move, us, them chess.Colour) []*chess.Move {
	from := p.kings[us]
	if from == chess.NoSquare {
		return moves
	}

	if p.castling[us].Has(chess.KsideCastle) {
		to := from + 2
		if to.OnBoard() &&
			p.board.IsEmpty(from+1) &&
			p.board.IsEmpty(to) &&
			!p.attacked(them, from) &&
			!p.attacked(them, from+1) &&
			!p.attacked(them, to) {
			moves = p.addMove(moves, us, from, to, chess.KsideCastle)
		}
	}

	if p.castling[us].Has(chess.QsideCastle) {
		to := from - 2
		if (from - 3).OnBoard() &&
			p.board.IsEmpty(from-1) &&
			p.board.IsEmpty(from-2) &&
			p.board.IsEmpty(from-3) &&
			!p.attacked(them, from) &&
			!p.attacked(them, from-1) &&
			!p.attacked(them, to) {
			moves = p.addMove(moves, us, from, to, chess.QsideCastle)
		}
	}

	return moves
}

// castleRook returns the rook's origin and destination for a castling move
// whose king lands on kingTo.
func castleRook(flags chess.MoveFlags, kingTo chess.Square) (from, to chess.Square) {
	if flags.Has(chess.KsideCastle) {
		return kingTo + 1, kingTo - 1
	}
	return kingTo - 2, kingTo + 1
}

// relocate moves whatever stands on from to to.
func (p *Position) relocate(from, to chess.Square) {
	p.board.Set(to, p.board.Get(from))
	p.board.Clear(from)
}

// updateCastlingRightsForRook clears the right guarded by a rook home
// square when a move leaves or lands on it.
func (p *Position) updateCastlingRightsForRook(colour chess.Colour, sq chess.Square) {
	if p.castling[colour] == 0 {
		return
	}
	for _, home := range chess.RookHomes[colour] {
		if sq == home.Square && p.castling[colour].Has(home.Flag) {
			p.castling[colour] &^= home.Flag
			return
		}
	}
}
