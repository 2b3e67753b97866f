package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Attacked reports whether any piece of colour by attacks the named square.
func (p *Position) Attacked(by chess.Colour, square string) bool {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return false
	}
	return p.attacked(by, sq)
}

// attacked scans every piece of colour by and tests it against the
// precomputed attack table. Sliders also need a clear ray to the target.
func (p *Position) attacked(by chess.Colour, target chess.Square) bool {
	for sq := chess.A8; sq <= chess.H1; sq++ {
		if !sq.OnBoard() {
			sq += 7
			continue
		}

		piece := p.board.Get(sq)
		if piece.IsEmpty() || piece.Colour != by {
			continue
		}

		difference := sq - target
		index := int(difference) + chess.AttackIndexBias

		if chess.Attacks[index]&piece.Kind.AttackMask() == 0 {
			continue
		}

		switch piece.Kind {
		case chess.Pawn:
			// White pawns attack upwards, so they sit below the target.
			if difference > 0 {
				if piece.Colour == chess.White {
					return true
				}
			} else if piece.Colour == chess.Black {
				return true
			}
			continue
		case chess.Knight, chess.King:
			return true
		}

		offset := chess.Square(chess.Rays[index])
		blocked := false
		for j := sq + offset; j != target; j += offset {
			if !p.board.IsEmpty(j) {
				blocked = true
				break
			}
		}
		if !blocked {
			return true
		}
	}
	return false
}

// kingAttacked reports whether the king of colour is attacked. A side
// without a king is never in check.
func (p *Position) kingAttacked(colour chess.Colour) bool {
	king := p.kings[colour]
	if king == chess.NoSquare {
		return false
	}
	return p.attacked(colour.Opposite(), king)
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.kingAttacked(p.turn)
}
