package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// GenOptions selects what GenerateMoves produces. The zero value asks for
// every pseudo-legal move on the board.
type GenOptions struct {
	// Single limits generation to the piece on Square. Square is ignored
	// when Single is false.
	Single bool
	Square chess.Square

	// Legal drops moves that leave the mover's king attacked.
	Legal bool
}

// AllMoves is the option set for every legal move of the side to move.
var AllMoves = GenOptions{Legal: true}

// PseudoLegalMoves is the option set for every move of the side to move,
// including those that leave its king attacked.
var PseudoLegalMoves = GenOptions{}

// SquareMoves is the option set for the legal moves of the piece on sq.
func SquareMoves(sq chess.Square) GenOptions {
	return GenOptions{Single: true, Square: sq, Legal: true}
}

// GenerateMoves returns the moves of the side to move, memoised per
// position and options. The returned slice is shared and must not be
// modified.
func (p *Position) GenerateMoves(opts GenOptions) []*chess.Move {
	sq := chess.NoSquare
	if opts.Single {
		sq = opts.Square
	}
	key := fmt.Sprintf("%s|%d|%t", p.stateKey(), sq, opts.Legal)
	if moves, ok := p.movesCache[key]; ok {
		return moves
	}
	moves := p.generateMoves(opts)
	p.movesCache[key] = moves
	return moves
}

// generateMoves produces pseudo-legal moves and, when asked, filters them
// by trial make/undo.
func (p *Position) generateMoves(opts GenOptions) []*chess.Move {
	us := p.turn
	them := us.Opposite()

	first, last := chess.A8, chess.H1
	single := opts.Single
	if single {
		if !opts.Square.OnBoard() {
			return nil
		}
		first, last = opts.Square, opts.Square
	}

	var moves []*chess.Move
	for sq := first; sq <= last; sq++ {
		if !sq.OnBoard() {
			sq += 7
			continue
		}

		piece := p.board.Get(sq)
		if piece.IsEmpty() || piece.Colour != us {
			continue
		}

		if piece.Kind == chess.Pawn {
			moves = p.generatePawnMoves(moves, sq, us, them)
		} else {
			moves = p.generatePieceMoves(moves, sq, piece, us)
		}
	}

	if !single || last == p.kings[us] {
		moves = p.generateCastlingMoves(moves, us, them)
	}

	if !opts.Legal {
		return moves
	}
	return p.filterLegal(moves, us)
}

// generatePawnMoves adds pushes, double pushes and captures of the pawn on sq.
func (p *Position) generatePawnMoves(moves []*chess.Move, sq chess.Square, us, them chess.Colour) []*chess.Move {
	offsets := chess.PawnOffsets[us]

	to := sq + offsets[0]
	if to.OnBoard() && p.board.IsEmpty(to) {
		moves = p.addMove(moves, us, sq, to, chess.Normal)

		to = sq + offsets[1]
		if chess.SecondRank[us] == sq.Rank() && p.board.IsEmpty(to) {
			moves = p.addMove(moves, us, sq, to, chess.BigPawn)
		}
	}

	for _, offset := range offsets[2:] {
		to := sq + offset
		if !to.OnBoard() {
			continue
		}
		if target := p.board.Get(to); !target.IsEmpty() {
			if target.Colour == them {
				moves = p.addMove(moves, us, sq, to, chess.Capture)
			}
		} else if to == p.epSquare {
			moves = p.addMove(moves, us, sq, to, chess.EPCapture)
		}
	}
	return moves
}

// generatePieceMoves walks each direction of a knight, bishop, rook, queen
// or king. Knights and kings take one step.
func (p *Position) generatePieceMoves(moves []*chess.Move, sq chess.Square, piece chess.Piece, us chess.Colour) []*chess.Move {
	for _, offset := range chess.PieceOffsets[piece.Kind] {
		to := sq
		for {
			to += offset
			if !to.OnBoard() {
				break
			}

			target := p.board.Get(to)
			if target.IsEmpty() {
				moves = p.addMove(moves, us, sq, to, chess.Normal)
			} else {
				if target.Colour != us {
					moves = p.addMove(moves, us, sq, to, chess.Capture)
				}
				break
			}

			if !piece.Kind.Slides() {
				break
			}
		}
	}
	return moves
}

// addMove appends a move, expanding a pawn reaching the last rank into one
// move per promotion kind.
func (p *Position) addMove(moves []*chess.Move, us chess.Colour, from, to chess.Square, flags chess.MoveFlags) []*chess.Move {
	if p.board.Get(from).Kind == chess.Pawn && (to.Rank() == chess.Rank8 || to.Rank() == chess.Rank1) {
		for _, kind := range chess.PromotionKinds {
			moves = append(moves, chess.MustBuildMove(us, p.board, from, to, flags, kind))
		}
		return moves
	}
	return append(moves, chess.MustBuildMove(us, p.board, from, to, flags, chess.NoPiece))
}

// filterLegal keeps the moves after which the mover's king is not attacked.
func (p *Position) filterLegal(moves []*chess.Move, us chess.Colour) []*chess.Move {
	legal := make([]*chess.Move, 0, len(moves))
	for _, m := range moves {
		p.makeMove(m)
		if !p.kingAttacked(us) {
			legal = append(legal, m)
		}
		p.undoMove()
	}
	return legal
}

// Moves returns every legal move of the side to move with SAN filled in.
func (p *Position) Moves() []*chess.Move {
	moves := p.GenerateMoves(AllMoves)
	for _, m := range moves {
		p.moveToSAN(m)
	}
	return moves
}

// MovesFrom returns the legal moves of the piece on the named square with
// SAN filled in. An invalid name yields no moves.
func (p *Position) MovesFrom(square string) []*chess.Move {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return nil
	}
	moves := p.GenerateMoves(SquareMoves(sq))
	for _, m := range moves {
		p.moveToSAN(m)
	}
	return moves
}

// SANs returns the SAN of every legal move.
func (p *Position) SANs() []string {
	moves := p.Moves()
	sans := make([]string, len(moves))
	for i, m := range moves {
		sans[i] = m.SAN
	}
	return sans
}
