package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// epVictim returns the square of the pawn taken en passant, which sits
// behind the destination from the mover's point of view.
func epVictim(us chess.Colour, to chess.Square) chess.Square {
	if us == chess.Black {
		return to - 16
	}
	return to + 16
}

// makeMove applies an at least pseudo-legal move. The state before the move
// is pushed on the history first so undoMove can restore it exactly.
func (p *Position) makeMove(m *chess.Move) {
	us := p.turn
	them := us.Opposite()

	entry := p.history.Push(chess.Entry{
		Move:       m,
		Kings:      p.kings,
		Turn:       p.turn,
		Castling:   p.castling,
		EPSquare:   p.epSquare,
		HalfMoves:  p.halfMoves,
		MoveNumber: p.moveNumber,
	})

	p.relocate(m.From, m.To)

	if m.Flags.Has(chess.EPCapture) {
		p.board.Clear(epVictim(us, m.To))
	}

	if m.Flags.Has(chess.Promotion) {
		p.board.Set(m.To, chess.Piece{Kind: m.Promotion, Colour: us})
	}

	if m.Flags.Has(chess.BigPawn) {
		p.epSquare = epVictim(us, m.To)
	} else {
		p.epSquare = chess.NoSquare
	}

	if m.Piece.Kind == chess.Pawn || m.IsCapture() {
		p.halfMoves = 0
	} else {
		p.halfMoves++
	}

	if p.board.Get(m.To).Kind == chess.King {
		p.kings[us] = m.To
		if m.IsCastle() {
			p.relocate(castleRook(m.Flags, m.To))
		}
		p.castling[us] = 0
	}

	p.updateCastlingRightsForRook(us, m.From)
	p.updateCastlingRightsForRook(them, m.To)

	if us == chess.Black {
		p.moveNumber++
	}
	p.turn = them

	p.boardHash = p.board.Serialize()
	p.history.SetPosition(entry, p.boardHash)
}

// undoMove pops the last entry and reverts its move. It returns nil when
// there is nothing to undo.
func (p *Position) undoMove() *chess.Move {
	old, ok := p.history.Pop()
	if !ok {
		return nil
	}

	m := old.Move
	p.kings = old.Kings
	p.turn = old.Turn
	p.castling = old.Castling
	p.epSquare = old.EPSquare
	p.halfMoves = old.HalfMoves
	p.moveNumber = old.MoveNumber

	us := p.turn
	them := us.Opposite()

	p.board.Set(m.From, m.Piece)
	p.board.Clear(m.To)

	if m.Flags.Has(chess.Capture) {
		p.board.Set(m.To, chess.Piece{Kind: m.Captured, Colour: them})
	} else if m.Flags.Has(chess.EPCapture) {
		p.board.Set(epVictim(us, m.To), chess.Piece{Kind: chess.Pawn, Colour: them})
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRook(m.Flags, m.To)
		p.relocate(rookTo, rookFrom)
	}

	p.boardHash = p.board.Serialize()
	return m
}

// Undo takes back the last move and returns it with its SAN recomputed in
// the restored position, or nil when no move has been made.
func (p *Position) Undo() *chess.Move {
	m := p.undoMove()
	if m != nil {
		p.moveToSAN(m)
	}
	return m
}
