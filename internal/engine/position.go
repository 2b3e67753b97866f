// Package engine implements the position model: loading and serializing
// FEN, move generation with legality filtering, make/undo, SAN and the
// terminal-state queries.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/validation"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// EmptyFEN is an empty board with white to move.
const EmptyFEN = "8/8/8/8/8/8/8/8 w - - 0 1"

// Position owns a board together with the side to move, castling rights,
// en-passant square, clocks and the move history. A Position is not safe
// for concurrent use.
type Position struct {
	board      *chess.Board
	turn       chess.Colour
	kings      chess.Kings
	castling   chess.Castling
	epSquare   chess.Square
	halfMoves  int
	moveNumber int
	history    chess.History
	header     chess.Header

	// boardHash is the board serialization, refreshed on every mutation.
	boardHash string

	movesCache map[string][]*chess.Move
	sanCache   map[string]string
}

// New creates a position set to the standard starting array.
func New() *Position {
	p, err := FromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// FromFEN creates a position from a FEN string.
func FromFEN(fen string) (*Position, error) {
	p := &Position{board: chess.NewBoard()}
	p.Clear()
	if err := p.Load(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// Clear empties the board and resets every piece of state, header included.
func (p *Position) Clear() {
	p.board.Reset()
	p.turn = chess.White
	p.kings = chess.Kings{chess.NoSquare, chess.NoSquare}
	p.castling = chess.Castling{}
	p.epSquare = chess.NoSquare
	p.halfMoves = 0
	p.moveNumber = 1
	p.history.Reset()
	p.header.Reset()
	p.boardChanged()
}

// Reset loads the standard starting position.
func (p *Position) Reset() {
	if err := p.Load(InitialFEN); err != nil {
		panic(err)
	}
}

// Load replaces the position with the one described by fen. An invalid
// string is reported as an *errors.FENError and leaves the position unchanged.
func (p *Position) Load(fen string) error {
	if err := validation.Check(fen); err != nil {
		return err
	}
	p.Clear()
	parseFEN(p, fen)
	p.boardChanged()
	p.updateSetup()
	return nil
}

// Board returns the underlying board. Callers must not modify it directly;
// use Put and Remove.
func (p *Position) Board() *chess.Board {
	return p.board
}

// Turn returns the side to move.
func (p *Position) Turn() chess.Colour {
	return p.turn
}

// Castling returns the remaining castling rights.
func (p *Position) Castling() chess.Castling {
	return p.castling
}

// EnPassant returns the en-passant target square, or NoSquare.
func (p *Position) EnPassant() chess.Square {
	return p.epSquare
}

// HalfMoves returns the half-move clock.
func (p *Position) HalfMoves() int {
	return p.halfMoves
}

// MoveNumber returns the full-move number.
func (p *Position) MoveNumber() int {
	return p.moveNumber
}

// King returns the tracked king square of a colour, or NoSquare.
func (p *Position) King(colour chess.Colour) chess.Square {
	return p.kings[colour]
}

// Entries returns the history stack, oldest first.
func (p *Position) Entries() []chess.Entry {
	return p.history.Entries()
}

// Ply returns the number of moves made since the position was loaded.
func (p *Position) Ply() int {
	return p.history.Len()
}

// Get returns the piece on the named square. The boolean is false for an
// empty square or an invalid name.
func (p *Position) Get(square string) (chess.Piece, bool) {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return chess.Piece{}, false
	}
	piece := p.board.Get(sq)
	return piece, !piece.IsEmpty()
}

// Put places a piece on the named square. It refuses an invalid square and
// a king whose colour already has a king on another square.
func (p *Position) Put(piece chess.Piece, square string) bool {
	return p.PutChecked(piece, square) == nil
}

// PutChecked is Put reporting why a placement was refused.
func (p *Position) PutChecked(piece chess.Piece, square string) error {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return fmt.Errorf("put %q: %w", square, errors.ErrInvalidSquare)
	}
	if _, err := chess.NewPiece(piece.Kind, piece.Colour); err != nil {
		return err
	}
	if !p.put(piece, sq) {
		return fmt.Errorf("put %s king on %s, already on %s: %w", piece.Colour, sq, p.kings[piece.Colour], errors.ErrKingPlacement)
	}
	p.boardChanged()
	p.updateSetup()
	return nil
}

// put writes a piece and tracks kings. It refuses a second king of one colour.
func (p *Position) put(piece chess.Piece, sq chess.Square) bool {
	if piece.Kind == chess.King {
		if k := p.kings[piece.Colour]; k != chess.NoSquare && k != sq {
			return false
		}
	}
	if old := p.board.Get(sq); old.Kind == chess.King {
		p.kings[old.Colour] = chess.NoSquare
	}
	if piece.Kind == chess.King {
		p.kings[piece.Colour] = sq
	}
	return p.board.Set(sq, piece)
}

// Remove clears the named square. It returns false only for an invalid name.
func (p *Position) Remove(square string) bool {
	sq, ok := chess.ParseSquare(square)
	if !ok {
		return false
	}
	piece := p.board.Get(sq)
	p.board.Clear(sq)
	if piece.Kind == chess.King {
		p.kings[piece.Colour] = chess.NoSquare
	}
	p.boardChanged()
	p.updateSetup()
	return true
}

// Header returns the value of a header tag.
func (p *Position) Header(name string) string {
	return p.header.Get(name)
}

// SetHeader assigns a header tag.
func (p *Position) SetHeader(name, value string) {
	p.header.Set(name, value)
}

// Headers returns a copy of all header tags.
func (p *Position) Headers() map[string]string {
	return p.header.Map()
}

// HeaderKeys returns the header tag names, seven tag roster first.
func (p *Position) HeaderKeys() []string {
	return p.header.Keys()
}

// updateSetup keeps the SetUp and FEN tags in step with the position while
// no moves have been made.
func (p *Position) updateSetup() {
	if p.history.Len() > 0 {
		return
	}
	fen := p.FEN()
	if fen != InitialFEN {
		p.header.Set(chess.SetupTag, "1")
		p.header.Set(chess.FENTag, fen)
	} else {
		p.header.Delete(chess.SetupTag)
		p.header.Delete(chess.FENTag)
	}
}

// boardChanged refreshes the board hash and drops the memoised moves and
// SAN strings after an edit outside make/undo.
func (p *Position) boardChanged() {
	p.boardHash = p.board.Serialize()
	p.movesCache = make(map[string][]*chess.Move)
	p.sanCache = make(map[string]string)
}

// stateKey identifies the full position for memoisation: the board plus
// side to move, castling rights and en-passant square.
func (p *Position) stateKey() string {
	return fmt.Sprintf("%s %c %d %d %d", p.boardHash, p.turn.Letter(), p.castling[chess.White], p.castling[chess.Black], p.epSquare)
}
