package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveFlags is the bitset describing the nature of a move.
type MoveFlags uint8

const (
	Normal      MoveFlags = 1
	Capture     MoveFlags = 2
	BigPawn     MoveFlags = 4
	EPCapture   MoveFlags = 8
	Promotion   MoveFlags = 16
	KsideCastle MoveFlags = 32
	QsideCastle MoveFlags = 64
)

// Has reports whether any bit of f is set in m.
func (m MoveFlags) Has(f MoveFlags) bool {
	return m&f != 0
}

// String renders the flags as the compact letters used in verbose move
// listings: n normal, c capture, b big pawn, e en passant, p promotion,
// k and q for castling.
func (m MoveFlags) String() string {
	var sb strings.Builder
	letters := []struct {
		flag MoveFlags
		c    byte
	}{
		{Normal, 'n'}, {Capture, 'c'}, {BigPawn, 'b'}, {EPCapture, 'e'},
		{Promotion, 'p'}, {KsideCastle, 'k'}, {QsideCastle, 'q'},
	}
	for _, l := range letters {
		if m.Has(l.flag) {
			sb.WriteByte(l.c)
		}
	}
	return sb.String()
}

// Move describes a single ply. Moves are produced by the generator and are
// not modified afterwards apart from the memoised SAN.
type Move struct {
	// Side making the move.
	Turn Colour

	Flags MoveFlags

	// The piece as it stood on From before the move.
	Piece Piece

	From Square
	To   Square

	// Kind taken from To, or Pawn for an en-passant capture.
	Captured PieceKind

	// Kind the pawn becomes, NoPiece for non-promotions.
	Promotion PieceKind

	// Standard algebraic notation, filled in lazily by the engine.
	SAN string
}

// FromAlg returns the algebraic name of the origin square.
func (m *Move) FromAlg() string {
	return m.From.Algebraic()
}

// ToAlg returns the algebraic name of the destination square.
func (m *Move) ToAlg() string {
	return m.To.Algebraic()
}

// IsCastle reports whether the move is either castling move.
func (m *Move) IsCastle() bool {
	return m.Flags.Has(KsideCastle | QsideCastle)
}

// IsCapture reports whether the move takes a piece, en passant included.
func (m *Move) IsCapture() bool {
	return m.Flags.Has(Capture | EPCapture)
}

// UCI returns the coordinate form of the move, e.g. "e7e8q".
func (m *Move) UCI() string {
	s := m.FromAlg() + m.ToAlg()
	if m.Promotion != NoPiece {
		s += string(m.Promotion.Letter())
	}
	return s
}

// Key returns a compact encoding of everything that identifies the move.
func (m *Move) Key() string {
	return fmt.Sprintf("%c%c%d-%d:%d:%d:%d", m.Turn.Letter(), m.Piece.ASCII(),
		m.From, m.To, m.Flags, m.Captured, m.Promotion)
}

// String returns the SAN when known and the coordinate form otherwise.
func (m *Move) String() string {
	if m.SAN != "" {
		return m.SAN
	}
	return m.UCI()
}

// BuildMove creates a move of the piece standing on from. The captured kind
// is read from to, or set to Pawn for an en-passant capture, and a promotion
// kind adds the Promotion flag. Building from an empty or off-board square is
// a caller error.
func BuildMove(turn Colour, b *Board, from, to Square, flags MoveFlags, promotion PieceKind) (*Move, error) {
	if !from.OnBoard() || !to.OnBoard() {
		return nil, fmt.Errorf("move %d-%d: %w", from, to, errors.ErrInvalidSquare)
	}
	if b.IsEmpty(from) {
		return nil, fmt.Errorf("move from %s: %w", from, errors.ErrEmptySquare)
	}
	if promotion != NoPiece && (!promotion.Valid() || promotion == Pawn || promotion == King) {
		return nil, fmt.Errorf("promotion to %s: %w", promotion, errors.ErrInvalidPiece)
	}
	return buildMove(turn, b, from, to, flags, promotion), nil
}

// MustBuildMove is like BuildMove but panics on a contract violation.
func MustBuildMove(turn Colour, b *Board, from, to Square, flags MoveFlags, promotion PieceKind) *Move {
	m, err := BuildMove(turn, b, from, to, flags, promotion)
	if err != nil {
		panic(err)
	}
	return m
}

func buildMove(turn Colour, b *Board, from, to Square, flags MoveFlags, promotion PieceKind) *Move {
	captured := NoPiece
	if target := b.Get(to); !target.IsEmpty() {
		captured = target.Kind
	} else if flags.Has(EPCapture) {
		captured = Pawn
	}
	if promotion != NoPiece {
		flags |= Promotion
	}
	return &Move{
		Turn:      turn,
		Flags:     flags,
		Piece:     b.Get(from),
		From:      from,
		To:        to,
		Captured:  captured,
		Promotion: promotion,
	}
}
