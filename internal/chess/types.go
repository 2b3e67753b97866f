// Package chess provides the core chess types: colours, pieces, 0x88 squares,
// the padded board, moves and the history stack.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the FEN side-to-move letter for the colour.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Valid reports whether c is one of the two colours.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// ParseColour converts a FEN side-to-move letter into a Colour.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "w":
		return White, true
	case "b":
		return Black, true
	}
	return Black, false
}

// PieceKind represents a chess piece type. The zero value means no piece.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the lowercase letter of a piece kind, or 0 for NoPiece.
func (k PieceKind) Letter() byte {
	letters := []byte{0, 'p', 'n', 'b', 'r', 'q', 'k'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return 0
}

// Valid reports whether k names an actual piece.
func (k PieceKind) Valid() bool {
	return k >= Pawn && k <= King
}

// Slides reports whether the kind moves along rays rather than single steps.
func (k PieceKind) Slides() bool {
	return k == Bishop || k == Rook || k == Queen
}

// ParsePieceKind converts a letter in either case into a PieceKind.
func ParsePieceKind(c byte) (PieceKind, bool) {
	switch c {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	}
	return NoPiece, false
}

// Symbols holds the twelve FEN piece letters, black first.
const Symbols = "pnbrqkPNBRQK"

var unicodeGlyphs = [2][7]string{
	Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
	White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
}

// Piece is an immutable coloured piece. The zero value is the empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NewPiece builds a piece, rejecting kinds or colours outside the enumerations.
func NewPiece(kind PieceKind, colour Colour) (Piece, error) {
	if !kind.Valid() {
		return Piece{}, fmt.Errorf("piece kind %d: %w", kind, errors.ErrInvalidPiece)
	}
	if !colour.Valid() {
		return Piece{}, fmt.Errorf("piece colour %d: %w", colour, errors.ErrInvalidPiece)
	}
	return Piece{Kind: kind, Colour: colour}, nil
}

// MustPiece is like NewPiece but panics on an invalid kind or colour.
func MustPiece(kind PieceKind, colour Colour) Piece {
	p, err := NewPiece(kind, colour)
	if err != nil {
		panic(err)
	}
	return p
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return MustPiece(kind, White)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return MustPiece(kind, Black)
}

// ParsePiece converts a FEN letter into a piece; uppercase is white.
func ParsePiece(c byte) (Piece, bool) {
	if strings.IndexByte(Symbols, c) < 0 {
		return Piece{}, false
	}
	kind, _ := ParsePieceKind(c)
	colour := Black
	if c >= 'A' && c <= 'Z' {
		colour = White
	}
	return Piece{Kind: kind, Colour: colour}, true
}

// IsEmpty reports whether p is the zero value.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// ASCII returns the FEN letter for the piece, uppercase for white.
func (p Piece) ASCII() byte {
	c := p.Kind.Letter()
	if c == 0 {
		return '.'
	}
	if p.Colour == White {
		return c - 'a' + 'A'
	}
	return c
}

// Unicode returns the chess glyph for the piece.
func (p Piece) Unicode() string {
	if !p.Kind.Valid() || !p.Colour.Valid() {
		return ""
	}
	return unicodeGlyphs[p.Colour][p.Kind]
}

// String returns the piece's unicode glyph.
func (p Piece) String() string {
	return p.Unicode()
}
