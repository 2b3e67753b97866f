package chess

import "strings"

// BoardSlots is the size of the padded 0x88 array.
const BoardSlots = 128

// Board maps 0x88 squares to pieces. Only the 64 playable squares are ever
// written; reads from the guard band return the empty piece.
type Board struct {
	squares [BoardSlots]Piece

	// Reversed flips the iteration and labelling order without moving pieces.
	reversed bool
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece on sq, or the empty piece for empty and off-board squares.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Piece{}
	}
	return b.squares[sq]
}

// Set places p on sq. Writes outside the playable squares are rejected.
func (b *Board) Set(sq Square, p Piece) bool {
	if !sq.OnBoard() {
		return false
	}
	b.squares[sq] = p
	return true
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Reset empties every square and restores the normal orientation.
func (b *Board) Reset() {
	*b = Board{}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Reverse toggles the board orientation.
func (b *Board) Reverse() {
	b.reversed = !b.reversed
}

// Reversed reports whether the board is viewed from black's side.
func (b *Board) Reversed() bool {
	return b.reversed
}

// Squares returns the 64 playable squares in view order: a8..h1 normally,
// h1..a8 when reversed.
func (b *Board) Squares() []Square {
	squares := make([]Square, 0, 64)
	for sq := A8; sq <= H1; sq++ {
		if !sq.OnBoard() {
			sq += 7
			continue
		}
		squares = append(squares, sq)
	}
	if b.reversed {
		for i, j := 0, len(squares)-1; i < j; i, j = i+1, j-1 {
			squares[i], squares[j] = squares[j], squares[i]
		}
	}
	return squares
}

// Each calls fn for every playable square in view order. Iteration stops
// early if fn returns false.
func (b *Board) Each(fn func(sq Square, p Piece) bool) {
	for _, sq := range b.Squares() {
		if !fn(sq, b.squares[sq]) {
			return
		}
	}
}

// FileLabels returns the file letters in view order.
func (b *Board) FileLabels() string {
	if b.reversed {
		return "hgfedcba"
	}
	return fileLetters
}

// RankLabels returns the rank digits in view order, top row first.
func (b *Board) RankLabels() string {
	if b.reversed {
		return "12345678"
	}
	return rankDigits
}

// Serialize encodes all 64 cells, a8 to h1, as FEN letters with '.' for an
// empty square and '/' between ranks. The encoding ignores orientation so
// identical placements always serialize identically.
func (b *Board) Serialize() string {
	var sb strings.Builder
	sb.Grow(71)
	for sq := A8; sq <= H1; sq++ {
		if !sq.OnBoard() {
			sq += 7
			continue
		}
		sb.WriteByte(b.squares[sq].ASCII())
		if sq.File() == 7 && sq != H1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// Pieces returns the squares holding pieces of the given colour, in a8..h1 order.
func (b *Board) Pieces(colour Colour) []Square {
	var squares []Square
	for sq := A8; sq <= H1; sq++ {
		if !sq.OnBoard() {
			sq += 7
			continue
		}
		if p := b.squares[sq]; !p.IsEmpty() && p.Colour == colour {
			squares = append(squares, sq)
		}
	}
	return squares
}
