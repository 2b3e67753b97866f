package chess

// Square is an index into the 0x88 board. The low nibble is the file
// (0 = a) and the high nibble is the rank counted from the top (0 = rank 8).
// Any index with a bit of 0x88 set lies in the guard band.
type Square int

// NoSquare marks an absent square (no en-passant target, no king).
const NoSquare Square = -1

// Squares of the playing area.
const (
	A8 Square = 16*iota + 0
	A7
	A6
	A5
	A4
	A3
	A2
	A1
)

const (
	B8 = A8 + 1 + 16*iota
	B7
	B6
	B5
	B4
	B3
	B2
	B1
)

const (
	C8 = A8 + 2 + 16*iota
	C7
	C6
	C5
	C4
	C3
	C2
	C1
)

const (
	D8 = A8 + 3 + 16*iota
	D7
	D6
	D5
	D4
	D3
	D2
	D1
)

const (
	E8 = A8 + 4 + 16*iota
	E7
	E6
	E5
	E4
	E3
	E2
	E1
)

const (
	F8 = A8 + 5 + 16*iota
	F7
	F6
	F5
	F4
	F3
	F2
	F1
)

const (
	G8 = A8 + 6 + 16*iota
	G7
	G6
	G5
	G4
	G3
	G2
	G1
)

const (
	H8 = A8 + 7 + 16*iota
	H7
	H6
	H5
	H4
	H3
	H2
	H1
)

// Rank indices as stored in the high nibble of a Square.
const (
	Rank8 = 0
	Rank7 = 1
	Rank2 = 6
	Rank1 = 7
)

const (
	fileLetters = "abcdefgh"
	rankDigits  = "87654321"
)

// OnBoard reports whether sq lies on the 64 playable squares.
func (sq Square) OnBoard() bool {
	return sq >= 0 && sq&0x88 == 0
}

// Rank returns the rank index, 0 for rank 8 through 7 for rank 1.
func (sq Square) Rank() int {
	return int(sq) >> 4
}

// File returns the file index, 0 for the a-file.
func (sq Square) File() int {
	return int(sq) & 15
}

// Algebraic returns the square name such as "e4", or "-" for an off-board index.
func (sq Square) Algebraic() string {
	if !sq.OnBoard() {
		return "-"
	}
	return string([]byte{fileLetters[sq.File()], rankDigits[sq.Rank()]})
}

// String implements fmt.Stringer.
func (sq Square) String() string {
	return sq.Algebraic()
}

// ParseSquare converts an algebraic name into a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return Square(int('8'-rank)<<4 | int(file-'a')), true
}

// MustSquare is like ParseSquare but panics on a malformed name.
func MustSquare(s string) Square {
	sq, ok := ParseSquare(s)
	if !ok {
		panic("chess: invalid square " + s)
	}
	return sq
}

// IsLight reports whether sq is a light square (h1 and a8 are light).
func (sq Square) IsLight() bool {
	return (sq.Rank()+sq.File())%2 == 0
}

// SquareColour returns "light" or "dark" for a named square, or "" when the
// name is not a square.
func SquareColour(name string) string {
	sq, ok := ParseSquare(name)
	if !ok {
		return ""
	}
	if sq.IsLight() {
		return "light"
	}
	return "dark"
}
