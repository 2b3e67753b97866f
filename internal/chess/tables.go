package chess

// AttackIndexBias converts a square difference (attacker - target) into an
// index of Attacks and Rays.
const AttackIndexBias = 119

// Attacks holds, for every difference between two squares, a bitmask of the
// piece kinds able to attack across that vector. Bit n is set for the kind
// whose AttackShift is n.
var Attacks = [239]uint8{
	20, 0, 0, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 0, 20, 0,
	0, 20, 0, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 20, 0, 0,
	0, 0, 20, 0, 0, 0, 0, 24, 0, 0, 0, 0, 20, 0, 0, 0,
	0, 0, 0, 20, 0, 0, 0, 24, 0, 0, 0, 20, 0, 0, 0, 0,
	0, 0, 0, 0, 20, 0, 0, 24, 0, 0, 20, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 20, 2, 24, 2, 20, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 2, 53, 56, 53, 2, 0, 0, 0, 0, 0, 0,
	24, 24, 24, 24, 24, 24, 56, 0, 56, 24, 24, 24, 24, 24, 24, 0,
	0, 0, 0, 0, 0, 2, 53, 56, 53, 2, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 20, 2, 24, 2, 20, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 20, 0, 0, 24, 0, 0, 20, 0, 0, 0, 0, 0,
	0, 0, 0, 20, 0, 0, 0, 24, 0, 0, 0, 20, 0, 0, 0, 0,
	0, 0, 20, 0, 0, 0, 0, 24, 0, 0, 0, 0, 20, 0, 0, 0,
	0, 20, 0, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 20, 0, 0,
	20, 0, 0, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 0, 20,
}

// Rays holds the single-step offset that walks from an attacker towards the
// target along the same difference vector, or 0 when no ray connects them.
var Rays = [239]int{
	17, 0, 0, 0, 0, 0, 0, 16, 0, 0, 0, 0, 0, 0, 15, 0,
	0, 17, 0, 0, 0, 0, 0, 16, 0, 0, 0, 0, 0, 15, 0, 0,
	0, 0, 17, 0, 0, 0, 0, 16, 0, 0, 0, 0, 15, 0, 0, 0,
	0, 0, 0, 17, 0, 0, 0, 16, 0, 0, 0, 15, 0, 0, 0, 0,
	0, 0, 0, 0, 17, 0, 0, 16, 0, 0, 15, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 17, 0, 16, 0, 15, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 17, 16, 15, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 0, -1, -1, -1, -1, -1, -1, -1, 0,
	0, 0, 0, 0, 0, 0, -15, -16, -17, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, -15, 0, -16, 0, -17, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, -15, 0, 0, -16, 0, 0, -17, 0, 0, 0, 0, 0,
	0, 0, 0, -15, 0, 0, 0, -16, 0, 0, 0, -17, 0, 0, 0, 0,
	0, 0, -15, 0, 0, 0, 0, -16, 0, 0, 0, 0, -17, 0, 0, 0,
	0, -15, 0, 0, 0, 0, 0, -16, 0, 0, 0, 0, 0, -17, 0, 0,
	-15, 0, 0, 0, 0, 0, 0, -16, 0, 0, 0, 0, 0, 0, -17,
}

// PawnOffsets lists, per colour, the single push, double push and the two
// capture offsets.
var PawnOffsets = [2][4]Square{
	Black: {16, 32, 17, 15},
	White: {-16, -32, -17, -15},
}

// PieceOffsets lists the step directions of the non-pawn kinds.
var PieceOffsets = [7][]Square{
	Knight: {-18, -33, -31, -14, 18, 33, 31, 14},
	Bishop: {-17, -15, 17, 15},
	Rook:   {-16, 1, 16, -1},
	Queen:  {-17, -16, -15, 1, 17, 16, 15, -1},
	King:   {-17, -16, -15, 1, 17, 16, 15, -1},
}

// AttackShift returns the bit position of the kind inside Attacks entries.
func (k PieceKind) AttackShift() uint {
	return uint(k - Pawn)
}

// AttackMask returns the Attacks bit for the kind.
func (k PieceKind) AttackMask() uint8 {
	return 1 << k.AttackShift()
}

// RookHome pairs a rook starting square with the castling right it guards.
type RookHome struct {
	Square Square
	Flag   MoveFlags
}

// RookHomes lists each side's rook starting squares.
var RookHomes = [2][2]RookHome{
	White: {{Square: A1, Flag: QsideCastle}, {Square: H1, Flag: KsideCastle}},
	Black: {{Square: A8, Flag: QsideCastle}, {Square: H8, Flag: KsideCastle}},
}

// SecondRank is the rank index from which each side's pawns may double-push.
var SecondRank = [2]int{
	Black: Rank7,
	White: Rank2,
}
