package chess_test

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestMoveFlags_String(t *testing.T) {
	tests := []struct {
		flags chess.MoveFlags
		want  string
	}{
		{chess.Normal, "n"},
		{chess.Capture, "c"},
		{chess.BigPawn, "b"},
		{chess.EPCapture, "e"},
		{chess.Capture | chess.Promotion, "cp"},
		{chess.KsideCastle, "k"},
		{chess.QsideCastle, "q"},
		{0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			testutil.AssertEqual(t, tt.flags.String(), tt.want)
		})
	}
}

func TestBuildMove(t *testing.T) {
	b := chess.NewBoard()
	b.Set(chess.A2, chess.W(chess.Pawn))
	b.Set(chess.B7, chess.W(chess.Pawn))
	b.Set(chess.A8, chess.B(chess.Rook))
	b.Set(chess.E5, chess.W(chess.Pawn))
	b.Set(chess.D5, chess.B(chess.Pawn))

	t.Run("normal", func(t *testing.T) {
		m, err := chess.BuildMove(chess.White, b, chess.A2, chess.A4, chess.BigPawn, chess.NoPiece)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, m, &chess.Move{Turn: chess.White, Flags: chess.BigPawn, Piece: chess.W(chess.Pawn), From: chess.A2, To: chess.A4})
		testutil.AssertEqual(t, m.UCI(), "a2a4")
		testutil.AssertEqual(t, m.String(), "a2a4")
		testutil.AssertFalse(t, m.IsCapture())
	})

	t.Run("capture promotion", func(t *testing.T) {
		m, err := chess.BuildMove(chess.White, b, chess.B7, chess.A8, chess.Capture, chess.Queen)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, m.Captured, chess.Rook)
		testutil.AssertEqual(t, m.Flags, chess.Capture|chess.Promotion)
		testutil.AssertEqual(t, m.UCI(), "b7a8q")
		testutil.AssertTrue(t, m.IsCapture())
	})

	t.Run("en passant", func(t *testing.T) {
		m, err := chess.BuildMove(chess.White, b, chess.E5, chess.D6, chess.EPCapture, chess.NoPiece)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, m.Captured, chess.Pawn)
		testutil.AssertTrue(t, m.IsCapture())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := chess.BuildMove(chess.White, b, chess.Square(999), chess.A4, chess.Normal, chess.NoPiece)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare)

		_, err = chess.BuildMove(chess.White, b, chess.C3, chess.C4, chess.Normal, chess.NoPiece)
		testutil.AssertErrorIs(t, err, errors.ErrEmptySquare)

		_, err = chess.BuildMove(chess.White, b, chess.B7, chess.B8, chess.Normal, chess.King)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidPiece)
	})
}

func TestMove_Key(t *testing.T) {
	b := chess.NewBoard()
	b.Set(chess.G1, chess.W(chess.Knight))
	m1 := chess.MustBuildMove(chess.White, b, chess.G1, chess.F3, chess.Normal, chess.NoPiece)
	m2 := chess.MustBuildMove(chess.White, b, chess.G1, chess.F3, chess.Normal, chess.NoPiece)
	m3 := chess.MustBuildMove(chess.White, b, chess.G1, chess.H3, chess.Normal, chess.NoPiece)

	testutil.AssertEqual(t, m1.Key(), m2.Key())
	testutil.AssertTrue(t, m1.Key() != m3.Key())
}

func TestMove_IsCastle(t *testing.T) {
	testutil.AssertTrue(t, (&chess.Move{Flags: chess.KsideCastle}).IsCastle())
	testutil.AssertTrue(t, (&chess.Move{Flags: chess.QsideCastle}).IsCastle())
	testutil.AssertFalse(t, (&chess.Move{Flags: chess.Normal}).IsCastle())
	testutil.AssertEqual(t, (&chess.Move{SAN: "O-O"}).String(), "O-O")
}
