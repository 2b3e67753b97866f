package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestMakeMove_RecordsHistory(t *testing.T) {
	p := New()
	p.Clear()
	p.Put(chess.W(chess.Pawn), "a2")
	p.Put(chess.W(chess.King), "e7")
	p.Put(chess.B(chess.King), "a7")
	p.Put(chess.B(chess.Queen), "f4")

	m, err := chess.BuildMove(p.Turn(), p.Board(), chess.A2, chess.A4, chess.Normal, chess.NoPiece)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Piece, chess.W(chess.Pawn))
	testutil.AssertEqual(t, m.FromAlg(), "a2")
	testutil.AssertEqual(t, m.ToAlg(), "a4")

	p.makeMove(m)

	last, ok := p.history.Last()
	testutil.AssertTrue(t, ok)
	testutil.AssertTrue(t, last.Move == m, "entry holds the move")
	testutil.AssertEqual(t, last.Turn, chess.White)
	testutil.AssertEqual(t, last.Kings, chess.Kings{chess.Black: chess.A7, chess.White: chess.E7})
	testutil.AssertEqual(t, last.Castling, chess.Castling{})
	testutil.AssertEqual(t, last.HalfMoves, 0)
	testutil.AssertEqual(t, last.MoveNumber, 1)
	testutil.AssertEqual(t, last.Position, p.board.Serialize())
}

func TestUndo_RestoresPosition(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
	}{
		{"promotion", "8/P7/8/8/8/8/8/K6k w - - 0 1", []string{"a8=Q+"}},
		{"big pawn", "8/8/8/8/8/8/3P4/K6k w - - 0 1", []string{"d4"}},
		{"capture", "8/8/8/4p3/3P4/8/8/K6k w - - 0 1", []string{"dxe5"}},
		{"en passant", "8/8/8/8/6p1/8/7P/K6k w - - 0 1", []string{"h4", "gxh3"}},
		{"kingside castle", "r1bqkb1r/pppp1ppp/2n2n2/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4", []string{"O-O"}},
		{"queenside castle", "r3kb1r/pppq1ppp/2np1n2/1B2p2b/4P3/3P1N1P/PPPB1PP1/RN1QR1K1 b kq - 2 8", []string{"O-O-O"}},
		{"capture promotion", "1r5k/P7/8/8/8/8/8/K7 w - - 0 1", []string{"axb8=N"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FromFEN(tt.fen)
			testutil.AssertNoError(t, err)

			var fens []string
			for _, san := range tt.moves {
				fens = append(fens, p.FEN())
				testutil.MustPlay(t, p, san)
			}
			for i := len(tt.moves) - 1; i >= 0; i-- {
				m := p.Undo()
				testutil.AssertNotNil(t, m)
				testutil.AssertEqual(t, m.SAN, tt.moves[i])
				testutil.AssertEqual(t, p.FEN(), fens[i])
			}
			testutil.AssertNil(t, p.Undo())
		})
	}
}

func TestMakeMove_Castles(t *testing.T) {
	p, err := FromFEN("r1bqkb1r/pppp1ppp/2n2n2/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	testutil.AssertNoError(t, err)
	testutil.MustPlay(t, p, "O-O")
	testutil.AssertEqual(t, p.FEN(), "r1bqkb1r/pppp1ppp/2n2n2/1B2p3/4P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4")
	testutil.AssertEqual(t, p.King(chess.White), chess.G1)

	p, err = FromFEN("r3kb1r/pppq1ppp/2np1n2/1B2p2b/4P3/3P1N1P/PPPB1PP1/RN1QR1K1 b kq - 2 8")
	testutil.AssertNoError(t, err)
	testutil.MustPlay(t, p, "O-O-O")
	testutil.AssertEqual(t, p.FEN(), "2kr1b1r/pppq1ppp/2np1n2/1B2p2b/4P3/3P1N1P/PPPB1PP1/RN1QR1K1 w - - 3 9")
	testutil.AssertEqual(t, p.King(chess.Black), chess.C8)
}

func TestUndo_EmptyHistory(t *testing.T) {
	p := New()
	testutil.AssertNil(t, p.Undo())
	testutil.AssertEqual(t, p.FEN(), InitialFEN)
}

func TestHistory(t *testing.T) {
	moves := []string{"e4", "e6", "d4", "d5", "Nc3", "Nf6", "Bg5", "dxe4", "Nxe4", "Be7", "Bxf6", "gxf6", "g3", "f5", "Nc3", "Bf6"}

	p := New()
	testutil.MustPlay(t, p, moves...)

	testutil.AssertEqual(t, p.History(), moves)

	verbose := p.HistoryMoves()
	testutil.AssertEqual(t, len(verbose), len(moves))
	for i, m := range verbose {
		testutil.AssertEqual(t, m.SAN, moves[i])
		want := chess.White
		if i%2 == 1 {
			want = chess.Black
		}
		testutil.AssertEqual(t, m.Turn, want)
	}

	// Replaying the history must not disturb the position.
	testutil.AssertEqual(t, p.Ply(), len(moves))
	testutil.AssertEqual(t, p.Turn(), chess.White)
}

func TestHistory_FromSetup(t *testing.T) {
	fen := "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"
	p, err := FromFEN(fen)
	testutil.AssertNoError(t, err)

	testutil.MustPlay(t, p, "e4", "Kd7", "e5")
	testutil.AssertEqual(t, p.StartFEN(), fen)
	testutil.AssertEqual(t, p.History(), []string{"e4", "Kd7", "e5"})
}

func TestPlay(t *testing.T) {
	p := New()

	m, err := p.Play("e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.SAN, "e4")

	m, err = p.Play("e7e5")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.SAN, "e5")

	_, err = p.Play("Ke3")
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)

	var moveErr *chesserrors.MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("Play() error = %T, want *MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.Ply, 3)
	testutil.AssertEqual(t, moveErr.MoveText, "Ke3")
	testutil.AssertEqual(t, moveErr.FEN, p.FEN())
}
