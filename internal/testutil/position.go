package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// SANMover is anything that applies a move given in SAN and returns nil when
// the move is not legal.
type SANMover interface {
	Move(san string) *chess.Move
	FEN() string
}

// MustPlay applies each SAN move in order and stops the test at the first
// move that does not apply.
func MustPlay(t *testing.T, m SANMover, sans ...string) []*chess.Move {
	t.Helper()
	played := make([]*chess.Move, 0, len(sans))
	for i, san := range sans {
		mv := m.Move(san)
		if mv == nil {
			t.Fatalf("ply %d: move %q not legal in %s", i+1, san, m.FEN())
		}
		played = append(played, mv)
	}
	return played
}

// SplitMoves splits a space separated move list, dropping move numbers.
func SplitMoves(text string) []string {
	var moves []string
	for _, tok := range strings.Fields(text) {
		if i := strings.LastIndexByte(tok, '.'); i >= 0 {
			tok = tok[i+1:]
		}
		if tok != "" {
			moves = append(moves, tok)
		}
	}
	return moves
}
