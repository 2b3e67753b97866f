package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// SAN returns the standard algebraic notation of a move in the current
// position, memoising it on the move.
func (p *Position) SAN(m *chess.Move) string {
	p.moveToSAN(m)
	return m.SAN
}

// moveToSAN computes the SAN of m, including the check or mate suffix found
// by trying the move.
func (p *Position) moveToSAN(m *chess.Move) {
	key := m.Key() + "|" + p.stateKey()
	if san, ok := p.sanCache[key]; ok {
		m.SAN = san
		return
	}

	var sb strings.Builder
	switch {
	case m.Flags.Has(chess.KsideCastle):
		sb.WriteString("O-O")
	case m.Flags.Has(chess.QsideCastle):
		sb.WriteString("O-O-O")
	default:
		if m.Piece.Kind != chess.Pawn {
			sb.WriteByte(m.Piece.Kind.Letter() - 'a' + 'A')
			sb.WriteString(p.disambiguator(m))
		}

		if m.IsCapture() {
			if m.Piece.Kind == chess.Pawn {
				sb.WriteByte(m.FromAlg()[0])
			}
			sb.WriteByte('x')
		}

		sb.WriteString(m.ToAlg())

		if m.Flags.Has(chess.Promotion) {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter() - 'a' + 'A')
		}
	}

	p.makeMove(m)
	if p.InCheck() {
		if len(p.GenerateMoves(AllMoves)) == 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	p.undoMove()

	san := sb.String()
	p.sanCache[key] = san
	m.SAN = san
}

// disambiguator distinguishes m from other legal moves of the same piece
// kind to the same square: the full origin square when others share both
// its rank and its file, the rank digit when one shares its file, and the
// file letter otherwise.
func (p *Position) disambiguator(m *chess.Move) string {
	ambiguities, sameRank, sameFile := 0, 0, 0

	for _, other := range p.GenerateMoves(AllMoves) {
		if other.Piece.Kind != m.Piece.Kind || other.From == m.From || other.To != m.To {
			continue
		}
		ambiguities++
		if other.From.Rank() == m.From.Rank() {
			sameRank++
		}
		if other.From.File() == m.From.File() {
			sameFile++
		}
	}

	if ambiguities == 0 {
		return ""
	}

	from := m.FromAlg()
	switch {
	case sameRank > 0 && sameFile > 0:
		return from
	case sameFile > 0:
		return from[1:]
	default:
		return from[:1]
	}
}
