package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveInput selects a move by its squares. Promotion is a piece letter
// such as "q", and only constrains promotion moves.
type MoveInput struct {
	From      string
	To        string
	Promotion string
}

// ParseMoveInput reads the coordinate form "e2e4" or "e7e8q". The
// promotion letter may be given in either case.
func ParseMoveInput(s string) (MoveInput, bool) {
	if len(s) != 4 && len(s) != 5 {
		return MoveInput{}, false
	}
	in := MoveInput{From: s[0:2], To: s[2:4], Promotion: strings.ToLower(s[4:])}
	if _, ok := chess.ParseSquare(in.From); !ok {
		return MoveInput{}, false
	}
	if _, ok := chess.ParseSquare(in.To); !ok {
		return MoveInput{}, false
	}
	return in, true
}

// Move plays the legal move whose SAN equals san exactly and returns it,
// or returns nil and leaves the position unchanged when none matches.
func (p *Position) Move(san string) *chess.Move {
	var selected *chess.Move
	for _, m := range p.GenerateMoves(AllMoves) {
		p.moveToSAN(m)
		if m.SAN == san {
			selected = m
			break
		}
	}
	return p.play(selected)
}

// MoveFrom plays the legal move matching the input squares. A promotion
// move matches only when the promotion letters agree, ignoring case; other
// moves ignore the promotion field. It returns nil when no move matches.
func (p *Position) MoveFrom(in MoveInput) *chess.Move {
	promotion := strings.ToLower(in.Promotion)
	var selected *chess.Move
	for _, m := range p.GenerateMoves(AllMoves) {
		if m.Promotion != chess.NoPiece && promotion != string(m.Promotion.Letter()) {
			continue
		}
		if m.FromAlg() == in.From && m.ToAlg() == in.To {
			selected = m
			break
		}
	}
	return p.play(selected)
}

// Play applies a move given in SAN or coordinate form and reports an
// *errors.MoveError wrapping ErrIllegalMove when nothing matches.
func (p *Position) Play(text string) (*chess.Move, error) {
	if m := p.Move(text); m != nil {
		return m, nil
	}
	if in, ok := ParseMoveInput(text); ok {
		if m := p.MoveFrom(in); m != nil {
			return m, nil
		}
	}
	return nil, &errors.MoveError{
		Err:      fmt.Errorf("no legal move matches: %w", errors.ErrIllegalMove),
		Ply:      p.history.Len() + 1,
		MoveText: text,
		FEN:      p.FEN(),
	}
}

func (p *Position) play(m *chess.Move) *chess.Move {
	if m == nil {
		return nil
	}
	p.moveToSAN(m)
	p.makeMove(m)
	return m
}
