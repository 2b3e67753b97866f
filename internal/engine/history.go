package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// StartFEN returns the position the game was set up from: the FEN header
// when SetUp is present, otherwise the standard start.
func (p *Position) StartFEN() string {
	if p.header.Get(chess.SetupTag) != "" && p.header.Has(chess.FENTag) {
		return p.header.Get(chess.FENTag)
	}
	return InitialFEN
}

// History returns the SAN of every move played, oldest first.
func (p *Position) History() []string {
	moves := p.HistoryMoves()
	sans := make([]string, len(moves))
	for i, m := range moves {
		sans[i] = m.SAN
	}
	return sans
}

// HistoryMoves replays the recorded moves from the start position and
// returns them with SAN and turn filled in.
func (p *Position) HistoryMoves() []*chess.Move {
	replay, err := FromFEN(p.StartFEN())
	if err != nil {
		return nil
	}

	var moves []*chess.Move
	for _, entry := range p.history.Entries() {
		in := MoveInput{From: entry.Move.FromAlg(), To: entry.Move.ToAlg()}
		if entry.Move.Flags.Has(chess.Promotion) {
			in.Promotion = string(entry.Move.Promotion.Letter())
		}
		m := replay.MoveFrom(in)
		if m == nil {
			break
		}
		moves = append(moves, m)
	}
	return moves
}
