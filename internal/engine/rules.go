package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// DrawRuleResult reports which draw conditions hold in the current position.
type DrawRuleResult struct {
	// FiftyMoves is true once 100 half-moves have passed without a pawn
	// move or capture.
	FiftyMoves bool

	Stalemate bool

	InsufficientMaterial bool

	// ThreefoldRepetition is true once any board placement has been
	// reached three times.
	ThreefoldRepetition bool
}

// Any reports whether at least one draw condition holds.
func (r DrawRuleResult) Any() bool {
	return r.FiftyMoves || r.Stalemate || r.InsufficientMaterial || r.ThreefoldRepetition
}

// AnalyzeDrawRules evaluates every draw condition.
func (p *Position) AnalyzeDrawRules() DrawRuleResult {
	return DrawRuleResult{
		FiftyMoves:           p.HalfMovesExceeded(),
		Stalemate:            p.InStalemate(),
		InsufficientMaterial: p.InsufficientMaterial(),
		ThreefoldRepetition:  p.InThreefoldRepetition(),
	}
}

// InsufficientMaterial reports bare kings, a single minor piece against a
// bare king, or kings with any number of bishops all standing on squares
// of one colour.
func (p *Position) InsufficientMaterial() bool {
	var pieces [chess.King + 1]int
	var bishops []int
	numPieces := 0
	sqColour := 0

	for sq := chess.A8; sq <= chess.H1; sq++ {
		sqColour = (sqColour + 1) % 2
		if !sq.OnBoard() {
			sq += 7
			continue
		}

		piece := p.board.Get(sq)
		if piece.IsEmpty() {
			continue
		}
		pieces[piece.Kind]++
		if piece.Kind == chess.Bishop {
			bishops = append(bishops, sqColour)
		}
		numPieces++
	}

	// k vs k
	if numPieces == 2 {
		return true
	}

	// k vs kn, k vs kb
	if numPieces == 3 && (pieces[chess.Bishop] == 1 || pieces[chess.Knight] == 1) {
		return true
	}

	// kings plus bishops, all on one square colour
	if numPieces == pieces[chess.Bishop]+2 {
		sum := 0
		for _, c := range bishops {
			sum += c
		}
		if sum == 0 || sum == len(bishops) {
			return true
		}
	}

	return false
}

// InThreefoldRepetition reports whether any board placement recorded in the
// history has occurred three times.
func (p *Position) InThreefoldRepetition() bool {
	seen := make(map[string]int)
	for _, entry := range p.history.Entries() {
		seen[entry.Position]++
		if seen[entry.Position] >= 3 {
			return true
		}
	}
	return false
}

// HalfMovesExceeded reports whether the fifty-move rule applies.
func (p *Position) HalfMovesExceeded() bool {
	return p.halfMoves >= 100
}

// InDraw reports the fifty-move rule, stalemate, insufficient material or
// threefold repetition.
func (p *Position) InDraw() bool {
	return p.HalfMovesExceeded() ||
		p.InStalemate() ||
		p.InsufficientMaterial() ||
		p.InThreefoldRepetition()
}

// GameOver reports a draw or checkmate.
func (p *Position) GameOver() bool {
	return p.InDraw() || p.InCheckmate()
}
