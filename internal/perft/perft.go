// Package perft counts move-tree leaves for a position, splits the count
// per root move across a worker pool, and cross-checks the totals against
// an independent move generator.
package perft

import (
	"context"
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/validation"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Mismatch is a root move whose subtree count differs between the engine
// and the reference generator. A count of -1 means the move is missing on
// that side.
type Mismatch struct {
	Move      string `json:"move"` // Coordinate form, e.g. "e2e4"
	Engine    int64  `json:"engine"`
	Reference int64  `json:"reference"`
}

// Report is the outcome of Verify.
type Report struct {
	Engine     int64
	Reference  int64
	Mismatches []Mismatch
}

// OK reports whether the engine agreed with the reference on every root move.
func (r Report) OK() bool {
	return r.Engine == r.Reference && len(r.Mismatches) == 0
}

// Count returns the number of leaf nodes depth plies below fen.
func Count(fen string, depth int) (int64, error) {
	p, err := engine.FromFEN(fen)
	if err != nil {
		return 0, err
	}
	return p.Perft(depth), nil
}

// Divide returns the perft count below each legal root move, keyed by SAN.
// Root moves are counted concurrently, each on its own position, and the
// context is checked before every root move is started.
func Divide(ctx context.Context, fen string, depth, workers int) (map[string]int64, error) {
	p, err := engine.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64)
	if depth <= 0 {
		return counts, nil
	}

	moves := p.Moves()
	if len(moves) == 0 {
		return counts, nil
	}

	pool := worker.NewPoolWithOptions(countSubtree(ctx),
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)))
	pool.Start()

	for i, m := range moves {
		pool.Submit(worker.WorkItem{FEN: fen, Move: m.SAN, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
			}
			pool.Stop()
			continue
		}
		counts[r.Move] = r.Nodes
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func countSubtree(ctx context.Context) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Index: item.Index, Move: item.Move}
		if err := ctx.Err(); err != nil {
			result.Error = err
			return result
		}

		p, err := engine.FromFEN(item.FEN)
		if err != nil {
			result.Error = err
			return result
		}
		if p.Move(item.Move) == nil {
			result.Error = &errors.MoveError{
				Err:      errors.ErrIllegalMove,
				Ply:      1,
				MoveText: item.Move,
				FEN:      item.FEN,
			}
			return result
		}
		result.Nodes = p.Perft(item.Depth)
		return result
	}
}

// DivideUCI is Divide re-keyed by the coordinate form of each root move.
func DivideUCI(ctx context.Context, fen string, depth, workers int) (map[string]int64, error) {
	bySAN, err := Divide(ctx, fen, depth, workers)
	if err != nil {
		return nil, err
	}
	p, err := engine.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	byUCI := make(map[string]int64, len(bySAN))
	for _, m := range p.Moves() {
		if n, ok := bySAN[m.SAN]; ok {
			byUCI[m.UCI()] = n
		}
	}
	return byUCI, nil
}

// Reference counts leaf nodes with the dragontoothmg generator.
func Reference(fen string, depth int) (int64, error) {
	b, err := referenceBoard(fen)
	if err != nil {
		return 0, err
	}
	return referencePerft(b, depth), nil
}

// ReferenceDivide returns the dragontoothmg count below each root move,
// keyed by coordinate form.
func ReferenceDivide(fen string, depth int) (map[string]int64, error) {
	b, err := referenceBoard(fen)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64)
	if depth <= 0 {
		return counts, nil
	}
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		counts[m.String()] = referencePerft(b, depth-1)
		unapply()
	}
	return counts, nil
}

// referenceBoard parses fen for dragontoothmg. The string is validated
// first because the parser panics on malformed input; positions it still
// cannot represent, such as a missing king, are reported as errors.
func referenceBoard(fen string) (b *dragontoothmg.Board, err error) {
	if err := validation.Check(fen); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = errors.Wrapf(errors.ErrInvalidFEN, "reference generator rejected %q: %v", fen, r)
		}
	}()
	board := dragontoothmg.ParseFen(fen)
	return &board, nil
}

func referencePerft(b *dragontoothmg.Board, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

// Compare lists the root moves, in coordinate order, whose counts differ
// between two divides keyed by coordinate form.
func Compare(got, want map[string]int64) []Mismatch {
	keys := maps.Keys(got)
	for k := range want {
		if _, ok := got[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var mismatches []Mismatch
	for _, k := range keys {
		g, gok := got[k]
		w, wok := want[k]
		if !gok {
			g = -1
		}
		if !wok {
			w = -1
		}
		if g != w {
			mismatches = append(mismatches, Mismatch{Move: k, Engine: g, Reference: w})
		}
	}
	return mismatches
}

// Verify divides fen with both generators and compares the results.
func Verify(ctx context.Context, fen string, depth, workers int) (Report, error) {
	got, err := DivideUCI(ctx, fen, depth, workers)
	if err != nil {
		return Report{}, err
	}
	want, err := ReferenceDivide(fen, depth)
	if err != nil {
		return Report{}, err
	}

	report := Report{Mismatches: Compare(got, want)}
	if depth <= 0 {
		report.Engine, report.Reference = 1, 1
		return report, nil
	}
	for _, n := range got {
		report.Engine += n
	}
	for _, n := range want {
		report.Reference += n
	}
	return report, nil
}

// String renders a mismatch for logs.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: engine %d, reference %d", m.Move, m.Engine, m.Reference)
}
