// Package output formats position reports, perft results and single-game
// PGN for the chessrules command.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// DefaultLineLength is the wrap width of the text report's move lists.
const DefaultLineLength = 80

// OutputWriter writes space separated tokens, starting a new line when the
// next token would pass maxLineLength. A maxLineLength of 0 never wraps.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength < 0 {
		maxLineLength = 0
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputPosition writes the text report for a position.
func OutputPosition(p *engine.Position, cfg *config.Config, w io.Writer) {
	fields := strings.Fields(p.FEN())

	fmt.Fprintf(w, "FEN: %s\n", p.FEN())
	fmt.Fprintf(w, "Turn: %s\n", colourName(p.Turn()))
	fmt.Fprintf(w, "Move: %d (half-moves %d)\n", p.MoveNumber(), p.HalfMoves())
	fmt.Fprintf(w, "Castling: %s\n", fields[2])
	fmt.Fprintf(w, "En passant: %s\n", fields[3])
	fmt.Fprintf(w, "Status: %s\n", status(p))
	fmt.Fprintf(w, "Result: %s\n", p.Result())

	if cfg.Output.KeepHeaders {
		for _, key := range p.HeaderKeys() {
			fmt.Fprintf(w, "[%s \"%s\"]\n", key, escapeTagValue(p.Header(key)))
		}
	}

	if cfg.Output.KeepMoves {
		moves := legalMoves(p, cfg.Output.UCIMoves)
		ow := NewOutputWriter(w, DefaultLineLength)
		ow.WriteNoSpace(fmt.Sprintf("Moves (%d):", len(moves)))
		for _, m := range moves {
			ow.Write(m)
		}
		ow.NewLine()
	}

	if cfg.Output.KeepHistory && p.Ply() > 0 {
		ow := NewOutputWriter(w, DefaultLineLength)
		ow.WriteNoSpace("History:")
		for _, tok := range historyTokens(p) {
			ow.Write(tok)
		}
		ow.NewLine()
	}
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// status summarises the terminal state of the side to move.
func status(p *engine.Position) string {
	switch {
	case p.InCheckmate():
		return "checkmate"
	case p.InStalemate():
		return "stalemate"
	}

	var reasons []string
	draw := p.AnalyzeDrawRules()
	if draw.InsufficientMaterial {
		reasons = append(reasons, "insufficient material")
	}
	if draw.ThreefoldRepetition {
		reasons = append(reasons, "threefold repetition")
	}
	if draw.FiftyMoves {
		reasons = append(reasons, "fifty-move rule")
	}

	s := "in play"
	if len(reasons) > 0 {
		s = "draw (" + strings.Join(reasons, ", ") + ")"
	}
	if p.InCheck() {
		s = "check, " + s
	}
	return s
}

// legalMoves lists the legal moves in SAN or coordinate form.
func legalMoves(p *engine.Position, uci bool) []string {
	if !uci {
		return p.SANs()
	}
	moves := p.Moves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}

// historyTokens numbers the played moves: "1. e4 e5 2. Nf3", or "1... e5"
// when the game starts with black to move.
func historyTokens(p *engine.Position) []string {
	moves := p.HistoryMoves()
	entries := p.Entries()

	var tokens []string
	for i, m := range moves {
		if i >= len(entries) {
			break
		}
		e := entries[i]
		if e.Turn == chess.White {
			tokens = append(tokens, fmt.Sprintf("%d.", e.MoveNumber))
		} else if i == 0 {
			tokens = append(tokens, fmt.Sprintf("%d...", e.MoveNumber))
		}
		tokens = append(tokens, m.SAN)
	}
	return tokens
}

// OutputPGN writes the game as PGN: the seven tag roster (with "?" for
// missing values), the remaining headers, and the movetext on one line.
func OutputPGN(p *engine.Position, w io.Writer) {
	for _, tag := range chess.SevenTagRoster {
		value := p.Header(tag)
		if tag == chess.ResultTag {
			value = pgnResult(p)
		}
		if value == "" {
			value = "?"
		}
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}
	for _, tag := range p.HeaderKeys() {
		if !chess.IsSevenTagRosterTag(tag) {
			fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(p.Header(tag)))
		}
	}
	fmt.Fprintln(w)

	ow := NewOutputWriter(w, 0)
	for _, tok := range historyTokens(p) {
		ow.Write(tok)
	}
	ow.Write(pgnResult(p))
	ow.NewLine()
}

// pgnResult prefers a decided result over the header.
func pgnResult(p *engine.Position) string {
	if r := p.Result(); r != "*" {
		return r
	}
	if r := p.Header(chess.ResultTag); r != "" {
		return r
	}
	return "*"
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// colourName returns "white" or "black".
func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
