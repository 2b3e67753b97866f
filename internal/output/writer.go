package output

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// PerftResult is a finished perft run. Divide and Verify are nil when not
// requested.
type PerftResult struct {
	Depth  int
	Nodes  int64
	Divide map[string]int64
	Verify *perft.Report
}

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteValidation writes a FEN validation result.
	WriteValidation(fen string, code int, message string) error

	// WritePosition writes the report for a position.
	WritePosition(p *engine.Position) error

	// WritePerft writes a perft result.
	WritePerft(r *PerftResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by the configuration.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes human readable reports.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteValidation writes the code and its message.
func (tw *TextWriter) WriteValidation(fen string, code int, message string) error {
	_, err := fmt.Fprintf(tw.w, "%d: %s\n", code, message)
	return err
}

// WritePosition writes the text position report.
func (tw *TextWriter) WritePosition(p *engine.Position) error {
	OutputPosition(p, tw.cfg, tw.w)
	return nil
}

// WritePerft writes the node count, the per-move breakdown sorted by move,
// and the reference comparison.
func (tw *TextWriter) WritePerft(r *PerftResult) error {
	if r.Divide != nil {
		keys := maps.Keys(r.Divide)
		slices.Sort(keys)
		for _, k := range keys {
			if _, err := fmt.Fprintf(tw.w, "%s: %d\n", k, r.Divide[k]); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(tw.w, "perft(%d) = %d\n", r.Depth, r.Nodes); err != nil {
		return err
	}

	if r.Verify == nil {
		return nil
	}
	if r.Verify.OK() {
		_, err := fmt.Fprintf(tw.w, "reference = %d: OK\n", r.Verify.Reference)
		return err
	}
	if _, err := fmt.Fprintf(tw.w, "reference = %d: MISMATCH\n", r.Verify.Reference); err != nil {
		return err
	}
	for _, m := range r.Verify.Mismatches {
		if _, err := fmt.Fprintf(tw.w, "  %s\n", m); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It collects the parts of one run and writes them as a single object on
// Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	report *JSONReport
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

func (jw *JSONWriter) pending() *JSONReport {
	if jw.report == nil {
		jw.report = &JSONReport{}
	}
	return jw.report
}

// WriteValidation buffers a validation result.
func (jw *JSONWriter) WriteValidation(fen string, code int, message string) error {
	jw.pending().Validation = &JSONValidation{
		FEN:     fen,
		Valid:   code == 0,
		Code:    code,
		Message: message,
	}
	return nil
}

// WritePosition converts the position now, so later moves do not change the
// buffered report.
func (jw *JSONWriter) WritePosition(p *engine.Position) error {
	jw.pending().Position = PositionToJSON(p, jw.cfg)
	return nil
}

// WritePerft buffers a perft result.
func (jw *JSONWriter) WritePerft(r *PerftResult) error {
	jw.pending().Perft = PerftToJSON(r)
	return nil
}

// Flush writes the buffered report.
func (jw *JSONWriter) Flush() error {
	if jw.report == nil {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(jw.report)

	// Clear buffer after writing
	jw.report = nil

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
