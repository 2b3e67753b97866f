package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/perft"
	"github.com/lgbarn/chessrules-go/internal/validation"
)

// errVerifyFailed reports that the engine and the reference generator
// disagreed. The mismatches themselves are in the report.
var errVerifyFailed = fmt.Errorf("perft counts differ from the reference generator")

// logf writes to the log file when the verbosity is at least level.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity >= level && cfg.LogFile != nil {
		fmt.Fprintf(cfg.LogFile, format, args...)
	}
}

// run executes one invocation: validation, perft, PGN export or the
// position report.
func run(ctx context.Context, cfg *config.Config) error {
	if cfg.ValidateOnly {
		return runValidate(cfg)
	}

	p, err := loadPosition(cfg)
	if err != nil {
		return err
	}

	if cfg.Output.ExportPGN {
		output.OutputPGN(p, cfg.OutputFile)
		return nil
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	var runErr error
	if cfg.Perft.Enabled() {
		result, err := runPerft(ctx, cfg, p.FEN())
		if err != nil {
			return err
		}
		if err := w.WritePerft(result); err != nil {
			return err
		}
		if result.Verify != nil && !result.Verify.OK() {
			runErr = errVerifyFailed
		}
	} else if err := w.WritePosition(p); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}
	return runErr
}

// startFEN is the configured FEN or the standard start.
func startFEN(cfg *config.Config) string {
	if cfg.FEN == "" {
		return engine.InitialFEN
	}
	return cfg.FEN
}

// runValidate writes the validation code of the start FEN.
func runValidate(cfg *config.Config) error {
	fen := startFEN(cfg)
	code := validation.ValidateFEN(fen)
	logf(cfg, 2, "Validated %q: code %d\n", fen, code)

	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := w.WriteValidation(fen, int(code), code.Message()); err != nil {
		return err
	}
	return w.Close()
}

// loadPosition builds the position from the PGN file or the FEN, then
// applies the configured moves.
func loadPosition(cfg *config.Config) (*engine.Position, error) {
	var p *engine.Position
	if cfg.PGNFile != "" {
		data, err := os.ReadFile(cfg.PGNFile)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", cfg.PGNFile)
		}
		p, err = engine.LoadPGN(string(data))
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s", cfg.PGNFile)
		}
		logf(cfg, 2, "Loaded %d plies from %s\n", p.Ply(), cfg.PGNFile)
	} else {
		var err error
		p, err = engine.FromFEN(startFEN(cfg))
		if err != nil {
			return nil, err
		}
	}

	for _, text := range moveTokens(cfg.Moves) {
		m, err := p.Play(text)
		if err != nil {
			return nil, err
		}
		logf(cfg, 2, "Played %s\n", m.SAN)
	}
	return p, nil
}

// moveTokens splits a move list, dropping move numbers such as "1." and
// "12...".
func moveTokens(text string) []string {
	var tokens []string
	for _, tok := range strings.Fields(text) {
		if i := strings.LastIndexByte(tok, '.'); i >= 0 {
			tok = tok[i+1:]
		}
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// runPerft counts, divides and verifies as configured.
func runPerft(ctx context.Context, cfg *config.Config, fen string) (*output.PerftResult, error) {
	start := time.Now()
	pc := cfg.Perft
	result := &output.PerftResult{Depth: pc.Depth}

	if pc.Verify {
		report, err := perft.Verify(ctx, fen, pc.Depth, pc.Workers)
		if err != nil {
			return nil, err
		}
		result.Nodes = report.Engine
		result.Verify = &report
		for _, m := range report.Mismatches {
			logf(cfg, 1, "Mismatch %s\n", m)
		}
	}

	if pc.Divide {
		counts, err := perft.Divide(ctx, fen, pc.Depth, pc.Workers)
		if err != nil {
			return nil, err
		}
		result.Divide = counts
		if !pc.Verify {
			for _, n := range counts {
				result.Nodes += n
			}
		}
	}

	if !pc.Verify && !pc.Divide {
		n, err := perft.Count(fen, pc.Depth)
		if err != nil {
			return nil, err
		}
		result.Nodes = n
	}

	elapsed := time.Since(start)
	logf(cfg, 1, "perft(%d): %d nodes in %v\n", pc.Depth, result.Nodes, elapsed.Round(time.Millisecond))
	return result, nil
}
