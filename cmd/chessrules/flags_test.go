package main

import (
	"runtime"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyPositionFlags
// ---------------------------------------------------------------------------

func TestApplyPositionFlags(t *testing.T) {
	defer saveRestoreString(fenFlag, "8/8/8/8/8/8/8/K6k w - - 0 1")()
	defer saveRestoreString(movesFlag, "Kb1")()
	defer saveRestoreString(pgnFile, "game.pgn")()
	defer saveRestoreBool(validate, true)()

	cfg := config.NewConfig()
	applyPositionFlags(cfg)

	if cfg.FEN != "8/8/8/8/8/8/8/K6k w - - 0 1" {
		t.Errorf("FEN = %q", cfg.FEN)
	}
	if cfg.Moves != "Kb1" {
		t.Errorf("Moves = %q; want Kb1", cfg.Moves)
	}
	if cfg.PGNFile != "game.pgn" {
		t.Errorf("PGNFile = %q; want game.pgn", cfg.PGNFile)
	}
	if !cfg.ValidateOnly {
		t.Error("ValidateOnly should be true")
	}
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	t.Run("defaults keep everything", func(t *testing.T) {
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.JSONFormat || cfg.Output.UCIMoves || cfg.Output.ExportPGN {
			t.Errorf("Output = %+v; want text report", cfg.Output)
		}
		if !cfg.Output.KeepMoves || !cfg.Output.KeepHistory || !cfg.Output.KeepHeaders {
			t.Errorf("Output = %+v; want all sections kept", cfg.Output)
		}
	})

	t.Run("negative flags drop sections", func(t *testing.T) {
		defer saveRestoreBool(noMoves, true)()
		defer saveRestoreBool(noHistory, true)()
		defer saveRestoreBool(noHeaders, true)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.KeepMoves || cfg.Output.KeepHistory || cfg.Output.KeepHeaders {
			t.Errorf("Output = %+v; want sections dropped", cfg.Output)
		}
	})

	t.Run("json and uci", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreBool(uciMoves, true)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if !cfg.Output.JSONFormat || !cfg.Output.UCIMoves {
			t.Errorf("Output = %+v", cfg.Output)
		}
	})
}

// ---------------------------------------------------------------------------
// applyPerftFlags
// ---------------------------------------------------------------------------

func TestApplyPerftFlags(t *testing.T) {
	tests := []struct {
		name        string
		workers     int
		wantWorkers int
	}{
		{"explicit workers", 3, 3},
		{"zero uses NumCPU", 0, runtime.NumCPU()},
		{"negative kept for validation", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(perftDepth, 4)()
			defer saveRestoreBool(divide, true)()
			defer saveRestoreBool(verify, true)()
			defer saveRestoreInt(workers, tt.workers)()

			cfg := config.NewConfig()
			applyPerftFlags(cfg)
			if cfg.Perft.Depth != 4 || !cfg.Perft.Divide || !cfg.Perft.Verify {
				t.Errorf("Perft = %+v", cfg.Perft)
			}
			if cfg.Perft.Workers != tt.wantWorkers {
				t.Errorf("Workers = %d; want %d", cfg.Perft.Workers, tt.wantWorkers)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Verbosity(t *testing.T) {
	t.Run("verbosity flag", func(t *testing.T) {
		defer saveRestoreInt(verbosity, 2)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != 2 {
			t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
		}
	})

	t.Run("quiet wins", func(t *testing.T) {
		defer saveRestoreInt(verbosity, 2)()
		defer saveRestoreBool(quiet, true)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != 0 {
			t.Errorf("Verbosity = %d; want 0", cfg.Verbosity)
		}
	})
}
