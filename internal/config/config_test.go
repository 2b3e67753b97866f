package config

import (
	"bytes"
	"errors"
	"os"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.UCIMoves {
		t.Error("UCIMoves should be false by default")
	}
	if !cfg.KeepMoves {
		t.Error("KeepMoves should be true by default")
	}
	if !cfg.KeepHistory {
		t.Error("KeepHistory should be true by default")
	}
	if !cfg.KeepHeaders {
		t.Error("KeepHeaders should be true by default")
	}
}

// TestPerftConfig_Defaults verifies perft is disabled by default
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Enabled() {
		t.Error("perft should be disabled by default")
	}
	if cfg.Divide || cfg.Verify {
		t.Error("Divide and Verify should be false by default")
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
}

func TestPerftConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PerftConfig
		wantErr bool
	}{
		{
			name:    "empty config is valid",
			cfg:     PerftConfig{},
			wantErr: false,
		},
		{
			name:    "depth with divide",
			cfg:     PerftConfig{Depth: 3, Divide: true, Workers: 4},
			wantErr: false,
		},
		{
			name:    "negative depth",
			cfg:     PerftConfig{Depth: -1},
			wantErr: true,
		},
		{
			name:    "negative workers",
			cfg:     PerftConfig{Depth: 2, Workers: -2},
			wantErr: true,
		},
		{
			name:    "verify without depth",
			cfg:     PerftConfig{Verify: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.OutputFile != os.Stdout {
		t.Error("OutputFile should default to stdout")
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to stderr")
	}
	if !cfg.Output.KeepMoves {
		t.Error("Output.KeepMoves should be true")
	}
	if cfg.Perft.Enabled() {
		t.Error("Perft should be disabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithMoves("Kb1").
		WithJSONOutput(true).
		WithUCIMoves(true).
		WithPerft(3).
		WithDivide(true).
		WithVerify(true).
		WithWorkers(2).
		WithOutput(out).
		WithVerbosity(2).
		KeepHistory(false).
		Build()

	if cfg.FEN != "8/8/8/8/8/8/8/K6k w - - 0 1" || cfg.Moves != "Kb1" {
		t.Errorf("FEN, Moves = %q, %q", cfg.FEN, cfg.Moves)
	}
	if !cfg.Output.JSONFormat || !cfg.Output.UCIMoves {
		t.Error("Output flags should be set")
	}
	if cfg.Output.KeepHistory {
		t.Error("KeepHistory should be false")
	}
	if cfg.Perft.Depth != 3 || !cfg.Perft.Divide || !cfg.Perft.Verify || cfg.Perft.Workers != 2 {
		t.Errorf("Perft = %+v", cfg.Perft)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfig_ValidateRejectsBadPerft(t *testing.T) {
	cfg := NewConfigBuilder().WithDivide(true).Build()
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}

func TestOutputConfig_Validate(t *testing.T) {
	cfg := NewConfigBuilder().WithPGNExport(true).Build()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	cfg = NewConfigBuilder().WithPGNExport(true).WithJSONOutput(true).Build()
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}
