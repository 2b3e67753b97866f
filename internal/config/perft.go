package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth in plies; 0 disables perft
	Depth int

	// Divide reports the count below each root move
	Divide bool

	// Verify cross-checks the counts against the reference generator
	Verify bool

	// Workers is the number of goroutines used by Divide (0 = auto-detect)
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
// All fields use Go zero values, so perft is disabled by default.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{}
}

// Enabled reports whether a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth (%d) is negative: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("worker count (%d) is negative: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if (p.Divide || p.Verify) && p.Depth == 0 {
		return fmt.Errorf("divide and verify need a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
