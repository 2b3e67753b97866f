package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputConfig holds settings for the position report.
type OutputConfig struct {
	// JSONFormat enables a JSON report instead of text
	JSONFormat bool

	// UCIMoves lists legal moves in coordinate form instead of SAN
	UCIMoves bool

	// KeepMoves controls whether the legal move list is included
	KeepMoves bool

	// KeepHistory controls whether the played moves are included
	KeepHistory bool

	// KeepHeaders controls whether header tags are included
	KeepHeaders bool

	// ExportPGN writes the game as PGN instead of a position report
	ExportPGN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		KeepMoves:   true,
		KeepHistory: true,
		KeepHeaders: true,
	}
}

// Validate checks that the output options do not conflict.
func (o *OutputConfig) Validate() error {
	if o.ExportPGN && o.JSONFormat {
		return fmt.Errorf("PGN export and JSON output are exclusive: %w", errors.ErrInvalidConfig)
	}
	return nil
}
