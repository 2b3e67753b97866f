package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFEN sets the start position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
	return b
}

// WithMoves sets the moves applied to the start position.
func (b *ConfigBuilder) WithMoves(moves string) *ConfigBuilder {
	b.cfg.Moves = moves
	return b
}

// WithPGNFile loads the start position and moves from a PGN file.
func (b *ConfigBuilder) WithPGNFile(path string) *ConfigBuilder {
	b.cfg.PGNFile = path
	return b
}

// WithPGNExport writes the game as PGN.
func (b *ConfigBuilder) WithPGNExport(enabled bool) *ConfigBuilder {
	b.cfg.Output.ExportPGN = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithUCIMoves lists legal moves in coordinate form.
func (b *ConfigBuilder) WithUCIMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.UCIMoves = enabled
	return b
}

// WithPerft sets the perft depth.
func (b *ConfigBuilder) WithPerft(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithDivide enables the per-move breakdown.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithVerify enables the reference cross-check.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Verify = enabled
	return b
}

// WithWorkers sets the divide worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// KeepMoves controls whether the legal move list is reported.
func (b *ConfigBuilder) KeepMoves(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepMoves = keep
	return b
}

// KeepHistory controls whether the move history is reported.
func (b *ConfigBuilder) KeepHistory(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepHistory = keep
	return b
}
