// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	fenFlag   = flag.String("fen", "", "Start position as FEN (default: standard start)")
	movesFlag = flag.String("moves", "", "Moves to apply, in SAN or coordinate form (e.g. \"e4 e5 Nf3\" or \"e2e4 e7e8q\")")
	pgnFile   = flag.String("pgn", "", "Load the start position and moves from a PGN file")
	validate  = flag.Bool("validate", false, "Print the FEN validation code and message")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	uciMoves   = flag.Bool("uci", false, "List legal moves in coordinate form")
	exportPGN  = flag.Bool("export", false, "Write the game as PGN")
	noMoves    = flag.Bool("nomoves", false, "Don't list legal moves")
	noHistory  = flag.Bool("nohistory", false, "Don't list played moves")
	noHeaders  = flag.Bool("noheaders", false, "Don't list header tags")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count move-tree leaves to this depth")
	divide     = flag.Bool("divide", false, "Break the perft count down by root move")
	verify     = flag.Bool("verify", false, "Cross-check perft counts against the reference generator")
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Diagnostics
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=silent, 1=summary, 2=running commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyPositionFlags configures the start position and moves.
func applyPositionFlags(cfg *config.Config) {
	cfg.FEN = *fenFlag
	cfg.Moves = *movesFlag
	cfg.PGNFile = *pgnFile
	cfg.ValidateOnly = *validate
}

// applyOutputFlags configures report output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.UCIMoves = *uciMoves
	cfg.Output.ExportPGN = *exportPGN
	cfg.Output.KeepMoves = !*noMoves
	cfg.Output.KeepHistory = !*noHistory
	cfg.Output.KeepHeaders = !*noHeaders
}

// applyPerftFlags configures perft settings. A worker count of 0 uses one
// worker per CPU.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Verify = *verify
	cfg.Perft.Workers = *workers
	if cfg.Perft.Workers == 0 {
		cfg.Perft.Workers = runtime.NumCPU()
	}
}
