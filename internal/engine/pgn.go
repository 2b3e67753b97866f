package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/validation"
)

// LoadPGN builds a position from a single game's PGN text: the FEN header
// sets the start when SetUp is present, every move token is replayed and
// the header tags are copied over.
func LoadPGN(text string) (*Position, error) {
	pgn, err := validation.ParsePGN(text)
	if err != nil {
		return nil, err
	}
	header := pgn.Header()

	start := InitialFEN
	if header[chess.SetupTag] != "" {
		if fen, ok := header[chess.FENTag]; ok {
			start = fen
		}
	}
	p, err := FromFEN(start)
	if err != nil {
		return nil, errors.Wrap(err, "FEN header")
	}

	for i, san := range pgn.Moves {
		if p.Move(san) == nil {
			return nil, &errors.MoveError{
				Err:      fmt.Errorf("no legal move matches: %w", errors.ErrIllegalMove),
				Ply:      i + 1,
				MoveText: san,
				FEN:      p.FEN(),
			}
		}
	}

	for _, tag := range pgn.Tags {
		p.SetHeader(tag.Name, tag.Value)
	}
	return p, nil
}

// ValidatePGN reports whether every move of the game text is legal.
func ValidatePGN(text string) bool {
	_, err := LoadPGN(text)
	return err == nil
}
