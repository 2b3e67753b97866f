package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// JSONPosition represents a position report in JSON format.
type JSONPosition struct {
	FEN        string            `json:"fen"`
	Turn       string            `json:"turn"` // "white" or "black"
	MoveNumber int               `json:"moveNumber"`
	HalfMoves  int               `json:"halfMoves"`
	Castling   string            `json:"castling"`
	EnPassant  string            `json:"enPassant,omitempty"`
	InCheck    bool              `json:"inCheck"`
	Checkmate  bool              `json:"checkmate"`
	Stalemate  bool              `json:"stalemate"`
	Draw       JSONDraw          `json:"draw"`
	GameOver   bool              `json:"gameOver"`
	Result     string            `json:"result"`
	Headers    map[string]string `json:"headers,omitempty"`
	Moves      []string          `json:"moves,omitempty"`
	History    []JSONMove        `json:"history,omitempty"`
}

// JSONDraw lists the draw conditions that hold.
type JSONDraw struct {
	FiftyMoves           bool `json:"fiftyMoves"`
	InsufficientMaterial bool `json:"insufficientMaterial"`
	ThreefoldRepetition  bool `json:"threefoldRepetition"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Flags      string `json:"flags"`
}

// JSONPerft represents a perft run in JSON format.
type JSONPerft struct {
	Depth      int              `json:"depth"`
	Nodes      int64            `json:"nodes"`
	Divide     map[string]int64 `json:"divide,omitempty"`
	Reference  *int64           `json:"reference,omitempty"`
	Mismatches []perft.Mismatch `json:"mismatches,omitempty"`
}

// JSONValidation represents a FEN validation result in JSON format.
type JSONValidation struct {
	FEN     string `json:"fen"`
	Valid   bool   `json:"valid"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSONReport is the document written by JSONWriter.
type JSONReport struct {
	Validation *JSONValidation `json:"validation,omitempty"`
	Position   *JSONPosition   `json:"position,omitempty"`
	Perft      *JSONPerft      `json:"perft,omitempty"`
}

// OutputPositionJSON outputs a single position report in JSON format.
func OutputPositionJSON(p *engine.Position, cfg *config.Config, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONReport{Position: PositionToJSON(p, cfg)})
}

// PositionToJSON converts a position to JSON format.
func PositionToJSON(p *engine.Position, cfg *config.Config) *JSONPosition {
	fields := strings.Fields(p.FEN())
	draw := p.AnalyzeDrawRules()

	jp := &JSONPosition{
		FEN:        p.FEN(),
		Turn:       colourName(p.Turn()),
		MoveNumber: p.MoveNumber(),
		HalfMoves:  p.HalfMoves(),
		Castling:   fields[2],
		InCheck:    p.InCheck(),
		Checkmate:  p.InCheckmate(),
		Stalemate:  draw.Stalemate,
		Draw: JSONDraw{
			FiftyMoves:           draw.FiftyMoves,
			InsufficientMaterial: draw.InsufficientMaterial,
			ThreefoldRepetition:  draw.ThreefoldRepetition,
		},
		GameOver: p.GameOver(),
		Result:   p.Result(),
	}
	if fields[3] != "-" {
		jp.EnPassant = fields[3]
	}

	if cfg.Output.KeepHeaders && len(p.HeaderKeys()) > 0 {
		jp.Headers = p.Headers()
	}
	if cfg.Output.KeepMoves {
		jp.Moves = legalMoves(p, cfg.Output.UCIMoves)
	}
	if cfg.Output.KeepHistory {
		jp.History = historyToJSON(p)
	}
	return jp
}

// historyToJSON converts the played moves to JSON format.
func historyToJSON(p *engine.Position) []JSONMove {
	moves := p.HistoryMoves()
	entries := p.Entries()
	if len(moves) == 0 {
		return nil
	}

	result := make([]JSONMove, 0, len(moves))
	for i, m := range moves {
		jm := JSONMove{
			Color: colourName(m.Turn),
			SAN:   m.SAN,
			UCI:   m.UCI(),
			From:  m.FromAlg(),
			To:    m.ToAlg(),
			Piece: pieceTypeName(m.Piece.Kind),
			Flags: m.Flags.String(),
		}
		if i < len(entries) {
			jm.MoveNumber = entries[i].MoveNumber
		}
		if m.IsCapture() {
			jm.Captured = pieceTypeName(m.Captured)
		}
		if m.Promotion != chess.NoPiece {
			jm.Promotion = pieceTypeName(m.Promotion)
		}
		result = append(result, jm)
	}
	return result
}

// PerftToJSON converts a perft result to JSON format.
func PerftToJSON(r *PerftResult) *JSONPerft {
	jp := &JSONPerft{
		Depth:  r.Depth,
		Nodes:  r.Nodes,
		Divide: r.Divide,
	}
	if r.Verify != nil {
		ref := r.Verify.Reference
		jp.Reference = &ref
		jp.Mismatches = r.Verify.Mismatches
	}
	return jp
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(k chess.PieceKind) string {
	switch k {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
