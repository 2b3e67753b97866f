package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// parseFEN fills an already cleared position from a validated FEN string.
func parseFEN(p *Position, fen string) {
	parts := strings.Split(fen, " ")

	parsePiecePositions(p, parts[0])
	p.turn, _ = chess.ParseColour(parts[1])
	parseCastlingRights(p, parts[2])
	parseEnPassant(p, parts[3])
	p.halfMoves, _ = strconv.Atoi(parts[4])
	p.moveNumber, _ = strconv.Atoi(parts[5])
}

// parsePiecePositions walks the placement field from a8 to h1.
func parsePiecePositions(p *Position, positions string) {
	sq := chess.A8
	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			sq += 8
		case c >= '1' && c <= '8':
			sq += chess.Square(c - '0')
		default:
			if piece, ok := chess.ParsePiece(c); ok {
				p.put(piece, sq)
			}
			sq++
		}
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(p *Position, field string) {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			p.castling[chess.White] |= chess.KsideCastle
		case 'Q':
			p.castling[chess.White] |= chess.QsideCastle
		case 'k':
			p.castling[chess.Black] |= chess.KsideCastle
		case 'q':
			p.castling[chess.Black] |= chess.QsideCastle
		}
	}
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(p *Position, field string) {
	p.epSquare = chess.NoSquare
	if sq, ok := chess.ParseSquare(field); ok {
		p.epSquare = sq
	}
}

// FEN serializes the position.
func (p *Position) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, p.board)
	sb.WriteByte(' ')
	sb.WriteByte(p.turn.Letter())
	sb.WriteByte(' ')
	writeCastlingRights(&sb, p.castling)
	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.Algebraic())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.moveNumber))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	empty := 0
	for sq := chess.A8; sq <= chess.H1; sq++ {
		piece := board.Get(sq)
		if piece.IsEmpty() {
			empty++
		} else {
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.ASCII())
		}

		if (sq+1)&0x88 != 0 {
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
			}
			if sq != chess.H1 {
				sb.WriteByte('/')
			}
			empty = 0
			sq += 8
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, castling chess.Castling) {
	start := sb.Len()
	if castling[chess.White].Has(chess.KsideCastle) {
		sb.WriteByte('K')
	}
	if castling[chess.White].Has(chess.QsideCastle) {
		sb.WriteByte('Q')
	}
	if castling[chess.Black].Has(chess.KsideCastle) {
		sb.WriteByte('k')
	}
	if castling[chess.Black].Has(chess.QsideCastle) {
		sb.WriteByte('q')
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}
