// Package validation checks FEN position strings and splits PGN text into
// header pairs and move tokens. It holds no game state.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Code identifies the first FEN rule a string violates. OK means valid.
type Code int

const (
	OK Code = iota
	ErrFieldCount
	ErrMoveNumber
	ErrHalfMoves
	ErrEnPassantField
	ErrCastlingField
	ErrSideToMove
	ErrRowCount
	ErrConsecutiveDigits
	ErrInvalidPieceLetter
	ErrRowSize
	ErrIllegalEnPassant
)

var messages = [...]string{
	OK:                    "No errors.",
	ErrFieldCount:         "FEN string must contain six space-delimited fields.",
	ErrMoveNumber:         "6th field (move number) must be a positive integer.",
	ErrHalfMoves:          "5th field (half move counter) must be a non-negative integer.",
	ErrEnPassantField:     "4th field (en-passant square) is invalid.",
	ErrCastlingField:      "3rd field (castling availability) is invalid.",
	ErrSideToMove:         "2nd field (side to move) is invalid.",
	ErrRowCount:           "1st field (piece positions) does not contain 8 '/'-delimited rows.",
	ErrConsecutiveDigits:  "1st field (piece positions) is invalid [consecutive numbers].",
	ErrInvalidPieceLetter: "1st field (piece positions) is invalid [invalid piece].",
	ErrRowSize:            "1st field (piece positions) is invalid [row too large].",
	ErrIllegalEnPassant:   "Illegal en-passant square",
}

// Message returns the fixed human readable text for a code.
func (c Code) Message() string {
	if c < 0 || int(c) >= len(messages) {
		return "Unknown error."
	}
	return messages[c]
}

// Valid reports whether the code is OK.
func (c Code) Valid() bool {
	return c == OK
}

var (
	enPassantPattern = regexp.MustCompile(`^(-|[a-h][36])$`)
	castlingPattern  = regexp.MustCompile(`^(-|[KQkq]+)$`)
)

// ValidateFEN checks fen against the eleven structural rules in order and
// returns the code of the first one violated.
func ValidateFEN(fen string) Code {
	tokens := strings.Split(fen, " ")
	if len(tokens) != 6 {
		return ErrFieldCount
	}

	if n, ok := digits(tokens[5]); !ok || n <= 0 {
		return ErrMoveNumber
	}

	if _, ok := digits(tokens[4]); !ok {
		return ErrHalfMoves
	}

	if !enPassantPattern.MatchString(tokens[3]) {
		return ErrEnPassantField
	}

	if !castlingPattern.MatchString(tokens[2]) {
		return ErrCastlingField
	}

	if _, ok := chess.ParseColour(tokens[1]); !ok {
		return ErrSideToMove
	}

	rows := strings.Split(tokens[0], "/")
	if len(rows) != 8 {
		return ErrRowCount
	}
	for _, row := range rows {
		if code := validateRow(row); code != OK {
			return code
		}
	}

	// The en-passant rank must agree with the side to move: rank 3 is
	// rejected with white to move and rank 6 with black to move.
	if ep := tokens[3]; len(ep) > 1 {
		if (ep[1] == '3' && tokens[1] == "w") || (ep[1] == '6' && tokens[1] == "b") {
			return ErrIllegalEnPassant
		}
	}

	return OK
}

// Check is ValidateFEN reported as an error: nil when valid, otherwise a
// *errors.FENError carrying the code.
func Check(fen string) error {
	code := ValidateFEN(fen)
	if code == OK {
		return nil
	}
	return &errors.FENError{Code: int(code), Message: code.Message(), FEN: fen}
}

func validateRow(row string) Code {
	sum := 0
	previousWasNumber := false
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c >= '0' && c <= '9' {
			if previousWasNumber {
				return ErrConsecutiveDigits
			}
			sum += int(c - '0')
			previousWasNumber = true
			continue
		}
		if strings.IndexByte(chess.Symbols, c) < 0 {
			return ErrInvalidPieceLetter
		}
		sum++
		previousWasNumber = false
	}
	if sum != 8 {
		return ErrRowSize
	}
	return OK
}

// digits parses a non-empty run of ASCII digits.
func digits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
