// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that matches no legal move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates a square name or index outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPiece indicates a piece kind or colour outside the enumerations.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrEmptySquare indicates a move was built from a square with no piece.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrKingPlacement indicates an attempt to place a second king of one colour.
	ErrKingPlacement = errors.New("king already placed")

	// ErrParseFailure indicates malformed PGN text.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FENError reports the first validation rule a FEN string violates.
type FENError struct {
	Code    int    // Validation code, 1 to 11
	Message string // Fixed message for the code
	FEN     string // The rejected input
}

// Error returns the validation message with its code.
func (e *FENError) Error() string {
	return fmt.Sprintf("invalid FEN (code %d): %s", e.Code, e.Message)
}

// Unwrap returns ErrInvalidFEN so callers can match with errors.Is().
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// MoveError wraps errors with replay context: the ply at which a move
// failed, its text and the position it was tried in.
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	FEN      string // Position the move was tried in (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		context = "move"
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a PGN parsing error with line context.
type ParseError struct {
	Err  error  // The underlying error
	Line int    // Line number (1-based)
	Got  string // The offending text
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
