// Package errors provides sentinel errors and error types for the chessdb
// core. It defines common failure conditions and structured error types that
// preserve context while allowing error inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN placement string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrBadColour indicates an unrecognized active-colour encoding.
	ErrBadColour = errors.New("invalid colour encoding")

	// ErrBadSquare indicates a square index outside 0-63 or an otherwise
	// unrecognizable square.
	ErrBadSquare = errors.New("invalid square")

	// ErrNoSource indicates the scanner found no origin square for a move.
	ErrNoSource = errors.New("no source square found")

	// ErrBadMove indicates a malformed move descriptor.
	ErrBadMove = errors.New("invalid move descriptor")
)

// MoveError wraps a move-application failure with the piece that could not be
// resolved and, when replaying a sequence, the ply at which it happened. It
// supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Piece string // Name of the piece kind being moved
	Ply   int    // 1-based ply number (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	msg := ""
	if e.Ply > 0 {
		msg = fmt.Sprintf("ply %d: ", e.Ply)
	}
	if e.Piece != "" {
		msg += fmt.Sprintf("%s: ", e.Piece)
	}
	if e.Err != nil {
		return msg + e.Err.Error()
	}
	return msg + "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
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
