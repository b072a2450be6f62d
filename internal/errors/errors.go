// Package errors provides custom error types for the terminal chat.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrNotTerminal     = errors.New("not a terminal")
	ErrSessionActive   = errors.New("terminal session already active")
	ErrSessionInactive = errors.New("terminal session not active")
	ErrInputClosed     = errors.New("terminal input closed")
)

// TerminalError represents a failure to reconfigure the terminal device
// (raw mode, alternate screen).
type TerminalError struct {
	Op  string // "start" or "stop"
	Err error
}

func (e *TerminalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("terminal %s failed", e.Op)
	}
	return fmt.Sprintf("terminal %s failed: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// Is allows comparison with another TerminalError regardless of its fields
func (e *TerminalError) Is(target error) bool {
	_, ok := target.(*TerminalError)
	return ok
}

// NewTerminalError creates a new TerminalError
func NewTerminalError(op string, err error) *TerminalError {
	return &TerminalError{Op: op, Err: err}
}

// RenderError represents a failed write to the screen
type RenderError struct {
	Op  string
	Row int
	Err error
}

func (e *RenderError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("render %s at row %d: %v", e.Op, e.Row, e.Err)
	}
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is allows comparison with another RenderError regardless of its fields
func (e *RenderError) Is(target error) bool {
	_, ok := target.(*RenderError)
	return ok
}

// NewRenderError creates a new RenderError. Use row -1 when the
// operation is not tied to a single row (e.g. flush).
func NewRenderError(op string, row int, err error) *RenderError {
	return &RenderError{Op: op, Row: row, Err: err}
}

// IsTerminalError checks if the error is a terminal configuration error
func IsTerminalError(err error) bool {
	var te *TerminalError
	return errors.As(err, &te)
}

// IsRenderError checks if the error is a screen write error
func IsRenderError(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}

// GetOp returns the failed operation of a terminal or render error, or ""
func GetOp(err error) string {
	var te *TerminalError
	if errors.As(err, &te) {
		return te.Op
	}
	var re *RenderError
	if errors.As(err, &re) {
		return re.Op
	}
	return ""
}
