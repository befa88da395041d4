package terminal

import "github.com/pkg/errors"

var (
	// ErrNotTerminal is returned by Open when stdin is not attached to a terminal
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrClosed is returned by operations on a session that is not initialized or already restored
	ErrClosed = errors.New("terminal session not active")
)

// IOError is the single failure kind of a terminal session
type IOError struct {
	Op  string // open, init, draw, poll
	Err error
}

func (e *IOError) Error() string {
	return "terminal " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Cause implements the pkg/errors causer
func (e *IOError) Cause() error {
	return e.Err
}

func ioError(op string, err error) error {
	return &IOError{Op: op, Err: err}
}
