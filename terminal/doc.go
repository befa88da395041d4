// Package terminal owns the full-screen terminal session: alternate screen entry,
// raw input, frame drawing and bounded input polling.
//
// Features:
//   - tcell-backed screen, or any tcell.Screen via New (simulation screens in tests)
//   - Single pump goroutine feeding a buffered event queue
//   - Poll with a timeout so callers can keep re-checking their own state
//   - Idempotent restore, safe to call on every exit path
//
// Every failure is reported as *IOError.
package terminal
