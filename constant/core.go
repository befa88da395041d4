package constant

import "time"

// Input loop timing
const (
	// PollInterval bounds a single wait for input so the loop re-checks its state
	PollInterval = 250 * time.Millisecond

	// EventQueueSize is the buffered capacity between the screen poller and the loop
	EventQueueSize = 64
)
