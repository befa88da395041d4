package logging

import (
	"bytes"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// Deferred holds log lines in memory until Flush
type Deferred struct {
	mu    sync.Mutex
	lines [][]byte
}

// Write stores one log event; zerolog issues one Write per event
func (d *Deferred) Write(p []byte) (int, error) {
	line := make([]byte, len(p))
	copy(line, p)

	d.mu.Lock()
	d.lines = append(d.lines, line)
	d.mu.Unlock()
	return len(p), nil
}

// Len returns the number of held events
func (d *Deferred) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.lines)
}

// Flush renders held events in console format to w and empties the sink
func (d *Deferred) Flush(w io.Writer) error {
	d.mu.Lock()
	lines := d.lines
	d.lines = nil
	d.mu.Unlock()

	out := zerolog.ConsoleWriter{Out: w, NoColor: true}
	for _, line := range lines {
		if _, err := out.Write(bytes.TrimRight(line, "\n")); err != nil {
			return err
		}
	}
	return nil
}
