package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// KeyKind separates key-down from key-up on sources that report both
type KeyKind uint8

const (
	KeyPress KeyKind = iota
	KeyRelease
)

// Event represents a terminal input event
type Event struct {
	Type EventType
	Key  Key
	Rune rune // For KeyRune
	Mod  Modifier
	Kind KeyKind

	Width  int // For EventResize
	Height int // For EventResize
}

// EventSource yields input events, waiting at most timeout for one
// ok is false on timeout; *Session satisfies it
type EventSource interface {
	Poll(timeout time.Duration) (Event, bool, error)
}

// Pressed reports whether the event is a key-down
func (e Event) Pressed() bool {
	return e.Type == EventKey && e.Kind == KeyPress
}

// translate converts a screen event; ok is false for events the session ignores
// tcell reports key-down only, so every key event is a press
func translate(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key, known := tcellKeys[e.Key()]
		if !known {
			key = KeyOther
		}
		out := Event{
			Type: EventKey,
			Key:  key,
			Mod:  modifiers(e.Modifiers()),
			Kind: KeyPress,
		}
		if key == KeyRune {
			out.Rune = e.Rune()
		}
		return out, true
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	}
	return Event{}, false
}
