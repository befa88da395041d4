package terminal

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/counter/constant"
	"github.com/lixenwraith/counter/render"
)

// Session is an initialized full-screen terminal
// Draw and Poll are meant for a single goroutine; Restore may be called from anywhere
type Session struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	initialized atomic.Bool
	restored    atomic.Bool
	restoreOnce sync.Once
}

// Open creates and initializes a session on the controlling terminal
func Open() (*Session, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ioError("open", ErrNotTerminal)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, ioError("open", err)
	}

	s := New(screen)
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// New wraps a screen without initializing it
func New(screen tcell.Screen) *Session {
	return &Session{
		screen: screen,
		events: make(chan tcell.Event, constant.EventQueueSize),
		done:   make(chan struct{}),
	}
}

// Init enters the alternate screen with raw input and starts the event pump
func (s *Session) Init() error {
	if s.initialized.Load() {
		return nil
	}
	if s.restored.Load() {
		return ioError("init", ErrClosed)
	}

	if err := s.screen.Init(); err != nil {
		return ioError("init", err)
	}
	s.screen.SetStyle(tcell.StyleDefault)
	s.screen.HideCursor()
	s.screen.Clear()

	s.initialized.Store(true)
	go s.pump()
	return nil
}

// pump forwards screen events until the screen is finalized
func (s *Session) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *Session) active() bool {
	return s.initialized.Load() && !s.restored.Load()
}

// Size returns current screen dimensions
func (s *Session) Size() (width, height int) {
	return s.screen.Size()
}

// Draw clears the screen, renders one frame through fn and shows it
func (s *Session) Draw(fn func(render.Region)) error {
	if !s.active() {
		return ioError("draw", ErrClosed)
	}
	s.screen.Clear()
	fn(render.NewFrame(s.screen))
	s.screen.Show()
	return nil
}

// Poll waits up to timeout for one event
// Returns ok=false with a nil error on timeout
func (s *Session) Poll(timeout time.Duration) (Event, bool, error) {
	if !s.active() {
		return Event{}, false, ioError("poll", ErrClosed)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case raw := <-s.events:
			switch e := raw.(type) {
			case *tcell.EventError:
				return Event{}, false, ioError("poll", e)
			case *tcell.EventResize:
				s.screen.Sync()
			}
			if ev, ok := translate(raw); ok {
				return ev, true, nil
			}
		case <-s.done:
			return Event{}, false, ioError("poll", ErrClosed)
		case <-timer.C:
			return Event{}, false, nil
		}
	}
}

// Restore leaves the alternate screen and returns the terminal to cooked mode
// Only the first call has an effect
func (s *Session) Restore() error {
	s.restoreOnce.Do(func() {
		s.restored.Store(true)
		close(s.done)
		if s.initialized.Load() {
			s.screen.Fini()
		}
	})
	return nil
}
