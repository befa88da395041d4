// Package app holds the counter state machine: a signed counter and a running flag,
// driven by key-table intents and drawn into a render region.
package app

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/counter/constant"
	"github.com/lixenwraith/counter/input"
	"github.com/lixenwraith/counter/logging"
	"github.com/lixenwraith/counter/terminal"
)

// Feedback is notified after every applied transition
type Feedback interface {
	Play(intent input.IntentType)
}

// App is the counter application state
type App struct {
	counter int64
	state   RunningState

	keys     *input.KeyTable
	feedback Feedback
	log      zerolog.Logger
}

// Option configures an App
type Option func(*App)

// WithKeyTable replaces the default bindings
func WithKeyTable(t *input.KeyTable) Option {
	return func(a *App) { a.keys = t }
}

// WithFeedback attaches a transition listener
func WithFeedback(f Feedback) Option {
	return func(a *App) { a.feedback = f }
}

// WithLogger sets the logger, transitions are logged at debug level
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) { a.log = l }
}

// New returns an app in the Running state with the counter at zero
func New(opts ...Option) *App {
	a := &App{
		keys: input.DefaultKeyTable(),
		log:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Counter returns the current value
func (a *App) Counter() int64 { return a.counter }

// State returns the lifecycle state
func (a *App) State() RunningState { return a.state }

// Increment adds one to the counter, unbounded
func (a *App) Increment() { a.counter++ }

// Decrement subtracts one from the counter, negative values allowed
func (a *App) Decrement() { a.counter-- }

// Finish marks the app finished; repeated calls have no further effect
func (a *App) Finish() { a.state = Finished }

// IsFinished reports whether quit has been applied
func (a *App) IsFinished() bool { return a.state == Finished }

// transitions maps each actionable intent to its state change
var transitions = map[input.IntentType]func(*App){
	input.IntentIncrement: (*App).Increment,
	input.IntentDecrement: (*App).Decrement,
	input.IntentQuit:      (*App).Finish,
}

// Apply runs the transition bound to intent
// Once finished, every intent is absorbed without touching state
func (a *App) Apply(intent input.IntentType) {
	if a.IsFinished() {
		return
	}
	transition, ok := transitions[intent]
	if !ok {
		return
	}
	transition(a)

	a.log.Debug().
		Stringer("intent", intent).
		Int64("counter", a.counter).
		Stringer("state", a.state).
		Msg("transition")

	if a.feedback != nil {
		a.feedback.Play(intent)
	}
}

// Update waits one poll interval for input and applies at most one transition
// Timeouts, non-key events and key releases change nothing; poll errors are returned as is
func (a *App) Update(src terminal.EventSource) error {
	ev, ok, err := src.Poll(constant.PollInterval)
	if err != nil {
		return err
	}
	if !ok || !ev.Pressed() {
		return nil
	}
	a.Apply(a.keys.Lookup(ev))
	return nil
}
