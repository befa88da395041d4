// Package loop drives a model against a terminal session: draw, update, repeat,
// then restore the terminal before any error leaves Run.
package loop

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/counter/logging"
	"github.com/lixenwraith/counter/render"
	"github.com/lixenwraith/counter/terminal"
)

// Session is the terminal contract the loop needs; *terminal.Session satisfies it
type Session interface {
	terminal.EventSource
	Draw(fn func(render.Region)) error
	Restore() error
}

// Model is a screen driven by the loop
type Model interface {
	Render(f render.Region)
	Update(src terminal.EventSource) error
	IsFinished() bool
}

// Runner runs models with a logger attached
type Runner struct {
	log zerolog.Logger
}

// NewRunner creates a runner that logs lifecycle events to log
func NewRunner(log zerolog.Logger) *Runner {
	return &Runner{log: log}
}

// Run drives m on s with logging disabled
func Run(s Session, m Model) error {
	return NewRunner(logging.Nop()).Run(s, m)
}

// Run draws and updates m until it finishes or a step fails
// s.Restore runs exactly once before Run returns or a panic propagates
// A step error takes precedence over a restore error
func (r *Runner) Run(s Session, m Model) (err error) {
	defer func() {
		rec := recover()

		if rerr := s.Restore(); rerr != nil {
			if err == nil && rec == nil {
				err = errors.Wrap(rerr, "restore")
			} else {
				r.log.Error().Err(rerr).Msg("restore failed")
			}
		}

		switch {
		case rec != nil:
			r.log.Error().Interface("panic", rec).Msg("loop panicked")
			panic(rec)
		case err != nil:
			r.log.Error().Err(err).Msg("loop stopped")
		default:
			r.log.Info().Msg("loop finished")
		}
	}()

	r.log.Info().Msg("loop started")
	frames := 0
	for !m.IsFinished() {
		if err := s.Draw(m.Render); err != nil {
			return errors.Wrap(err, "draw")
		}
		frames++
		if err := m.Update(s); err != nil {
			return errors.Wrap(err, "update")
		}
	}
	r.log.Debug().Int("frames", frames).Msg("model finished")
	return nil
}
