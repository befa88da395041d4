package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/counter/app"
	"github.com/lixenwraith/counter/audio"
	"github.com/lixenwraith/counter/logging"
	"github.com/lixenwraith/counter/loop"
	"github.com/lixenwraith/counter/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	logs := &logging.Deferred{}
	log := logging.New(logs, zerolog.InfoLevel)

	// Logs go to stderr only once the screen is released
	defer func() {
		if err := logs.Flush(os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "log flush failed: %v\n", err)
		}
	}()

	feedback := audio.NewFeedback()
	if err := feedback.Initialize(); err != nil {
		// Non-fatal, the counter works without sound
		log.Warn().Err(err).Msg("audio initialization failed")
	}
	defer feedback.Cleanup()

	session, err := terminal.Open()
	if err != nil {
		log.Error().Err(err).Msg("terminal unavailable")
		return 1
	}

	counter := app.New(
		app.WithFeedback(feedback),
		app.WithLogger(log),
	)

	if err := loop.NewRunner(log).Run(session, counter); err != nil {
		return 1
	}

	log.Info().Int64("counter", counter.Counter()).Msg("exit")
	return 0
}
