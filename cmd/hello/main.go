package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/counter/hello"
	"github.com/lixenwraith/counter/logging"
	"github.com/lixenwraith/counter/loop"
	"github.com/lixenwraith/counter/terminal"
)

func main() {
	logs := &logging.Deferred{}
	log := logging.New(logs, zerolog.WarnLevel)

	session, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hello: %v\n", err)
		os.Exit(1)
	}

	err = loop.NewRunner(log).Run(session, hello.New())

	if ferr := logs.Flush(os.Stderr); ferr != nil {
		fmt.Fprintf(os.Stderr, "log flush failed: %v\n", ferr)
	}
	if err != nil {
		os.Exit(1)
	}
}
