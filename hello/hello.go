// Package hello is the splash screen: one centered message until the user quits.
package hello

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/counter/constant"
	"github.com/lixenwraith/counter/input"
	"github.com/lixenwraith/counter/render"
	"github.com/lixenwraith/counter/terminal"
)

var messageStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)

// Screen shows a message and finishes on the quit binding
type Screen struct {
	message string
	keys    *input.KeyTable
	done    bool
}

// New returns a screen showing the default greeting
func New() *Screen {
	return &Screen{
		message: constant.HelloMessage,
		keys:    input.QuitKeyTable(),
	}
}

func (s *Screen) IsFinished() bool { return s.done }

// Render fills the frame and centers the message
func (s *Screen) Render(f render.Region) {
	f.Fill(messageStyle)
	f.TextCenter((f.H-1)/2, s.message, messageStyle)
}

// Update finishes on a quit key press and ignores everything else
func (s *Screen) Update(src terminal.EventSource) error {
	ev, ok, err := src.Poll(constant.PollInterval)
	if err != nil {
		return err
	}
	if ok && ev.Pressed() && s.keys.Lookup(ev) == input.IntentQuit {
		s.done = true
	}
	return nil
}
