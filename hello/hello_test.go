package hello

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/counter/render"
	"github.com/lixenwraith/counter/terminal"
)

type oneShot struct {
	ev  *terminal.Event
	err error
}

func (o *oneShot) Poll(time.Duration) (terminal.Event, bool, error) {
	if o.err != nil {
		return terminal.Event{}, false, o.err
	}
	if o.ev == nil {
		return terminal.Event{}, false, nil
	}
	ev := *o.ev
	o.ev = nil
	return ev, true, nil
}

func runeEvent(r rune, kind terminal.KeyKind) *terminal.Event {
	return &terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r, Kind: kind}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name string
		ev   *terminal.Event
		done bool
	}{
		{"q press", runeEvent('q', terminal.KeyPress), true},
		{"Q press", runeEvent('Q', terminal.KeyPress), true},
		{"ctrl c", &terminal.Event{Type: terminal.EventKey, Key: terminal.KeyCtrlC}, true},
		{"q release", runeEvent('q', terminal.KeyRelease), false},
		{"j press", runeEvent('j', terminal.KeyPress), false},
		{"timeout", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			require.NoError(t, s.Update(&oneShot{ev: tt.ev}))
			assert.Equal(t, tt.done, s.IsFinished())
		})
	}
}

func TestUpdateReturnsPollError(t *testing.T) {
	s := New()
	err := s.Update(&oneShot{err: terminal.ErrClosed})
	assert.ErrorIs(t, err, terminal.ErrClosed)
	assert.False(t, s.IsFinished())
}

func TestRenderCentersMessage(t *testing.T) {
	buf := render.NewBuffer(40, 3)
	New().Render(render.NewFrame(buf))

	rows := strings.Split(buf.String(), "\n")
	require.Len(t, rows, 3)
	assert.Equal(t, strings.Repeat(" ", 40), rows[0])
	assert.Equal(t, "  Hello, terminal! (press 'q' to quit)  ", rows[1])

	fg, bg, _ := buf.StyleAt(0, 0).Decompose()
	assert.Equal(t, tcell.ColorWhite, fg)
	assert.Equal(t, tcell.ColorBlue, bg)
}
