package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/counter/render"
)

var _ EventSource = (*Session)(nil)

func newSimSession(t *testing.T) (*Session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	s := New(screen)
	require.NoError(t, s.Init())
	screen.SetSize(20, 5)
	t.Cleanup(func() { _ = s.Restore() })
	return s, screen
}

// nextKey polls until a key event arrives, skipping resize notifications
func nextKey(t *testing.T, s *Session) Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok, err := s.Poll(100 * time.Millisecond)
		require.NoError(t, err)
		if ok && ev.Type == EventKey {
			return ev
		}
	}
	t.Fatal("no key event before deadline")
	return Event{}
}

func TestDrawRendersFrame(t *testing.T) {
	s, screen := newSimSession(t)

	calls := 0
	err := s.Draw(func(f render.Region) {
		calls++
		assert.Equal(t, 20, f.W)
		assert.Equal(t, 5, f.H)
		f.Text(0, 0, "hi", tcell.StyleDefault)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "render callback runs exactly once per draw")

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'h', r)
	r, _, _, _ = screen.GetContent(1, 0)
	assert.Equal(t, 'i', r)
}

func TestPollDeliversKeyPress(t *testing.T) {
	s, screen := newSimSession(t)

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)))

	ev := nextKey(t, s)
	assert.Equal(t, KeyRune, ev.Key)
	assert.Equal(t, 'j', ev.Rune)
	assert.Equal(t, KeyPress, ev.Kind)
	assert.True(t, ev.Pressed())
}

func TestPollCarriesAltModifier(t *testing.T) {
	s, screen := newSimSession(t)

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt)))

	ev := nextKey(t, s)
	assert.Equal(t, 'q', ev.Rune)
	assert.Equal(t, ModAlt, ev.Mod)
}

func TestPollTimesOutWithoutEvent(t *testing.T) {
	s, _ := newSimSession(t)

	// Drain anything the screen posted on init
	for {
		_, ok, err := s.Poll(20 * time.Millisecond)
		require.NoError(t, err)
		if !ok {
			break
		}
	}

	start := time.Now()
	_, ok, err := s.Poll(30 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
}

func TestRestoreIsIdempotentAndClosesSession(t *testing.T) {
	s, _ := newSimSession(t)

	require.NoError(t, s.Restore())
	require.NoError(t, s.Restore())

	err := s.Draw(func(render.Region) { t.Error("render must not run after restore") })
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "draw", ioErr.Op)
	assert.ErrorIs(t, err, ErrClosed)

	_, ok, err := s.Poll(time.Millisecond)
	assert.False(t, ok)
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "poll", ioErr.Op)
}

func TestOperationsBeforeInit(t *testing.T) {
	s := New(tcell.NewSimulationScreen("UTF-8"))

	assert.ErrorIs(t, s.Draw(func(render.Region) {}), ErrClosed)
	_, _, err := s.Poll(time.Millisecond)
	assert.ErrorIs(t, err, ErrClosed)
	assert.NoError(t, s.Restore(), "restoring an uninitialized session is a no-op")
	assert.ErrorIs(t, s.Init(), ErrClosed, "a restored session cannot be reopened")
}
