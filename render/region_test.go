package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestSubClipsToParent(t *testing.T) {
	root := NewFrame(NewBuffer(10, 5))

	tests := []struct {
		name       string
		x, y, w, h int
		want       Region
	}{
		{"inside", 1, 1, 3, 2, Region{X: 1, Y: 1, W: 3, H: 2}},
		{"overflow right", 8, 0, 5, 1, Region{X: 8, Y: 0, W: 2, H: 1}},
		{"negative origin", -2, -1, 4, 3, Region{X: 0, Y: 0, W: 2, H: 2}},
		{"fully outside", 12, 0, 3, 3, Region{X: 12, Y: 0, W: 0, H: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := root.Sub(tt.x, tt.y, tt.w, tt.h)
			if got.X != tt.want.X || got.Y != tt.want.Y || got.W != tt.want.W || got.H != tt.want.H {
				t.Errorf("Sub(%d,%d,%d,%d) = {%d %d %d %d}, want {%d %d %d %d}",
					tt.x, tt.y, tt.w, tt.h, got.X, got.Y, got.W, got.H,
					tt.want.X, tt.want.Y, tt.want.W, tt.want.H)
			}
		})
	}
}

func TestCellIgnoresOutOfBounds(t *testing.T) {
	buf := NewBuffer(4, 2)
	inner := NewFrame(buf).Sub(1, 0, 2, 1)

	inner.Cell(-1, 0, 'a', tcell.StyleDefault)
	inner.Cell(2, 0, 'b', tcell.StyleDefault)
	inner.Cell(0, 1, 'c', tcell.StyleDefault)
	inner.Cell(1, 0, 'd', tcell.StyleDefault)

	if got, want := buf.String(), "  d \n    "; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestBoxAndCard(t *testing.T) {
	buf := NewBuffer(12, 4)
	inner := NewFrame(buf).Card(" Hi ", LineRounded, tcell.StyleDefault)

	want := "╭─── Hi ───╮\n" +
		"│          │\n" +
		"│          │\n" +
		"╰──────────╯"
	if got := buf.String(); got != want {
		t.Errorf("card =\n%s\nwant\n%s", got, want)
	}
	if inner.X != 1 || inner.Y != 1 || inner.W != 10 || inner.H != 2 {
		t.Errorf("inner = {%d %d %d %d}, want {1 1 10 2}", inner.X, inner.Y, inner.W, inner.H)
	}

	_, _, attrs := buf.StyleAt(5, 0).Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("card title should be bold")
	}
}

func TestBoxTooSmall(t *testing.T) {
	buf := NewBuffer(1, 1)
	NewFrame(buf).Box(LineThick, tcell.StyleDefault)
	if got := buf.String(); got != " " {
		t.Errorf("1x1 box should draw nothing, got %q", got)
	}
}

func TestCardTruncatesLongTitle(t *testing.T) {
	buf := NewBuffer(8, 3)
	NewFrame(buf).Card("abcdefghij", LineSingle, tcell.StyleDefault)

	if got, want := buf.String()[:len("┌abcde…┐")], "┌abcde…┐"; got != want {
		t.Errorf("top row = %q, want %q", got, want)
	}
}
