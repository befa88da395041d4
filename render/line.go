package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Span is a run of text sharing one style
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is a sequence of spans drawn left to right
type Line []Span

// Width returns the display width of the line in cells
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += runewidth.StringWidth(s.Text)
	}
	return w
}

// String returns the concatenated text without styling
func (l Line) String() string {
	n := 0
	for _, s := range l {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range l {
		b = append(b, s.Text...)
	}
	return string(b)
}

// DrawLine renders spans starting at x on row y
func (r Region) DrawLine(x, y int, l Line) {
	for _, s := range l {
		x = r.Text(x, y, s.Text, s.Style)
	}
}

// CenterLine renders spans centered on row y
func (r Region) CenterLine(y int, l Line) {
	r.DrawLine((r.W-l.Width())/2, y, l)
}
