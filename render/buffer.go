package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Buffer is an in-memory Surface, used where no terminal is attached
type Buffer struct {
	runes  []rune
	styles []tcell.Style
	width  int
	height int
}

// NewBuffer creates a blank buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		runes:  make([]rune, width*height),
		styles: make([]tcell.Style, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Clear resets all cells to blank default-styled spaces
func (b *Buffer) Clear() {
	for i := range b.runes {
		b.runes[i] = ' '
		b.styles[i] = tcell.StyleDefault
	}
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// SetContent stores a cell; a wide rune claims the following cell as its continuation
func (b *Buffer) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.runes[idx] = primary
	b.styles[idx] = style
	if runewidth.RuneWidth(primary) == 2 && x+1 < b.width {
		b.runes[idx+1] = 0
		b.styles[idx+1] = style
	}
}

// RuneAt returns the rune stored at a cell, 0 for a wide-rune continuation or out of bounds
func (b *Buffer) RuneAt(x, y int) rune {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.runes[y*b.width+x]
}

// StyleAt returns the style stored at a cell
func (b *Buffer) StyleAt(x, y int) tcell.Style {
	if !b.inBounds(x, y) {
		return tcell.StyleDefault
	}
	return b.styles[y*b.width+x]
}

// String returns rows joined by newlines, continuation cells omitted
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			if r := b.runes[y*b.width+x]; r != 0 {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
