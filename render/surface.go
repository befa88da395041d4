package render

import "github.com/gdamore/tcell/v2"

// Surface is a grid of styled cells; tcell.Screen satisfies it
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// NewFrame returns a region covering the whole surface
func NewFrame(s Surface) Region {
	w, h := s.Size()
	return Region{s: s, W: w, H: h}
}
