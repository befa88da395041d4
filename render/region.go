package render

import "github.com/gdamore/tcell/v2"

// Region represents a rectangular area within a surface
// All coordinates are relative to the region's origin
type Region struct {
	s    Surface
	X, Y int // Absolute position on the surface
	W, H int // Region dimensions
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		s: r.s,
		X: r.X + x,
		Y: r.Y + y,
		W: w,
		H: h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Center returns a centered region of given size
func (r Region) Center(w, h int) Region {
	return r.Sub((r.W-w)/2, (r.H-h)/2, w, h)
}

// Cell sets a single cell, ignoring writes outside the region
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if r.s == nil || x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.s.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill fills entire region with blanks in the given style
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', style)
		}
	}
}

// Empty reports whether the region has no drawable cells
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
