// Package render provides immediate-mode drawing primitives over a cell surface.
//
// Core abstraction is Region, a rectangle within a Surface. All drawing is relative
// to region bounds with clipping, so callers never check screen edges themselves.
//
// A Surface is anything that stores styled cells: a tcell.Screen in production,
// or the in-memory Buffer in tests.
//
// Usage pattern:
//
//	frame := render.NewFrame(screen)
//	body := frame.Card("TITLE", render.LineThick, style)
//	body.TextCenter(body.H/2, "Hello", style)
package render
