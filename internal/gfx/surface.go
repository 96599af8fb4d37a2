// Package gfx is the drawing contract the widgets and screens are written
// against, plus a CPU implementation of it.
//
// Widgets synthesize their images on a Canvas so that styling stays a pure
// function of its inputs. The window backend only has to composite finished
// images, fill, and outline rectangles.
package gfx

import (
	"image"
	"image/color"
)

// Surface is a mutable drawable area.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)

	// Fill paints the whole surface with c.
	Fill(c color.Color)

	// Blit composites src over the surface with its top-left corner at (x, y).
	Blit(src image.Image, x, y int)

	// StrokeRect outlines r with a border of the given width drawn inward.
	// A width <= 0 draws nothing.
	StrokeRect(r image.Rectangle, c color.Color, width int)
}

// Pointer reports the current pointer position in surface coordinates.
type Pointer interface {
	CursorPosition() (x, y int)
}

// PointerAt is a fixed pointer position.
type PointerAt image.Point

// CursorPosition implements Pointer.
func (p PointerAt) CursorPosition() (int, int) {
	return p.X, p.Y
}
