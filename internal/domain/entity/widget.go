// Package entity holds the on-screen objects: the kinematic Object and the
// styled widgets built on it.
package entity

import (
	"image"

	"github.com/younwookim/connectfour/internal/gfx"
)

// Positionable is anything with a position and a bounding box.
type Positionable interface {
	Position() (x, y int)
	SetPosition(x, y float64)
	Rect() image.Rectangle
}

// Movable advances once per simulation tick.
type Movable interface {
	Move()
	Stop()
}

// Drawable can render itself onto a surface.
type Drawable interface {
	Image() image.Image
	IsVisible() bool
	Draw(dst gfx.Surface)
}

// HitTestable answers pointer queries against its bounding box.
type HitTestable interface {
	Contains(x, y int) bool
	Hovered(p gfx.Pointer) bool
}

// Widget is the capability set screens handle uniformly.
type Widget interface {
	Name() string
	Positionable
	Movable
	Drawable
	HitTestable
}

var (
	_ Widget = (*Object)(nil)
	_ Widget = (*Button)(nil)
	_ Widget = (*Text)(nil)
)
