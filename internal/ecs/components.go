package ecs

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/connectfour/internal/application/state"
)

// Action is the transition code a clickable entity emits.
type Action struct {
	Code state.Code
}

// Hover holds the two backgrounds a button alternates between.
type Hover struct {
	Normal  color.RGBA
	Hot     color.RGBA
	Hovered bool
}

// background returns the color for the current hover state
func (h Hover) background() color.RGBA {
	if h.Hovered {
		return h.Hot
	}
	return h.Normal
}

// Settle is the resting point of an animated entity. Motion stops once the
// entity reaches or passes it.
type Settle struct {
	Target mgl64.Vec2
}
