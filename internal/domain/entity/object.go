package entity

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/connectfour/internal/gfx"
)

// DefaultTerminalVelocity is used when Motion.TerminalVelocity is zero.
const DefaultTerminalVelocity = 10.0

// Motion holds the initial kinematic parameters of an object.
type Motion struct {
	X, Y             float64
	Direction        float64 // degrees, rotates the (1, 0) heading
	Velocity         float64 // pixels per tick along the heading
	TerminalVelocity float64 // velocity ceiling, 0 = DefaultTerminalVelocity
	Acceleration     float64 // added to velocity on every Move

	// SymmetricClamp bounds velocity below at -TerminalVelocity as well.
	// Without it only the ceiling is enforced.
	SymmetricClamp bool
}

// At returns m moved to (x, y).
func (m Motion) At(x, y float64) Motion {
	m.X, m.Y = x, y
	return m
}

// Object is a positioned, moving, drawable sprite.
//
// Position, image and bounding box always agree: every mutation that touches
// one of them recomputes the box before returning.
type Object struct {
	name string

	image    image.Image
	position mgl64.Vec2
	rect     image.Rectangle

	direction        mgl64.Vec2
	velocity         float64
	terminalVelocity float64
	acceleration     float64
	symmetricClamp   bool

	visible bool
}

// NewObject creates a visible object showing img.
func NewObject(name string, img image.Image, m Motion) *Object {
	terminal := m.TerminalVelocity
	if terminal == 0 {
		terminal = DefaultTerminalVelocity
	}

	o := &Object{
		name:             name,
		image:            img,
		direction:        mgl64.Vec2{1, 0},
		terminalVelocity: terminal,
		acceleration:     m.Acceleration,
		symmetricClamp:   m.SymmetricClamp,
		visible:          true,
	}
	o.Rotate(m.Direction)
	o.SetVelocity(m.Velocity)
	o.SetPosition(m.X, m.Y)
	return o
}

// Name returns the identity label given at construction.
func (o *Object) Name() string { return o.name }

// Image returns the current drawable.
func (o *Object) Image() image.Image { return o.image }

// SetImage replaces the drawable and resizes the bounding box to it.
func (o *Object) SetImage(img image.Image) {
	o.image = img
	o.syncRect()
}

// Rect returns the bounding box.
func (o *Object) Rect() image.Rectangle { return o.rect }

// Width returns the image width.
func (o *Object) Width() int { return o.rect.Dx() }

// Height returns the image height.
func (o *Object) Height() int { return o.rect.Dy() }

// Position returns the integer-truncated position.
func (o *Object) Position() (x, y int) {
	return int(o.position.X()), int(o.position.Y())
}

// PositionF returns the exact position.
func (o *Object) PositionF() mgl64.Vec2 { return o.position }

// SetPosition moves the object and its bounding box.
func (o *Object) SetPosition(x, y float64) {
	o.position = mgl64.Vec2{x, y}
	o.syncRect()
}

// X returns the truncated x coordinate.
func (o *Object) X() int { return int(o.position.X()) }

// Y returns the truncated y coordinate.
func (o *Object) Y() int { return int(o.position.Y()) }

// SetX moves the object horizontally.
func (o *Object) SetX(x float64) { o.SetPosition(x, o.position.Y()) }

// SetY moves the object vertically.
func (o *Object) SetY(y float64) { o.SetPosition(o.position.X(), y) }

// Direction returns the heading in degrees, in [0, 360).
func (o *Object) Direction() float64 {
	deg := mgl64.RadToDeg(math.Atan2(o.direction.Y(), o.direction.X()))
	if deg < 0 {
		deg += 360
	}
	return deg
}

// DirectionVector returns a copy of the unit heading.
func (o *Object) DirectionVector() mgl64.Vec2 { return o.direction }

// Rotate turns the heading by deg degrees on top of its current orientation.
func (o *Object) Rotate(deg float64) {
	if deg == 0 {
		return
	}
	o.direction = mgl64.Rotate2D(mgl64.DegToRad(deg)).Mul2x1(o.direction).Normalize()
}

// Velocity returns the scalar speed along the heading.
func (o *Object) Velocity() float64 { return o.velocity }

// TerminalVelocity returns the velocity ceiling.
func (o *Object) TerminalVelocity() float64 { return o.terminalVelocity }

// SetVelocity stores v clamped to the terminal velocity.
func (o *Object) SetVelocity(v float64) {
	if v > o.terminalVelocity {
		v = o.terminalVelocity
	}
	if o.symmetricClamp && v < -o.terminalVelocity {
		v = -o.terminalVelocity
	}
	o.velocity = v
}

// Acceleration returns the per-tick velocity increment.
func (o *Object) Acceleration() float64 { return o.acceleration }

// SetAcceleration sets the per-tick velocity increment.
func (o *Object) SetAcceleration(a float64) { o.acceleration = a }

// Stop zeroes velocity and acceleration.
func (o *Object) Stop() {
	o.velocity = 0
	o.acceleration = 0
}

// IsVisible reports whether the object should be drawn.
func (o *Object) IsVisible() bool { return o.visible }

// SetVisible shows or hides the object.
func (o *Object) SetVisible(v bool) { o.visible = v }

// Move advances one simulation step.
func (o *Object) Move() {
	o.SetVelocity(o.velocity + o.acceleration)
	next := o.position.Add(o.direction.Mul(o.velocity))
	o.SetPosition(next.X(), next.Y())
}

// Update advances the object by one tick.
func (o *Object) Update() { o.Move() }

// Contains reports whether (x, y) lies inside the bounding box.
// The right and bottom edges are exclusive.
func (o *Object) Contains(x, y int) bool {
	return image.Pt(x, y).In(o.rect)
}

// Hovered reports whether the pointer is over the object.
func (o *Object) Hovered(p gfx.Pointer) bool {
	return o.Contains(p.CursorPosition())
}

// Draw blits the image at the object's position if it is visible.
func (o *Object) Draw(dst gfx.Surface) {
	if !o.visible || o.image == nil {
		return
	}
	dst.Blit(o.image, o.rect.Min.X, o.rect.Min.Y)
}

func (o *Object) syncRect() {
	var w, h int
	if o.image != nil {
		b := o.image.Bounds()
		w, h = b.Dx(), b.Dy()
	}
	tl := image.Pt(int(o.position.X()), int(o.position.Y()))
	o.rect = image.Rectangle{Min: tl, Max: tl.Add(image.Pt(w, h))}
}
