package entity

import (
	"image"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/connectfour/internal/gfx"
)

func newTestObject(m Motion) *Object {
	return NewObject("obj", gfx.NewCanvas(16, 8), m)
}

func TestNewObject_Defaults(t *testing.T) {
	o := newTestObject(Motion{X: 10, Y: 20})

	assert.Equal(t, "obj", o.Name())
	assert.Equal(t, DefaultTerminalVelocity, o.TerminalVelocity())
	assert.Equal(t, 0.0, o.Velocity())
	assert.Equal(t, 0.0, o.Direction())
	assert.True(t, o.IsVisible())
	assert.Equal(t, image.Rect(10, 20, 26, 28), o.Rect())
	assert.Equal(t, 16, o.Width())
	assert.Equal(t, 8, o.Height())
}

func TestNewObject_InitialVelocityIsClamped(t *testing.T) {
	o := newTestObject(Motion{Velocity: 50, TerminalVelocity: 5})
	assert.Equal(t, 5.0, o.Velocity())
}

func TestObject_SetVelocity_UpperClampOnly(t *testing.T) {
	// Only the ceiling is enforced; negative speeds pass through untouched.
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "below terminal", in: 3, want: 3},
		{name: "at terminal", in: 10, want: 10},
		{name: "above terminal", in: 25, want: 10},
		{name: "infinite", in: math.Inf(1), want: 10},
		{name: "zero", in: 0, want: 0},
		{name: "negative within range", in: -4, want: -4},
		{name: "negative beyond terminal", in: -25, want: -25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestObject(Motion{TerminalVelocity: 10})
			o.SetVelocity(tt.in)
			assert.Equal(t, tt.want, o.Velocity())
		})
	}
}

func TestObject_SetVelocity_SymmetricClamp(t *testing.T) {
	o := newTestObject(Motion{TerminalVelocity: 10, SymmetricClamp: true})

	o.SetVelocity(-25)
	assert.Equal(t, -10.0, o.Velocity())

	o.SetVelocity(math.Inf(-1))
	assert.Equal(t, -10.0, o.Velocity())

	o.SetVelocity(25)
	assert.Equal(t, 10.0, o.Velocity())
}

func TestObject_MoveAccelerationIsClamped(t *testing.T) {
	o := newTestObject(Motion{Acceleration: 4, TerminalVelocity: 10})

	o.Move()
	o.Move()
	o.Move()

	assert.Equal(t, 10.0, o.Velocity(), "12 is clamped to 10")
	assert.InDelta(t, 4+8+10, o.PositionF().X(), 1e-9)
}

func TestObject_MoveIntegration(t *testing.T) {
	tests := []struct {
		name      string
		direction float64
		velocity  float64
		steps     int
	}{
		{name: "right", direction: 0, velocity: 3, steps: 5},
		{name: "down", direction: 90, velocity: 2.5, steps: 4},
		{name: "diagonal", direction: 45, velocity: 1, steps: 10},
		{name: "backwards", direction: 180, velocity: 7, steps: 3},
		{name: "negative velocity", direction: 0, velocity: -2, steps: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestObject(Motion{X: 100, Y: 100, Direction: tt.direction, Velocity: tt.velocity})
			dir := o.DirectionVector()

			for i := 0; i < tt.steps; i++ {
				o.Move()
			}

			want := mgl64.Vec2{100, 100}.Add(dir.Mul(float64(tt.steps) * tt.velocity))
			got := o.PositionF()
			assert.InDelta(t, want.X(), got.X(), 1e-9)
			assert.InDelta(t, want.Y(), got.Y(), 1e-9)
		})
	}
}

func TestObject_MoveIsNotIdempotent(t *testing.T) {
	o := newTestObject(Motion{Velocity: 1})
	o.Move()
	o.Move()
	assert.InDelta(t, 2.0, o.PositionF().X(), 1e-9)
}

func TestObject_UpdateMoves(t *testing.T) {
	o := newTestObject(Motion{Velocity: 2})
	o.Update()
	assert.Equal(t, 2, o.X())
}

func TestObject_RotateComposes(t *testing.T) {
	tests := []struct{ a, b float64 }{
		{30, 60},
		{90, 90},
		{200, 270},
		{-45, 10},
		{359, 2},
	}

	for _, tt := range tests {
		composed := newTestObject(Motion{})
		composed.Rotate(tt.a)
		composed.Rotate(tt.b)

		once := newTestObject(Motion{})
		once.Rotate(math.Mod(tt.a+tt.b, 360))

		assert.InDelta(t, once.DirectionVector().X(), composed.DirectionVector().X(), 1e-9)
		assert.InDelta(t, once.DirectionVector().Y(), composed.DirectionVector().Y(), 1e-9)
		assert.InDelta(t, 1.0, composed.DirectionVector().Len(), 1e-9, "heading stays a unit vector")
	}
}

func TestObject_Direction(t *testing.T) {
	tests := []struct {
		rotate float64
		want   float64
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{270, 270},
		{-90, 270},
		{450, 90},
	}

	for _, tt := range tests {
		o := newTestObject(Motion{Direction: tt.rotate})
		assert.InDelta(t, tt.want, o.Direction(), 1e-9, "rotate %v", tt.rotate)
	}
}

func TestObject_DirectionVectorIsACopy(t *testing.T) {
	o := newTestObject(Motion{})
	v := o.DirectionVector()
	v[0] = 42

	assert.Equal(t, 1.0, o.DirectionVector().X())
}

func TestObject_BoundingBoxFollowsMutations(t *testing.T) {
	o := newTestObject(Motion{})

	check := func(t *testing.T) {
		t.Helper()
		p := o.PositionF()
		b := o.Image().Bounds()
		assert.Equal(t, image.Pt(int(p.X()), int(p.Y())), o.Rect().Min)
		assert.Equal(t, b.Size(), o.Rect().Size())
	}

	steps := []func(){
		func() { o.SetPosition(12.7, 3.2) },
		func() { o.SetImage(gfx.NewCanvas(40, 30)) },
		func() { o.SetX(-5.9) },
		func() { o.SetY(99.99) },
		func() { o.SetImage(gfx.NewCanvas(0, 0)) },
		func() { o.SetVelocity(3); o.Rotate(33); o.Move() },
		func() { o.SetImage(gfx.NewCanvas(7, 3)) },
		func() { o.SetPosition(-0.5, -100.25) },
	}
	for _, step := range steps {
		step()
		check(t)
	}
}

func TestObject_PositionTruncates(t *testing.T) {
	o := newTestObject(Motion{})
	o.SetPosition(3.9, -2.7)

	x, y := o.Position()
	assert.Equal(t, 3, x)
	assert.Equal(t, -2, y)
	assert.Equal(t, 3, o.X())
	assert.Equal(t, -2, o.Y())
}

func TestObject_SetXKeepsFractionalY(t *testing.T) {
	o := newTestObject(Motion{X: 1, Y: 2.75})
	o.SetX(10)

	assert.Equal(t, 2.75, o.PositionF().Y())
}

func TestObject_Contains(t *testing.T) {
	o := newTestObject(Motion{X: 10, Y: 10}) // 16x8

	assert.True(t, o.Contains(10, 10))
	assert.True(t, o.Contains(25, 17))
	assert.False(t, o.Contains(26, 10), "right edge is exclusive")
	assert.False(t, o.Contains(10, 18), "bottom edge is exclusive")
	assert.False(t, o.Contains(9, 10))

	assert.True(t, o.Hovered(gfx.PointerAt{X: 12, Y: 12}))
	assert.False(t, o.Hovered(gfx.PointerAt{X: 0, Y: 0}))
}

func TestObject_Stop(t *testing.T) {
	o := newTestObject(Motion{Velocity: 5, Acceleration: 1})
	o.Stop()
	o.Move()

	assert.Equal(t, 0.0, o.Velocity())
	assert.Equal(t, 0.0, o.Acceleration())
	assert.Equal(t, 0, o.X())
}

func TestObject_Draw(t *testing.T) {
	src := gfx.NewCanvas(2, 2)
	src.Fill(gfx.Opaque(10, 20, 30))
	o := NewObject("sprite", src, Motion{X: 3, Y: 1})

	dst := gfx.NewCanvas(8, 8)
	o.Draw(dst)
	assert.Equal(t, gfx.Opaque(10, 20, 30), dst.RGBAAt(3, 1))

	hidden := gfx.NewCanvas(8, 8)
	o.SetVisible(false)
	o.Draw(hidden)
	require.Equal(t, make([]uint8, len(hidden.Pix)), hidden.Pix)
}
