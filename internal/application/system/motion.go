package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/connectfour/internal/domain/entity"
	"github.com/younwookim/connectfour/internal/ecs"
)

type kinematic interface {
	PositionF() mgl64.Vec2
	DirectionVector() mgl64.Vec2
	SetPosition(x, y float64)
	Stop()
}

// MotionSystem advances animated widgets once per tick and brings them to
// rest at their settle points.
type MotionSystem struct{}

// NewMotionSystem creates a new motion system
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

// Update moves every animated entity one step and returns the entities that
// came to rest during this step.
func (s *MotionSystem) Update(w *ecs.World) []ecs.EntityID {
	ecs.MoveAll(w)

	var settled []ecs.EntityID
	w.Each(func(id ecs.EntityID, wd entity.Widget) {
		st, ok := w.Settle[id]
		if !ok {
			return
		}
		k, ok := wd.(kinematic)
		if !ok {
			return
		}
		if !reached(k.PositionF(), k.DirectionVector(), st.Target) {
			return
		}
		k.SetPosition(st.Target.X(), st.Target.Y())
		k.Stop()
		delete(w.Animate, id)
		delete(w.Settle, id)
		settled = append(settled, id)
	})
	return settled
}

// Busy reports whether any entity is still heading for a settle point.
func (s *MotionSystem) Busy(w *ecs.World) bool {
	return len(w.Settle) > 0
}

// reached reports whether pos is at target or beyond it along dir.
func reached(pos, dir, target mgl64.Vec2) bool {
	rest := target.Sub(pos)
	if rest.Len() < 1e-9 {
		return true
	}
	return rest.Dot(dir) <= 0
}
