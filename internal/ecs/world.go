package ecs

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/domain/entity"
	"github.com/younwookim/connectfour/internal/gfx"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds the widgets of one screen and their components.
// Entities are drawn in spawn order; later entities are on top.
type World struct {
	nextID EntityID
	order  []EntityID

	// Components
	Widget  map[EntityID]entity.Widget
	Button  map[EntityID]*entity.Button
	Action  map[EntityID]Action
	Hover   map[EntityID]Hover
	Animate map[EntityID]struct{}
	Settle  map[EntityID]Settle
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:  1, // 0 is "nil"
		Widget:  make(map[EntityID]entity.Widget),
		Button:  make(map[EntityID]*entity.Button),
		Action:  make(map[EntityID]Action),
		Hover:   make(map[EntityID]Hover),
		Animate: make(map[EntityID]struct{}),
		Settle:  make(map[EntityID]Settle),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Spawn adds a widget and returns its ID.
func (w *World) Spawn(wd entity.Widget) EntityID {
	id := w.NewEntity()
	w.Widget[id] = wd
	w.order = append(w.order, id)
	return id
}

// SpawnAnimated adds a widget that the motion system moves every tick.
func (w *World) SpawnAnimated(wd entity.Widget) EntityID {
	id := w.Spawn(wd)
	w.Animate[id] = struct{}{}
	return id
}

// SettleAt marks an animated entity to come to rest at (x, y).
func (w *World) SettleAt(id EntityID, x, y float64) {
	if !w.Exists(id) {
		return
	}
	w.Settle[id] = Settle{Target: mgl64.Vec2{x, y}}
}

// AddButton adds a clickable button emitting code. hot is the background
// shown while the pointer is over it.
func (w *World) AddButton(b *entity.Button, code state.Code, hot entity.ButtonStyle) EntityID {
	id := w.Spawn(b)
	w.Button[id] = b
	w.Action[id] = Action{Code: code}
	w.Hover[id] = Hover{Normal: b.Background(), Hot: hot.Background}
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	if _, ok := w.Widget[id]; !ok {
		return
	}
	delete(w.Widget, id)
	delete(w.Button, id)
	delete(w.Action, id)
	delete(w.Hover, id)
	delete(w.Animate, id)
	delete(w.Settle, id)

	for i, e := range w.order {
		if e == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Exists checks if an entity has a Widget component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Widget[id]
	return ok
}

// Get returns the widget of an entity, or nil.
func (w *World) Get(id EntityID) entity.Widget {
	return w.Widget[id]
}

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.order)
}

// Each calls fn for every entity in draw order.
func (w *World) Each(fn func(id EntityID, wd entity.Widget)) {
	for _, id := range w.order {
		fn(id, w.Widget[id])
	}
}

// Draw blits every visible widget in spawn order.
func (w *World) Draw(dst gfx.Surface) {
	for _, id := range w.order {
		w.Widget[id].Draw(dst)
	}
}
