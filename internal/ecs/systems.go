package ecs

import (
	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/gfx"
)

// HitTest returns the topmost visible button under the pointer.
func HitTest(w *World, p gfx.Pointer) (EntityID, bool) {
	for i := len(w.order) - 1; i >= 0; i-- {
		id := w.order[i]
		b, ok := w.Button[id]
		if !ok || !b.IsVisible() {
			continue
		}
		if b.Hovered(p) {
			return id, true
		}
	}
	return 0, false
}

// UpdateHover swaps the background of every button whose hover state
// changed. Only the topmost button under the pointer counts as hovered.
// Buttons are re-synthesized only on a change.
func UpdateHover(w *World, p gfx.Pointer) {
	hot, found := HitTest(w, p)
	for id, h := range w.Hover {
		want := found && id == hot
		if h.Hovered == want {
			continue
		}
		h.Hovered = want
		w.Hover[id] = h
		w.Button[id].SetBackground(h.background())
	}
}

// Clicked returns the code of the button under the pointer when click is
// set, or state.Running.
func Clicked(w *World, p gfx.Pointer, click bool) state.Code {
	if !click {
		return state.Running
	}
	id, ok := HitTest(w, p)
	if !ok {
		return state.Running
	}
	return w.Action[id].Code
}

// MoveAll advances every animated entity by one step.
func MoveAll(w *World) {
	for _, id := range w.order {
		if _, ok := w.Animate[id]; ok {
			w.Get(id).Move()
		}
	}
}
