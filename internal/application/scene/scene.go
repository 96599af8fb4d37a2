// Package scene defines the Screen interface for game screens.
//
// Each screen (main menu, difficulty select, loading, playing, result)
// implements Screen to handle its own update logic and rendering. A screen
// never starts another screen: it ends by returning a transition code and
// the navigation driver decides what runs next.
package scene

import (
	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/application/system"
	"github.com/younwookim/connectfour/internal/gfx"
)

// Screen represents one game screen.
//
// The driver calls Update and Draw once per frame on the top screen only.
type Screen interface {
	// Name identifies the screen in logs and diagnostics.
	Name() string

	// Update advances the screen by one tick with this frame's input.
	// It returns state.Running to stay; any other code ends the screen.
	// When in.Quit is set it must return state.Quit.
	Update(in system.InputState) state.Code

	// Draw renders the screen.
	Draw(dst gfx.Surface)

	// OnEnter is called each time the screen becomes the top screen.
	OnEnter()

	// OnExit is called when the screen stops being the top screen, either
	// covered by another screen or removed.
	OnExit()
}

// Reporter is implemented by screens that hand a value to the next screen,
// such as the winner of a match.
type Reporter interface {
	// Report returns the value for the screen's last returned code.
	Report() any
}
