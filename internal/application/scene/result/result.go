// Package result provides the screen announcing the end of a match.
package result

import (
	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/application/system"
	"github.com/younwookim/connectfour/internal/application/ui"
	"github.com/younwookim/connectfour/internal/domain/board"
	"github.com/younwookim/connectfour/internal/ecs"
	"github.com/younwookim/connectfour/internal/gfx"
)

// Result shows the winner with Main Menu and Quit buttons.
type Result struct {
	kit     *ui.Kit
	outcome board.Outcome
	world   *ecs.World
	motion  *system.MotionSystem
}

// New creates the result screen for outcome.
func New(kit *ui.Kit, outcome board.Outcome) *Result {
	r := &Result{kit: kit, outcome: outcome, motion: system.NewMotionSystem()}
	r.build()
	return r
}

// Headline returns the announcement for an outcome.
func Headline(o board.Outcome) string {
	if o.Draw || o.Winner == "" {
		return "Draw!"
	}
	return o.Winner + " wins!"
}

func (r *Result) build() {
	r.world = ecs.NewWorld()
	r.kit.BuildMenu(r.world, Headline(r.outcome), []ui.MenuItem{
		{Label: "Main Menu", Code: state.MainMenu},
		{Label: "Quit", Code: state.Quit},
	})
}

// Name implements scene.Screen
func (r *Result) Name() string { return "result" }

// World exposes the screen widgets
func (r *Result) World() *ecs.World { return r.world }

// Update implements scene.Screen
func (r *Result) Update(in system.InputState) state.Code {
	if in.Quit {
		return state.Quit
	}

	r.motion.Update(r.world)
	ecs.UpdateHover(r.world, in)

	if in.Back {
		return state.Back
	}
	return ecs.Clicked(r.world, in, in.MouseClick)
}

// Draw implements scene.Screen
func (r *Result) Draw(dst gfx.Surface) {
	dst.Fill(r.kit.Background)
	r.world.Draw(dst)
}

// OnEnter implements scene.Screen
func (r *Result) OnEnter() { r.build() }

// OnExit implements scene.Screen
func (r *Result) OnExit() {}
