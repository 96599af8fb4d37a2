// Package nav runs the screens: it maps transition codes to screens and
// keeps the stack of screens the player can go back through.
package nav

import (
	"errors"
	"fmt"
	"strings"

	"github.com/younwookim/connectfour/internal/application/scene"
	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/application/system"
	"github.com/younwookim/connectfour/internal/gfx"
)

// ErrQuit is returned by Update once every screen has been unwound.
var ErrQuit = errors.New("quit")

// UnmappedCodeError reports a code with no route.
type UnmappedCodeError struct {
	Code   state.Code
	Screen string
}

func (e *UnmappedCodeError) Error() string {
	return fmt.Sprintf("screen %q returned %v, which has no route", e.Screen, e.Code)
}

// Selection is what the player has chosen so far. It is handed to every
// route's Build.
type Selection struct {
	Mode       state.Code
	Difficulty state.Code
	Players    [2]string
	Payload    any // Report() of the screen that produced the code
}

// Route builds the screen for a code. Replace swaps the top screen instead
// of pushing, so BACK skips the replaced screen.
type Route struct {
	Build   func(sel Selection) (scene.Screen, error)
	Replace bool
}

// Transition describes one driver step for logging.
type Transition struct {
	Code  state.Code
	From  string
	To    string
	Depth int
}

func (t Transition) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: %s -> ", t.Code, t.From)
	if t.To == "" {
		b.WriteString("(none)")
	} else {
		b.WriteString(t.To)
	}
	fmt.Fprintf(&b, " [depth %d]", t.Depth)
	return b.String()
}

// Driver owns the screen stack.
type Driver struct {
	routes    map[state.Code]Route
	stack     []scene.Screen
	selection Selection

	// OnTransition is called after every code other than RUNNING.
	OnTransition func(Transition)
}

// New creates a driver and enters the screen routed from start.
func New(routes map[state.Code]Route, start state.Code, sel Selection) (*Driver, error) {
	d := &Driver{routes: routes, selection: sel}
	switch {
	case start.IsMode():
		d.selection.Mode = start
	case start.IsDifficulty():
		d.selection.Difficulty = start
	}
	if err := d.push(start, "(start)", d.selection); err != nil {
		return nil, err
	}
	return d, nil
}

// Depth returns the number of screens on the stack.
func (d *Driver) Depth() int { return len(d.stack) }

// Top returns the running screen, or nil once unwound.
func (d *Driver) Top() scene.Screen {
	if len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

// Stack returns the screen names from the bottom up.
func (d *Driver) Stack() []string {
	names := make([]string, len(d.stack))
	for i, s := range d.stack {
		names[i] = s.Name()
	}
	return names
}

// Selection returns the current selection.
func (d *Driver) Selection() Selection { return d.selection }

// Update runs one frame of the top screen and applies the code it returns.
// It returns ErrQuit when the game should end and *UnmappedCodeError for a
// code without a route.
func (d *Driver) Update(in system.InputState) error {
	top := d.Top()
	if top == nil {
		return ErrQuit
	}

	code := top.Update(in)
	if code == state.Running {
		return nil
	}
	from := top.Name()

	switch code {
	case state.Quit:
		d.unwind()
		d.notify(code, from)
		return ErrQuit

	case state.Back:
		d.pop()
		if len(d.stack) == 0 {
			d.notify(code, from)
			return ErrQuit
		}
		d.Top().OnEnter()
		d.notify(code, from)
		return nil

	case state.MainMenu:
		d.unwind()
		sel := d.selection
		sel.Mode, sel.Difficulty = 0, 0
		sel.Payload = nil
		if err := d.push(state.MainMenu, from, sel); err != nil {
			return err
		}
		d.notify(code, from)
		return nil
	}

	sel := d.selection
	switch {
	case code.IsMode():
		sel.Mode = code
		sel.Difficulty = 0
	case code.IsDifficulty():
		sel.Difficulty = code
	}
	sel.Payload = nil
	if r, ok := top.(scene.Reporter); ok {
		sel.Payload = r.Report()
	}

	if err := d.push(code, from, sel); err != nil {
		return err
	}
	d.notify(code, from)
	return nil
}

// push builds the screen routed from code with sel and makes it the top.
// sel becomes the driver's selection only once the screen is built.
func (d *Driver) push(code state.Code, from string, sel Selection) error {
	route, ok := d.routes[code]
	if !ok {
		return &UnmappedCodeError{Code: code, Screen: from}
	}
	next, err := route.Build(sel)
	if err != nil {
		return fmt.Errorf("build screen for %v: %w", code, err)
	}
	d.selection = sel

	if top := d.Top(); top != nil {
		top.OnExit()
		if route.Replace {
			d.stack = d.stack[:len(d.stack)-1]
		}
	}
	d.stack = append(d.stack, next)
	next.OnEnter()
	return nil
}

// pop exits and removes the top screen.
func (d *Driver) pop() {
	top := d.Top()
	if top == nil {
		return
	}
	top.OnExit()
	d.stack = d.stack[:len(d.stack)-1]
}

// unwind removes every screen. Only the top one is entered.
func (d *Driver) unwind() {
	if top := d.Top(); top != nil {
		top.OnExit()
	}
	d.stack = d.stack[:0]
}

func (d *Driver) notify(code state.Code, from string) {
	if d.OnTransition == nil {
		return
	}
	to := ""
	if top := d.Top(); top != nil {
		to = top.Name()
	}
	d.OnTransition(Transition{Code: code, From: from, To: to, Depth: len(d.stack)})
}

// Draw draws the top screen only.
func (d *Driver) Draw(dst gfx.Surface) {
	if top := d.Top(); top != nil {
		top.Draw(dst)
	}
}
