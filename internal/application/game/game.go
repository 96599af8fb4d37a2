// Package game adapts the navigation driver to ebiten.Game.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/connectfour/internal/application/nav"
	"github.com/younwookim/connectfour/internal/application/replay"
	"github.com/younwookim/connectfour/internal/application/system"
	"github.com/younwookim/connectfour/internal/infrastructure/render"
)

// InputSource yields one input snapshot per tick.
// system.InputSystem satisfies it.
type InputSource interface {
	GetInput() system.InputState
}

// Game implements ebiten.Game on top of a nav.Driver.
type Game struct {
	driver   *nav.Driver
	input    InputSource
	recorder *replay.Recorder
	cache    *render.ImageCache
	screenW  int
	screenH  int
	debug    bool
}

// New creates a Game that feeds input to driver every tick.
func New(driver *nav.Driver, input InputSource, screenW, screenH int) *Game {
	return &Game{
		driver:  driver,
		input:   input,
		cache:   render.NewImageCache(),
		screenW: screenW,
		screenH: screenH,
	}
}

// SetRecorder records every polled input into r until the driver stops.
func (g *Game) SetRecorder(r *replay.Recorder) {
	g.recorder = r
}

// SetDebug toggles the TPS and stack overlay.
func (g *Game) SetDebug(on bool) {
	g.debug = on
}

// Update polls input and advances the driver.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	in := g.input.GetInput()
	if g.recorder != nil && g.recorder.IsRecording() {
		g.recorder.RecordFrame(in)
	}

	err := g.driver.Update(in)
	if err != nil && g.recorder != nil {
		g.recorder.Stop()
	}
	if errors.Is(err, nav.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw renders the top screen.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.driver.Draw(render.NewScreen(screen, g.cache))
	if g.debug {
		msg := fmt.Sprintf("TPS %.0f  %s", ebiten.ActualTPS(), strings.Join(g.driver.Stack(), " > "))
		ebitenutil.DebugPrintAt(screen, msg, 4, g.screenH-16)
	}
	g.cache.Sweep()
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
