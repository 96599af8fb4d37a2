// Package loading provides the transitional screen shown while a match with
// computer players is prepared.
package loading

import (
	"strings"
	"time"

	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/application/system"
	"github.com/younwookim/connectfour/internal/application/ui"
	"github.com/younwookim/connectfour/internal/domain/board"
	"github.com/younwookim/connectfour/internal/domain/entity"
	"github.com/younwookim/connectfour/internal/ecs"
	"github.com/younwookim/connectfour/internal/gfx"
	"github.com/younwookim/connectfour/internal/infrastructure/config"
)

const dotFrames = 15 // frames per animation step of the trailing dots

// Setup selects the match to prepare.
type Setup struct {
	Mode       state.Code
	Difficulty state.Code
	Humans     [2]string
}

// PrepareMatch builds a match for setup. Player vs computer seats the first
// human against a computer; the computer modes seat two computers of the
// same depth.
func PrepareMatch(settings *config.SettingsConfig, setup Setup) *board.Match {
	depth := settings.Computer.DepthFor(setup.Difficulty)
	seed := settings.Computer.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	names := settings.Computer.Names

	cpu := func(i int) board.Player {
		return board.Player{Name: names[i], Computer: board.NewComputer(depth, seed+uint64(i))}
	}

	var p1, p2 board.Player
	switch setup.Mode {
	case state.PlayerVsComputer:
		p1, p2 = board.Player{Name: setup.Humans[0]}, cpu(1)
	case state.ComputerVsComputer, state.TrainComputer:
		p1, p2 = cpu(0), cpu(1)
	default:
		p1, p2 = board.Player{Name: setup.Humans[0]}, board.Player{Name: setup.Humans[1]}
	}
	return board.NewMatch(settings.Board.Columns, settings.Board.Rows, p1, p2)
}

// Loading shows an animated label for at least the configured number of
// frames, then ends with state.LoadComputer and reports the prepared
// *board.Match.
type Loading struct {
	kit   *ui.Kit
	setup Setup
	world *ecs.World
	label *entity.Text

	match  *board.Match
	frames int
}

// New creates the loading screen for setup.
func New(kit *ui.Kit, setup Setup) *Loading {
	l := &Loading{kit: kit, setup: setup}
	l.reset()
	return l
}

// Name implements scene.Screen
func (l *Loading) Name() string { return "loading" }

// Label returns the text currently shown
func (l *Loading) Label() string { return l.label.Text() }

// Update implements scene.Screen
func (l *Loading) Update(in system.InputState) state.Code {
	if in.Quit {
		return state.Quit
	}

	if l.match == nil {
		l.match = PrepareMatch(l.kit.Settings, l.setup)
	}
	l.frames++
	l.label.SetText(labelAt(l.frames))

	if in.Back {
		return state.Back
	}
	if l.frames >= l.kit.Settings.Computer.LoadingFrames {
		return state.LoadComputer
	}
	return state.Running
}

// labelAt returns the label for a frame: "Loading" followed by zero to
// three dots.
func labelAt(frame int) string {
	return "Loading" + strings.Repeat(".", (frame/dotFrames)%4)
}

// Report returns the prepared match.
func (l *Loading) Report() any { return l.match }

// Draw implements scene.Screen
func (l *Loading) Draw(dst gfx.Surface) {
	dst.Fill(l.kit.Background)
	l.world.Draw(dst)
}

// OnEnter starts over with a fresh match.
func (l *Loading) OnEnter() { l.reset() }

func (l *Loading) reset() {
	_, h := l.kit.ScreenSize()
	l.world = ecs.NewWorld()
	l.label = l.kit.NewLabel("loading", labelAt(0), float64(h/2))
	l.world.Spawn(l.label)
	l.match = nil
	l.frames = 0
}

// OnExit implements scene.Screen
func (l *Loading) OnExit() {}
