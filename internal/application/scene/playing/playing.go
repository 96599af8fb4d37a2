// Package playing provides the gameplay screen.
package playing

import (
	"fmt"
	"image"
	"image/color"

	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/application/system"
	"github.com/younwookim/connectfour/internal/application/ui"
	"github.com/younwookim/connectfour/internal/domain/board"
	"github.com/younwookim/connectfour/internal/domain/entity"
	"github.com/younwookim/connectfour/internal/ecs"
	"github.com/younwookim/connectfour/internal/gfx"
)

// discRadius is the disc radius as a fraction of the cell size
const discRadius = 0.4

// Tally counts training results.
type Tally struct {
	Wins  [2]int
	Draws int
}

// Games returns the number of finished games.
func (t Tally) Games() int { return t.Wins[0] + t.Wins[1] + t.Draws }

// Playing is the gameplay screen.
//
// It runs in one of three phases: state.Running while a human is to move,
// state.ComputerTurn while a computer thinks, and state.Winner once the
// match is over. A click in the Winner phase ends the screen with
// state.Winner and the board.Outcome as report. In training the screen
// never ends on its own: finished games are tallied and restarted.
type Playing struct {
	kit      *ui.Kit
	match    *board.Match
	training bool

	world  *ecs.World
	motion *system.MotionSystem
	placed []ecs.EntityID // disc entities, in move order
	discs  [2]*gfx.Canvas
	ghost  *entity.Object
	status *entity.Text
	banner *entity.Text

	left, top, cell int

	phase   state.Code
	wait    int
	tally   Tally
	outcome board.Outcome
}

// New creates the gameplay screen for match. mode TrainComputer turns on
// training.
func New(kit *ui.Kit, match *board.Match, mode state.Code) *Playing {
	p := &Playing{
		kit:      kit,
		match:    match,
		training: mode == state.TrainComputer,
		motion:   system.NewMotionSystem(),
	}

	b := match.Board()
	p.cell = kit.Settings.Board.CellSize
	w, h := kit.ScreenSize()
	p.left = (w - b.Columns()*p.cell) / 2
	p.top = h - b.Rows()*p.cell
	for i := range p.discs {
		p.discs[i] = discImage(p.cell, kit.Discs[i])
	}

	p.build()
	return p
}

func discImage(cell int, c color.RGBA) *gfx.Canvas {
	img := gfx.NewCanvas(cell, cell)
	half := float32(cell) / 2
	img.FillCircle(half, half, float32(cell)*discRadius, c)
	return img
}

func (p *Playing) boardImage() *gfx.Canvas {
	b := p.match.Board()
	img := gfx.NewCanvas(b.Columns()*p.cell, b.Rows()*p.cell)
	img.Fill(p.kit.Board)
	half := float32(p.cell) / 2
	for c := 0; c < b.Columns(); c++ {
		for r := 0; r < b.Rows(); r++ {
			img.FillCircle(float32(c*p.cell)+half, float32(r*p.cell)+half, float32(p.cell)*discRadius, p.kit.Hole)
		}
	}
	return img
}

// build lays out the widgets for the current match position.
func (p *Playing) build() {
	p.world = ecs.NewWorld()
	p.placed = nil
	p.world.Spawn(entity.NewObject("board", p.boardImage(), p.kit.Motion(float64(p.left), float64(p.top))))

	for _, mv := range p.match.Moves() {
		x, y := p.cellOrigin(mv.Column, mv.Row)
		p.placed = append(p.placed, p.world.Spawn(entity.NewObject("disc", p.discs[mv.Disc-1], p.kit.Motion(x, y))))
	}

	p.ghost = entity.NewObject("ghost", p.discs[0], p.kit.Motion(float64(p.left), float64(p.top-p.cell)))
	p.ghost.SetVisible(false)
	p.world.Spawn(p.ghost)

	p.status = p.kit.NewLabel("status", "", 4)
	p.world.Spawn(p.status)

	_, h := p.kit.ScreenSize()
	p.banner = p.kit.NewLabel("banner", "", float64(h/2))
	p.banner.SetVisible(false)
	p.world.Spawn(p.banner)

	p.phase = p.match.Status()
	p.wait = 0
	if p.phase == state.Winner {
		p.finish()
	}
	p.refresh()
}

// cellOrigin returns the top-left corner of a board cell. Row 0 is the
// bottom row.
func (p *Playing) cellOrigin(col, row int) (x, y float64) {
	rows := p.match.Board().Rows()
	return float64(p.left + col*p.cell), float64(p.top + (rows-1-row)*p.cell)
}

// ColumnCenter returns a point inside the given column.
func (p *Playing) ColumnCenter(col int) image.Point {
	return image.Pt(p.left+col*p.cell+p.cell/2, p.top+p.cell/2)
}

// columnAt maps an x coordinate to a board column.
func (p *Playing) columnAt(x int) (int, bool) {
	cols := p.match.Board().Columns()
	if x < p.left || x >= p.left+cols*p.cell {
		return -1, false
	}
	return (x - p.left) / p.cell, true
}

// Name implements scene.Screen
func (p *Playing) Name() string { return "playing" }

// Phase returns state.Running, state.ComputerTurn or state.Winner.
func (p *Playing) Phase() state.Code { return p.phase }

// Match returns the match being played
func (p *Playing) Match() *board.Match { return p.match }

// Tally returns the training results so far
func (p *Playing) Tally() Tally { return p.tally }

// Status returns the status line
func (p *Playing) Status() string { return p.status.Text() }

// Banner returns the end-of-game banner, empty while the game runs
func (p *Playing) Banner() string {
	if !p.banner.IsVisible() {
		return ""
	}
	return p.banner.Text()
}

// Animating reports whether a disc is still falling.
func (p *Playing) Animating() bool { return p.motion.Busy(p.world) }

// Report returns the outcome of the finished match.
func (p *Playing) Report() any { return p.outcome }

// Update implements scene.Screen
func (p *Playing) Update(in system.InputState) state.Code {
	if in.Quit {
		return state.Quit
	}

	p.motion.Update(p.world)
	p.updateGhost(in)

	if in.Back {
		return state.Back
	}
	if p.Animating() {
		return state.Running
	}

	switch p.phase {
	case state.Running:
		if col, ok := p.pick(in); ok {
			p.play(col)
		}
	case state.ComputerTurn:
		p.wait++
		if p.wait >= p.kit.Settings.Computer.ThinkFrames {
			if col, ok := p.match.ComputerMove(); ok {
				p.play(col)
			}
		}
	case state.Winner:
		p.banner.SetVisible(true)
		if p.training {
			p.wait++
			if p.wait >= p.kit.Settings.Training.RestartFrames {
				p.restart()
			}
			return state.Running
		}
		if in.MouseClick {
			return state.Winner
		}
	}
	return state.Running
}

// pick returns the column a human chose this frame.
func (p *Playing) pick(in system.InputState) (int, bool) {
	col, ok := -1, false
	switch {
	case in.Column > 0:
		col, ok = in.Column-1, true
	case in.MouseClick:
		col, ok = p.columnAt(in.MouseX)
	}
	if !ok || !p.match.Board().CanDrop(col) {
		return -1, false
	}
	return col, true
}

// play advances the match and drops the disc.
func (p *Playing) play(col int) {
	before := len(p.match.Moves())
	p.phase = p.match.Advance(col)
	p.wait = 0

	if mv, ok := p.match.LastMove(); ok && len(p.match.Moves()) > before {
		p.dropDisc(mv)
	}
	if p.phase == state.Winner {
		p.finish()
	}
	p.refresh()
}

func (p *Playing) dropDisc(mv board.Move) {
	x, y := p.cellOrigin(mv.Column, mv.Row)
	m := p.kit.Motion(x, float64(p.top-p.cell))
	m.Direction = 90
	m.Acceleration = p.kit.Settings.Board.DiscGravity
	m.TerminalVelocity = p.kit.Settings.Board.DiscTerminalVelocity

	id := p.world.SpawnAnimated(entity.NewObject("disc", p.discs[mv.Disc-1], m))
	p.world.SettleAt(id, x, y)
	p.placed = append(p.placed, id)
}

// restart clears the board for the next training game. The board, ghost
// and labels stay in place.
func (p *Playing) restart() {
	p.match.Reset()
	for _, id := range p.placed {
		p.world.DestroyEntity(id)
	}
	p.placed = p.placed[:0]
	p.banner.SetVisible(false)
	p.phase = p.match.Status()
	p.wait = 0
	p.refresh()
}

// finish records the outcome and prepares the banner.
func (p *Playing) finish() {
	p.outcome, _ = p.match.Outcome()
	if p.outcome.Draw {
		p.banner.SetText("Draw!")
	} else {
		p.banner.SetText(p.outcome.Winner + " wins!")
	}
	p.banner.SetX(p.kit.CenterX(p.banner.Width()))

	if !p.training {
		return
	}
	if p.outcome.Draw {
		p.tally.Draws++
	} else if mv, ok := p.match.LastMove(); ok {
		p.tally.Wins[mv.Disc-1]++
	}
}

// refresh updates the status line.
func (p *Playing) refresh() {
	var text string
	switch {
	case p.training:
		ps := p.match.Players()
		text = fmt.Sprintf("%s %d - %d %s  draws %d", ps[0].Name, p.tally.Wins[0], p.tally.Wins[1], ps[1].Name, p.tally.Draws)
	case p.phase == state.ComputerTurn:
		text = p.match.Current().Name + " is thinking"
	case p.phase == state.Running:
		text = p.match.Current().Name + "'s turn"
	default:
		text = "Click to continue"
	}
	p.status.SetText(text)
	p.status.SetX(p.kit.CenterX(p.status.Width()))
}

// updateGhost shows the current player's disc above the hovered column.
func (p *Playing) updateGhost(in system.InputState) {
	col, ok := p.columnAt(in.MouseX)
	show := ok && p.phase == state.Running && !p.Animating()
	p.ghost.SetVisible(show)
	if !show {
		return
	}
	p.ghost.SetImage(p.discs[p.match.CurrentDisc()-1])
	p.ghost.SetX(float64(p.left + col*p.cell))
}

// Draw implements scene.Screen
func (p *Playing) Draw(dst gfx.Surface) {
	dst.Fill(p.kit.Background)
	p.world.Draw(dst)
}

// OnEnter picks the phase up from the match.
func (p *Playing) OnEnter() {
	p.phase = p.match.Status()
	p.refresh()
}

// OnExit implements scene.Screen
func (p *Playing) OnExit() {}
