// Package menu provides the button-list screens: the main menu and the
// difficulty select.
package menu

import (
	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/application/system"
	"github.com/younwookim/connectfour/internal/application/ui"
	"github.com/younwookim/connectfour/internal/ecs"
	"github.com/younwookim/connectfour/internal/gfx"
)

var mainItems = []ui.MenuItem{
	{Label: "Player vs Player", Code: state.PlayerVsPlayer},
	{Label: "Player vs Computer", Code: state.PlayerVsComputer},
	{Label: "Computer vs Computer", Code: state.ComputerVsComputer},
	{Label: "Train Computer", Code: state.TrainComputer},
	{Label: "Quit", Code: state.Quit},
}

var difficultyItems = []ui.MenuItem{
	{Label: "Easy", Code: state.EasyMode},
	{Label: "Normal", Code: state.NormalMode},
	{Label: "Hard", Code: state.HardMode},
	{Label: "Master", Code: state.MasterMode},
	{Label: "Back", Code: state.Back},
}

var modeTitles = map[state.Code]string{
	state.PlayerVsComputer:   "Player vs Computer",
	state.ComputerVsComputer: "Computer vs Computer",
	state.TrainComputer:      "Train Computer",
}

// Menu is a screen of vertically stacked buttons under a sliding title.
// Clicking a button ends the screen with the button's code.
type Menu struct {
	name   string
	title  string
	items  []ui.MenuItem
	escape state.Code

	kit    *ui.Kit
	world  *ecs.World
	motion *system.MotionSystem
}

// NewMain creates the main menu. Escape quits.
func NewMain(kit *ui.Kit) *Menu {
	return newMenu("main_menu", "Connect Four", mainItems, state.Quit, kit)
}

// NewDifficulty creates the difficulty select for mode. Escape goes back.
func NewDifficulty(kit *ui.Kit, mode state.Code) *Menu {
	title, ok := modeTitles[mode]
	if !ok {
		title = "Difficulty"
	}
	return newMenu("difficulty", title, difficultyItems, state.Back, kit)
}

func newMenu(name, title string, items []ui.MenuItem, escape state.Code, kit *ui.Kit) *Menu {
	m := &Menu{
		name:   name,
		title:  title,
		items:  items,
		escape: escape,
		kit:    kit,
		motion: system.NewMotionSystem(),
	}
	m.build()
	return m
}

func (m *Menu) build() {
	m.world = ecs.NewWorld()
	m.kit.BuildMenu(m.world, m.title, m.items)
}

// Name implements scene.Screen
func (m *Menu) Name() string { return m.name }

// Title returns the menu heading
func (m *Menu) Title() string { return m.title }

// World exposes the menu widgets
func (m *Menu) World() *ecs.World { return m.world }

// Update implements scene.Screen
func (m *Menu) Update(in system.InputState) state.Code {
	if in.Quit {
		return state.Quit
	}

	m.motion.Update(m.world)
	ecs.UpdateHover(m.world, in)

	if in.Back {
		return m.escape
	}
	return ecs.Clicked(m.world, in, in.MouseClick)
}

// Draw implements scene.Screen
func (m *Menu) Draw(dst gfx.Surface) {
	dst.Fill(m.kit.Background)
	m.world.Draw(dst)
}

// OnEnter restarts the title slide and clears hover highlights.
func (m *Menu) OnEnter() {
	m.build()
}

// OnExit implements scene.Screen
func (m *Menu) OnExit() {}
