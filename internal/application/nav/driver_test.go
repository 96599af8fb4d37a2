package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/connectfour/internal/application/scene"
	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/application/system"
	"github.com/younwookim/connectfour/internal/gfx"
)

// mockScreen is a test double for scene.Screen
type mockScreen struct {
	name          string
	next          state.Code
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastInput     system.InputState
}

func (m *mockScreen) Name() string { return m.name }

func (m *mockScreen) Update(in system.InputState) state.Code {
	m.updateCalled++
	m.lastInput = in
	code := m.next
	m.next = state.Running
	return code
}

func (m *mockScreen) Draw(dst gfx.Surface) { m.drawCalled++ }
func (m *mockScreen) OnEnter()             { m.onEnterCalled++ }
func (m *mockScreen) OnExit()              { m.onExitCalled++ }

// reportingScreen hands a payload to the next screen
type reportingScreen struct {
	mockScreen
	payload any
}

func (r *reportingScreen) Report() any { return r.payload }

// harness builds a fresh mock for every route and remembers them
type harness struct {
	built []*mockScreen
	sels  []Selection
}

func (h *harness) route(name string, replace bool) Route {
	return Route{
		Build: func(sel Selection) (scene.Screen, error) {
			m := &mockScreen{name: name}
			h.built = append(h.built, m)
			h.sels = append(h.sels, sel)
			return m, nil
		},
		Replace: replace,
	}
}

func (h *harness) last() *mockScreen { return h.built[len(h.built)-1] }

func (h *harness) routes() map[state.Code]Route {
	return map[state.Code]Route{
		state.MainMenu:           h.route("main", false),
		state.PlayerVsPlayer:     h.route("game", false),
		state.PlayerVsComputer:   h.route("difficulty", false),
		state.ComputerVsComputer: h.route("difficulty", false),
		state.EasyMode:           h.route("loading", false),
		state.HardMode:           h.route("loading", false),
		state.LoadComputer:       h.route("game", true),
		state.Winner:             h.route("result", true),
	}
}

func newDriver(t *testing.T) (*Driver, *harness) {
	t.Helper()
	h := &harness{}
	d, err := New(h.routes(), state.MainMenu, Selection{Players: [2]string{"P1", "P2"}})
	require.NoError(t, err)
	return d, h
}

// step makes the top mock return code on the next update
func step(t *testing.T, d *Driver, code state.Code) error {
	t.Helper()
	top, ok := d.Top().(*mockScreen)
	require.True(t, ok)
	top.next = code
	return d.Update(system.InputState{})
}

func TestNew_EntersStartScreen(t *testing.T) {
	d, h := newDriver(t)

	assert.Equal(t, 1, d.Depth())
	assert.Equal(t, []string{"main"}, d.Stack())
	assert.Equal(t, 1, h.last().onEnterCalled)
}

func TestNew_UnmappedStart(t *testing.T) {
	_, err := New(map[state.Code]Route{}, state.MainMenu, Selection{})

	var unmapped *UnmappedCodeError
	require.ErrorAs(t, err, &unmapped)
	assert.Equal(t, state.MainMenu, unmapped.Code)
}

func TestNew_StartOnModeRecordsSelection(t *testing.T) {
	h := &harness{}
	d, err := New(h.routes(), state.PlayerVsComputer, Selection{})
	require.NoError(t, err)

	assert.Equal(t, state.PlayerVsComputer, d.Selection().Mode)
	assert.Equal(t, []string{"difficulty"}, d.Stack())
}

func TestDriver_RunningStays(t *testing.T) {
	d, h := newDriver(t)
	main := h.last()

	for i := 0; i < 3; i++ {
		require.NoError(t, d.Update(system.InputState{MouseX: i}))
	}
	assert.Equal(t, 3, main.updateCalled)
	assert.Equal(t, 2, main.lastInput.MouseX, "input forwarded")
	assert.Equal(t, 1, d.Depth())
}

func TestDriver_PushAndBack(t *testing.T) {
	d, h := newDriver(t)
	main := h.last()

	require.NoError(t, step(t, d, state.PlayerVsPlayer))
	assert.Equal(t, []string{"main", "game"}, d.Stack())
	assert.Equal(t, 1, main.onExitCalled, "covered screen exits")
	game := h.last()
	assert.Equal(t, 1, game.onEnterCalled)

	require.NoError(t, step(t, d, state.Back))
	assert.Equal(t, []string{"main"}, d.Stack())
	assert.Equal(t, 1, game.onExitCalled)
	assert.Equal(t, 2, main.onEnterCalled, "uncovered screen re-enters")
	assert.Same(t, main, d.Top(), "previous screen is resumed, not rebuilt")
}

func TestDriver_BackThroughDifficultyAndReplacedGame(t *testing.T) {
	d, h := newDriver(t)

	require.NoError(t, step(t, d, state.PlayerVsComputer))
	difficulty := h.last()
	require.NoError(t, step(t, d, state.EasyMode))
	require.NoError(t, step(t, d, state.LoadComputer))
	assert.Equal(t, []string{"main", "difficulty", "game"}, d.Stack(), "game replaced loading")

	require.NoError(t, step(t, d, state.Back))
	assert.Same(t, difficulty, d.Top())

	require.NoError(t, step(t, d, state.Back))
	assert.Equal(t, []string{"main"}, d.Stack())
}

func TestDriver_BackAtRootQuits(t *testing.T) {
	d, h := newDriver(t)

	err := step(t, d, state.Back)
	assert.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, 0, d.Depth())
	assert.Equal(t, 1, h.last().onExitCalled)
}

func TestDriver_QuitUnwindsEverything(t *testing.T) {
	d, h := newDriver(t)
	require.NoError(t, step(t, d, state.PlayerVsComputer))
	require.NoError(t, step(t, d, state.HardMode))
	require.Equal(t, 3, d.Depth())

	err := step(t, d, state.Quit)
	require.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, 0, d.Depth())
	assert.Nil(t, d.Top())
	for _, m := range h.built {
		assert.Equal(t, m.onEnterCalled, m.onExitCalled, "%s: enter and exit pair up", m.name)
	}

	assert.ErrorIs(t, d.Update(system.InputState{}), ErrQuit, "nothing left to run")
}

func TestDriver_MainMenuUnwindsAndRebuilds(t *testing.T) {
	d, h := newDriver(t)
	first := h.last()
	require.NoError(t, step(t, d, state.PlayerVsComputer))
	require.NoError(t, step(t, d, state.EasyMode))
	require.NoError(t, step(t, d, state.LoadComputer))
	require.NoError(t, step(t, d, state.Winner))
	assert.Equal(t, []string{"main", "difficulty", "result"}, d.Stack())

	require.NoError(t, step(t, d, state.MainMenu))
	assert.Equal(t, []string{"main"}, d.Stack())
	assert.NotSame(t, first, d.Top(), "a fresh main menu")
	assert.Equal(t, Selection{Players: [2]string{"P1", "P2"}}, d.Selection())
}

func TestDriver_MainMenuAndWinnerRouteDifferently(t *testing.T) {
	d, _ := newDriver(t)
	require.NoError(t, step(t, d, state.PlayerVsPlayer))

	require.NoError(t, step(t, d, state.Winner))
	assert.Equal(t, []string{"main", "result"}, d.Stack())
}

func TestDriver_SelectionFollowsCodes(t *testing.T) {
	d, h := newDriver(t)

	require.NoError(t, step(t, d, state.PlayerVsComputer))
	assert.Equal(t, state.PlayerVsComputer, h.sels[len(h.sels)-1].Mode)

	require.NoError(t, step(t, d, state.HardMode))
	sel := h.sels[len(h.sels)-1]
	assert.Equal(t, state.PlayerVsComputer, sel.Mode)
	assert.Equal(t, state.HardMode, sel.Difficulty)
	assert.Equal(t, [2]string{"P1", "P2"}, sel.Players)
}

func TestDriver_ReporterPayload(t *testing.T) {
	h := &harness{}
	routes := h.routes()
	reporter := &reportingScreen{mockScreen: mockScreen{name: "game"}, payload: "Player 1"}
	routes[state.PlayerVsPlayer] = Route{Build: func(Selection) (scene.Screen, error) { return reporter, nil }}

	d, err := New(routes, state.MainMenu, Selection{})
	require.NoError(t, err)
	require.NoError(t, step(t, d, state.PlayerVsPlayer))

	reporter.next = state.Winner
	require.NoError(t, d.Update(system.InputState{}))
	assert.Equal(t, "Player 1", h.sels[len(h.sels)-1].Payload)
	assert.Equal(t, "Player 1", d.Selection().Payload)
}

func TestDriver_UnmappedCode(t *testing.T) {
	d, _ := newDriver(t)

	err := step(t, d, state.TrainComputer)

	var unmapped *UnmappedCodeError
	require.ErrorAs(t, err, &unmapped)
	assert.Equal(t, state.TrainComputer, unmapped.Code)
	assert.Equal(t, "main", unmapped.Screen)
	assert.Contains(t, err.Error(), "TRAIN_COMPUTER")
	assert.Contains(t, err.Error(), `"main"`)
	assert.Equal(t, []string{"main"}, d.Stack(), "stack untouched")
	assert.Equal(t, Selection{Players: [2]string{"P1", "P2"}}, d.Selection(), "selection untouched")
}

func TestDriver_BuildError(t *testing.T) {
	h := &harness{}
	routes := h.routes()
	boom := errors.New("no fonts")
	var offered Selection
	routes[state.PlayerVsPlayer] = Route{Build: func(sel Selection) (scene.Screen, error) {
		offered = sel
		return nil, boom
	}}

	d, err := New(routes, state.MainMenu, Selection{})
	require.NoError(t, err)

	err = step(t, d, state.PlayerVsPlayer)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"main"}, d.Stack())
	assert.Equal(t, 0, h.last().onExitCalled, "top kept entered")
	assert.Equal(t, state.PlayerVsPlayer, offered.Mode, "build sees the new selection")
	assert.Equal(t, Selection{}, d.Selection(), "failed build leaves the selection as it was")
}

func TestDriver_FailedDifficultyKeepsSelection(t *testing.T) {
	d, _ := newDriver(t)
	require.NoError(t, step(t, d, state.PlayerVsComputer))

	// NORMAL_MODE has no route in the harness
	err := step(t, d, state.NormalMode)
	var unmapped *UnmappedCodeError
	require.ErrorAs(t, err, &unmapped)

	assert.Equal(t, state.PlayerVsComputer, d.Selection().Mode)
	assert.Equal(t, state.Code(0), d.Selection().Difficulty)
	assert.Equal(t, []string{"main", "difficulty"}, d.Stack())
}

func TestDriver_DrawTopOnly(t *testing.T) {
	d, h := newDriver(t)
	main := h.last()
	require.NoError(t, step(t, d, state.PlayerVsPlayer))
	game := h.last()

	d.Draw(gfx.NewCanvas(1, 1))
	assert.Equal(t, 0, main.drawCalled)
	assert.Equal(t, 1, game.drawCalled)
}

func TestDriver_OnTransition(t *testing.T) {
	d, _ := newDriver(t)
	var seen []Transition
	d.OnTransition = func(tr Transition) { seen = append(seen, tr) }

	require.NoError(t, d.Update(system.InputState{}))
	require.NoError(t, step(t, d, state.PlayerVsPlayer))
	require.NoError(t, step(t, d, state.Back))
	_ = step(t, d, state.Quit)

	require.Len(t, seen, 3, "RUNNING is not a transition")
	assert.Equal(t, Transition{Code: state.PlayerVsPlayer, From: "main", To: "game", Depth: 2}, seen[0])
	assert.Equal(t, Transition{Code: state.Back, From: "game", To: "main", Depth: 1}, seen[1])
	assert.Equal(t, Transition{Code: state.Quit, From: "main", To: "", Depth: 0}, seen[2])
	assert.Equal(t, "QUIT: main -> (none) [depth 0]", seen[2].String())
}
