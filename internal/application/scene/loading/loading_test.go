package loading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/connectfour/internal/application/scene"
	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/application/system"
	"github.com/younwookim/connectfour/internal/application/ui"
	"github.com/younwookim/connectfour/internal/domain/board"
	"github.com/younwookim/connectfour/internal/gfx"
	"github.com/younwookim/connectfour/internal/infrastructure/config"
)

var (
	_ scene.Screen   = (*Loading)(nil)
	_ scene.Reporter = (*Loading)(nil)
)

func loadKit(t *testing.T) *ui.Kit {
	t.Helper()
	cfg, err := config.NewLoader("../../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	kit, err := ui.NewKit(cfg.Settings, cfg.Theme)
	require.NoError(t, err)
	return kit
}

func humans() [2]string { return [2]string{"Player 1", "Player 2"} }

func TestPrepareMatch_Seats(t *testing.T) {
	kit := loadKit(t)

	tests := []struct {
		mode      state.Code
		names     [2]string
		computers [2]bool
	}{
		{state.PlayerVsComputer, [2]string{"Player 1", "Computer 2"}, [2]bool{false, true}},
		{state.ComputerVsComputer, [2]string{"Computer 1", "Computer 2"}, [2]bool{true, true}},
		{state.TrainComputer, [2]string{"Computer 1", "Computer 2"}, [2]bool{true, true}},
		{state.PlayerVsPlayer, [2]string{"Player 1", "Player 2"}, [2]bool{false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			m := PrepareMatch(kit.Settings, Setup{Mode: tt.mode, Difficulty: state.HardMode, Humans: humans()})
			ps := m.Players()
			for i := range ps {
				assert.Equal(t, tt.names[i], ps[i].Name)
				assert.Equal(t, tt.computers[i], ps[i].IsComputer())
				if ps[i].IsComputer() {
					assert.Equal(t, 5, ps[i].Computer.Depth())
				}
			}
			assert.Equal(t, 7, m.Board().Columns())
		})
	}
}

func TestLoading_WaitsThenReportsMatch(t *testing.T) {
	kit := loadKit(t)
	kit.Settings.Computer.LoadingFrames = 3
	l := New(kit, Setup{Mode: state.PlayerVsComputer, Difficulty: state.EasyMode, Humans: humans()})
	l.OnEnter()

	assert.Equal(t, state.Running, l.Update(system.InputState{}))
	assert.Equal(t, state.Running, l.Update(system.InputState{}))
	assert.Equal(t, state.LoadComputer, l.Update(system.InputState{}))

	m, ok := l.Report().(*board.Match)
	require.True(t, ok)
	assert.Equal(t, 1, m.Players()[1].Computer.Depth())
}

func TestLoading_EscapeAndQuit(t *testing.T) {
	kit := loadKit(t)
	l := New(kit, Setup{Mode: state.ComputerVsComputer, Difficulty: state.NormalMode})

	assert.Equal(t, state.Back, l.Update(system.InputState{Back: true}))
	assert.Equal(t, state.Quit, l.Update(system.InputState{Quit: true, Back: true}))
}

func TestLoading_OnEnterStartsOver(t *testing.T) {
	kit := loadKit(t)
	kit.Settings.Computer.LoadingFrames = 2
	l := New(kit, Setup{Mode: state.TrainComputer, Difficulty: state.EasyMode})

	l.Update(system.InputState{})
	first := l.Report()
	l.OnEnter()
	assert.Nil(t, l.Report())

	assert.Equal(t, state.Running, l.Update(system.InputState{}))
	assert.NotSame(t, first, l.Report())
}

func TestLabelAt(t *testing.T) {
	tests := []struct {
		frame int
		want  string
	}{
		{0, "Loading"},
		{14, "Loading"},
		{15, "Loading."},
		{30, "Loading.."},
		{45, "Loading..."},
		{60, "Loading"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, labelAt(tt.frame), "frame %d", tt.frame)
	}
}

func TestLoading_LabelAnimates(t *testing.T) {
	kit := loadKit(t)
	kit.Settings.Computer.LoadingFrames = 100
	l := New(kit, Setup{Mode: state.PlayerVsComputer})
	for i := 0; i < 15; i++ {
		l.Update(system.InputState{})
	}
	assert.Equal(t, "Loading.", l.Label())
}

func TestLoading_Draw(t *testing.T) {
	kit := loadKit(t)
	l := New(kit, Setup{Mode: state.PlayerVsComputer})

	dst := gfx.NewCanvas(560, 560)
	l.Draw(dst)
	assert.Equal(t, kit.Background, dst.RGBAAt(0, 0))
}
