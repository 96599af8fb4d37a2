package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/domain/entity"
	"github.com/younwookim/connectfour/internal/ecs"
	"github.com/younwookim/connectfour/internal/infrastructure/config"
)

func loadKit(t *testing.T) *Kit {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	kit, err := NewKit(cfg.Settings, cfg.Theme)
	require.NoError(t, err)
	return kit
}

func TestNewKit(t *testing.T) {
	kit := loadKit(t)

	assert.Equal(t, "gobold", kit.TitleFont.Name())
	assert.Equal(t, 22.0, kit.ButtonFont.Size())
	assert.Equal(t, kit.Button.Font, kit.ButtonFont)
	assert.NotEqual(t, kit.Button.Background, kit.Hot.Background)
	assert.Equal(t, kit.Button.TextColor, kit.Hot.TextColor, "hover only swaps the background")
	assert.Equal(t, 2, kit.Button.BorderWidth)
}

func TestNewKit_UnknownFont(t *testing.T) {
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	cfg.Theme.Fonts.Button.Name = "comic"

	_, err = NewKit(cfg.Settings, cfg.Theme)
	assert.ErrorContains(t, err, "button font")
}

func TestKit_ButtonsStackVertically(t *testing.T) {
	kit := loadKit(t)

	a := kit.NewButton("a", "A", 0)
	b := kit.NewButton("b", "B", 1)

	assert.Equal(t, 280, a.Width())
	assert.Equal(t, 50, a.Height())
	assert.Equal(t, 140, a.X(), "centered on a 560 wide screen")
	assert.Equal(t, 170, a.Y())
	assert.Equal(t, 170+50+16, b.Y())
	assert.False(t, a.Rect().Overlaps(b.Rect()))
}

func TestKit_NewLabelCentered(t *testing.T) {
	kit := loadKit(t)
	l := kit.NewLabel("l", "Draw!", 100)

	w, _ := kit.ScreenSize()
	left := l.X()
	right := w - (l.X() + l.Width())
	assert.InDelta(t, left, right, 1)
	assert.Equal(t, 100, l.Y())
}

func TestKit_SpawnTitleSlidesIn(t *testing.T) {
	kit := loadKit(t)
	w := ecs.NewWorld()

	id := kit.SpawnTitle(w, "Connect Four")
	title := w.Get(id)

	assert.Less(t, title.Rect().Max.X, 1, "starts left of the screen")
	_, animated := w.Animate[id]
	assert.True(t, animated)
	st, ok := w.Settle[id]
	require.True(t, ok)
	assert.Equal(t, kit.CenterX(title.Rect().Dx()), st.Target.X())
}

func TestKit_SpawnTitleWithoutSpeed(t *testing.T) {
	kit := loadKit(t)
	kit.Settings.Kinematics.TitleSpeed = 0
	w := ecs.NewWorld()

	id := kit.SpawnTitle(w, "Connect Four")
	x, _ := w.Get(id).Position()
	assert.Equal(t, int(kit.CenterX(w.Get(id).Rect().Dx())), x)
	assert.Empty(t, w.Settle)
}

func TestKit_BuildMenu(t *testing.T) {
	kit := loadKit(t)
	w := ecs.NewWorld()

	kit.BuildMenu(w, "Pick", []MenuItem{
		{Label: "Easy", Code: state.EasyMode},
		{Label: "Back", Code: state.Back},
	})

	assert.Equal(t, 3, w.Len())
	assert.Len(t, w.Button, 2)

	var codes []state.Code
	w.Each(func(id ecs.EntityID, _ entity.Widget) {
		if a, ok := w.Action[id]; ok {
			codes = append(codes, a.Code)
		}
	})
	assert.Equal(t, []state.Code{state.EasyMode, state.Back}, codes)
}

func TestKit_MotionCarriesClamp(t *testing.T) {
	kit := loadKit(t)
	kit.Settings.Kinematics.SymmetricClamp = true

	m := kit.Motion(1, 2)
	assert.True(t, m.SymmetricClamp)
	assert.Equal(t, 1.0, m.X)
	assert.Equal(t, 2.0, m.Y)
}
