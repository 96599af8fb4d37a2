// Package ui resolves the theme into fonts and widget styles and builds the
// widgets every screen shares.
package ui

import (
	"fmt"
	"image/color"

	"github.com/younwookim/connectfour/internal/application/state"
	"github.com/younwookim/connectfour/internal/domain/entity"
	"github.com/younwookim/connectfour/internal/ecs"
	"github.com/younwookim/connectfour/internal/gfx"
	"github.com/younwookim/connectfour/internal/infrastructure/config"
)

// TitleY is the top of screen titles.
const TitleY = 60

// MenuItem is one button of a vertical menu.
type MenuItem struct {
	Label string
	Code  state.Code
}

// Kit is the resolved theme plus the settings widgets depend on.
type Kit struct {
	Settings *config.SettingsConfig

	TitleFont  *gfx.Font
	ButtonFont *gfx.Font
	LabelFont  *gfx.Font

	Background color.RGBA
	TextColor  color.RGBA
	Board      color.RGBA
	Hole       color.RGBA
	Discs      [2]color.RGBA

	Button entity.ButtonStyle
	Hot    entity.ButtonStyle

	buttons config.ButtonsConfig
}

// NewKit loads the theme fonts and builds the styles.
func NewKit(settings *config.SettingsConfig, theme *config.ThemeConfig) (*Kit, error) {
	if err := gfx.InitFonts(); err != nil {
		return nil, err
	}

	title, err := gfx.LoadFont(theme.Fonts.Title.Name, theme.Fonts.Title.Size)
	if err != nil {
		return nil, fmt.Errorf("title font: %w", err)
	}
	button, err := gfx.LoadFont(theme.Fonts.Button.Name, theme.Fonts.Button.Size)
	if err != nil {
		return nil, fmt.Errorf("button font: %w", err)
	}
	label, err := gfx.LoadFont(theme.Fonts.Label.Name, theme.Fonts.Label.Size)
	if err != nil {
		return nil, fmt.Errorf("label font: %w", err)
	}

	c := theme.Colors
	style := entity.ButtonStyle{
		Font:        button,
		TextColor:   c.ButtonText.RGBA(),
		BorderColor: c.Border.RGBA(),
		BorderWidth: theme.Buttons.BorderWidth,
		Background:  c.Button.RGBA(),
	}
	hot := style
	hot.Background = c.ButtonHover.RGBA()

	return &Kit{
		Settings:   settings,
		TitleFont:  title,
		ButtonFont: button,
		LabelFont:  label,
		Background: c.Background.RGBA(),
		TextColor:  c.Text.RGBA(),
		Board:      c.Board.RGBA(),
		Hole:       c.Hole.RGBA(),
		Discs:      [2]color.RGBA{c.First.RGBA(), c.Second.RGBA()},
		Button:     style,
		Hot:        hot,
		buttons:    theme.Buttons,
	}, nil
}

// ScreenSize returns the logical screen size.
func (k *Kit) ScreenSize() (w, h int) {
	return k.Settings.Display.ScreenWidth, k.Settings.Display.ScreenHeight
}

// Motion returns a resting motion at (x, y) honoring the clamp setting.
func (k *Kit) Motion(x, y float64) entity.Motion {
	return entity.Motion{X: x, Y: y, SymmetricClamp: k.Settings.Kinematics.SymmetricClamp}
}

// CenterX returns the x that centers something width pixels wide.
func (k *Kit) CenterX(width int) float64 {
	w, _ := k.ScreenSize()
	return float64((w - width) / 2)
}

// SlotY returns the top of the i-th menu button.
func (k *Kit) SlotY(i int) float64 {
	return float64(k.buttons.Top + i*(k.buttons.Height+k.buttons.Spacing))
}

// NewButton creates a themed button centered in menu slot i.
func (k *Kit) NewButton(name, label string, slot int) *entity.Button {
	return entity.NewButton(name, k.buttons.Width, k.buttons.Height, label, k.Button,
		k.Motion(k.CenterX(k.buttons.Width), k.SlotY(slot)))
}

// NewLabel creates a label horizontally centered at y.
func (k *Kit) NewLabel(name, text string, y float64) *entity.Text {
	t := entity.NewText(name, text, entity.TextStyle{Font: k.LabelFont, Color: k.TextColor}, k.Motion(0, y))
	t.SetX(k.CenterX(t.Width()))
	return t
}

// SpawnTitle adds a title that slides in from the left edge and comes to
// rest centered. A non-positive title speed places it directly.
func (k *Kit) SpawnTitle(w *ecs.World, text string) ecs.EntityID {
	style := entity.TextStyle{Font: k.TitleFont, Color: k.TextColor}
	kin := k.Settings.Kinematics

	t := entity.NewText("title", text, style, k.Motion(0, TitleY))
	restX := k.CenterX(t.Width())
	if kin.TitleSpeed <= 0 {
		t.SetX(restX)
		return w.Spawn(t)
	}

	m := k.Motion(-float64(t.Width()), TitleY)
	m.Velocity = kin.TitleSpeed
	m.TerminalVelocity = kin.TitleSpeed
	m.Acceleration = kin.TitleAccel
	t = entity.NewText("title", text, style, m)

	id := w.SpawnAnimated(t)
	w.SettleAt(id, restX, TitleY)
	return id
}

// BuildMenu fills w with a sliding title and one button per item.
func (k *Kit) BuildMenu(w *ecs.World, title string, items []MenuItem) {
	k.SpawnTitle(w, title)
	for i, it := range items {
		w.AddButton(k.NewButton(it.Code.String(), it.Label, i), it.Code, k.Hot)
	}
}
