package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the input of one frame
type InputState struct {
	MouseX     int
	MouseY     int
	MouseClick bool
	Back       bool // Escape
	Quit       bool // window close request
	Column     int  // 1-based column picked with the number row, 0 if none
}

// CursorPosition lets an InputState serve as a gfx.Pointer.
func (in InputState) CursorPosition() (int, int) {
	return in.MouseX, in.MouseY
}

// Idle reports whether nothing was pressed this frame.
func (in InputState) Idle() bool {
	return !in.MouseClick && !in.Back && !in.Quit && in.Column == 0
}

var columnKeys = [...]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// InputSystem polls ebiten for the navigation inputs
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MouseX:     mx,
		MouseY:     my,
		MouseClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Back:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Quit:       ebiten.IsWindowBeingClosed(),
		Column:     pressedColumn(),
	}
}

func pressedColumn() int {
	for i, k := range columnKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i + 1
		}
	}
	return 0
}
