package entity

import (
	"image/color"

	"github.com/younwookim/connectfour/internal/gfx"
)

// TextStyle selects the font and color of a label.
type TextStyle struct {
	Font  *gfx.Font
	Color color.RGBA
}

// Text is a label whose image is exactly its rendered glyph run.
type Text struct {
	*Object

	text  string
	style TextStyle
}

// NewText creates a label.
func NewText(name, text string, style TextStyle, m Motion) *Text {
	t := &Text{text: text, style: style}
	t.Object = NewObject(name, t.render(), m)
	return t
}

func (t *Text) render() *gfx.Canvas {
	if t.style.Font == nil {
		return gfx.NewCanvas(0, 0)
	}
	return t.style.Font.Render(t.text, t.style.Color)
}

// Text returns the label.
func (t *Text) Text() string { return t.text }

// SetText changes the label.
func (t *Text) SetText(s string) {
	t.text = s
	t.SetImage(t.render())
}

// Color returns the glyph color.
func (t *Text) Color() color.RGBA { return t.style.Color }

// SetColor changes the glyph color.
func (t *Text) SetColor(c color.RGBA) {
	t.style.Color = c
	t.SetImage(t.render())
}

// Font returns the label font.
func (t *Text) Font() *gfx.Font { return t.style.Font }

// SetFont changes the label font.
func (t *Text) SetFont(f *gfx.Font) {
	t.style.Font = f
	t.SetImage(t.render())
}
