package entity

import (
	"image/color"
	"math"

	"github.com/younwookim/connectfour/internal/gfx"
)

// ButtonStyle is everything a button's image is synthesized from, apart
// from its size and label.
type ButtonStyle struct {
	Font        *gfx.Font
	TextColor   color.RGBA
	BorderColor color.RGBA
	BorderWidth int
	Background  color.RGBA
}

// DefaultButtonStyle is black text with a one pixel black border on light grey.
func DefaultButtonStyle(font *gfx.Font) ButtonStyle {
	return ButtonStyle{
		Font:        font,
		TextColor:   color.RGBA{0, 0, 0, 255},
		BorderColor: color.RGBA{0, 0, 0, 255},
		BorderWidth: 1,
		Background:  color.RGBA{200, 200, 200, 255},
	}
}

// Button is a bordered box with a centered label.
// Every style setter rebuilds the image before returning.
type Button struct {
	*Object

	width, height int
	text          string
	style         ButtonStyle
}

// NewButton creates a button of the given size. Negative sizes are treated as zero.
func NewButton(name string, width, height int, text string, style ButtonStyle, m Motion) *Button {
	b := &Button{
		width:  max(width, 0),
		height: max(height, 0),
		text:   text,
		style:  style,
	}
	b.Object = NewObject(name, b.synthesize(), m)
	return b
}

func (b *Button) synthesize() *gfx.Canvas {
	img := gfx.NewCanvas(b.width, b.height)
	img.Fill(b.style.Background)

	if b.style.Font != nil {
		label := b.style.Font.Render(b.text, b.style.TextColor)
		lw, lh := label.Size()
		x := math.RoundToEven(float64(b.width)/2 - float64(lw)/2)
		y := math.RoundToEven(float64(b.height)/2 - float64(lh)/2)
		img.Blit(label, int(x), int(y))
	}

	img.StrokeRect(img.Bounds(), b.style.BorderColor, b.style.BorderWidth)
	return img
}

func (b *Button) restyle() {
	b.SetImage(b.synthesize())
}

// Text returns the label.
func (b *Button) Text() string { return b.text }

// SetText changes the label.
func (b *Button) SetText(s string) {
	b.text = s
	b.restyle()
}

// Style returns the current style.
func (b *Button) Style() ButtonStyle { return b.style }

// SetStyle replaces the whole style with a single re-synthesis.
func (b *Button) SetStyle(s ButtonStyle) {
	b.style = s
	b.restyle()
}

// TextColor returns the label color.
func (b *Button) TextColor() color.RGBA { return b.style.TextColor }

// SetTextColor changes the label color.
func (b *Button) SetTextColor(c color.RGBA) {
	b.style.TextColor = c
	b.restyle()
}

// Font returns the label font.
func (b *Button) Font() *gfx.Font { return b.style.Font }

// SetFont changes the label font.
func (b *Button) SetFont(f *gfx.Font) {
	b.style.Font = f
	b.restyle()
}

// BorderColor returns the outline color.
func (b *Button) BorderColor() color.RGBA { return b.style.BorderColor }

// SetBorderColor changes the outline color.
func (b *Button) SetBorderColor(c color.RGBA) {
	b.style.BorderColor = c
	b.restyle()
}

// BorderWidth returns the outline width.
func (b *Button) BorderWidth() int { return b.style.BorderWidth }

// SetBorderWidth changes the outline width. Zero or less hides the outline.
func (b *Button) SetBorderWidth(w int) {
	b.style.BorderWidth = w
	b.restyle()
}

// Background returns the fill color.
func (b *Button) Background() color.RGBA { return b.style.Background }

// SetBackground changes the fill color.
func (b *Button) SetBackground(c color.RGBA) {
	b.style.Background = c
	b.restyle()
}
