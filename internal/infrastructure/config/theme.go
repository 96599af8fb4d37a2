package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// ThemeConfig is the root config for theme.json
type ThemeConfig struct {
	Fonts   FontsConfig   `json:"fonts"`
	Colors  ColorsConfig  `json:"colors"`
	Buttons ButtonsConfig `json:"buttons"`
}

type FontsConfig struct {
	Title  FontSpec `json:"title"`
	Button FontSpec `json:"button"`
	Label  FontSpec `json:"label"`
}

// FontSpec names a registered font face and its size in points
type FontSpec struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
}

type ColorsConfig struct {
	Background  Color `json:"background"`
	Text        Color `json:"text"`
	Button      Color `json:"button"`
	ButtonHover Color `json:"buttonHover"`
	ButtonText  Color `json:"buttonText"`
	Border      Color `json:"border"`
	Board       Color `json:"board"`
	Hole        Color `json:"hole"`
	First       Color `json:"first"`
	Second      Color `json:"second"`
}

type ButtonsConfig struct {
	Width       int `json:"width"`
	Height      int `json:"height"`
	Spacing     int `json:"spacing"`
	BorderWidth int `json:"borderWidth"`
	Top         int `json:"top"` // y of the first button
}

// Color is an opaque color written as "#rrggbb"
type Color color.RGBA

// RGBA returns the color as color.RGBA
func (c Color) RGBA() color.RGBA { return color.RGBA(c) }

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "#")
	if len(s) != 6 {
		return fmt.Errorf("color %q: want #rrggbb", text)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("color %q: %w", text, err)
	}
	*c = Color{R: b[0], G: b[1], B: b[2], A: 0xff}
	return nil
}
