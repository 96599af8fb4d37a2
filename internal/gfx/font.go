package gfx

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font names known to the registry.
const (
	FontRegular = "goregular"
	FontBold    = "gobold"
	FontMono    = "gomono"
	FontBasic   = "basic" // fixed 7x13 bitmap face, size is ignored
)

// DefaultFontSize is used when a font is requested with a non-positive size.
const DefaultFontSize = 16

// ErrFontsNotInitialized is returned by LoadFont before InitFonts has run.
var ErrFontsNotInitialized = errors.New("gfx: fonts not initialized")

type faceKey struct {
	name string
	size float64
}

var (
	fontsOnce sync.Once
	fontsErr  error

	fontsMu sync.Mutex
	sources map[string]*opentype.Font
	faces   map[faceKey]*Font
)

// InitFonts parses the bundled typefaces. It must run once before any widget
// is built; later calls return the result of the first one.
func InitFonts() error {
	fontsOnce.Do(func() {
		ttfs := map[string][]byte{
			FontRegular: goregular.TTF,
			FontBold:    gobold.TTF,
			FontMono:    gomono.TTF,
		}
		parsed := make(map[string]*opentype.Font, len(ttfs))
		for name, data := range ttfs {
			f, err := opentype.Parse(data)
			if err != nil {
				fontsErr = fmt.Errorf("failed to parse font %s: %w", name, err)
				return
			}
			parsed[name] = f
		}

		fontsMu.Lock()
		sources = parsed
		faces = make(map[faceKey]*Font)
		fontsMu.Unlock()
	})
	return fontsErr
}

// LoadFont returns the font with the given name and pixel size.
// Faces are cached, so asking twice returns the same *Font.
func LoadFont(name string, size float64) (*Font, error) {
	fontsMu.Lock()
	defer fontsMu.Unlock()

	if sources == nil {
		return nil, ErrFontsNotInitialized
	}
	if name == FontBasic {
		size = 13
	} else if size <= 0 {
		size = DefaultFontSize
	}

	key := faceKey{name: name, size: size}
	if f, ok := faces[key]; ok {
		return f, nil
	}

	var face font.Face
	if name == FontBasic {
		face = basicfont.Face7x13
	} else {
		src, ok := sources[name]
		if !ok {
			return nil, fmt.Errorf("unknown font %q", name)
		}
		var err error
		face, err = opentype.NewFace(src, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create face %s/%v: %w", name, size, err)
		}
	}

	f := &Font{name: name, size: size, face: face}
	faces[key] = f
	return f, nil
}

// Font rasterizes text runs.
type Font struct {
	name string
	size float64
	face font.Face
}

// Name returns the registry name of the font.
func (f *Font) Name() string { return f.name }

// Size returns the pixel size of the font.
func (f *Font) Size() float64 { return f.size }

// LineHeight returns the height of a rendered line.
func (f *Font) LineHeight() int {
	return f.face.Metrics().Height.Ceil()
}

// Measure returns the size Render would produce for s.
func (f *Font) Measure(s string) (w, h int) {
	return font.MeasureString(f.face, s).Ceil(), f.LineHeight()
}

// Render draws s in color c onto a new transparent canvas sized to fit it.
func (f *Font) Render(s string, c color.Color) *Canvas {
	w, h := f.Measure(s)
	canvas := NewCanvas(w, h)
	d := font.Drawer{
		Dst:  canvas.RGBA,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.Point26_6{X: 0, Y: f.face.Metrics().Ascent},
	}
	d.DrawString(s)
	return canvas
}
