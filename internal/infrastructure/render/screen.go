package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/connectfour/internal/gfx"
)

var _ gfx.Surface = (*Screen)(nil)

// Screen draws onto an ebiten image.
type Screen struct {
	img   *ebiten.Image
	cache *ImageCache
}

// NewScreen wraps dst. Blitted images are uploaded through cache.
func NewScreen(dst *ebiten.Image, cache *ImageCache) *Screen {
	return &Screen{img: dst, cache: cache}
}

// Size implements gfx.Surface
func (s *Screen) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill implements gfx.Surface
func (s *Screen) Fill(c color.Color) {
	s.img.Fill(c)
}

// Blit implements gfx.Surface
func (s *Screen) Blit(src image.Image, x, y int) {
	img := s.cache.Get(src)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	s.img.DrawImage(img, op)
}

// StrokeRect implements gfx.Surface. The stroke lies inside r.
func (s *Screen) StrokeRect(r image.Rectangle, c color.Color, width int) {
	if width <= 0 || r.Empty() {
		return
	}
	w := float32(width)
	vector.StrokeRect(s.img,
		float32(r.Min.X)+w/2, float32(r.Min.Y)+w/2,
		float32(r.Dx())-w, float32(r.Dy())-w,
		w, c, false)
}
