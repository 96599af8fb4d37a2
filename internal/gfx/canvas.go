package gfx

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Canvas is an in-memory RGBA surface.
type Canvas struct {
	*image.RGBA
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a transparent canvas. Negative dimensions are treated as zero.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{RGBA: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size implements Surface.
func (c *Canvas) Size() (int, int) {
	b := c.Bounds()
	return b.Dx(), b.Dy()
}

// Fill implements Surface.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.RGBA, c.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Blit implements Surface. Pixels falling outside the canvas are clipped.
func (c *Canvas) Blit(src image.Image, x, y int) {
	sb := src.Bounds()
	dr := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	draw.Draw(c.RGBA, dr, src, sb.Min, draw.Over)
}

// StrokeRect implements Surface.
func (c *Canvas) StrokeRect(r image.Rectangle, col color.Color, width int) {
	r = r.Intersect(c.Bounds())
	if width <= 0 || r.Empty() {
		return
	}
	u := image.NewUniform(col)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y),
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(c.RGBA, e.Intersect(r), u, image.Point{}, draw.Src)
	}
}

// FillCircle paints an anti-aliased disc centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, radius float32, col color.Color) {
	w, h := c.Size()
	if radius <= 0 || w == 0 || h == 0 {
		return
	}
	k := kappa * radius
	z := vector.NewRasterizer(w, h)
	z.MoveTo(cx+radius, cy)
	z.CubeTo(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
	z.CubeTo(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
	z.CubeTo(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
	z.CubeTo(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	z.ClosePath()
	z.Draw(c.RGBA, c.Bounds(), image.NewUniform(col), image.Point{})
}

// Opaque returns a fully opaque color.
func Opaque(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
