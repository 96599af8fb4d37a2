// Package render implements gfx.Surface on ebiten images.
package render

import (
	"image"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageCache uploads CPU images to the GPU once per image value.
//
// Entries are keyed by image identity, so a cached source must not be
// modified after its first upload. Widgets replace their image on every
// restyle, which keeps this true. Entries unused for a whole frame are
// released by Sweep.
type ImageCache struct {
	entries map[image.Image]*cacheEntry
	frame   uint64
}

type cacheEntry struct {
	img  *ebiten.Image
	used uint64
}

// NewImageCache creates an empty cache
func NewImageCache() *ImageCache {
	return &ImageCache{entries: make(map[image.Image]*cacheEntry)}
}

// Get returns the GPU image for src, uploading it on first use.
// It returns nil for empty images.
func (c *ImageCache) Get(src image.Image) *ebiten.Image {
	if src == nil || src.Bounds().Empty() {
		return nil
	}
	if img, ok := src.(*ebiten.Image); ok {
		return img
	}
	if !reflect.TypeOf(src).Comparable() {
		return ebiten.NewImageFromImage(src)
	}

	e, ok := c.entries[src]
	if !ok {
		e = &cacheEntry{img: ebiten.NewImageFromImage(src)}
		c.entries[src] = e
	}
	e.used = c.frame
	return e.img
}

// Sweep ends a frame and releases images not used during it.
func (c *ImageCache) Sweep() {
	for k, e := range c.entries {
		if e.used < c.frame {
			e.img.Deallocate()
			delete(c.entries, k)
		}
	}
	c.frame++
}

// Len returns the number of cached images
func (c *ImageCache) Len() int {
	return len(c.entries)
}
