package render

import (
	"fmt"
	"image/color"
	"sync"
)

// Font selects a text face, backends decide the concrete size
type Font uint8

const (
	FontTitle Font = iota
	FontBody
	FontSmall
)

// TextHandle is a pre-rendered text block
// Width and Height are in logical screen pixels
type TextHandle struct {
	Text   string
	Font   Font
	Color  color.RGBA
	Width  int32
	Height int32
}

// Rasterizer renders a string in a font to an opaque sized handle
type Rasterizer interface {
	Rasterize(text string, font Font, c color.RGBA) (TextHandle, error)
}

// TextProvider hands out pre-rendered text, keyed by string and font
type TextProvider interface {
	Text(text string, font Font, c color.RGBA) (TextHandle, error)
}

type textKey struct {
	text  string
	font  Font
	color color.RGBA
}

// TextCache memoizes a Rasterizer
// Entries live until Purge, the set of distinct strings in play is small
type TextCache struct {
	r Rasterizer

	mu    sync.RWMutex
	items map[textKey]TextHandle
}

// NewTextCache wraps r
func NewTextCache(r Rasterizer) *TextCache {
	return &TextCache{
		r:     r,
		items: make(map[textKey]TextHandle),
	}
}

// Text returns the cached handle or rasterizes on demand
func (c *TextCache) Text(text string, font Font, clr color.RGBA) (TextHandle, error) {
	key := textKey{text: text, font: font, color: clr}

	c.mu.RLock()
	if h, ok := c.items[key]; ok {
		c.mu.RUnlock()
		return h, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if h, ok := c.items[key]; ok {
		return h, nil
	}

	h, err := c.r.Rasterize(text, font, clr)
	if err != nil {
		return TextHandle{}, fmt.Errorf("rasterize %q: %w", text, err)
	}
	c.items[key] = h
	return h, nil
}

// Purge drops every cached handle, used when the backend's cell metrics change
func (c *TextCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
}

// Len returns the number of cached handles
func (c *TextCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
