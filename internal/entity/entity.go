// Package entity defines the drawable things that live in the world:
// static scenery sprites, the player, and wandering NPCs. Entities are
// fully typed at construction; configuration comes in through the
// constructors, never by attaching fields afterwards.
package entity

import (
	"github.com/quietfoxgames/hearthvale/internal/geom"
	"github.com/quietfoxgames/hearthvale/internal/render"
)

// Sprite is a static drawable: a world rectangle, a visual, and an optional
// depth-sort offset. It satisfies both the Y-sort compositor's Drawable and
// the camera's Target.
type Sprite struct {
	Rect       geom.Rect
	Image      render.Image
	SortOffset int
}

// NewSprite creates a sprite at a world position with the given size.
func NewSprite(x, y, w, h float64, img render.Image, sortOffset int) *Sprite {
	return &Sprite{
		Rect:       geom.NewRect(x, y, w, h),
		Image:      img,
		SortOffset: sortOffset,
	}
}

// Bounds returns the sprite's world rectangle.
func (s *Sprite) Bounds() geom.Rect { return s.Rect }

// Visual returns the sprite's image; nil means the sprite is skipped.
func (s *Sprite) Visual() render.Image { return s.Image }

// DepthOffset shifts the sprite's Y-sort position.
func (s *Sprite) DepthOffset() int { return s.SortOffset }

// WalkableFunc answers whether a world pixel position can be stood on.
type WalkableFunc func(x, y float64) bool
