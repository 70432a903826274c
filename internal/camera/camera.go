// Package camera implements the 2D scrolling camera and the Y-sort depth
// compositor. The camera owns the world-to-screen transform for the whole
// frame: the tile renderer, the sprite compositor, and the lighting engine
// all read its offset after Update has run, and nothing else mutates it.
package camera

import (
	"math"
	"math/rand"

	"github.com/quietfoxgames/hearthvale/internal/geom"
	"github.com/quietfoxgames/hearthvale/internal/mathutil"
)

// Target is anything the camera can follow. It only needs a world-space
// bounding rectangle; the camera tracks the rectangle's center.
type Target interface {
	Bounds() geom.Rect
}

// bounds is the clamp range for the viewport origin.
type bounds struct {
	maxX, maxY float64
}

// Camera converts world coordinates to screen coordinates, follows a target
// with smoothed motion, and clamps itself to the world. All operations are
// total: out-of-range inputs clamp or produce degenerate results.
type Camera struct {
	// Viewport size in pixels, fixed at construction.
	Width, Height int

	// X, Y is the world-space position of the viewport's top-left corner.
	X, Y float64

	// FollowRate controls how quickly the camera closes on its target when
	// smoothing is on. Higher is snappier.
	FollowRate float64
	// Smoothing selects between exponential smoothing and instant snap.
	Smoothing bool

	// Dead-zone: while the desired move on an axis is smaller than half the
	// dead-zone size, the camera holds still on that axis.
	DeadzoneWidth  float64
	DeadzoneHeight float64
	UseDeadzone    bool

	target        Target
	targetOffsetX float64
	targetOffsetY float64

	clamp *bounds

	shakeMagnitude float64
	shakeDecay     float64
	shakeX, shakeY float64
	rng            *rand.Rand
}

// New creates a camera with the given viewport size. The seed drives the
// shake offsets so replays stay deterministic.
func New(viewportWidth, viewportHeight int, seed int64) *Camera {
	return &Camera{
		Width:          viewportWidth,
		Height:         viewportHeight,
		FollowRate:     5.0,
		Smoothing:      true,
		DeadzoneWidth:  100,
		DeadzoneHeight: 80,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// SetTarget records the entity to follow and a pixel offset from its
// center. Takes effect on the next Update.
func (c *Camera) SetTarget(t Target, offsetX, offsetY float64) {
	c.target = t
	c.targetOffsetX = offsetX
	c.targetOffsetY = offsetY
}

// ClearTarget stops following. The camera keeps its current position.
func (c *Camera) ClearTarget() {
	c.target = nil
}

// SetBounds defines the world rectangle the viewport may not leave. If the
// world is smaller than the viewport on an axis, the clamp range on that
// axis collapses to the single point 0.
func (c *Camera) SetBounds(worldWidth, worldHeight float64) {
	c.clamp = &bounds{
		maxX: math.Max(0, worldWidth-float64(c.Width)),
		maxY: math.Max(0, worldHeight-float64(c.Height)),
	}
}

// CenterOn positions the viewport so (x, y) is centered. When instant, the
// camera teleports and clamps immediately; otherwise the move happens
// progressively through the smoothing in Update.
func (c *Camera) CenterOn(x, y float64, instant bool) {
	if !instant {
		return
	}
	c.X = x - float64(c.Width)/2
	c.Y = y - float64(c.Height)/2
	c.applyBounds()
}

func (c *Camera) applyBounds() {
	if c.clamp == nil {
		return
	}
	c.X = mathutil.Clamp(c.X, 0, c.clamp.maxX)
	c.Y = mathutil.Clamp(c.Y, 0, c.clamp.maxY)
}

// Update advances the follow motion and the shake state by dt seconds.
// With no target only the shake state advances.
func (c *Camera) Update(dt float64) {
	if c.target != nil {
		t := c.target.Bounds()
		desiredX := t.CenterX() + c.targetOffsetX - float64(c.Width)/2
		desiredY := t.CenterY() + c.targetOffsetY - float64(c.Height)/2

		if c.UseDeadzone {
			if math.Abs(desiredX-c.X) < c.DeadzoneWidth/2 {
				desiredX = c.X
			}
			if math.Abs(desiredY-c.Y) < c.DeadzoneHeight/2 {
				desiredY = c.Y
			}
		}

		if c.Smoothing {
			f := mathutil.DampFactor(c.FollowRate, dt)
			c.X += (desiredX - c.X) * f
			c.Y += (desiredY - c.Y) * f
		} else {
			c.X = desiredX
			c.Y = desiredY
		}

		c.applyBounds()
	}

	c.updateShake(dt)
}

func (c *Camera) updateShake(dt float64) {
	if c.shakeMagnitude <= 0 {
		return
	}
	m := c.shakeMagnitude
	c.shakeX = c.rng.Float64()*2*m - m
	c.shakeY = c.rng.Float64()*2*m - m
	c.shakeMagnitude -= c.shakeDecay * dt
	if c.shakeMagnitude <= 0 {
		c.shakeMagnitude = 0
		c.shakeX = 0
		c.shakeY = 0
	}
}

// Shake starts a screen shake with the given magnitude in pixels, decaying
// linearly at decay pixels per second. A new call replaces any shake in
// progress; there is no queueing.
func (c *Camera) Shake(magnitude, decay float64) {
	c.shakeMagnitude = magnitude
	c.shakeDecay = decay
}

// ShakeMagnitude returns the remaining shake magnitude.
func (c *Camera) ShakeMagnitude() float64 {
	return c.shakeMagnitude
}

// ShakeOffset returns the current shake displacement.
func (c *Camera) ShakeOffset() (float64, float64) {
	return c.shakeX, c.shakeY
}

// Apply converts a world position to a screen position, truncated to
// integer pixels.
func (c *Camera) Apply(worldX, worldY float64) (int, int) {
	return int(worldX - c.X + c.shakeX), int(worldY - c.Y + c.shakeY)
}

// ApplyRect converts a world rectangle to screen space, translating the
// origin and preserving the size.
func (c *Camera) ApplyRect(r geom.Rect) geom.Rect {
	sx, sy := c.Apply(r.X, r.Y)
	return geom.Rect{X: float64(sx), Y: float64(sy), W: r.W, H: r.H}
}

// InverseApply converts a screen position back to world space. This is the
// exact algebraic inverse of Apply, so during an active shake the shake
// offset is subtracted back out.
func (c *Camera) InverseApply(screenX, screenY int) (float64, float64) {
	return float64(screenX) + c.X - c.shakeX, float64(screenY) + c.Y - c.shakeY
}

// Offset returns the viewport origin in world space.
func (c *Camera) Offset() (float64, float64) {
	return c.X, c.Y
}

// IsVisible reports whether a world rectangle intersects the viewport
// expanded by margin pixels on every side.
func (c *Camera) IsVisible(r geom.Rect, margin float64) bool {
	view := geom.Rect{
		X: c.X - margin,
		Y: c.Y - margin,
		W: float64(c.Width) + margin*2,
		H: float64(c.Height) + margin*2,
	}
	return view.Intersects(r)
}
