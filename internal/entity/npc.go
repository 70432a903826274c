package entity

import (
	"math"

	"github.com/quietfoxgames/hearthvale/internal/geom"
	"github.com/quietfoxgames/hearthvale/internal/render"
)

// NPC is a villager walking a fixed loop of waypoints. Waypoints are world
// positions for the NPC's rect origin.
type NPC struct {
	Sprite
	Speed     float64
	waypoints []geom.Point
	current   int
}

// NewNPC creates an NPC at the first waypoint. With fewer than two
// waypoints the NPC stands still.
func NewNPC(img render.Image, speed float64, waypoints ...geom.Point) *NPC {
	n := &NPC{
		Sprite:    *NewSprite(0, 0, 28, 40, img, 0),
		Speed:     speed,
		waypoints: waypoints,
	}
	if len(waypoints) > 0 {
		n.Rect.X = waypoints[0].X
		n.Rect.Y = waypoints[0].Y
		n.current = 1 % len(waypoints)
	}
	return n
}

// Update walks toward the current waypoint, advancing to the next when
// within a step of it. Unwalkable ground stalls the NPC until the route
// clears rather than letting it cross water.
func (n *NPC) Update(dt float64, walkable WalkableFunc) {
	if len(n.waypoints) < 2 {
		return
	}

	goal := n.waypoints[n.current]
	dx := goal.X - n.Rect.X
	dy := goal.Y - n.Rect.Y
	dist := math.Hypot(dx, dy)

	step := n.Speed * dt
	if dist <= step {
		n.Rect.X = goal.X
		n.Rect.Y = goal.Y
		n.current = (n.current + 1) % len(n.waypoints)
		return
	}

	nx := n.Rect.X + dx/dist*step
	ny := n.Rect.Y + dy/dist*step
	if walkable != nil && !walkable(nx+n.Rect.W/2, ny+n.Rect.H) {
		return
	}
	n.Rect.X = nx
	n.Rect.Y = ny
}
