package entity

import (
	"math"

	"github.com/quietfoxgames/hearthvale/internal/render"
)

// Player is the avatar. Movement is velocity-based, gated by terrain
// walkability at the feet, with each axis resolved independently so the
// player can slide along water edges.
type Player struct {
	Sprite
	// Speed in world pixels per second.
	Speed float64
}

// NewPlayer creates the player at a world position.
func NewPlayer(x, y float64, img render.Image) *Player {
	return &Player{
		Sprite: *NewSprite(x, y, 28, 40, img, 0),
		Speed:  140,
	}
}

// Update reads movement keys and advances the player, refusing moves onto
// unwalkable terrain. Diagonal movement is normalized so it isn't faster.
func (p *Player) Update(dt float64, input render.InputManager, walkable WalkableFunc) {
	var dx, dy float64
	if input.IsKeyPressed(render.KeyA) || input.IsKeyPressed(render.KeyLeft) {
		dx -= 1
	}
	if input.IsKeyPressed(render.KeyD) || input.IsKeyPressed(render.KeyRight) {
		dx += 1
	}
	if input.IsKeyPressed(render.KeyW) || input.IsKeyPressed(render.KeyUp) {
		dy -= 1
	}
	if input.IsKeyPressed(render.KeyS) || input.IsKeyPressed(render.KeyDown) {
		dy += 1
	}
	if dx == 0 && dy == 0 {
		return
	}

	if dx != 0 && dy != 0 {
		inv := 1 / math.Sqrt2
		dx *= inv
		dy *= inv
	}

	p.moveAxis(dx*p.Speed*dt, 0, walkable)
	p.moveAxis(0, dy*p.Speed*dt, walkable)
}

// moveAxis applies one axis of movement if the resulting feet position is
// walkable. Feet are the bottom-center of the rect.
func (p *Player) moveAxis(dx, dy float64, walkable WalkableFunc) {
	nx := p.Rect.X + dx
	ny := p.Rect.Y + dy
	feetX := nx + p.Rect.W/2
	feetY := ny + p.Rect.H
	if walkable != nil && !walkable(feetX, feetY) {
		return
	}
	p.Rect.X = nx
	p.Rect.Y = ny
}
