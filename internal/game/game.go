// Package game wires the simulation together and owns the frame order:
// clock, then lighting, then entity movement, then camera, then the render
// pass of tiles, Y-sorted sprites, lighting composite, and HUD. The camera
// is mutated only by its own Update; every other system just reads it.
package game

import (
	"fmt"
	"log"

	"github.com/quietfoxgames/hearthvale/internal/assets"
	"github.com/quietfoxgames/hearthvale/internal/camera"
	"github.com/quietfoxgames/hearthvale/internal/clock"
	"github.com/quietfoxgames/hearthvale/internal/config"
	"github.com/quietfoxgames/hearthvale/internal/entity"
	"github.com/quietfoxgames/hearthvale/internal/geom"
	"github.com/quietfoxgames/hearthvale/internal/lighting"
	"github.com/quietfoxgames/hearthvale/internal/render"
	"github.com/quietfoxgames/hearthvale/internal/world"
)

// tick is the fixed logic step; Ebiten calls Update 60 times per second.
const tick = 1.0 / 60.0

// Game holds all game state.
type Game struct {
	cfg      *config.Config
	renderer render.Renderer
	input    render.InputManager
	images   *assets.Library

	clock    *clock.GameClock
	lights   *lighting.Engine
	cam      *camera.Camera
	worldMap *world.Map
	sprites  *camera.Group

	player *entity.Player
	npcs   []*entity.NPC

	lastDay int
}

// New builds the world from the configuration: terrain from the seed and
// scripted layout, decor scatter, buildings and fixtures with their lights,
// the player, and the camera following them.
func New(cfg *config.Config, renderer render.Renderer, input render.InputManager, images *assets.Library) *Game {
	g := &Game{
		cfg:      cfg,
		renderer: renderer,
		input:    input,
		images:   images,
		clock:    clock.New(cfg.StartHour),
		lights:   lighting.NewEngine(renderer, cfg.WindowWidth, cfg.WindowHeight),
	}
	g.lastDay = g.clock.Day

	cols := (cfg.WorldWidth + world.TileSize - 1) / world.TileSize
	rows := (cfg.WorldHeight + world.TileSize - 1) / world.TileSize
	g.worldMap = world.New(cfg.WorldWidth, cfg.WorldHeight, cfg.Seed, world.DefaultLayout(rows, cols))

	g.cam = camera.New(cfg.WindowWidth, cfg.WindowHeight, cfg.Seed)
	g.cam.FollowRate = cfg.Camera.FollowRate
	g.cam.Smoothing = cfg.Camera.Smoothing
	g.cam.UseDeadzone = cfg.Camera.UseDeadzone
	g.cam.DeadzoneWidth = cfg.Camera.DeadzoneWidth
	g.cam.DeadzoneHeight = cfg.Camera.DeadzoneHeight
	g.cam.SetBounds(float64(g.worldMap.PixelWidth()), float64(g.worldMap.PixelHeight()))

	g.sprites = camera.NewGroup(g.cam)

	g.populate()

	return g
}

// imageFor returns the registered image for a key, or nil so the drawable
// is skipped rather than failing.
func (g *Game) imageFor(key string) render.Image {
	img, ok := g.images.Get(key)
	if !ok {
		return nil
	}
	return img
}

// populate places the scripted scenery, fixtures, NPCs, and player.
func (g *Game) populate() {
	// Player spawns near the crossroads.
	spawnX := float64(g.worldMap.Cols/2*world.TileSize) + world.TileSize
	spawnY := float64(7 * world.TileSize)
	g.player = entity.NewPlayer(spawnX, spawnY, g.imageFor("player"))
	g.sprites.Add(g.player)
	g.cam.SetTarget(g.player, 0, 0)
	g.cam.CenterOn(g.player.Rect.CenterX(), g.player.Rect.CenterY(), true)

	// The house: a tall sprite whose sort line sits near its base so the
	// player can walk "behind" it without being hidden by the roof.
	houseX := float64((g.worldMap.Cols/2 + 3) * world.TileSize)
	houseY := float64(2 * world.TileSize)
	house := entity.NewSprite(houseX, houseY, 96, 96, g.imageFor("house"), -48)
	g.sprites.Add(house)
	lighting.NewWindowLight(g.lights, houseX+72, houseY+60)

	// Streetlamps along the vertical path.
	lampCol := float64(g.worldMap.Cols/2*world.TileSize) - 20
	for _, row := range []int{3, 9, 15} {
		y := float64(row * world.TileSize)
		g.sprites.Add(entity.NewSprite(lampCol, y-32, 16, 48, g.imageFor("lamp"), 0))
		lighting.NewStreetlamp(g.lights, lampCol+8, y)
	}

	// Campfire on the shoreline above the lake.
	fireX := float64(5 * world.TileSize)
	fireY := float64(11 * world.TileSize)
	lighting.NewCampfire(g.lights, fireX, fireY)

	// A villager pacing the horizontal path.
	pathY := float64(5*world.TileSize) - 8
	npc := entity.NewNPC(g.imageFor("npc"), 60,
		geom.Point{X: float64((g.worldMap.Cols/2 + 1) * world.TileSize), Y: pathY},
		geom.Point{X: float64((g.worldMap.Cols - 3) * world.TileSize), Y: pathY},
	)
	g.npcs = append(g.npcs, npc)
	g.sprites.Add(npc)

	// Noise-scattered scenery over the grass.
	for _, d := range world.ScatterDecor(g.worldMap, g.cfg.Seed) {
		img := g.imageFor(d.Key)
		if img == nil {
			continue
		}
		w, h := img.Size()
		// Center small decor within its tile.
		x := d.X + float64(world.TileSize-w)/2
		y := d.Y + float64(world.TileSize-h)/2
		g.sprites.Add(entity.NewSprite(x, y, float64(w), float64(h), img, 0))
	}
}

// Update advances one fixed logic step.
func (g *Game) Update() error {
	g.clock.Advance(tick, g.cfg.TimeSpeed)
	if g.clock.Day != g.lastDay {
		g.lastDay = g.clock.Day
		log.Printf("A new day dawns: day %d", g.clock.Day)
	}

	g.lights.Update(tick, g.clock)

	g.player.Update(tick, g.input, g.worldMap.IsWalkable)
	for _, npc := range g.npcs {
		npc.Update(tick, g.worldMap.IsWalkable)
	}

	// A stomp, for trying out the shake feel.
	if g.input.IsKeyJustPressed(render.KeySpace) {
		g.cam.Shake(6, 8)
	}

	g.cam.Update(tick)

	return nil
}

// Draw renders one frame in the fixed order: tiles, Y-sorted entities,
// lighting composite, then the HUD on top so it stays readable at night.
func (g *Game) Draw(screen render.Image) {
	g.worldMap.Draw(screen, g.cam, g.images)
	g.sprites.Draw(screen, g.renderer, true)

	camX, camY := g.cam.Offset()
	g.lights.Render(screen, camX, camY)

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen render.Image) {
	phase := "day"
	if g.lights.IsNight() {
		phase = "night"
	}
	g.renderer.DrawText(screen, g.clock.TimeString(), 10, 10)
	g.renderer.DrawText(screen, fmt.Sprintf("Day %d (%s)", g.clock.Day, phase), 10, 26)
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

