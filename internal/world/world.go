// Package world holds the tile-based world map: a terrain grid with
// per-cell tile variants, camera-culled rendering, and walkability queries.
// The grid is generated once from a seed and is immutable afterwards, so it
// is safe to share freely across the frame.
package world

import (
	"fmt"
	"math/rand"

	"github.com/quietfoxgames/hearthvale/internal/camera"
	"github.com/quietfoxgames/hearthvale/internal/render"
)

// TileSize is the side of one tile in world pixels.
const TileSize = 32

// Terrain is a ground type. The set is closed; variants of the same terrain
// differ only visually.
type Terrain int

const (
	Grass Terrain = iota
	Path
	Water
	Sand
)

// variantCounts is the number of tile images per terrain type
// (grass.png, grass_1.png, ... grass_4.png and so on).
var variantCounts = [...]int{
	Grass: 5,
	Path:  3,
	Water: 3,
	Sand:  2,
}

var terrainNames = [...]string{
	Grass: "grass",
	Path:  "path",
	Water: "water",
	Sand:  "sand",
}

// String returns the terrain's base asset name.
func (t Terrain) String() string {
	if t < 0 || int(t) >= len(terrainNames) {
		return "grass"
	}
	return terrainNames[t]
}

// VariantCount returns how many tile images exist for a terrain type.
func VariantCount(t Terrain) int {
	if t < 0 || int(t) >= len(variantCounts) {
		return 1
	}
	return variantCounts[t]
}

// TileKey returns the asset key for a terrain variant: the base name for
// variant 0, otherwise "base_variant" ("grass", "grass_3", "water_2").
// This is the lookup contract with the image registry.
func TileKey(t Terrain, variant int) string {
	if variant == 0 {
		return t.String()
	}
	return fmt.Sprintf("%s_%d", t, variant)
}

// Region is one scripted terrain placement: rows [R0, R1) by cols [C0, C1)
// become the given terrain. Out-of-grid portions are ignored.
type Region struct {
	Terrain Terrain
	R0, C0  int
	R1, C1  int
}

// Layout is the scripted map content applied over the default grass fill.
type Layout struct {
	Regions []Region
}

// ImageSource resolves asset keys to images. Missing keys are handled by
// fallback, never as errors.
type ImageSource interface {
	Get(key string) (render.Image, bool)
}

// Map is the immutable tile grid.
type Map struct {
	Rows, Cols int

	terrain [][]Terrain
	variant [][]int
}

// New builds a map covering a world of the given pixel dimensions. The grid
// starts as grass, the layout's regions are applied, and every cell then
// draws a uniform random variant from the seeded generator — the same seed
// always reproduces the same map.
func New(worldWidth, worldHeight int, seed int64, layout Layout) *Map {
	cols := (worldWidth + TileSize - 1) / TileSize
	rows := (worldHeight + TileSize - 1) / TileSize
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	m := &Map{Rows: rows, Cols: cols}
	m.terrain = make([][]Terrain, rows)
	m.variant = make([][]int, rows)
	for r := 0; r < rows; r++ {
		m.terrain[r] = make([]Terrain, cols)
		m.variant[r] = make([]int, cols)
	}

	for _, reg := range layout.Regions {
		m.applyRegion(reg)
	}

	rng := rand.New(rand.NewSource(seed))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.variant[r][c] = rng.Intn(VariantCount(m.terrain[r][c]))
		}
	}

	return m
}

func (m *Map) applyRegion(reg Region) {
	for r := reg.R0; r < reg.R1; r++ {
		if r < 0 || r >= m.Rows {
			continue
		}
		for c := reg.C0; c < reg.C1; c++ {
			if c < 0 || c >= m.Cols {
				continue
			}
			m.terrain[r][c] = reg.Terrain
		}
	}
}

// PixelWidth returns the world width covered by the grid.
func (m *Map) PixelWidth() int { return m.Cols * TileSize }

// PixelHeight returns the world height covered by the grid.
func (m *Map) PixelHeight() int { return m.Rows * TileSize }

// TerrainCell returns the terrain at a grid cell. Out-of-bounds cells
// report grass.
func (m *Map) TerrainCell(row, col int) Terrain {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return Grass
	}
	return m.terrain[row][col]
}

// VariantCell returns the variant index at a grid cell, 0 out of bounds.
func (m *Map) VariantCell(row, col int) int {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return 0
	}
	return m.variant[row][col]
}

// TerrainAt returns the terrain under a world pixel position, grass when
// out of bounds.
func (m *Map) TerrainAt(x, y float64) Terrain {
	return m.TerrainCell(int(y)/TileSize, int(x)/TileSize)
}

// IsWalkable reports whether an entity may stand at the world pixel
// position. Out-of-bounds is not walkable, water is not walkable, all other
// terrain is.
func (m *Map) IsWalkable(x, y float64) bool {
	col := int(x) / TileSize
	row := int(y) / TileSize
	if x < 0 || y < 0 || row >= m.Rows || col >= m.Cols {
		return false
	}
	return m.terrain[row][col] != Water
}

// VisibleWindow computes the tile-index window covered by the camera's
// viewport, clamped to the grid: rows [r0, r1) by cols [c0, c1). The window
// extends one tile past the viewport edge so scrolling never exposes a seam.
func (m *Map) VisibleWindow(cam *camera.Camera) (r0, c0, r1, c1 int) {
	offX, offY := cam.Offset()

	c0 = int(offX) / TileSize
	r0 = int(offY) / TileSize
	c1 = ceilDiv(int(offX)+cam.Width, TileSize) + 1
	r1 = ceilDiv(int(offY)+cam.Height, TileSize) + 1

	if c0 < 0 {
		c0 = 0
	}
	if r0 < 0 {
		r0 = 0
	}
	if c1 > m.Cols {
		c1 = m.Cols
	}
	if r1 > m.Rows {
		r1 = m.Rows
	}
	return r0, c0, r1, c1
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Draw blits every tile inside the camera's visible window. A missing
// variant image falls back to variant 0 of the same terrain; if that is
// missing too, the cell is skipped.
func (m *Map) Draw(dst render.Image, cam *camera.Camera, images ImageSource) {
	r0, c0, r1, c1 := m.VisibleWindow(cam)

	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			img, ok := images.Get(TileKey(m.terrain[r][c], m.variant[r][c]))
			if !ok {
				img, ok = images.Get(TileKey(m.terrain[r][c], 0))
				if !ok {
					continue
				}
			}
			sx, sy := cam.Apply(float64(c*TileSize), float64(r*TileSize))
			dst.Draw(img, &render.DrawOptions{X: float64(sx), Y: float64(sy)})
		}
	}
}
