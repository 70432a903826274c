package world

import (
	"testing"

	"github.com/quietfoxgames/hearthvale/internal/camera"
	"github.com/quietfoxgames/hearthvale/internal/render"
	"github.com/quietfoxgames/hearthvale/internal/render/rendertest"
)

// fakeImages is an ImageSource backed by a map, for draw tests.
type fakeImages map[string]render.Image

func (f fakeImages) Get(key string) (render.Image, bool) {
	img, ok := f[key]
	return img, ok
}

func testLayout() Layout {
	return Layout{Regions: []Region{
		{Terrain: Path, R0: 0, C0: 5, R1: 20, C1: 6},
		{Terrain: Sand, R0: 9, C0: 9, R1: 15, C1: 16},
		{Terrain: Water, R0: 10, C0: 10, R1: 14, C1: 15},
	}}
}

func TestNewGridDimensions(t *testing.T) {
	m := New(1600, 1200, 1, Layout{})
	if m.Cols != 50 || m.Rows != 38 {
		t.Errorf("grid = %dx%d, want 38x50", m.Rows, m.Cols)
	}

	// Non-multiple world sizes round the grid up.
	m = New(1601, 1201, 1, Layout{})
	if m.Cols != 51 || m.Rows != 38 {
		t.Errorf("grid = %dx%d, want 38x51", m.Rows, m.Cols)
	}
}

func TestVariantsWithinTerrainRange(t *testing.T) {
	m := New(1600, 1200, 99, testLayout())
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			terr := m.TerrainCell(r, c)
			v := m.VariantCell(r, c)
			if v < 0 || v >= VariantCount(terr) {
				t.Fatalf("cell (%d,%d): variant %d out of range for %s", r, c, v, terr)
			}
		}
	}
}

func TestSameSeedSameMap(t *testing.T) {
	a := New(1600, 1200, 42, testLayout())
	b := New(1600, 1200, 42, testLayout())
	for r := 0; r < a.Rows; r++ {
		for c := 0; c < a.Cols; c++ {
			if a.VariantCell(r, c) != b.VariantCell(r, c) {
				t.Fatalf("cell (%d,%d): variants differ for same seed", r, c)
			}
		}
	}
}

func TestTileKey(t *testing.T) {
	tests := []struct {
		terrain Terrain
		variant int
		want    string
	}{
		{Grass, 0, "grass"},
		{Grass, 3, "grass_3"},
		{Path, 0, "path"},
		{Water, 2, "water_2"},
		{Sand, 1, "sand_1"},
	}
	for _, tt := range tests {
		if got := TileKey(tt.terrain, tt.variant); got != tt.want {
			t.Errorf("TileKey(%s, %d) = %q, want %q", tt.terrain, tt.variant, got, tt.want)
		}
	}
}

func TestRegionsOverrideGrass(t *testing.T) {
	m := New(1600, 1200, 1, testLayout())

	if got := m.TerrainCell(12, 12); got != Water {
		t.Errorf("lake cell = %s, want water", got)
	}
	if got := m.TerrainCell(9, 9); got != Sand {
		t.Errorf("shore cell = %s, want sand", got)
	}
	if got := m.TerrainCell(3, 5); got != Path {
		t.Errorf("path cell = %s, want path", got)
	}
	if got := m.TerrainCell(0, 0); got != Grass {
		t.Errorf("corner cell = %s, want grass", got)
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(1600, 1200, 1, testLayout())

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"grass", 16, 16, true},
		{"path", 5*TileSize + 1, 16, true},
		{"sand shore", 9*TileSize + 1, 9*TileSize + 1, true},
		{"water", 12*TileSize + 1, 12*TileSize + 1, false},
		{"negative x", -1, 16, false},
		{"negative y", 16, -1, false},
		{"past right edge", 1600, 16, false},
		{"past bottom edge", 16, 1216, false},
	}
	for _, tt := range tests {
		if got := m.IsWalkable(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: IsWalkable(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTerrainAtOutOfBoundsIsGrass(t *testing.T) {
	m := New(1600, 1200, 1, testLayout())
	if got := m.TerrainAt(5000, 5000); got != Grass {
		t.Errorf("TerrainAt far out = %s, want grass", got)
	}
}

func TestVisibleWindowAtOrigin(t *testing.T) {
	m := New(1600, 1200, 1, Layout{})
	cam := camera.New(800, 600, 1)

	r0, c0, r1, c1 := m.VisibleWindow(cam)
	if r0 != 0 || c0 != 0 {
		t.Errorf("window start = (%d,%d), want (0,0)", r0, c0)
	}
	// 800/32 = 25 columns plus the seam tile; 600/32 rounds up to 19 plus one.
	if c1 != 26 || r1 != 20 {
		t.Errorf("window end = (%d,%d), want (20,26)", r1, c1)
	}
}

func TestVisibleWindowMidScroll(t *testing.T) {
	m := New(1600, 1200, 1, Layout{})
	cam := camera.New(800, 600, 1)
	cam.X, cam.Y = 100, 50

	r0, c0, r1, c1 := m.VisibleWindow(cam)
	if c0 != 3 || r0 != 1 {
		t.Errorf("window start = (%d,%d), want (1,3)", r0, c0)
	}
	// ceil(900/32)+1 = 30, ceil(650/32)+1 = 22.
	if c1 != 30 || r1 != 22 {
		t.Errorf("window end = (%d,%d), want (22,30)", r1, c1)
	}
}

func TestVisibleWindowClampsToGrid(t *testing.T) {
	m := New(320, 320, 1, Layout{}) // 10x10 grid
	cam := camera.New(800, 600, 1)

	r0, c0, r1, c1 := m.VisibleWindow(cam)
	if r0 != 0 || c0 != 0 || r1 != 10 || c1 != 10 {
		t.Errorf("window = (%d,%d)-(%d,%d), want full 10x10 grid", r0, c0, r1, c1)
	}
}

func TestDrawFallsBackToBaseVariant(t *testing.T) {
	// 2x2 all-grass world so every cell is visible.
	m := New(64, 64, 3, Layout{})
	cam := camera.New(800, 600, 1)
	screen := rendertest.NewImage(800, 600)

	base := rendertest.NewImage(TileSize, TileSize)
	images := fakeImages{"grass": base} // no variant images registered

	m.Draw(screen, cam, images)

	draws := screen.Draws()
	if len(draws) != 4 {
		t.Fatalf("recorded %d draws, want 4", len(draws))
	}
	for _, op := range draws {
		if op.Src != base {
			t.Error("expected every cell to fall back to the base grass image")
		}
	}
}

func TestDrawSkipsCellsWithNoImage(t *testing.T) {
	m := New(64, 64, 3, Layout{})
	cam := camera.New(800, 600, 1)
	screen := rendertest.NewImage(800, 600)

	m.Draw(screen, cam, fakeImages{})

	if n := len(screen.Draws()); n != 0 {
		t.Errorf("recorded %d draws with an empty registry, want 0", n)
	}
}

func TestDrawAppliesCameraOffset(t *testing.T) {
	m := New(64, 64, 3, Layout{})
	cam := camera.New(800, 600, 1)
	cam.X, cam.Y = 10, 20
	screen := rendertest.NewImage(800, 600)

	base := rendertest.NewImage(TileSize, TileSize)
	m.Draw(screen, cam, fakeImages{"grass": base})

	draws := screen.Draws()
	if len(draws) == 0 {
		t.Fatal("no draws recorded")
	}
	first := draws[0]
	if first.Opts.X != -10 || first.Opts.Y != -20 {
		t.Errorf("first tile at (%v, %v), want (-10, -20)", first.Opts.X, first.Opts.Y)
	}
}
