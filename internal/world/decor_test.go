package world

import "testing"

func TestScatterDecorDeterministicPerSeed(t *testing.T) {
	m := New(1600, 1200, 7, testLayout())

	a := ScatterDecor(m, 99)
	b := ScatterDecor(m, 99)
	if len(a) != len(b) {
		t.Fatalf("same seed gave %d vs %d decorations", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("decoration %d differs for the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestScatterDecorGrassOnly(t *testing.T) {
	m := New(1600, 1200, 7, testLayout())

	for _, d := range ScatterDecor(m, 99) {
		if terr := m.TerrainAt(d.X, d.Y); terr != Grass {
			t.Fatalf("decor %q placed on %s at (%v, %v)", d.Key, terr, d.X, d.Y)
		}
	}
}

func TestScatterDecorKeysAndAlignment(t *testing.T) {
	m := New(1600, 1200, 7, testLayout())

	valid := map[string]bool{"bush": true, "flower": true, "rock": true}
	decor := ScatterDecor(m, 99)
	if len(decor) == 0 {
		t.Fatal("no decorations scattered over a mostly-grass map")
	}
	for _, d := range decor {
		if !valid[d.Key] {
			t.Errorf("unknown decor key %q", d.Key)
		}
		if int(d.X)%TileSize != 0 || int(d.Y)%TileSize != 0 {
			t.Errorf("decor at (%v, %v) is not tile-aligned", d.X, d.Y)
		}
	}
}
