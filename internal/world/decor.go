package world

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Decor is one piece of scattered scenery: an asset key and the world
// position of the tile it occupies.
type Decor struct {
	Key  string
	X, Y float64
}

// Noise bands for decor placement. Sampled simplex noise in [0, 1]:
// values above bushBand become bushes, a tighter band becomes flowers,
// and a narrow low band becomes rocks.
const (
	decorScale  = 0.15
	bushBand    = 0.74
	flowerBand  = 0.62
	rockBandLo  = 0.18
	rockBandHi  = 0.22
	flowerEvery = 2 // flowers only on cells where (row+col) is even, thins clusters
)

// ScatterDecor places decorative scenery over the map's grass cells using
// seeded simplex noise, so the same seed always grows the same meadow.
// Non-grass cells never receive decor. The caller turns the result into
// Y-sorted sprites.
func ScatterDecor(m *Map, seed int64) []Decor {
	noise := opensimplex.NewNormalized(seed)

	var out []Decor
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if m.terrain[r][c] != Grass {
				continue
			}
			n := noise.Eval2(float64(c)*decorScale, float64(r)*decorScale)

			var key string
			switch {
			case n > bushBand:
				key = "bush"
			case n > flowerBand && (r+c)%flowerEvery == 0:
				key = "flower"
			case n >= rockBandLo && n <= rockBandHi && (r*c)%7 == 0:
				key = "rock"
			default:
				continue
			}

			out = append(out, Decor{
				Key: key,
				X:   float64(c * TileSize),
				Y:   float64(r * TileSize),
			})
		}
	}
	return out
}
