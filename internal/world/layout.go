package world

// DefaultLayout is the scripted village map: a crossroads of paths and a
// lake in the lower-left with a sand shoreline. The shapes are hand-placed
// content, not generated.
func DefaultLayout(rows, cols int) Layout {
	centerCol := cols / 2
	regions := []Region{
		// Vertical path down the middle of the map.
		{Terrain: Path, R0: 0, C0: centerCol, R1: rows, C1: centerCol + 1},
		// Horizontal path from the crossroads toward the shop side.
		{Terrain: Path, R0: 5, C0: centerCol, R1: 6, C1: cols},
		// Lake.
		{Terrain: Water, R0: 12, C0: 2, R1: 16, C1: 8},
		// Shoreline ring around the lake.
		{Terrain: Sand, R0: 11, C0: 2, R1: 12, C1: 9},
		{Terrain: Sand, R0: 16, C0: 2, R1: 17, C1: 9},
		{Terrain: Sand, R0: 12, C0: 1, R1: 16, C1: 2},
		{Terrain: Sand, R0: 12, C0: 8, R1: 16, C1: 9},
	}
	return Layout{Regions: regions}
}
