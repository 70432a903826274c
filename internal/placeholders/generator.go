// Package placeholders generates the placeholder PNG art the game runs with
// until real tiles exist: every terrain variant the world renderer can ask
// for, plus entity and decor sprites.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
)

// TileSize matches the world renderer's tile size.
const TileSize = 32

// terrain base colors, one per terrain type.
var terrainColors = map[string]color.RGBA{
	"grass": {86, 152, 72, 255},
	"path":  {178, 154, 110, 255},
	"water": {58, 108, 180, 255},
	"sand":  {216, 200, 148, 255},
}

// variantCounts mirrors the world package's per-terrain variant counts.
var variantCounts = map[string]int{
	"grass": 5,
	"path":  3,
	"water": 3,
	"sand":  2,
}

// spriteSpecs describes the non-tile placeholder images.
var spriteSpecs = []struct {
	key  string
	w, h int
	fill color.RGBA
}{
	{"player", 28, 40, color.RGBA{240, 220, 90, 255}},
	{"npc", 28, 40, color.RGBA{90, 170, 235, 255}},
	{"house", 96, 96, color.RGBA{150, 96, 66, 255}},
	{"lamp", 16, 48, color.RGBA{70, 70, 80, 255}},
	{"bush", 24, 20, color.RGBA{46, 110, 50, 255}},
	{"flower", 12, 14, color.RGBA{220, 120, 180, 255}},
	{"rock", 18, 14, color.RGBA{130, 130, 130, 255}},
}

// GenerateAll writes every placeholder PNG into dir, creating it if needed.
// Generation is seeded so regenerated assets are stable.
func GenerateAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create asset directory %s: %w", dir, err)
	}

	rng := rand.New(rand.NewSource(7))

	for name, base := range terrainColors {
		for v := 0; v < variantCounts[name]; v++ {
			img := tileImage(base, v, rng)
			key := name
			if v != 0 {
				key = fmt.Sprintf("%s_%d", name, v)
			}
			if err := writePNG(filepath.Join(dir, key+".png"), img); err != nil {
				return err
			}
		}
	}

	for _, spec := range spriteSpecs {
		img := spriteImage(spec.w, spec.h, spec.fill)
		if err := writePNG(filepath.Join(dir, spec.key+".png"), img); err != nil {
			return err
		}
	}

	return nil
}

// tileImage draws a solid tile with variant-dependent speckles so each
// variant is visibly distinct and tiling repetition breaks up.
func tileImage(base color.RGBA, variant int, rng *rand.Rand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{base}, image.Point{}, draw.Src)

	speckle := shade(base, 18+8*variant)
	for i := 0; i < 10+variant*6; i++ {
		x := rng.Intn(TileSize)
		y := rng.Intn(TileSize)
		img.SetRGBA(x, y, speckle)
	}
	return img
}

// spriteImage draws a bordered solid rectangle.
func spriteImage(w, h int, fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{fill}, image.Point{}, draw.Src)

	border := shade(fill, 50)
	for x := 0; x < w; x++ {
		img.SetRGBA(x, 0, border)
		img.SetRGBA(x, h-1, border)
	}
	for y := 0; y < h; y++ {
		img.SetRGBA(0, y, border)
		img.SetRGBA(w-1, y, border)
	}
	return img
}

// shade darkens a color by the given amount per channel, clamping at zero.
func shade(c color.RGBA, by int) color.RGBA {
	return color.RGBA{
		R: subClamp(c.R, by),
		G: subClamp(c.G, by),
		B: subClamp(c.B, by),
		A: c.A,
	}
}

func subClamp(v uint8, by int) uint8 {
	n := int(v) - by
	if n < 0 {
		n = 0
	}
	return uint8(n)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
