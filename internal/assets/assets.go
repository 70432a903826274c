// Package assets provides the image registry the renderers look tiles and
// sprites up in. The library is explicitly constructed and passed by
// reference wherever images are needed; there is no global registry.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quietfoxgames/hearthvale/internal/render"
)

// Library maps string keys ("grass_2", "player", "bush") to loaded images.
type Library struct {
	images map[string]render.Image
}

// NewLibrary creates an empty image library.
func NewLibrary() *Library {
	return &Library{images: make(map[string]render.Image)}
}

// Register adds or replaces an image under a key.
func (l *Library) Register(key string, img render.Image) {
	l.images[key] = img
}

// Get returns the image for a key. A missing key is an expected condition —
// callers fall back (tiles retry variant 0, sprites skip drawing).
func (l *Library) Get(key string) (render.Image, bool) {
	img, ok := l.images[key]
	return img, ok
}

// Len returns the number of registered images.
func (l *Library) Len() int {
	return len(l.images)
}

// LoadDir loads every .png in dir into the library, keyed by file stem
// ("grass_1.png" -> "grass_1"). Subdirectories are not walked.
func (l *Library) LoadDir(loader render.ResourceLoader, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read asset directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		img, err := loader.LoadImage(path)
		if err != nil {
			return fmt.Errorf("failed to load image %s: %w", path, err)
		}
		key := strings.TrimSuffix(entry.Name(), ".png")
		l.images[key] = img
	}

	return nil
}
