package camera

import (
	"image/color"
	"sort"

	"github.com/quietfoxgames/hearthvale/internal/geom"
	"github.com/quietfoxgames/hearthvale/internal/render"
)

// DefaultCullMargin is the extra border, in pixels, around the viewport
// inside which entities are still drawn. It covers sprites whose visual
// extends past their bounding rectangle.
const DefaultCullMargin = 50

// Drawable is anything the compositor can depth-sort and draw. Entities
// lower on screen occlude entities higher up, so sprites are drawn in
// ascending order of their rectangle's bottom edge. DepthOffset shifts an
// entity's sort position without moving it — a tall building can claim a
// sort line near its base so its roof doesn't occlude someone standing in
// front of it.
type Drawable interface {
	// Bounds returns the entity's world-space rectangle.
	Bounds() geom.Rect
	// Visual returns the entity's image, or nil if it currently has none.
	// Entities without a visual are skipped silently.
	Visual() render.Image
	// DepthOffset is added to the rectangle's bottom edge before sorting.
	DepthOffset() int
}

var shadowColor = color.NRGBA{R: 30, G: 30, B: 30, A: 100}

// Group collects drawables and renders them Y-sorted through a camera.
type Group struct {
	cam       *Camera
	drawables []Drawable
}

// NewGroup creates an empty Y-sort group tied to a camera.
func NewGroup(cam *Camera) *Group {
	return &Group{cam: cam}
}

// Add appends drawables to the group. Duplicates are ignored. Insertion
// order is the tie-break for entities sharing a sort key, so adding order
// is part of the draw order contract.
func (g *Group) Add(ds ...Drawable) {
	for _, d := range ds {
		if g.contains(d) {
			continue
		}
		g.drawables = append(g.drawables, d)
	}
}

// Remove takes drawables out of the group, preserving the order of the rest.
func (g *Group) Remove(ds ...Drawable) {
	for _, d := range ds {
		for i, have := range g.drawables {
			if have == d {
				g.drawables = append(g.drawables[:i], g.drawables[i+1:]...)
				break
			}
		}
	}
}

// Clear empties the group.
func (g *Group) Clear() {
	g.drawables = g.drawables[:0]
}

// Len returns the number of drawables in the group.
func (g *Group) Len() int {
	return len(g.drawables)
}

func (g *Group) contains(d Drawable) bool {
	for _, have := range g.drawables {
		if have == d {
			return true
		}
	}
	return false
}

func sortKey(d Drawable) float64 {
	return d.Bounds().Bottom() + float64(d.DepthOffset())
}

// visible returns the drawables worth rendering this frame, in insertion
// order: non-nil visual and within the culling margin of the viewport.
func (g *Group) visible() []Drawable {
	out := make([]Drawable, 0, len(g.drawables))
	for _, d := range g.drawables {
		if d.Visual() == nil {
			continue
		}
		if !g.cam.IsVisible(d.Bounds(), DefaultCullMargin) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Order returns this frame's draw order: visible drawables stably sorted
// ascending by bottom edge plus depth offset. Ties keep insertion order.
func (g *Group) Order() []Drawable {
	vis := g.visible()
	sort.SliceStable(vis, func(i, j int) bool {
		return sortKey(vis[i]) < sortKey(vis[j])
	})
	return vis
}

// Draw renders the group back-to-front through the camera transform.
// When shadows is true, a flattened ellipse is drawn under each sprite at
// its feet before the sprite itself.
func (g *Group) Draw(dst render.Image, renderer render.Renderer, shadows bool) {
	for _, d := range g.Order() {
		r := d.Bounds()
		sx, sy := g.cam.Apply(r.X, r.Y)

		if shadows {
			cx := float64(sx) + r.W/2
			cy := float64(sy) + r.H - 1
			renderer.FillEllipse(dst, cx, cy, 10, 4, shadowColor)
		}

		dst.Draw(d.Visual(), &render.DrawOptions{X: float64(sx), Y: float64(sy)})
	}
}
