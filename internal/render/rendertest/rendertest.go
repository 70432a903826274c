// Package rendertest provides in-memory fakes of the render interfaces so
// drawing logic can be tested without a graphics backend. Fakes record the
// operations performed on them in order.
package rendertest

import (
	"image/color"

	"github.com/quietfoxgames/hearthvale/internal/render"
)

// Op is one recorded operation on a fake image or renderer.
type Op struct {
	Kind string // "fill", "clear", "draw", "rect", "circle", "ellipse", "text"

	// For draw ops.
	Src  render.Image
	Opts render.DrawOptions

	// For shape ops.
	X, Y, W, H float64
	RX, RY     float64
	Radius     float64
	Color      color.Color

	// For text ops.
	Text string
}

// Image is a fake render.Image that records everything drawn onto it.
type Image struct {
	W, H int
	Ops  []Op

	Disposed bool
}

// NewImage creates a fake image of the given size.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h}
}

func (i *Image) Size() (int, int) { return i.W, i.H }

func (i *Image) Fill(clr color.Color) {
	i.Ops = append(i.Ops, Op{Kind: "fill", Color: clr})
}

func (i *Image) Clear() {
	i.Ops = append(i.Ops, Op{Kind: "clear"})
}

func (i *Image) Draw(src render.Image, opts *render.DrawOptions) {
	op := Op{Kind: "draw", Src: src}
	if opts != nil {
		op.Opts = *opts
	}
	i.Ops = append(i.Ops, op)
}

func (i *Image) Dispose() { i.Disposed = true }

// Draws returns only the recorded blit operations.
func (i *Image) Draws() []Op {
	var out []Op
	for _, op := range i.Ops {
		if op.Kind == "draw" {
			out = append(out, op)
		}
	}
	return out
}

// Renderer is a fake render.Renderer. Shape and text calls are recorded on
// the destination fake image, so a test can assert on one op stream.
type Renderer struct{}

// NewRenderer creates a fake renderer.
func NewRenderer() *Renderer { return &Renderer{} }

func (r *Renderer) NewImage(w, h int) render.Image {
	return NewImage(w, h)
}

func (r *Renderer) FillRect(dst render.Image, x, y, w, h float64, clr color.Color) {
	img := dst.(*Image)
	img.Ops = append(img.Ops, Op{Kind: "rect", X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Renderer) FillCircle(dst render.Image, cx, cy, radius float64, clr color.Color) {
	img := dst.(*Image)
	img.Ops = append(img.Ops, Op{Kind: "circle", X: cx, Y: cy, Radius: radius, Color: clr})
}

func (r *Renderer) FillEllipse(dst render.Image, cx, cy, rx, ry float64, clr color.Color) {
	img := dst.(*Image)
	img.Ops = append(img.Ops, Op{Kind: "ellipse", X: cx, Y: cy, RX: rx, RY: ry, Color: clr})
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int) {
	img := dst.(*Image)
	img.Ops = append(img.Ops, Op{Kind: "text", Text: text, X: float64(x), Y: float64(y)})
}

// Input is a fake render.InputManager driven by setting key states.
type Input struct {
	Pressed     map[render.Key]bool
	JustPressed map[render.Key]bool
}

// NewInput creates a fake input manager with no keys down.
func NewInput() *Input {
	return &Input{
		Pressed:     make(map[render.Key]bool),
		JustPressed: make(map[render.Key]bool),
	}
}

func (in *Input) IsKeyPressed(key render.Key) bool     { return in.Pressed[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.JustPressed[key] }
