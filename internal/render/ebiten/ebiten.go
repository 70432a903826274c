// Package ebiten implements the render interfaces on top of Ebiten.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/quietfoxgames/hearthvale/internal/render"
)

// blendMultiply composites dst = dst * src, the darkening mode the lighting
// engine requires. Ebiten has no predefined multiply blend, so it is built
// from blend factors.
var blendMultiply = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
	BlendFactorDestinationRGB:   ebiten.BlendFactorZero,
	BlendFactorDestinationAlpha: ebiten.BlendFactorZero,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// Renderer implements render.Renderer using Ebiten.
type Renderer struct {
	// unitCircle is a cached white disc used to synthesize ellipses, since
	// the vector package only draws circles.
	unitCircle *ebiten.Image
}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &Renderer{}
}

// NewImage creates a new blank image with the given dimensions.
func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{img: ebiten.NewImage(width, height)}
}

// FillRect draws a solid rectangle on the destination image.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(dst.(*Image).img, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// FillCircle draws a filled circle on the destination image.
func (r *Renderer) FillCircle(dst render.Image, cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(dst.(*Image).img, float32(cx), float32(cy), float32(radius), clr, true)
}

const unitCircleRadius = 64

// FillEllipse draws a filled ellipse by scaling a cached white disc.
func (r *Renderer) FillEllipse(dst render.Image, cx, cy, rx, ry float64, clr color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	if r.unitCircle == nil {
		r.unitCircle = ebiten.NewImage(unitCircleRadius*2, unitCircleRadius*2)
		vector.DrawFilledCircle(r.unitCircle, unitCircleRadius, unitCircleRadius, unitCircleRadius, color.White, true)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(rx/unitCircleRadius, ry/unitCircleRadius)
	opts.GeoM.Translate(cx-rx, cy-ry)

	cr, cg, cb, ca := clr.RGBA()
	opts.ColorScale.Scale(float32(cr)/0xffff, float32(cg)/0xffff, float32(cb)/0xffff, float32(ca)/0xffff)

	dst.(*Image).img.DrawImage(r.unitCircle, opts)
}

// DrawText draws debug text at the given position.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int) {
	ebitenutil.DebugPrintAt(dst.(*Image).img, text, x, y)
}

// Image wraps an ebiten.Image to implement render.Image.
type Image struct {
	img *ebiten.Image
}

// WrapImage wraps an existing ebiten.Image as a render.Image.
func WrapImage(img *ebiten.Image) render.Image {
	return &Image{img: img}
}

// Size returns the width and height of the image.
func (i *Image) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *Image) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *Image) Clear() {
	i.img.Clear()
}

// Draw blits the source image onto this image.
func (i *Image) Draw(src render.Image, opts *render.DrawOptions) {
	srcImg := src.(*Image).img

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	ebitenOpts := &ebiten.DrawImageOptions{}
	ebitenOpts.GeoM.Translate(opts.X, opts.Y)
	if opts.Blend == render.BlendMultiply {
		ebitenOpts.Blend = blendMultiply
	}
	if opts.Alpha > 0 && opts.Alpha < 1 {
		ebitenOpts.ColorScale.ScaleAlpha(float32(opts.Alpha))
	}

	i.img.DrawImage(srcImg, ebitenOpts)
}

// Dispose releases the image resources.
func (i *Image) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// InputManager implements render.InputManager using Ebiten.
type InputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &InputManager{}
}

// IsKeyPressed returns whether the key is currently held.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	return ebiten.IsKeyPressed(toEbitenKey(key))
}

// IsKeyJustPressed returns whether the key was pressed this frame.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(toEbitenKey(key))
}

func toEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyW:
		return ebiten.KeyW
	case render.KeyA:
		return ebiten.KeyA
	case render.KeyS:
		return ebiten.KeyS
	case render.KeyD:
		return ebiten.KeyD
	case render.KeyUp:
		return ebiten.KeyArrowUp
	case render.KeyDown:
		return ebiten.KeyArrowDown
	case render.KeyLeft:
		return ebiten.KeyArrowLeft
	case render.KeyRight:
		return ebiten.KeyArrowRight
	case render.KeySpace:
		return ebiten.KeySpace
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return 0
	}
}

// ResourceLoader implements render.ResourceLoader using Ebiten.
type ResourceLoader struct{}

// NewResourceLoader creates a new Ebiten-based resource loader.
func NewResourceLoader() render.ResourceLoader {
	return &ResourceLoader{}
}

// LoadImage loads an image from the specified file path.
func (l *ResourceLoader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &Image{img: img}, nil
}

// Engine implements render.Engine using Ebiten.
type Engine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &Engine{}
}

// SetWindowSize sets the window size in pixels.
func (e *Engine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// RunGame runs the game loop with the provided game.
func (e *Engine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

func (a *gameAdapter) Update() error {
	return a.game.Update()
}

func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&Image{img: screen})
}

func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
