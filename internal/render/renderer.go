package render

import "image/color"

// BlendMode selects how a source image is composited onto a destination.
type BlendMode int

const (
	// BlendSourceOver is standard alpha blending (the default).
	BlendSourceOver BlendMode = iota
	// BlendMultiply multiplies destination pixels by source pixels.
	// The lighting engine relies on this to darken the scene.
	BlendMultiply
)

// DrawOptions contains options for blitting one image onto another.
type DrawOptions struct {
	// X, Y is the destination position in pixels of the source's top-left corner.
	X, Y float64
	// Blend selects the compositing mode. Zero value is BlendSourceOver.
	Blend BlendMode
	// Alpha scales the source's opacity. Zero means fully opaque
	// (so a zero-valued DrawOptions draws normally).
	Alpha float64
}

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic, and lets tests run against an in-memory fake.
type Renderer interface {
	// NewImage creates a new blank image with the given dimensions.
	NewImage(width, height int) Image

	// FillRect draws a solid rectangle on the destination image.
	FillRect(dst Image, x, y, width, height float64, clr color.Color)

	// FillCircle draws a filled circle on the destination image.
	FillCircle(dst Image, cx, cy, radius float64, clr color.Color)

	// FillEllipse draws a filled axis-aligned ellipse on the destination image.
	FillEllipse(dst Image, cx, cy, rx, ry float64, clr color.Color)

	// DrawText draws debug-quality text on the destination image.
	DrawText(dst Image, text string, x, y int)
}

// Image represents a renderable surface that can be drawn to or drawn from.
type Image interface {
	// Size returns the width and height of the image in pixels.
	Size() (width, height int)

	// Fill fills the entire image with the given color.
	Fill(clr color.Color)

	// Clear clears the image to transparent.
	Clear()

	// Draw blits the source image onto this image.
	// A nil opts draws at (0, 0) with source-over blending.
	Draw(src Image, opts *DrawOptions)

	// Dispose releases the image resources.
	Dispose()
}

// InputManager handles keyboard input.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
)

// ResourceLoader handles loading images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick
	// (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the
	// logical screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
