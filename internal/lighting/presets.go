package lighting

import "image/color"

// Preset light factories for common world fixtures.

// NewStreetlamp adds a tall warm lamp with a gentle flicker.
func NewStreetlamp(e *Engine, x, y float64) *Light {
	return e.AddLight(x, y, 120, color.NRGBA{R: 255, G: 220, B: 150, A: 255}, 0.9, true)
}

// NewWindowLight adds a small steady warm glow, e.g. a lit house window.
func NewWindowLight(e *Engine, x, y float64) *Light {
	return e.AddLight(x, y, 60, color.NRGBA{R: 255, G: 200, B: 120, A: 255}, 0.7, false)
}

// NewCampfire adds a fire with a pronounced flicker.
func NewCampfire(e *Engine, x, y float64) *Light {
	l := e.AddLight(x, y, 100, color.NRGBA{R: 255, G: 150, B: 50, A: 255}, 0.85, true)
	l.FlickerSpeed = 0.15
	l.FlickerAmount = 0.35
	return l
}

// NewTorch adds a wall torch.
func NewTorch(e *Engine, x, y float64) *Light {
	return e.AddLight(x, y, 70, color.NRGBA{R: 255, G: 180, B: 80, A: 255}, 0.75, true)
}
