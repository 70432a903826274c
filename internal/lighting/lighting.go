// Package lighting implements the day/night ambient cycle and point-light
// rendering. Ambient brightness is a continuous function of time of day,
// interpolated from a keyframe table; lights punch "reveal" circles through
// the darkness with a cheap concentric-ring approximation of a radial
// gradient, and the whole layer is composited multiplicatively over the
// scene.
package lighting

import (
	"image/color"
	"math"

	"github.com/quietfoxgames/hearthvale/internal/mathutil"
	"github.com/quietfoxgames/hearthvale/internal/render"
)

// Clock is the time-of-day collaborator. The engine never owns or advances
// the clock itself.
type Clock interface {
	MinutesOfDay() float64
}

// Light is one illumination emitter. Callers keep the returned handle to
// move, tune, or remove the light; fields must not be mutated while an
// Update or Render call is in progress (the model is single-threaded).
type Light struct {
	// X, Y is the light's world position. Lights may be attached to moving
	// objects by rewriting these between frames.
	X, Y float64
	// Radius is the reach of the light in pixels.
	Radius float64
	// Color is the light's base color. Unused by the reveal pass itself but
	// kept on the handle for tinted presets and future passes.
	Color color.NRGBA
	// Intensity in [0, 1].
	Intensity float64
	// Active lights render and flicker; inactive ones are skipped.
	Active bool

	// Flicker enables the deterministic brightness wobble.
	Flicker bool
	// FlickerSpeed scales the wobble frequency.
	FlickerSpeed float64
	// FlickerAmount scales the wobble amplitude.
	FlickerAmount float64

	flickerOffset float64
}

// FlickerOffset returns the current flicker contribution to intensity.
func (l *Light) FlickerOffset() float64 {
	return l.flickerOffset
}

// keyframe maps an hour of day to an ambient color and intensity.
type keyframe struct {
	hour      float64
	r, g, b   float64
	intensity float64
}

// dayKeyframes is the time-of-day ambient table. Interpolation between
// entries is piecewise linear with wraparound across midnight.
var dayKeyframes = []keyframe{
	{0, 20, 25, 60, 0.15},    // midnight, deep blue
	{4, 40, 50, 80, 0.25},    // pre-dawn
	{6, 180, 140, 100, 0.6},  // sunrise gold
	{8, 255, 250, 240, 1.0},  // morning
	{12, 255, 255, 255, 1.0}, // noon
	{16, 255, 245, 230, 0.95},
	{18, 255, 180, 120, 0.7}, // sunset orange
	{20, 100, 80, 120, 0.35}, // dusk violet
	{22, 30, 35, 70, 0.2},    // night
}

// daylightThreshold is the ambient intensity at which the multiply pass is
// a visual no-op and rendering is skipped entirely.
const daylightThreshold = 0.95

// maxRings caps the concentric circles drawn per light; ringDivisor sets
// how many pixels of radius each ring covers.
const (
	maxRings    = 25
	minRings    = 3
	ringDivisor = 3
)

// Engine owns the light set and the current ambient state.
type Engine struct {
	renderer render.Renderer
	width    int
	height   int

	lights []*Light

	ambientColor     color.NRGBA
	ambientIntensity float64

	// elapsed is accumulated update time; flicker derives from it alone,
	// so flicker is reproducible from elapsed time.
	elapsed float64

	ambient render.Image
}

// NewEngine creates a lighting engine for a viewport of the given size.
// Ambient state starts at full daylight until the first Update.
func NewEngine(renderer render.Renderer, width, height int) *Engine {
	return &Engine{
		renderer:         renderer,
		width:            width,
		height:           height,
		ambientColor:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		ambientIntensity: 1.0,
	}
}

// AddLight registers a point light and returns its handle. Negative radius
// or out-of-range intensity are clamped, never rejected.
func (e *Engine) AddLight(x, y, radius float64, clr color.NRGBA, intensity float64, flicker bool) *Light {
	l := &Light{
		X:             x,
		Y:             y,
		Radius:        math.Max(0, radius),
		Color:         clr,
		Intensity:     mathutil.Clamp(intensity, 0, 1),
		Active:        true,
		Flicker:       flicker,
		FlickerSpeed:  0.1,
		FlickerAmount: 0.2,
	}
	e.lights = append(e.lights, l)
	return l
}

// RemoveLight takes a light out of the engine. Unknown handles are ignored.
func (e *Engine) RemoveLight(l *Light) {
	for i, have := range e.lights {
		if have == l {
			e.lights = append(e.lights[:i], e.lights[i+1:]...)
			return
		}
	}
}

// ClearLights removes every light.
func (e *Engine) ClearLights() {
	e.lights = nil
}

// Lights returns the current light handles. The slice is the engine's own;
// callers must not grow or reorder it.
func (e *Engine) Lights() []*Light {
	return e.lights
}

// Update recomputes the ambient color/intensity from the clock and advances
// every flickering light's offset by dt seconds.
func (e *Engine) Update(dt float64, clk Clock) {
	e.elapsed += dt

	hour := 12.0
	if clk != nil {
		hour = clk.MinutesOfDay() / 60
	}
	e.ambientColor, e.ambientIntensity = interpolateAmbient(hour)

	for _, l := range e.lights {
		if !l.Flicker || !l.Active {
			continue
		}
		l.flickerOffset = flickerNoise(e.elapsed, l.FlickerSpeed) * l.FlickerAmount
	}
}

// flickerNoise layers three sine waves at incommensurate frequency
// multipliers so the wobble looks aperiodic while staying a pure function
// of elapsed time.
func flickerNoise(elapsed, speed float64) float64 {
	n := math.Sin(elapsed*speed*20) * 0.5
	n += math.Sin(elapsed*speed*37) * 0.3
	n += math.Sin(elapsed*speed*53) * 0.2
	return n
}

// interpolateAmbient returns the ambient color and intensity for a
// continuous hour in [0, 24), piecewise-linear between the bracketing
// keyframes. Queries between the last keyframe and the first span the
// midnight seam with segment length 24 - lastHour + firstHour, so the
// result is continuous across 24 -> 0.
func interpolateAmbient(hour float64) (color.NRGBA, float64) {
	kfs := dayKeyframes
	prev := kfs[len(kfs)-1]
	next := kfs[0]

	for i, kf := range kfs {
		if kf.hour > hour {
			next = kf
			if i > 0 {
				prev = kfs[i-1]
			} else {
				prev = kfs[len(kfs)-1]
			}
			break
		}
	}

	var t float64
	if next.hour > prev.hour {
		t = (hour - prev.hour) / (next.hour - prev.hour)
	} else {
		span := 24 - prev.hour + next.hour
		if hour >= prev.hour {
			t = (hour - prev.hour) / span
		} else {
			t = (hour + 24 - prev.hour) / span
		}
	}
	t = mathutil.Clamp(t, 0, 1)

	c := color.NRGBA{
		R: uint8(mathutil.Lerp(prev.r, next.r, t)),
		G: uint8(mathutil.Lerp(prev.g, next.g, t)),
		B: uint8(mathutil.Lerp(prev.b, next.b, t)),
		A: 255,
	}
	return c, mathutil.Lerp(prev.intensity, next.intensity, t)
}

// ringCount is the number of concentric circles for a light of the given
// effective radius, trading ring banding for per-frame cost.
func ringCount(radius float64) int {
	n := int(radius) / ringDivisor
	if n > maxRings {
		n = maxRings
	}
	if n < minRings {
		n = minRings
	}
	return n
}

// Render composites the lighting over the scene: the ambient layer is
// filled with color x intensity, each on-screen light pushes a stack of
// concentric circles toward white, and the layer multiplies onto dst. In
// full daylight the whole pass is skipped and no layer is drawn at all.
// Must run after the world and sprites, before the UI.
func (e *Engine) Render(dst render.Image, camX, camY float64) {
	if e.ambientIntensity >= daylightThreshold {
		return
	}

	if e.ambient == nil {
		e.ambient = e.renderer.NewImage(e.width, e.height)
	}

	ar := float64(e.ambientColor.R) * e.ambientIntensity
	ag := float64(e.ambientColor.G) * e.ambientIntensity
	ab := float64(e.ambientColor.B) * e.ambientIntensity
	e.ambient.Fill(color.NRGBA{R: uint8(ar), G: uint8(ag), B: uint8(ab), A: 255})

	for _, l := range e.lights {
		if !l.Active {
			continue
		}

		lx := l.X - camX
		ly := l.Y - camY
		if lx < -l.Radius || lx > float64(e.width)+l.Radius ||
			ly < -l.Radius || ly > float64(e.height)+l.Radius {
			continue
		}

		eff := mathutil.Clamp(l.Intensity+l.flickerOffset, 0.1, 1.0)
		radius := l.Radius * eff
		rings := ringCount(radius)

		// Largest ring first; inner rings overdraw brighter values.
		for i := rings; i >= 1; i-- {
			t := float64(i) / float64(rings)
			boost := (1 - t*t) * eff * 0.7

			clr := color.NRGBA{
				R: brighten(ar, boost),
				G: brighten(ag, boost),
				B: brighten(ab, boost),
				A: 255,
			}
			e.renderer.FillCircle(e.ambient, lx, ly, radius*t, clr)
		}
	}

	dst.Draw(e.ambient, &render.DrawOptions{Blend: render.BlendMultiply})
}

// brighten interpolates an ambient channel toward white by boost.
func brighten(channel, boost float64) uint8 {
	v := channel + (255-channel)*boost
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// IsNight reports whether ambient intensity has dropped below half
// brightness. There are no discrete day/night states; this is a
// convenience query.
func (e *Engine) IsNight() bool {
	return e.ambientIntensity < 0.5
}

// AmbientIntensity returns the current ambient intensity in [0, 1].
func (e *Engine) AmbientIntensity() float64 {
	return e.ambientIntensity
}

// AmbientColor returns the current ambient color.
func (e *Engine) AmbientColor() color.NRGBA {
	return e.ambientColor
}
