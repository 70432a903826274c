// Package mathutil provides the scalar interpolation helpers used by the
// camera follow logic and the lighting engine.
package mathutil

import "math"

// Lerp linearly interpolates between a and b. t=0 yields a, t=1 yields b.
// t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DampFactor returns the frame-rate-independent smoothing factor
// 1 - 0.5^(dt*rate). Moving a value toward a target by this fraction each
// frame halves the remaining distance every 1/rate seconds regardless of
// the frame duration.
func DampFactor(rate, dt float64) float64 {
	return 1.0 - math.Pow(0.5, dt*rate)
}

// SmoothDamp moves current toward target with critically damped spring
// motion, never overshooting. velocity carries state between calls.
// smoothTime is the approximate time to reach the target; maxSpeed caps
// the rate of change (use math.Inf(1) for no cap).
func SmoothDamp(current, target, velocity, smoothTime, dt, maxSpeed float64) (float64, float64) {
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2.0 / smoothTime

	x := omega * dt
	exp := 1.0 / (1.0 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTo := target

	maxChange := maxSpeed * smoothTime
	change = Clamp(change, -maxChange, maxChange)
	target = current - change

	temp := (velocity + omega*change) * dt
	velocity = (velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	// Prevent overshoot past the original target.
	if (originalTo-current > 0) == (output > originalTo) {
		output = originalTo
		velocity = (output - originalTo) / dt
	}

	return output, velocity
}
