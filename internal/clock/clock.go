// Package clock implements the in-game day/night clock. It owns the day
// counter and the minutes-of-day value the lighting engine interpolates
// against; it never runs backward.
package clock

import "fmt"

// MinutesPerDay is the length of an in-game day.
const MinutesPerDay = 24 * 60

// GameClock tracks the current in-game day and time of day.
type GameClock struct {
	// Day is the current day counter, starting at 1. No upper bound.
	Day int
	// Minutes is the time of day in minutes, always in [0, MinutesPerDay).
	Minutes float64
}

// New creates a clock starting on day 1 at the given hour (0-24).
func New(startHour float64) *GameClock {
	c := &GameClock{Day: 1, Minutes: startHour * 60}
	for c.Minutes >= MinutesPerDay {
		c.Minutes -= MinutesPerDay
	}
	if c.Minutes < 0 {
		c.Minutes = 0
	}
	return c
}

// Advance moves time forward by dt seconds scaled by the time-speed
// multiplier (in-game minutes per real second). When the day boundary is
// crossed, the minute remainder carries into the new day.
func (c *GameClock) Advance(dt, speed float64) {
	c.Minutes += dt * speed
	for c.Minutes >= MinutesPerDay {
		c.Minutes -= MinutesPerDay
		c.Day++
	}
}

// MinutesOfDay returns the current time of day in minutes.
func (c *GameClock) MinutesOfDay() float64 {
	return c.Minutes
}

// Hour returns the continuous hour of day in [0, 24).
func (c *GameClock) Hour() float64 {
	return c.Minutes / 60
}

// TimeString formats the current time as "HH:MM" for display.
func (c *GameClock) TimeString() string {
	h := int(c.Minutes) / 60
	m := int(c.Minutes) % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// IsDaytime reports whether the current hour falls in the day phase
// (06:00 inclusive to 20:00 exclusive).
func (c *GameClock) IsDaytime() bool {
	h := c.Hour()
	return h >= 6 && h < 20
}
