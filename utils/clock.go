package utils

import "time"

// Clock tells the current time. Tests swap it for a fixed one.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock reads the wall clock in UTC.
var SystemClock Clock = systemClock{}

// FixedClock always reports the same instant.
type FixedClock struct {
	Time time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.Time
}

// Advance moves a fixed clock forward.
func (c *FixedClock) Advance(d time.Duration) {
	c.Time = c.Time.Add(d)
}
