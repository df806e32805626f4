package clock

import "time"

// Clock provides the current time, allowing deterministic tests of
// time-dependent logic.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time in UTC.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock implements Clock returning a predetermined time.
type FixedClock struct {
	fixedTime time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{fixedTime: t}
}

func (c *FixedClock) Now() time.Time {
	return c.fixedTime
}
