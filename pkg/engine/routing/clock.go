package routing

import (
	"time"
)

// SystemClock. wall clock in a fixed location
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return &SystemClock{loc: loc}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock. always reports the same instant
type FixedClock struct {
	now time.Time
}

func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// NewFixedClockAt. hh:mm on an arbitrary fixed day, UTC
func NewFixedClockAt(hour, minute int) *FixedClock {
	return &FixedClock{now: time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)}
}

func (c *FixedClock) Now() time.Time {
	return c.now
}
