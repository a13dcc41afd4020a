package main

import (
	"sync"
	"time"
)

// simulatedClock is a clock that only moves when the simulation advances it.
type simulatedClock struct {
	mu  sync.RWMutex
	now time.Time
}

func newSimulatedClock(start time.Time) *simulatedClock {
	return &simulatedClock{now: start}
}

func (c *simulatedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.now
}

// nextDay moves the clock to the opening hour of the following day.
func (c *simulatedClock) nextDay() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.AddDate(0, 0, 1)
}
