package trafficlight

import (
	"time"

	"github.com/quintans/go-trafficlight/trigger"
)

// cycle holds the timing state of one phase-cycling loop.
// It does not read the clock itself, the loop passes the current time to advance.
type cycle struct {
	trigger trigger.Trigger
	reset   bool
	start   time.Time
	limit   time.Duration
}

// step is the outcome of one loop iteration.
type step struct {
	// drawn is set when a new cycle started and limit was drawn from the trigger.
	drawn bool
	// toggle is set when the phase has to change.
	toggle  bool
	elapsed time.Duration
	limit   time.Duration
}

func newCycle(t trigger.Trigger) *cycle {
	return &cycle{
		trigger: t,
		reset:   true,
	}
}

func (c *cycle) advance(now time.Time) step {
	if c.reset {
		c.limit = c.trigger.Next()
		c.start = now
		c.reset = false
		return step{drawn: true, limit: c.limit}
	}

	elapsed := now.Sub(c.start)
	if elapsed >= c.limit {
		// the next iteration starts a new cycle
		c.reset = true
		return step{toggle: true, elapsed: elapsed, limit: c.limit}
	}

	return step{elapsed: elapsed, limit: c.limit}
}
