package check

import "sync/atomic"

// Counter tallies failed checks. It only ever moves forward and is safe
// for use from several goroutines.
type Counter struct {
	n atomic.Int64
}

// Inc advances the count by one and returns the new value
func (c *Counter) Inc() int {
	return int(c.n.Add(1))
}

// Add advances the count by delta and returns the new value. Negative
// deltas are ignored so the count never decreases.
func (c *Counter) Add(delta int) int {
	if delta < 0 {
		delta = 0
	}
	return int(c.n.Add(int64(delta)))
}

// Value returns the current count
func (c *Counter) Value() int {
	return int(c.n.Load())
}
